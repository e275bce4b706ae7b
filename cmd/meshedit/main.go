package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/meshedit/editor"
	"github.com/osuushi/meshedit/internal/config"
	"github.com/osuushi/meshedit/internal/preview"
	"github.com/osuushi/meshedit/internal/script"
	"github.com/osuushi/meshedit/internal/svgimport"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app        = kingpin.New("meshedit", "Build a polygon from editor commands and export it as a triangulated mesh.")
	configPath = app.Flag("config", "YAML config file.").Default(defaultConfigPath()).String()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()

	runCmd     = app.Command("run", "Run an editor command script (stdin when no file is given).")
	runScript  = runCmd.Arg("script", "Command script.").ExistingFile()
	runVerbose = runCmd.Flag("verbose", "Trace every vertex change.").Short('v').Bool()
	runPreview = runCmd.Flag("preview", "Also render the final shape to this PNG.").String()

	importCmd    = app.Command("import", "Import the first polygon of an SVG file and export it.")
	importSVG    = importCmd.Arg("svg", "SVG file.").Required().ExistingFile()
	importOutput = importCmd.Flag("output", "Mesh JSON path.").Short('o').String()
	importOpen   = importCmd.Flag("open", "Leave the shape open.").Bool()

	previewCmd    = app.Command("preview", "Render an exported mesh to PNG.")
	previewMesh   = previewCmd.Arg("mesh", "Mesh JSON file.").Required().ExistingFile()
	previewOutput = previewCmd.Flag("output", "PNG path.").Short('o').String()
	previewInline = previewCmd.Flag("inline", "Print the image in the terminal (iTerm only).").Bool()
)

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "meshedit.yaml"
	}
	return filepath.Join(dir, "meshedit", "config.yaml")
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor && term.IsTerminal(int(os.Stdout.Fd())))
	log.SetFlags(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(au.Red(err))
	}

	switch command {
	case runCmd.FullCommand():
		err = run(cfg, au)
	case importCmd.FullCommand():
		err = importShape(cfg, au)
	case previewCmd.FullCommand():
		err = renderPreview(cfg, au)
	}
	if err != nil {
		log.Fatal(au.Red(err))
	}
}

func run(cfg config.Config, au aurora.Aurora) error {
	in := os.Stdin
	if *runScript != "" {
		f, err := os.Open(*runScript)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	s := cfg.NewSession()
	runner := script.NewRunner(s, os.Stdout)
	runner.Verbose = *runVerbose
	runner.Warnf = func(format string, args ...interface{}) {
		log.Print(au.Yellow(fmt.Sprintf(format, args...)))
	}
	if err := runner.Run(in); err != nil {
		return err
	}

	fmt.Println(au.Green(fmt.Sprintf("%d vertices, %d edges, closed: %v",
		s.Model.Len(), len(s.Model.Edges()), s.Model.Closed())))
	if runner.Skipped > 0 {
		fmt.Println(au.Yellow(fmt.Sprintf("%d commands skipped", runner.Skipped)))
	}

	if *runPreview != "" {
		doc := editor.NewDocument(s.Model.Vertices(), s.Model.Triangulate())
		return savePreview(doc, *runPreview, cfg, au)
	}
	return nil
}

func importShape(cfg config.Config, au aurora.Aurora) error {
	shape, err := svgimport.LoadFile(*importSVG)
	if err != nil {
		return err
	}

	// The SVG canvas replaces the configured one.
	cfg.Canvas = config.Canvas{
		MinX: shape.Bounds.MinX, MaxX: shape.Bounds.MaxX,
		MinY: shape.Bounds.MinY, MaxY: shape.Bounds.MaxY,
	}
	s := cfg.NewSession()
	if err := shape.Replay(s, !*importOpen); err != nil {
		return err
	}

	output := *importOutput
	if output == "" {
		output = strings.TrimSuffix(*importSVG, filepath.Ext(*importSVG)) + ".json"
	}
	if err := s.ExportTo(output); err != nil {
		return err
	}
	fmt.Println(au.Green("Exported to " + output))
	return nil
}

func renderPreview(cfg config.Config, au aurora.Aurora) error {
	doc, err := editor.ReadFile(*previewMesh)
	if err != nil {
		return err
	}
	if *previewInline {
		cfg.Preview.Inline = true
	}
	output := *previewOutput
	if output == "" {
		output = strings.TrimSuffix(*previewMesh, filepath.Ext(*previewMesh)) + ".png"
	}
	return savePreview(doc, output, cfg, au)
}

func savePreview(doc *editor.Document, path string, cfg config.Config, au aurora.Aurora) error {
	err := preview.SavePNG(doc, path, preview.Options{Size: cfg.Preview.Size, Inline: cfg.Preview.Inline})
	if err != nil {
		return err
	}
	fmt.Println(au.Green("Preview written to " + path))
	return nil
}
