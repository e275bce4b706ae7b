package script

// A headless stand-in for the editor window. Input is one command per line;
// blank lines and lines starting with # are skipped.
//
//	add X Y              click on the canvas
//	select I             pick a vertex from the points list
//	deselect
//	grab x|y|both        press an axis handle of the selected vertex
//	move X Y             drag the grabbed handle
//	release
//	drag x|y|both X Y    grab, move, release
//	color R G B          pick a color (recolors the selection)
//	tex U V ID           set texture attributes (applies to the selection)
//	fill                 bucket fill with the current color
//	close
//	export PATH
//	list                 print the points list
//
// Invalid-state and out-of-range failures are reported and skipped, like a
// button press that does nothing. Syntax errors and export failures stop the
// run.

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/osuushi/meshedit/dbg"
	"github.com/osuushi/meshedit/editor"
	"github.com/pkg/errors"
)

type Runner struct {
	Session *editor.Session
	Out     io.Writer
	Verbose bool

	// Called for every skipped command. Defaults to log.Printf.
	Warnf func(format string, args ...interface{})

	Skipped int
}

func NewRunner(s *editor.Session, out io.Writer) *Runner {
	return &Runner{Session: s, Out: out, Warnf: log.Printf}
}

func (r *Runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		err := r.Exec(strings.Fields(line))
		if err == nil {
			continue
		}
		if errors.Is(err, editor.ErrInvalidState) || errors.Is(err, editor.ErrIndexOutOfRange) {
			r.Skipped++
			r.Warnf("line %d: %s: %v", lineNo, line, err)
			continue
		}
		return errors.Wrapf(err, "line %d", lineNo)
	}
	return scanner.Err()
}

func (r *Runner) Exec(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	s := r.Session
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "add":
		p, err := floats(args, 2)
		if err != nil {
			return err
		}
		index, err := s.Click(p[0], p[1])
		if err != nil {
			return err
		}
		r.trace("added %d", index)
	case "select":
		if err := arity(args, 1); err != nil {
			return err
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrap(err, "select")
		}
		if err := s.Select(index); err != nil {
			return err
		}
		r.trace("selected %d", index)
	case "deselect":
		s.Deselect()
	case "grab":
		if err := arity(args, 1); err != nil {
			return err
		}
		axis, err := editor.ParseAxis(args[0])
		if err != nil {
			return err
		}
		return s.BeginDrag(axis)
	case "move":
		p, err := floats(args, 2)
		if err != nil {
			return err
		}
		if err := s.Drag(p[0], p[1]); err != nil {
			return err
		}
		if i, ok := s.Selected(); ok {
			r.trace("moved %d", i)
		}
	case "release":
		s.EndDrag()
	case "drag":
		if err := arity(args, 3); err != nil {
			return err
		}
		if err := r.Exec([]string{"grab", args[0]}); err != nil {
			return err
		}
		defer s.EndDrag()
		return r.Exec(append([]string{"move"}, args[1:]...))
	case "color":
		c, err := color(args)
		if err != nil {
			return err
		}
		return s.SetColor(c)
	case "tex":
		if err := arity(args, 3); err != nil {
			return err
		}
		uv, err := floats(args[:2], 2)
		if err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[2], 10, 32)
		if err != nil {
			return errors.Wrap(err, "tex id")
		}
		return s.SetTex(editor.TexCoords{U: uv[0], V: uv[1]}, uint32(id))
	case "fill":
		s.Fill()
	case "close":
		return s.Close()
	case "export":
		if err := arity(args, 1); err != nil {
			return err
		}
		if err := s.ExportTo(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(r.Out, "Exported to %s\n", args[0])
	case "list":
		fmt.Fprint(r.Out, s.Model.Describe())
	default:
		return errors.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (r *Runner) trace(format string, index int) {
	if !r.Verbose {
		return
	}
	v := r.Session.Model.Vertices()[index]
	fmt.Fprintf(r.Out, format+" %s %s\n", index, dbg.Name(v.ID), v)
}

func arity(args []string, n int) error {
	if len(args) != n {
		return errors.Errorf("expected %d arguments, got %d", n, len(args))
	}
	return nil
}

func floats(args []string, n int) ([]float64, error) {
	if err := arity(args, n); err != nil {
		return nil, err
	}
	result := make([]float64, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		result[i] = f
	}
	return result, nil
}

func color(args []string) (editor.Color, error) {
	if err := arity(args, 3); err != nil {
		return editor.Color{}, err
	}
	var rgb [3]uint8
	for i, a := range args {
		c, err := strconv.ParseUint(a, 10, 8)
		if err != nil {
			return editor.Color{}, errors.Wrapf(err, "color component %d", i+1)
		}
		rgb[i] = uint8(c)
	}
	return editor.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}
