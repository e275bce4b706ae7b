package preview

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/meshedit/editor"
	"github.com/pkg/errors"
)

type Options struct {
	// Side length of the square image, padding excluded.
	Size int
	// Print the image inline in the terminal (iTerm only).
	Inline bool
}

const padding = 20

// Render draws the mesh the way it would look on screen. Clip space is mapped
// onto the image with Y up. Each triangle is filled with the average of its
// vertex colors, then the outline and the vertices are drawn on top.
func Render(doc *editor.Document, size int) *gg.Context {
	if size <= 0 {
		size = 512
	}
	width := size + padding*2
	c := gg.NewContext(width, width)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(width))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(width))
	c.Scale(1, -1)

	// Translate for padding, then map [-1, 1] onto the canvas
	c.Translate(padding, padding)
	c.Scale(float64(size)/2, float64(size)/2)
	c.Translate(1, 1)

	vertices := doc.Vertices
	for i := 0; i+2 < len(doc.Indices); i += 3 {
		a, b, d := vertices[doc.Indices[i]], vertices[doc.Indices[i+1]], vertices[doc.Indices[i+2]]
		c.MoveTo(a.Position[0], a.Position[1])
		c.LineTo(b.Position[0], b.Position[1])
		c.LineTo(d.Position[0], d.Position[1])
		c.ClosePath()
		r, g, bl := averageColor(a, b, d)
		c.SetRGB255(r, g, bl)
		c.FillPreserve()
		c.SetRGBA(1, 1, 1, 0.25)
		c.SetLineWidth(1)
		c.Stroke()
	}

	if len(vertices) > 0 {
		c.SetLineWidth(2)
		c.MoveTo(vertices[0].Position[0], vertices[0].Position[1])
		for _, v := range vertices[1:] {
			c.LineTo(v.Position[0], v.Position[1])
		}
		if len(vertices) > 2 {
			c.ClosePath()
		}
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	dotRadius := 5 / (float64(size) / 2)
	for _, v := range vertices {
		c.DrawCircle(v.Position[0], v.Position[1], dotRadius)
		c.SetRGB255(int(v.Color[0]), int(v.Color[1]), int(v.Color[2]))
		c.FillPreserve()
		c.SetRGB(0, 0, 0)
		c.SetLineWidth(1)
		c.Stroke()
	}
	return c
}

func averageColor(vs ...editor.DocumentVertex) (int, int, int) {
	var r, g, b int
	for _, v := range vs {
		r += int(v.Color[0])
		g += int(v.Color[1])
		b += int(v.Color[2])
	}
	n := len(vs)
	return r / n, g / n, b / n
}

func SavePNG(doc *editor.Document, path string, opts Options) error {
	c := Render(doc, opts.Size)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save preview %s", path)
	}
	if opts.Inline {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}
