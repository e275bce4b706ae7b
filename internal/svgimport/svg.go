package svgimport

// This reads the first <polygon> out of an SVG document so it can be replayed
// into the editor as clicks. It is not a full (or even correct) SVG parser:
// transforms, paths, and units are ignored. The canvas range comes from the
// viewBox, then width/height, then the polygon's own bounding box.

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/meshedit/editor"
	"github.com/pkg/errors"
)

type Point struct {
	X, Y float64
}

type Shape struct {
	Points []Point
	Bounds editor.Bounds
}

func Load(r io.Reader) (shape *Shape, err error) {
	defer func() {
		recoveredErr := HandleImportPanicRecover(recover())
		if recoveredErr != nil {
			shape = nil
			err = recoveredErr
		}
	}()

	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		fatalf("no polygon found")
	}
	if len(polygons) > 1 {
		fatalf("more than one polygon found")
	}

	points := parsePoints(polygons[0].Attributes["points"])
	if len(points) == 0 {
		fatalf("polygon has no points")
	}

	// Ensure that the polygon is CCW
	if signedArea(points) < 0 {
		reverse(points)
	}

	return &Shape{
		Points: points,
		Bounds: canvasBounds(rootEl, points),
	}, nil
}

func LoadFile(path string) (*Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	shape, err := Load(f)
	return shape, errors.Wrapf(err, "import %s", path)
}

// Replay clicks every point into the session, then closes the shape if asked
// and possible.
func (shape *Shape) Replay(s *editor.Session, closeShape bool) error {
	for _, p := range shape.Points {
		if _, err := s.Click(p.X, p.Y); err != nil {
			return err
		}
	}
	if closeShape {
		return s.Close()
	}
	return nil
}

// Points may be separated by whitespace or commas, in any mix.
func parsePoints(s string) []Point {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		fatalf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		points = append(points, Point{parseFloat(fields[i]), parseFloat(fields[i+1])})
	}
	return points
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		fatalf("invalid number %q", s)
	}
	return f
}

func canvasBounds(rootEl *svgparser.Element, points []Point) editor.Bounds {
	if viewBox, ok := rootEl.Attributes["viewBox"]; ok {
		fields := strings.FieldsFunc(viewBox, func(r rune) bool { return r == ',' || r == ' ' })
		if len(fields) != 4 {
			fatalf("invalid viewBox %q", viewBox)
		}
		x, y := parseFloat(fields[0]), parseFloat(fields[1])
		w, h := parseFloat(fields[2]), parseFloat(fields[3])
		if w > 0 && h > 0 {
			return editor.Bounds{MinX: x, MaxX: x + w, MinY: y, MaxY: y + h}
		}
	}

	width, hasWidth := rootEl.Attributes["width"]
	height, hasHeight := rootEl.Attributes["height"]
	if hasWidth && hasHeight {
		w := parseFloat(strings.TrimSuffix(width, "px"))
		h := parseFloat(strings.TrimSuffix(height, "px"))
		if w > 0 && h > 0 {
			return editor.Bounds{MaxX: w, MaxY: h}
		}
	}

	b := editor.Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
	for _, p := range points {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	if b.MaxX <= b.MinX || b.MaxY <= b.MinY {
		fatalf("degenerate polygon bounds")
	}
	return b
}

// Shoelace formula. Positive for counterclockwise points in a Y-up system.
func signedArea(points []Point) float64 {
	var area float64
	for i, p := range points {
		q := points[editor.CircularIndex(i+1, len(points))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}

func reverse(points []Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
