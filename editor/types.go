package editor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

type VertexID uint64

type Color struct {
	R, G, B uint8
}

var White = Color{255, 255, 255}

type TexCoords struct {
	U, V float64
}

// Vertices are always referenced by pointer once they are in a model, so edges
// and presentation handles stay valid when the vertex is edited.
type Vertex struct {
	ID        VertexID
	X, Y      float64
	Color     Color
	TexCoords TexCoords
	TexID     uint32

	// Presentation item for this vertex. The core never inspects it.
	Handle interface{}
}

func (v *Vertex) String() string {
	return fmt.Sprintf("(%s, %s)", formatCoord(v.X), formatCoord(v.Y))
}

// Whole numbers keep a trailing ".0" so the points list reads as floats.
func formatCoord(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !math.IsInf(f, 0) && f == math.Trunc(f) {
		s += ".0"
	}
	return s
}

type Edge struct {
	Start *Vertex
	End   *Vertex

	Handle interface{}
}

// Which axes a move is allowed to change.
type Axis int

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "both"
	}
}

func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "both", "xy", "":
		return AxisBoth, nil
	}
	return AxisBoth, errors.Errorf("unknown axis %q", s)
}

// Raw pointer coordinates are mapped from these ranges into [-1, 1].
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// The canvas range used when none is configured. Pointer coordinates are
// already in clip space, so normalization is the identity.
var UnitBounds = Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
