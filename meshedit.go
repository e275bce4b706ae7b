// Core of a 2D polygon editor: click vertices onto a canvas, edit their color
// and texture attributes, close the shape, and export a triangulated mesh
// (vertex buffer + index buffer) as JSON.
//
// Triangulation is a plain fan from the first vertex, so only convex polygons
// given in order come out correct.
package meshedit

import "github.com/osuushi/meshedit/editor"

type Vertex = editor.Vertex
type Edge = editor.Edge
type Color = editor.Color
type TexCoords = editor.TexCoords
type Bounds = editor.Bounds
type Axis = editor.Axis
type Model = editor.Model
type Session = editor.Session
type Document = editor.Document

const (
	AxisBoth = editor.AxisBoth
	AxisX    = editor.AxisX
	AxisY    = editor.AxisY
)

// Start an editing session on an empty shape. Raw pointer coordinates are
// mapped from bounds into [-1, 1].
func NewSession(bounds Bounds) *Session {
	return editor.NewSession(editor.NewModel(bounds))
}

// Fan-triangulate the vertices and write the mesh to path, indented with
// four spaces.
func Export(path string, vertices []*Vertex) error {
	return editor.WriteFile(path, vertices, editor.Triangulate(vertices), editor.ExportOptions{Indent: "    "})
}
