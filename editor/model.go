package editor

import (
	"fmt"
	"strings"
)

// A single polyline that can be closed into a polygon exactly once. Edge i
// always joins vertex i to vertex i+1, and the closing edge joins the last
// vertex back to vertex 0.
type Model struct {
	bounds   Bounds
	vertices []*Vertex
	edges    []*Edge
	byID     map[VertexID]int
	nextID   VertexID
	closed   bool

	presenter Presenter
}

// A model with invalid bounds (empty or inverted range on either axis) falls
// back to UnitBounds.
func NewModel(bounds Bounds) *Model {
	if !bounds.valid() {
		bounds = UnitBounds
	}
	return &Model{
		bounds:    bounds,
		byID:      make(map[VertexID]int),
		nextID:    1,
		presenter: NopPresenter{},
	}
}

// Attach a presentation layer. Passing nil detaches it.
func (m *Model) SetPresenter(p Presenter) {
	if p == nil {
		p = NopPresenter{}
	}
	m.presenter = p
}

func (m *Model) Bounds() Bounds { return m.bounds }

func (m *Model) Closed() bool { return m.closed }

func (m *Model) Len() int { return len(m.vertices) }

// The returned slices are the model's own; callers must not append to them.
func (m *Model) Vertices() []*Vertex { return m.vertices }

func (m *Model) Edges() []*Edge { return m.edges }

func (m *Model) Vertex(index int) (*Vertex, error) {
	if index < 0 || index >= len(m.vertices) {
		return nil, outOfRange(index, len(m.vertices))
	}
	return m.vertices[index], nil
}

func (m *Model) Lookup(id VertexID) (*Vertex, bool) {
	i, ok := m.byID[id]
	if !ok {
		return nil, false
	}
	return m.vertices[i], true
}

func (m *Model) IndexOf(id VertexID) (int, bool) {
	i, ok := m.byID[id]
	return i, ok
}

func (m *Model) AddVertex(rawX, rawY float64, color Color, tex TexCoords, texID uint32) (int, error) {
	if m.closed {
		return -1, invalidStatef("cannot add a vertex to a closed shape")
	}
	if !finite(rawX) || !finite(rawY) {
		return -1, invalidStatef("non-finite coordinates (%v, %v)", rawX, rawY)
	}

	v := &Vertex{
		ID:        m.nextID,
		X:         m.bounds.normalizeX(rawX),
		Y:         m.bounds.normalizeY(rawY),
		Color:     color,
		TexCoords: tex,
		TexID:     texID,
	}
	m.nextID++
	index := len(m.vertices)
	m.vertices = append(m.vertices, v)
	m.byID[v.ID] = index
	m.presenter.VertexAdded(v)

	if index > 0 {
		m.addEdge(m.vertices[index-1], v)
	}
	return index, nil
}

func (m *Model) addEdge(start, end *Vertex) {
	e := &Edge{Start: start, End: end}
	m.edges = append(m.edges, e)
	m.presenter.EdgeAdded(e)
}

// Returns false, leaving the model untouched, if there are fewer than three
// vertices or the shape is already closed.
func (m *Model) CloseShape() bool {
	n := len(m.vertices)
	if m.closed || n < 3 {
		return false
	}
	m.addEdge(m.vertices[n-1], m.vertices[CircularIndex(n, n)])
	m.closed = true
	return true
}

// Only the coordinates named by axis are overwritten. Edges hold the vertex
// itself, so they follow the move without being touched.
func (m *Model) MoveVertex(index int, rawX, rawY float64, axis Axis) error {
	v, err := m.Vertex(index)
	if err != nil {
		return err
	}
	if (axis != AxisY && !finite(rawX)) || (axis != AxisX && !finite(rawY)) {
		return invalidStatef("non-finite coordinates (%v, %v)", rawX, rawY)
	}
	if axis != AxisY {
		v.X = m.bounds.normalizeX(rawX)
	}
	if axis != AxisX {
		v.Y = m.bounds.normalizeY(rawY)
	}
	m.presenter.VertexChanged(v)
	return nil
}

func (m *Model) SetVertexColor(index int, color Color) error {
	v, err := m.Vertex(index)
	if err != nil {
		return err
	}
	v.Color = color
	m.presenter.VertexChanged(v)
	return nil
}

func (m *Model) SetVertexTex(index int, tex TexCoords, texID uint32) error {
	v, err := m.Vertex(index)
	if err != nil {
		return err
	}
	v.TexCoords = tex
	v.TexID = texID
	m.presenter.VertexChanged(v)
	return nil
}

// Bucket fill. This is a flat override of every vertex color; edges and
// regions play no part.
func (m *Model) Fill(color Color) {
	for _, v := range m.vertices {
		v.Color = color
		m.presenter.VertexChanged(v)
	}
}

func (m *Model) Triangulate() []uint32 {
	return Triangulate(m.vertices)
}

// One line per vertex, in the form shown by the points list.
func (m *Model) Describe() string {
	var sb strings.Builder
	for i, v := range m.vertices {
		fmt.Fprintf(&sb, "Point %d: %s\n", i, v)
	}
	return sb.String()
}
