package editor

import "github.com/pkg/errors"

// Session holds the interactive state that sits on top of a model: the color
// and texture applied to new clicks, the selected vertex, and the axis of an
// active drag. The presentation layer owns one session per window.
type Session struct {
	Model *Model

	Color     Color
	TexCoords TexCoords
	TexID     uint32
	Export    ExportOptions

	selected VertexID // zero when nothing is selected
	dragging bool
	dragAxis Axis
}

func NewSession(m *Model) *Session {
	return &Session{Model: m, Color: White}
}

// Click places a vertex with the session's current attributes.
func (s *Session) Click(rawX, rawY float64) (int, error) {
	return s.Model.AddVertex(rawX, rawY, s.Color, s.TexCoords, s.TexID)
}

func (s *Session) Select(index int) error {
	v, err := s.Model.Vertex(index)
	if err != nil {
		return err
	}
	s.selected = v.ID
	s.dragging = false
	return nil
}

func (s *Session) Deselect() {
	s.selected = 0
	s.dragging = false
}

// Selected returns the index of the selected vertex.
func (s *Session) Selected() (int, bool) {
	if s.selected == 0 {
		return -1, false
	}
	return s.Model.IndexOf(s.selected)
}

func (s *Session) selectedIndex() (int, error) {
	i, ok := s.Selected()
	if !ok {
		return -1, invalidStatef("no vertex selected")
	}
	return i, nil
}

// BeginDrag starts a constrained move of the selected vertex, as when one of
// its axis handles is grabbed.
func (s *Session) BeginDrag(axis Axis) error {
	if _, err := s.selectedIndex(); err != nil {
		return err
	}
	s.dragging = true
	s.dragAxis = axis
	return nil
}

func (s *Session) Drag(rawX, rawY float64) error {
	if !s.dragging {
		return invalidStatef("no drag in progress")
	}
	i, err := s.selectedIndex()
	if err != nil {
		return err
	}
	return s.Model.MoveVertex(i, rawX, rawY, s.dragAxis)
}

func (s *Session) EndDrag() {
	s.dragging = false
}

func (s *Session) Dragging() (Axis, bool) {
	return s.dragAxis, s.dragging
}

// SetColor changes the current color and recolors the selection, if any.
func (s *Session) SetColor(c Color) error {
	s.Color = c
	i, ok := s.Selected()
	if !ok {
		return nil
	}
	return s.Model.SetVertexColor(i, c)
}

// SetTex changes the current texture attributes and applies them to the
// selection, if any.
func (s *Session) SetTex(tex TexCoords, texID uint32) error {
	s.TexCoords = tex
	s.TexID = texID
	i, ok := s.Selected()
	if !ok {
		return nil
	}
	return s.Model.SetVertexTex(i, tex, texID)
}

func (s *Session) Fill() {
	s.Model.Fill(s.Color)
}

func (s *Session) Close() error {
	if !s.Model.CloseShape() {
		if s.Model.Closed() {
			return invalidStatef("shape is already closed")
		}
		return invalidStatef("need at least 3 vertices to close, have %d", s.Model.Len())
	}
	return nil
}

func (s *Session) ExportTo(path string) error {
	if path == "" {
		return errors.New("export path is empty")
	}
	return s.Model.Export(path, s.Export)
}
