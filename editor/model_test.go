package editor

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addPoints(t *testing.T, m *Model, points ...[2]float64) {
	for _, p := range points {
		_, err := m.AddVertex(p[0], p[1], White, TexCoords{}, 0)
		require.NoError(t, err)
	}
}

func TestNormalize(t *testing.T) {
	for _, r := range [][2]float64{{-1, 1}, {0, 800}, {-300, 50}} {
		min, max := r[0], r[1]
		assert.InDelta(t, -1, Normalize(min, min, max), Tolerance)
		assert.InDelta(t, 1, Normalize(max, min, max), Tolerance)
		assert.InDelta(t, 0, Normalize((min+max)/2, min, max), Tolerance)
	}
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		assert.Equal(t, expectedIndexes[i+3], CircularIndex(i, n))
	}
}

func TestAddVertex(t *testing.T) {
	t.Run("edges trail vertices", func(t *testing.T) {
		m := NewModel(UnitBounds)
		assert.Len(t, m.Edges(), 0)
		for i := 0; i < 6; i++ {
			index, err := m.AddVertex(0.1*float64(i), 0, White, TexCoords{}, 0)
			require.NoError(t, err)
			assert.Equal(t, i, index)
			assert.Len(t, m.Edges(), i)
		}
		for i, e := range m.Edges() {
			assert.Same(t, m.Vertices()[i], e.Start)
			assert.Same(t, m.Vertices()[i+1], e.End)
		}
	})

	t.Run("normalizes from bounds", func(t *testing.T) {
		m := NewModel(Bounds{MinX: 0, MaxX: 800, MinY: 0, MaxY: 600})
		addPoints(t, m, [2]float64{0, 600}, [2]float64{400, 300}, [2]float64{800, 0})
		v := m.Vertices()
		assert.InDelta(t, -1, v[0].X, Tolerance)
		assert.InDelta(t, 1, v[0].Y, Tolerance)
		assert.InDelta(t, 0, v[1].X, Tolerance)
		assert.InDelta(t, 0, v[1].Y, Tolerance)
		assert.InDelta(t, 1, v[2].X, Tolerance)
		assert.InDelta(t, -1, v[2].Y, Tolerance)
	})

	t.Run("clamps outside the canvas", func(t *testing.T) {
		m := NewModel(Bounds{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100})
		addPoints(t, m, [2]float64{-50, 250})
		v := m.Vertices()[0]
		assert.Equal(t, -1.0, v.X)
		assert.Equal(t, 1.0, v.Y)
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		m := NewModel(UnitBounds)
		addPoints(t, m, [2]float64{0.5, 0.5}, [2]float64{0.5, 0.5})
		assert.Equal(t, 2, m.Len())
		assert.NotEqual(t, m.Vertices()[0].ID, m.Vertices()[1].ID)
	})

	t.Run("invalid bounds fall back to unit", func(t *testing.T) {
		m := NewModel(Bounds{})
		assert.Equal(t, UnitBounds, m.Bounds())

		m = NewModel(Bounds{MinX: math.Inf(-1), MaxX: math.Inf(1), MinY: 0, MaxY: 1})
		assert.Equal(t, UnitBounds, m.Bounds())

		m = NewModel(Bounds{MinX: 0, MaxX: 1, MinY: math.NaN(), MaxY: 1})
		assert.Equal(t, UnitBounds, m.Bounds())
	})

	t.Run("rejects non-finite coordinates", func(t *testing.T) {
		m := NewModel(UnitBounds)
		addPoints(t, m, [2]float64{0.5, 0.5})
		for _, p := range [][2]float64{
			{math.NaN(), 0.5},
			{0.5, math.NaN()},
			{math.Inf(1), 0},
			{0, math.Inf(-1)},
		} {
			index, err := m.AddVertex(p[0], p[1], White, TexCoords{}, 0)
			assert.Equal(t, -1, index)
			assert.True(t, errors.Is(err, ErrInvalidState), "%v", p)
		}
		assert.Equal(t, 1, m.Len())
		assert.Empty(t, m.Edges())
	})
}

func TestCloseShape(t *testing.T) {
	for n := 0; n < 3; n++ {
		m := NewModel(UnitBounds)
		for i := 0; i < n; i++ {
			addPoints(t, m, [2]float64{float64(i) * 0.1, 0})
		}
		edgesBefore := len(m.Edges())
		assert.False(t, m.CloseShape(), "%d vertices", n)
		assert.False(t, m.Closed())
		assert.Len(t, m.Edges(), edgesBefore)
	}

	m := NewModel(UnitBounds)
	addPoints(t, m, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1})
	assert.True(t, m.CloseShape())
	assert.True(t, m.Closed())
	require.Len(t, m.Edges(), m.Len())

	closing := m.Edges()[3]
	assert.Same(t, m.Vertices()[3], closing.Start)
	assert.Same(t, m.Vertices()[0], closing.End)

	assert.False(t, m.CloseShape())
	assert.Len(t, m.Edges(), 4)

	index, err := m.AddVertex(0.5, 0.5, White, TexCoords{}, 0)
	assert.Equal(t, -1, index)
	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.Equal(t, 4, m.Len())
	assert.Len(t, m.Edges(), 4)
}

func TestMoveVertex(t *testing.T) {
	setup := func() *Model {
		m := NewModel(UnitBounds)
		addPoints(t, m, [2]float64{0, 0}, [2]float64{0.5, 0.5})
		return m
	}

	t.Run("both axes", func(t *testing.T) {
		m := setup()
		require.NoError(t, m.MoveVertex(1, -0.25, 0.75, AxisBoth))
		v := m.Vertices()[1]
		assert.InDelta(t, -0.25, v.X, Tolerance)
		assert.InDelta(t, 0.75, v.Y, Tolerance)
		// The edge follows without being rebuilt.
		assert.Same(t, v, m.Edges()[0].End)
	})

	t.Run("x only", func(t *testing.T) {
		m := setup()
		require.NoError(t, m.MoveVertex(1, -0.25, 0.75, AxisX))
		v := m.Vertices()[1]
		assert.InDelta(t, -0.25, v.X, Tolerance)
		assert.InDelta(t, 0.5, v.Y, Tolerance)
	})

	t.Run("y only", func(t *testing.T) {
		m := setup()
		require.NoError(t, m.MoveVertex(1, -0.25, 0.75, AxisY))
		v := m.Vertices()[1]
		assert.InDelta(t, 0.5, v.X, Tolerance)
		assert.InDelta(t, 0.75, v.Y, Tolerance)
	})

	t.Run("out of range", func(t *testing.T) {
		m := setup()
		for _, index := range []int{-1, 2, 100} {
			err := m.MoveVertex(index, 0.9, 0.9, AxisBoth)
			assert.True(t, errors.Is(err, ErrIndexOutOfRange))
		}
		assert.InDelta(t, 0, m.Vertices()[0].X, Tolerance)
		assert.InDelta(t, 0.5, m.Vertices()[1].X, Tolerance)
	})

	t.Run("non-finite", func(t *testing.T) {
		m := setup()
		for _, axis := range []Axis{AxisBoth, AxisX, AxisY} {
			err := m.MoveVertex(1, math.NaN(), math.Inf(1), axis)
			assert.True(t, errors.Is(err, ErrInvalidState), "%v", axis)
		}
		v := m.Vertices()[1]
		assert.InDelta(t, 0.5, v.X, Tolerance)
		assert.InDelta(t, 0.5, v.Y, Tolerance)

		// Only the constrained axis has to be finite.
		require.NoError(t, m.MoveVertex(1, -0.5, math.NaN(), AxisX))
		assert.InDelta(t, -0.5, v.X, Tolerance)
		assert.InDelta(t, 0.5, v.Y, Tolerance)
	})
}

func TestVertexAttributes(t *testing.T) {
	m := NewModel(UnitBounds)
	addPoints(t, m, [2]float64{0, 0}, [2]float64{0.5, 0}, [2]float64{0.5, 0.5})

	red := Color{255, 0, 0}
	require.NoError(t, m.SetVertexColor(1, red))
	assert.Equal(t, red, m.Vertices()[1].Color)
	assert.Equal(t, White, m.Vertices()[0].Color)

	require.NoError(t, m.SetVertexTex(2, TexCoords{0.25, 0.75}, 7))
	assert.Equal(t, TexCoords{0.25, 0.75}, m.Vertices()[2].TexCoords)
	assert.Equal(t, uint32(7), m.Vertices()[2].TexID)

	assert.True(t, errors.Is(m.SetVertexColor(3, red), ErrIndexOutOfRange))
	assert.True(t, errors.Is(m.SetVertexTex(-1, TexCoords{}, 1), ErrIndexOutOfRange))
}

func TestFill(t *testing.T) {
	m := NewModel(UnitBounds)
	addPoints(t, m, [2]float64{0, 0}, [2]float64{0.5, 0}, [2]float64{0.5, 0.5})
	require.NoError(t, m.SetVertexTex(1, TexCoords{1, 1}, 3))
	require.NoError(t, m.SetVertexColor(2, Color{1, 2, 3}))

	blue := Color{0, 0, 255}
	m.Fill(blue)
	for _, v := range m.Vertices() {
		assert.Equal(t, blue, v.Color)
	}
	assert.InDelta(t, 0.5, m.Vertices()[1].X, Tolerance)
	assert.Equal(t, TexCoords{1, 1}, m.Vertices()[1].TexCoords)
	assert.Equal(t, uint32(3), m.Vertices()[1].TexID)
}

func TestLookup(t *testing.T) {
	m := NewModel(UnitBounds)
	addPoints(t, m, [2]float64{0, 0}, [2]float64{0.5, 0})
	v := m.Vertices()[1]

	found, ok := m.Lookup(v.ID)
	assert.True(t, ok)
	assert.Same(t, v, found)

	index, ok := m.IndexOf(v.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, index)

	_, ok = m.Lookup(VertexID(99))
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	m := NewModel(UnitBounds)
	addPoints(t, m, [2]float64{0.5, -0.5}, [2]float64{0, 1})
	assert.Equal(t, "Point 0: (0.5, -0.5)\nPoint 1: (0.0, 1.0)\n", m.Describe())

	assert.Equal(t, "(-1.0, 0.25)", (&Vertex{X: -1, Y: 0.25}).String())
}

type recordingPresenter struct {
	added, changed []*Vertex
	edges          []*Edge
}

func (p *recordingPresenter) VertexAdded(v *Vertex) {
	v.Handle = len(p.added)
	p.added = append(p.added, v)
}

func (p *recordingPresenter) VertexChanged(v *Vertex) { p.changed = append(p.changed, v) }

func (p *recordingPresenter) EdgeAdded(e *Edge) { p.edges = append(p.edges, e) }

func TestPresenter(t *testing.T) {
	m := NewModel(UnitBounds)
	p := &recordingPresenter{}
	m.SetPresenter(p)

	addPoints(t, m, [2]float64{0, 0}, [2]float64{0.5, 0}, [2]float64{0.5, 0.5})
	assert.Len(t, p.added, 3)
	assert.Len(t, p.edges, 2)
	assert.Equal(t, 2, m.Vertices()[2].Handle)

	require.NoError(t, m.MoveVertex(2, 0, 0, AxisX))
	require.Len(t, p.changed, 1)
	assert.Same(t, m.Vertices()[2], p.changed[0])

	assert.True(t, m.CloseShape())
	assert.Len(t, p.edges, 3)

	m.SetPresenter(nil)
	m.Fill(White)
	assert.Len(t, p.changed, 1)
}
