package editor

// Presenter is implemented by whatever draws the model. Each callback receives
// the vertex or edge itself, so the presenter can keep its own item in Handle
// and update it directly instead of searching its scene.
type Presenter interface {
	VertexAdded(v *Vertex)
	VertexChanged(v *Vertex)
	EdgeAdded(e *Edge)
}

type NopPresenter struct{}

func (NopPresenter) VertexAdded(*Vertex)   {}
func (NopPresenter) VertexChanged(*Vertex) {}
func (NopPresenter) EdgeAdded(*Edge)       {}
