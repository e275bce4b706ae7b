package editor

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Document is the exported mesh. Field order and names are the file format;
// there is no version field.
type Document struct {
	Vertices []DocumentVertex `json:"vertices"`
	Indices  []uint32         `json:"indices"`
}

type DocumentVertex struct {
	Position  [2]float64 `json:"position"`
	Color     [3]uint8   `json:"color"`
	TexCoords [2]float64 `json:"texCoords"`
	TexID     uint32     `json:"texID"`
}

type ExportOptions struct {
	// Empty means compact output.
	Indent string
}

func NewDocument(vertices []*Vertex, indices []uint32) *Document {
	doc := &Document{
		Vertices: make([]DocumentVertex, len(vertices)),
		Indices:  indices,
	}
	if doc.Indices == nil {
		doc.Indices = []uint32{}
	}
	for i, v := range vertices {
		doc.Vertices[i] = DocumentVertex{
			Position:  [2]float64{v.X, v.Y},
			Color:     [3]uint8{v.Color.R, v.Color.G, v.Color.B},
			TexCoords: [2]float64{v.TexCoords.U, v.TexCoords.V},
			TexID:     v.TexID,
		}
	}
	return doc
}

// Export serializes the mesh in compact form.
func Export(vertices []*Vertex, indices []uint32) ([]byte, error) {
	return json.Marshal(NewDocument(vertices, indices))
}

func (doc *Document) Marshal(opts ExportOptions) ([]byte, error) {
	var data []byte
	var err error
	if opts.Indent != "" {
		data, err = json.MarshalIndent(doc, "", opts.Indent)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Wrap(err, "encode mesh")
	}
	return data, nil
}

func (doc *Document) Encode(w io.Writer, opts ExportOptions) error {
	data, err := doc.Marshal(opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// The document is encoded before path is opened, so an encode failure leaves
// the file alone. The write itself is not transactional: a failure part way
// through leaves whatever was already written at path.
func WriteFile(path string, vertices []*Vertex, indices []uint32, opts ExportOptions) error {
	data, err := NewDocument(vertices, indices).Marshal(opts)
	if err != nil {
		return err
	}
	return wrapIO(os.WriteFile(path, data, 0644), "export "+path)
}

// Export triangulates the current vertices and writes the mesh to path. Open
// shapes are exported too; the fan does not care whether the closing edge
// exists.
func (m *Model) Export(path string, opts ExportOptions) error {
	return WriteFile(path, m.vertices, m.Triangulate(), opts)
}

func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode mesh")
	}
	for _, i := range doc.Indices {
		if int(i) >= len(doc.Vertices) {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "mesh index %d, %d vertices", i, len(doc.Vertices))
		}
	}
	if len(doc.Indices)%3 != 0 {
		return nil, errors.Errorf("mesh index count %d is not a multiple of 3", len(doc.Indices))
	}
	return &doc, nil
}

func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapIO(err, "read "+path)
	}
	return Decode(bytes.NewReader(data))
}
