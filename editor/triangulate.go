package editor

// Fan triangulation anchored at vertex 0:
/*
	     2
	    /|\
	   / | \
	  3  |  1
	   \ | /
	    \|/
	     0
*/
// This is only correct for convex polygons given in order. Concave or
// self-intersecting input produces overlapping triangles, and that is accepted.
//
// Fewer than three vertices gives an empty (non-nil) index list.
func Triangulate(vertices []*Vertex) []uint32 {
	n := len(vertices)
	if n < 3 {
		return []uint32{}
	}
	indices := make([]uint32, 0, 3*(n-2))
	for i := 1; i < n-1; i++ {
		indices = append(indices, 0, uint32(i), uint32(i+1))
	}
	return indices
}
