package simplify

import (
	"github.com/pkg/errors"
)

// ComputeOutline returns the boundary loop of part: the vertices next to the
// group that are not in it, ordered so that consecutive entries share a
// boundary edge of the part's faces. The loop follows the winding of those
// faces, which keeps them on its left. It also stores the loop in
// part.Outline.
//
// A part whose boundary is not one simple loop covering every open
// neighbour fails with ErrMalformedOutline.
func (g *Graph) ComputeOutline(part *FlatPart) ([]int, error) {
	inGroup := make(map[int]struct{}, len(part.Verts))
	for _, v := range part.Verts {
		inGroup[v] = struct{}{}
	}
	inPart := make(map[int]struct{}, len(part.Faces))
	for _, f := range part.Faces {
		inPart[f] = struct{}{}
	}

	// Open neighbours, in discovery order.
	var open []int
	isOpen := make(map[int]struct{})
	for _, v := range part.Verts {
		for _, ei := range g.adjacency[v] {
			o := g.edges[ei].Other(v)
			if _, ok := inGroup[o]; ok {
				continue
			}
			if _, ok := isOpen[o]; !ok {
				isOpen[o] = struct{}{}
				open = append(open, o)
			}
		}
	}
	if len(open) < 3 {
		return nil, errors.Wrapf(ErrMalformedOutline, "part at vertex %d has %d open neighbours", part.Verts[0], len(open))
	}

	// Directed boundary edges of the part, taken in face winding.
	succ := make(map[int]int, len(open))
	for _, f := range part.Faces {
		t := g.faces[f].Verts
		for j := 0; j < 3; j++ {
			a, b := t[j], t[(j+1)%3]
			ei := g.findEdge(a, b)
			if ei == NullIdx {
				return nil, errors.Wrapf(ErrMalformedOutline, "face %d edge (%d, %d) missing from adjacency", f, a, b)
			}
			if _, ok := inPart[g.edges[ei].OtherFace(f)]; ok {
				continue
			}
			if _, ok := isOpen[a]; !ok {
				return nil, errors.Wrapf(ErrMalformedOutline, "boundary edge (%d, %d) leaves the open set", a, b)
			}
			if _, dup := succ[a]; dup {
				return nil, errors.Wrapf(ErrMalformedOutline, "outline pinched at vertex %d", a)
			}
			succ[a] = b
		}
	}

	// Pull each vertex's successor into place behind it.
	loop := append([]int(nil), open...)
	pos := make(map[int]int, len(loop))
	for i, v := range loop {
		pos[v] = i
	}
	for i := 1; i < len(loop); i++ {
		want, ok := succ[loop[i-1]]
		j, found := pos[want]
		if !ok || !found || j < i {
			return nil, errors.Wrapf(ErrMalformedOutline, "no neighbour adjacent to vertex %d", loop[i-1])
		}
		loop[i], loop[j] = loop[j], loop[i]
		pos[loop[i]] = i
		pos[loop[j]] = j
	}
	if succ[loop[len(loop)-1]] != loop[0] || len(succ) != len(loop) {
		return nil, errors.Wrapf(ErrMalformedOutline, "outline of part at vertex %d does not close", part.Verts[0])
	}

	part.Outline = loop
	return loop, nil
}
