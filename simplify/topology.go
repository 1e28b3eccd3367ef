package simplify

import (
	"github.com/gorustyt/meshflat/common"
)

// walkFan returns the faces around v in shared-edge order. The walk starts
// at a boundary edge when v has one, so an open fan is walked end to end.
// closed reports that the walk came back to its first face.
func (g *Graph) walkFan(v int) (faces []int, closed bool) {
	incident := g.IncidentEdges(v)
	if len(incident) == 0 {
		return nil, false
	}

	// face -> its two edges through v
	spokes := make(map[int][]int, len(incident))
	start := incident[0]
	for _, ei := range incident {
		e := &g.edges[ei]
		for _, f := range e.Faces {
			if f != NullIdx {
				spokes[f] = append(spokes[f], ei)
			}
		}
		if e.IsBoundary() && !g.edges[start].IsBoundary() {
			start = ei
		}
	}

	visited := make(map[int]struct{}, len(spokes))
	first := g.edges[start].Faces[0]
	face, via := first, start
	for {
		faces = append(faces, face)
		visited[face] = struct{}{}

		s := spokes[face]
		if len(s) != 2 {
			return faces, false
		}
		out := s[0]
		if out == via {
			out = s[1]
		}

		next := g.edges[out].OtherFace(face)
		if next == NullIdx {
			return faces, false
		}
		if next == first {
			return faces, true
		}
		if _, ok := visited[next]; ok {
			return faces, false
		}
		face, via = next, out
	}
}

// IsSimplePoint reports whether the faces around v form one closed fan.
// Vertices with fewer than two edges, or touching a boundary edge, are never
// simple.
func (g *Graph) IsSimplePoint(v int) bool {
	incident := g.IncidentEdges(v)
	if len(incident) < 2 {
		return false
	}

	// Every face of a closed fan is reached through exactly two of its edges.
	open := make(map[int]struct{}, len(incident))
	toggle := func(f int) {
		if _, ok := open[f]; ok {
			delete(open, f)
		} else {
			open[f] = struct{}{}
		}
	}
	for _, ei := range incident {
		e := &g.edges[ei]
		if e.IsBoundary() {
			return false
		}
		toggle(e.Faces[0])
		toggle(e.Faces[1])
	}
	if len(open) != 0 {
		return false
	}

	// Two fans pinched at v pass the toggle test; the walk tells them apart.
	faces, closed := g.walkFan(v)
	return closed && len(faces) == len(incident)
}

// AngleAtPoint sums the unsigned angles between the normals of consecutive
// faces around v. A closed fan also counts the step from the last face back
// to the first. Zero means every face around v lies in one plane.
func (g *Graph) AngleAtPoint(v int) float64 {
	faces, closed := g.walkFan(v)
	if len(faces) < 2 {
		return 0
	}
	sum := 0.0
	for i := 1; i < len(faces); i++ {
		sum += common.AngleBetween(g.faces[faces[i-1]].Normal, g.faces[faces[i]].Normal)
	}
	if closed {
		sum += common.AngleBetween(g.faces[faces[len(faces)-1]].Normal, g.faces[faces[0]].Normal)
	}
	return sum
}

// IsRedundant reports whether v is a simple point whose fan is flat.
func (g *Graph) IsRedundant(v int) bool {
	return g.IsSimplePoint(v) && g.AngleAtPoint(v) <= g.angleEps
}
