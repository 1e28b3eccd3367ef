package simplify

import (
	"slices"

	"github.com/gorustyt/meshflat/common"
)

// FlatPart is a maximal edge-connected group of redundant vertices together
// with every face touching them. Outline is filled by ComputeOutline.
type FlatPart struct {
	Verts   []int
	Faces   []int
	Outline []int
	Normal  common.Vec3

	gen int // graph generation the indices belong to
}

// ComputeRedundantPoints returns, in ascending order, the vertices that are
// simple points with a flat fan. Vertices without edges are skipped.
func (g *Graph) ComputeRedundantPoints() []int {
	var res []int
	for v := range g.verts {
		if len(g.IncidentEdges(v)) == 0 {
			continue
		}
		if g.IsRedundant(v) {
			res = append(res, v)
		}
	}
	return res
}

// ComputeFlatParts groups the redundant vertices into connected parts. Two
// redundant vertices are connected when they share an edge. Parts come out
// ordered by their smallest vertex; members are sorted.
func (g *Graph) ComputeFlatParts() []*FlatPart {
	redundant := g.ComputeRedundantPoints()
	pool := make([]bool, len(g.verts))
	for _, v := range redundant {
		pool[v] = true
	}

	var parts []*FlatPart
	stack := common.NewStack[int]()
	for _, seed := range redundant {
		if !pool[seed] {
			continue
		}
		pool[seed] = false

		var group []int
		stack.Clear()
		stack.Push(seed)
		for !stack.Empty() {
			v := stack.Pop()
			group = append(group, v)

			for _, ei := range g.adjacency[v] {
				o := g.edges[ei].Other(v)
				if o != NullIdx && pool[o] {
					// Leave the pool now so nothing is queued twice.
					pool[o] = false
					stack.Push(o)
				}
			}
		}
		slices.Sort(group)
		parts = append(parts, g.newPart(group))
	}
	return parts
}

func (g *Graph) newPart(group []int) *FlatPart {
	part := &FlatPart{Verts: group, gen: g.gen}
	seen := make(map[int]struct{})
	for _, v := range group {
		for _, ei := range g.adjacency[v] {
			for _, f := range g.edges[ei].Faces {
				if f == NullIdx {
					continue
				}
				if _, ok := seen[f]; !ok {
					seen[f] = struct{}{}
					part.Faces = append(part.Faces, f)
				}
			}
		}
	}
	slices.Sort(part.Faces)
	if len(part.Faces) > 0 {
		part.Normal = g.faces[part.Faces[0]].Normal
	}
	return part
}
