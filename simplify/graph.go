package simplify

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gorustyt/meshflat/common"
	"github.com/gorustyt/meshflat/config"
)

const NullIdx = -1

type Face struct {
	Verts  [3]int
	Normal common.Vec3
}

// Edge is an unordered vertex pair, Verts[0] < Verts[1], and the faces
// attached to it. Faces[1] is NullIdx on a boundary edge.
type Edge struct {
	Verts [2]int
	Faces [2]int
}

func (e *Edge) IsBoundary() bool { return e.Faces[1] == NullIdx }

// Other returns the endpoint opposite v, or NullIdx when v is not on e.
func (e *Edge) Other(v int) int {
	switch v {
	case e.Verts[0]:
		return e.Verts[1]
	case e.Verts[1]:
		return e.Verts[0]
	}
	return NullIdx
}

// OtherFace returns the face across e from f, or NullIdx.
func (e *Edge) OtherFace(f int) int {
	switch f {
	case e.Faces[0]:
		return e.Faces[1]
	case e.Faces[1]:
		return e.Faces[0]
	}
	return NullIdx
}

func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// Graph is the index based working form of a mesh. Vertices are identified
// by their position index, faces and edges live in flat arenas and refer to
// each other by index. Edges and adjacency are derived from faces; every
// mutation drops them and buildAdjacency recreates them.
//
// A Graph is not safe for concurrent mutation.
type Graph struct {
	verts []common.Vec3
	faces []Face

	edges     []Edge
	adjacency [][]int // vertex -> incident edge indices

	gen int // bumped by every mutation

	angleEps float64
	workers  int
	log      *zap.Logger
}

type Option func(g *Graph)

func WithLogger(log *zap.Logger) Option {
	return func(g *Graph) {
		if log != nil {
			g.log = log
		}
	}
}

func WithConfig(cfg *config.Config) Option {
	return func(g *Graph) {
		if cfg == nil {
			return
		}
		g.angleEps = cfg.AngleEpsilon
		g.workers = cfg.Workers
	}
}

// NewGraph copies m into a graph and builds its adjacency. A mesh with a
// non-manifold edge is rejected with a *TopologyError.
func NewGraph(m *Mesh, opts ...Option) (*Graph, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	g := &Graph{
		angleEps: config.DefaultAngleEpsilon,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.verts = make([]common.Vec3, m.VertexCount())
	for i := range g.verts {
		g.verts[i] = common.VecAt(m.Positions, i)
	}
	g.faces = make([]Face, m.FaceCount())
	for i := range g.faces {
		t := common.GetVert3(m.Indices, i)
		f := &g.faces[i]
		f.Verts = [3]int{t[0], t[1], t[2]}
		if len(m.Normals) > 0 {
			if n := common.VecAt(m.Normals, i); n.Len() > 0 {
				f.Normal = n.Normalize()
			}
		} else {
			f.Normal = g.faceNormal(f.Verts)
		}
	}

	if err := g.buildAdjacency(); err != nil {
		return nil, err
	}
	return g, nil
}

// faceNormal is zero for a face without area, which makes the face count as
// a crease against any neighbour.
func (g *Graph) faceNormal(t [3]int) common.Vec3 {
	n, _ := common.TriNormal(g.verts[t[0]], g.verts[t[1]], g.verts[t[2]])
	return n
}

func (g *Graph) VertexCount() int { return len(g.verts) }
func (g *Graph) FaceCount() int   { return len(g.faces) }
func (g *Graph) EdgeCount() int   { return len(g.edges) }

func (g *Graph) Position(v int) common.Vec3 { return g.verts[v] }
func (g *Graph) Face(i int) Face            { return g.faces[i] }
func (g *Graph) Edge(i int) Edge            { return g.edges[i] }

// IncidentEdges returns the edge indices touching v. The slice is owned by
// the graph.
func (g *Graph) IncidentEdges(v int) []int {
	if v < 0 || v >= len(g.adjacency) {
		return nil
	}
	return g.adjacency[v]
}

// buildAdjacency recreates edges and the vertex adjacency from the face
// list. Nothing is stored unless every face attaches cleanly.
func (g *Graph) buildAdjacency() error {
	edges := make([]Edge, 0, len(g.faces)*3/2+1)
	adjacency := make([][]int, len(g.verts))

	for fi := range g.faces {
		t := g.faces[fi].Verts
		for j := 0; j < 3; j++ {
			u, v := t[j], t[(j+1)%3]
			key := edgeKey(u, v)

			e := NullIdx
			for _, ei := range adjacency[u] {
				if edges[ei].Verts == key {
					e = ei
					break
				}
			}

			if e == NullIdx {
				edges = append(edges, Edge{Verts: key, Faces: [2]int{fi, NullIdx}})
				e = len(edges) - 1
				adjacency[u] = append(adjacency[u], e)
				adjacency[v] = append(adjacency[v], e)
				continue
			}

			edge := &edges[e]
			if edge.Faces[1] != NullIdx {
				return errors.WithStack(&TopologyError{
					Edge:  edge.Verts,
					Faces: [3]int{edge.Faces[0], edge.Faces[1], fi},
				})
			}
			edge.Faces[1] = fi
		}
	}

	g.edges = edges
	g.adjacency = adjacency
	return nil
}

func (g *Graph) invalidate() {
	g.gen++
	g.edges = nil
	g.adjacency = nil
}

func (g *Graph) hasAdjacency() bool {
	return g.adjacency != nil && len(g.adjacency) == len(g.verts)
}

// findEdge looks the pair up through u's adjacency only.
func (g *Graph) findEdge(u, v int) int {
	key := edgeKey(u, v)
	for _, ei := range g.IncidentEdges(u) {
		if g.edges[ei].Verts == key {
			return ei
		}
	}
	return NullIdx
}

// Mesh converts the graph back into flat buffers. Normals are recomputed from
// the face positions; a face without area keeps its stored normal.
func (g *Graph) Mesh() *Mesh {
	m := &Mesh{
		Positions: make([]float64, len(g.verts)*3),
		Indices:   make([]int, len(g.faces)*3),
		Normals:   make([]float64, len(g.faces)*3),
	}
	for i, v := range g.verts {
		common.PutVec(m.Positions, i, v)
	}
	for i, f := range g.faces {
		copy(common.GetVert3(m.Indices, i), f.Verts[:])
		n := g.faceNormal(f.Verts)
		if n.Len() == 0 {
			n = f.Normal
		}
		common.PutVec(m.Normals, i, n)
	}
	return m
}

// Validate checks the structural invariants every pass must keep: faces
// reference existing distinct vertices, edges carry one or two faces, and
// every adjacency entry points at an edge touching its vertex.
func (g *Graph) Validate() error {
	nv := len(g.verts)
	for i, f := range g.faces {
		for _, v := range f.Verts {
			if v < 0 || v >= nv {
				return errors.Wrapf(ErrInvalidMesh, "face %d references vertex %d of %d", i, v, nv)
			}
		}
	}
	if !g.hasAdjacency() {
		return nil
	}
	for i, e := range g.edges {
		if e.Faces[0] == NullIdx {
			return errors.Wrapf(ErrInvalidMesh, "edge %d (%d, %d) has no face", i, e.Verts[0], e.Verts[1])
		}
		if e.Faces[0] == e.Faces[1] {
			return errors.Wrapf(ErrInvalidMesh, "edge %d attaches face %d twice", i, e.Faces[0])
		}
	}
	for v, list := range g.adjacency {
		for _, ei := range list {
			if g.edges[ei].Other(v) == NullIdx {
				return errors.Wrapf(ErrInvalidMesh, "vertex %d lists edge %d it is not on", v, ei)
			}
		}
	}
	return nil
}
