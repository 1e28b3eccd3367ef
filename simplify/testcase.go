package simplify

// Sample surfaces used by the demo tool and by tests.

// GridMesh builds an nx by ny vertex grid on the xy-plane with unit spacing.
// Vertex (x, y) has index y*nx+x and height height(x, y); a nil height keeps
// the grid flat. Every quad is split along its (x, y)-(x+1, y+1) diagonal
// and wound counter-clockwise seen from +z.
func GridMesh(nx, ny int, height func(x, y int) float64) *Mesh {
	m := &Mesh{}
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			z := 0.0
			if height != nil {
				z = height(x, y)
			}
			m.Positions = append(m.Positions, float64(x), float64(y), z)
		}
	}
	for y := 0; y+1 < ny; y++ {
		for x := 0; x+1 < nx; x++ {
			p00 := y*nx + x
			p10 := p00 + 1
			p01 := p00 + nx
			p11 := p01 + 1
			m.Indices = append(m.Indices, p00, p10, p11, p00, p11, p01)
		}
	}
	return m
}

// FoldMesh is two triangles sharing the edge (0, 1) and meeting at a right
// angle.
func FoldMesh() *Mesh {
	return &Mesh{
		Positions: []float64{
			0, 0, 0,
			0, 1, 0,
			1, 0, 0,
			0, 0, 1,
		},
		Indices: []int{
			0, 1, 2,
			1, 0, 3,
		},
	}
}

// BoxMesh builds a closed axis aligned cube of side n whose six sides are n
// by n grids. Vertices on shared cube edges are shared, faces point outwards.
func BoxMesh(n int) *Mesh {
	type side struct {
		origin, u, v [3]int
	}
	// u x v is the outward normal of each side.
	sides := []side{
		{[3]int{n, 0, 0}, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
		{[3]int{0, 0, 0}, [3]int{0, 0, 1}, [3]int{0, 1, 0}},
		{[3]int{0, n, 0}, [3]int{0, 0, 1}, [3]int{1, 0, 0}},
		{[3]int{0, 0, 0}, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
		{[3]int{0, 0, n}, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
		{[3]int{0, 0, 0}, [3]int{0, 1, 0}, [3]int{1, 0, 0}},
	}

	m := &Mesh{}
	index := make(map[[3]int]int)
	vertex := func(s side, i, j int) int {
		var p [3]int
		for k := range p {
			p[k] = s.origin[k] + i*s.u[k] + j*s.v[k]
		}
		if idx, ok := index[p]; ok {
			return idx
		}
		idx := len(m.Positions) / 3
		index[p] = idx
		m.Positions = append(m.Positions, float64(p[0]), float64(p[1]), float64(p[2]))
		return idx
	}

	for _, s := range sides {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				p00 := vertex(s, i, j)
				p10 := vertex(s, i+1, j)
				p11 := vertex(s, i+1, j+1)
				p01 := vertex(s, i, j+1)
				m.Indices = append(m.Indices, p00, p10, p11, p00, p11, p01)
			}
		}
	}
	return m
}
