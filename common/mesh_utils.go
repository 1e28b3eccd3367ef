package common

import "math"

// PolyEpsilon absorbs the rounding left behind when an outline is projected
// into its plane.
const PolyEpsilon = 1e-9

// Last time I checked the if version got compiled using cmov, which was a lot faster than module (with idiv).
func Prev(i, n int) int {
	if i-1 >= 0 {
		return i - 1
	}
	return n - 1
}
func Next(i, n int) int {
	if i+1 < n {
		return i + 1
	}
	return 0
}

// Area2 is twice the signed area of (a, b, c), positive when counter-clockwise.
func Area2(a, b, c Vec2) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
}

// Returns true iff c is strictly to the left of the directed
// line through a to b.
func Left(a, b, c Vec2) bool {
	return Area2(a, b, c) > PolyEpsilon
}

func LeftOn(a, b, c Vec2) bool {
	return Area2(a, b, c) >= -PolyEpsilon
}

func Collinear(a, b, c Vec2) bool {
	return math.Abs(Area2(a, b, c)) <= PolyEpsilon
}

// Exclusive or: true iff exactly one argument is true.
func Xorb(x, y bool) bool {
	return x != y
}

// Returns true iff ab properly intersects cd: they share
// a point interior to both segments.  The properness of the
// intersection is ensured by using strict leftness.
func IntersectProp(a, b, c, d Vec2) bool {
	// Eliminate improper cases.
	if Collinear(a, b, c) || Collinear(a, b, d) ||
		Collinear(c, d, a) || Collinear(c, d, b) {
		return false
	}

	return Xorb(Left(a, b, c), Left(a, b, d)) && Xorb(Left(c, d, a), Left(c, d, b))
}

// Returns T iff (a,b,c) are collinear and point c lies
// on the closed segement ab.
func Between(a, b, c Vec2) bool {
	if !Collinear(a, b, c) {
		return false
	}

	// If ab not vertical, check betweenness on x; else on y.
	if math.Abs(a[0]-b[0]) > PolyEpsilon {
		return ((a[0] <= c[0]) && (c[0] <= b[0])) || ((a[0] >= c[0]) && (c[0] >= b[0]))
	}

	return ((a[1] <= c[1]) && (c[1] <= b[1])) || ((a[1] >= c[1]) && (c[1] >= b[1]))
}

// Returns true iff segments ab and cd intersect, properly or improperly.
func Intersect(a, b, c, d Vec2) bool {
	if IntersectProp(a, b, c, d) {
		return true
	}

	return Between(a, b, c) || Between(a, b, d) ||
		Between(c, d, a) || Between(c, d, b)
}

func Vequal(a, b Vec2) bool {
	return a.ApproxEqualThreshold(b, PolyEpsilon)
}

// Returns T iff (v_i, v_j) is a proper internal *or* external
// diagonal of P, *ignoring edges incident to v_i and v_j*.
func Diagonalie(i, j int, verts []Vec2, indices []int) bool {
	return diagonalie(i, j, verts, indices, Intersect)
}

func DiagonalieLoose(i, j int, verts []Vec2, indices []int) bool {
	return diagonalie(i, j, verts, indices, IntersectProp)
}

func diagonalie(i, j int, verts []Vec2, indices []int, hit func(a, b, c, d Vec2) bool) bool {
	n := len(indices)
	d0 := verts[indices[i]]
	d1 := verts[indices[j]]

	// For each edge (k,k+1) of P
	for k := 0; k < n; k++ {
		k1 := Next(k, n)
		// Skip edges incident to i or j
		if k == i || k1 == i || k == j || k1 == j {
			continue
		}
		p0 := verts[indices[k]]
		p1 := verts[indices[k1]]

		if Vequal(d0, p0) || Vequal(d1, p0) || Vequal(d0, p1) || Vequal(d1, p1) {
			continue
		}

		if hit(d0, d1, p0, p1) {
			return false
		}
	}
	return true
}

// Returns true iff the diagonal (i,j) is strictly internal to the
// polygon P in the neighborhood of the i endpoint.
func InCone(i, j int, verts []Vec2, indices []int) bool {
	n := len(indices)
	pi := verts[indices[i]]
	pj := verts[indices[j]]
	pi1 := verts[indices[Next(i, n)]]
	pin1 := verts[indices[Prev(i, n)]]

	// If P[i] is a convex vertex [ i+1 left or on (i-1,i) ].
	if LeftOn(pin1, pi, pi1) {
		return Left(pi, pj, pin1) && Left(pj, pi, pi1)
	}

	// Assume (i-1,i,i+1) not collinear.
	// else P[i] is reflex.
	return !(LeftOn(pi, pj, pi1) && LeftOn(pj, pi, pin1))
}

func InConeLoose(i, j int, verts []Vec2, indices []int) bool {
	n := len(indices)
	pi := verts[indices[i]]
	pj := verts[indices[j]]
	pi1 := verts[indices[Next(i, n)]]
	pin1 := verts[indices[Prev(i, n)]]

	if LeftOn(pin1, pi, pi1) {
		return LeftOn(pi, pj, pin1) && LeftOn(pj, pi, pi1)
	}

	return !(LeftOn(pi, pj, pi1) && LeftOn(pj, pi, pin1))
}

// Returns T iff (v_i, v_j) is a proper internal
// diagonal of P.
func Diagonal(i, j int, verts []Vec2, indices []int) bool {
	return InCone(i, j, verts, indices) && Diagonalie(i, j, verts, indices)
}

func DiagonalLoose(i, j int, verts []Vec2, indices []int) bool {
	return InConeLoose(i, j, verts, indices) && DiagonalieLoose(i, j, verts, indices)
}

// PolyArea2 is twice the signed area of the polygon, positive when the
// polygon is wound counter-clockwise.
func PolyArea2(verts []Vec2, indices []int) float64 {
	area := 0.0
	n := len(indices)
	for i := 0; i < n; i++ {
		a := verts[indices[i]]
		b := verts[indices[Next(i, n)]]
		area += a[0]*b[1] - b[0]*a[1]
	}
	return area
}

// Triangulate ear-clips the counter-clockwise polygon given by indices into
// verts. The returned triangles hold values taken from indices, three per
// triangle, wound like the polygon. ok is false when the contour is
// self-overlapping badly enough that no ear can be found.
func Triangulate(verts []Vec2, indices []int) (tris []int, ok bool) {
	n := len(indices)
	if n < 3 {
		return nil, false
	}
	poly := append([]int(nil), indices...)
	ears := make([]bool, n)
	tris = make([]int, 0, (n-2)*3)

	for i := 0; i < n; i++ {
		i1 := Next(i, n)
		i2 := Next(i1, n)
		ears[i1] = Diagonal(i, i2, verts, poly)
	}

	for n > 3 {
		minLen := -1.0
		mini := -1
		for i := 0; i < n; i++ {
			i1 := Next(i, n)
			if ears[i1] {
				p0 := verts[poly[i]]
				p2 := verts[poly[Next(i1, n)]]
				d := p2.Sub(p0)
				length := d.Dot(d)
				if minLen < 0 || length < minLen {
					minLen = length
					mini = i
				}
			}
		}

		if mini == -1 {
			// The contour has overlapping segments. Loosen the inCone test a
			// bit so that a diagonal touching them can still be found.
			for i := 0; i < n; i++ {
				i1 := Next(i, n)
				i2 := Next(i1, n)
				if Collinear(verts[poly[i]], verts[poly[i1]], verts[poly[i2]]) {
					continue
				}
				if DiagonalLoose(i, i2, verts, poly) {
					p0 := verts[poly[i]]
					p2 := verts[poly[i2]]
					d := p2.Sub(p0)
					length := d.Dot(d)
					if minLen < 0 || length < minLen {
						minLen = length
						mini = i
					}
				}
			}
			if mini == -1 {
				return tris, false
			}
		}

		i := mini
		i1 := Next(i, n)
		i2 := Next(i1, n)
		tris = append(tris, poly[i], poly[i1], poly[i2])

		// Removes P[i1] by copying P[i+1]...P[n-1] left one index.
		n--
		copy(poly[i1:], poly[i1+1:])
		copy(ears[i1:], ears[i1+1:])
		poly = poly[:n]
		ears = ears[:n]

		if i1 >= n {
			i1 = 0
		}
		i = Prev(i1, n)

		// Update diagonal flags.
		ears[i] = Diagonal(Prev(i, n), i1, verts, poly)
		ears[i1] = Diagonal(i, Next(i1, n), verts, poly)
	}

	// Append the remaining triangle.
	if !Left(verts[poly[0]], verts[poly[1]], verts[poly[2]]) {
		return tris, false
	}
	tris = append(tris, poly[0], poly[1], poly[2])
	return tris, true
}
