package simplify

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidMesh = errors.New("simplify: invalid mesh")
	// ErrNonManifold is returned when a third face attaches to an edge.
	ErrNonManifold = errors.New("simplify: non-manifold edge")
	// ErrMalformedOutline marks a flat part whose boundary is not a single loop.
	ErrMalformedOutline    = errors.New("simplify: malformed outline")
	ErrTriangulationFailed = errors.New("simplify: outline cannot be triangulated")
	// ErrDiagonalConflict marks a fill edge that is already used by faces
	// kept in the mesh or by the fill of another part in the same pass.
	ErrDiagonalConflict = errors.New("simplify: fill edge already in use")
	// ErrStalePart marks a flat part computed before the graph last changed.
	ErrStalePart = errors.New("simplify: flat part is stale")
)

// TopologyError describes the edge that rejected a mesh.
type TopologyError struct {
	Edge  [2]int
	Faces [3]int
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("%v: edge (%d, %d) shared by faces %d, %d and %d",
		ErrNonManifold, e.Edge[0], e.Edge[1], e.Faces[0], e.Faces[1], e.Faces[2])
}

func (e *TopologyError) Unwrap() error { return ErrNonManifold }
