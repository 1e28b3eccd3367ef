package simplify

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gorustyt/meshflat/common"
	"github.com/gorustyt/meshflat/config"
)

// Report summarizes one simplification pass.
type Report struct {
	Pass            int
	Parts           int
	Simplified      int
	Rejected        int
	VerticesRemoved int
	FacesRemoved    int
	FacesAdded      int
}

func (r *Report) Changed() bool { return r.Simplified > 0 }

type partPlan struct {
	part *FlatPart
	fill []Face
	err  error
}

// planPart computes the outline and its triangulation without touching the
// graph.
func (g *Graph) planPart(part *FlatPart) *partPlan {
	plan := &partPlan{part: part}
	loop, err := g.ComputeOutline(part)
	if err != nil {
		plan.err = err
		return plan
	}
	plan.fill, plan.err = g.triangulateOutline(loop, part.Normal)
	return plan
}

func (g *Graph) planParts(parts []*FlatPart) []*partPlan {
	plans := make([]*partPlan, len(parts))
	if g.workers <= 1 || len(parts) < 2 {
		for i, part := range parts {
			plans[i] = g.planPart(part)
		}
		return plans
	}

	// Planning only reads the graph.
	var eg errgroup.Group
	eg.SetLimit(g.workers)
	for i, part := range parts {
		i, part := i, part
		eg.Go(func() error {
			plans[i] = g.planPart(part)
			return nil
		})
	}
	_ = eg.Wait()
	return plans
}

// claimDiagonals makes sure no fill edge of plan lands on an edge that keeps
// faces outside the part, or on a fill edge claimed by an earlier part.
// Claims are only recorded when the whole plan passes.
func (g *Graph) claimDiagonals(plan *partPlan, claimed map[[2]int]struct{}) error {
	inPart := make(map[int]struct{}, len(plan.part.Faces))
	for _, f := range plan.part.Faces {
		inPart[f] = struct{}{}
	}
	loop := plan.part.Outline
	rim := make(map[[2]int]struct{}, len(loop))
	for i, v := range loop {
		rim[edgeKey(v, loop[common.Next(i, len(loop))])] = struct{}{}
	}

	var mine [][2]int
	for _, f := range plan.fill {
		for j := 0; j < 3; j++ {
			a, b := f.Verts[j], f.Verts[(j+1)%3]
			key := edgeKey(a, b)
			if _, ok := rim[key]; ok {
				continue
			}
			if _, ok := claimed[key]; ok {
				return errors.Wrapf(ErrDiagonalConflict, "edge (%d, %d) filled by another part", a, b)
			}
			if ei := g.findEdge(a, b); ei != NullIdx {
				for _, ef := range g.edges[ei].Faces {
					if _, ok := inPart[ef]; ef != NullIdx && !ok {
						return errors.Wrapf(ErrDiagonalConflict, "edge (%d, %d) still used by face %d", a, b, ef)
					}
				}
			}
			mine = append(mine, key)
		}
	}
	for _, key := range mine {
		claimed[key] = struct{}{}
	}
	return nil
}

// apply removes the faces and vertices of every plan and appends their
// fills in one go, so vertex indices are shifted by a single pass.
func (g *Graph) apply(plans []*partPlan, report *Report) {
	var faces, verts []int
	var fill []Face
	for _, p := range plans {
		faces = append(faces, p.part.Faces...)
		verts = append(verts, p.part.Verts...)
		fill = append(fill, p.fill...)
	}
	g.RemoveFaces(faces)
	g.faces = append(g.faces, fill...)
	g.RemoveVertices(verts)

	report.Simplified += len(plans)
	report.FacesRemoved += len(faces)
	report.FacesAdded += len(fill)
	report.VerticesRemoved += len(verts)
}

func (g *Graph) ensureAdjacency() error {
	if g.hasAdjacency() {
		return nil
	}
	return g.buildAdjacency()
}

// SimplifyPart removes one flat part and patches its outline. The graph is
// left untouched when the part is rejected. Removing a part renumbers the
// graph, so every other part from the same ComputeFlatParts call becomes
// stale and is rejected with ErrStalePart; call ComputeFlatParts again.
func (g *Graph) SimplifyPart(part *FlatPart) error {
	if part.gen != g.gen {
		return errors.Wrapf(ErrStalePart, "part of generation %d, graph at %d", part.gen, g.gen)
	}
	if err := g.ensureAdjacency(); err != nil {
		return err
	}
	plan := g.planPart(part)
	if plan.err == nil {
		plan.err = g.claimDiagonals(plan, map[[2]int]struct{}{})
	}
	if plan.err != nil {
		return plan.err
	}
	g.apply([]*partPlan{plan}, &Report{})
	return g.buildAdjacency()
}

// Simplify runs one pass: find the flat parts, plan each of them, and apply
// every plan that passed. Rejected parts are logged and skipped.
func (g *Graph) Simplify() (*Report, error) {
	if err := g.ensureAdjacency(); err != nil {
		return nil, err
	}
	parts := g.ComputeFlatParts()
	report := &Report{Parts: len(parts)}
	if len(parts) == 0 {
		return report, nil
	}

	plans := g.planParts(parts)
	claimed := make(map[[2]int]struct{})
	accepted := plans[:0:0]
	for i, plan := range plans {
		if plan.err == nil {
			plan.err = g.claimDiagonals(plan, claimed)
		}
		if plan.err != nil {
			report.Rejected++
			g.log.Warn("flat part rejected",
				zap.Int("part", i),
				zap.Ints("verts", plan.part.Verts),
				zap.Error(plan.err))
			continue
		}
		accepted = append(accepted, plan)
	}
	if len(accepted) == 0 {
		return report, nil
	}

	g.apply(accepted, report)
	if err := g.buildAdjacency(); err != nil {
		return report, errors.Wrap(err, "simplify: pass broke the mesh")
	}
	g.log.Debug("pass applied",
		zap.Int("parts", report.Parts),
		zap.Int("simplified", report.Simplified),
		zap.Int("verts", len(g.verts)),
		zap.Int("faces", len(g.faces)))
	return report, nil
}

// Run simplifies a copy of m, repeating passes until one changes nothing or
// cfg.MaxPasses is reached. ctx is checked between passes.
func Run(ctx context.Context, m *Mesh, cfg *config.Config, log *zap.Logger) (*Mesh, []*Report, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	g, err := NewGraph(m, WithConfig(cfg), WithLogger(log))
	if err != nil {
		return nil, nil, err
	}

	var reports []*Report
	for pass := 1; pass <= cfg.MaxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return g.Mesh(), reports, err
		}
		report, err := g.Simplify()
		if err != nil {
			return nil, reports, err
		}
		report.Pass = pass
		reports = append(reports, report)
		log.Info("simplify pass",
			zap.Int("pass", pass),
			zap.Int("parts", report.Parts),
			zap.Int("simplified", report.Simplified),
			zap.Int("rejected", report.Rejected),
			zap.Int("vertsRemoved", report.VerticesRemoved),
			zap.Int("facesRemoved", report.FacesRemoved),
			zap.Int("facesAdded", report.FacesAdded))
		if !report.Changed() {
			break
		}
	}
	return g.Mesh(), reports, nil
}
