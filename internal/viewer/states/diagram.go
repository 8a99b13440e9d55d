package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/painscape/painscape/internal/engine/input"
	"github.com/painscape/painscape/internal/engine/overlay"
	"github.com/painscape/painscape/internal/engine/picking"
	"github.com/painscape/painscape/internal/logger"
	"github.com/painscape/painscape/pkg/mesh"
	"github.com/painscape/painscape/pkg/region"
)

// DiagramState is the main interactive view over the detailed head mesh:
// classification and sub-geometry are built once on entry, then picking and
// the visibility pass run per frame.
type DiagramState struct {
	ctx *Context

	// source is the loaded asset; normalized is the working copy
	source     *mesh.Mesh
	normalized *mesh.Mesh
	anchors    []region.Anchor
	classes    []int
	boundary   []bool
	head       *overlay.Head

	ptr pointer
}

// NewDiagramState creates the diagram state over a freshly loaded mesh.
func NewDiagramState(ctx *Context, source *mesh.Mesh) *DiagramState {
	return &DiagramState{ctx: ctx, source: source}
}

// Enter normalizes, classifies and uploads the mesh. The source mesh is
// cloned by normalization and never mutated. A mesh that cannot be
// classified or uploaded is not fatal; the viewer degrades to the fallback
// head instead.
func (s *DiagramState) Enter() error {
	s.normalized = mesh.Normalize(s.source)
	s.anchors = region.Anchors()

	classes, err := region.Classify(s.normalized.Positions, s.anchors)
	if err != nil {
		return s.degrade(fmt.Errorf("classifying head mesh: %w", err))
	}
	s.classes = classes
	s.boundary = region.BoundaryVertices(s.normalized.Indices, classes, s.anchors)

	subs := region.BuildSubMeshes(s.normalized, classes, s.anchors)
	head, err := overlay.Build(s.ctx.Renderer, s.normalized, subs)
	if err != nil {
		return s.degrade(fmt.Errorf("building head overlays: %w", err))
	}
	s.head = head

	boundaryCount := 0
	for _, b := range s.boundary {
		if b {
			boundaryCount++
		}
	}
	logger.Info("head diagram ready",
		zap.Int("vertices", s.normalized.VertexCount()),
		zap.Int("triangles", s.normalized.TriangleCount()),
		zap.Int("regions", len(subs)),
		zap.Int("boundaryVertices", boundaryCount),
	)
	return nil
}

// degrade hands the viewer over to the fallback head after a rejected mesh.
func (s *DiagramState) degrade(err error) error {
	logger.Warn("head mesh rejected, using fallback head", zap.Error(err))
	s.ctx.Manager.Change(NewFallbackState(s.ctx, err))
	return nil
}

// Exit tears down the GPU subtree; selection state stays in the context.
func (s *DiagramState) Exit() error {
	if s.head != nil {
		s.head.Destroy()
		s.head = nil
	}
	return nil
}

// Update advances the camera focus animation.
func (s *DiagramState) Update(dt float64) error {
	s.ctx.Camera.Update(float32(dt))
	return nil
}

// Render runs the visibility pass and draws base plus overlays.
func (s *DiagramState) Render() error {
	r := s.ctx.Renderer
	r.Begin(s.ctx.Camera.ViewMatrix(), s.ctx.ProjMatrix(), s.ctx.Camera.Position())
	s.head.Draw(r, s.ctx.OverlayStates())
	r.End()
	return nil
}

// HandleInput routes pointer events through the shared protocol.
func (s *DiagramState) HandleInput(event input.Event) error {
	s.ptr.handle(s.ctx, event, s.pick)
	return nil
}

func (s *DiagramState) pick(x, y int) region.PickResult {
	ray := picking.ScreenToRay(float32(x), float32(y),
		float32(s.ctx.Width), float32(s.ctx.Height), s.ctx.ViewProjInverse())

	hit, ok := ray.IntersectMesh(s.normalized)
	if !ok {
		return region.Miss
	}
	return region.ResolveTriangle(hit.Triangle, s.normalized.Indices, s.classes, s.anchors)
}
