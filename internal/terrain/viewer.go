package terrain

import "github.com/go-gl/mathgl/mgl32"

// ViewerTracker watches the observer and refreshes the grid when it has
// moved far enough since the last refresh. Movement is compared as squared
// magnitude to avoid a square root per tick.
type ViewerTracker struct {
	grid    *Grid
	scale   float32
	sqMove  float32
	last    mgl32.Vec2
	started bool
}

// NewViewerTracker creates a tracker bound to a grid.
func NewViewerTracker(grid *Grid) *ViewerTracker {
	return &ViewerTracker{
		grid:   grid,
		scale:  grid.cfg.WorldScale,
		sqMove: grid.cfg.MoveThresholdSq,
	}
}

// Tick projects the observer's world position onto the XZ plane, divides out
// the world scale, and refreshes the grid when the squared movement since
// the last refresh reaches the threshold. The first tick always refreshes.
func (t *ViewerTracker) Tick(world mgl32.Vec3) {
	pos := mgl32.Vec2{world.X(), world.Z()}.Mul(1 / t.scale)

	if !t.started {
		t.started = true
		t.last = pos
		t.grid.Refresh(pos)
		return
	}

	d := pos.Sub(t.last)
	if d.Dot(d) >= t.sqMove {
		t.last = pos
		t.grid.Refresh(pos)
	}
}

// Position returns the viewer position recorded at the last refresh.
func (t *ViewerTracker) Position() mgl32.Vec2 { return t.last }
