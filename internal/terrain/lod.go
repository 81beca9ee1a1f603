package terrain

import "math"

// LODLevel describes one detail tier of a chunk mesh.
type LODLevel struct {
	// Detail is the mesh simplification level handed to the mesh provider
	// (0 = full resolution).
	Detail int
	// VisibleDistance is the viewer distance up to which this level is shown.
	// Levels must be ordered by strictly increasing VisibleDistance; the last
	// entry defines the maximum view distance.
	VisibleDistance float32
	// UseForCollision marks this level as the collision mesh source.
	// Exactly one level carries the flag.
	UseForCollision bool
}

// SelectLOD picks the detail level for a viewer distance: the smallest index
// whose visible distance is not exceeded, or the last index when every
// threshold is exceeded. Pure and deterministic.
func SelectLOD(distance float32, levels []LODLevel) int {
	for i, lv := range levels {
		if distance <= lv.VisibleDistance {
			return i
		}
	}
	return len(levels) - 1
}

// Config carries the streaming parameters that are passed explicitly into
// grid and chunk construction. Invariants (non-empty level list, strictly
// increasing distances, exactly one collision flag) are enforced by the
// config loader; the core assumes them.
type Config struct {
	// ChunkSize is the side length of a chunk in unscaled world units.
	ChunkSize float32
	// WorldScale uniformly scales chunk placement and rendered geometry.
	// Streaming math runs in unscaled units.
	WorldScale float32
	// MoveThresholdSq is the squared viewer movement that triggers a grid
	// refresh.
	MoveThresholdSq float32
	// Levels is the ordered detail-level table.
	Levels []LODLevel
}

// MaxViewDistance is the visible distance of the last detail level.
func (c Config) MaxViewDistance() float32 {
	if len(c.Levels) == 0 {
		return 0
	}
	return c.Levels[len(c.Levels)-1].VisibleDistance
}

// CollisionLOD returns the index of the level flagged as collision source.
func (c Config) CollisionLOD() int {
	for i, lv := range c.Levels {
		if lv.UseForCollision {
			return i
		}
	}
	return 0
}

// WindowRadius is the chunk window radius covered by the view distance.
func (c Config) WindowRadius() int {
	return int(math.Round(float64(c.MaxViewDistance() / c.ChunkSize)))
}
