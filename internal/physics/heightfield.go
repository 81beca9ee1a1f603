package physics

import (
	"endless-terrain/internal/profiling"
	"endless-terrain/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// GroundHeight returns the terrain surface height under a scaled world
// position. ok is false when the chunk under the position has not been
// created yet or its payload has not arrived.
func GroundHeight(g *terrain.Grid, pos mgl32.Vec3) (float32, bool) {
	cfg := g.Config()
	planar := mgl32.Vec2{pos.X(), pos.Z()}

	coord := terrain.CoordAt(planar.Mul(1/cfg.WorldScale), cfg.ChunkSize)
	c, ok := g.ChunkAt(coord)
	if !ok {
		return 0, false
	}
	return c.GroundHeight(planar)
}

// RaycastResult stores the outcome of a terrain raycast.
type RaycastResult struct {
	Position mgl32.Vec3
	Distance float32
	Hit      bool
}

// Raycast marches a ray against the terrain heightfield and returns the
// first point at or below the surface. Chunks without data are treated as
// empty space, matching the degrade-gracefully contract of the streamer.
func Raycast(g *terrain.Grid, start, direction mgl32.Vec3, maxDist float32) RaycastResult {
	defer profiling.Track("physics.Raycast")()

	const stepSize = float32(0.5)
	steps := int(maxDist / stepSize)

	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		pos := start.Add(direction.Mul(dist))

		ground, ok := GroundHeight(g, pos)
		if !ok {
			continue
		}
		if pos.Y() <= ground {
			return RaycastResult{Position: mgl32.Vec3{pos.X(), ground, pos.Z()}, Distance: dist, Hit: true}
		}
	}

	return RaycastResult{}
}
