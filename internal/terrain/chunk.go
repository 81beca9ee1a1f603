package terrain

import (
	"math"

	"endless-terrain/internal/mapgen"
	"endless-terrain/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// lodSlot holds at most one mesh artifact for a detail level. It only moves
// forward: none → requested → available. An available mesh is never cleared
// or re-requested.
type lodSlot struct {
	detail    int
	requested bool
	available bool
	mesh      *meshing.Mesh
}

// Chunk is one tile of streamed terrain. It starts without data, requests its
// payload on creation, and once the payload arrives runs the LOD state
// machine on every Update. All state is touched only from the tick goroutine.
type Chunk struct {
	Coord ChunkCoord

	grid   *Grid
	node   SceneNode
	bounds bounds2

	data      *mapgen.MapData
	dataReady bool

	slots            []lodSlot
	collision        lodSlot
	collisionApplied bool

	displayedLOD int // -1 until a mesh has been shown
	visible      bool
}

func newChunk(g *Grid, coord ChunkCoord) *Chunk {
	center := coord.Center(g.cfg.ChunkSize)

	c := &Chunk{
		Coord:        coord,
		grid:         g,
		bounds:       bounds2{center: center, half: g.cfg.ChunkSize / 2},
		displayedLOD: -1,
	}

	c.slots = make([]lodSlot, len(g.cfg.Levels))
	for i, lv := range g.cfg.Levels {
		c.slots[i].detail = lv.Detail
	}
	c.collision.detail = g.cfg.Levels[g.cfg.CollisionLOD()].Detail

	scale := g.cfg.WorldScale
	c.node = g.host.CreateNode(mgl32.Vec3{center.X() * scale, 0, center.Y() * scale}, scale)
	c.node.SetActive(false)

	g.maps.RequestMapData(center, c.onMapData)
	return c
}

// onMapData installs the chunk's payload. The payload arrives once and is
// immutable afterwards.
func (c *Chunk) onMapData(data *mapgen.MapData) {
	if c.dataReady {
		return
	}
	c.data = data
	c.dataReady = true
	c.node.SetColorMap(data.Colors, data.Size)
	c.Update(c.grid.lastViewer)
}

// Update recomputes visibility and the displayed detail level for the given
// viewer position. Called from grid refreshes and from mesh/payload arrival;
// idempotent for an unchanged viewer position.
func (c *Chunk) Update(viewer mgl32.Vec2) {
	if !c.dataReady {
		return
	}

	dist := float32(math.Sqrt(float64(c.bounds.sqDistance(viewer))))
	visible := dist <= c.grid.cfg.MaxViewDistance()

	if visible {
		lodIndex := SelectLOD(dist, c.grid.cfg.Levels)

		if lodIndex != c.displayedLOD {
			slot := &c.slots[lodIndex]
			switch {
			case slot.available:
				c.displayedLOD = lodIndex
				c.node.SetMesh(slot.mesh)
			case !slot.requested:
				slot.requested = true
				c.grid.meshes.RequestMeshData(c.data, slot.detail, func(m *meshing.Mesh) {
					slot.mesh = m
					slot.available = true
					c.Update(c.grid.lastViewer)
				})
			}
			// While the requested mesh is in flight the previous one stays
			// displayed, so the chunk never pops to an empty mesh.
		}

		// Collision only matters at close range. The source level is fixed by
		// config, independent of whichever visual LOD is displayed.
		if lodIndex == 0 {
			switch {
			case c.collision.available:
				if !c.collisionApplied {
					c.node.SetCollisionMesh(c.collision.mesh)
					c.collisionApplied = true
				}
			case !c.collision.requested:
				c.collision.requested = true
				c.grid.meshes.RequestMeshData(c.data, c.collision.detail, func(m *meshing.Mesh) {
					c.collision.mesh = m
					c.collision.available = true
					c.Update(c.grid.lastViewer)
				})
			}
		}

		c.grid.markVisible(c)
	}

	c.SetVisible(visible)
}

// SetVisible toggles the renderable's active state. Cosmetic only; no mesh
// data is released.
func (c *Chunk) SetVisible(visible bool) {
	c.visible = visible
	c.node.SetActive(visible)
}

// Visible reports whether the chunk passed the distance check on its last
// update.
func (c *Chunk) Visible() bool { return c.visible }

// DisplayedLOD returns the index of the currently shown detail level,
// -1 if no mesh has been displayed yet.
func (c *Chunk) DisplayedLOD() int { return c.displayedLOD }

// DataReady reports whether the heightmap payload has arrived.
func (c *Chunk) DataReady() bool { return c.dataReady }

// CollisionMesh returns the collision artifact, nil while it has not been
// built. It is only requested once the viewer is within the nearest LOD band.
func (c *Chunk) CollisionMesh() *meshing.Mesh {
	if !c.collision.available {
		return nil
	}
	return c.collision.mesh
}

// GroundHeight samples the terrain surface under a scaled world position.
// Once the collision artifact has been built the query walks its triangle
// surface, so physics sees the designated collision-source level; until then
// bilinear interpolation over the raw height grid stands in. ok is false
// until the payload has arrived.
func (c *Chunk) GroundHeight(world mgl32.Vec2) (height float32, ok bool) {
	if !c.dataReady {
		return 0, false
	}

	scale := c.grid.cfg.WorldScale

	if c.collision.available {
		lx := world.X()/scale - c.bounds.center.X()
		lz := world.Y()/scale - c.bounds.center.Y()
		if h, ok := c.collision.mesh.SampleHeight(lx, lz); ok {
			return h * scale, true
		}
	}

	half := c.bounds.half
	// grid sample (x, y) sits at unscaled world
	// (center.X - half + x, center.Y + half - y)
	gx := world.X()/scale - c.bounds.center.X() + half
	gy := c.bounds.center.Y() + half - world.Y()/scale

	size := c.data.Size
	gx = clamp32(gx, 0, float32(size-1))
	gy = clamp32(gy, 0, float32(size-1))

	x0 := int(gx)
	y0 := int(gy)
	x1 := min(x0+1, size-1)
	y1 := min(y0+1, size-1)
	fx := gx - float32(x0)
	fy := gy - float32(y0)

	h0 := c.data.HeightAt(x0, y0)*(1-fx) + c.data.HeightAt(x1, y0)*fx
	h1 := c.data.HeightAt(x0, y1)*(1-fx) + c.data.HeightAt(x1, y1)*fx
	return (h0*(1-fy) + h1*fy) * scale, true
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
