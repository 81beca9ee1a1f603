package terrain

import (
	"endless-terrain/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Grid owns every chunk created during the session, keyed by coordinate.
// Refresh never removes chunks; memory grows with explored area. EvictBeyond
// exists as an explicit opt-in for callers that want a bound.
type Grid struct {
	cfg    Config
	maps   MapDataProvider
	meshes MeshProvider
	host   SceneHost

	chunks          map[ChunkCoord]*Chunk
	visibleLastPass []*Chunk
	lastViewer      mgl32.Vec2
	window          int
}

// NewGrid creates an empty grid.
func NewGrid(cfg Config, maps MapDataProvider, meshes MeshProvider, host SceneHost) *Grid {
	return &Grid{
		cfg:    cfg,
		maps:   maps,
		meshes: meshes,
		host:   host,
		chunks: make(map[ChunkCoord]*Chunk),
		window: cfg.WindowRadius(),
	}
}

// Refresh recomputes the chunk set around the viewer: chunks visible in the
// previous pass are cleared, then every coordinate in the
// (2·radius+1)² window is updated or created. Iteration order does not
// matter; each chunk's update is independent and idempotent for the same
// viewer position.
func (g *Grid) Refresh(viewer mgl32.Vec2) {
	defer profiling.Track("terrain.Refresh")()

	g.lastViewer = viewer

	for _, c := range g.visibleLastPass {
		c.SetVisible(false)
	}
	g.visibleLastPass = g.visibleLastPass[:0]

	center := CoordAt(viewer, g.cfg.ChunkSize)
	for zo := -g.window; zo <= g.window; zo++ {
		for xo := -g.window; xo <= g.window; xo++ {
			coord := ChunkCoord{X: center.X + xo, Z: center.Z + zo}
			if c, ok := g.chunks[coord]; ok {
				c.Update(viewer)
			} else {
				g.chunks[coord] = newChunk(g, coord)
			}
		}
	}
}

func (g *Grid) markVisible(c *Chunk) {
	g.visibleLastPass = append(g.visibleLastPass, c)
}

// ChunkAt returns the chunk at a coordinate, if it has been created.
func (g *Grid) ChunkAt(coord ChunkCoord) (*Chunk, bool) {
	c, ok := g.chunks[coord]
	return c, ok
}

// Count returns the number of chunks created so far.
func (g *Grid) Count() int { return len(g.chunks) }

// VisibleCount returns the number of chunks marked visible in the last pass.
func (g *Grid) VisibleCount() int { return len(g.visibleLastPass) }

// Config returns the grid's streaming configuration.
func (g *Grid) Config() Config { return g.cfg }

// EvictBeyond removes chunks farther than radius (in chunks) from the last
// viewer position and disposes their nodes. Nothing in the default streaming
// loop calls this; long sessions that need a memory bound opt in explicitly.
// A late mesh arrival for an evicted chunk is applied to the disposed node,
// which ignores it.
func (g *Grid) EvictBeyond(radius int) int {
	center := CoordAt(g.lastViewer, g.cfg.ChunkSize)
	removed := 0
	for coord, c := range g.chunks {
		dx := coord.X - center.X
		dz := coord.Z - center.Z
		if dx*dx+dz*dz > radius*radius {
			c.node.Dispose()
			delete(g.chunks, coord)
			removed++
		}
	}
	return removed
}
