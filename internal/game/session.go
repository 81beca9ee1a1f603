package game

import (
	"log"
	"runtime"
	"time"

	"endless-terrain/internal/config"
	"endless-terrain/internal/graphics/renderables/terrainview"
	"endless-terrain/internal/graphics/renderer"
	standardInput "endless-terrain/internal/input"
	"endless-terrain/internal/mapgen"
	"endless-terrain/internal/meshing"
	"endless-terrain/internal/player"
	"endless-terrain/internal/terrain"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Session wires the streaming core to its providers and the renderer and
// ticks them once per frame.
type Session struct {
	Window      *glfw.Window
	Renderer    *renderer.Renderer
	TerrainView *terrainview.TerrainView
	Player      *player.Player

	Grid    *terrain.Grid
	Tracker *terrain.ViewerTracker
	Maps    *mapgen.Requester
	Meshes  *meshing.Pool

	Paused bool

	frames       int
	lastStatTime time.Time
}

// NewSession builds a fully wired session from a validated configuration.
func NewSession(window *glfw.Window, cfg config.Config) (*Session, error) {
	tcfg := cfg.Terrain()

	gen := mapgen.NewGenerator(cfg.MapParams())
	maps := mapgen.NewRequester(gen)
	meshes := meshing.NewPool(max(runtime.NumCPU()-1, 1), 1024)

	tv := terrainview.NewTerrainView(tcfg.MaxViewDistance() * tcfg.WorldScale)

	width, height := window.GetSize()
	r, err := renderer.NewRenderer(width, height, tv)
	if err != nil {
		maps.Close()
		meshes.Shutdown()
		return nil, err
	}

	grid := terrain.NewGrid(tcfg, maps, meshes, tv)
	tracker := terrain.NewViewerTracker(grid)

	// Spawn above the terrain at the origin; the generator is cheap enough
	// to sample synchronously once at startup.
	spawnHeight := gen.HeightAt(0, 0)*tcfg.WorldScale + 60
	p := player.New(grid, spawnHeight)

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	r.UpdateViewport(width, height)

	return &Session{
		Window:       window,
		Renderer:     r,
		TerrainView:  tv,
		Player:       p,
		Grid:         grid,
		Tracker:      tracker,
		Maps:         maps,
		Meshes:       meshes,
		lastStatTime: time.Now(),
	}, nil
}

// Update advances one tick: deliver completed async work, move the player,
// then let the tracker decide whether the chunk set needs a refresh.
func (s *Session) Update(dt float64, im *standardInput.InputManager) {
	if im.JustPressed(standardInput.ActionPause) {
		s.setPaused(!s.Paused)
	}
	if im.JustPressed(standardInput.ActionToggleWireframe) {
		config.ToggleWireframe()
	}
	if im.JustPressed(standardInput.ActionCycleFPSLimit) {
		if limit := CycleFPSLimit(); limit > 0 {
			log.Printf("fps limit: %d", limit)
		} else {
			log.Printf("fps limit: uncapped")
		}
	}
	if s.Paused {
		// keep look direction from jumping on unpause
		im.MouseDelta()
		return
	}

	s.Maps.Drain()
	s.Meshes.Drain()

	s.Player.Update(dt, im)
	s.Tracker.Tick(s.Player.Position)
}

// Render draws the frame and logs streaming stats every few seconds.
func (s *Session) Render(dt float64) {
	s.Renderer.Render(s.Player, dt)

	s.frames++
	if since := time.Since(s.lastStatTime); since >= 5*time.Second {
		fps := float64(s.frames) / since.Seconds()
		log.Printf("fps=%.0f chunks=%d visible=%d drawn=%d meshQueue=%d",
			fps, s.Grid.Count(), s.Grid.VisibleCount(),
			s.TerrainView.ActiveNodeCount(), s.Meshes.QueueLength())
		s.frames = 0
		s.lastStatTime = time.Now()
	}
}

func (s *Session) setPaused(paused bool) {
	s.Paused = paused
	if paused {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		s.Window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
}

// Cleanup stops the worker pools and releases render resources.
func (s *Session) Cleanup() {
	s.Maps.Close()
	s.Meshes.Shutdown()
	s.Renderer.Dispose()
}
