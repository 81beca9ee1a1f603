package game

import (
	"log"
	"time"

	standardInput "endless-terrain/internal/input"
	"endless-terrain/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// App owns the window loop and drives the session.
type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager
	session      *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

func NewApp(window *glfw.Window, im *standardInput.InputManager, session *Session) *App {
	return &App{
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
	a.session.Cleanup()
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	a.session.Update(dt, a.inputManager)
	a.session.Render(dt)

	a.window.SwapBuffers()

	// Check if frame took too long (> 16ms)
	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // clear "JustPressed" flags

	a.fpsLimiter.Wait(a.session.Paused)
}
