package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"endless-terrain/internal/config"
	"endless-terrain/internal/game"
	standardInput "endless-terrain/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to terrain configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("no config at %s, using defaults", *configPath)
			cfg = config.Default()
		} else {
			log.Fatalf("config: %v", err)
		}
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	inputManager := standardInput.NewInputManager()
	inputManager.InstallCallbacks(window)

	session, err := game.NewSession(window, cfg)
	if err != nil {
		panic(err)
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		session.Renderer.UpdateViewport(width, height)
	})

	app := game.NewApp(window, inputManager, session)
	app.Run()
}
