package config

import "sync"

// RuntimeSettings holds settings togglable while the app runs.
type RuntimeSettings struct {
	mu        sync.RWMutex
	fpsLimit  int
	wireframe bool
}

var globalSettings = &RuntimeSettings{
	fpsLimit: 120,
}

// GetFPSLimit returns the frame rate cap (0 disables the cap).
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap.
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}
	globalSettings.fpsLimit = limit
}

// GetWireframe returns whether terrain renders as wireframe.
func GetWireframe() bool {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.wireframe
}

// ToggleWireframe flips the wireframe setting and returns the new value.
func ToggleWireframe() bool {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.wireframe = !globalSettings.wireframe
	return globalSettings.wireframe
}
