package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionAscend
	ActionDescend
	ActionSprint
	ActionToggleFly
	ActionToggleWireframe
	ActionCycleFPSLimit
	ActionPause
	ActionCount // sentinel for array sizing
)

// InputManager maps physical keys to logical actions and accumulates mouse
// movement between frames.
type InputManager struct {
	mu sync.RWMutex

	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// mouse look
	lastX, lastY   float64
	deltaX, deltaY float64
	firstMouse     bool
}

// NewInputManager creates an InputManager with default key bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
		firstMouse:   true,
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionAscend)
	im.BindKey(glfw.KeyLeftShift, ActionDescend)
	im.BindKey(glfw.KeyLeftControl, ActionSprint)
	im.BindKey(glfw.KeyT, ActionToggleFly)
	im.BindKey(glfw.KeyF, ActionToggleWireframe)
	im.BindKey(glfw.KeyG, ActionCycleFPSLimit)
	im.BindKey(glfw.KeyEscape, ActionPause)

	return im
}

// BindKey binds a physical key to a logical action. Multiple keys can map to
// the same action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent processes a key event and updates internal state.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	im.mu.Lock()
	for _, act := range actions {
		// detect edges when the event arrives
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
	im.mu.Unlock()
}

// HandleCursorEvent accumulates mouse movement since the previous frame.
func (im *InputManager) HandleCursorEvent(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if im.firstMouse {
		im.lastX, im.lastY = x, y
		im.firstMouse = false
		return
	}
	im.deltaX += x - im.lastX
	im.deltaY += im.lastY - y // inverted: screen y grows downward
	im.lastX, im.lastY = x, y
}

// MouseDelta returns and clears the accumulated mouse movement.
func (im *InputManager) MouseDelta() (dx, dy float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	dx, dy = im.deltaX, im.deltaY
	im.deltaX, im.deltaY = 0, 0
	return dx, dy
}

// InstallCallbacks wires the manager into a GLFW window. Call once during
// initialization.
func (im *InputManager) InstallCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		im.HandleCursorEvent(x, y)
	})
}

// PostUpdate clears edge-detection flags. Call at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := 0; i < int(ActionCount); i++ {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true while the action is held down.
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed returns true only on the frame the action was pressed.
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// JustReleased returns true only on the frame the action was released.
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}
