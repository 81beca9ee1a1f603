package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyPressEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Error("action not active after press")
	}
	if !im.JustPressed(ActionMoveForward) {
		t.Error("JustPressed false on press frame")
	}
	if im.JustReleased(ActionMoveForward) {
		t.Error("JustReleased true on press frame")
	}

	im.PostUpdate()
	if im.JustPressed(ActionMoveForward) {
		t.Error("JustPressed survived PostUpdate")
	}
	if !im.IsActive(ActionMoveForward) {
		t.Error("held action cleared by PostUpdate")
	}

	// Key repeat keeps the action held without a new edge.
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)
	if im.JustPressed(ActionMoveForward) {
		t.Error("JustPressed fired on repeat")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) {
		t.Error("action still active after release")
	}
	if !im.JustReleased(ActionMoveForward) {
		t.Error("JustReleased false on release frame")
	}

	im.PostUpdate()
	if im.JustReleased(ActionMoveForward) {
		t.Error("JustReleased survived PostUpdate")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) || im.JustPressed(a) {
			t.Fatalf("unbound key activated action %d", a)
		}
	}
}

func TestMultipleKeysOneAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyUp, ActionMoveForward)

	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Error("second binding did not activate the action")
	}
	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	if im.IsActive(ActionMoveForward) {
		t.Error("action stuck after release")
	}
}

func TestMouseDeltaAccumulatesAndClears(t *testing.T) {
	im := NewInputManager()

	// First cursor event only establishes the reference position.
	im.HandleCursorEvent(100, 100)
	if dx, dy := im.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("delta after first event = %g, %g", dx, dy)
	}

	im.HandleCursorEvent(103, 98)
	im.HandleCursorEvent(104, 98)
	dx, dy := im.MouseDelta()
	if dx != 4 {
		t.Errorf("dx = %g, want 4", dx)
	}
	if dy != 2 { // screen y grows downward, look delta is inverted
		t.Errorf("dy = %g, want 2", dy)
	}

	if dx, dy := im.MouseDelta(); dx != 0 || dy != 0 {
		t.Errorf("delta not cleared: %g, %g", dx, dy)
	}
}

func TestOutOfRangeActions(t *testing.T) {
	im := NewInputManager()
	if im.IsActive(Action(-1)) || im.JustPressed(ActionCount) || im.JustReleased(Action(99)) {
		t.Error("out-of-range action reported state")
	}
}
