package player

import (
	"math"

	"endless-terrain/internal/input"
	"endless-terrain/internal/physics"
	"endless-terrain/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	mouseSensitivity = 0.1
	moveSpeed        = 60.0
	sprintMultiplier = 3.0
	eyeHeight        = 4.0
	groundSnapSpeed  = 10.0
)

// Player is the tracked observer. It moves in scaled world units; the
// terrain viewer tracker divides the scale back out.
type Player struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees, -90 looks down -Z
	Pitch    float32 // degrees

	Flying bool

	grid *terrain.Grid
}

// New creates a player above the origin looking toward -Z.
func New(grid *terrain.Grid, spawnHeight float32) *Player {
	return &Player{
		Position: mgl32.Vec3{0, spawnHeight, 0},
		Yaw:      -90,
		Flying:   true,
		grid:     grid,
	}
}

// Update applies look and movement input for one frame.
func (p *Player) Update(dt float64, im *input.InputManager) {
	dx, dy := im.MouseDelta()
	p.Yaw += float32(dx) * mouseSensitivity
	p.Pitch += float32(dy) * mouseSensitivity
	if p.Pitch > 89 {
		p.Pitch = 89
	}
	if p.Pitch < -89 {
		p.Pitch = -89
	}

	if im.JustPressed(input.ActionToggleFly) {
		p.Flying = !p.Flying
	}

	front := p.Front()
	// planar basis so walking speed is independent of pitch
	forward := mgl32.Vec3{front.X(), 0, front.Z()}
	if forward.Len() > 0 {
		forward = forward.Normalize()
	}
	right := forward.Cross(mgl32.Vec3{0, 1, 0})

	speed := float32(moveSpeed * dt)
	if im.IsActive(input.ActionSprint) {
		speed *= sprintMultiplier
	}

	if im.IsActive(input.ActionMoveForward) {
		p.Position = p.Position.Add(forward.Mul(speed))
	}
	if im.IsActive(input.ActionMoveBackward) {
		p.Position = p.Position.Sub(forward.Mul(speed))
	}
	if im.IsActive(input.ActionMoveRight) {
		p.Position = p.Position.Add(right.Mul(speed))
	}
	if im.IsActive(input.ActionMoveLeft) {
		p.Position = p.Position.Sub(right.Mul(speed))
	}

	if p.Flying {
		if im.IsActive(input.ActionAscend) {
			p.Position = p.Position.Add(mgl32.Vec3{0, speed, 0})
		}
		if im.IsActive(input.ActionDescend) {
			p.Position = p.Position.Sub(mgl32.Vec3{0, speed, 0})
		}
		return
	}

	// Walk mode: settle toward the terrain surface. While the chunk below
	// has no data yet, hold altitude rather than falling through.
	if ground, ok := physics.GroundHeight(p.grid, p.Position); ok {
		target := ground + eyeHeight
		f := float32(1 - math.Exp(-groundSnapSpeed*dt))
		p.Position = mgl32.Vec3{
			p.Position.X(),
			p.Position.Y() + (target-p.Position.Y())*f,
			p.Position.Z(),
		}
	}
}

// Front returns the look direction derived from yaw and pitch.
func (p *Player) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(p.Yaw))
	pitch := float64(mgl32.DegToRad(p.Pitch))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// GetViewMatrix returns the camera view matrix for this player.
func (p *Player) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(p.Position, p.Position.Add(p.Front()), mgl32.Vec3{0, 1, 0})
}
