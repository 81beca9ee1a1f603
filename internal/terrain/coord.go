package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkCoord identifies a chunk in the grid. A coordinate is never reused:
// once a chunk is created it persists for the lifetime of the session.
type ChunkCoord struct {
	X, Z int
}

// CoordAt returns the chunk coordinate containing a planar world position.
func CoordAt(pos mgl32.Vec2, chunkSize float32) ChunkCoord {
	return ChunkCoord{
		X: int(math.Round(float64(pos.X() / chunkSize))),
		Z: int(math.Round(float64(pos.Y() / chunkSize))),
	}
}

// Center returns the world-space center of the chunk.
func (c ChunkCoord) Center(chunkSize float32) mgl32.Vec2 {
	return mgl32.Vec2{float32(c.X) * chunkSize, float32(c.Z) * chunkSize}
}

// bounds2 is an axis-aligned square used for viewer distance queries.
type bounds2 struct {
	center mgl32.Vec2
	half   float32
}

// sqDistance returns the squared distance from p to the nearest edge of the
// square, zero when p is inside it.
func (b bounds2) sqDistance(p mgl32.Vec2) float32 {
	dx := abs32(p.X()-b.center.X()) - b.half
	if dx < 0 {
		dx = 0
	}
	dz := abs32(p.Y()-b.center.Y()) - b.half
	if dz < 0 {
		dz = 0
	}
	return dx*dx + dz*dz
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
