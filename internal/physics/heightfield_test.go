package physics

import (
	"image/color"
	"math"
	"testing"

	"endless-terrain/internal/mapgen"
	"endless-terrain/internal/meshing"
	"endless-terrain/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// stubMaps answers every map request with a payload built by heightFn over
// unscaled world coordinates, delivered on demand.
type stubMaps struct {
	heightFn func(wx, wz float32) float32
	pending  []func()
}

func (s *stubMaps) RequestMapData(center mgl32.Vec2, cb func(*mapgen.MapData)) {
	s.pending = append(s.pending, func() {
		const size = 11
		half := float32(size-1) / 2
		d := &mapgen.MapData{
			Size:    size,
			Heights: make([]float32, size*size),
			Colors:  make([]color.RGBA, size*size),
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				wx := center.X() - half + float32(x)
				wz := center.Y() + half - float32(y)
				d.Heights[y*size+x] = s.heightFn(wx, wz)
			}
		}
		cb(d)
	})
}

func (s *stubMaps) flush() {
	for _, f := range s.pending {
		f()
	}
	s.pending = nil
}

type stubMeshes struct{}

func (stubMeshes) RequestMeshData(*mapgen.MapData, int, func(*meshing.Mesh)) {}

type stubNode struct{}

func (stubNode) SetActive(bool)                 {}
func (stubNode) SetMesh(*meshing.Mesh)          {}
func (stubNode) SetCollisionMesh(*meshing.Mesh) {}
func (stubNode) SetColorMap([]color.RGBA, int)  {}
func (stubNode) Dispose()                       {}

type stubHost struct{}

func (stubHost) CreateNode(mgl32.Vec3, float32) terrain.SceneNode { return stubNode{} }

func groundGrid(t *testing.T, scale float32, heightFn func(wx, wz float32) float32) *terrain.Grid {
	t.Helper()
	cfg := terrain.Config{
		ChunkSize:       10,
		WorldScale:      scale,
		MoveThresholdSq: 25,
		Levels: []terrain.LODLevel{
			{Detail: 0, VisibleDistance: 15, UseForCollision: true},
		},
	}
	maps := &stubMaps{heightFn: heightFn}
	g := terrain.NewGrid(cfg, maps, stubMeshes{}, stubHost{})
	g.Refresh(mgl32.Vec2{0, 0})
	maps.flush()
	return g
}

func TestGroundHeightFlat(t *testing.T) {
	g := groundGrid(t, 2, func(wx, wz float32) float32 { return 4 })

	// Height 4 in generation space scales to 8 in world space.
	for _, p := range []mgl32.Vec3{{0, 0, 0}, {7.3, 0, -3.1}, {19, 0, 19}} {
		h, ok := GroundHeight(g, p)
		if !ok {
			t.Fatalf("GroundHeight(%v) not ready", p)
		}
		if h != 8 {
			t.Errorf("GroundHeight(%v) = %g, want 8", p, h)
		}
	}
}

func TestGroundHeightInterpolatesLinearSlope(t *testing.T) {
	// Heights equal to the unscaled x coordinate: bilinear interpolation
	// reproduces the plane exactly, and scaling by 2 gives back world x.
	g := groundGrid(t, 2, func(wx, wz float32) float32 { return wx })

	for _, x := range []float32{0, 1, 2.5, -6.4, 9} {
		p := mgl32.Vec3{x, 0, 3}
		h, ok := GroundHeight(g, p)
		if !ok {
			t.Fatalf("GroundHeight(%v) not ready", p)
		}
		if math.Abs(float64(h-x)) > 1e-4 {
			t.Errorf("GroundHeight at x=%g: %g, want %g", x, h, x)
		}
	}
}

func TestGroundHeightOutsideCreatedChunks(t *testing.T) {
	g := groundGrid(t, 1, func(wx, wz float32) float32 { return 0 })

	if _, ok := GroundHeight(g, mgl32.Vec3{1000, 0, 1000}); ok {
		t.Error("GroundHeight reported ready outside the created grid")
	}
}

func TestRaycastHitsFlatGround(t *testing.T) {
	g := groundGrid(t, 2, func(wx, wz float32) float32 { return 4 })

	res := Raycast(g, mgl32.Vec3{0, 20, 0}, mgl32.Vec3{0, -1, 0}, 30)
	if !res.Hit {
		t.Fatal("downward ray missed flat ground")
	}
	if res.Position.Y() != 8 {
		t.Errorf("hit height = %g, want 8", res.Position.Y())
	}
	if res.Distance != 12 {
		t.Errorf("hit distance = %g, want 12", res.Distance)
	}
}

func TestRaycastMissesUpward(t *testing.T) {
	g := groundGrid(t, 2, func(wx, wz float32) float32 { return 4 })

	res := Raycast(g, mgl32.Vec3{0, 20, 0}, mgl32.Vec3{0, 1, 0}, 50)
	if res.Hit {
		t.Errorf("upward ray reported a hit at %v", res.Position)
	}
}

func TestRaycastTreatsMissingChunksAsEmpty(t *testing.T) {
	g := groundGrid(t, 1, func(wx, wz float32) float32 { return 0 })

	// Start far outside the created grid, fly level: never a hit, never a
	// panic.
	res := Raycast(g, mgl32.Vec3{500, 5, 500}, mgl32.Vec3{1, 0, 0}, 20)
	if res.Hit {
		t.Error("ray through missing chunks reported a hit")
	}
}
