package mapgen

import (
	"math"
	"testing"
)

func TestValueNoiseDeterministic(t *testing.T) {
	coords := [][2]float64{{0, 0}, {1.5, -2.25}, {1000.125, 1000.875}, {-512.5, 0.5}}
	for _, c := range coords {
		a := valueNoise2D(c[0], c[1], 42)
		b := valueNoise2D(c[0], c[1], 42)
		if a != b {
			t.Errorf("valueNoise2D(%v) not deterministic: %g vs %g", c, a, b)
		}
	}
}

func TestValueNoiseSeedChangesOutput(t *testing.T) {
	same := 0
	for i := 0; i < 100; i++ {
		x := float64(i) * 3.7
		z := float64(i) * -1.3
		if valueNoise2D(x, z, 1) == valueNoise2D(x, z, 2) {
			same++
		}
	}
	if same > 5 {
		t.Errorf("seeds 1 and 2 agree on %d/100 samples", same)
	}
}

// The lattice hash must depend on both axes independently. A hash that only
// sees a linear combination of x and z collapses the heightmap into stripes:
// every point on a line x+2z = const would share one value.
func TestLatticeValueNotDiagonallyDegenerate(t *testing.T) {
	const seed = 42
	collisions := 0
	total := 0
	for s := int64(-50); s < 50; s++ {
		for z := int64(1); z <= 20; z++ {
			total++
			if latticeValue(s-2*z, z, seed) == latticeValue(s, 0, seed) {
				collisions++
			}
		}
	}
	// A 32-bit lattice value makes chance collisions vanishingly rare.
	if collisions > 1 {
		t.Errorf("%d/%d lattice values repeat along x+2z lines", collisions, total)
	}
}

func TestNoiseAtVariesAlongDiagonals(t *testing.T) {
	g := NewGenerator(testParams())

	same := 0
	for i := 1; i <= 50; i++ {
		tr := float32(i) * 7
		a := g.NoiseAt(13, 29)
		b := g.NoiseAt(13+2*tr, 29-tr)
		if a == b {
			same++
		}
	}
	if same > 2 {
		t.Errorf("noise repeats at %d/50 points along the (2,-1) diagonal", same)
	}
}

func TestOctaveNoiseRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := float64(i)*0.173 - 50
		z := float64(i)*0.311 - 80
		v := octaveNoise2D(x, z, 7, 4, 0.5, 2.0)
		if v < 0 || v > 1 {
			t.Fatalf("octaveNoise2D(%g, %g) = %g, outside [0,1]", x, z, v)
		}
	}
}

func TestOctaveNoiseZeroOctaves(t *testing.T) {
	if v := octaveNoise2D(1, 2, 3, 0, 0.5, 2.0); v != 0 {
		t.Errorf("zero octaves = %g, want 0", v)
	}
}

func TestFadeEndpoints(t *testing.T) {
	if fade(0) != 0 {
		t.Errorf("fade(0) = %g", fade(0))
	}
	if fade(1) != 1 {
		t.Errorf("fade(1) = %g", fade(1))
	}
	if v := fade(0.5); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("fade(0.5) = %g, want 0.5", v)
	}
}

func TestNoiseContinuity(t *testing.T) {
	// Neighboring samples must not jump: value noise interpolates smoothly
	// between lattice points.
	const step = 0.01
	prev := octaveNoise2D(0, 0, 11, 4, 0.5, 2.0)
	for x := step; x < 4; x += step {
		v := octaveNoise2D(x, 0, 11, 4, 0.5, 2.0)
		if math.Abs(v-prev) > 0.15 {
			t.Fatalf("noise discontinuity at x=%g: %g -> %g", x, prev, v)
		}
		prev = v
	}
}

func BenchmarkOctaveNoise(b *testing.B) {
	for i := 0; i < b.N; i++ {
		octaveNoise2D(float64(i)*0.37, float64(i)*0.91, 42, 4, 0.5, 2.0)
	}
}
