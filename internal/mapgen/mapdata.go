package mapgen

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Region maps a normalized noise band to a terrain color.
// Regions are ordered by ascending Height; the first region whose Height is
// not exceeded colors the sample.
type Region struct {
	Name   string
	Height float32 // upper bound on normalized noise, inclusive
	Color  color.RGBA
}

// MapData is the immutable heightmap/color payload for one chunk. It arrives
// once per chunk and is never mutated afterwards; meshes for every detail
// level are derived from the same payload.
type MapData struct {
	Size    int          // vertices per side
	Heights []float32    // world-space heights, row-major, len Size*Size
	Colors  []color.RGBA // per-vertex colors, same layout
}

// HeightAt returns the height at grid sample (x, y).
func (m *MapData) HeightAt(x, y int) float32 {
	return m.Heights[y*m.Size+x]
}

// Params configures terrain map generation.
type Params struct {
	Seed             int64
	Size             int     // vertices per side (chunk size + 1)
	Scale            float64 // noise feature scale in world units
	Octaves          int
	Persistence      float64
	Lacunarity       float64
	Offset           mgl32.Vec2
	HeightMultiplier float32
	HeightCurve      Curve
	Regions          []Region
	Falloff          bool
}

// Generator produces MapData payloads for chunk centers. It is stateless
// beyond its parameters, so it is safe to call from multiple workers.
type Generator struct {
	p Params
}

// NewGenerator creates a generator with the given parameters.
func NewGenerator(p Params) *Generator {
	if p.Scale <= 0 {
		p.Scale = 0.0001
	}
	return &Generator{p: p}
}

// NoiseAt returns the normalized [0,1] noise value at a world position.
func (g *Generator) NoiseAt(wx, wz float32) float32 {
	x := (float64(wx) + float64(g.p.Offset.X())) / g.p.Scale
	z := (float64(wz) + float64(g.p.Offset.Y())) / g.p.Scale
	return float32(octaveNoise2D(x, z, g.p.Seed, g.p.Octaves, g.p.Persistence, g.p.Lacunarity))
}

// HeightAt returns the world-space terrain height at a world position.
func (g *Generator) HeightAt(wx, wz float32) float32 {
	return g.p.HeightCurve.Eval(g.NoiseAt(wx, wz)) * g.p.HeightMultiplier
}

// Generate builds the payload for a chunk centered at the given world
// position. Grid sample (x, y) corresponds to world position
// (center.X - half + x, center.Y + half - y), matching the vertex layout the
// mesher uses, so neighboring chunks share identical edge samples.
func (g *Generator) Generate(center mgl32.Vec2) *MapData {
	size := g.p.Size
	half := float32(size-1) / 2

	data := &MapData{
		Size:    size,
		Heights: make([]float32, size*size),
		Colors:  make([]color.RGBA, size*size),
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			wx := center.X() - half + float32(x)
			wz := center.Y() + half - float32(y)

			n := g.NoiseAt(wx, wz)
			if g.p.Falloff {
				n -= falloffValue(x, y, size)
				if n < 0 {
					n = 0
				}
			}

			idx := y*size + x
			data.Heights[idx] = g.p.HeightCurve.Eval(n) * g.p.HeightMultiplier
			data.Colors[idx] = g.colorFor(n)
		}
	}

	return data
}

func (g *Generator) colorFor(n float32) color.RGBA {
	for _, r := range g.p.Regions {
		if n <= r.Height {
			return r.Color
		}
	}
	if len(g.p.Regions) > 0 {
		return g.p.Regions[len(g.p.Regions)-1].Color
	}
	// grayscale fallback when no regions are configured
	v := uint8(n * 255)
	return color.RGBA{v, v, v, 255}
}
