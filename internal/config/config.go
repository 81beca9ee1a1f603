package config

import (
	"fmt"
	"image/color"
	"os"

	"endless-terrain/internal/mapgen"
	"endless-terrain/internal/meshing"
	"endless-terrain/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk terrain configuration. Validate enforces the
// invariants the streaming core assumes (non-empty LOD table, strictly
// increasing distances, exactly one collision source).
type Config struct {
	Seed                int64   `yaml:"seed"`
	ChunkSize           int     `yaml:"chunk_size"`
	WorldScale          float32 `yaml:"world_scale"`
	ViewerMoveThreshold float32 `yaml:"viewer_move_threshold"` // squared world units

	Noise   NoiseConfig      `yaml:"noise"`
	Height  HeightConfig     `yaml:"height"`
	Falloff bool             `yaml:"falloff"`
	Regions []RegionConfig   `yaml:"regions"`
	Levels  []LODLevelConfig `yaml:"lod_levels"`
}

type NoiseConfig struct {
	Scale       float64    `yaml:"scale"`
	Octaves     int        `yaml:"octaves"`
	Persistence float64    `yaml:"persistence"`
	Lacunarity  float64    `yaml:"lacunarity"`
	Offset      [2]float32 `yaml:"offset"`
}

type HeightConfig struct {
	Multiplier float32      `yaml:"multiplier"`
	Curve      [][2]float32 `yaml:"curve"`
}

type RegionConfig struct {
	Name   string  `yaml:"name"`
	Height float32 `yaml:"height"`
	Color  string  `yaml:"color"` // "#rrggbb"
}

type LODLevelConfig struct {
	Detail   int     `yaml:"detail"`
	Distance float32 `yaml:"distance"`
	Collider bool    `yaml:"collider"`
}

// Default returns the built-in configuration used when no file is given.
func Default() Config {
	return Config{
		Seed:                1337,
		ChunkSize:           240,
		WorldScale:          2.0,
		ViewerMoveThreshold: 25,
		Noise: NoiseConfig{
			Scale:       120,
			Octaves:     4,
			Persistence: 0.5,
			Lacunarity:  2.0,
		},
		Height: HeightConfig{
			Multiplier: 60,
			Curve: [][2]float32{
				{0, 0}, {0.4, 0.02}, {0.6, 0.22}, {1, 1},
			},
		},
		Regions: []RegionConfig{
			{Name: "water deep", Height: 0.3, Color: "#2c52a0"},
			{Name: "water shallow", Height: 0.4, Color: "#3766c8"},
			{Name: "sand", Height: 0.45, Color: "#d2cf9c"},
			{Name: "grass", Height: 0.55, Color: "#57954c"},
			{Name: "grass dark", Height: 0.6, Color: "#3d6a36"},
			{Name: "rock", Height: 0.7, Color: "#59453c"},
			{Name: "rock dark", Height: 0.9, Color: "#403430"},
			{Name: "snow", Height: 1, Color: "#fffffe"},
		},
		Levels: []LODLevelConfig{
			{Detail: 0, Distance: 400, Collider: true},
			{Detail: 2, Distance: 700},
			{Detail: 4, Distance: 1200},
		},
	}
}

// Load reads and validates a configuration file.
func Load(path string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks the invariants the streaming core assumes.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.WorldScale <= 0 {
		return fmt.Errorf("world_scale must be positive, got %g", c.WorldScale)
	}
	if c.ViewerMoveThreshold <= 0 {
		return fmt.Errorf("viewer_move_threshold must be positive, got %g", c.ViewerMoveThreshold)
	}
	if c.Noise.Octaves < 1 {
		return fmt.Errorf("noise.octaves must be at least 1, got %d", c.Noise.Octaves)
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("lod_levels must not be empty")
	}
	colliders := 0
	prev := float32(0)
	for i, lv := range c.Levels {
		if lv.Distance <= prev {
			return fmt.Errorf("lod_levels[%d]: distance %g not strictly increasing", i, lv.Distance)
		}
		prev = lv.Distance
		if lv.Collider {
			colliders++
		}
		step := meshing.SimplificationStep(lv.Detail)
		if c.ChunkSize%step != 0 {
			return fmt.Errorf("lod_levels[%d]: chunk_size %d not divisible by step %d", i, c.ChunkSize, step)
		}
	}
	if colliders != 1 {
		return fmt.Errorf("exactly one lod level must set collider, got %d", colliders)
	}

	for i, r := range c.Regions {
		if _, err := parseHexColor(r.Color); err != nil {
			return fmt.Errorf("regions[%d] %q: %w", i, r.Name, err)
		}
	}
	return nil
}

// Terrain converts to the streaming core's config.
func (c Config) Terrain() terrain.Config {
	levels := make([]terrain.LODLevel, len(c.Levels))
	for i, lv := range c.Levels {
		levels[i] = terrain.LODLevel{
			Detail:          lv.Detail,
			VisibleDistance: lv.Distance,
			UseForCollision: lv.Collider,
		}
	}
	return terrain.Config{
		ChunkSize:       float32(c.ChunkSize),
		WorldScale:      c.WorldScale,
		MoveThresholdSq: c.ViewerMoveThreshold,
		Levels:          levels,
	}
}

// MapParams converts to map generation parameters. Call Validate first;
// unparsable region colors become opaque black here.
func (c Config) MapParams() mapgen.Params {
	regions := make([]mapgen.Region, len(c.Regions))
	for i, r := range c.Regions {
		col, _ := parseHexColor(r.Color)
		regions[i] = mapgen.Region{Name: r.Name, Height: r.Height, Color: col}
	}
	return mapgen.Params{
		Seed:             c.Seed,
		Size:             c.ChunkSize + 1,
		Scale:            c.Noise.Scale,
		Octaves:          c.Noise.Octaves,
		Persistence:      c.Noise.Persistence,
		Lacunarity:       c.Noise.Lacunarity,
		Offset:           mgl32.Vec2{c.Noise.Offset[0], c.Noise.Offset[1]},
		HeightMultiplier: c.Height.Multiplier,
		HeightCurve:      mapgen.NewCurve(c.Height.Curve),
		Regions:          regions,
		Falloff:          c.Falloff,
	}
}

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
