package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"negative world scale", func(c *Config) { c.WorldScale = -1 }},
		{"zero move threshold", func(c *Config) { c.ViewerMoveThreshold = 0 }},
		{"zero octaves", func(c *Config) { c.Noise.Octaves = 0 }},
		{"empty lod table", func(c *Config) { c.Levels = nil }},
		{"non-increasing distances", func(c *Config) { c.Levels[1].Distance = c.Levels[0].Distance }},
		{"no collider", func(c *Config) { c.Levels[0].Collider = false }},
		{"two colliders", func(c *Config) { c.Levels[1].Collider = true }},
		{"indivisible chunk size", func(c *Config) { c.ChunkSize = 239 }},
		{"bad region color", func(c *Config) { c.Regions[0].Color = "red" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := `
seed: 7
chunk_size: 120
world_scale: 1.5
viewer_move_threshold: 16
noise:
  scale: 80
  octaves: 3
  persistence: 0.5
  lacunarity: 2.0
height:
  multiplier: 40
  curve:
    - [0, 0]
    - [1, 1]
regions:
  - name: grass
    height: 1.0
    color: "#57954c"
lod_levels:
  - detail: 0
    distance: 300
    collider: true
  - detail: 2
    distance: 600
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Seed != 7 || c.ChunkSize != 120 || c.WorldScale != 1.5 {
		t.Errorf("loaded %d/%d/%g, want 7/120/1.5", c.Seed, c.ChunkSize, c.WorldScale)
	}
	if len(c.Levels) != 2 || c.Levels[1].Detail != 2 {
		t.Errorf("loaded levels = %+v", c.Levels)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("chunk_size: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted an invalid config")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("Load on missing file: %v, want not-exist", err)
	}
}

func TestTerrainConversion(t *testing.T) {
	c := Default()
	tc := c.Terrain()

	if tc.ChunkSize != 240 || tc.WorldScale != 2 || tc.MoveThresholdSq != 25 {
		t.Errorf("converted core config = %+v", tc)
	}
	if len(tc.Levels) != 3 {
		t.Fatalf("level count = %d, want 3", len(tc.Levels))
	}
	if !tc.Levels[0].UseForCollision || tc.Levels[1].UseForCollision {
		t.Error("collision flag mapped to wrong level")
	}
	if tc.MaxViewDistance() != 1200 {
		t.Errorf("MaxViewDistance = %g, want 1200", tc.MaxViewDistance())
	}
}

func TestMapParamsConversion(t *testing.T) {
	c := Default()
	p := c.MapParams()

	if p.Size != 241 {
		t.Errorf("Size = %d, want chunk_size+1 = 241", p.Size)
	}
	if p.Seed != 1337 || p.Octaves != 4 {
		t.Errorf("params = seed %d, octaves %d", p.Seed, p.Octaves)
	}
	if len(p.Regions) != len(c.Regions) {
		t.Fatalf("region count = %d, want %d", len(p.Regions), len(c.Regions))
	}
	if p.Regions[0].Color != (color.RGBA{R: 0x2c, G: 0x52, B: 0xa0, A: 255}) {
		t.Errorf("first region color = %v", p.Regions[0].Color)
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := parseHexColor("#ff8001")
	if err != nil {
		t.Fatal(err)
	}
	if got != (color.RGBA{R: 0xff, G: 0x80, B: 0x01, A: 255}) {
		t.Errorf("parseHexColor = %v", got)
	}

	for _, bad := range []string{"", "#fff", "ff8001", "#gg0000", "#ff80011"} {
		if _, err := parseHexColor(bad); err == nil {
			t.Errorf("parseHexColor(%q) accepted", bad)
		}
	}
}
