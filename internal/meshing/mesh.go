package meshing

import (
	"math"

	"endless-terrain/internal/mapgen"
	"endless-terrain/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an immutable renderable mesh artifact for one chunk at one detail
// level. Positions are centered on the chunk origin in the XZ plane.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexStride is the float count per interleaved vertex (pos3, normal3, uv2).
const VertexStride = 8

// Interleave packs the mesh into a single vertex buffer for GPU upload.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Positions)*VertexStride)
	for i := range m.Positions {
		p := m.Positions[i]
		n := m.Normals[i]
		uv := m.UVs[i]
		out = append(out, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z(), uv.X(), uv.Y())
	}
	return out
}

// SimplificationStep returns the vertex stride across the height grid for a
// detail level: full resolution at level 0, then 2, 4, 6... The grid side
// length minus one must be divisible by every step in use.
func SimplificationStep(lod int) int {
	if lod <= 0 {
		return 1
	}
	return lod * 2
}

// BuildMesh builds the mesh for a payload at the given detail level.
// Deterministic: the same payload and level always produce the same mesh.
func BuildMesh(data *mapgen.MapData, lod int) *Mesh {
	defer profiling.Track("meshing.BuildMesh")()

	size := data.Size
	step := SimplificationStep(lod)
	perLine := (size-1)/step + 1

	topLeftX := -float32(size-1) / 2
	topLeftZ := float32(size-1) / 2

	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, perLine*perLine),
		Normals:   make([]mgl32.Vec3, perLine*perLine),
		UVs:       make([]mgl32.Vec2, 0, perLine*perLine),
		Indices:   make([]uint32, 0, (perLine-1)*(perLine-1)*6),
	}

	vi := uint32(0)
	for y := 0; y < size; y += step {
		for x := 0; x < size; x += step {
			m.Positions = append(m.Positions, mgl32.Vec3{
				topLeftX + float32(x),
				data.HeightAt(x, y),
				topLeftZ - float32(y),
			})
			m.UVs = append(m.UVs, mgl32.Vec2{
				float32(x) / float32(size-1),
				float32(y) / float32(size-1),
			})

			if x < size-step && y < size-step {
				pl := uint32(perLine)
				m.Indices = append(m.Indices,
					vi, vi+pl+1, vi+pl,
					vi+pl+1, vi, vi+1,
				)
			}
			vi++
		}
	}

	m.computeNormals()
	return m
}

// SampleHeight returns the mesh surface height at a local XZ position,
// interpolated across the triangle containing it. ok is false outside the
// mesh footprint. This is what collision queries walk, so a simplified
// collision level yields its simplified surface, not the raw height grid.
func (m *Mesh) SampleHeight(x, z float32) (float32, bool) {
	perLine := int(math.Sqrt(float64(len(m.Positions))))
	if perLine < 2 {
		return 0, false
	}

	topLeftX := m.Positions[0].X()
	topLeftZ := m.Positions[0].Z()
	spacing := m.Positions[1].X() - topLeftX

	gx := (x - topLeftX) / spacing
	gy := (topLeftZ - z) / spacing
	if gx < 0 || gy < 0 || gx > float32(perLine-1) || gy > float32(perLine-1) {
		return 0, false
	}

	x0 := int(gx)
	y0 := int(gy)
	if x0 == perLine-1 {
		x0--
	}
	if y0 == perLine-1 {
		y0--
	}
	u := gx - float32(x0)
	v := gy - float32(y0)

	tl := m.Positions[y0*perLine+x0].Y()
	tr := m.Positions[y0*perLine+x0+1].Y()
	bl := m.Positions[(y0+1)*perLine+x0].Y()
	br := m.Positions[(y0+1)*perLine+x0+1].Y()

	// cells are split along the top-left/bottom-right diagonal, matching the
	// triangles BuildMesh emits
	if v >= u {
		return tl*(1-v) + bl*(v-u) + br*u, true
	}
	return tl*(1-u) + tr*(u-v) + br*v, true
}

// computeNormals accumulates face normals per vertex and normalizes.
func (m *Mesh) computeNormals() {
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Indices[i]
		b := m.Indices[i+1]
		c := m.Indices[i+2]
		e1 := m.Positions[b].Sub(m.Positions[a])
		e2 := m.Positions[c].Sub(m.Positions[a])
		n := e1.Cross(e2)
		m.Normals[a] = m.Normals[a].Add(n)
		m.Normals[b] = m.Normals[b].Add(n)
		m.Normals[c] = m.Normals[c].Add(n)
	}
	for i, n := range m.Normals {
		if n.Len() > 0 {
			m.Normals[i] = n.Normalize()
		} else {
			m.Normals[i] = mgl32.Vec3{0, 1, 0}
		}
	}
}
