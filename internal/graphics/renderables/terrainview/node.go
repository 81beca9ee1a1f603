package terrainview

import (
	"image/color"

	"endless-terrain/internal/graphics"
	"endless-terrain/internal/meshing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ChunkNode is the renderable for one terrain chunk. It implements
// terrain.SceneNode; all calls arrive on the main thread, which owns the GL
// context.
type ChunkNode struct {
	view     *TerrainView
	position mgl32.Vec3
	scale    float32

	active   bool
	disposed bool

	vao, vbo, ebo uint32
	indexCount    int32
	texture       uint32
}

// SetActive toggles whether the node is drawn.
func (n *ChunkNode) SetActive(active bool) {
	n.active = active
}

// SetMesh uploads a mesh, replacing the previously displayed one.
func (n *ChunkNode) SetMesh(m *meshing.Mesh) {
	if n.disposed {
		// late arrival after eviction
		return
	}

	if n.vao == 0 {
		gl.GenVertexArrays(1, &n.vao)
		gl.GenBuffers(1, &n.vbo)
		gl.GenBuffers(1, &n.ebo)
	}

	verts := m.Interleave()

	gl.BindVertexArray(n.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, n.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, n.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(meshing.VertexStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	n.indexCount = int32(len(m.Indices))
}

// SetCollisionMesh marks the node as carrying a collision shape. The GL view
// has no physics engine of its own; collision queries sample the artifact
// through the terrain grid, so nothing is retained here.
func (n *ChunkNode) SetCollisionMesh(m *meshing.Mesh) {}

// SetColorMap uploads the chunk texture from its per-vertex color grid.
func (n *ChunkNode) SetColorMap(colors []color.RGBA, size int) {
	if n.disposed {
		return
	}
	if n.texture != 0 {
		gl.DeleteTextures(1, &n.texture)
	}
	img := graphics.BuildColorMapImage(colors, size, n.view.textureUpscale)
	n.texture = graphics.NewTextureRGBA(img)
}

// Dispose releases GL resources and detaches the node from its view.
func (n *ChunkNode) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.release()
	n.view.remove(n)
}

func (n *ChunkNode) release() {
	if n.vao != 0 {
		gl.DeleteVertexArrays(1, &n.vao)
		gl.DeleteBuffers(1, &n.vbo)
		gl.DeleteBuffers(1, &n.ebo)
		n.vao, n.vbo, n.ebo = 0, 0, 0
	}
	if n.texture != 0 {
		gl.DeleteTextures(1, &n.texture)
		n.texture = 0
	}
	n.indexCount = 0
}

func (n *ChunkNode) modelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(n.position.X(), n.position.Y(), n.position.Z()).
		Mul4(mgl32.Scale3D(n.scale, n.scale, n.scale))
}
