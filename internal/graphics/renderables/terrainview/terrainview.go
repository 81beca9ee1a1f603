package terrainview

import (
	"endless-terrain/internal/config"
	"endless-terrain/internal/graphics"
	"endless-terrain/internal/graphics/renderer"
	"endless-terrain/internal/profiling"
	"endless-terrain/internal/terrain"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// TerrainView draws streamed terrain chunks. It implements the renderer's
// Renderable lifecycle and acts as the streaming core's scene host: the grid
// creates one ChunkNode per chunk through CreateNode and drives it via the
// SceneNode interface, never touching GL itself.
type TerrainView struct {
	shader *graphics.Shader
	nodes  map[*ChunkNode]struct{}

	textureUpscale int
	lightDir       mgl32.Vec3
	fogStart       float32
	fogEnd         float32
}

// NewTerrainView creates the terrain renderable. maxViewDistance (in scaled
// world units) positions the fog band at the streaming edge.
func NewTerrainView(maxViewDistance float32) *TerrainView {
	return &TerrainView{
		nodes:          make(map[*ChunkNode]struct{}),
		textureUpscale: 2,
		lightDir:       mgl32.Vec3{-0.4, -1, -0.35}.Normalize(),
		fogStart:       maxViewDistance * 0.7,
		fogEnd:         maxViewDistance,
	}
}

// Init compiles the terrain shader.
func (tv *TerrainView) Init() error {
	var err error
	tv.shader, err = graphics.NewShader(vertShaderSrc, fragShaderSrc)
	return err
}

// CreateNode instantiates a renderable node for a chunk.
func (tv *TerrainView) CreateNode(position mgl32.Vec3, scale float32) terrain.SceneNode {
	n := &ChunkNode{view: tv, position: position, scale: scale}
	tv.nodes[n] = struct{}{}
	return n
}

func (tv *TerrainView) remove(n *ChunkNode) {
	delete(tv.nodes, n)
}

// Render draws all active chunk nodes.
func (tv *TerrainView) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderTerrain")()

	if config.GetWireframe() {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	tv.shader.Use()
	view := ctx.View
	proj := ctx.Proj
	tv.shader.SetMatrix4("view", &view[0])
	tv.shader.SetMatrix4("projection", &proj[0])
	tv.shader.SetVector3("lightDir", tv.lightDir.X(), tv.lightDir.Y(), tv.lightDir.Z())
	cam := ctx.Player.Position
	tv.shader.SetVector3("cameraPos", cam.X(), cam.Y(), cam.Z())
	tv.shader.SetFloat("fogStart", tv.fogStart)
	tv.shader.SetFloat("fogEnd", tv.fogEnd)
	tv.shader.SetVector3("fogColor", 0.53, 0.70, 0.92)
	tv.shader.SetInt("colorMap", 0)

	gl.ActiveTexture(gl.TEXTURE0)

	for n := range tv.nodes {
		if !n.active || n.indexCount == 0 {
			continue
		}
		model := n.modelMatrix()
		tv.shader.SetMatrix4("model", &model[0])
		gl.BindTexture(gl.TEXTURE_2D, n.texture)
		gl.BindVertexArray(n.vao)
		gl.DrawElements(gl.TRIANGLES, n.indexCount, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// ActiveNodeCount returns how many chunk nodes are currently drawn.
func (tv *TerrainView) ActiveNodeCount() int {
	count := 0
	for n := range tv.nodes {
		if n.active && n.indexCount > 0 {
			count++
		}
	}
	return count
}

// Dispose releases all nodes and the shader.
func (tv *TerrainView) Dispose() {
	for n := range tv.nodes {
		n.release()
	}
	clear(tv.nodes)
	if tv.shader != nil {
		tv.shader.Dispose()
	}
}

// SetViewport is part of the Renderable interface; terrain needs no
// per-viewport state.
func (tv *TerrainView) SetViewport(width, height int) {}
