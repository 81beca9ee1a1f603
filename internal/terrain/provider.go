package terrain

import (
	"image/color"

	"endless-terrain/internal/mapgen"
	"endless-terrain/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// MapDataProvider asynchronously yields the heightmap/color payload for a
// chunk center. The callback must be delivered on the tick goroutine and
// never synchronously from the request call. Chunks enforce at most one
// outstanding request each; the provider does not need to deduplicate.
type MapDataProvider interface {
	RequestMapData(center mgl32.Vec2, cb func(*mapgen.MapData))
}

// MeshProvider asynchronously builds a mesh for a payload at a detail level,
// under the same delivery contract as MapDataProvider.
type MeshProvider interface {
	RequestMeshData(data *mapgen.MapData, detail int, cb func(*meshing.Mesh))
}

// SceneHost creates renderable nodes for chunks. The streaming core talks to
// the scene graph only through this interface and never touches a rendering
// API directly.
type SceneHost interface {
	// CreateNode instantiates a node at a scaled world position.
	CreateNode(position mgl32.Vec3, scale float32) SceneNode
}

// SceneNode is one chunk's renderable. All calls arrive on the tick
// goroutine.
type SceneNode interface {
	// SetActive toggles visibility. Purely cosmetic; mesh data stays alive.
	SetActive(active bool)
	// SetMesh swaps the displayed mesh.
	SetMesh(mesh *meshing.Mesh)
	// SetCollisionMesh assigns the physical collision shape.
	SetCollisionMesh(mesh *meshing.Mesh)
	// SetColorMap assigns the chunk texture from a size×size color grid.
	SetColorMap(colors []color.RGBA, size int)
	// Dispose releases the node's resources. Only eviction calls this.
	Dispose()
}
