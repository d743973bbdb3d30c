package primitives

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"space-lab/internal/geometry"
	"space-lab/internal/palette"
	"space-lab/internal/vmath"
)

// cached is one uploaded shape. The vertex slices stay in Go memory, owned by the
// geometry cache; raylib tracks the mesh as Go-managed and frees only GPU buffers.
type cached struct {
	mesh rl.Mesh
}

// Registry uploads each distinct shape once and draws it with a shared lit
// material. Meshes are created on first use so that GPU resources are allocated
// after the window/OpenGL context exists.
type Registry struct {
	shapes *geometry.Cache
	cache  map[string]*cached

	mtl    rl.Material
	loaded bool
	locs   shaderLocs

	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns an empty registry drawing meshes from shapes. Pass the same
// cache the picking code uses so each shape is triangulated once.
func NewRegistry(shapes *geometry.Cache) *Registry {
	if shapes == nil {
		shapes = geometry.NewCache()
	}
	return &Registry{
		shapes:   shapes,
		cache:    make(map[string]*cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing parts so they get correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// Len is the number of shapes uploaded.
func (r *Registry) Len() int { return len(r.cache) }

// ensureMaterial loads the lit shader and the shared material.
func (r *Registry) ensureMaterial() {
	if r.loaded {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		r.mtl.Shader = shader
		r.locs = lookupLocs(shader)
	}
	r.loaded = true
}

// ensure uploads the shape's mesh if it is not cached yet.
func (r *Registry) ensure(s geometry.Shape) *cached {
	key := s.Key()
	if c, ok := r.cache[key]; ok {
		return c
	}
	src := r.shapes.Mesh(s)
	c := &cached{}
	c.mesh = rl.Mesh{
		VertexCount:   int32(src.VertexCount()),
		TriangleCount: int32(src.TriangleCount()),
	}
	if len(src.Vertices) > 0 {
		c.mesh.Vertices = &src.Vertices[0]
		c.mesh.Normals = &src.Normals[0]
		c.mesh.Texcoords = &src.Texcoords[0]
		rl.UploadMesh(&c.mesh, false)
	}
	r.cache[key] = c
	return c
}

// Draw draws one part: shape s placed by transform, tinted color and glowing with
// its own color at the given emissive intensity.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(s geometry.Shape, transform vmath.Mat4, color palette.RGBA, emissive float32) {
	r.ensureMaterial()
	c := r.ensure(s)
	if c.mesh.VertexCount == 0 {
		return
	}
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = Color(color)
	}
	r.setLitShaderUniforms(color, emissive)
	rl.DrawMesh(c.mesh, r.mtl, Matrix(transform))
}

// Unload releases every uploaded mesh and the shader. The registry can be used
// again afterwards; meshes are re-uploaded on demand.
func (r *Registry) Unload() {
	for key, c := range r.cache {
		if c.mesh.VaoID != 0 {
			rl.UnloadMesh(&c.mesh)
		}
		delete(r.cache, key)
	}
	if r.loaded {
		rl.UnloadShader(r.mtl.Shader)
		r.loaded = false
	}
}
