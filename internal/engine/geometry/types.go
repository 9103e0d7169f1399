// Package geometry holds CPU-side mesh data ready for GPU upload.
package geometry

import (
	"errors"
	"fmt"
	"strconv"
)

// Texture type tags. The sampler uniform for a texture is its tag plus a
// per-tag counter, e.g. texture_diffuse1.
const (
	TypeDiffuse  = "texture_diffuse"
	TypeLightmap = "texture_lightmap"
)

// Vertex layout: attribute locations 0..3 at byte offsets 0, 12, 24, 32.
const (
	VertexSize          = 40
	OffsetPosition      = 0
	OffsetNormal        = 12
	OffsetTexCoord      = 24
	OffsetLightmapCoord = 32
)

// ErrIndexRange is returned when an index points past the vertex slice.
var ErrIndexRange = errors.New("index out of vertex range")

// Vertex is a mesh vertex with two UV sets. Missing attributes stay zero.
type Vertex struct {
	Position      [3]float32
	Normal        [3]float32
	TexCoord      [2]float32
	LightmapCoord [2]float32
}

// Texture references an uploaded GL texture.
// Path is the resolved file path and serves as the de-duplication key.
type Texture struct {
	ID   uint32
	Type string
	Path string
}

// Geometry is an indexed triangle list plus the textures it samples.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
	Textures []Texture
}

// Validate checks that every index addresses an existing vertex.
func (g *Geometry) Validate() error {
	n := uint32(len(g.Vertices))
	for i, idx := range g.Indices {
		if idx >= n {
			return fmt.Errorf("%w: indices[%d]=%d, vertex count %d", ErrIndexRange, i, idx, n)
		}
	}
	return nil
}

// IndexCount is the element count for one indexed draw of the whole mesh.
func (g *Geometry) IndexCount() int32 {
	return int32(len(g.Indices))
}

// TriangleCount returns the number of whole triangles in the index list.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Binding assigns a texture to a texture unit and names its sampler uniform.
type Binding struct {
	Unit    int
	Uniform string
	Texture Texture
}

// SamplerBindings lays textures out on consecutive units in list order.
// Uniform names count per type starting at 1, so a diffuse and a lightmap
// texture bind as texture_diffuse1 (unit 0) and texture_lightmap1 (unit 1).
func SamplerBindings(textures []Texture) []Binding {
	if len(textures) == 0 {
		return nil
	}

	counters := make(map[string]int, 2)
	bindings := make([]Binding, len(textures))
	for i, tex := range textures {
		counters[tex.Type]++
		bindings[i] = Binding{
			Unit:    i,
			Uniform: tex.Type + strconv.Itoa(counters[tex.Type]),
			Texture: tex,
		}
	}
	return bindings
}
