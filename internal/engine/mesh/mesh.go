// Package mesh uploads geometry to GPU buffers and draws it.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyview/internal/engine/geometry"
	"github.com/Faultbox/skyview/internal/engine/shader"
)

// Mesh is an indexed triangle list resident on the GPU.
// Textures are borrowed; their owner releases them.
type Mesh struct {
	vao, vbo, ebo uint32

	indexCount int32
	bindings   []geometry.Binding
}

// New validates g and uploads it once. Empty vertex or index sets are
// allowed and draw nothing.
func New(g *geometry.Geometry) (*Mesh, error) {
	m, err := prepare(g)
	if err != nil {
		return nil, err
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(g.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*geometry.VertexSize, unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)
	}

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, geometry.VertexSize, geometry.OffsetPosition)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, geometry.VertexSize, geometry.OffsetNormal)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, geometry.VertexSize, geometry.OffsetTexCoord)
	gl.EnableVertexAttribArray(2)
	// Lightmap TexCoord
	gl.VertexAttribPointerWithOffset(3, 2, gl.FLOAT, false, geometry.VertexSize, geometry.OffsetLightmapCoord)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(g.Indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	return m, nil
}

// prepare validates g and fixes the draw parameters without touching GL.
func prepare(g *geometry.Geometry) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("mesh: %w", err)
	}
	return &Mesh{
		indexCount: g.IndexCount(),
		bindings:   geometry.SamplerBindings(g.Textures),
	}, nil
}

// IndexCount is the element count each Draw requests.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// Draw binds every texture to its unit, draws all indices, then unbinds
// the units and leaves unit 0 active.
func (m *Mesh) Draw(p *shader.Program) {
	p.Use()

	for _, b := range m.bindings {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(b.Unit))
		p.SetInt(b.Uniform, int32(b.Unit))
		gl.BindTexture(gl.TEXTURE_2D, b.Texture.ID)
	}

	gl.BindVertexArray(m.vao)
	if m.indexCount > 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
	}
	gl.BindVertexArray(0)

	for _, b := range m.bindings {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(b.Unit))
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
	gl.ActiveTexture(gl.TEXTURE0)
}

// Delete releases the VAO and buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
