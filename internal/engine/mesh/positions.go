package mesh

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// PositionBuffer is a non-indexed triangle list with only a vec3 position
// at attribute 0. The skybox cube and the box primitive use it.
type PositionBuffer struct {
	vao, vbo    uint32
	vertexCount int32
}

// NewPositionBuffer uploads xyz triples.
func NewPositionBuffer(positions []float32) (*PositionBuffer, error) {
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("position buffer: %d floats is not a multiple of 3", len(positions))
	}

	b := &PositionBuffer{vertexCount: int32(len(positions) / 3)}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(positions) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	}

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	return b, nil
}

// Draw issues one DrawArrays call over all vertices.
func (b *PositionBuffer) Draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.vertexCount)
	gl.BindVertexArray(0)
}

// Delete releases the VAO and buffer.
func (b *PositionBuffer) Delete() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
