// Package skybox draws a cubemap behind the scene.
package skybox

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/skyview/internal/engine/geometry"
	"github.com/Faultbox/skyview/internal/engine/mesh"
	"github.com/Faultbox/skyview/internal/engine/shader"
	"github.com/Faultbox/skyview/internal/engine/texture"
)

// SamplerUniform is the samplerCube name the skybox shader declares.
const SamplerUniform = "skybox"

// Skybox owns its cube vertices and cubemap texture.
type Skybox struct {
	cube    *mesh.PositionBuffer
	cubemap texture.Texture
}

// New loads six faces in +X, -X, +Y, -Y, +Z, -Z order.
func New(faces []string) (*Skybox, error) {
	cubemap, err := texture.LoadCubemap(faces)
	if err != nil {
		return nil, fmt.Errorf("skybox: %w", err)
	}

	cube, err := mesh.NewPositionBuffer(geometry.SkyboxVertices())
	if err != nil {
		cubemap.Delete()
		return nil, fmt.Errorf("skybox: %w", err)
	}

	return &Skybox{cube: cube, cubemap: cubemap}, nil
}

// Draw renders the cubemap at maximum depth. The translation part of
// view is dropped so the sky follows the camera. Depth state is restored.
func (s *Skybox) Draw(p *shader.Program, view, projection mgl32.Mat4) {
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	p.Use()
	p.SetMat4("view", view.Mat3().Mat4())
	p.SetMat4("projection", projection)
	p.SetInt(SamplerUniform, 0)

	s.cubemap.Bind(0)
	s.cube.Draw()
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
}

// Delete releases the cubemap and cube buffers.
func (s *Skybox) Delete() {
	if s.cube != nil {
		s.cube.Delete()
		s.cube = nil
	}
	s.cubemap.Delete()
}
