// Package importer parses 3D asset files into a format-neutral scene.
package importer

import (
	"errors"
	"fmt"
)

// Scene check failures.
var (
	ErrNoScene          = errors.New("importer returned no scene")
	ErrIncompleteScene  = errors.New("scene is incomplete")
	ErrNoRootNode       = errors.New("scene has no root node")
	ErrNoMeshes         = errors.New("scene has no meshes")
	ErrUnsupportedAsset = errors.New("unsupported asset format")
)

// TextureKind is the role a material texture plays.
type TextureKind int

const (
	Diffuse TextureKind = iota
	Lightmap
)

func (k TextureKind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Lightmap:
		return "lightmap"
	default:
		return fmt.Sprintf("TextureKind(%d)", int(k))
	}
}

// Options select post-processing applied during import.
type Options struct {
	// Triangulate splits strips, fans and polygons into triangle faces.
	Triangulate bool
	// FlipUVs replaces every v coordinate with 1-v.
	FlipUVs bool
}

// Scene is the in-memory result of an import.
type Scene struct {
	Meshes     []*Mesh
	Materials  []*Material
	HasRoot    bool
	Incomplete bool
}

// Mesh is one drawable primitive set with a single material.
// Normals and each TexCoords channel are either empty or one entry per position.
type Mesh struct {
	Name          string
	Positions     [][3]float32
	Normals       [][3]float32
	TexCoords     [2][][2]float32
	Faces         [][]uint32
	MaterialIndex int // -1 when the mesh has no material
}

// HasNormals reports whether every vertex carries a normal.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0 && len(m.Normals) == len(m.Positions)
}

// HasTexCoords reports whether UV channel ch is populated.
func (m *Mesh) HasTexCoords(ch int) bool {
	if ch < 0 || ch >= len(m.TexCoords) {
		return false
	}
	return len(m.TexCoords[ch]) > 0 && len(m.TexCoords[ch]) == len(m.Positions)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// DefaultLightmapUV is the UV channel a lightmap samples unless the
// material says otherwise.
const DefaultLightmapUV = 1

// Material lists texture paths per kind, exactly as stored in the asset.
type Material struct {
	Name     string
	Textures map[TextureKind][]string
	// LightmapUV is the UV channel the lightmap textures sample.
	LightmapUV int
}

// TexturePaths returns the stored paths for kind, in asset order.
func (m *Material) TexturePaths(kind TextureKind) []string {
	if m == nil {
		return nil
	}
	return m.Textures[kind]
}

// Importer parses an asset file.
type Importer interface {
	Import(path string, opts Options) (*Scene, error)
}

// Check rejects scenes a model cannot be built from.
func Check(s *Scene) error {
	switch {
	case s == nil:
		return ErrNoScene
	case s.Incomplete:
		return ErrIncompleteScene
	case !s.HasRoot:
		return ErrNoRootNode
	case len(s.Meshes) == 0:
		return ErrNoMeshes
	}
	return nil
}

// Material returns the material of mesh m, or nil.
func (s *Scene) Material(m *Mesh) *Material {
	if m == nil || m.MaterialIndex < 0 || m.MaterialIndex >= len(s.Materials) {
		return nil
	}
	return s.Materials[m.MaterialIndex]
}
