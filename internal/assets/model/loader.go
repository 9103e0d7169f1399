// Package model turns an imported scene into renderable geometry.
package model

import (
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/skyview/internal/assets/importer"
	"github.com/Faultbox/skyview/internal/engine/geometry"
	"github.com/Faultbox/skyview/internal/logger"
)

// TextureSource decodes and uploads the texture at path, returning its GL id.
type TextureSource interface {
	Load(path string) (uint32, error)
}

// TextureSourceFunc adapts a function to TextureSource.
type TextureSourceFunc func(path string) (uint32, error)

// Load implements TextureSource.
func (f TextureSourceFunc) Load(path string) (uint32, error) {
	return f(path)
}

// Loader builds geometry from the first mesh of a model file.
type Loader struct {
	Importer    importer.Importer
	Textures    TextureSource
	TextureRoot string
	FlipUVs     bool
	// BlankLightmap is bound as the lightmap when the mesh resolves none.
	// Zero leaves the lightmap sampler unbound.
	BlankLightmap uint32
}

// materialSlots lists the texture kinds read from a material, in binding order.
var materialSlots = []struct {
	kind     importer.TextureKind
	typeName string
}{
	{importer.Diffuse, geometry.TypeDiffuse},
	{importer.Lightmap, geometry.TypeLightmap},
}

// Load imports the model at path and returns the geometry of its first mesh.
// A scene that is missing, incomplete, rootless or meshless is an error;
// individual textures that fail to load are logged and skipped.
func (l *Loader) Load(modelPath string) (*geometry.Geometry, error) {
	scene, err := l.Importer.Import(modelPath, importer.Options{
		Triangulate: true,
		FlipUVs:     l.FlipUVs,
	})
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", modelPath, err)
	}
	if err := importer.Check(scene); err != nil {
		return nil, fmt.Errorf("import %s: %w", modelPath, err)
	}

	mesh := scene.Meshes[0]
	logger.Info("model imported",
		zap.String("path", modelPath),
		zap.Int("meshes", len(scene.Meshes)),
		zap.Int("vertices", len(mesh.Positions)),
		zap.Int("faces", mesh.FaceCount()),
	)

	mat := scene.Material(mesh)
	lightmapUV := importer.DefaultLightmapUV
	if len(mat.TexturePaths(importer.Lightmap)) > 0 {
		lightmapUV = mat.LightmapUV
	}

	g := &geometry.Geometry{
		Vertices: BuildVertices(mesh, lightmapUV),
		Indices:  BuildIndices(mesh),
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("mesh %q: %w", mesh.Name, err)
	}

	if mat != nil {
		var loaded []geometry.Texture
		for _, slot := range materialSlots {
			g.Textures = append(g.Textures, l.materialTextures(mat, slot.kind, slot.typeName, &loaded)...)
		}
	}
	if l.BlankLightmap != 0 && !hasType(g.Textures, geometry.TypeLightmap) {
		g.Textures = append(g.Textures, geometry.Texture{ID: l.BlankLightmap, Type: geometry.TypeLightmap})
	}

	return g, nil
}

// materialTextures resolves every texture of one kind, reusing entries in
// loaded whose path matches exactly.
func (l *Loader) materialTextures(mat *importer.Material, kind importer.TextureKind, typeName string, loaded *[]geometry.Texture) []geometry.Texture {
	var textures []geometry.Texture

	for _, stored := range mat.TexturePaths(kind) {
		texPath := l.ResolveTexturePath(stored)

		if tex, ok := findTexture(*loaded, texPath); ok {
			textures = append(textures, tex)
			continue
		}

		id, err := l.Textures.Load(texPath)
		if err != nil {
			logger.Warn("failed to load texture",
				zap.String("path", texPath),
				zap.Stringer("kind", kind),
				zap.Error(err),
			)
			continue
		}
		logger.Debug("material texture resolved", zap.String("path", texPath), zap.Uint32("id", id))

		tex := geometry.Texture{ID: id, Type: typeName, Path: texPath}
		textures = append(textures, tex)
		*loaded = append(*loaded, tex)
	}

	return textures
}

func findTexture(loaded []geometry.Texture, texPath string) (geometry.Texture, bool) {
	for _, tex := range loaded {
		if tex.Path == texPath {
			return tex, true
		}
	}
	return geometry.Texture{}, false
}

func hasType(textures []geometry.Texture, typeName string) bool {
	for _, tex := range textures {
		if tex.Type == typeName {
			return true
		}
	}
	return false
}

// ResolveTexturePath re-roots the file name of a stored texture reference
// under the texture root.
func (l *Loader) ResolveTexturePath(stored string) string {
	name := ExtractFilename(stored)
	if l.TextureRoot == "" {
		return name
	}
	return path.Join(l.TextureRoot, name)
}

// ExtractFilename returns the part of p after the last '/' or '\'.
// A path without separators is returned unchanged.
func ExtractFilename(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}
	return p
}

// BuildVertices copies the attributes of m into the vertex layout. The
// lightmap coordinate comes from UV channel lightmapUV.
// Positions are always copied; missing normals and UV channels stay zero.
func BuildVertices(m *importer.Mesh, lightmapUV int) []geometry.Vertex {
	vertices := make([]geometry.Vertex, len(m.Positions))
	hasNormals := m.HasNormals()
	hasUV0 := m.HasTexCoords(0)
	hasLightmapUV := m.HasTexCoords(lightmapUV)

	for i := range vertices {
		v := &vertices[i]
		v.Position = m.Positions[i]
		if hasNormals {
			v.Normal = m.Normals[i]
		}
		if hasUV0 {
			v.TexCoord = m.TexCoords[0][i]
		}
		if hasLightmapUV {
			v.LightmapCoord = m.TexCoords[lightmapUV][i]
		}
	}
	return vertices
}

// BuildIndices flattens every face's corner indices in importer order.
func BuildIndices(m *importer.Mesh) []uint32 {
	n := 0
	for _, f := range m.Faces {
		n += len(f)
	}
	indices := make([]uint32, 0, n)
	for _, f := range m.Faces {
		indices = append(indices, f...)
	}
	return indices
}
