package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/skyview/internal/logger"
)

// glTF vertex attribute names.
const (
	attrPosition  = "POSITION"
	attrNormal    = "NORMAL"
	attrTexCoord0 = "TEXCOORD_0"
	attrTexCoord1 = "TEXCOORD_1"
)

// GLTF imports .gltf and .glb files.
//
// Each primitive of each glTF mesh becomes one Mesh, in document order.
// The base colour texture is reported as Diffuse and the occlusion texture,
// which carries baked lighting, as Lightmap.
type GLTF struct{}

// NewGLTF returns a glTF importer.
func NewGLTF() *GLTF {
	return &GLTF{}
}

// Import implements Importer.
func (GLTF) Import(path string, opts Options) (*Scene, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAsset, path)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return convertDocument(doc, opts)
}

func convertDocument(doc *gltf.Document, opts Options) (*Scene, error) {
	scene := &Scene{
		HasRoot:    hasRootNode(doc),
		Incomplete: len(doc.Meshes) == 0,
	}

	for _, m := range doc.Materials {
		scene.Materials = append(scene.Materials, convertMaterial(doc, m))
	}

	for mi, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			mesh, err := convertPrimitive(doc, prim, opts)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
			mesh.Name = m.Name
			scene.Meshes = append(scene.Meshes, mesh)
		}
	}

	return scene, nil
}

func hasRootNode(doc *gltf.Document) bool {
	if len(doc.Scenes) == 0 {
		return false
	}
	idx := 0
	if doc.Scene != nil {
		idx = *doc.Scene
	}
	if idx < 0 || idx >= len(doc.Scenes) {
		return false
	}
	return len(doc.Scenes[idx].Nodes) > 0
}

func convertPrimitive(doc *gltf.Document, prim *gltf.Primitive, opts Options) (*Mesh, error) {
	mesh := &Mesh{MaterialIndex: -1}
	if prim.Material != nil {
		mesh.MaterialIndex = *prim.Material
	}

	posIdx, ok := prim.Attributes[attrPosition]
	if !ok {
		return nil, fmt.Errorf("primitive has no %s attribute", attrPosition)
	}
	acr, err := accessor(doc, posIdx)
	if err != nil {
		return nil, err
	}
	if mesh.Positions, err = modeler.ReadPosition(doc, acr, nil); err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	if idx, ok := prim.Attributes[attrNormal]; ok {
		if acr, err = accessor(doc, idx); err != nil {
			return nil, err
		}
		if mesh.Normals, err = modeler.ReadNormal(doc, acr, nil); err != nil {
			return nil, fmt.Errorf("read normals: %w", err)
		}
	}

	for ch, name := range [2]string{attrTexCoord0, attrTexCoord1} {
		idx, ok := prim.Attributes[name]
		if !ok {
			continue
		}
		if acr, err = accessor(doc, idx); err != nil {
			return nil, err
		}
		uvs, err := modeler.ReadTextureCoord(doc, acr, nil)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if opts.FlipUVs {
			for i := range uvs {
				uvs[i][1] = 1 - uvs[i][1]
			}
		}
		mesh.TexCoords[ch] = uvs
	}

	var indices []uint32
	if prim.Indices != nil {
		if acr, err = accessor(doc, *prim.Indices); err != nil {
			return nil, err
		}
		if indices, err = modeler.ReadIndices(doc, acr, nil); err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(mesh.Positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	mesh.Faces = buildFaces(prim.Mode, indices, opts.Triangulate)
	return mesh, nil
}

func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range (%d accessors)", idx, len(doc.Accessors))
	}
	return doc.Accessors[idx], nil
}

// buildFaces groups a primitive's index stream into faces.
func buildFaces(mode gltf.PrimitiveMode, indices []uint32, triangulate bool) [][]uint32 {
	var faces [][]uint32

	switch mode {
	case gltf.PrimitiveTriangles:
		for i := 0; i+2 < len(indices); i += 3 {
			faces = append(faces, []uint32{indices[i], indices[i+1], indices[i+2]})
		}

	case gltf.PrimitiveTriangleStrip:
		if !triangulate {
			return polygon(indices)
		}
		for i := 0; i+2 < len(indices); i++ {
			if i%2 == 0 {
				faces = append(faces, []uint32{indices[i], indices[i+1], indices[i+2]})
			} else {
				faces = append(faces, []uint32{indices[i+1], indices[i], indices[i+2]})
			}
		}

	case gltf.PrimitiveTriangleFan:
		if !triangulate {
			return polygon(indices)
		}
		for i := 1; i+1 < len(indices); i++ {
			faces = append(faces, []uint32{indices[0], indices[i], indices[i+1]})
		}

	case gltf.PrimitiveLines:
		for i := 0; i+1 < len(indices); i += 2 {
			faces = append(faces, []uint32{indices[i], indices[i+1]})
		}

	case gltf.PrimitiveLineStrip, gltf.PrimitiveLineLoop:
		for i := 0; i+1 < len(indices); i++ {
			faces = append(faces, []uint32{indices[i], indices[i+1]})
		}
		if mode == gltf.PrimitiveLineLoop && len(indices) > 2 {
			faces = append(faces, []uint32{indices[len(indices)-1], indices[0]})
		}

	case gltf.PrimitivePoints:
		for _, idx := range indices {
			faces = append(faces, []uint32{idx})
		}
	}

	return faces
}

func polygon(indices []uint32) [][]uint32 {
	if len(indices) == 0 {
		return nil
	}
	face := make([]uint32, len(indices))
	copy(face, indices)
	return [][]uint32{face}
}

func convertMaterial(doc *gltf.Document, m *gltf.Material) *Material {
	mat := &Material{
		Name:       m.Name,
		Textures:   make(map[TextureKind][]string),
		LightmapUV: DefaultLightmapUV,
	}

	if pbr := m.PBRMetallicRoughness; pbr != nil && pbr.BaseColorTexture != nil {
		if uri, ok := imageURI(doc, pbr.BaseColorTexture.Index); ok {
			mat.Textures[Diffuse] = append(mat.Textures[Diffuse], uri)
		}
	}
	if occ := m.OcclusionTexture; occ != nil && occ.Index != nil {
		if uri, ok := imageURI(doc, *occ.Index); ok {
			mat.Textures[Lightmap] = append(mat.Textures[Lightmap], uri)
			mat.LightmapUV = occ.TexCoord
		}
	}

	return mat
}

// imageURI resolves a texture index to the image URI stored in the asset.
// Embedded images have no file path and are skipped.
func imageURI(doc *gltf.Document, texIdx int) (string, bool) {
	if texIdx < 0 || texIdx >= len(doc.Textures) {
		return "", false
	}
	tex := doc.Textures[texIdx]
	if tex.Source == nil || *tex.Source < 0 || *tex.Source >= len(doc.Images) {
		return "", false
	}
	img := doc.Images[*tex.Source]
	if img.URI == "" || strings.HasPrefix(img.URI, "data:") {
		logger.Debug("skipping embedded texture image", zap.Int("texture", texIdx))
		return "", false
	}
	return img.URI, true
}
