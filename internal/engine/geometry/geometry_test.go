package geometry

import (
	"errors"
	"testing"
	"unsafe"
)

func TestVertexLayout(t *testing.T) {
	var v Vertex
	if got := int(unsafe.Sizeof(v)); got != VertexSize {
		t.Errorf("Vertex size = %d, want %d", got, VertexSize)
	}
	offsets := []struct {
		name string
		got  uintptr
		want int
	}{
		{"Position", unsafe.Offsetof(v.Position), OffsetPosition},
		{"Normal", unsafe.Offsetof(v.Normal), OffsetNormal},
		{"TexCoord", unsafe.Offsetof(v.TexCoord), OffsetTexCoord},
		{"LightmapCoord", unsafe.Offsetof(v.LightmapCoord), OffsetLightmapCoord},
	}
	for _, o := range offsets {
		if int(o.got) != o.want {
			t.Errorf("offset of %s = %d, want %d", o.name, o.got, o.want)
		}
	}
}

func TestValidate(t *testing.T) {
	g := &Geometry{
		Vertices: make([]Vertex, 3),
		Indices:  []uint32{0, 1, 2},
	}
	if err := g.Validate(); err != nil {
		t.Errorf("expected valid geometry, got %v", err)
	}

	g.Indices = append(g.Indices, 3)
	err := g.Validate()
	if !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
}

func TestValidateEmpty(t *testing.T) {
	g := &Geometry{}
	if err := g.Validate(); err != nil {
		t.Errorf("empty geometry should validate, got %v", err)
	}
	if g.IndexCount() != 0 {
		t.Errorf("expected zero index count, got %d", g.IndexCount())
	}
	if g.TriangleCount() != 0 {
		t.Errorf("expected zero triangles, got %d", g.TriangleCount())
	}
}

func TestIndexCountMatchesIndices(t *testing.T) {
	for _, n := range []int{0, 3, 6, 300} {
		g := &Geometry{Vertices: make([]Vertex, 4), Indices: make([]uint32, n)}
		for i := range g.Indices {
			g.Indices[i] = uint32(i % 4)
		}
		if err := g.Validate(); err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if got := g.IndexCount(); got != int32(n) {
			t.Errorf("n=%d: IndexCount = %d", n, got)
		}
	}
}

func TestSamplerBindings(t *testing.T) {
	textures := []Texture{
		{ID: 10, Type: TypeDiffuse, Path: "a.png"},
		{ID: 11, Type: TypeDiffuse, Path: "b.png"},
		{ID: 12, Type: TypeLightmap, Path: "lm.png"},
	}

	got := SamplerBindings(textures)
	want := []struct {
		unit    int
		uniform string
		id      uint32
	}{
		{0, "texture_diffuse1", 10},
		{1, "texture_diffuse2", 11},
		{2, "texture_lightmap1", 12},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d bindings, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Unit != w.unit || got[i].Uniform != w.uniform || got[i].Texture.ID != w.id {
			t.Errorf("binding %d = %+v, want unit=%d uniform=%s id=%d", i, got[i], w.unit, w.uniform, w.id)
		}
	}
}

func TestSamplerBindingsEmpty(t *testing.T) {
	if got := SamplerBindings(nil); got != nil {
		t.Errorf("expected nil bindings, got %v", got)
	}
}

func TestCubePositions(t *testing.T) {
	sky := SkyboxVertices()
	if len(sky) != CubeVertexCount*3 {
		t.Fatalf("skybox has %d floats, want %d", len(sky), CubeVertexCount*3)
	}
	if CubeVertexCount != 36 {
		t.Errorf("expected 36 cube corners, got %d", CubeVertexCount)
	}
	for i, f := range sky {
		if f != 1 && f != -1 {
			t.Fatalf("skybox component %d = %f, want ±1", i, f)
		}
	}

	box := BoxVertices()
	for i, f := range box {
		if f != 0.5 && f != -0.5 {
			t.Fatalf("box component %d = %f, want ±0.5", i, f)
		}
	}
}
