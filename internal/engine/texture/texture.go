package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skyview/internal/logger"
	"go.uber.org/zap"
)

// CubemapFaces is the number of faces a cubemap needs.
const CubemapFaces = 6

// ErrFaceCount is returned when a cubemap is not given exactly six faces.
var ErrFaceCount = errors.New("cubemap needs exactly 6 faces")

// Texture is an uploaded GL texture object.
type Texture struct {
	ID     uint32
	Target uint32 // gl.TEXTURE_2D or gl.TEXTURE_CUBE_MAP
	Width  int
	Height int
}

// Bind binds the texture to the given texture unit.
func (t Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.Target, t.ID)
}

// Delete releases the GL texture. Safe to call on a zero Texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// Load2D decodes the image at path and uploads it as a mipmapped,
// repeating 2D texture.
func Load2D(path string) (Texture, error) {
	img, err := Decode(path)
	if err != nil {
		return Texture{}, err
	}
	if img.Bounds().Empty() {
		return Texture{}, fmt.Errorf("decode %s: empty image", path)
	}

	t := upload2D(img)
	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Uint32("id", t.ID),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height),
	)
	return t, nil
}

// Solid uploads a 1x1 texture of colour c.
func Solid(c color.RGBA) Texture {
	return upload2D(SolidImage(c))
}

// SolidImage returns a 1x1 image of colour c.
func SolidImage(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return img
}

func upload2D(img *image.RGBA) Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	uploadRGBA(gl.TEXTURE_2D, img)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return Texture{ID: id, Target: gl.TEXTURE_2D, Width: img.Bounds().Dx(), Height: img.Bounds().Dy()}
}

// LoadCubemap decodes six face images in +X, -X, +Y, -Y, +Z, -Z order
// and uploads them as one cubemap. Any face failure aborts the load.
func LoadCubemap(faces []string) (Texture, error) {
	if len(faces) != CubemapFaces {
		return Texture{}, fmt.Errorf("%w, got %d", ErrFaceCount, len(faces))
	}

	// Decode everything first so a bad face leaves no GL object behind.
	imgs := make([]*image.RGBA, len(faces))
	for i, path := range faces {
		img, err := Decode(path)
		if err != nil {
			return Texture{}, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		imgs[i] = img
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)
	for i, img := range imgs {
		uploadRGBA(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), img)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	b := imgs[0].Bounds()
	logger.Info("cubemap loaded",
		zap.Uint32("id", id),
		zap.Strings("faces", faces),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)

	return Texture{ID: id, Target: gl.TEXTURE_CUBE_MAP, Width: b.Dx(), Height: b.Dy()}, nil
}

func uploadRGBA(target uint32, img *image.RGBA) {
	var pix unsafe.Pointer
	if len(img.Pix) > 0 {
		pix = unsafe.Pointer(&img.Pix[0])
	}
	gl.TexImage2D(target, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, pix)
}
