package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("TGA data truncated")

// tgaHeader is the subset of the 18-byte TGA header the decoder needs.
type tgaHeader struct {
	idLength    int
	colorMap    byte
	imageType   byte
	width       int
	height      int
	bpp         int
	topToBottom bool
}

func parseTGAHeader(data []byte) (tgaHeader, error) {
	if len(data) < tgaHeaderSize {
		return tgaHeader{}, fmt.Errorf("TGA data too short (%d bytes)", len(data))
	}
	h := tgaHeader{
		idLength:    int(data[0]),
		colorMap:    data[1],
		imageType:   data[2],
		width:       int(data[12]) | int(data[13])<<8,
		height:      int(data[14]) | int(data[15])<<8,
		bpp:         int(data[16]),
		topToBottom: data[17]&0x20 != 0,
	}

	switch {
	case h.colorMap != 0:
		return h, fmt.Errorf("%w: color-mapped TGA", ErrUnsupportedFormat)
	case h.imageType != TGATypeUncompressed && h.imageType != TGATypeRLE:
		return h, fmt.Errorf("%w: TGA type %d", ErrUnsupportedFormat, h.imageType)
	case h.bpp != 24 && h.bpp != 32:
		return h, fmt.Errorf("%w: TGA bit depth %d", ErrUnsupportedFormat, h.bpp)
	}
	return h, nil
}

// tgaWriter places pixels in file order, handling the bottom-up default.
type tgaWriter struct {
	img   *image.RGBA
	h     tgaHeader
	count int
}

func (w *tgaWriter) done() bool {
	return w.count >= w.h.width*w.h.height
}

func (w *tgaWriter) put(c color.RGBA) {
	x := w.count % w.h.width
	y := w.count / w.h.width
	if !w.h.topToBottom {
		y = w.h.height - 1 - y
	}
	w.img.SetRGBA(x, y, c)
	w.count++
}

// bgra reads one BGR(A) pixel.
func bgra(p []byte, bytesPerPixel int) color.RGBA {
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if bytesPerPixel == 4 {
		c.A = p[3]
	}
	return c
}

// DecodeTGA decodes uncompressed (type 2) and RLE (type 10) true-color TGA data.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	h, err := parseTGAHeader(data)
	if err != nil {
		return nil, err
	}

	offset := tgaHeaderSize + h.idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}
	pixels := data[offset:]
	bpp := h.bpp / 8

	w := &tgaWriter{img: image.NewRGBA(image.Rect(0, 0, h.width, h.height)), h: h}

	if h.imageType == TGATypeUncompressed {
		if len(pixels) < h.width*h.height*bpp {
			return nil, errTGATruncated
		}
		for i := 0; !w.done(); i += bpp {
			w.put(bgra(pixels[i:], bpp))
		}
		return w.img, nil
	}

	// RLE: each packet header holds a repeat flag and a count of 1..128.
	i := 0
	for !w.done() && i < len(pixels) {
		packet := pixels[i]
		i++
		n := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if i+bpp > len(pixels) {
				break
			}
			c := bgra(pixels[i:], bpp)
			i += bpp
			for ; n > 0 && !w.done(); n-- {
				w.put(c)
			}
			continue
		}

		for ; n > 0 && !w.done() && i+bpp <= len(pixels); n-- {
			w.put(bgra(pixels[i:], bpp))
			i += bpp
		}
	}

	return w.img, nil
}
