package rays3d

import (
	"image"
	"math"
)

// Image is a Height×Width grid of colors, row-major, row 0 at the top.
type Image struct {
	Height, Width int
	Pix           []Color
}

func NewImage(height, width int) *Image {
	if height < 0 || width < 0 {
		panic("image dimensions must be non-negative")
	}
	return &Image{Height: height, Width: width, Pix: make([]Color, height*width)}
}

func (m *Image) idx(i, j int) int { return i*m.Width + j }

// At returns the color at row i, column j.
func (m *Image) At(i, j int) Color { return m.Pix[m.idx(i, j)] }

// Set writes the color at row i, column j.
func (m *Image) Set(i, j int, c Color) { m.Pix[m.idx(i, j)] = c }

// NRGBA converts to an 8-bit image, clamping channels to [0,1].
func (m *Image) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	toByte := func(v Real) uint8 { return uint8(math.Round(clamp01(v) * 255)) }
	for i := 0; i < m.Height; i++ {
		rowOff := i * img.Stride
		for j := 0; j < m.Width; j++ {
			c := m.At(i, j)
			p := rowOff + j*4
			img.Pix[p+0] = toByte(c.R)
			img.Pix[p+1] = toByte(c.G)
			img.Pix[p+2] = toByte(c.B)
			img.Pix[p+3] = 255
		}
	}
	return img
}

// NRGBA64 converts to a 16-bit image, clamping channels to [0,1].
func (m *Image) NRGBA64() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, m.Width, m.Height))
	toU16 := func(v Real) uint16 { return uint16(math.Round(clamp01(v) * 65535)) }
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for i := 0; i < m.Height; i++ {
		rowOff := i * img.Stride
		for j := 0; j < m.Width; j++ {
			c := m.At(i, j)
			r, g, b := toU16(c.R), toU16(c.G), toU16(c.B)
			a := uint16(0xFFFF)
			p := rowOff + j*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R,G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = uint8(a >> 8)
			img.Pix[p+7] = uint8(a)
		}
	}
	return img
}
