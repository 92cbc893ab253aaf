package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := rgba8(on), rgba8(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// Colours for live and dead cells, the two ends of a green-to-yellow map.
var (
	AliveColor = color.RGBA{R: 255, G: 255, B: 102, A: 255}
	DeadColor  = color.RGBA{R: 0, G: 128, B: 102, A: 255}
)
