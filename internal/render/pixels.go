package render

import "image/color"

// fillMaskRGBA writes tint into buf for every non-zero mask cell and clears the
// rest to transparent black. buf must hold 4 bytes per mask cell.
func fillMaskRGBA(buf []byte, mask []uint8, tint color.Color) {
	r, g, b, a := tint.RGBA()
	for i, m := range mask {
		base := i * 4
		if m == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		buf[base+0] = uint8(r >> 8)
		buf[base+1] = uint8(g >> 8)
		buf[base+2] = uint8(b >> 8)
		buf[base+3] = uint8(a >> 8)
	}
}
