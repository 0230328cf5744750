package renderer

import "math"

// channelToByte converts one color channel to a byte, clamping on both
// ends. Over-bright highlights exceed 1 before clamping; keeping the lower
// clamp as well prevents negative channels from wrapping when truncated.
func channelToByte(v float64) byte {
	return byte(math.Min(255, math.Max(0, v*255)))
}

// RGBToBGRA expands a packed RGB buffer into BGRA byte order with an
// opaque alpha channel, for display surfaces that want 32-bit pixels.
func RGBToBGRA(rgb []byte) []byte {
	bgra := make([]byte, len(rgb)/3*4)
	for i, j := 0, 0; i+2 < len(rgb); i, j = i+3, j+4 {
		bgra[j+0] = rgb[i+2]
		bgra[j+1] = rgb[i+1]
		bgra[j+2] = rgb[i+0]
		bgra[j+3] = 0xFF
	}
	return bgra
}

// RGBToARGB packs an RGB buffer into 32-bit ARGB integers with an opaque
// alpha channel.
func RGBToARGB(rgb []byte) []uint32 {
	argb := make([]uint32, len(rgb)/3)
	for i, j := 0, 0; i+2 < len(rgb); i, j = i+3, j+1 {
		argb[j] = 0xFF000000 |
			uint32(rgb[i+0])<<16 |
			uint32(rgb[i+1])<<8 |
			uint32(rgb[i+2])
	}
	return argb
}
