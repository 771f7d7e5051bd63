package model

import "fmt"

// Color is an 8-bit RGBA color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// ColorFromHex unpacks a 0xRRGGBBAA value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 24),
		G: uint8(hex >> 16),
		B: uint8(hex >> 8),
		A: uint8(hex),
	}
}

// ColorFromRGB unpacks a 0xRRGGBB value as an opaque color.
func ColorFromRGB(rgb uint32) Color {
	return ColorFromHex(rgb<<8 | 0xFF)
}

// Hex packs the color as 0xRRGGBBAA.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// String returns the color as "#RRGGBBAA".
func (c Color) String() string {
	return fmt.Sprintf("#%08X", c.Hex())
}
