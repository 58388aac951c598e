package snackbar

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a packed 32-bit ARGB value (0xAARRGGBB).
type Color uint32

// DefaultBackground is the translucent dark background every show starts from.
const DefaultBackground Color = 0xEA333333

// ARGB packs the four channels into a Color. Each channel is truncated to
// its low 8 bits.
func ARGB(alpha, red, green, blue int) Color {
	return Color(uint32(alpha&0xFF)<<24 | uint32(red&0xFF)<<16 | uint32(green&0xFF)<<8 | uint32(blue&0xFF))
}

func (c Color) Alpha() int { return int(c>>24) & 0xFF }
func (c Color) Red() int   { return int(c>>16) & 0xFF }
func (c Color) Green() int { return int(c>>8) & 0xFF }
func (c Color) Blue() int  { return int(c) & 0xFF }

// WithAlpha keeps the RGB channels of base and replaces its alpha.
func WithAlpha(base Color, alpha int) Color {
	return ARGB(alpha, base.Red(), base.Green(), base.Blue())
}

// Hex renders the RGB part as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red(), c.Green(), c.Blue())
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor accepts #RRGGBB (opaque), #AARRGGBB and 0xAARRGGBB.
func ParseColor(s string) (Color, error) {
	raw := strings.TrimSpace(s)
	var digits string
	switch {
	case strings.HasPrefix(raw, "#"):
		digits = raw[1:]
	case strings.HasPrefix(raw, "0x"), strings.HasPrefix(raw, "0X"):
		digits = raw[2:]
		if len(digits) != 8 {
			return 0, fmt.Errorf("invalid color %q: 0x form needs 8 hex digits", s)
		}
	default:
		return 0, fmt.Errorf("invalid color %q", s)
	}
	if len(digits) != 6 && len(digits) != 8 {
		return 0, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(digits) == 6 {
		v |= 0xFF000000
	}
	return Color(v), nil
}
