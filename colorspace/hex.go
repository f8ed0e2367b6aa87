// SPDX-License-Identifier: MIT

package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrMalformedColor indicates a hex color string that is not exactly
// "#RRGGBB" with hexadecimal digits. Malformed input is rejected whole,
// never partially parsed.
var ErrMalformedColor = errors.New("colorspace: malformed hex color, want #RRGGBB")

// hexLength is the exact length of a wire-format color: '#' + 6 digits.
const hexLength = 7

// Hex quantizes c to 8 bits per channel and renders it as uppercase
// "#RRGGBB". Channels are clamped into [0,1] and rounded (not truncated)
// to the nearest of 256 levels.
//
// Quantization is lossy: Hex followed by ParseHex yields the nearest
// representable color, not necessarily c itself. ParseHex followed by
// Hex round-trips exactly.
//
// Complexity: O(1).
func (c RGB) Hex() string {
	r := uint8(math.Round(clamp01(c.R) * 255))
	g := uint8(math.Round(clamp01(c.G) * 255))
	b := uint8(math.Round(clamp01(c.B) * 255))

	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ParseHex parses a "#RRGGBB" string into an RGB triple, dividing each
// 8-bit channel by 255. Both uppercase and lowercase digits are
// accepted; anything else returns ErrMalformedColor.
//
// Complexity: O(1).
func ParseHex(s string) (RGB, error) {
	if len(s) != hexLength || s[0] != '#' {
		return RGB{}, ErrMalformedColor
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return RGB{}, ErrMalformedColor
		}
		ch[i] = float64(v) / 255
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}
