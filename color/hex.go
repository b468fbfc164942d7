package color

import (
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// encodeByte renders b as two lowercase hex digits.
func encodeByte(b uint8) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}

func encodeHex(rgb [3]uint8) string {
	var sb strings.Builder
	sb.Grow(6)
	for _, b := range rgb {
		sb.WriteString(encodeByte(b))
	}
	return sb.String()
}

// decodeHex parses a 6-digit hex code. A single leading '#' is removed first,
// so "#da2c43" and "da2c43" decode to the same color. The code is read in
// pairs; an unpaired trailing character is ignored, so exactly 3 pairs must remain.
func decodeHex(input string) (string, [3]uint8, error) {
	var rgb [3]uint8

	code := strings.TrimPrefix(input, "#")
	if pairs := len(code) / 2; pairs != len(rgb) {
		return "", rgb, newConversionError(input, "expected 3 byte pairs, got %d", pairs)
	}
	code = code[:6]

	for i := range rgb {
		pair := code[i*2 : i*2+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return "", rgb, newConversionError(input, "%q is not a hex byte", pair)
		}
		rgb[i] = uint8(v)
	}

	return strings.ToLower(code), rgb, nil
}
