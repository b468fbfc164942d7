// Package color converts between hex codes, RGB triplets, HSL triplets and
// color names.
//
// A Color is built from exactly one source representation and derives the
// others, so its hex code, RGB and HSL values always describe the same color.
// The name is looked up in a names.Table and is present only when the hex
// code is registered there.
package color

import (
	"fmt"

	"github.com/iro-cli/iro/names"
	"github.com/samber/mo"
)

// NameTable is the name database a Converter resolves names against.
type NameTable interface {
	// LookupHex returns the hex code of a name, ignoring case.
	LookupHex(name string) mo.Option[string]
	// LookupName returns the name of an exact lowercase 6-digit hex code.
	LookupName(hex string) mo.Option[string]
}

// Color is an immutable color value.
type Color struct {
	hex  string
	name mo.Option[string]
	rgb  [3]uint8
	hsl  [3]float64
}

// Hex returns the 6-digit lowercase hex code, without a leading '#'.
func (c Color) Hex() string {
	return c.hex
}

// Name returns the color name, if the hex code has one.
func (c Color) Name() mo.Option[string] {
	return c.name
}

// RGB returns the red, green and blue components.
func (c Color) RGB() (r, g, b uint8) {
	return c.rgb[0], c.rgb[1], c.rgb[2]
}

// HSL returns hue in degrees, saturation and lightness as fractions.
func (c Color) HSL() (h, s, l float64) {
	return c.hsl[0], c.hsl[1], c.hsl[2]
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if name, ok := c.name.Get(); ok {
		return fmt.Sprintf("#%s (%s)", c.hex, name)
	}
	return "#" + c.hex
}

// Converter builds colors, resolving names against a NameTable.
type Converter struct {
	table NameTable
}

// NewConverter returns a Converter backed by table.
func NewConverter(table NameTable) *Converter {
	return &Converter{table: table}
}

// FromString builds a color from a color name or a hex code.
// Names take precedence: the input is decoded as hex only when it is not a known name.
func (cv *Converter) FromString(input string) (Color, error) {
	if hex, ok := cv.table.LookupHex(input).Get(); ok {
		return cv.fromHex(hex)
	}
	return cv.fromHex(input)
}

// FromRGB builds a color from its red, green and blue components. It never fails.
func (cv *Converter) FromRGB(r, g, b uint8) Color {
	rgb := [3]uint8{r, g, b}
	hex := encodeHex(rgb)

	return Color{
		hex:  hex,
		name: cv.table.LookupName(hex),
		rgb:  rgb,
		hsl:  rgbToHSL(rgb),
	}
}

// FromHSL builds a color from hue in degrees, saturation and lightness as fractions.
// The given values are kept as they are; they are neither validated nor rounded.
// Out of range values still yield a color, and a NaN or infinite component yields black.
func (cv *Converter) FromHSL(h, s, l float64) Color {
	rgb := hslToRGB(h, s, l)
	hex := encodeHex(rgb)

	return Color{
		hex:  hex,
		name: cv.table.LookupName(hex),
		rgb:  rgb,
		hsl:  [3]float64{h, s, l},
	}
}

func (cv *Converter) fromHex(input string) (Color, error) {
	hex, rgb, err := decodeHex(input)
	if err != nil {
		return Color{}, err
	}

	return Color{
		hex:  hex,
		name: cv.table.LookupName(hex),
		rgb:  rgb,
		hsl:  rgbToHSL(rgb),
	}, nil
}

var std = NewConverter(names.Default())

// FromString builds a color from a name or hex code using the built-in name table.
func FromString(input string) (Color, error) {
	return std.FromString(input)
}

// FromRGB builds a color from RGB components using the built-in name table.
func FromRGB(r, g, b uint8) Color {
	return std.FromRGB(r, g, b)
}

// FromHSL builds a color from HSL components using the built-in name table.
func FromHSL(h, s, l float64) Color {
	return std.FromHSL(h, s, l)
}
