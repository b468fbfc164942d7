// Package inline renders conversion results for non-interactive use, as styled text or JSON.
package inline

import (
	"github.com/invopop/jsonschema"
	"github.com/iro-cli/iro/color"
)

// Output is the structured form of a single conversion result.
type Output struct {
	// Input is the value the color was built from.
	Input string `json:"input" jsonschema:"description=Value the color was converted from"`
	// Hex is the 6-digit lowercase hex code without a leading '#'.
	Hex string `json:"hex" jsonschema:"pattern=^[0-9a-f]{6}$"`
	// Name is the color name, omitted when the code has none.
	Name string `json:"name,omitempty"`
	// RGB holds red, green and blue bytes.
	RGB [3]uint8 `json:"rgb" jsonschema:"minItems=3,maxItems=3"`
	// HSL holds hue in degrees, saturation and lightness as fractions.
	HSL [3]float64 `json:"hsl" jsonschema:"minItems=3,maxItems=3"`
}

// NewOutput captures c as converted from input.
func NewOutput(input string, c color.Color) *Output {
	r, g, b := c.RGB()
	h, s, l := c.HSL()

	return &Output{
		Input: input,
		Hex:   c.Hex(),
		Name:  c.Name().OrEmpty(),
		RGB:   [3]uint8{r, g, b},
		HSL:   [3]float64{h, s, l},
	}
}

// Schema describes the JSON emitted by Write.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	return reflector.Reflect([]*Output{})
}
