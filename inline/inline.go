package inline

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/iro-cli/iro/style"
)

// Options control how results are written.
type Options struct {
	Out         io.Writer
	Json        bool
	SwatchWidth int
}

// Write prints outputs to opts.Out. JSON mode always emits an array.
func Write(opts *Options, outputs ...*Output) error {
	if opts.Json {
		if outputs == nil {
			outputs = []*Output{}
		}
		return json.NewEncoder(opts.Out).Encode(outputs)
	}

	for i, o := range outputs {
		if i > 0 {
			if _, err := fmt.Fprintln(opts.Out); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(opts.Out, renderText(o, opts.SwatchWidth)); err != nil {
			return err
		}
	}

	return nil
}

func renderText(o *Output, swatchWidth int) string {
	var b strings.Builder

	name := style.Faint("unnamed")
	if o.Name != "" {
		name = style.Bold(o.Name)
	}

	header := []string{style.Fg(style.AccentColor)("#" + o.Hex), name}
	if swatch := style.Swatch(o.Hex, swatchWidth); swatch != "" {
		header = append([]string{swatch}, header...)
	}
	b.WriteString(strings.Join(header, " "))
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s %s\n", style.Faint("rgb"), FormatRGB(o.RGB))
	fmt.Fprintf(&b, "  %s %s\n", style.Faint("hsl"), FormatHSL(o.HSL))

	return b.String()
}

// FormatRGB renders rgb(r, g, b).
func FormatRGB(rgb [3]uint8) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb[0], rgb[1], rgb[2])
}

// FormatHSL renders hsl(h, s%, l%) with saturation and lightness as percentages.
func FormatHSL(hsl [3]float64) string {
	return fmt.Sprintf(
		"hsl(%s, %s%%, %s%%)",
		formatFloat(hsl[0]),
		formatFloat(hsl[1]*100),
		formatFloat(hsl[2]*100),
	)
}

// formatFloat prints at most 2 decimals without trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
