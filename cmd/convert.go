package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/iro-cli/iro/color"
	"github.com/iro-cli/iro/history"
	"github.com/iro-cli/iro/inline"
	"github.com/iro-cli/iro/key"
	"github.com/iro-cli/iro/log"
	"github.com/iro-cli/iro/names"
	"github.com/iro-cli/iro/style"
	"github.com/iro-cli/iro/util"
	"github.com/iro-cli/iro/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type convertRequest struct {
	Inputs []string
	RGB    []string
	HSL    []string
}

// nameTable returns the built-in table extended with the user's custom names.
func nameTable() (*names.Table, error) {
	path := viper.GetString(key.NamesCustomFile)
	if path == "" {
		path = where.Names()
	}

	custom, err := names.LoadCustom(path)
	if err != nil {
		return nil, err
	}

	return names.Default().With(custom), nil
}

func completionColorNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	table, err := nameTable()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	if toComplete == "" {
		return table.Names(), cobra.ShellCompDirectiveNoFileComp
	}

	matches := table.Search(toComplete, 0)
	completions := make([]string, len(matches))
	for i, e := range matches {
		completions[i] = e.Name
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

func runConvert(out io.Writer, req *convertRequest) error {
	table, err := nameTable()
	if err != nil {
		return err
	}
	cv := color.NewConverter(table)

	type converted struct {
		input string
		color color.Color
	}

	var results []converted
	add := func(input string, c color.Color) {
		log.WithFields(logrus.Fields{"input": input, "hex": c.Hex()}).Debug("converted")
		results = append(results, converted{input, c})
	}

	for _, input := range req.Inputs {
		c, err := fromString(cv, table, input)
		if err != nil {
			return err
		}
		add(input, c)
	}

	for _, input := range req.RGB {
		r, g, b, err := parseRGB(input)
		if err != nil {
			return err
		}
		add(input, cv.FromRGB(r, g, b))
	}

	for _, input := range req.HSL {
		h, s, l, err := parseHSL(input)
		if err != nil {
			return err
		}
		add(input, cv.FromHSL(h, s, l))
	}

	// remember only once every input has converted
	outputs := make([]*inline.Output, 0, len(results))
	for _, r := range results {
		if err := history.Remember(r.input, r.color); err != nil {
			log.Warnf("remember %s: %s", r.input, err)
		}
		outputs = append(outputs, inline.NewOutput(r.input, r.color))
	}

	return inline.Write(&inline.Options{
		Out:         out,
		Json:        viper.GetBool(key.OutputJson),
		SwatchWidth: viper.GetInt(key.OutputSwatchWidth),
	}, outputs...)
}

// fromString converts input, offering the closest known name when it cannot be decoded.
func fromString(cv *color.Converter, table *names.Table, input string) (color.Color, error) {
	c, err := cv.FromString(input)
	if err == nil {
		return c, nil
	}

	var convErr *color.ConversionError
	if !errors.As(err, &convErr) || !viper.GetBool(key.CliSuggest) {
		return c, err
	}

	closest, ok := table.Closest(input).Get()
	if !ok {
		return c, err
	}

	if viper.GetBool(key.CliPrompt) && util.IsInteractive() {
		var accept bool
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("%q is not a color, did you mean %s?", input, closest.Name),
			Default: true,
		}
		if askErr := survey.AskOne(prompt, &accept); askErr == nil && accept {
			return cv.FromString(closest.Name)
		}
		return c, err
	}

	return c, fmt.Errorf("%w, did you mean %s?", err, style.Fg(style.WarningColor)(closest.Name))
}

// splitComponents accepts "a,b,c", "a b c" or "fn(a, b, c)".
func splitComponents(input, fn string) []string {
	s := strings.TrimSpace(strings.ToLower(input))
	if strings.HasPrefix(s, fn+"(") && strings.HasSuffix(s, ")") {
		s = s[len(fn)+1 : len(s)-1]
	}

	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parseRGB(input string) (r, g, b uint8, err error) {
	parts := splitComponents(input, "rgb")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid rgb %q: expected 3 components, got %d", input, len(parts))
	}

	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid rgb %q: %q is not a byte", input, p)
		}
		rgb[i] = uint8(v)
	}

	return rgb[0], rgb[1], rgb[2], nil
}

// parseHSL reads hue in degrees; saturation and lightness are fractions or percentages.
func parseHSL(input string) (h, s, l float64, err error) {
	parts := splitComponents(input, "hsl")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid hsl %q: expected 3 components, got %d", input, len(parts))
	}

	var hsl [3]float64
	for i, p := range parts {
		percent := strings.HasSuffix(p, "%")
		if i == 0 {
			p = strings.TrimSuffix(p, "deg")
		}

		v, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid hsl %q: %q is not a number", input, p)
		}
		if percent && i > 0 {
			v /= 100
		}
		hsl[i] = v
	}

	return hsl[0], hsl[1], hsl[2], nil
}
