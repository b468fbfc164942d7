package color

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/iro-cli/iro/names"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]{6}$`)

func rgbOf(c Color) [3]uint8 {
	r, g, b := c.RGB()
	return [3]uint8{r, g, b}
}

func hslOf(c Color) [3]float64 {
	h, s, l := c.HSL()
	return [3]float64{h, s, l}
}

func TestFromString(t *testing.T) {
	Convey("Given a hex code", t, func() {
		Convey("With a registered name", func() {
			c, err := FromString("da2c43")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "da2c43")
			So(c.Name(), ShouldResemble, mo.Some("rusty red"))
			So(rgbOf(c), ShouldResemble, [3]uint8{218, 44, 67})
			So(hslOf(c), ShouldResemble, [3]float64{352.07, 0.7, 0.51})
		})

		Convey("With upper case digits it should be lower-cased", func() {
			c, err := FromString("DA2C43")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "da2c43")
			So(c.Name(), ShouldResemble, mo.Some("rusty red"))
		})

		Convey("With a leading '#' it should be stripped before decoding", func() {
			c, err := FromString("#0073cf")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "0073cf")
			So(rgbOf(c), ShouldResemble, [3]uint8{0, 115, 207})
		})

		Convey("With an unpaired trailing character it should be ignored", func() {
			for _, input := range []string{"da2c43f", "#da2c43f", "DA2C43z"} {
				c, err := FromString(input)
				So(err, ShouldBeNil)
				So(c.Hex(), ShouldEqual, "da2c43")
				So(rgbOf(c), ShouldResemble, [3]uint8{218, 44, 67})
				So(c.Name(), ShouldResemble, mo.Some("rusty red"))
			}
		})

		Convey("Without a registered name", func() {
			c, err := FromString("123457")
			So(err, ShouldBeNil)
			So(c.Name().IsAbsent(), ShouldBeTrue)
			So(c.String(), ShouldEqual, "#123457")
		})
	})

	Convey("Given a color name", t, func() {
		Convey("It should resolve the hex code", func() {
			c, err := FromString("yale blue")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "0f4d92")
			So(c.Name(), ShouldResemble, mo.Some("yale blue"))
			So(c.String(), ShouldEqual, "#0f4d92 (yale blue)")
		})

		Convey("It should ignore case and extra whitespace", func() {
			c, err := FromString("  Yale   BLUE ")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "0f4d92")
		})
	})

	Convey("Given malformed input", t, func() {
		for _, input := range []string{"zz0000", "ab", "", "#", "#ab", "12345g", "da2c43ff", "da2c4", "##da2c43", "not a color"} {
			Convey("It should fail for "+input, func() {
				_, err := FromString(input)
				So(err, ShouldNotBeNil)

				var convErr *ConversionError
				So(errors.As(err, &convErr), ShouldBeTrue)
				So(convErr.Input, ShouldEqual, input)
				So(err.Error(), ShouldContainSubstring, "cannot convert")
				So(err.Error(), ShouldContainSubstring, "byte value")
			})
		}
	})
}

func TestFromRGB(t *testing.T) {
	Convey("Given RGB components", t, func() {
		Convey("It should encode the hex code and look up the name", func() {
			c := FromRGB(0, 115, 207)
			So(c.Hex(), ShouldEqual, "0073cf")
			So(c.Name(), ShouldResemble, mo.Some("true blue"))
			So(hslOf(c), ShouldResemble, [3]float64{206.67, 1, 0.41})
		})

		Convey("Extremes should encode to zero padded codes", func() {
			So(FromRGB(0, 0, 0).Hex(), ShouldEqual, "000000")
			So(FromRGB(255, 255, 255).Hex(), ShouldEqual, "ffffff")
			So(FromRGB(1, 16, 15).Hex(), ShouldEqual, "01100f")
		})

		Convey("Primary colors should have the textbook HSL values", func() {
			So(hslOf(FromRGB(255, 0, 0)), ShouldResemble, [3]float64{0, 1, 0.5})
			So(hslOf(FromRGB(0, 255, 0)), ShouldResemble, [3]float64{120, 1, 0.5})
			So(hslOf(FromRGB(0, 0, 255)), ShouldResemble, [3]float64{240, 1, 0.5})
		})

		Convey("Every gray should have zero hue and saturation", func() {
			for v := 0; v <= 255; v++ {
				h, s, _ := FromRGB(uint8(v), uint8(v), uint8(v)).HSL()
				if h != 0 || s != 0 {
					So([]any{v, h, s}, ShouldBeNil)
				}
			}
			_, _, l := FromRGB(128, 128, 128).HSL()
			So(l, ShouldEqual, 0.5)
		})
	})
}

func TestFromHSL(t *testing.T) {
	Convey("Given HSL components", t, func() {
		Convey("Primary hues should convert to the pure channels", func() {
			So(FromHSL(0, 1, 0.5).Hex(), ShouldEqual, "ff0000")
			So(FromHSL(120, 1, 0.5).Hex(), ShouldEqual, "00ff00")
			So(FromHSL(240, 1, 0.5).Hex(), ShouldEqual, "0000ff")
			So(FromHSL(240, 1, 0.5).Name(), ShouldResemble, mo.Some("blue"))
		})

		Convey("Zero saturation should produce a gray", func() {
			So(rgbOf(FromHSL(42, 0, 0.5)), ShouldResemble, [3]uint8{128, 128, 128})
			So(FromHSL(0, 0, 0).Hex(), ShouldEqual, "000000")
			So(FromHSL(0, 0, 1).Hex(), ShouldEqual, "ffffff")
		})

		Convey("The given values should be kept verbatim", func() {
			c := FromHSL(210.123456, 0.456789, 0.321)
			So(hslOf(c), ShouldResemble, [3]float64{210.123456, 0.456789, 0.321})
			So(hexPattern.MatchString(c.Hex()), ShouldBeTrue)
		})

		Convey("Hue should wrap around the circle", func() {
			So(FromHSL(-120, 1, 0.5).Hex(), ShouldEqual, "0000ff")
			So(FromHSL(360, 1, 0.5).Hex(), ShouldEqual, "ff0000")
			So(FromHSL(480, 1, 0.5).Hex(), ShouldEqual, "00ff00")
		})

		Convey("Out of range values should not fail", func() {
			for _, in := range [][3]float64{{0, 2, 0.5}, {0, -1, 0.5}, {90, 0.5, 3}, {90, 0.5, -2}} {
				c := FromHSL(in[0], in[1], in[2])
				So(hexPattern.MatchString(c.Hex()), ShouldBeTrue)
				So(hslOf(c), ShouldResemble, in)
			}
		})

		Convey("Non-finite values should give black", func() {
			for _, in := range [][3]float64{
				{math.NaN(), 1, 0.5},
				{math.Inf(1), 1, 0.5},
				{0, math.Inf(1), 0.5},
				{0, 1, math.Inf(-1)},
			} {
				c := FromHSL(in[0], in[1], in[2])
				So(c.Hex(), ShouldEqual, "000000")
				So(rgbOf(c), ShouldResemble, [3]uint8{0, 0, 0})
			}
		})

		Convey("RGB derived from HSL should round trip through the hex code", func() {
			c := FromHSL(206.67, 1, 0.41)
			back, err := FromString(c.Hex())
			So(err, ShouldBeNil)
			So(rgbOf(back), ShouldResemble, rgbOf(c))
		})
	})
}

func TestProperties(t *testing.T) {
	Convey("Across a sample of the RGB cube", t, func() {
		var (
			badRoundTrip []string
			badHex       []string
			badRounding  []string
		)

		for r := 0; r <= 255; r += 15 {
			for g := 0; g <= 255; g += 17 {
				for b := 0; b <= 255; b += 5 {
					c := FromRGB(uint8(r), uint8(g), uint8(b))

					if !hexPattern.MatchString(c.Hex()) {
						badHex = append(badHex, c.Hex())
					}

					back, err := FromString(c.Hex())
					if err != nil || rgbOf(back) != rgbOf(c) || hslOf(back) != hslOf(c) {
						badRoundTrip = append(badRoundTrip, c.Hex())
					}

					for _, v := range hslOf(c) {
						if math.Abs(v*100-math.Round(v*100)) > 1e-6 {
							badRounding = append(badRounding, c.Hex())
						}
					}

					if h, _, _ := c.HSL(); h < 0 || h >= 360 {
						badRounding = append(badRounding, c.Hex())
					}
				}
			}
		}

		So(badHex, ShouldBeEmpty)
		So(badRoundTrip, ShouldBeEmpty)
		So(badRounding, ShouldBeEmpty)
	})

	Convey("Across the built-in name table", t, func() {
		table := names.Default()
		var inconsistent []string

		for _, e := range table.Entries() {
			byName, err := FromString(e.Name)
			if err != nil || byName.Hex() != e.Hex {
				inconsistent = append(inconsistent, e.Name)
				continue
			}

			canonical := table.LookupName(e.Hex).MustGet()
			byHex, err := FromString(e.Hex)
			if err != nil || byHex.Name() != mo.Some(canonical) {
				inconsistent = append(inconsistent, e.Hex)
			}
		}

		So(inconsistent, ShouldBeEmpty)
	})
}

func TestConverter(t *testing.T) {
	Convey("Given a converter with a custom table", t, func() {
		cv := NewConverter(names.New([]names.Entry{
			{Name: "Brand Blue", Hex: "#123ABC"},
		}))

		Convey("Custom names should resolve", func() {
			c, err := cv.FromString("brand blue")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "123abc")
			So(rgbOf(c), ShouldResemble, [3]uint8{0x12, 0x3a, 0xbc})
		})

		Convey("Reverse lookups should use the same table", func() {
			So(cv.FromRGB(0x12, 0x3a, 0xbc).Name(), ShouldResemble, mo.Some("brand blue"))
			So(cv.FromRGB(0xda, 0x2c, 0x43).Name().IsAbsent(), ShouldBeTrue)
		})

		Convey("Built-in names should be unknown", func() {
			_, err := cv.FromString("yale blue")
			So(err, ShouldNotBeNil)
		})
	})
}
