package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iro-cli/iro/color"
	. "github.com/smartystreets/goconvey/convey"
)

func mustColor(input string) color.Color {
	c, err := color.FromString(input)
	if err != nil {
		panic(err)
	}
	return c
}

func TestNewOutput(t *testing.T) {
	Convey("Given a named color", t, func() {
		o := NewOutput("rusty red", mustColor("rusty red"))

		So(o.Input, ShouldEqual, "rusty red")
		So(o.Hex, ShouldEqual, "da2c43")
		So(o.Name, ShouldEqual, "rusty red")
		So(o.RGB, ShouldResemble, [3]uint8{218, 44, 67})
		So(o.HSL, ShouldResemble, [3]float64{352.07, 0.7, 0.51})
	})

	Convey("Given an unnamed color", t, func() {
		So(NewOutput("123457", mustColor("123457")).Name, ShouldBeEmpty)
	})
}

func TestWrite(t *testing.T) {
	Convey("Given JSON output", t, func() {
		var buf bytes.Buffer
		opts := &Options{Out: &buf, Json: true}

		Convey("An empty result should still be a JSON array", func() {
			So(Write(opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "[]\n")
		})

		Convey("Results should decode back", func() {
			So(Write(opts, NewOutput("0073cf", mustColor("0073cf")), NewOutput("123457", mustColor("123457"))), ShouldBeNil)

			var decoded []map[string]any
			So(json.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded, ShouldHaveLength, 2)
			So(decoded[0]["name"], ShouldEqual, "true blue")
			So(decoded[0]["rgb"], ShouldResemble, []any{0.0, 115.0, 207.0})
			So(decoded[1], ShouldNotContainKey, "name")
		})
	})

	Convey("Given text output", t, func() {
		var buf bytes.Buffer
		opts := &Options{Out: &buf, SwatchWidth: 4}

		So(Write(opts, NewOutput("da2c43", mustColor("da2c43"))), ShouldBeNil)
		out := buf.String()

		So(out, ShouldContainSubstring, "#da2c43")
		So(out, ShouldContainSubstring, "rusty red")
		So(out, ShouldContainSubstring, "rgb(218, 44, 67)")
		So(out, ShouldContainSubstring, "hsl(352.07, 70%, 51%)")
	})
}

func TestFormat(t *testing.T) {
	Convey("FormatHSL should print percentages without float noise", t, func() {
		So(FormatHSL([3]float64{206.67, 1, 0.41}), ShouldEqual, "hsl(206.67, 100%, 41%)")
		So(FormatHSL([3]float64{0, 0, 0.5}), ShouldEqual, "hsl(0, 0%, 50%)")
		So(FormatHSL([3]float64{210.123456, 0.456789, 0.321}), ShouldEqual, "hsl(210.12, 45.68%, 32.1%)")
	})

	Convey("FormatRGB", t, func() {
		So(FormatRGB([3]uint8{0, 115, 207}), ShouldEqual, "rgb(0, 115, 207)")
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema should describe an array of outputs", t, func() {
		data, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, `"hex"`)
		So(string(data), ShouldContainSubstring, `"array"`)
	})
}
