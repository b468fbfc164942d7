package names

import (
	"testing"

	"github.com/iro-cli/iro/filesystem"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestDefault(t *testing.T) {
	Convey("Given the built-in table", t, func() {
		table := Default()

		Convey("It should hold hundreds of names", func() {
			So(table.Len(), ShouldBeGreaterThan, 500)
		})

		Convey("Name lookups should be case-insensitive", func() {
			So(table.LookupHex("rusty red"), ShouldResemble, mo.Some("da2c43"))
			So(table.LookupHex("Yale Blue"), ShouldResemble, mo.Some("0f4d92"))
			So(table.LookupHex("TRUE  BLUE"), ShouldResemble, mo.Some("0073cf"))
			So(table.LookupHex("no such color").IsAbsent(), ShouldBeTrue)
		})

		Convey("Hex lookups should require an exact lowercase code", func() {
			So(table.LookupName("da2c43"), ShouldResemble, mo.Some("rusty red"))
			So(table.LookupName("DA2C43").IsAbsent(), ShouldBeTrue)
			So(table.LookupName("#da2c43").IsAbsent(), ShouldBeTrue)
		})

		Convey("Entries should be sorted and valid", func() {
			entries := table.Entries()
			So(entries, ShouldHaveLength, table.Len())
			for i := 1; i < len(entries); i++ {
				So(entries[i-1].Name < entries[i].Name, ShouldBeTrue)
			}
			for _, e := range entries {
				_, ok := NormalizeHex(e.Hex)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("Shared hex codes should resolve to the first listed name", func() {
			So(table.LookupHex("magenta"), ShouldResemble, mo.Some("ff00ff"))
			So(table.LookupName("ff00ff"), ShouldResemble, mo.Some("fuchsia"))
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given raw entries", t, func() {
		table := New([]Entry{
			{Name: "  Night  Sky ", Hex: "#0B0B45"},
			{Name: "night sky", Hex: "ffffff"},
			{Name: "broken", Hex: "xyzxyz"},
			{Name: "", Hex: "000000"},
			{Name: "also dark", Hex: "0b0b45"},
		})

		Convey("Invalid and duplicate entries should be skipped", func() {
			So(table.Names(), ShouldResemble, []string{"also dark", "night sky"})
			So(table.LookupHex("night sky"), ShouldResemble, mo.Some("0b0b45"))
			So(table.LookupHex("broken").IsAbsent(), ShouldBeTrue)
		})

		Convey("The first name for a code should be canonical", func() {
			So(table.LookupName("0b0b45"), ShouldResemble, mo.Some("night sky"))
		})

		Convey("With should give precedence to the extra entries", func() {
			merged := table.With([]Entry{{Name: "Night Sky", Hex: "111111"}, {Name: "deep", Hex: "0b0b45"}})
			So(merged.LookupHex("night sky"), ShouldResemble, mo.Some("111111"))
			So(merged.LookupName("0b0b45"), ShouldResemble, mo.Some("deep"))
			So(merged.LookupHex("also dark"), ShouldResemble, mo.Some("0b0b45"))

			Convey("And leave the receiver untouched", func() {
				So(table.LookupHex("night sky"), ShouldResemble, mo.Some("0b0b45"))
			})
		})

		Convey("With no extra entries should return the receiver", func() {
			So(table.With(nil), ShouldEqual, table)
		})
	})
}

func TestNormalizeHex(t *testing.T) {
	Convey("NormalizeHex", t, func() {
		for input, want := range map[string]string{"#ABCDEF": "abcdef", "abcdef": "abcdef", " 0a0B0c ": "0a0b0c"} {
			got, ok := NormalizeHex(input)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, want)
		}

		for _, input := range []string{"abcde", "abcdeg", "#abcdef0", ""} {
			_, ok := NormalizeHex(input)
			So(ok, ShouldBeFalse)
		}
	})
}

func TestSearch(t *testing.T) {
	Convey("Given the built-in table", t, func() {
		table := Default()

		Convey("An exact name should rank first", func() {
			results := table.Search("yale blue", 5)
			So(results, ShouldNotBeEmpty)
			So(results[0], ShouldResemble, Entry{Name: "yale blue", Hex: "0f4d92"})
		})

		Convey("Fuzzy queries should match subsequences", func() {
			results := table.Search("rstyrd", 0)
			So(lo.ContainsBy(results, func(e Entry) bool { return e.Name == "rusty red" }), ShouldBeTrue)
		})

		Convey("The limit should cap the results", func() {
			So(table.Search("blue", 3), ShouldHaveLength, 3)
		})

		Convey("An empty query should match nothing", func() {
			So(table.Search("  ", 0), ShouldBeEmpty)
		})
	})
}

func TestClosest(t *testing.T) {
	Convey("Given a misspelled name", t, func() {
		So(Default().Closest("yale blu").MustGet().Name, ShouldEqual, "yale blue")
		So(Default().Closest("Rusty Redd").MustGet().Hex, ShouldEqual, "da2c43")
	})

	Convey("Given an empty table", t, func() {
		So(New(nil).Closest("red").IsAbsent(), ShouldBeTrue)
	})
}

func TestCustom(t *testing.T) {
	Convey("Given a custom names file", t, func() {
		path := "/names/custom.json"

		Convey("A missing file should yield nothing", func() {
			entries, err := LoadCustom("/names/missing.json")
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})

		Convey("Saved entries should load back normalized", func() {
			So(filesystem.API().MkdirAll("/names", 0755), ShouldBeNil)
			So(SaveCustom(path, []Entry{{Name: "Brand", Hex: "#A1B2C3"}, {Name: "accent", Hex: "ffcc00"}}), ShouldBeNil)

			entries, err := LoadCustom(path)
			So(err, ShouldBeNil)
			So(entries, ShouldResemble, []Entry{{Name: "accent", Hex: "ffcc00"}, {Name: "brand", Hex: "a1b2c3"}})
		})

		Convey("An invalid hex code should be reported", func() {
			So(filesystem.API().WriteFile(path, []byte(`{"oops": "12345"}`), 0644), ShouldBeNil)
			_, err := LoadCustom(path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "oops")
		})

		Convey("Malformed JSON should be reported", func() {
			So(filesystem.API().WriteFile(path, []byte(`[1, 2`), 0644), ShouldBeNil)
			_, err := LoadCustom(path)
			So(err, ShouldNotBeNil)
		})
	})
}
