package cmd

import (
	"errors"
	"testing"

	"github.com/iro-cli/iro/config"
	"github.com/iro-cli/iro/filesystem"
	"github.com/iro-cli/iro/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestConfigValues(t *testing.T) {
	Convey("Given a fresh configuration", t, func() {
		So(config.Setup(), ShouldBeNil)
		Reset(func() {
			_ = resetValues()
		})

		Convey("Setting a value should apply it and save the file", func() {
			v, err := setValue(key.OutputSwatchWidth, []string{"4"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 4)
			So(viper.GetInt(key.OutputSwatchWidth), ShouldEqual, 4)

			exists, err := filesystem.API().Exists(config.FilePath())
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)

			Convey("And resetting it should restore the default", func() {
				So(resetValues(key.OutputSwatchWidth), ShouldBeNil)
				So(viper.GetInt(key.OutputSwatchWidth), ShouldEqual, 8)
			})
		})

		Convey("Values outside a key's domain should be rejected", func() {
			for k, raw := range map[string]string{
				key.OutputSwatchWidth: "-1",
				key.HistoryLimit:      "many",
				key.IconsVariant:      "sparkles",
				key.LogsLevel:         "loud",
				key.HistorySave:       "maybe",
			} {
				_, err := setValue(k, []string{raw})
				So(err, ShouldNotBeNil)
			}
			So(viper.GetString(key.IconsVariant), ShouldEqual, "plain")
		})

		Convey("A missing value should be rejected", func() {
			_, err := setValue(key.HistoryLimit, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown key should suggest the closest one", func() {
			_, err := setValue("outpt.json", []string{"true"})

			var unknown *config.UnknownKeyError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Closest, ShouldEqual, key.OutputJson)
			So(err.Error(), ShouldContainSubstring, "did you mean")

			So(resetValues("histroy.limit"), ShouldNotBeNil)
		})
	})
}
