package icon

import (
	"fmt"
	"testing"

	"github.com/iro-cli/iro/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for _, i := range []Icon{Success, Fail, Hint, Palette} {
			for _, variant := range AvailableVariants() {
				Convey(fmt.Sprintf("icon=%d variant=%s", i, variant), func() {
					viper.Set(key.IconsVariant, variant)
					So(Get(i), ShouldNotBeEmpty)
				})
			}
		}
	})

	Convey("Given an unknown variant", t, func() {
		viper.Set(key.IconsVariant, "kaomoji")
		So(Get(Success), ShouldEqual, "✓")
	})
}
