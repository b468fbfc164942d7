// Package icon renders status symbols in the variant selected by the icons.variant setting.
package icon

import (
	"github.com/iro-cli/iro/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns every supported icon variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Hint
	Palette
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", nerd: "", plain: "✓", squares: "🟩"},
	Fail:    {emoji: "❌", nerd: "", plain: "✗", squares: "🟥"},
	Hint:    {emoji: "💡", nerd: "", plain: "?", squares: "🟨"},
	Palette: {emoji: "🎨", nerd: "", plain: "#", squares: "🟪"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case squares:
		return d.squares
	default:
		return d.plain
	}
}

// Get returns the symbol for i in the configured variant. Unknown variants fall back to plain.
func Get(i Icon) string {
	return icons[i].get()
}
