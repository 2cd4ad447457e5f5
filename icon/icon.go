// Package icon renders UI symbols in the variant selected by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/podspy-cli/podspy/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a UI symbol.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Warn
	Podcast
	Episode
	Download
	Play
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "X", kaomoji: "(╥﹏╥)", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "✓", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・_・)", squares: "🟦"},
	Warn:     {emoji: "⚠️", nerd: "", plain: "!", kaomoji: "(¬_¬)", squares: "🟨"},
	Podcast:  {emoji: "🎙️", nerd: "", plain: "*", kaomoji: "(°o°)", squares: "🟪"},
	Episode:  {emoji: "🎧", nerd: "", plain: "-", kaomoji: "(^_^)", squares: "🟫"},
	Download: {emoji: "📥", nerd: "", plain: "v", kaomoji: "(>_<)", squares: "⬛"},
	Play:     {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(•̀ᴗ•́)", squares: "⬜"},
}

// Get returns the representation of d for the configured variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the rendered string for i.
func Get(i Icon) string {
	if d, ok := icons[i]; ok {
		return d.Get()
	}
	return ""
}
