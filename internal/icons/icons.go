// Package icons holds the glyph sets used in front of list entries.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style. Playing, Marker
// and Selected sit in a one-cell gutter and must be one cell wide.
type Icons struct {
	Folder   string
	Audio    string
	Playing  string
	Marker   string
	Selected string
}

var (
	nerdIcons = Icons{
		Folder:   "\uf07b ", // nf-fa-folder
		Audio:    "\uf001 ", // nf-fa-music
		Playing:  "\uf04b",  // nf-fa-play
		Marker:   "\uf061",  // nf-fa-arrow_right
		Selected: "\uf111",  // nf-fa-circle
	}

	unicodeIcons = Icons{
		Folder:   "▸ ",
		Audio:    "♪ ",
		Playing:  "▶",
		Marker:   "➜",
		Selected: "●",
	}

	noneIcons = Icons{
		Folder:   "/",
		Audio:    "",
		Playing:  ">",
		Marker:   "-",
		Selected: "*",
	}

	current = unicodeIcons
)

// Init selects the icon set named by the config value. Unknown names fall
// back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Folder returns the folder indicator.
// For "none" style, this is a suffix ("/").
// For other styles, this is a prefix icon.
func Folder() string {
	return current.Folder
}

// FormatDir formats a directory name with the appropriate icon.
func FormatDir(name string) string {
	if current == noneIcons {
		return name + current.Folder
	}
	return current.Folder + name
}

// FormatAudio formats an audio file name with the appropriate icon.
func FormatAudio(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Audio + name
}

// Playing marks the now-playing row.
func Playing() string {
	return current.Playing
}

// Marker points at a pending drop position.
func Marker() string {
	return current.Marker
}

// Selected marks a selected row.
func Selected() string {
	return current.Selected
}
