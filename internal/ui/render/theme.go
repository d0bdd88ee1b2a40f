package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	StatusBg    tcell.Color
	StatusFg    tcell.Color
}

// defaultAccent is used when the requested accent name is unknown.
const defaultAccent = "red"

// NewColorTheme returns the color scheme with directory entries and the
// selection tinted by the named accent color.
func NewColorTheme(accent string) ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionBg: AccentColor(accent),
		SelectionFg: tcell.ColorWhite,
		DirectoryFg: AccentColor(accent),
		FileFg:      tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		StatusBg:    tcell.ColorDefault,
		StatusFg:    tcell.ColorDefault,
	}
}

// AccentColor resolves a color name from tcell's W3C palette, falling back
// to the default accent for names tcell does not know.
func AccentColor(name string) tcell.Color {
	if c, ok := tcell.ColorNames[name]; ok {
		return c
	}
	return tcell.ColorNames[defaultAccent]
}
