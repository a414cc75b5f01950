package term

import "github.com/gdamore/tcell/v2"

// Theme is the glyph and colour set used to draw terrain. Remembered
// tiles (revealed but out of sight) are drawn in Remembered instead of
// their own colour.
type Theme struct {
	Wall       rune
	Floor      rune
	WallColor  tcell.Color
	FloorColor tcell.Color
	Remembered tcell.Color
}

var DefaultTheme = Theme{
	Wall:       '#',
	Floor:      '.',
	WallColor:  tcell.ColorGreen,
	FloorColor: tcell.ColorTeal,
	Remembered: tcell.ColorGray,
}
