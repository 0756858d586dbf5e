package core

// Color is a foreground color for a screen cell, mapped to ANSI codes by the platform.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
	ColorPink
)

// RGB approximations of the palette, used to quantize sprite images.
var paletteRGB = map[Color][3]int{
	ColorRed:           {205, 49, 49},
	ColorGreen:         {13, 188, 121},
	ColorYellow:        {229, 229, 16},
	ColorBlue:          {36, 114, 200},
	ColorMagenta:       {188, 63, 188},
	ColorCyan:          {17, 168, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {241, 76, 76},
	ColorBrightGreen:   {35, 209, 139},
	ColorBrightYellow:  {255, 230, 109},
	ColorBrightBlue:    {59, 142, 234},
	ColorBrightMagenta: {214, 112, 214},
	ColorBrightCyan:    {41, 184, 219},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorPurple:        {138, 43, 226},
	ColorPink:          {255, 105, 180},
}

// NearestColor returns the palette color closest to an RGB triple.
func NearestColor(r, g, b int) Color {
	best, bestD := ColorWhite, -1
	for c := ColorRed; c <= ColorPink; c++ {
		p := paletteRGB[c]
		dr, dg, db := r-p[0], g-p[1], b-p[2]
		d := dr*dr + dg*dg + db*db
		if bestD < 0 || d < bestD {
			best, bestD = c, d
		}
	}
	return best
}
