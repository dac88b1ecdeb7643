package vtcore

// RGBA is a plain 8-bit-per-channel color value. The core does not depend on
// image/color: the renderer collaborator (§6) owns gamut/blending concerns.
type RGBA struct {
	R, G, B, A uint8
}

// Palette is the fully-resolved 258-entry color table described in spec §3:
// 16 ANSI colors, 240 extended entries (a 6×6×6 cube followed by a 24-step
// grayscale ramp), plus a default background and default foreground.
type Palette struct {
	Base256  [256]RGBA
	DefaultBg RGBA
	DefaultFg RGBA
}

// ansiColors are the 16 standard VT100/xterm ANSI colors (0-7 normal, 8-15 bright).
var ansiColors = [16]RGBA{
	{0, 0, 0, 255},
	{205, 49, 49, 255},
	{13, 188, 121, 255},
	{229, 229, 16, 255},
	{36, 114, 200, 255},
	{188, 63, 188, 255},
	{17, 168, 205, 255},
	{229, 229, 229, 255},
	{102, 102, 102, 255},
	{241, 76, 76, 255},
	{35, 209, 139, 255},
	{245, 245, 67, 255},
	{59, 142, 234, 255},
	{214, 112, 214, 255},
	{41, 184, 219, 255},
	{255, 255, 255, 255},
}

// NewPalette builds the 258-entry palette fully resolved at construction
// time (spec §3 Palette, §5 "initialized once at façade construction and
// thereafter immutable"). overrides replaces individual base256 entries by
// index before the default bg/fg are derived, letting a host supply a
// custom palette_spec (spec §4.7 create(config)) without changing the
// generation algorithm.
func NewPalette(overrides map[int]RGBA) Palette {
	var p Palette

	copy(p.Base256[:16], ansiColors[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.Base256[i] = RGBA{R: cube(r), G: cube(g), B: cube(b), A: 255}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p.Base256[232+j] = RGBA{gray, gray, gray, 255}
	}

	for idx, c := range overrides {
		if idx >= 0 && idx < 256 {
			p.Base256[idx] = c
		}
	}

	p.DefaultBg = p.Base256[0]
	p.DefaultFg = p.Base256[7]

	return p
}

func cube(n int) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(55 + n*40)
}

// DefaultPalette is the standard palette used when no palette_spec override is given.
var DefaultPalette = NewPalette(nil)

// Resolve converts a tagged Color into a concrete RGBA value, resolving
// ColorDefault/ColorIndexed against the palette and passing ColorRGB through.
func (p Palette) Resolve(c Color, fg bool) RGBA {
	switch c.Tag {
	case ColorIndexed:
		return p.Base256[c.Index]
	case ColorRGB:
		return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
	default: // ColorDefault
		if fg {
			return p.DefaultFg
		}
		return p.DefaultBg
	}
}
