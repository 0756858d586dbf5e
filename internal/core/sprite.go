package core

// Sprite is a decoded image reduced to what a terminal cell can show.
type Sprite struct {
	Name  string
	Glyph rune
	Color Color
}

// SpriteSet maps sprite names to successfully loaded sprites.
// A nil set is valid and contains nothing.
type SpriteSet map[string]Sprite

// Lookup returns the sprite for name and whether it loaded.
// Callers draw a primitive fallback when ok is false.
func (s SpriteSet) Lookup(name string) (Sprite, bool) {
	sp, ok := s[name]
	return sp, ok
}

// Fill paints a shape with the sprite if it loaded, or with the fallback
// glyph and color if it did not.
func (s SpriteSet) Fill(name string, fallback Cell) Cell {
	if sp, ok := s.Lookup(name); ok {
		return Cell{Rune: sp.Glyph, Color: sp.Color}
	}
	return fallback
}
