package core

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Character is one of the two playable characters. The one the player does
// not pick shows up as the opponent: enemy, obstacle or pickup.
type Character string

const (
	Armando Character = "Armando"
	Ananya  Character = "Ananya"
)

// DefaultCharacter is used when nothing was selected.
const DefaultCharacter = Armando

var titleCaser = cases.Title(language.Und)

// ParseCharacter canonicalizes a user-supplied name ("ananya", "ANANYA").
// Empty input yields DefaultCharacter.
func ParseCharacter(s string) (Character, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCharacter, nil
	}
	c := Character(titleCaser.String(strings.ToLower(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown character %q (want %s or %s)", s, Armando, Ananya)
	}
	return c, nil
}

// Valid reports whether c is a known character.
func (c Character) Valid() bool {
	return c == Armando || c == Ananya
}

// Opponent returns the other character.
func (c Character) Opponent() Character {
	if c == Ananya {
		return Armando
	}
	return Ananya
}

// HeadSprite is the sprite name of the character's head image.
func (c Character) HeadSprite() string {
	return string(c) + "_head"
}

func (c Character) String() string {
	return string(c)
}
