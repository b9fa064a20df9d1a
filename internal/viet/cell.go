package viet

import "unicode"

type Role uint8

const (
	RoleOnset Role = iota
	RoleNucleus
	RoleCoda
)

func (r Role) String() string {
	switch r {
	case RoleOnset:
		return "onset"
	case RoleNucleus:
		return "nucleus"
	case RoleCoda:
		return "coda"
	default:
		return "unknown"
	}
}

// Cell is one typed letter of the syllable. Base is always lower case; the
// typed case is kept in Upper.
type Cell struct {
	Base  rune
	Role  Role
	Mod   Modifier
	Tone  Tone
	Upper bool
}

func newCell(key rune) Cell {
	if unicode.IsUpper(key) {
		return Cell{Base: unicode.ToLower(key), Upper: true}
	}
	return Cell{Base: key}
}

// Plain returns the letter without diacritics, in its typed case.
func (c Cell) Plain() rune {
	if c.Upper {
		return unicode.ToUpper(c.Base)
	}
	return c.Base
}
