package types

import "unicode"

type KeyKind int

const (
	// KeyLetter carries a resolved character, letter or digit.
	KeyLetter KeyKind = iota
	KeyBackspace
	// KeyBoundary carries a character that cannot extend a syllable
	// (space, punctuation, newline).
	KeyBoundary
)

// KeyEvent is a key the host has already resolved from a physical key code.
type KeyEvent struct {
	Kind  KeyKind
	Char  rune
	Upper bool
}

func Letter(ch rune, upper bool) KeyEvent {
	return KeyEvent{Kind: KeyLetter, Char: ch, Upper: upper}
}

func Backspace() KeyEvent {
	return KeyEvent{Kind: KeyBackspace}
}

func Boundary(ch rune) KeyEvent {
	return KeyEvent{Kind: KeyBoundary, Char: ch}
}

// KeyOf splits a typed rune into the lower-case character and its case.
func KeyOf(r rune) KeyEvent {
	if unicode.IsUpper(r) {
		return Letter(unicode.ToLower(r), true)
	}
	return Letter(r, false)
}

// Rune returns the character as typed, case included.
func (k KeyEvent) Rune() rune {
	if k.Upper {
		return unicode.ToUpper(k.Char)
	}
	return k.Char
}
