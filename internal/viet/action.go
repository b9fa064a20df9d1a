package viet

import "unicode"

type ActionKind uint8

const (
	ActAppendConsonant ActionKind = iota
	ActAppendVowel
	ActModifier
	ActTone
	ActBackspace
	ActLiteral
)

func (k ActionKind) String() string {
	switch k {
	case ActAppendConsonant:
		return "append-consonant"
	case ActAppendVowel:
		return "append-vowel"
	case ActModifier:
		return "modifier"
	case ActTone:
		return "tone"
	case ActBackspace:
		return "backspace"
	case ActLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Action is what a method profile makes of one key. Key is the rune as
// typed; a modifier or tone action that cannot be applied falls back to
// appending Key literally.
type Action struct {
	Kind ActionKind
	Key  rune
	Mods ModSet
	Tone Tone
	// Double marks a modifier produced by typing the same letter twice
	// (aa, ee, oo, dd). It targets the preceding cell and never reverts.
	Double bool
}

func AppendConsonant(key rune) Action { return Action{Kind: ActAppendConsonant, Key: key} }

func AppendVowel(key rune) Action { return Action{Kind: ActAppendVowel, Key: key} }

func Literal(key rune) Action { return Action{Kind: ActLiteral, Key: key} }

func ApplyModifier(key rune, mods ModSet) Action {
	return Action{Kind: ActModifier, Key: key, Mods: mods}
}

func DoubleModifier(key rune, mods ModSet) Action {
	return Action{Kind: ActModifier, Key: key, Mods: mods, Double: true}
}

func ApplyTone(key rune, tone Tone) Action { return Action{Kind: ActTone, Key: key, Tone: tone} }

func BackspaceAction() Action { return Action{Kind: ActBackspace} }

// AsLiteral is the fallback for an action that found no target.
func (a Action) AsLiteral() Action { return Literal(a.Key) }

// Letter is the lower-case form of Key.
func (a Action) Letter() rune { return unicode.ToLower(a.Key) }
