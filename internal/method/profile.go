// Package method holds the Telex and VNI key tables and turns raw keys into
// syllable actions. Profiles are immutable and safe to share between
// composition contexts.
package method

import (
	"unicode"

	"gonhanh/internal/types"
	"gonhanh/internal/viet"
)

type keyClass uint8

const (
	classTone keyClass = iota + 1
	classModifier
	classDouble
)

type keyEntry struct {
	class keyClass
	tone  viet.Tone
	mods  viet.ModSet
}

type Profile struct {
	method types.InputMethod
	keys   map[rune]keyEntry
	digits bool
}

func tone(t viet.Tone) keyEntry { return keyEntry{class: classTone, tone: t} }

func modifier(mods ...viet.Modifier) keyEntry {
	return keyEntry{class: classModifier, mods: viet.Mods(mods...)}
}

func double(m viet.Modifier) keyEntry { return keyEntry{class: classDouble, mods: viet.Mods(m)} }

var (
	Telex = &Profile{
		method: types.MethodTelex,
		keys: map[rune]keyEntry{
			's': tone(viet.ToneSac),
			'f': tone(viet.ToneHuyen),
			'r': tone(viet.ToneHoi),
			'x': tone(viet.ToneNga),
			'j': tone(viet.ToneNang),
			'z': tone(viet.ToneNone),
			'w': modifier(viet.ModHorn, viet.ModBreve),
			'a': double(viet.ModCircumflex),
			'e': double(viet.ModCircumflex),
			'o': double(viet.ModCircumflex),
			'd': double(viet.ModStroke),
		},
	}

	VNI = &Profile{
		method: types.MethodVNI,
		digits: true,
		keys: map[rune]keyEntry{
			'1': tone(viet.ToneSac),
			'2': tone(viet.ToneHuyen),
			'3': tone(viet.ToneHoi),
			'4': tone(viet.ToneNga),
			'5': tone(viet.ToneNang),
			'0': tone(viet.ToneNone),
			'6': modifier(viet.ModCircumflex),
			'7': modifier(viet.ModHorn),
			'8': modifier(viet.ModBreve),
			'9': modifier(viet.ModStroke),
		},
	}
)

func For(m types.InputMethod) *Profile {
	if m == types.MethodVNI {
		return VNI
	}
	return Telex
}

func (p *Profile) Method() types.InputMethod { return p.method }

// Buildable reports whether r can extend a syllable. Anything else is a
// syllable boundary.
func (p *Profile) Buildable(r rune) bool {
	lower := unicode.ToLower(r)
	if lower >= 'a' && lower <= 'z' {
		return true
	}
	return p.digits && r >= '0' && r <= '9'
}

// Classify decides what key does to buf. It never mutates buf.
func (p *Profile) Classify(key rune, buf *viet.Buffer) viet.Action {
	lower := unicode.ToLower(key)
	if entry, ok := p.keys[lower]; ok {
		switch entry.class {
		case classTone:
			if buf.HasVowel() {
				return viet.ApplyTone(key, entry.tone)
			}
			return viet.Literal(key)
		case classModifier:
			if buf.HasVowel() || entry.mods.Has(viet.ModStroke) {
				return viet.ApplyModifier(key, entry.mods)
			}
			return viet.Literal(key)
		case classDouble:
			if last, ok := buf.LastCell(); ok && last.Base == lower && last.Mod == viet.ModNone {
				return viet.DoubleModifier(key, entry.mods)
			}
		}
	}
	switch {
	case viet.IsVowel(lower):
		return viet.AppendVowel(key)
	case lower >= 'a' && lower <= 'z':
		return viet.AppendConsonant(key)
	default:
		return viet.Literal(key)
	}
}
