package viet

type Modifier uint8

const (
	ModNone Modifier = iota
	ModCircumflex
	ModHorn
	ModBreve
	ModStroke
)

func (m Modifier) String() string {
	switch m {
	case ModNone:
		return "none"
	case ModCircumflex:
		return "circumflex"
	case ModHorn:
		return "horn"
	case ModBreve:
		return "breve"
	case ModStroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// ModSet is the set of modifiers a single key may request. Telex "w" asks
// for a horn on o/u or a breve on a; every VNI digit asks for exactly one.
type ModSet uint8

func Mods(mods ...Modifier) ModSet {
	var set ModSet
	for _, m := range mods {
		if m != ModNone {
			set |= 1 << m
		}
	}
	return set
}

func (s ModSet) Has(m Modifier) bool {
	return m != ModNone && s&(1<<m) != 0
}

// scanOrder is the order in which a multi-modifier request is matched
// against a single cell.
var scanOrder = [...]Modifier{ModHorn, ModBreve, ModCircumflex, ModStroke}

// pick returns the modifier from s that fits base, if any.
func (s ModSet) pick(base rune) (Modifier, bool) {
	for _, m := range scanOrder {
		if s.Has(m) && eligible(base, m) {
			return m, true
		}
	}
	return ModNone, false
}

type Tone uint8

const (
	ToneNone Tone = iota
	ToneSac
	ToneHuyen
	ToneHoi
	ToneNga
	ToneNang
)

func (t Tone) String() string {
	switch t {
	case ToneNone:
		return "none"
	case ToneSac:
		return "sac"
	case ToneHuyen:
		return "huyen"
	case ToneHoi:
		return "hoi"
	case ToneNga:
		return "nga"
	case ToneNang:
		return "nang"
	default:
		return "unknown"
	}
}

func IsVowel(base rune) bool {
	switch base {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func eligible(base rune, m Modifier) bool {
	switch m {
	case ModCircumflex:
		return base == 'a' || base == 'e' || base == 'o'
	case ModHorn:
		return base == 'o' || base == 'u'
	case ModBreve:
		return base == 'a'
	case ModStroke:
		return base == 'd'
	}
	return false
}
