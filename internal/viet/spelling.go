package viet

import "strings"

var validOnsets = buildSet(
	"", "b", "c", "ch", "d", "đ", "g", "gh", "gi", "h", "k", "kh", "l", "m",
	"n", "ng", "ngh", "nh", "p", "ph", "qu", "r", "s", "t", "th", "tr", "v", "x",
)

var validCodas = buildSet("", "c", "ch", "m", "n", "ng", "nh", "p", "t")

func buildSet(list ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(list))
	for _, item := range list {
		set[item] = struct{}{}
	}
	return set
}

// Plausible reports whether the onset and coda of cells are clusters a
// Vietnamese syllable can have. The nucleus is not checked.
func Plausible(cells []Cell, shape Shape) bool {
	if !shape.HasNucleus() {
		return true
	}
	if _, ok := validOnsets[spell(cells[:shape.OnsetEnd])]; !ok {
		return false
	}
	_, ok := validCodas[spell(cells[shape.CodaStart:])]
	return ok
}

func spell(cells []Cell) string {
	var b strings.Builder
	for _, c := range cells {
		if c.Base == 'd' && c.Mod == ModStroke {
			b.WriteRune('đ')
			continue
		}
		b.WriteRune(c.Base)
	}
	return b.String()
}
