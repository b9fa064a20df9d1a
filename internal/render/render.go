// Package render turns syllable cells into display text and computes the
// backspace-and-append edit between two renderings.
package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"gonhanh/internal/viet"
)

var modifierMarks = map[viet.Modifier]rune{
	viet.ModCircumflex: '\u0302',
	viet.ModHorn:       '\u031b',
	viet.ModBreve:      '\u0306',
}

var toneMarks = map[viet.Tone]rune{
	viet.ToneSac:   '\u0301',
	viet.ToneHuyen: '\u0300',
	viet.ToneHoi:   '\u0309',
	viet.ToneNga:   '\u0303',
	viet.ToneNang:  '\u0323',
}

// Render writes each cell as its base letter followed by combining marks
// and composes the result into precomposed (NFC) characters.
func Render(cells []viet.Cell) string {
	var b strings.Builder
	b.Grow(len(cells) * 3)
	for _, c := range cells {
		writeCell(&b, c)
	}
	return norm.NFC.String(b.String())
}

func writeCell(b *strings.Builder, c viet.Cell) {
	base := c.Base
	if c.Mod == viet.ModStroke && base == 'd' {
		base = 'đ'
	}
	if c.Upper {
		base = unicode.ToUpper(base)
	}
	b.WriteRune(base)
	if mark, ok := modifierMarks[c.Mod]; ok {
		b.WriteRune(mark)
	}
	if mark, ok := toneMarks[c.Tone]; ok {
		b.WriteRune(mark)
	}
}
