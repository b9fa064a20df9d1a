package viet

import "gonhanh/internal/types"

const maxNucleus = 3

// Shape is the onset/nucleus/coda split of a cell sequence. The nucleus is
// cells[NucleusStart:NucleusEnd]; OnsetEnd == NucleusStart and
// NucleusEnd == CodaStart. Main is -1 when the nucleus is empty.
type Shape struct {
	OnsetEnd     int
	NucleusStart int
	NucleusEnd   int
	CodaStart    int
	Main         int
}

func (s Shape) NucleusLen() int { return s.NucleusEnd - s.NucleusStart }

func (s Shape) HasNucleus() bool { return s.NucleusEnd > s.NucleusStart }

// glidePairs take the tone on their second vowel under the new style only.
var glidePairs = map[[2]rune]bool{
	{'o', 'a'}: true,
	{'o', 'e'}: true,
	{'u', 'y'}: true,
}

// risingPairs always take the tone on their second vowel: the iê, uô, ươ
// diphthongs typed before their modifier arrives.
var risingPairs = map[[2]rune]bool{
	{'i', 'e'}: true,
	{'y', 'e'}: true,
	{'u', 'o'}: true,
}

// Classify splits cells into onset, nucleus and coda and selects the vowel
// that carries the tone.
func Classify(cells []Cell, style types.ToneStyle) Shape {
	n := len(cells)
	i := 0
	for i < n && !IsVowel(cells[i].Base) {
		i++
	}
	if absorbsGlide(cells, i) {
		i++
	}
	j := i
	for j < n && j-i < maxNucleus && IsVowel(cells[j].Base) {
		j++
	}
	shape := Shape{OnsetEnd: i, NucleusStart: i, NucleusEnd: j, CodaStart: j, Main: -1}
	shape.Main = mainVowel(cells, shape, style)
	return shape
}

// absorbsGlide reports whether the vowel at start belongs to the onset:
// the u of "qu" and the i of a leading "gi", each followed by another vowel.
func absorbsGlide(cells []Cell, start int) bool {
	if start == 0 || start+1 >= len(cells) || !IsVowel(cells[start+1].Base) {
		return false
	}
	prev := cells[start-1].Base
	switch cells[start].Base {
	case 'u':
		return prev == 'q'
	case 'i':
		return prev == 'g' && start == 1
	}
	return false
}

func mainVowel(cells []Cell, shape Shape, style types.ToneStyle) int {
	start, end := shape.NucleusStart, shape.NucleusEnd
	switch shape.NucleusLen() {
	case 0:
		return -1
	case 1:
		return start
	}
	for k := end - 1; k >= start; k-- {
		if cells[k].Mod != ModNone {
			return k
		}
	}
	if shape.NucleusLen() == maxNucleus {
		return start + 1
	}
	if shape.CodaStart < len(cells) {
		return start + 1
	}
	pair := [2]rune{cells[start].Base, cells[start+1].Base}
	if risingPairs[pair] {
		return start + 1
	}
	if style == types.ToneNew && glidePairs[pair] {
		return start + 1
	}
	return start
}
