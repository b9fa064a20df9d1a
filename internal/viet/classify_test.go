package viet

import (
	"testing"

	"gonhanh/internal/types"
)

func cellsOf(word string) []Cell {
	cells := make([]Cell, 0, len(word))
	for _, r := range word {
		cells = append(cells, newCell(r))
	}
	return cells
}

func TestClassifySplitsSyllable(t *testing.T) {
	cases := []struct {
		word                string
		onset, nucEnd, main int
	}{
		{"", 0, 0, -1},
		{"ng", 2, 2, -1},
		{"a", 0, 1, 0},
		{"ban", 1, 2, 1},
		{"nghieng", 3, 5, 4},
		{"qua", 2, 3, 2},
		{"ua", 0, 2, 0},
		{"gia", 2, 3, 2},
		{"gi", 1, 2, 1},
		{"khuyen", 2, 5, 3},
		{"toan", 1, 3, 2},
		{"mua", 1, 3, 1},
		{"tuo", 1, 3, 2},
	}
	for _, tc := range cases {
		shape := Classify(cellsOf(tc.word), types.ToneNew)
		if shape.OnsetEnd != tc.onset || shape.NucleusStart != tc.onset {
			t.Fatalf("%q: expected onset end %d, got %+v", tc.word, tc.onset, shape)
		}
		if shape.NucleusEnd != tc.nucEnd || shape.CodaStart != tc.nucEnd {
			t.Fatalf("%q: expected nucleus end %d, got %+v", tc.word, tc.nucEnd, shape)
		}
		if shape.Main != tc.main {
			t.Fatalf("%q: expected main vowel %d, got %d", tc.word, tc.main, shape.Main)
		}
	}
}

func TestClassifyPrefersModifiedVowel(t *testing.T) {
	cells := cellsOf("oa")
	cells[0].Mod = ModCircumflex
	if shape := Classify(cells, types.ToneNew); shape.Main != 0 {
		t.Fatalf("expected the modified o to carry the tone, got %d", shape.Main)
	}

	cells = cellsOf("uoi")
	cells[0].Mod = ModHorn
	cells[1].Mod = ModHorn
	if shape := Classify(cells, types.ToneNew); shape.Main != 1 {
		t.Fatalf("expected the rightmost modified vowel, got %d", shape.Main)
	}
}

func TestClassifyToneStyle(t *testing.T) {
	for _, word := range []string{"hoa", "hoe", "huy"} {
		if shape := Classify(cellsOf(word), types.ToneNew); shape.Main != 2 {
			t.Fatalf("%q new style: expected main 2, got %d", word, shape.Main)
		}
		if shape := Classify(cellsOf(word), types.ToneOld); shape.Main != 1 {
			t.Fatalf("%q old style: expected main 1, got %d", word, shape.Main)
		}
	}
	if shape := Classify(cellsOf("hoan"), types.ToneOld); shape.Main != 2 {
		t.Fatalf("closed syllable should take the second vowel, got %d", shape.Main)
	}
}

func TestClassifyCapsNucleus(t *testing.T) {
	shape := Classify(cellsOf("uyeu"), types.ToneNew)
	if shape.NucleusLen() != 3 {
		t.Fatalf("expected nucleus capped at three vowels, got %d", shape.NucleusLen())
	}
	if !shape.HasNucleus() {
		t.Fatalf("expected a nucleus")
	}
}

func TestPlausible(t *testing.T) {
	cases := map[string]bool{
		"ngh":     true,
		"viet":    true,
		"nghieng": true,
		"qua":     true,
		"clas":    false,
		"bax":     false,
		"chanh":   true,
		"trong":   true,
		"stop":    false,
	}
	for word, want := range cases {
		cells := cellsOf(word)
		if got := Plausible(cells, Classify(cells, types.ToneNew)); got != want {
			t.Fatalf("%q: expected plausible=%v, got %v", word, want, got)
		}
	}

	cells := cellsOf("da")
	cells[0].Mod = ModStroke
	if !Plausible(cells, Classify(cells, types.ToneNew)) {
		t.Fatalf("expected đ onset to be plausible")
	}
}
