package method

import (
	"testing"

	"gonhanh/internal/types"
	"gonhanh/internal/viet"
)

func bufferWith(t *testing.T, p *Profile, keys string) *viet.Buffer {
	t.Helper()
	b := viet.NewBuffer(viet.Options{})
	for _, r := range keys {
		if _, err := b.Apply(p.Classify(r, b)); err != nil {
			t.Fatalf("apply %q: %v", r, err)
		}
	}
	return b
}

func TestFor(t *testing.T) {
	if For(types.MethodTelex) != Telex || For(types.MethodVNI) != VNI {
		t.Fatalf("For returned the wrong profile")
	}
	if Telex.Method() != types.MethodTelex || VNI.Method() != types.MethodVNI {
		t.Fatalf("profiles report the wrong method")
	}
}

func TestBuildable(t *testing.T) {
	if !Telex.Buildable('a') || !Telex.Buildable('Z') {
		t.Fatalf("letters must be buildable in telex")
	}
	if Telex.Buildable('1') || Telex.Buildable(' ') || Telex.Buildable('é') {
		t.Fatalf("digits, spaces and accented letters must end a telex syllable")
	}
	if !VNI.Buildable('7') || VNI.Buildable('-') {
		t.Fatalf("unexpected VNI buildable set")
	}
}

func TestTelexClassify(t *testing.T) {
	empty := viet.NewBuffer(viet.Options{})
	withVowel := bufferWith(t, Telex, "ta")

	cases := []struct {
		name string
		key  rune
		buf  *viet.Buffer
		kind viet.ActionKind
	}{
		{"consonant", 'b', empty, viet.ActAppendConsonant},
		{"vowel", 'u', empty, viet.ActAppendVowel},
		{"tone without vowel", 's', empty, viet.ActLiteral},
		{"tone", 's', withVowel, viet.ActTone},
		{"clear", 'z', withVowel, viet.ActTone},
		{"horn without vowel", 'w', empty, viet.ActLiteral},
		{"horn", 'W', withVowel, viet.ActModifier},
		{"double", 'a', withVowel, viet.ActModifier},
		{"no double", 'o', withVowel, viet.ActAppendVowel},
		{"d after vowel", 'd', withVowel, viet.ActAppendConsonant},
	}
	for _, tc := range cases {
		act := Telex.Classify(tc.key, tc.buf)
		if act.Kind != tc.kind {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.kind, act.Kind)
		}
		if act.Key != tc.key {
			t.Fatalf("%s: expected key %q to be kept, got %q", tc.name, tc.key, act.Key)
		}
	}

	if act := Telex.Classify('a', withVowel); !act.Double || !act.Mods.Has(viet.ModCircumflex) {
		t.Fatalf("expected aa to double into a circumflex, got %+v", act)
	}
	if act := Telex.Classify('w', withVowel); !act.Mods.Has(viet.ModHorn) || !act.Mods.Has(viet.ModBreve) {
		t.Fatalf("expected w to ask for horn or breve, got %+v", act)
	}
	if act := Telex.Classify('d', bufferWith(t, Telex, "d")); !act.Double || !act.Mods.Has(viet.ModStroke) {
		t.Fatalf("expected dd to double into a stroke, got %+v", act)
	}
}

func TestVNIClassify(t *testing.T) {
	empty := viet.NewBuffer(viet.Options{})
	withVowel := bufferWith(t, VNI, "to")

	if act := VNI.Classify('1', empty); act.Kind != viet.ActLiteral {
		t.Fatalf("expected a literal digit without a vowel, got %v", act.Kind)
	}
	if act := VNI.Classify('2', withVowel); act.Kind != viet.ActTone || act.Tone != viet.ToneHuyen {
		t.Fatalf("expected huyền, got %+v", act)
	}
	if act := VNI.Classify('0', withVowel); act.Kind != viet.ActTone || act.Tone != viet.ToneNone {
		t.Fatalf("expected clear, got %+v", act)
	}
	if act := VNI.Classify('7', withVowel); act.Kind != viet.ActModifier || !act.Mods.Has(viet.ModHorn) || act.Mods.Has(viet.ModBreve) {
		t.Fatalf("expected horn only, got %+v", act)
	}
	if act := VNI.Classify('9', bufferWith(t, VNI, "d")); act.Kind != viet.ActModifier || !act.Mods.Has(viet.ModStroke) {
		t.Fatalf("expected the stroke to apply before any vowel, got %+v", act)
	}
	if act := VNI.Classify('w', withVowel); act.Kind != viet.ActAppendConsonant {
		t.Fatalf("expected w to be a plain consonant in VNI, got %v", act.Kind)
	}
	if act := VNI.Classify('o', withVowel); act.Kind != viet.ActAppendVowel {
		t.Fatalf("expected no doubling in VNI, got %v", act.Kind)
	}
}
