// Package viet models one in-progress Vietnamese syllable and the rules that
// place letter modifiers and tone marks on it.
package viet

import (
	"errors"

	"gonhanh/internal/types"
)

var (
	// ErrModifierRejected reports that no cell can take the requested modifier.
	ErrModifierRejected = errors.New("viet: no cell eligible for modifier")
	// ErrToneNoTarget reports that there is no vowel to carry (or clear) a tone.
	ErrToneNoTarget = errors.New("viet: no vowel to carry the tone")
	// ErrNotVietnamese reports that spelling checks refused a diacritic
	// because the onset or coda cannot occur in Vietnamese.
	ErrNotVietnamese = errors.New("viet: syllable is not Vietnamese")
)

// Outcome describes what an applied action did.
type Outcome struct {
	Changed bool
	// Reverted is set when a repeated modifier or tone key undid its own
	// effect. The key is then appended literally by the caller.
	Reverted bool
}

type Options struct {
	ToneStyle  types.ToneStyle
	SpellCheck bool
}

// Buffer owns the cells of the syllable being composed. Every mutation ends
// with settle, which reclassifies the cells and moves the tone onto the
// current main vowel.
type Buffer struct {
	opts         Options
	cells        []Cell
	shape        Shape
	raw          []rune
	last         Action
	lastCompound bool
}

func NewBuffer(opts Options) *Buffer {
	b := &Buffer{opts: opts, cells: make([]Cell, 0, 8), raw: make([]rune, 0, 8)}
	b.settle()
	return b
}

func (b *Buffer) Apply(a Action) (Outcome, error) {
	switch a.Kind {
	case ActAppendConsonant, ActAppendVowel, ActLiteral:
		b.cells = append(b.cells, newCell(a.Key))
		b.record(a, false)
		return Outcome{Changed: true}, nil
	case ActBackspace:
		return b.backspace(), nil
	case ActModifier:
		if a.Double {
			return b.applyDouble(a)
		}
		return b.applyModifier(a)
	case ActTone:
		return b.applyTone(a)
	}
	return Outcome{}, nil
}

func (b *Buffer) Reset() {
	b.cells = b.cells[:0]
	b.raw = b.raw[:0]
	b.last = Action{}
	b.lastCompound = false
	b.settle()
}

func (b *Buffer) Len() int { return len(b.cells) }

func (b *Buffer) Empty() bool { return len(b.cells) == 0 }

func (b *Buffer) Shape() Shape { return b.shape }

func (b *Buffer) HasVowel() bool { return b.shape.HasNucleus() }

// Cells returns a copy of the current cells.
func (b *Buffer) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

func (b *Buffer) LastCell() (Cell, bool) {
	if len(b.cells) == 0 {
		return Cell{}, false
	}
	return b.cells[len(b.cells)-1], true
}

// Last is the most recently applied action.
func (b *Buffer) Last() Action { return b.last }

// Raw returns the keys typed for this syllable. After a backspace it is
// rebuilt from the plain letters of the remaining cells.
func (b *Buffer) Raw() string { return string(b.raw) }

// ToneIndex returns the index of the cell carrying the tone, or -1.
func (b *Buffer) ToneIndex() int {
	for i, c := range b.cells {
		if c.Tone != ToneNone {
			return i
		}
	}
	return -1
}

func (b *Buffer) backspace() Outcome {
	if len(b.cells) == 0 {
		return Outcome{}
	}
	b.cells = b.cells[:len(b.cells)-1]
	b.raw = b.raw[:0]
	for _, c := range b.cells {
		b.raw = append(b.raw, c.Plain())
	}
	b.last = BackspaceAction()
	b.lastCompound = false
	b.settle()
	return Outcome{Changed: true}
}

func (b *Buffer) record(a Action, compound bool) {
	b.raw = append(b.raw, a.Key)
	b.last = a
	b.lastCompound = compound
	b.settle()
}

func (b *Buffer) plausible() bool {
	return !b.opts.SpellCheck || Plausible(b.cells, b.shape)
}

func (b *Buffer) settle() {
	b.shape = Classify(b.cells, b.opts.ToneStyle)
	for i := range b.cells {
		switch {
		case i < b.shape.OnsetEnd:
			b.cells[i].Role = RoleOnset
		case i < b.shape.NucleusEnd:
			b.cells[i].Role = RoleNucleus
		default:
			b.cells[i].Role = RoleCoda
		}
	}
	cur := b.ToneIndex()
	if cur < 0 || cur == b.shape.Main {
		return
	}
	tone := b.cells[cur].Tone
	b.cells[cur].Tone = ToneNone
	if b.shape.Main >= 0 {
		b.cells[b.shape.Main].Tone = tone
	}
}
