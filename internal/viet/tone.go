package viet

// applyTone puts a tone on the main vowel, replacing any other tone. The
// tone that is already present is reverted instead, and ToneNone clears.
func (b *Buffer) applyTone(a Action) (Outcome, error) {
	if b.shape.Main < 0 {
		return Outcome{}, ErrToneNoTarget
	}
	if !b.plausible() {
		return Outcome{}, ErrNotVietnamese
	}
	cur := b.ToneIndex()
	if a.Tone == ToneNone {
		if cur < 0 {
			return Outcome{}, ErrToneNoTarget
		}
		b.cells[cur].Tone = ToneNone
		b.record(a, false)
		return Outcome{Changed: true}, nil
	}
	if cur >= 0 && b.cells[cur].Tone == a.Tone {
		b.cells[cur].Tone = ToneNone
		b.last = a
		b.lastCompound = false
		b.settle()
		return Outcome{Changed: true, Reverted: true}, nil
	}
	if cur >= 0 {
		b.cells[cur].Tone = ToneNone
	}
	b.cells[b.shape.Main].Tone = a.Tone
	b.record(a, false)
	return Outcome{Changed: true}, nil
}
