package viet

// applyModifier scans the nucleus right to left for the nearest unmodified
// cell that fits the request. The stroke only ever targets a leading d.
// When every eligible cell already carries the requested modifier, the
// nearest one is reverted.
func (b *Buffer) applyModifier(a Action) (Outcome, error) {
	start, end := b.shape.NucleusStart, b.shape.NucleusEnd
	if a.Mods.Has(ModStroke) {
		start, end = 0, 0
		if b.shape.OnsetEnd > 0 {
			end = 1
		}
	}
	if start == end {
		return Outcome{}, ErrModifierRejected
	}
	if !b.plausible() {
		return Outcome{}, ErrNotVietnamese
	}

	for k := end - 1; k >= start; k-- {
		c := &b.cells[k]
		if c.Mod != ModNone {
			continue
		}
		m, ok := a.Mods.pick(c.Base)
		if !ok {
			continue
		}
		// The horn of ươu belongs on the uo pair, not the closing u.
		if m == ModHorn && c.Base == 'u' && k-2 >= start {
			if o, u := &b.cells[k-1], &b.cells[k-2]; o.Base == 'o' && o.Mod == ModNone && u.Base == 'u' && u.Mod == ModNone {
				k--
				c = o
			}
		}
		c.Mod = m
		compound := false
		if m == ModHorn && c.Base == 'o' && k > start {
			if prev := &b.cells[k-1]; prev.Base == 'u' && prev.Mod == ModNone {
				prev.Mod = ModHorn
				compound = true
			}
		}
		b.record(a, compound)
		return Outcome{Changed: true}, nil
	}

	// A horn typed right after the ươ compound was formed is the user
	// horning the second vowel by hand.
	if b.lastCompound && a.Mods.Has(ModHorn) {
		b.record(a, false)
		return Outcome{}, nil
	}

	for k := end - 1; k >= start; k-- {
		c := &b.cells[k]
		if c.Mod == ModNone || !a.Mods.Has(c.Mod) {
			continue
		}
		if c.Mod == ModHorn && c.Base == 'o' && k > start {
			if prev := &b.cells[k-1]; prev.Base == 'u' && prev.Mod == ModHorn {
				prev.Mod = ModNone
			}
		}
		c.Mod = ModNone
		b.last = a
		b.lastCompound = false
		b.settle()
		return Outcome{Changed: true, Reverted: true}, nil
	}
	return Outcome{}, ErrModifierRejected
}

// applyDouble turns the preceding cell into its doubled form: aa → â,
// ee → ê, oo → ô, dd → đ. A cell that already carries a modifier is never
// touched again, so a third identical letter is appended as is.
func (b *Buffer) applyDouble(a Action) (Outcome, error) {
	n := len(b.cells)
	if n == 0 {
		return Outcome{}, ErrModifierRejected
	}
	last := &b.cells[n-1]
	if last.Base != a.Letter() || last.Mod != ModNone {
		return Outcome{}, ErrModifierRejected
	}
	m, ok := a.Mods.pick(last.Base)
	if !ok {
		return Outcome{}, ErrModifierRejected
	}
	if m == ModStroke && n != 1 {
		return Outcome{}, ErrModifierRejected
	}
	if m != ModStroke && last.Role != RoleNucleus {
		return Outcome{}, ErrModifierRejected
	}
	if !b.plausible() {
		return Outcome{}, ErrNotVietnamese
	}
	last.Mod = m
	b.record(a, false)
	return Outcome{Changed: true}, nil
}
