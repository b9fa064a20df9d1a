package emitter

// Text applies edits to an in-memory string.
type Text struct {
	buffer []rune
}

func NewText() *Text {
	return &Text{buffer: make([]rune, 0, 64)}
}

func (t *Text) Close() error { return nil }

func (t *Text) SendBackspace(count int) error {
	if count <= 0 {
		return nil
	}
	if count > len(t.buffer) {
		t.buffer = t.buffer[:0]
		return nil
	}
	t.buffer = t.buffer[:len(t.buffer)-count]
	return nil
}

func (t *Text) SendText(text string) error {
	t.buffer = append(t.buffer, []rune(text)...)
	return nil
}

func (t *Text) String() string { return string(t.buffer) }

func (t *Text) Reset() { t.buffer = t.buffer[:0] }
