package emitter

import (
	"bufio"
	"io"
	"strings"
)

const eraseSequence = "\b \b"

// Terminal edits text in place on a terminal in raw mode.
type Terminal struct {
	w *bufio.Writer
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: bufio.NewWriter(w)}
}

func (t *Terminal) SendBackspace(count int) error {
	if count <= 0 {
		return nil
	}
	if _, err := t.w.WriteString(strings.Repeat(eraseSequence, count)); err != nil {
		return err
	}
	return t.w.Flush()
}

func (t *Terminal) SendText(text string) error {
	if text == "" {
		return nil
	}
	// raw mode does not translate newlines
	text = strings.ReplaceAll(text, "\n", "\r\n")
	if _, err := t.w.WriteString(text); err != nil {
		return err
	}
	return t.w.Flush()
}

// Close flushes pending output; the underlying writer stays open.
func (t *Terminal) Close() error {
	return t.w.Flush()
}
