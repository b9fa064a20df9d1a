package app

import (
	"log/slog"
	"unicode"

	"gonhanh/internal/emitter"
	"gonhanh/internal/engine"
	"gonhanh/internal/types"
)

const (
	asciiBackspace = '\b'
	asciiDelete    = 0x7f
)

// Translator converts whole lines of raw keystrokes into the text a host
// would display after typing them.
type Translator struct {
	opts engine.Options
}

func NewTranslator(opts engine.Options) *Translator {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Translator{opts: opts}
}

func (t *Translator) Options() engine.Options { return t.opts }

// Translate runs line through a fresh engine. Backspace and DEL erase the
// previous character; any rune that is not a letter or digit ends the
// current syllable and is copied through.
func (t *Translator) Translate(line string) string {
	out := emitter.NewText()
	session := NewSession(engine.NewEngine(t.opts), out)
	for _, r := range line {
		// Text never fails.
		_ = session.Handle(KeyEventFor(r))
	}
	return out.String()
}

// Translate converts line with a default Telex engine.
func Translate(line string) string {
	return NewTranslator(engine.Options{}).Translate(line)
}

// KeyEventFor maps a typed rune to the event a host would send for it.
func KeyEventFor(r rune) types.KeyEvent {
	switch {
	case r == asciiBackspace || r == asciiDelete:
		return types.Backspace()
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return types.KeyOf(r)
	default:
		return types.Boundary(r)
	}
}
