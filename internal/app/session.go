package app

import (
	"fmt"

	"gonhanh/internal/emitter"
	"gonhanh/internal/engine"
	"gonhanh/internal/types"
)

// Session connects one engine to the output that displays its text.
type Session struct {
	engine *engine.Engine
	out    emitter.Output
}

func NewSession(eng *engine.Engine, out emitter.Output) *Session {
	return &Session{engine: eng, out: out}
}

func (s *Session) Engine() *engine.Engine { return s.engine }

// Handle feeds ev to the engine and applies the resulting edit.
func (s *Session) Handle(ev types.KeyEvent) error {
	res := s.engine.Feed(ev)
	if res.Forward {
		return s.forward(ev)
	}
	return s.apply(res)
}

// Restore puts back the raw keys of the syllable being composed.
func (s *Session) Restore() error {
	return s.apply(s.engine.Restore())
}

func (s *Session) Close() error { return s.out.Close() }

func (s *Session) forward(ev types.KeyEvent) error {
	switch ev.Kind {
	case types.KeyBackspace:
		return s.out.SendBackspace(1)
	case types.KeyLetter:
		return s.out.SendText(string(ev.Rune()))
	default:
		if ev.Char == 0 {
			return nil
		}
		return s.out.SendText(string(ev.Char))
	}
}

func (s *Session) apply(res engine.Result) error {
	if res.Action == engine.ActionNone {
		return nil
	}
	if res.Delete > 0 {
		if err := s.out.SendBackspace(res.Delete); err != nil {
			return fmt.Errorf("send backspace: %w", err)
		}
	}
	if res.Text != "" {
		if err := s.out.SendText(res.Text); err != nil {
			return fmt.Errorf("send text: %w", err)
		}
	}
	return nil
}
