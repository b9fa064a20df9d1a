package app

import (
	"errors"
	"testing"

	"gonhanh/internal/engine"
	"gonhanh/internal/types"
)

type call struct {
	backspaces int
	text       string
}

type fakeEmitter struct {
	calls  []call
	closed bool
	fail   error
}

func (f *fakeEmitter) Close() error {
	f.closed = true
	return nil
}

func (f *fakeEmitter) SendBackspace(count int) error {
	if f.fail != nil {
		return f.fail
	}
	f.calls = append(f.calls, call{backspaces: count})
	return nil
}

func (f *fakeEmitter) SendText(text string) error {
	if f.fail != nil {
		return f.fail
	}
	f.calls = append(f.calls, call{text: text})
	return nil
}

func TestSessionAppliesEdits(t *testing.T) {
	out := &fakeEmitter{}
	s := NewSession(engine.NewEngine(engine.Options{}), out)

	for _, r := range "as" {
		if err := s.Handle(types.KeyOf(r)); err != nil {
			t.Fatalf("handle %q: %v", r, err)
		}
	}
	want := []call{{text: "a"}, {backspaces: 1}, {text: "á"}}
	if len(out.calls) != len(want) {
		t.Fatalf("expected %d calls, got %+v", len(want), out.calls)
	}
	for i := range want {
		if out.calls[i] != want[i] {
			t.Fatalf("call %d: expected %+v, got %+v", i, want[i], out.calls[i])
		}
	}
}

func TestSessionForwardsKeys(t *testing.T) {
	out := &fakeEmitter{}
	s := NewSession(engine.NewEngine(engine.Options{}), out)

	s.Handle(types.Backspace())
	s.Handle(types.Boundary(' '))
	s.Handle(types.Boundary(0))

	want := []call{{backspaces: 1}, {text: " "}}
	if len(out.calls) != len(want) {
		t.Fatalf("expected %d calls, got %+v", len(want), out.calls)
	}
	for i := range want {
		if out.calls[i] != want[i] {
			t.Fatalf("call %d: expected %+v, got %+v", i, want[i], out.calls[i])
		}
	}
}

func TestSessionForwardsWhenDisabled(t *testing.T) {
	out := &fakeEmitter{}
	s := NewSession(engine.NewEngine(engine.Options{Disabled: true}), out)

	s.Handle(types.KeyOf('A'))
	if len(out.calls) != 1 || out.calls[0].text != "A" {
		t.Fatalf("expected the key to pass through, got %+v", out.calls)
	}
}

func TestSessionRestore(t *testing.T) {
	out := &fakeEmitter{}
	s := NewSession(engine.NewEngine(engine.Options{}), out)
	for _, r := range "aa" {
		s.Handle(types.KeyOf(r))
	}
	out.calls = nil

	if err := s.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	want := []call{{backspaces: 1}, {text: "aa"}}
	if len(out.calls) != len(want) || out.calls[0] != want[0] || out.calls[1] != want[1] {
		t.Fatalf("expected %+v, got %+v", want, out.calls)
	}

	out.calls = nil
	if err := s.Restore(); err != nil || len(out.calls) != 0 {
		t.Fatalf("expected restore of an empty syllable to do nothing, got %+v %v", out.calls, err)
	}
}

func TestSessionReportsOutputErrors(t *testing.T) {
	boom := errors.New("boom")
	out := &fakeEmitter{fail: boom}
	s := NewSession(engine.NewEngine(engine.Options{}), out)

	if err := s.Handle(types.KeyOf('a')); !errors.Is(err, boom) {
		t.Fatalf("expected the output error, got %v", err)
	}
	if err := s.Close(); err != nil || !out.closed {
		t.Fatalf("expected close to reach the output")
	}
}
