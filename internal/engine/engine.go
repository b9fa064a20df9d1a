// Package engine feeds host key events through a method profile into the
// syllable buffer and reports each change as a backspace-and-append edit.
package engine

import (
	"log/slog"

	"gonhanh/internal/method"
	"gonhanh/internal/render"
	"gonhanh/internal/types"
	"gonhanh/internal/viet"
)

type ResultAction int

const (
	// ActionNone leaves the display alone.
	ActionNone ResultAction = iota
	// ActionSend patches the display: Delete runes, then Text.
	ActionSend
	// ActionRestore is a Send that replaced the syllable by its raw keys.
	ActionRestore
)

func (a ResultAction) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSend:
		return "send"
	case ActionRestore:
		return "restore"
	default:
		return "unknown"
	}
}

// Result is the edit a host applies after one key event.
type Result struct {
	Action   ResultAction
	Delete   int
	Text     string
	Rendered string
	// Forward asks the host to pass the typed key through untouched.
	Forward bool
}

type Options struct {
	Method     types.InputMethod
	ToneStyle  types.ToneStyle
	SpellCheck bool
	Disabled   bool
	Logger     *slog.Logger
}

// Engine is one composition context. It is not safe for concurrent use;
// give every input field its own Engine.
type Engine struct {
	profile  *method.Profile
	buffer   *viet.Buffer
	rendered string
	enabled  bool
	logger   *slog.Logger
}

func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		profile: method.For(opts.Method),
		buffer:  viet.NewBuffer(viet.Options{ToneStyle: opts.ToneStyle, SpellCheck: opts.SpellCheck}),
		enabled: !opts.Disabled,
		logger:  logger.With("component", "engine"),
	}
}

func (e *Engine) Method() types.InputMethod { return e.profile.Method() }

func (e *Engine) Enabled() bool { return e.enabled }

// Rendered is the display text of the syllable being composed.
func (e *Engine) Rendered() string { return e.rendered }

// Raw is the keys typed for the syllable being composed.
func (e *Engine) Raw() string { return e.buffer.Raw() }

// SetMethod switches profiles. The current syllable is dropped, so hosts
// should only switch between syllables.
func (e *Engine) SetMethod(m types.InputMethod) {
	e.profile = method.For(m)
	e.Reset()
}

func (e *Engine) SetEnabled(enabled bool) {
	if e.enabled != enabled {
		e.Reset()
	}
	e.enabled = enabled
}

// Reset drops the syllable without touching the display.
func (e *Engine) Reset() {
	e.buffer.Reset()
	e.rendered = ""
}

func (e *Engine) Feed(ev types.KeyEvent) Result {
	switch ev.Kind {
	case types.KeyBackspace:
		return e.backspace()
	case types.KeyBoundary:
		return e.boundary()
	}
	key := ev.Rune()
	if !e.enabled || !e.profile.Buildable(key) {
		return e.boundary()
	}
	e.apply(e.profile.Classify(key, e.buffer))
	return e.send()
}

// Restore replaces the composed syllable with the keys that produced it and
// starts a new syllable.
func (e *Engine) Restore() Result {
	if e.buffer.Empty() {
		return Result{Action: ActionNone}
	}
	raw := e.buffer.Raw()
	del, text := render.Diff(e.rendered, raw)
	e.logger.Debug("restoring raw keys", "rendered", e.rendered, "raw", raw)
	e.Reset()
	return Result{Action: ActionRestore, Delete: del, Text: text, Rendered: raw}
}

func (e *Engine) apply(act viet.Action) {
	out, err := e.buffer.Apply(act)
	switch {
	case err != nil:
		e.logger.Debug("key taken literally", "key", string(act.Key), "action", act.Kind.String(), "reason", err)
		// A literal append always succeeds.
		_, _ = e.buffer.Apply(act.AsLiteral())
	case out.Reverted:
		e.logger.Debug("repeated key reverted", "key", string(act.Key), "action", act.Kind.String())
		_, _ = e.buffer.Apply(act.AsLiteral())
	}
}

func (e *Engine) backspace() Result {
	if e.buffer.Empty() {
		return Result{Action: ActionNone, Forward: true}
	}
	e.buffer.Apply(viet.BackspaceAction())
	return e.send()
}

func (e *Engine) boundary() Result {
	e.Reset()
	return Result{Action: ActionNone, Forward: true}
}

func (e *Engine) send() Result {
	next := render.Render(e.buffer.Cells())
	del, text := render.Diff(e.rendered, next)
	e.rendered = next
	return Result{Action: ActionSend, Delete: del, Text: text, Rendered: next}
}
