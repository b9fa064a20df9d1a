package types

import (
	"fmt"
	"strings"
)

type InputMethod int

const (
	MethodTelex InputMethod = iota
	MethodVNI
)

func (m InputMethod) String() string {
	switch m {
	case MethodTelex:
		return "telex"
	case MethodVNI:
		return "vni"
	default:
		return "unknown"
	}
}

func ParseInputMethod(value string) (InputMethod, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "telex", "":
		return MethodTelex, nil
	case "vni":
		return MethodVNI, nil
	default:
		return 0, fmt.Errorf("unknown input method %q", value)
	}
}

// ToneStyle selects where the tone goes on the open glide pairs oa, oe and uy.
type ToneStyle int

const (
	// ToneNew marks the second vowel: hoà, khuỳ.
	ToneNew ToneStyle = iota
	// ToneOld marks the first vowel: hòa, khùy.
	ToneOld
)

func (s ToneStyle) String() string {
	switch s {
	case ToneNew:
		return "new"
	case ToneOld:
		return "old"
	default:
		return "unknown"
	}
}

func ParseToneStyle(value string) (ToneStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "new", "modern", "":
		return ToneNew, nil
	case "old", "classic":
		return ToneOld, nil
	default:
		return 0, fmt.Errorf("unknown tone style %q", value)
	}
}
