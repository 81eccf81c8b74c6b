package houserule

import (
	"math/rand/v2"
	"strings"
)

// PhrasePicker chooses the flavour prefix placed in front of violation messages.
type PhrasePicker interface {
	Pick(options []string) string
}

// RandomPicker picks uniformly.
type RandomPicker struct{}

func (RandomPicker) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rand.IntN(len(options))]
}

// FixedPicker always returns the option at Index, wrapping around.
type FixedPicker struct {
	Index int
}

func (p FixedPicker) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	idx := p.Index % len(options)
	if idx < 0 {
		idx += len(options)
	}
	return options[idx]
}

func withPrefix(prefix, body string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return body
	}
	return prefix + " " + body
}
