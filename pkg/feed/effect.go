package feed

// EffectType is a DOM side effect to perform after a transition
type EffectType string

const (
	EffectPauseAll = EffectType("pause_all")
	EffectRewind   = EffectType("rewind")
	EffectPlay     = EffectType("play")
	EffectScroll   = EffectType("scroll")
	EffectError    = EffectType("error")
)

type Effect struct {
	Type    EffectType `json:"type"`
	Index   int        `json:"index"`
	Smooth  bool       `json:"smooth,omitempty"`
	Message string     `json:"message,omitempty"`
}

// Activate builds the effects that make the slide at index the only one playing, from the start.
func Activate(index int) []Effect {
	return []Effect{
		{Type: EffectPauseAll},
		{Type: EffectRewind, Index: index},
		{Type: EffectPlay, Index: index},
	}
}

func scrollTo(index int, smooth bool) Effect {
	return Effect{Type: EffectScroll, Index: index, Smooth: smooth}
}

func showError(message string) Effect {
	return Effect{Type: EffectError, Message: message}
}
