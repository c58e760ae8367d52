package feed

import (
	"github.com/pkg/errors"
)

// Player is the playback state of a single slide.
type Player struct {
	Playing  bool
	Position float64
}

// Deck is an in-memory model of the rendered slides.
// It applies effects the same way the page does and is used to check transitions end to end.
type Deck struct {
	Players []Player
	// Scroll is the index of the slide the feed is scrolled to
	Scroll int
	// Errors collects messages shown on the error surface
	Errors []string
	// Refuse makes play effects fail for the given slides
	Refuse map[int]error
}

func NewDeck(count int) *Deck {
	return &Deck{Players: make([]Player, count)}
}

// Apply performs effects in order. Playback failures are collected, not returned,
// so one broken video doesn't stop the rest.
func (d *Deck) Apply(effects []Effect) []*PlaybackFailure {
	var failures []*PlaybackFailure

	for _, effect := range effects {
		switch effect.Type {
		case EffectPauseAll:
			for i := range d.Players {
				d.Players[i].Playing = false
			}
		case EffectRewind:
			if p := d.player(effect.Index); p != nil {
				p.Position = 0
			}
		case EffectPlay:
			if err := d.Refuse[effect.Index]; err != nil {
				failures = append(failures, &PlaybackFailure{Index: effect.Index, Err: err})
				continue
			}
			if p := d.player(effect.Index); p != nil {
				p.Playing = true
			}
		case EffectScroll:
			d.Scroll = effect.Index
		case EffectError:
			d.Errors = append(d.Errors, effect.Message)
		}
	}

	return failures
}

// Playing returns indices of the slides currently playing.
func (d *Deck) Playing() []int {
	var out []int
	for i, p := range d.Players {
		if p.Playing {
			out = append(out, i)
		}
	}
	return out
}

func (d *Deck) player(index int) *Player {
	if index < 0 || index >= len(d.Players) {
		return nil
	}
	return &d.Players[index]
}

// PlaybackFailure is a play effect the deck refused.
type PlaybackFailure struct {
	Index int
	Err   error
}

func (f *PlaybackFailure) Error() string {
	return errors.Wrapf(f.Err, "slide %d", f.Index).Error()
}

// Event converts the failure to the event the page would send back.
func (f *PlaybackFailure) Event() Event {
	return Event{Type: EventPlaybackError, Index: f.Index, Message: f.Err.Error()}
}
