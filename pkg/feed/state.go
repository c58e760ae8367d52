package feed

import (
	"math"

	"github.com/mxpv/swipefeed/pkg/model"
)

// EmptyFeedMessage is shown when there is nothing to play.
const EmptyFeedMessage = "No videos loaded. Check if data.csv exists and contains valid data."

// State is the view state of a single page: how many slides there are and which one is active.
type State struct {
	Count   int `json:"count"`
	Current int `json:"current"`
}

// Init activates the first slide.
func Init(s State) (State, []Effect) {
	if s.Count == 0 {
		return s, []Effect{showError(EmptyFeedMessage)}
	}

	s.Current = 0
	return s, Activate(s.Current)
}

// Ended advances to the next slide when the active video finishes, wrapping after the last one.
func Ended(s State, index int) (State, []Effect) {
	if s.Count == 0 || index != s.Current {
		return s, nil
	}

	s.Current = (s.Current + 1) % s.Count
	return s, append([]Effect{scrollTo(s.Current, true)}, Activate(s.Current)...)
}

// Swipe moves one slide in the swipe direction.
// deltaY is startY - endY: positive values advance, negative values go back.
func Swipe(s State, startY, endY, threshold float64) (State, []Effect) {
	deltaY := startY - endY
	if math.Abs(deltaY) <= threshold {
		return s, nil
	}

	switch {
	case deltaY > 0 && s.Current < s.Count-1:
		s.Current++
	case deltaY < 0 && s.Current > 0:
		s.Current--
	default:
		return s, nil
	}

	return s, append([]Effect{scrollTo(s.Current, true)}, Activate(s.Current)...)
}

// Visible syncs the active slide with the one that scrolled into view.
func Visible(s State, index int, ratio, threshold float64) (State, []Effect) {
	if ratio < threshold || index < 0 || index >= s.Count || index == s.Current {
		return s, nil
	}

	s.Current = index
	return s, Activate(s.Current)
}

// Resize snaps the scroll position back to the active slide.
func Resize(s State) (State, []Effect) {
	if s.Count == 0 {
		return s, nil
	}
	return s, []Effect{scrollTo(s.Current, false)}
}

// PlaybackFailed reports a video that refused to start. The feed keeps going.
func PlaybackFailed(s State, err *model.PlaybackError) (State, []Effect) {
	return s, []Effect{showError(err.Error())}
}
