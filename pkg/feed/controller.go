package feed

import (
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/swipefeed/pkg/model"
)

// EventType is a browser event forwarded to the controller
type EventType string

const (
	EventInit          = EventType("init")
	EventEnded         = EventType("ended")
	EventSwipe         = EventType("swipe")
	EventVisible       = EventType("visible")
	EventResize        = EventType("resize")
	EventPlaybackError = EventType("playback_error")
)

// Event is the payload of a browser event.
// Only the fields relevant to Type are used.
type Event struct {
	Type    EventType `json:"type" binding:"required"`
	Index   int       `json:"index"`
	Ratio   float64   `json:"ratio"`
	StartY  float64   `json:"start_y"`
	EndY    float64   `json:"end_y"`
	Message string    `json:"message"`
}

// Controller owns the view state of one page and the videos it shows.
// It is safe for concurrent use, events are applied one at a time.
type Controller struct {
	mu     sync.Mutex
	videos []model.VideoRecord
	state  State
	cfg    Config
}

func NewController(videos []model.VideoRecord, cfg Config) *Controller {
	return &Controller{
		videos: videos,
		state:  State{Count: len(videos)},
		cfg:    cfg.withDefaults(),
	}
}

// State returns a snapshot of the current view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Handle applies an event and returns the resulting state with the effects to perform.
func (c *Controller) Handle(event Event) (State, []Effect, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		prev    = c.state
		next    State
		effects []Effect
	)

	switch event.Type {
	case EventInit:
		next, effects = Init(prev)
	case EventEnded:
		next, effects = Ended(prev, event.Index)
	case EventSwipe:
		next, effects = Swipe(prev, event.StartY, event.EndY, float64(c.cfg.SwipeThreshold))
	case EventVisible:
		next, effects = Visible(prev, event.Index, event.Ratio, c.cfg.VisibilityThreshold)
	case EventResize:
		next, effects = Resize(prev)
	case EventPlaybackError:
		playbackErr := &model.PlaybackError{Index: event.Index, Title: model.DefaultTitle, Message: event.Message}
		if event.Index >= 0 && event.Index < len(c.videos) {
			playbackErr.Title = c.videos[event.Index].DisplayTitle()
		}
		log.WithError(playbackErr).Warn("playback failed")
		next, effects = PlaybackFailed(prev, playbackErr)
	default:
		return prev, nil, errors.Errorf("unsupported event type %q", event.Type)
	}

	c.state = next

	logger := log.WithFields(log.Fields{
		"event":   event.Type,
		"current": next.Current,
		"effects": len(effects),
	})
	if next.Current != prev.Current || event.Type == EventInit {
		logger.Infof("playing video %d/%d", next.Current+1, next.Count)
	} else {
		logger.Debug("event handled")
	}

	return next, effects, nil
}
