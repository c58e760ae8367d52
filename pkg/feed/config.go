package feed

import (
	"github.com/mxpv/swipefeed/pkg/model"
)

// Config is a feed navigation configuration loaded from TOML
type Config struct {
	// SwipeThreshold is the minimum vertical touch displacement (in CSS pixels) to navigate
	SwipeThreshold int `toml:"swipe_threshold"`
	// VisibilityThreshold is the visible fraction of a slide to make it active
	VisibilityThreshold float64 `toml:"visibility_threshold"`
}

func (c Config) withDefaults() Config {
	if c.SwipeThreshold <= 0 {
		c.SwipeThreshold = model.DefaultSwipeThreshold
	}
	if c.VisibilityThreshold <= 0 || c.VisibilityThreshold > 1 {
		c.VisibilityThreshold = model.DefaultVisibilityThreshold
	}
	return c
}
