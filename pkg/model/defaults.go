package model

import (
	"time"
)

const (
	DefaultDataFile            = "data.csv"
	DefaultPort                = 8080
	DefaultPageTTL             = time.Hour
	DefaultFetchTimeout        = 30 * time.Second
	DefaultSwipeThreshold      = 50
	DefaultVisibilityThreshold = 0.5
	DefaultLogMaxSize          = 50 // megabytes
	DefaultLogMaxAge           = 30 // days
	DefaultLogMaxBackups       = 7
)

// Overlay placeholders for missing optional columns
const (
	DefaultTitle      = "Untitled"
	DefaultHowLongAgo = "Unknown time"
	DefaultSize       = "Unknown size"
)
