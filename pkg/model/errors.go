package model

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyContent    = errors.New("data file is empty")
	ErrNoDataRows      = errors.New("CSV has no data rows")
	ErrDuplicateHeader = errors.New("duplicate column name in CSV header")
	ErrEmptyFeed       = errors.New("no videos loaded")
)

// FetchError is returned when the data file source responds with a non-success status.
type FetchError struct {
	Resource   string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	status := e.Status
	if status == "" {
		status = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %d %s", e.Resource, e.StatusCode, status)
}

// MalformedRowError describes a data row whose field count doesn't match the header.
// It is never fatal, the row is dropped.
type MalformedRowError struct {
	Line     int
	Expected int
	Got      int
	Raw      string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("skipping malformed row %d (expected %d fields, got %d): %s", e.Line, e.Expected, e.Got, e.Raw)
}

// PlaybackError is reported by a client when a video refuses to start.
type PlaybackError struct {
	Index   int
	Title   string
	Message string
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("Failed to play video %s: %s", e.Title, e.Message)
}
