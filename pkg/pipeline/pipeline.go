package pipeline

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/swipefeed/pkg/feed"
	"github.com/mxpv/swipefeed/pkg/loader"
	"github.com/mxpv/swipefeed/pkg/model"
	"github.com/mxpv/swipefeed/pkg/parser"
)

// Stage is a step of the feed pipeline
type Stage string

const (
	StageLoad     = Stage("load")
	StageParse    = Stage("parse")
	StageValidate = Stage("validate")
	StageDone     = Stage("done")
)

// ConsoleHint is appended to every user-visible error.
const ConsoleHint = "Check the console (F12) for details."

// Result is the outcome of a pipeline run.
// Stage is the last stage reached, it is StageDone when Err is nil.
type Result struct {
	Stage   Stage
	Videos  []model.VideoRecord
	Skipped []*model.MalformedRowError
	Err     error
}

// Failed returns true when a fatal error stopped the pipeline.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Message returns the user-visible error text for a failed run.
func (r *Result) Message() string {
	switch r.Stage {
	case StageLoad:
		return fmt.Sprintf("Could not load CSV file: %v", r.Err)
	case StageParse:
		return fmt.Sprintf("CSV parsing failed: %v", r.Err)
	case StageValidate:
		return feed.EmptyFeedMessage
	default:
		return ""
	}
}

// Run loads, parses and validates the data file. Stages run in order, the first failure stops the run.
func Run(ctx context.Context, source dataSource) *Result {
	logger := log.WithField("resource", source.Name())

	result := &Result{Stage: StageLoad}

	text, err := loader.Fetch(ctx, source)
	if err != nil {
		return result.fail(logger, err)
	}

	result.Stage = StageParse
	parsed, err := parser.Parse(text)
	if err != nil {
		return result.fail(logger, err)
	}

	result.Skipped = parsed.Skipped

	result.Stage = StageValidate
	if len(parsed.Videos) == 0 {
		return result.fail(logger, errors.Wrapf(model.ErrEmptyFeed, "%d rows skipped", len(parsed.Skipped)))
	}

	result.Stage = StageDone
	result.Videos = parsed.Videos

	logger.Infof("loaded %d videos", len(result.Videos))
	return result
}

func (r *Result) fail(logger log.FieldLogger, err error) *Result {
	r.Err = err
	logger.WithError(err).Errorf("feed pipeline failed at %s stage", r.Stage)
	return r
}
