package pipeline

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxpv/swipefeed/pkg/model"
)

var testCtx = context.Background()

func newSource(t *testing.T, text string, err error) *MockdataSource {
	ctrl := gomock.NewController(t)

	source := NewMockdataSource(ctrl)
	source.EXPECT().Name().Return("data.csv").AnyTimes()
	source.EXPECT().Load(gomock.Any()).Return(text, err)
	return source
}

func TestRun(t *testing.T) {
	source := newSource(t, "url,title\nhttps://cdn/1.mp4,One\nbroken\nhttps://cdn/2.mp4,Two\n", nil)

	res := Run(testCtx, source)
	require.False(t, res.Failed())
	assert.Equal(t, StageDone, res.Stage)
	assert.Len(t, res.Videos, 2)
	assert.Len(t, res.Skipped, 1)
	assert.Empty(t, res.Message())
}

func TestRunFetchError(t *testing.T) {
	source := newSource(t, "", &model.FetchError{Resource: "data.csv", StatusCode: http.StatusNotFound})

	res := Run(testCtx, source)
	require.True(t, res.Failed())
	assert.Equal(t, StageLoad, res.Stage)
	assert.Empty(t, res.Videos)
	assert.Equal(t, "Could not load CSV file: failed to fetch data.csv: 404 Not Found", res.Message())
}

func TestRunEmptyContent(t *testing.T) {
	res := Run(testCtx, newSource(t, "\n  \n", nil))
	assert.Equal(t, StageLoad, res.Stage)
	assert.True(t, errors.Is(res.Err, model.ErrEmptyContent))
}

func TestRunNoDataRows(t *testing.T) {
	res := Run(testCtx, newSource(t, "header1,header2", nil))
	assert.Equal(t, StageParse, res.Stage)
	assert.True(t, errors.Is(res.Err, model.ErrNoDataRows))
	assert.Empty(t, res.Videos)
	assert.Equal(t, "CSV parsing failed: CSV has no data rows", res.Message())
}

func TestRunEmptyFeed(t *testing.T) {
	res := Run(testCtx, newSource(t, "url,title\nonly-one-field\n", nil))
	assert.Equal(t, StageValidate, res.Stage)
	assert.True(t, errors.Is(res.Err, model.ErrEmptyFeed))
	assert.Len(t, res.Skipped, 1)
	assert.Equal(t, "No videos loaded. Check if data.csv exists and contains valid data.", res.Message())
}
