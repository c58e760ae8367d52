package web

import (
	"expvar"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/swipefeed/pkg/feed"
	"github.com/mxpv/swipefeed/pkg/loader"
	"github.com/mxpv/swipefeed/pkg/model"
	"github.com/mxpv/swipefeed/pkg/pipeline"
)

var (
	pagesServed     = expvar.NewInt("pages_served")
	pagesFailed     = expvar.NewInt("pages_failed")
	rowsSkipped     = expvar.NewInt("rows_skipped")
	eventsHandled   = expvar.NewInt("events_handled")
	playbackFailure = expvar.NewInt("playback_errors")
)

type handler struct {
	source     loader.Loader
	feedConfig feed.Config
	pages      *pages
}

type slideView struct {
	Index      int
	URL        string
	Title      string
	HowLongAgo string
	Size       string
}

type pageView struct {
	ID     string
	Slides []slideView
	Error  string
	Hint   string
}

func (h *handler) index(c *gin.Context) {
	res := pipeline.Run(c.Request.Context(), h.source)
	rowsSkipped.Add(int64(len(res.Skipped)))

	if res.Failed() {
		pagesFailed.Add(1)
		c.HTML(http.StatusOK, "index.html", pageView{Error: res.Message(), Hint: pipeline.ConsoleHint})
		return
	}

	ctrl := feed.NewController(res.Videos, h.feedConfig)
	id, err := h.pages.add(ctrl)
	if err != nil {
		log.WithError(err).Error("failed to register page")
		pagesFailed.Add(1)
		c.HTML(http.StatusOK, "index.html", pageView{
			Error: fmt.Sprintf("Could not start the feed: %v", err),
			Hint:  pipeline.ConsoleHint,
		})
		return
	}

	view := pageView{ID: id, Slides: make([]slideView, 0, len(res.Videos))}
	for i, video := range res.Videos {
		view.Slides = append(view.Slides, newSlideView(i, video))
	}

	pagesServed.Add(1)
	log.WithField("page_id", id).Debugf("created %d video elements", len(view.Slides))
	c.HTML(http.StatusOK, "index.html", view)
}

func (h *handler) event(c *gin.Context) {
	id := c.Param("id")

	ctrl, err := h.pages.get(id)
	if err != nil {
		c.JSON(notFound(err))
		return
	}

	event := feed.Event{}
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(badRequest(err))
		return
	}

	state, effects, err := ctrl.Handle(event)
	if err != nil {
		c.JSON(badRequest(err))
		return
	}

	eventsHandled.Add(1)
	if event.Type == feed.EventPlaybackError {
		playbackFailure.Add(1)
	}

	if effects == nil {
		effects = []feed.Effect{}
	}

	c.JSON(http.StatusOK, gin.H{
		"current": state.Current,
		"effects": effects,
	})
}

func newSlideView(index int, video model.VideoRecord) slideView {
	view := slideView{
		Index:      index,
		URL:        video.URL,
		Title:      video.DisplayTitle(),
		HowLongAgo: video.HowLongAgo,
		Size:       video.SizeFormatted,
	}

	if view.HowLongAgo == "" {
		view.HowLongAgo = model.DefaultHowLongAgo
	}
	if view.Size == "" {
		view.Size = model.DefaultSize
	}

	return view
}
