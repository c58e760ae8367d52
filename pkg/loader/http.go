package loader

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/swipefeed/pkg/model"
)

// HTTP fetches the data file relative to a base URL.
type HTTP struct {
	client *http.Client
	url    string
	name   string
}

func NewHTTP(baseURL string, name string, timeout time.Duration) (*HTTP, error) {
	if baseURL == "" {
		return nil, errors.New("base URL can't be empty")
	}

	if name == "" {
		name = model.DefaultDataFile
	}

	base, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse base URL: %s", baseURL)
	}

	ref, err := url.Parse(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse data file name: %s", name)
	}

	if timeout == 0 {
		timeout = model.DefaultFetchTimeout
	}

	return &HTTP{
		client: &http.Client{Timeout: timeout},
		url:    base.ResolveReference(ref).String(),
		name:   name,
	}, nil
}

func (h *HTTP) Name() string {
	return h.name
}

func (h *HTTP) Load(ctx context.Context) (string, error) {
	logger := log.WithField("url", h.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}

	logger.Debug("fetching data file")
	resp, err := h.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch %s", h.name)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &model.FetchError{
			Resource:   h.name,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	return readAll(resp.Body, h.name)
}
