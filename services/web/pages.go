package web

import (
	"time"

	"github.com/gin-contrib/cache/persistence"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	shortid "github.com/ventu-io/go-shortid"

	"github.com/mxpv/swipefeed/pkg/feed"
	"github.com/mxpv/swipefeed/pkg/model"
)

var errPageNotFound = errors.New("page not found, reload to start over")

// pages keeps feed controllers of live page views.
// An entry expires after ttl without events.
type pages struct {
	sid   *shortid.Shortid
	store *persistence.InMemoryStore
	ttl   time.Duration
}

func newPages(ttl time.Duration) *pages {
	if ttl <= 0 {
		ttl = model.DefaultPageTTL
	}

	return &pages{
		sid:   shortid.MustNew(1, shortid.DefaultABC, uint64(time.Now().UnixNano())),
		store: persistence.NewInMemoryStore(ttl),
		ttl:   ttl,
	}
}

func (p *pages) add(ctrl *feed.Controller) (string, error) {
	id, err := p.sid.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate page id")
	}

	if err := p.store.Set(pageKey(id), ctrl, p.ttl); err != nil {
		return "", errors.Wrap(err, "failed to store page")
	}

	return id, nil
}

func (p *pages) get(id string) (*feed.Controller, error) {
	var ctrl *feed.Controller
	if err := p.store.Get(pageKey(id), &ctrl); err != nil {
		if err == persistence.ErrCacheMiss {
			return nil, errPageNotFound
		}
		return nil, errors.Wrapf(err, "failed to query page %s", id)
	}

	// Extend expiration
	if err := p.store.Set(pageKey(id), ctrl, p.ttl); err != nil {
		log.WithError(err).WithField("page_id", id).Debug("failed to extend page expiration")
	}
	return ctrl, nil
}

func pageKey(id string) string {
	return "page/" + id
}
