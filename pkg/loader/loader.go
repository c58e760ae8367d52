package loader

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/swipefeed/pkg/model"
)

// Kind is a data file source type
type Kind string

const (
	KindLocal = Kind("local")
	KindHTTP  = Kind("http")
	KindS3    = Kind("s3")
)

// Loader retrieves raw text of the data file.
type Loader interface {
	// Name is the resource name to load, e.g. data.csv
	Name() string
	// Load returns the resource content as is
	Load(ctx context.Context) (string, error)
}

// Config is a data file source configuration loaded from TOML
type Config struct {
	// Kind is either local, http or s3
	Kind Kind `toml:"kind"`
	// Name of the data file relative to the source root
	Name string `toml:"name"`
	// Dir is a local directory to read the data file from
	Dir string `toml:"dir"`
	// BaseURL is a HTTP location the data file is resolved against
	BaseURL string `toml:"base_url"`
	// Timeout for a single load
	Timeout time.Duration `toml:"timeout"`
	// S3 bucket to read the data file from
	S3 S3Config `toml:"s3"`
}

// New creates a loader for the given source configuration.
func New(cfg Config) (Loader, error) {
	switch cfg.Kind {
	case KindLocal, "":
		return NewLocal(cfg.Dir, cfg.Name)
	case KindHTTP:
		return NewHTTP(cfg.BaseURL, cfg.Name, cfg.Timeout)
	case KindS3:
		return NewS3(cfg.S3, cfg.Name)
	default:
		return nil, errors.Errorf("unsupported source kind %q", cfg.Kind)
	}
}

// maxDataSize caps the size of a data file read from a remote source
var maxDataSize int64 = 16 << 20

// Fetch loads the data file and makes sure it has some content.
func Fetch(ctx context.Context, loader Loader) (string, error) {
	logger := log.WithField("resource", loader.Name())

	text, err := loader.Load(ctx)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", errors.Wrap(model.ErrEmptyContent, loader.Name())
	}

	logger.Debugf("loaded %d bytes", len(text))
	return text, nil
}

// readAll reads a remote data file, failing instead of truncating when it is larger than maxDataSize.
func readAll(reader io.Reader, name string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(reader, maxDataSize+1))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", name)
	}

	if int64(len(data)) > maxDataSize {
		return "", errors.Errorf("%s exceeds %d bytes", name, maxDataSize)
	}

	return string(data), nil
}
