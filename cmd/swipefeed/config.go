package main

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/mxpv/swipefeed/pkg/feed"
	"github.com/mxpv/swipefeed/pkg/loader"
	"github.com/mxpv/swipefeed/pkg/model"
	"github.com/mxpv/swipefeed/services/web"
)

type Config struct {
	// Server is the web server configuration
	Server web.Config `toml:"server"`
	// Source is where the data file is loaded from
	Source loader.Config `toml:"source"`
	// Feed is the navigation configuration
	Feed feed.Config `toml:"feed"`
	// Log is the optional logging configuration
	Log Log `toml:"log"`
}

type Log struct {
	// Filename to write the log to (instead of stdout)
	Filename string `toml:"filename"`
	// MaxSize is the maximum size of the log file in MB
	MaxSize int `toml:"max_size"`
	// MaxBackups is the maximum number of log file backups to keep after rotation
	MaxBackups int `toml:"max_backups"`
	// MaxAge is the maximum number of days to keep the logs for
	MaxAge int `toml:"max_age"`
	// Compress old backups
	Compress bool `toml:"compress"`
}

// LoadConfig loads TOML configuration from a file path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	config := Config{}
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal toml")
	}

	config.applyDefaults(path)

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var result *multierror.Error

	switch c.Source.Kind {
	case loader.KindLocal:
		if c.Source.Dir == "" {
			result = multierror.Append(result, errors.New("source directory is required for local source"))
		}
	case loader.KindHTTP:
		if c.Source.BaseURL == "" {
			result = multierror.Append(result, errors.New("base_url is required for http source"))
		}
	case loader.KindS3:
		if c.Source.S3.Bucket == "" {
			result = multierror.Append(result, errors.New("bucket is required for s3 source"))
		}
	default:
		result = multierror.Append(result, errors.Errorf("unsupported source kind %q", c.Source.Kind))
	}

	if c.Server.TLS && (c.Server.CertificatePath == "" || c.Server.KeyFilePath == "") {
		result = multierror.Append(result, errors.New("certificate_path and key_file_path are required for TLS"))
	}

	if c.Feed.VisibilityThreshold < 0 || c.Feed.VisibilityThreshold > 1 {
		result = multierror.Append(result, errors.Errorf("visibility_threshold must be within [0, 1], got %v", c.Feed.VisibilityThreshold))
	}

	if c.Feed.SwipeThreshold < 0 {
		result = multierror.Append(result, errors.Errorf("swipe_threshold can't be negative, got %d", c.Feed.SwipeThreshold))
	}

	return result.ErrorOrNil()
}

func (c *Config) applyDefaults(configPath string) {
	if c.Server.Port == 0 {
		c.Server.Port = model.DefaultPort
	}

	if c.Server.PageTTL == 0 {
		c.Server.PageTTL = model.DefaultPageTTL
	}

	if c.Source.Kind == "" {
		c.Source.Kind = loader.KindLocal
	}

	if c.Source.Name == "" {
		c.Source.Name = model.DefaultDataFile
	}

	if c.Source.Timeout == 0 {
		c.Source.Timeout = model.DefaultFetchTimeout
	}

	if c.Source.Kind == loader.KindLocal && c.Source.Dir == "" {
		if c.Server.DataDir != "" {
			c.Source.Dir = c.Server.DataDir
		} else {
			c.Source.Dir = filepath.Dir(configPath)
		}
	}

	if c.Feed.SwipeThreshold == 0 {
		c.Feed.SwipeThreshold = model.DefaultSwipeThreshold
	}

	if c.Feed.VisibilityThreshold == 0 {
		c.Feed.VisibilityThreshold = model.DefaultVisibilityThreshold
	}

	if c.Log.Filename != "" {
		if c.Log.MaxSize == 0 {
			c.Log.MaxSize = model.DefaultLogMaxSize
		}
		if c.Log.MaxAge == 0 {
			c.Log.MaxAge = model.DefaultLogMaxAge
		}
		if c.Log.MaxBackups == 0 {
			c.Log.MaxBackups = model.DefaultLogMaxBackups
		}
	}
}
