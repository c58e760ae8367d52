package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mxpv/swipefeed/pkg/loader"
	"github.com/mxpv/swipefeed/pkg/model"
	"github.com/mxpv/swipefeed/services/web"
)

func TestLoadConfig(t *testing.T) {
	const file = `
[server]
port = 80
bind_address = "127.0.0.1"
data_dir = "/srv/feed"
page_ttl = "15m"
debug_endpoints = true

[source]
kind = "s3"
name = "videos.csv"
timeout = "5s"
  [source.s3]
  bucket = "media"
  region = "us-east-1"
  endpoint_url = "https://s3.local"
  prefix = "feeds"

[feed]
swipe_threshold = 80
visibility_threshold = 0.75

[log]
filename = "/var/log/swipefeed.log"
max_size = 10
compress = true
`
	path := setup(t, file)

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	require.NotNil(t, config)

	assert.EqualValues(t, 80, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.BindAddress)
	assert.Equal(t, "/srv/feed", config.Server.DataDir)
	assert.Equal(t, 15*time.Minute, config.Server.PageTTL)
	assert.True(t, config.Server.DebugEndpoints)

	assert.Equal(t, loader.KindS3, config.Source.Kind)
	assert.Equal(t, "videos.csv", config.Source.Name)
	assert.Equal(t, 5*time.Second, config.Source.Timeout)
	assert.Equal(t, "media", config.Source.S3.Bucket)
	assert.Equal(t, "us-east-1", config.Source.S3.Region)
	assert.Equal(t, "https://s3.local", config.Source.S3.EndpointURL)
	assert.Equal(t, "feeds", config.Source.S3.Prefix)

	assert.Equal(t, 80, config.Feed.SwipeThreshold)
	assert.Equal(t, 0.75, config.Feed.VisibilityThreshold)

	assert.Equal(t, "/var/log/swipefeed.log", config.Log.Filename)
	assert.Equal(t, 10, config.Log.MaxSize)
	assert.Equal(t, model.DefaultLogMaxAge, config.Log.MaxAge)
	assert.Equal(t, model.DefaultLogMaxBackups, config.Log.MaxBackups)
	assert.True(t, config.Log.Compress)
}

func TestApplyDefaults(t *testing.T) {
	path := setup(t, "")

	config, err := LoadConfig(path)
	assert.NoError(t, err)
	require.NotNil(t, config)

	assert.EqualValues(t, model.DefaultPort, config.Server.Port)
	assert.Equal(t, model.DefaultPageTTL, config.Server.PageTTL)
	assert.Equal(t, loader.KindLocal, config.Source.Kind)
	assert.Equal(t, "data.csv", config.Source.Name)
	assert.Equal(t, filepath.Dir(path), config.Source.Dir)
	assert.Equal(t, model.DefaultFetchTimeout, config.Source.Timeout)
	assert.Equal(t, 50, config.Feed.SwipeThreshold)
	assert.Equal(t, 0.5, config.Feed.VisibilityThreshold)
	assert.Zero(t, config.Log.MaxSize)
}

func TestDefaultSourceDir(t *testing.T) {
	cfg := Config{Server: web.Config{DataDir: "/srv/public"}}
	cfg.applyDefaults("/etc/swipefeed/config.toml")
	assert.Equal(t, "/srv/public", cfg.Source.Dir)

	cfg = Config{}
	cfg.applyDefaults("/etc/swipefeed/config.toml")
	assert.Equal(t, "/etc/swipefeed", cfg.Source.Dir)
}

func TestValidate(t *testing.T) {
	const file = `
[server]
tls = true

[source]
kind = "http"

[feed]
visibility_threshold = 1.5
`
	path := setup(t, file)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required")
	assert.Contains(t, err.Error(), "certificate_path and key_file_path are required")
	assert.Contains(t, err.Error(), "visibility_threshold must be within [0, 1]")
}

func TestValidateUnknownKind(t *testing.T) {
	path := setup(t, "[source]\nkind = \"ftp\"\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported source kind "ftp"`)
}

func setup(t *testing.T, file string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(file), 0644))

	return path
}
