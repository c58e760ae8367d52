package loader

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mxpv/swipefeed/pkg/model"
)

// Local reads the data file from a directory on disk.
type Local struct {
	rootDir string
	name    string
}

func NewLocal(rootDir string, name string) (*Local, error) {
	if name == "" {
		name = model.DefaultDataFile
	}

	cleaned := filepath.Clean(name)
	if filepath.IsAbs(name) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return nil, errors.Errorf("invalid data file name: %s", name)
	}

	return &Local{rootDir: rootDir, name: name}, nil
}

func (l *Local) Name() string {
	return l.name
}

func (l *Local) Load(_ context.Context) (string, error) {
	path := filepath.Join(l.rootDir, l.name)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &model.FetchError{Resource: l.name, StatusCode: http.StatusNotFound}
		}
		return "", errors.Wrapf(err, "failed to read %s", path)
	}

	return string(data), nil
}
