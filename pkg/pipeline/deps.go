//go:generate mockgen -source=deps.go -destination=deps_mock_test.go -package=pipeline

package pipeline

import (
	"context"
)

type dataSource interface {
	Name() string
	Load(ctx context.Context) (string, error)
}
