package domain

import (
	"context"
	"time"
)

type StateRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Prune(ctx context.Context, before time.Time) (int64, error)
}
