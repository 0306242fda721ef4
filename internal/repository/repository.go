package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DefaultQueryTimeout bounds a store call when no timeout is configured
const DefaultQueryTimeout = 5 * time.Second

// base carries the pool and the per-call timeout shared by every repository
type base struct {
	db      *gorm.DB
	timeout time.Duration
}

func newBase(db *gorm.DB, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	return base{db: db, timeout: timeout}
}

// conn returns a session bound to a context that expires after the query timeout
func (b base) conn(ctx context.Context) (*gorm.DB, context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	return b.db.WithContext(ctx), ctx, cancel
}
