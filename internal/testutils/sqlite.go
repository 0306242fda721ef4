package testutils

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"standup-api-backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var sqliteSeq atomic.Int64

// NewSQLiteDB opens a private in-memory sqlite database with the full schema and
// foreign keys enforced. A single pooled connection keeps the memory database alive
// and serialises concurrent writers the way a row lock would.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, sqliteSeq.Add(1))

	db, err := database.Open(sqlite.Open(dsn), &database.Options{
		LogLevel:     logger.Silent,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err, "open sqlite")

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
