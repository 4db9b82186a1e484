// Package testutil builds throwaway databases and loggers for tests.
package testutil

import (
	"io"
	"testing"

	"projtrack/internal/config"
	"projtrack/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB opens a private in-memory sqlite database with every table migrated. It is
// closed when the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := models.Open(&config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewLogger returns a logger that discards its output.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// Seed inserts rows in order, failing the test on the first error.
func Seed(t testing.TB, db *gorm.DB, rows ...interface{}) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, db.Create(row).Error)
	}
}
