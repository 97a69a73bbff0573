package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, debug), &buf
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) {
		return sql, rows
	}
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		begin    time.Time
		err      error
		contains []string
		empty    bool
	}{
		{
			name:     "query error",
			begin:    time.Now(),
			err:      errors.New("relation does not exist"),
			contains: []string{"GORM query failed", "relation does not exist", "component=station-store"},
		},
		{
			name:  "record not found is ignored",
			begin: time.Now(),
			err:   gorm.ErrRecordNotFound,
			empty: true,
		},
		{
			name:     "slow query",
			begin:    time.Now().Add(-time.Second),
			contains: []string{"GORM slow query", "slowThreshold"},
		},
		{
			name:  "fast query without debug",
			begin: time.Now(),
			empty: true,
		},
		{
			name:     "fast query with debug",
			debug:    true,
			begin:    time.Now(),
			contains: []string{"GORM query", "SELECT * FROM stations"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gormLogger, buf := newBufferedGormLogger(tt.debug)

			gormLogger.Trace(context.Background(), tt.begin, sqlFn("SELECT * FROM stations", 3), tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	gormLogger, buf := newBufferedGormLogger(false)

	gormLogger.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	gormLogger.LogMode(logger.Info).Info(context.Background(), "shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")

	buf.Reset()
	gormLogger.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "stations_pkey" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}
