package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/infra/persistence/sqlitetest"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestQueryLogger_Judge(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowThreshold: 100 * time.Millisecond}}
	l := newQueryLogger(slog.Default(), cfg)

	tests := []struct {
		name    string
		sql     string
		elapsed time.Duration
		err     error
		want    queryVerdict
	}{
		{name: "fast query", sql: "SELECT 1", elapsed: time.Millisecond},
		{name: "not found", sql: "SELECT 1", err: gorm.ErrRecordNotFound},
		{name: "code collision", sql: "INSERT", err: gorm.ErrDuplicatedKey},
		{name: "failure", sql: "UPDATE", err: errors.New("conn reset"), want: queryVerdict{slog.LevelError, "GORM query failed"}},
		{name: "slow query", sql: "SELECT * FROM guest_cards", elapsed: time.Second, want: queryVerdict{slog.LevelWarn, "GORM slow query"}},
		{name: "slow lock", sql: `SELECT * FROM "guest_cards" WHERE id = $1 FOR UPDATE`, elapsed: time.Second, want: queryVerdict{slog.LevelWarn, "Row lock wait"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.judge(tt.sql, tt.elapsed, tt.err))
		})
	}

	silent := l.LogMode(gormlogger.Silent).(*queryLogger)
	assert.Equal(t, queryVerdict{}, silent.judge("UPDATE", 0, errors.New("boom")))

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	debug := newQueryLogger(slog.Default(), debugCfg)
	assert.Equal(t, queryVerdict{slog.LevelInfo, "GORM query"}, debug.judge("SELECT 1", time.Millisecond, nil))
	assert.Equal(t, defaultSlowQuery, debug.slowQuery)
}

func TestQueryLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newQueryLogger(slog.New(slog.NewJSONHandler(&buf, nil)), nil)
	rendered := false
	fc := func() (string, int64) {
		rendered = true

		return "SELECT 1", 1
	}

	l.Trace(context.Background(), time.Now(), fc, nil)
	assert.False(t, rendered)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), fc, errors.New("conn reset"))
	assert.True(t, rendered)
	assert.Contains(t, buf.String(), `"msg":"GORM query failed"`)
	assert.Contains(t, buf.String(), `"error":"conn reset"`)
}

func TestPoolWatch_Observe(t *testing.T) {
	w := &poolWatch{prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Millisecond}}

	_, _, ok := w.observe(sql.DBStats{WaitCount: 3, WaitDuration: time.Millisecond})
	assert.False(t, ok)

	level, attrs, ok := w.observe(sql.DBStats{WaitCount: 5, WaitDuration: 11 * time.Millisecond, InUse: 4})
	require.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avgWait", 5*time.Millisecond))

	level, _, ok = w.observe(sql.DBStats{WaitCount: 6, WaitDuration: 111 * time.Millisecond})
	require.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestPrepareSchema(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	require.NoError(t, prepareSchema(sqlitetest.Open(t), &config.DatabaseConfig{AutoMigrate: true}, logger))
	assert.Contains(t, buf.String(), "Loyalty schema migrated")

	buf.Reset()
	require.NoError(t, prepareSchema(sqlitetest.Open(t), nil, logger))
	assert.Empty(t, buf.String())

	empty, err := gorm.Open(sqlite.Open("file:empty-schema?mode=memory"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, prepareSchema(empty, &config.DatabaseConfig{}, logger))
	assert.Contains(t, buf.String(), "ledger table not found")
}
