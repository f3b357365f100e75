package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCaptureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) { return "SELECT * FROM console_sessions", 1 }

func TestGormSlogLogger_LevelFromConfig(t *testing.T) {
	cfg := &config.Config{}
	l := newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Warn, l.level)

	cfg.Env.Debug = true
	l = newGormSlogLogger(slog.Default(), cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, l.level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newCaptureLogger(&buf), &config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("query errors are logged", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newCaptureLogger(&buf), &config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, assertErr("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("slow queries are warned", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newCaptureLogger(&buf), &config.Config{})
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries are silent at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newCaptureLogger(&buf), &config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("cancelled queries are warnings", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newCaptureLogger(&buf), &config.Config{})
		l.Trace(ctx, time.Now(), sqlFn, context.Canceled)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "GORM query failed")
	})

	t.Run("request logger and redacted literals", func(t *testing.T) {
		var base, req bytes.Buffer
		reqCtx := deliverycontext.WithLogger(ctx, newCaptureLogger(&req).With(slog.String("request_id", "req-1")))
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l := newGormSlogLogger(newCaptureLogger(&base), cfg)
		l.Trace(reqCtx, time.Now(), func() (string, int64) {
			return `SELECT * FROM "console_sessions" WHERE upstream_token = 'secret-token' AND note = 'it''s'`, 1
		}, nil)

		assert.Empty(t, base.String())
		assert.Contains(t, req.String(), "request_id=req-1")
		assert.Contains(t, req.String(), "upstream_token = '?'")
		assert.NotContains(t, req.String(), "secret-token")
		assert.NotContains(t, req.String(), "it''s")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormSlogLogger(newCaptureLogger(&buf), &config.Config{}).LogMode(logger.Silent)
		l.Trace(ctx, time.Now(), sqlFn, assertErr("boom"))
		assert.Empty(t, buf.String())
	})
}
