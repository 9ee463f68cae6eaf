package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

type recordingHandler struct {
	min  slog.Level
	got  []string
	fail bool
}

func (h *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.min
}

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.got = append(h.got, r.Message)
	if h.fail {
		return errors.New("sink down")
	}
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestMultiHandlerFanOut(t *testing.T) {
	stdout := &recordingHandler{min: slog.LevelInfo}
	sink := &recordingHandler{min: slog.LevelError}
	m := NewMultiHandler(stdout, sink)

	ctx := context.Background()
	info := slog.NewRecord(time.Now(), slog.LevelInfo, "started", 0)
	errRec := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)

	require.NoError(t, m.Handle(ctx, info))
	require.NoError(t, m.Handle(ctx, errRec))

	assert.Equal(t, []string{"started", "boom"}, stdout.got)
	assert.Equal(t, []string{"boom"}, sink.got, "info stays out of the error sink")
}

func TestMultiHandlerFailingSinkDoesNotBlockOthers(t *testing.T) {
	failing := &recordingHandler{min: slog.LevelInfo, fail: true}
	healthy := &recordingHandler{min: slog.LevelInfo}
	m := NewMultiHandler(failing, healthy)

	rec := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	err := m.Handle(context.Background(), rec)

	require.Error(t, err)
	assert.Equal(t, []string{"boom"}, healthy.got)
}
