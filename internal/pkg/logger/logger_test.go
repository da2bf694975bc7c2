package logger

import (
	"bytes"
	"context"
	"encoding/json"
	log "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsTraceAndUser(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-1")
	ctx = context.WithValue(ctx, UserIDKey, uint64(9))
	l.InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "trace-1", rec[TraceIDKey])
	assert.EqualValues(t, 9, rec[UserIDKey])
}

func TestRemoteFilterHandlerDropsRecordsWithoutTrace(t *testing.T) {
	var local, remote bytes.Buffer
	h := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&local, nil),
		&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)},
	}}
	l := log.New(&ContextHandler{h})

	l.Info("no trace")
	assert.NotEmpty(t, local.String())
	assert.Empty(t, remote.String())

	l.InfoContext(context.WithValue(context.Background(), TraceIDKey, "t-2"), "with trace")
	assert.Contains(t, remote.String(), "t-2")
}
