package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestNewHandler_MasksAndDecorates(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(newHandler(buf, "formcheck", nil, []string{" Email ", "phone_number", ""}, slog.LevelInfo))

	ctx := SetCorrelationID(context.Background(), "cid-123")
	logger.InfoContext(ctx, "form checked",
		"email", "ada@example.com",
		"field", "name",
		slog.Group("form", "phone_number", "+12345678901", "name", "Ada"),
		"body", map[string]any{"EMAIL": "ada@example.com", "nested": []any{map[string]any{"phone_number": "1"}}},
	)

	line := decodeLine(t, buf)
	assert.Equal(t, "form checked", line["msg"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Contains(t, line, "ts")
	assert.Equal(t, "cid-123", line["_cID"])
	assert.Equal(t, "formcheck", line["service"])
	assert.Equal(t, "***", line["email"])
	assert.Equal(t, "name", line["field"])
	assert.Equal(t, map[string]any{"phone_number": "***", "name": "Ada"}, line["form"])
	assert.Equal(t, map[string]any{
		"EMAIL":  "***",
		"nested": []any{map[string]any{"phone_number": "***"}},
	}, line["body"])
}

func TestNewHandler_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(newHandler(buf, "formcheck", nil, nil, ParseLevel("warn")))

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.With("email", "kept@example.com").Warn("kept")
	line := decodeLine(t, buf)
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "formcheck", line["service"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCorrelationID(ctx))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(ctx, "abc")))
}

func TestNew_Disabled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ins, err := New(context.Background(), &Config{Enabled: false, ServiceName: "formcheck"})
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "noop")
	span.End()
	assert.NoError(t, ins.Shutdown(context.Background()))
}

func TestNew_NilConfig(t *testing.T) {
	ins, err := New(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, ins.Shutdown(context.Background()))
}

func TestSampleRatio(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "Negative", in: -0.5, want: 0},
		{name: "InRange", in: 0.25, want: 0.25},
		{name: "AboveOne", in: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, sampleRatio(tt.in), 1e-9)
		})
	}
}

func TestTelemetry_ShutdownRunsAll(t *testing.T) {
	errFirst := errors.New("traces")
	errLast := errors.New("logs")
	calls := 0

	tel := &telemetry{shutdowns: []func(context.Context) error{
		func(context.Context) error { calls++; return errFirst },
		func(context.Context) error { calls++; return nil },
		func(context.Context) error { calls++; return errLast },
	}}

	err := tel.Shutdown(context.Background())
	assert.Equal(t, 3, calls)
	require.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errLast)
}
