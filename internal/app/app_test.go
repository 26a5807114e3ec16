package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseTimezone(t *testing.T) {
	original := time.Local
	t.Cleanup(func() { time.Local = original })

	tests := []struct {
		name    string
		tz      string
		want    string
		wantErr bool
	}{
		{name: "Named", tz: "Asia/Jakarta", want: "Asia/Jakarta"},
		{name: "UTC", tz: "UTC", want: "UTC"},
		{name: "EmptyKeepsCurrent", tz: "", want: original.String()},
		{name: "Unknown", tz: "Mars/Olympus_Mons", want: original.String(), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			time.Local = original

			err := useTimezone(tt.tz)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, time.Local.String())
		})
	}
}

func TestUseTimezone_AffectsLocalTimes(t *testing.T) {
	original := time.Local
	t.Cleanup(func() { time.Local = original })

	require.NoError(t, useTimezone("Asia/Jakarta"))

	got := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, time.January, 2, 3, 0, 0, 0, time.UTC), got.UTC())
}

func TestStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ran []string

	a := &App{
		ctx:        ctx,
		cancel:     cancel,
		httpServer: &http.Server{},
		closers: []closer{
			{name: "first", fn: func(context.Context) error {
				ran = append(ran, "first")
				return errors.New("close failed")
			}},
			{name: "second", fn: func(context.Context) error {
				ran = append(ran, "second")
				return nil
			}},
		},
	}

	a.Stop(context.Background())

	assert.Equal(t, []string{"first", "second"}, ran)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestStart_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		ctx:        ctx,
		cancel:     cancel,
		httpServer: &http.Server{Addr: "127.0.0.1:0"},
	}

	done := a.Start()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("start did not return after cancel")
	}

	require.NoError(t, a.httpServer.Shutdown(context.Background()))
}
