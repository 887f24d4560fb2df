package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/bizcard/internal/config"
	"github.com/leighmacdonald/bizcard/internal/panel"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (f *fakeUI) Send(msg tea.Msg) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.msgs = append(f.msgs, msg)
}

func (f *fakeUI) Run() error {
	return nil
}

func (f *fakeUI) received() []tea.Msg {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]tea.Msg(nil), f.msgs...)
}

func TestAppForwardsConfigUpdates(t *testing.T) {
	updates := make(chan config.Config)
	recorder := &fakeUI{}

	app := NewApp(panel.New(), updates)
	app.ui = recorder

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Start(ctx)
		close(done)
	}()

	updates <- config.Config{Name: "Ada Lovelace"}

	require.Eventually(t, func() bool {
		return len(recorder.received()) == 1
	}, time.Second, time.Millisecond*10)
	require.Equal(t, config.Config{Name: "Ada Lovelace"}, recorder.received()[0])

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("app did not stop")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func captureLogs(t *testing.T) *syncBuffer {
	t.Helper()

	buf := &syncBuffer{}
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	return buf
}

func TestAppLogsToggleBeforeStart(t *testing.T) {
	logs := captureLogs(t)
	state := panel.New()

	app := NewApp(state, make(chan config.Config))
	state.Toggle()

	require.Contains(t, logs.String(), "Portfolio toggled")
	require.Contains(t, logs.String(), "expanded=true")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app.Start(ctx)

	state.Toggle()
	require.Equal(t, 1, strings.Count(logs.String(), "Portfolio toggled"))
}
