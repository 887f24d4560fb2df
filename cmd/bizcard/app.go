package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/bizcard/internal/config"
	"github.com/leighmacdonald/bizcard/internal/panel"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages from background systems into the UI.
type App struct {
	ui            UI
	state         *panel.State
	configUpdates <-chan config.Config
	unsubscribe   func()
}

// NewApp returns a new application instance. Panel transitions are logged from here on, routing
// config updates requires calling Start().
func NewApp(state *panel.State, configUpdates <-chan config.Config) *App {
	app := &App{
		state:         state,
		configUpdates: configUpdates,
	}
	app.unsubscribe = state.Subscribe(app.onPanelChange)

	return app
}

// Start runs the routing loop until the context is cancelled. The panel subscription is released
// on return.
func (app *App) Start(ctx context.Context) {
	defer app.unsubscribe()

	for {
		select {
		case conf := <-app.configUpdates:
			slog.Info("Config updated", slog.String("name", conf.Name))
			if app.ui != nil {
				app.ui.Send(conf)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) onPanelChange(expanded bool) {
	slog.Info("Portfolio toggled", slog.Bool("expanded", expanded))
}
