package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/bizcard/internal/config"
	"github.com/leighmacdonald/bizcard/internal/panel"
	"github.com/leighmacdonald/bizcard/internal/profile"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type page int

const (
	pageMain page = iota
	pageHelp
)

type UI struct {
	program *tea.Program
	root    *rootModel
}

// New creates the card screen. The panel state is owned by the caller so it can subscribe to
// changes before the program starts.
func New(ctx context.Context, conf config.Config, state *panel.State, opener profile.Opener,
	buildVersion string, configPath string,
) *UI {
	zone.NewGlobal()

	root := newRootModel(conf, state, opener, buildVersion, configPath)
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(conf.FPS),
	}
	if conf.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return &UI{
		program: tea.NewProgram(root, opts...),
		root:    root,
	}
}

func (t UI) Run() error {
	defer t.root.close()

	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
