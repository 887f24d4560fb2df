package ui

import (
	"log/slog"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bizcard/internal/config"
	"github.com/leighmacdonald/bizcard/internal/panel"
	"github.com/leighmacdonald/bizcard/internal/profile"
	"github.com/leighmacdonald/bizcard/internal/ui/command"
	"github.com/leighmacdonald/bizcard/internal/ui/input"
	"github.com/leighmacdonald/bizcard/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

const appTitle = "bizcard"

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	currentPage  page
	height       int
	width        int
	cardModel    cardModel
	statusModel  statusBarModel
	helpModel    helpModel
	panelChanges chan bool
	unsubscribe  func()
	closeOnce    *sync.Once
	notice       string
}

func newRootModel(conf config.Config, state *panel.State, opener profile.Opener, buildVersion string, configPath string) *rootModel {
	// Only the latest value matters, the view reads the state directly when rendering.
	changes := make(chan bool, 1)
	unsubscribe := state.Subscribe(func(expanded bool) {
		select {
		case <-changes:
		default:
		}
		changes <- expanded
	})

	return &rootModel{
		currentPage:  pageMain,
		cardModel:    newCardModel(conf.Profile(), conf.PortfolioSubtitle, state, opener),
		statusModel:  newStatusBarModel(buildVersion),
		helpModel:    newHelpModel(buildVersion, configPath),
		panelChanges: changes,
		unsubscribe:  unsubscribe,
		closeOnce:    &sync.Once{},
		notice:       startupNotice(opener, configPath),
	}
}

func startupNotice(opener profile.Opener, configPath string) string {
	_, logOnly := opener.(profile.LogOpener)

	switch {
	case logOnly:
		return "Links are logged, not opened"
	case configPath == "":
		return "Using defaults, run bizcard init to create a config"
	default:
		return ""
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(appTitle),
		m.cardModel.Init(),
		m.statusModel.Init(),
		m.helpModel.Init(),
		m.showNotice(),
		command.WaitForPanelChange(m.panelChanges),
	)
}

func (m rootModel) showNotice() tea.Cmd {
	if m.notice == "" {
		return nil
	}

	return command.SetStatusMessage(m.notice, false)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
	case tea.KeyMsg:
		if !m.isInitialized() {
			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			if m.currentPage == pageHelp {
				m.currentPage = pageMain
			} else {
				m.currentPage = pageHelp
			}

			return m, nil
		case key.Matches(msg, input.Default.Back):
			m.currentPage = pageMain

			return m, nil
		}

		// The card is the only thing accepting input and it's hidden behind the help page.
		if m.currentPage != pageMain {
			return m, nil
		}
	case tea.MouseMsg:
		if !m.isInitialized() || m.currentPage != pageMain {
			return m, nil
		}
	case command.PanelChangedMsg:
		return m.propagate(inMsg, command.WaitForPanelChange(m.panelChanges))
	}

	return m.propagate(inMsg)
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	hdr := styles.HeaderContainerStyle.Width(m.width).Render(renderTitleBar(m.width, appTitle))
	ftr := styles.FooterContainerStyle.Width(m.width).Render(m.statusModel.View())
	contentViewPortHeight := max(m.height-lipgloss.Height(hdr)-lipgloss.Height(ftr), 0)

	var content string
	switch m.currentPage {
	case pageHelp:
		content = m.helpModel.View()
	case pageMain:
		content = m.cardModel.View()
	}

	ctr := lipgloss.Place(m.width, contentViewPortHeight, lipgloss.Center, lipgloss.Center, content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, hdr, ctr, ftr))
}

func (m rootModel) isInitialized() bool {
	return m.height != 0 && m.width != 0
}

func (m rootModel) propagate(msg tea.Msg, extra ...tea.Cmd) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 3, 3+len(extra))

	m.cardModel, cmds[0] = m.cardModel.Update(msg)
	m.statusModel, cmds[1] = m.statusModel.Update(msg)
	m.helpModel, cmds[2] = m.helpModel.Update(msg)

	return m, tea.Batch(append(cmds, extra...)...)
}

// close detaches from the panel state and releases any pending WaitForPanelChange.
func (m rootModel) close() {
	m.closeOnce.Do(func() {
		m.unsubscribe()
		close(m.panelChanges)
	})
}

// logMsg is useful for debugging events. Tail the log file ~/.config/bizcard/bizcard.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
