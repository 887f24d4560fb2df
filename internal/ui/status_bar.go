package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bizcard/internal/config"
	"github.com/leighmacdonald/bizcard/internal/ui/command"
	"github.com/leighmacdonald/bizcard/internal/ui/input"
	"github.com/leighmacdonald/bizcard/internal/ui/styles"
)

type statusBarModel struct {
	width       int
	statusMsg   string
	statusError bool
	version     string
}

func newStatusBarModel(version string) statusBarModel {
	return statusBarModel{version: version}
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (statusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case command.StatusMsg:
		return m.setStatus(msg.Message, msg.Err)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case command.PanelChangedMsg:
		if msg.Expanded {
			return m.setStatus("Portfolio shown", false)
		}

		return m.setStatus("Portfolio hidden", false)
	case command.LinkOpenedMsg:
		if msg.Err != nil {
			return m.setStatus("Could not open "+msg.URL, true)
		}

		return m.setStatus("Opened "+msg.URL, false)
	case config.Config:
		return m.setStatus("Config reloaded", false)
	}

	return m, nil
}

func (m statusBarModel) setStatus(message string, isErr bool) (statusBarModel, tea.Cmd) {
	m.statusMsg = message
	m.statusError = isErr

	return m, command.ClearErrorAfter(command.ClearMessageTimeout)
}

func (m statusBarModel) View() string {
	helpKey := input.Default.Help.Help()
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", helpKey.Key, helpKey.Desc)))

	status := m.status()
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(status), 0)

	return lipgloss.NewStyle().
		Width(m.width).
		Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), status))
}

func (m statusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
