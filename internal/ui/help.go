package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/bizcard/internal/ui/input"
	"github.com/leighmacdonald/bizcard/internal/ui/styles"
)

func newHelpModel(buildVersion string, configPath string) helpModel {
	return helpModel{
		helpView:     help.New(),
		configPath:   configPath,
		buildVersion: buildVersion,
	}
}

type helpModel struct {
	helpView     help.Model
	configPath   string
	buildVersion string
}

func (m helpModel) Init() tea.Cmd {
	return nil
}

func (m helpModel) Update(msg tea.Msg) (helpModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.helpView.Width = msg.Width
	}

	return m, nil
}

func (m helpModel) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Toggle,
			input.Default.Open,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Help,
			input.Default.Back,
			input.Default.Quit,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top, styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	configPath := m.configPath
	if configPath == "" {
		configPath = "(defaults)"
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Config Path", configPath),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
