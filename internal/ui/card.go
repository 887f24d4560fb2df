package ui

import (
	"log/slog"
	"strings"

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
	"github.com/muesli/reflow/wordwrap"
)

const (
	zoneButton = "portfolio"
	zoneLink   = "github"

	buttonLabel  = "Portfolio"
	minCardWidth = 16
	maxCardWidth = 48
)

// cardModel renders the profile and the collapsible portfolio list. The expanded state
// lives in the shared panel.State so it is never copied along with the model.
type cardModel struct {
	id       string
	profile  profile.Profile
	subtitle string
	state    *panel.State
	opener   profile.Opener
	width    int
}

func newCardModel(card profile.Profile, subtitle string, state *panel.State, opener profile.Opener) cardModel {
	return cardModel{
		id:       zone.NewPrefix(),
		profile:  card,
		subtitle: subtitle,
		state:    state,
		opener:   opener,
	}
}

// portfolioEntry is a single rendered row of the portfolio list. Description is the text
// alternative of the row thumbnail.
type portfolioEntry struct {
	Title       string
	Subtitle    string
	Description string
}

func portfolioEntries(items []string, subtitle string) []portfolioEntry {
	entries := make([]portfolioEntry, len(items))
	for idx, item := range items {
		entries[idx] = portfolioEntry{Title: item, Subtitle: subtitle, Description: item}
	}

	return entries
}

func (m cardModel) Init() tea.Cmd {
	return nil
}

func (m cardModel) Update(msg tea.Msg) (cardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case config.Config:
		m.profile = msg.Profile()
		m.subtitle = msg.PortfolioSubtitle
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Toggle):
			m.toggle()
		case key.Matches(msg, input.Default.Open):
			return m, m.openLink()
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		switch {
		case zone.Get(m.id + zoneButton).InBounds(msg):
			m.toggle()
		case zone.Get(m.id + zoneLink).InBounds(msg):
			return m, m.openLink()
		}
	}

	return m, nil
}

func (m cardModel) toggle() {
	slog.Debug("Portfolio clicked", slog.Bool("expanded", m.state.Expanded()))
	m.state.Toggle()
}

func (m cardModel) openLink() tea.Cmd {
	return command.OpenLink(m.opener, m.profile.GitHubURL())
}

func (m cardModel) contentWidth() int {
	return max(min(m.width-12, maxCardWidth), minCardWidth)
}

func (m cardModel) View() string {
	width := m.contentWidth()

	photo := lipgloss.JoinVertical(lipgloss.Center,
		styles.Photo.Render(m.profile.Initials()),
		styles.PhotoDescription.Render(wordwrap.String(m.profile.Description, width)))

	rows := []string{
		photo,
		styles.Divider.Render(strings.Repeat(styles.IconDivider, width)),
		styles.Name.Render(m.profile.Name),
		styles.Occupation.Render(wordwrap.String(m.profile.Occupation, width)),
		zone.Mark(m.id+zoneLink, styles.Link.Render(m.profile.Handle())),
		zone.Mark(m.id+zoneButton, m.renderButton()),
	}

	if items := m.state.Visible(); len(items) > 0 {
		rows = append(rows, m.renderPortfolio(portfolioEntries(items, m.subtitle), width))
	}

	return styles.CardContainer.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

func (m cardModel) renderButton() string {
	if m.state.Expanded() {
		return styles.ButtonActive.Render(styles.IconExpanded + " " + buttonLabel)
	}

	return styles.ButtonInactive.Render(styles.IconCollapsed + " " + buttonLabel)
}

func (m cardModel) renderPortfolio(entries []portfolioEntry, width int) string {
	rows := make([]string, len(entries))
	for idx, entry := range entries {
		text := []string{styles.ItemTitle.Render(wordwrap.String(entry.Title, width))}
		if entry.Subtitle != "" {
			text = append(text, styles.ItemSubtitle.Render(wordwrap.String(entry.Subtitle, width)))
		}

		rows[idx] = lipgloss.JoinHorizontal(lipgloss.Center,
			styles.Thumbnail.Render(profile.Monogram(entry.Description)),
			lipgloss.JoinVertical(lipgloss.Left, text...))
	}

	return styles.PortfolioList.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
