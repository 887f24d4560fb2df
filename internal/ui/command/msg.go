package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/bizcard/internal/profile"
)

const ClearMessageTimeout = time.Second * 5

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// PanelChangedMsg is delivered after the portfolio panel state has been toggled.
type PanelChangedMsg struct {
	Expanded bool
}

// WaitForPanelChange blocks until the next panel notification arrives on changes. Once changes
// is closed it returns a nil message, which ends the wait loop.
func WaitForPanelChange(changes <-chan bool) tea.Cmd {
	return func() tea.Msg {
		expanded, ok := <-changes
		if !ok {
			return nil
		}

		return PanelChangedMsg{Expanded: expanded}
	}
}

type LinkOpenedMsg struct {
	URL string
	Err error
}

// OpenLink hands the url to the opener outside of the update loop.
func OpenLink(opener profile.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return LinkOpenedMsg{URL: url, Err: opener.Open(url)}
	}
}
