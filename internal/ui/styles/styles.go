package styles

import "github.com/charmbracelet/lipgloss"

var (
	Accent = lipgloss.Color("#f4722b")

	Black     = lipgloss.Color("#111111")
	Gray      = lipgloss.Color("#3e3e3e")
	LightGray = lipgloss.Color("#9a9a9a")
	White     = lipgloss.Color("#cccccc")

	Red  = lipgloss.Color("#B8383B")
	Blue = lipgloss.Color("#5885A2")

	Primary   = lipgloss.Color("#cf6a32")
	Item      = lipgloss.Color("#ffd700")
	Success   = lipgloss.Color("#4d7455")
	Highlight = lipgloss.Color("#8650ac")
	Muted     = lipgloss.Color("#476291")

	HeaderContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)

	CardContainer = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Blue).
			Padding(1, 4).
			Align(lipgloss.Center)

	Photo = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Foreground(Highlight).
		Bold(true).
		Padding(1, 3).
		Align(lipgloss.Center)
	PhotoDescription = lipgloss.NewStyle().Foreground(Gray).Italic(true)

	Name       = lipgloss.NewStyle().Foreground(White).Bold(true).MarginTop(1)
	Occupation = lipgloss.NewStyle().Foreground(Success).Align(lipgloss.Center)
	Link       = lipgloss.NewStyle().Foreground(Blue).Underline(true).MarginTop(1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Muted).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Muted).
			Padding(0, 2).
			MarginTop(1)
	ButtonActive = ButtonInactive.
			Foreground(Accent).
			BorderForeground(Accent)

	Divider = lipgloss.NewStyle().Foreground(LightGray).Margin(0, 1)

	PortfolioList = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(LightGray).
			MarginTop(1)
	Thumbnail = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(LightGray).
			Foreground(Highlight).
			Padding(0, 1).
			MarginRight(1)
	ItemTitle    = lipgloss.NewStyle().Foreground(Item).Bold(true)
	ItemSubtitle = lipgloss.NewStyle().Foreground(Muted)

	TitleBar = lipgloss.NewStyle().
			Bold(false).
			Align(lipgloss.Center).
			Background(Black).
			Foreground(Primary)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Success).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(Success).Bold(true).Align(lipgloss.Center).PaddingLeft(1).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	HelpBox = lipgloss.NewStyle().Padding(3)

	IconCollapsed = "▶"
	IconExpanded  = "▼"
	IconDivider   = "─"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}
