package ui

import (
	"github.com/leighmacdonald/bizcard/internal/ui/styles"
)

func renderTitleBar(width int, value string) string {
	return styles.TitleBar.Width(max(width-2, 0)).Render(value)
}
