package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tagdex/tagdex/internal/facet"
)

var (
	// titleStyle for the summary headline
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted label text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// warnStyle for shortfall notices
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// FormatSummary renders the end-of-run summary box.
func FormatSummary(w io.Writer, scanned int, result facet.Result) {
	line1 := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Files:"), scanned,
		dimStyle.Render("Documents:"), result.Documents,
		dimStyle.Render("Tags:"), result.DistinctTags,
	)
	line2 := fmt.Sprintf("%s %d of %d combinations",
		dimStyle.Render("Indices:"), len(result.Pages), result.Possible,
	)
	if result.Possible > 0 && len(result.Pages)*2 < result.Possible {
		line2 += "  " + warnStyle.Render("(sparse)")
	}

	content := titleStyle.Render("Index build complete") + "\n" + line1 + "\n" + line2
	fmt.Fprintln(w, boxStyle.Render(content))
}
