package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	textfmt "github.com/jewfaith/organizer/internal/format/text"
	"github.com/jewfaith/organizer/internal/menu"
)

const (
	previewPanelMinWidth = 24  // below this the panel is dropped
	previewPanelFraction = 0.4 // share of the terminal width given to the panel
	previewMinTotalWidth = 60
)

type previewData struct {
	label string
	lines []string
	err   string
}

// activePreview summarises the highlighted theme on the theme list. Other
// levels have no preview.
func (m *Model) activePreview() *previewData {
	current := m.currentLevel()
	if current == nil || current.ID != menu.RootID {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	name, _ := menu.ThemeName(item.ID)
	data := &previewData{label: textfmt.Capitalize(name)}
	lines, err := menu.PreviewLines(m.menuContext(), item.ID)
	if err != nil {
		data.err = err.Error()
		return data
	}
	data.lines = lines
	return data
}

// hasSidePreview reports whether the preview panel is drawn to the right of
// the rows.
func (m *Model) hasSidePreview() bool {
	return m.activePreview() != nil && m.previewPanelWidth() > 0
}

// previewPanelWidth returns the panel width, or 0 when the terminal is too
// narrow to split.
func (m *Model) previewPanelWidth() int {
	if m.width < previewMinTotalWidth {
		return 0
	}
	w := int(float64(m.width) * previewPanelFraction)
	if w < previewPanelMinWidth {
		return 0
	}
	return w
}

func (m *Model) menuColumnWidth() int {
	return m.width - m.previewPanelWidth()
}

// renderPreviewPanel draws the bordered panel with exactly height rows of
// totalWidth columns.
func (m *Model) renderPreviewPanel(preview *previewData, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := max(totalWidth-2, 1)
	innerH := max(height-2, 1)
	border := m.styles.PreviewBorder

	title := " Books "
	body := m.styles.PreviewBody
	var content []string
	if preview != nil {
		if label := strings.TrimSpace(preview.label); label != "" {
			title = fmt.Sprintf(" Books: %s ", label)
		}
		content = preview.lines
		if preview.err != "" {
			content = []string{preview.err}
			body = m.styles.Error
		}
	}
	if lipgloss.Width(title) > innerW-2 {
		title = truncate.StringWithTail(title, uint(max(innerW-2, 0)), "… ")
	}
	dashes := max(innerW-1-lipgloss.Width(title), 0)

	rows := make([]string, 0, height)
	rows = append(rows, border.Render(tlc+hz)+m.styles.PreviewTitle.Render(title)+border.Render(strings.Repeat(hz, dashes)+trc))
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(content) {
			line = content[i]
		}
		line = fitWidth(line, innerW)
		rows = append(rows, border.Render(vt)+body.Render(line)+border.Render(vt))
	}
	rows = append(rows, border.Render(blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

// fitWidth truncates or pads s to exactly width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = truncate.StringWithTail(s, uint(width), "…")
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
