package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	footerHint    = "↑/↓ move  enter open  esc back  ctrl+c quit"
	bottomBarRows = 2 // status line + filter prompt
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // already styled; truncate ANSI-aware and skip style wrapping
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.menuHeader()
	if m.hasSidePreview() {
		return m.viewSideBySide(header)
	}
	return m.viewVertical(header)
}

func (m *Model) viewVertical(header string) string {
	lines := m.contentLines(header, m.width)
	lines = limitHeight(lines, m.height-bottomBarRows, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines) + "\n" + m.bottomBar()
}

// viewSideBySide renders the rows on the left and the book summary of the
// highlighted theme on the right.
func (m *Model) viewSideBySide(header string) string {
	menuW := m.menuColumnWidth()
	prevW := m.previewPanelWidth()

	panelH := max(m.height-bottomBarRows, 1)
	lines := m.contentLines(header, menuW)
	if len(lines) > panelH {
		lines = lines[:panelH]
	}
	for len(lines) < panelH {
		lines = append(lines, styledLine{})
	}
	lines = applyWidth(lines, menuW)

	leftRows := strings.Split(renderLines(lines), "\n")
	for i, row := range leftRows {
		w := lipgloss.Width(row)
		if w > menuW {
			leftRows[i] = truncate.StringWithTail(row, uint(menuW-1), "…")
		} else if w < menuW {
			leftRows[i] = row + strings.Repeat(" ", menuW-w)
		}
	}
	left := strings.Join(leftRows, "\n")
	right := m.renderPreviewPanel(m.activePreview(), prevW, panelH)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + m.bottomBar()
}

// contentLines builds everything above the bottom bar: header, visible rows,
// info line and footer.
func (m *Model) contentLines(header string, width int) []styledLine {
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: m.styles.Header})
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: m.styles.Info})
		} else {
			items, start := current.Visible(m.maxVisibleItems())
			for i, item := range items {
				lines = append(lines, m.buildItemLine(item.Label, start+i, current, width))
			}
		}
	}
	if m.infoMsg != "" {
		lines = append(lines, styledLine{}, styledLine{text: m.infoMsg, style: m.styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerHint, style: m.styles.Footer})
	}
	return lines
}

func (m *Model) bottomBar() string {
	var status styledLine
	switch {
	case m.errMsg != "":
		status = styledLine{text: "Error: " + m.errMsg, style: m.styles.Error}
	case m.loading:
		status = styledLine{text: fmt.Sprintf("Loading %s…", m.pendingLabel), style: m.styles.Info}
	}
	return renderLines(applyWidth([]styledLine{status, {text: m.filterPrompt(), raw: true}}, m.width))
}

// buildItemLine pads the row to width so the selection background spans the
// whole column.
func (m *Model) buildItemLine(label string, idx int, current *level, width int) styledLine {
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = m.styles.SelectedItemIndicator
		lineStyle = m.styles.SelectedItem
	}
	text := "▌ " + label
	if width > 0 {
		if pad := width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) menuHeader() string {
	if len(m.stack) <= 1 {
		return m.title
	}
	segments := []string{m.title}
	for _, l := range m.stack[1:] {
		if title := strings.TrimSpace(l.Title); title != "" {
			segments = append(segments, title)
		}
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := bottomBarRows + 1 // header
	if m.infoMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	return max(m.height-used, 1)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	return append(trimmed, styledLine{text: truncateText("…", width)})
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
