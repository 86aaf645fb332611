package state

import "github.com/jewfaith/organizer/internal/menu"

// MoveCursor shifts the cursor by delta rows. With wrap set, moving past
// either end continues from the other; otherwise the cursor stops at the
// edge. It reports whether the cursor moved.
func (l *Level) MoveCursor(delta int, wrap bool) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	next := l.Cursor + delta
	if wrap {
		next = ((next % n) + n) % n
	}
	l.Cursor = clamp(next, 0, n-1)
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first row.
func (l *Level) MoveCursorHome() bool {
	return l.MoveCursor(-len(l.Items), false)
}

// MoveCursorEnd moves the cursor to the last row.
func (l *Level) MoveCursorEnd() bool {
	return l.MoveCursor(len(l.Items), false)
}

// MoveCursorPageUp moves the cursor up one page of maxVisible rows.
func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.MoveCursor(-l.pageSize(maxVisible), false)
}

// MoveCursorPageDown moves the cursor down one page of maxVisible rows.
func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.MoveCursor(l.pageSize(maxVisible), false)
}

func (l *Level) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Items) {
		return len(l.Items)
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport the minimum amount that keeps the
// cursor within maxVisible rows. A non-positive maxVisible means unlimited.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if n == 0 || maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	offset := clamp(l.ViewportOffset, 0, n-maxVisible)
	switch {
	case l.Cursor < offset:
		offset = l.Cursor
	case l.Cursor >= offset+maxVisible:
		offset = l.Cursor - maxVisible + 1
	}
	l.ViewportOffset = clamp(offset, 0, n-maxVisible)
}

// Visible returns the rows inside the viewport and the index of the first.
func (l *Level) Visible(maxVisible int) ([]menu.Item, int) {
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items, 0
	}
	start := clamp(l.ViewportOffset, 0, len(l.Items)-maxVisible)
	return l.Items[start : start+maxVisible], start
}
