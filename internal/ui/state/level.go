package state

import "github.com/jewfaith/organizer/internal/menu"

// Level is one screen of the browser stack: the full row set, the rows
// surviving the filter, the highlighted row and the scroll offset.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Node           *menu.Node
}

// NewLevel builds a level with the cursor on the first row.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		Node:       node,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the visible index of the row with the given ID, or -1.
func (l *Level) IndexOf(id string) int {
	for i, item := range l.Items {
		if id != "" && item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the highlighted row.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the row set and re-applies the filter, keeping the
// cursor and offset inside the new bounds.
func (l *Level) UpdateItems(items []menu.Item) {
	l.Full = append([]menu.Item(nil), items...)
	l.refilter()
}

func (l *Level) refilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	l.ViewportOffset = clamp(l.ViewportOffset, 0, len(l.Items)-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
