package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jewfaith/organizer/internal/menu"
)

// SetFilter replaces the filter text and caret position and re-filters the
// rows. Starting a filter remembers the cursor; clearing it restores the
// remembered cursor.
func (l *Level) SetFilter(query string, caret int) {
	was := strings.TrimSpace(l.Filter)
	now := strings.TrimSpace(query)
	if was == "" && now != "" {
		l.LastCursor = l.Cursor
	}
	l.Filter = query
	l.FilterCursor = clamp(caret, 0, len([]rune(query)))
	l.refilter()
	switch {
	case now != "":
		l.Cursor = max(BestMatchIndex(l.Items, now), 0)
	case was != "":
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
	}
}

// FilterCursorPos returns the caret as a rune offset inside the filter.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// editFilter applies fn to the filter runes and caret. Nothing happens when
// fn reports no change.
func (l *Level) editFilter(fn func(runes []rune, pos int) ([]rune, int, bool)) bool {
	runes, pos, changed := fn([]rune(l.Filter), l.FilterCursorPos())
	if !changed {
		return false
	}
	l.SetFilter(string(runes), pos)
	return true
}

// moveCaret applies fn to the caret only.
func (l *Level) moveCaret(fn func(runes []rune, pos int) int) bool {
	pos := l.FilterCursorPos()
	next := fn([]rune(l.Filter), pos)
	if next == pos {
		return false
	}
	l.FilterCursor = next
	return true
}

// InsertFilterText inserts text at the caret.
func (l *Level) InsertFilterText(text string) bool {
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		insert := []rune(text)
		if len(insert) == 0 {
			return nil, 0, false
		}
		out := make([]rune, 0, len(runes)+len(insert))
		out = append(append(append(out, runes[:pos]...), insert...), runes[pos:]...)
		return out, pos + len(insert), true
	})
}

// DeleteFilterRuneBackward removes the rune before the caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		if pos == 0 {
			return nil, 0, false
		}
		return append(runes[:pos-1:pos-1], runes[pos:]...), pos - 1, true
	})
}

// DeleteFilterWordBackward removes the word before the caret together with
// any spaces between it and the caret.
func (l *Level) DeleteFilterWordBackward() bool {
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		start := wordStart(runes, pos)
		if start == pos {
			return nil, 0, false
		}
		return append(runes[:start:start], runes[pos:]...), start, true
	})
}

// MoveFilterCursorStart moves the caret to the start of the filter.
func (l *Level) MoveFilterCursorStart() bool {
	return l.moveCaret(func([]rune, int) int { return 0 })
}

// MoveFilterCursorEnd moves the caret past the last rune.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveCaret(func(runes []rune, _ int) int { return len(runes) })
}

// MoveFilterCursorWordBackward moves the caret to the start of the previous
// word.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveCaret(wordStart)
}

// MoveFilterCursorWordForward moves the caret to the start of the next word.
func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveCaret(func(runes []rune, pos int) int {
		for pos < len(runes) && !unicode.IsSpace(runes[pos]) {
			pos++
		}
		for pos < len(runes) && unicode.IsSpace(runes[pos]) {
			pos++
		}
		return pos
	})
}

// MoveFilterCursorRuneBackward moves the caret one rune left.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveCaret(func(_ []rune, pos int) int { return max(pos-1, 0) })
}

// MoveFilterCursorRuneForward moves the caret one rune right.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveCaret(func(runes []rune, pos int) int { return min(pos+1, len(runes)) })
}

func wordStart(runes []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(runes[pos-1]) {
		pos--
	}
	return pos
}

// FilterItems keeps the rows whose label fuzzily contains query, in their
// original order. A blank query keeps every row.
func FilterItems(items []menu.Item, query string) []menu.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]menu.Item(nil), items...)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels(items))
	keep := make([]bool, len(items))
	for _, rank := range ranks {
		keep[rank.OriginalIndex] = true
	}
	filtered := make([]menu.Item, 0, len(ranks))
	for i, item := range items {
		if keep[i] {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the row the cursor should land on for query: an exact
// label, then a label prefix, then a substring, then the closest fuzzy match.
// It returns -1 for an empty row set.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0
	}
	lower := strings.ToLower(query)
	tests := []func(label string) bool{
		func(label string) bool { return strings.EqualFold(label, query) },
		func(label string) bool { return strings.HasPrefix(strings.ToLower(label), lower) },
		func(label string) bool { return strings.Contains(strings.ToLower(label), lower) },
	}
	for _, match := range tests {
		for i, item := range items {
			if match(strings.TrimSpace(item.Label)) {
				return i
			}
		}
	}
	best := -1
	bestDistance := 0
	for _, rank := range fuzzy.RankFindNormalizedFold(query, labels(items)) {
		if best < 0 || rank.Distance < bestDistance || (rank.Distance == bestDistance && rank.OriginalIndex < best) {
			best, bestDistance = rank.OriginalIndex, rank.Distance
		}
	}
	return max(best, 0)
}

func labels(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
