package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jewfaith/organizer/internal/document"
	"github.com/jewfaith/organizer/internal/format/table"
	textfmt "github.com/jewfaith/organizer/internal/format/text"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
}

// Context carries runtime data needed by loader functions.
type Context struct {
	Document *document.Document
	// Width is the wrap and rule width of verse pages.
	Width int
}

// Loader populates a level's entries on demand.
type Loader func(Context) ([]Item, error)

// ErrThemeNotFound is returned when a theme level names a theme the document
// does not hold.
var ErrThemeNotFound = errors.New("theme not found")

const (
	RootID      = "themes"
	themePrefix = "theme:"
)

// ThemeID is the level and item identifier of the named theme.
func ThemeID(name string) string {
	return themePrefix + name
}

// ThemeName extracts the theme name from a ThemeID.
func ThemeName(id string) (string, bool) {
	return strings.CutPrefix(id, themePrefix)
}

// ThemeItems lists the themes in document order as "<n>. <Name>" with the
// numbers right-aligned.
func ThemeItems(ctx Context) ([]Item, error) {
	names := ctx.Document.Names()
	if len(names) == 0 {
		return nil, nil
	}
	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{strconv.Itoa(i+1) + ".", textfmt.Capitalize(name)}
	}
	labels := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft}, " ")
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{ID: ThemeID(name), Label: labels[i]}
	}
	return items, nil
}

// VerseItems renders the named theme as one item per output line: the theme
// heading and rule, then each book's heading, rule and numbered verses.
func VerseItems(ctx Context, name string) ([]Item, error) {
	chosen, ok := ctx.Document.Theme(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	lines := VerseLines(chosen, ctx.width())
	items := make([]Item, len(lines))
	for i, line := range lines {
		items[i] = Item{ID: fmt.Sprintf("%s#%d", ThemeID(name), i), Label: line}
	}
	return items, nil
}

// VerseLines lays out a theme page without styling.
func VerseLines(t document.Theme, width int) []string {
	lines := []string{textfmt.Capitalize(t.Name), textfmt.Rule("=", width)}
	for _, book := range t.Books {
		lines = append(lines, "", textfmt.Capitalize(book.Name), textfmt.Rule("-", width))
		for i, verse := range book.Verses {
			lines = append(lines, textfmt.Lines(fmt.Sprintf("%d. %s", i+1, verse), width)...)
		}
		lines = append(lines, textfmt.Rule("-", width))
	}
	return append(lines, textfmt.Rule("=", width))
}

func (c Context) width() int {
	if c.Width > 0 {
		return c.Width
	}
	return textfmt.DefaultWidth
}
