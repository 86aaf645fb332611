package menu

import (
	"fmt"

	"github.com/jewfaith/organizer/internal/document"
	"github.com/jewfaith/organizer/internal/format/table"
	textfmt "github.com/jewfaith/organizer/internal/format/text"
)

// PreviewLines summarises the theme behind a ThemeID item: one row per book
// with its verse count, then the total. Books holding only the placeholder
// count as empty.
func PreviewLines(ctx Context, id string) ([]string, error) {
	name, ok := ThemeName(id)
	if !ok {
		return nil, nil
	}
	chosen, ok := ctx.Document.Theme(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	rows := make([][]string, 0, len(chosen.Books))
	total := 0
	for _, book := range chosen.Books {
		count := verseCount(book)
		total += count
		rows = append(rows, []string{textfmt.Capitalize(book.Name), plural(count, "verse")})
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight}, "  ")
	return append(lines, "", plural(len(chosen.Books), "book")+", "+plural(total, "verse")), nil
}

func verseCount(b document.Book) int {
	if len(b.Verses) == 1 && b.Verses[0] == document.NoVersesPlaceholder {
		return 0
	}
	return len(b.Verses)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
