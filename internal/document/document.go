// Package document holds the in-memory form of an organizer file: an ordered
// set of themes, each an ordered set of books, each a non-empty list of
// wrapped verses. A Document is built once by a Loader and never mutated.
package document

// NoVersesPlaceholder stands in for a book that has no qualifying verses.
const NoVersesPlaceholder = "Error: No verses found"

// Book is a named run of verses within a theme.
type Book struct {
	Name   string
	Verses []string
}

// Theme is a named, ordered collection of books.
type Theme struct {
	Name  string
	Books []Book
}

// Book looks a book up by name.
func (t Theme) Book(name string) (Book, bool) {
	for _, b := range t.Books {
		if b.Name == name {
			return b, true
		}
	}
	return Book{}, false
}

// VerseCount returns the number of verses across all books.
func (t Theme) VerseCount() int {
	total := 0
	for _, b := range t.Books {
		total += len(b.Verses)
	}
	return total
}

// Document is the ordered theme → book → verses mapping.
type Document struct {
	themes []Theme
	index  map[string]int
}

// New builds a Document from themes in order. A repeated theme name keeps
// the position of its first occurrence and the books of its last.
func New(themes ...Theme) *Document {
	d := &Document{index: make(map[string]int, len(themes))}
	for _, t := range themes {
		d.put(t)
	}
	return d
}

func (d *Document) put(t Theme) {
	if i, ok := d.index[t.Name]; ok {
		d.themes[i] = t
		return
	}
	d.index[t.Name] = len(d.themes)
	d.themes = append(d.themes, t)
}

// Len returns the number of themes.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.themes)
}

// Themes returns the themes in document order.
func (d *Document) Themes() []Theme {
	if d == nil {
		return nil
	}
	out := make([]Theme, len(d.themes))
	copy(out, d.themes)
	return out
}

// Names returns the theme names in document order.
func (d *Document) Names() []string {
	if d == nil {
		return nil
	}
	names := make([]string, len(d.themes))
	for i, t := range d.themes {
		names[i] = t.Name
	}
	return names
}

// At returns the theme at the zero-based position i.
func (d *Document) At(i int) (Theme, bool) {
	if d == nil || i < 0 || i >= len(d.themes) {
		return Theme{}, false
	}
	return d.themes[i], true
}

// Theme looks a theme up by name.
func (d *Document) Theme(name string) (Theme, bool) {
	if d == nil {
		return Theme{}, false
	}
	i, ok := d.index[name]
	if !ok {
		return Theme{}, false
	}
	return d.themes[i], true
}
