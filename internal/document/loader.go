package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	textfmt "github.com/jewfaith/organizer/internal/format/text"
	"github.com/jewfaith/organizer/internal/logging/events"
)

var (
	// ErrNotFound reports a document path that does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrMalformed reports a document that is not well-formed XML.
	ErrMalformed = errors.New("file is malformed")
)

// UnnamedThemeMessage is the text shown when a theme element has no name.
const UnnamedThemeMessage = "Error: Ignoring unnamed theme"

var valueSelector = xpath.MustCompile("value")

// Warning describes a theme that was skipped during loading.
type Warning struct {
	// Position is the 1-based index of the theme element under the root.
	Position int
}

func (w Warning) String() string {
	return UnnamedThemeMessage
}

// Loader turns an XML file into a Document.
type Loader struct {
	// Width is the wrap width applied to verses; zero means text.DefaultWidth.
	Width int
	// OnWarning receives non-fatal problems. Loading continues afterwards.
	OnWarning func(Warning)
}

// Load reads and parses the document at path.
func (l Loader) Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %s", ErrNotFound, path)
		} else {
			err = fmt.Errorf("open document: %w", err)
		}
		events.Document.Failed(path, err)
		return nil, err
	}
	defer f.Close()
	if info, statErr := f.Stat(); statErr == nil && info.IsDir() {
		err := fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
		events.Document.Failed(path, err)
		return nil, err
	}
	doc, err := l.Parse(f)
	if err != nil {
		events.Document.Failed(path, err)
		return nil, err
	}
	events.Document.Loaded(path, doc.Len())
	return doc, nil
}

// Parse builds a Document from XML read from r. Only well-formedness is
// fatal; unnamed themes and empty books degrade instead.
func (l Loader) Parse(r io.Reader) (*Document, error) {
	top, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	root, err := rootElement(top)
	if err != nil {
		return nil, err
	}
	return l.build(root), nil
}

func rootElement(top *xmlquery.Node) (*xmlquery.Node, error) {
	var root *xmlquery.Node
	for n := top.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case xmlquery.ElementNode:
			if root != nil {
				return nil, fmt.Errorf("%w: more than one root element", ErrMalformed)
			}
			root = n
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(n.Data) != "" {
				return nil, fmt.Errorf("%w: text outside the root element", ErrMalformed)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return root, nil
}

func (l Loader) build(root *xmlquery.Node) *Document {
	doc := New()
	position := 0
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		position++
		name := elementName(n)
		if name == "" {
			events.Document.ThemeSkipped(position)
			if l.OnWarning != nil {
				l.OnWarning(Warning{Position: position})
			}
			continue
		}
		doc.put(Theme{Name: name, Books: l.books(name, n)})
	}
	return doc
}

func (l Loader) books(theme string, n *xmlquery.Node) []Book {
	var books []Book
	index := make(map[string]int)
	for b := n.FirstChild; b != nil; b = b.NextSibling {
		if b.Type != xmlquery.ElementNode {
			continue
		}
		book := Book{Name: elementName(b), Verses: l.verses(b)}
		if len(book.Verses) == 0 {
			events.Document.BookEmpty(theme, book.Name)
			book.Verses = []string{NoVersesPlaceholder}
		}
		if i, ok := index[book.Name]; ok {
			books[i] = book
			continue
		}
		index[book.Name] = len(books)
		books = append(books, book)
	}
	return books
}

func (l Loader) verses(book *xmlquery.Node) []string {
	var verses []string
	for _, v := range xmlquery.QuerySelectorAll(book, valueSelector) {
		content := strings.TrimSpace(v.InnerText())
		if content == "" {
			continue
		}
		verses = append(verses, textfmt.Wrap(content, l.width()))
	}
	return verses
}

func (l Loader) width() int {
	if l.Width > 0 {
		return l.Width
	}
	return textfmt.DefaultWidth
}

func elementName(n *xmlquery.Node) string {
	name := strings.TrimSpace(n.Data)
	if name == "" {
		return ""
	}
	if n.Prefix != "" {
		return n.Prefix + ":" + name
	}
	return name
}
