package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette names the accent colours. Values are lipgloss colour strings: ANSI
// indices ("3") or hex ("#ffcc00").
type Palette struct {
	Warning string `yaml:"warning"`
	Info    string `yaml:"info"`
	Error   string `yaml:"error"`
}

// DefaultPalette matches the classic terminal accents: yellow headings, cyan
// sub-headings, red errors.
func DefaultPalette() Palette {
	return Palette{Warning: "3", Info: "6", Error: "1"}
}

// Merge returns p with empty fields taken from fallback.
func (p Palette) Merge(fallback Palette) Palette {
	if p.Warning == "" {
		p.Warning = fallback.Warning
	}
	if p.Info == "" {
		p.Info = fallback.Info
	}
	if p.Error == "" {
		p.Error = fallback.Error
	}
	return p
}

// Styles describes reusable Lip Gloss styles shared by both front ends.
type Styles struct {
	Warning               *lipgloss.Style
	Info                  *lipgloss.Style
	Error                 *lipgloss.Style
	Plain                 *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
	PreviewTitle          *lipgloss.Style
	PreviewBody           *lipgloss.Style
	PreviewBorder         *lipgloss.Style
}

// New builds the style set for r using palette p.
func New(r *lipgloss.Renderer, p Palette) *Styles {
	p = p.Merge(DefaultPalette())
	return &Styles{
		Warning:               ptr(r.NewStyle().Foreground(lipgloss.Color(p.Warning))),
		Info:                  ptr(r.NewStyle().Foreground(lipgloss.Color(p.Info))),
		Error:                 ptr(r.NewStyle().Foreground(lipgloss.Color(p.Error))),
		Plain:                 ptr(r.NewStyle()),
		Item:                  ptr(r.NewStyle().Foreground(lipgloss.Color("249"))),
		ItemIndicator:         ptr(r.NewStyle().Foreground(lipgloss.Color("238"))),
		SelectedItemIndicator: ptr(r.NewStyle().Foreground(lipgloss.Color(p.Info)).Background(lipgloss.Color("238"))),
		SelectedItem:          ptr(r.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true)),
		Header:                ptr(r.NewStyle().Foreground(lipgloss.Color(p.Warning)).Bold(true)),
		Footer:                ptr(r.NewStyle().Foreground(lipgloss.Color("249"))),
		Filter:                ptr(r.NewStyle().Foreground(lipgloss.Color("249"))),
		FilterPrompt:          ptr(r.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
		FilterPlaceholder:     ptr(r.NewStyle().Foreground(lipgloss.Color("241"))),
		Cursor:                ptr(r.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(p.Info)).Blink(true)),
		PreviewTitle:          ptr(r.NewStyle().Foreground(lipgloss.Color(p.Info)).Bold(true)),
		PreviewBody:           ptr(r.NewStyle().Foreground(lipgloss.Color("250"))),
		PreviewBorder:         ptr(r.NewStyle().Foreground(lipgloss.Color("240"))),
	}
}

// NewRenderer returns a renderer for w. When color is false every style
// renders as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Plain returns styles that never emit escape sequences. Tests and
// non-terminal output use it.
func Plain(w io.Writer) *Styles {
	return New(NewRenderer(w, false), DefaultPalette())
}

// Default exposes the standard style set for the default renderer.
func Default() *Styles {
	return New(lipgloss.DefaultRenderer(), DefaultPalette())
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
