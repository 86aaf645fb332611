package theme

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestPlainStylesEmitNoEscapes(t *testing.T) {
	styles := Plain(&bytes.Buffer{})
	for name, style := range map[string]string{
		"warning": styles.Warning.Render("Organizer"),
		"info":    styles.Info.Render("Psalms"),
		"error":   styles.Error.Render("Error: Theme not found"),
		"header":  styles.Header.Render("Faith"),
	} {
		if strings.Contains(style, "\x1b[") {
			t.Fatalf("%s style emitted escape sequence: %q", name, style)
		}
	}
}

func TestColouredRendererEmitsEscapes(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, true)
	r.SetColorProfile(termenv.ANSI)
	styles := New(r, Palette{})
	out := styles.Warning.Render("Faith")
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, "Faith") {
		t.Fatalf("expected coloured output, got %q", out)
	}
}

func TestPaletteMerge(t *testing.T) {
	got := Palette{Info: "#00ffff"}.Merge(DefaultPalette())
	want := Palette{Warning: "3", Info: "#00ffff", Error: "1"}
	if got != want {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}
