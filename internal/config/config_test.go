package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jewfaith/organizer/internal/theme"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs([]string{"bible.xml"}, nil)
	require.NoError(t, err)
	require.Equal(t, "bible.xml", cfg.App.Path)
	require.Equal(t, 32, cfg.App.Width)
	require.Equal(t, DefaultTitle, cfg.App.Title)
	require.Equal(t, DefaultSubtitle, cfg.App.Subtitle)
	require.False(t, cfg.App.TUI)
	require.False(t, cfg.App.NoColor)
	require.Empty(t, cfg.Logging.FilePath)
	require.Equal(t, []string{"bible.xml"}, cfg.Args)
	require.NoError(t, Validate(cfg))
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"--tui", "--width", "40", "--no-color", "--no-clear", "--footer", "--trace", "--log-file", "trace.log", "bible.xml"}
	cfg, err := LoadArgs(args, nil)
	require.NoError(t, err)
	require.True(t, cfg.App.TUI)
	require.Equal(t, 40, cfg.App.Width)
	require.True(t, cfg.App.NoColor)
	require.True(t, cfg.App.NoClear)
	require.True(t, cfg.App.Footer)
	require.Equal(t, Logging{FilePath: "trace.log", Trace: true}, cfg.Logging)
	require.Equal(t, "40", cfg.Flags["width"])
	require.Equal(t, "trace.log", cfg.Flags["logFile"])
}

func TestLoadArgsEnvironment(t *testing.T) {
	env := []string{
		"ORGANIZER_WIDTH=48",
		"ORGANIZER_TUI=true",
		"ORGANIZER_TRACE=1",
		"ORGANIZER_LOG_FILE=/tmp/organizer.log",
		"NO_COLOR=1",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"bible.xml"}, env)
	require.NoError(t, err)
	require.Equal(t, 48, cfg.App.Width)
	require.True(t, cfg.App.TUI)
	require.True(t, cfg.App.NoColor)
	require.Equal(t, Logging{FilePath: "/tmp/organizer.log", Trace: true}, cfg.Logging)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width=20", "bible.xml"}, []string{"ORGANIZER_WIDTH=48"})
	require.NoError(t, err)
	require.Equal(t, 20, cfg.App.Width)
}

func TestInvalidEnvironmentFallsBack(t *testing.T) {
	cfg, err := LoadArgs([]string{"bible.xml"}, []string{"ORGANIZER_WIDTH=wide", "ORGANIZER_TUI=maybe"})
	require.NoError(t, err)
	require.Equal(t, 32, cfg.App.Width)
	require.False(t, cfg.App.TUI)
}

func TestLoadArgsUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"missing path": nil,
		"extra path":   {"a.xml", "b.xml"},
		"unknown flag": {"--bogus", "a.xml"},
		"bad width":    {"--width", "wide", "a.xml"},
	}
	for name, args := range cases {
		_, err := LoadArgs(args, nil)
		require.Truef(t, errors.Is(err, ErrUsage), "%s: expected usage error, got %v", name, err)
	}
}

func TestLoadArgsHelp(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"--help", "a.xml"}} {
		_, err := LoadArgs(args, nil)
		require.ErrorIs(t, err, ErrHelp)
	}
}

func TestUsageListsFlags(t *testing.T) {
	text := Usage()
	for _, want := range []string{"organizer", "--tui", "--width", "--no-color", "--log-file", "<file>"} {
		require.Contains(t, text, want)
	}
}

func TestValidateRejectsNarrowWidth(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width", "4", "bible.xml"}, nil)
	require.NoError(t, err)
	require.Error(t, Validate(cfg))

	cfg, err = LoadArgs([]string{"--width=-1", "bible.xml"}, nil)
	require.NoError(t, err)
	require.Error(t, Validate(cfg))
}

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "organizer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSettingsFile(t *testing.T) {
	path := writeSettings(t, strings.Join([]string{
		"title: My Verses",
		"subtitle: daily",
		"width: 40",
		"colors:",
		"  info: \"#00ffff\"",
	}, "\n"))
	cfg, err := LoadArgs([]string{"--config", path, "bible.xml"}, nil)
	require.NoError(t, err)
	require.Equal(t, "My Verses", cfg.App.Title)
	require.Equal(t, "daily", cfg.App.Subtitle)
	require.Equal(t, 40, cfg.App.Width)
	require.Equal(t, theme.Palette{Info: "#00ffff"}, cfg.App.Palette)
}

func TestSettingsFileWidthLosesToFlagAndEnv(t *testing.T) {
	path := writeSettings(t, "width: 40\n")
	cfg, err := LoadArgs([]string{"--width", "24", "bible.xml"}, []string{"ORGANIZER_CONFIG=" + path})
	require.NoError(t, err)
	require.Equal(t, 24, cfg.App.Width)

	cfg, err = LoadArgs([]string{"bible.xml"}, []string{"ORGANIZER_CONFIG=" + path, "ORGANIZER_WIDTH=50"})
	require.NoError(t, err)
	require.Equal(t, 50, cfg.App.Width)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeSettings(t, "colour: red\n"))
	require.Error(t, err)

	_, err = LoadFile(writeSettings(t, "width: -5\n"))
	require.Error(t, err)

	f, err := LoadFile(writeSettings(t, ""))
	require.NoError(t, err)
	require.Equal(t, File{}, f)
}
