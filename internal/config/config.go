package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jewfaith/organizer/internal/app"
	textfmt "github.com/jewfaith/organizer/internal/format/text"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

var (
	// ErrUsage reports missing, extra or unknown command line arguments.
	ErrUsage = errors.New("usage")
	// ErrHelp is returned when -h or --help was requested.
	ErrHelp = errors.New("help requested")
)

const (
	MinWidth = 8

	DefaultTitle    = "Organizer - XMLManager 2024"
	DefaultSubtitle = "https://github.com/jewfaith"

	UsageLine = "Usage: organizer [flags] <file.xml>"
)

const (
	envTUI     = "ORGANIZER_TUI"
	envWidth   = "ORGANIZER_WIDTH"
	envNoColor = "ORGANIZER_NO_COLOR"
	envNoClear = "ORGANIZER_NO_CLEAR"
	envFooter  = "ORGANIZER_FOOTER"
	envConfig  = "ORGANIZER_CONFIG"
	envTrace   = "ORGANIZER_TRACE"
	envLogFile = "ORGANIZER_LOG_FILE"
	envNOCOLOR = "NO_COLOR"
)

type cli struct {
	Path    string `arg:"" optional:"" name:"file" help:"XML document to browse."`
	TUI     bool   `name:"tui" default:"${tui}" help:"Open the full-screen browser instead of the numbered menu."`
	Width   int    `name:"width" default:"${width}" help:"Wrap and rule width in columns (0 uses the settings file or ${defaultWidth})."`
	NoColor bool   `name:"no-color" default:"${noColor}" help:"Disable colours."`
	NoClear bool   `name:"no-clear" default:"${noClear}" help:"Do not clear the screen between pages."`
	Footer  bool   `name:"footer" default:"${footer}" help:"Show the key hint row in the browser."`
	Config  string `name:"config" default:"${config}" help:"YAML settings file."`
	Trace   bool   `name:"trace" default:"${trace}" help:"Enable verbose JSON trace logging."`
	LogFile string `name:"log-file" default:"${logFile}" help:"Path to the log file (no logging when empty)."`
	Help    bool   `name:"help" short:"h" help:"Show this help."`
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	var flags cli
	parser, err := newParser(&flags, parseEnv(environ), &strings.Builder{})
	if err != nil {
		return Config{}, err
	}
	if _, err := parser.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if flags.Help {
		return Config{}, ErrHelp
	}
	if flags.Path == "" {
		return Config{}, fmt.Errorf("%w: expected a document path", ErrUsage)
	}

	settings := File{}
	if flags.Config != "" {
		settings, err = LoadFile(flags.Config)
		if err != nil {
			return Config{}, err
		}
	}

	width := flags.Width
	if width == 0 {
		width = settings.Width
	}
	if width == 0 {
		width = textfmt.DefaultWidth
	}
	title := DefaultTitle
	if settings.Title != "" {
		title = settings.Title
	}
	subtitle := DefaultSubtitle
	if settings.Subtitle != "" {
		subtitle = settings.Subtitle
	}

	cfg := Config{
		App: app.Config{
			Path:     flags.Path,
			Width:    width,
			TUI:      flags.TUI,
			NoColor:  flags.NoColor,
			NoClear:  flags.NoClear,
			Footer:   flags.Footer,
			Title:    title,
			Subtitle: subtitle,
			Palette:  settings.Colors,
		},
		Logging: Logging{
			FilePath: flags.LogFile,
			Trace:    flags.Trace,
		},
		Flags: map[string]string{
			"tui":     strconv.FormatBool(flags.TUI),
			"width":   strconv.Itoa(width),
			"noColor": strconv.FormatBool(flags.NoColor),
			"noClear": strconv.FormatBool(flags.NoClear),
			"footer":  strconv.FormatBool(flags.Footer),
			"config":  flags.Config,
			"trace":   strconv.FormatBool(flags.Trace),
			"logFile": flags.LogFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// Usage renders the full help text.
func Usage() string {
	var flags cli
	var out strings.Builder
	parser, err := newParser(&flags, nil, &out)
	if err != nil {
		return UsageLine + "\n"
	}
	ctx, err := kong.Trace(parser, nil)
	if err != nil {
		return UsageLine + "\n"
	}
	if err := ctx.PrintUsage(false); err != nil {
		return UsageLine + "\n"
	}
	return out.String()
}

func newParser(target *cli, env map[string]string, out *strings.Builder) (*kong.Kong, error) {
	noColor := envOrBool(env, envNoColor, false) || strings.TrimSpace(env[envNOCOLOR]) != ""
	return kong.New(target,
		kong.Name("organizer"),
		kong.Description("Browse the themes, books and verses of an XML document."),
		kong.Writers(out, out),
		kong.Exit(func(int) {}),
		kong.NoDefaultHelp(),
		kong.Vars{
			"tui":          strconv.FormatBool(envOrBool(env, envTUI, false)),
			"width":        strconv.Itoa(envOrInt(env, envWidth, 0)),
			"defaultWidth": strconv.Itoa(textfmt.DefaultWidth),
			"noColor":      strconv.FormatBool(noColor),
			"noClear":      strconv.FormatBool(envOrBool(env, envNoClear, false)),
			"footer":       strconv.FormatBool(envOrBool(env, envFooter, false)),
			"config":       envOrDefault(env, envConfig, ""),
			"trace":        strconv.FormatBool(envOrBool(env, envTrace, false)),
			"logFile":      envOrDefault(env, envLogFile, ""),
		},
	)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Width < MinWidth {
		return fmt.Errorf("width must be >= %d (got %d)", MinWidth, cfg.App.Width)
	}
	return nil
}
