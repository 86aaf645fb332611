package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jewfaith/organizer/internal/theme"
)

// File is the optional YAML settings file.
//
//	title: Organizer
//	subtitle: https://github.com/jewfaith
//	width: 40
//	colors:
//	  warning: "#ffcc00"
//	  info: "6"
//	  error: "1"
type File struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Width    int           `yaml:"width"`
	Colors   theme.Palette `yaml:"colors"`
}

// LoadFile reads and decodes the settings file at path. Unknown keys are an
// error.
func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read settings %s: %w", path, err)
	}
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if f.Width < 0 {
		return File{}, fmt.Errorf("parse settings %s: width must be >= 0 (got %d)", path, f.Width)
	}
	return f, nil
}
