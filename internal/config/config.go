package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	StateFile string `yaml:"state_file"` // where the layout is saved, empty disables saving
	LogFile   string `yaml:"log_file"`   // empty discards logs

	Layout LayoutConfig `yaml:"layout"`
	Colors ColorConfig  `yaml:"colors"`
}

// LayoutConfig holds layout-related settings
type LayoutConfig struct {
	// Ratios splits the main surface between its nodes, left to right.
	// Nodes beyond the list share the last ratio.
	Ratios []int `yaml:"ratios"`

	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	MoveStep     int `yaml:"move_step"` // cells per arrow key press
}

// ColorConfig holds color definitions
type ColorConfig struct {
	Text            string `yaml:"text"`
	Muted           string `yaml:"muted"`
	Header          string `yaml:"header"`
	BorderFocused   string `yaml:"border_focused"`
	BorderUnfocused string `yaml:"border_unfocused"`
	BorderFloating  string `yaml:"border_floating"`
	StatusBar       string `yaml:"status_bar"`
}

// Default is the configuration used when no file overrides it
var Default = Config{
	StateFile: defaultStatePath(),
	Layout: LayoutConfig{
		Ratios:       []int{30, 70},
		WindowWidth:  40,
		WindowHeight: 12,
		MoveStep:     2,
	},
	Colors: ColorConfig{
		Text:            "#cdd6f4",
		Muted:           "#6c7086",
		Header:          "#89b4fa",
		BorderFocused:   "#89b4fa",
		BorderUnfocused: "#45475a",
		BorderFloating:  "#f9e2af",
		StatusBar:       "#313244",
	},
}

// DefaultPath returns ~/.config/dock/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "dock", "config.yaml"), nil
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "dock", "state.json")
}

// Load reads path over a copy of Default. A missing file yields Default.
func Load(path string) (Config, error) {
	cfg := Default
	cfg.Layout.Ratios = append([]int(nil), Default.Layout.Ratios...)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a file may have set
func (c Config) Validate() error {
	if len(c.Layout.Ratios) == 0 {
		return errors.New("layout.ratios must not be empty")
	}
	for _, r := range c.Layout.Ratios {
		if r <= 0 {
			return fmt.Errorf("layout.ratios must be positive, got %d", r)
		}
	}
	if c.Layout.WindowWidth < 4 || c.Layout.WindowHeight < 3 {
		return fmt.Errorf("window size %dx%d is too small", c.Layout.WindowWidth, c.Layout.WindowHeight)
	}
	if c.Layout.MoveStep < 1 {
		return fmt.Errorf("layout.move_step must be at least 1, got %d", c.Layout.MoveStep)
	}
	return nil
}
