package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ErrUnknownTheme is returned when a theme name is not one of the built-in themes.
var ErrUnknownTheme = errors.New("unknown theme")

// Options holds the runtime settings shared by every folio command.
type Options struct {
	ContentPath string
	Theme       string
	LogFile     string
	Verbose     bool
	NoAnim      bool
}

// Defaults returns options with environment fallbacks applied.
func Defaults() Options {
	theme := env("THEME")
	if theme == "" {
		theme = ThemeLight
	}
	return Options{
		ContentPath: env("CONTENT"),
		Theme:       theme,
		LogFile:     env("LOG_FILE"),
	}
}

// Validate checks option values that cobra cannot check for us.
func (o Options) Validate() error {
	switch o.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownTheme, o.Theme, ThemeLight, ThemeDark)
	}
	return nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}
