package application

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/basaltconf/internal/config"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned when a dump format is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Settings controls how the application resolves its configuration file.
type Settings struct {
	// ConfigFile takes priority over every other candidate when non-empty.
	ConfigFile string
	// PathProvider replaces environment-based discovery when set.
	PathProvider config.PathProvider
}

// App owns a loaded configuration and the logger used while loading it.
type App struct {
	config *config.Config
	logger *zap.Logger
}

// New resolves and loads the configuration described by settings.
func New(settings Settings, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	provider := settings.PathProvider
	if provider == nil {
		env := config.NewEnvPathProvider()
		env.Override = settings.ConfigFile
		provider = env
	}

	cfg := config.New(
		config.WithLogger(logger),
		config.WithPathProvider(provider),
	)

	return &App{
		config: cfg,
		logger: logger,
	}
}

// Config returns the loaded configuration.
func (a *App) Config() *config.Config {
	return a.config
}

// WritePaths lists the candidate paths in priority order, marking the loaded one.
func (a *App) WritePaths(w io.Writer) error {
	loaded := a.config.Path()
	for _, path := range a.config.Candidates() {
		marker := " "
		if path == loaded {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", marker, path); err != nil {
			return err
		}
	}
	return nil
}

// WriteOption prints key converted to kind. When the option is missing or
// does not convert, def is printed instead if given; otherwise the lookup
// error is returned.
func (a *App) WriteOption(w io.Writer, key string, kind config.Kind, def *string) error {
	value, err := a.config.Lookup(key, kind)
	if err != nil {
		if def == nil {
			return err
		}
		a.logger.Debug("using default", zap.String("option", key), zap.Error(err))
		_, err = fmt.Fprintln(w, *def)
		return err
	}

	for _, line := range formatValue(value) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteDump prints every option with its raw value, sorted by name.
func (a *App) WriteDump(w io.Writer, format string) error {
	switch format {
	case FormatText, "":
		for _, key := range a.config.Keys() {
			raw, _ := a.config.Raw(key)
			if _, err := fmt.Fprintf(w, "%s = %s\n", key, raw); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a.config.Snapshot()); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func formatValue(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case int32:
		return []string{strconv.FormatInt(int64(v), 10)}
	case float32:
		return []string{strconv.FormatFloat(float64(v), 'g', -1, 32)}
	case bool:
		return []string{strconv.FormatBool(v)}
	case string:
		return []string{v}
	default:
		return []string{fmt.Sprint(v)}
	}
}
