package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/basaltconf/internal/storage"
)

// Option configures New.
type Option func(*settings)

type settings struct {
	logger   *zap.Logger
	provider PathProvider
}

// WithLogger sets the logger receiving load and conversion diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPathProvider replaces the environment-derived candidate paths.
func WithPathProvider(provider PathProvider) Option {
	return func(s *settings) {
		if provider != nil {
			s.provider = provider
		}
	}
}

// Config holds the options read from a single configuration file.
type Config struct {
	options    storage.Storage
	logger     *zap.Logger
	path       string
	candidates []string
}

// New searches the candidate paths in order and loads the first readable
// file. It never fails: when no file can be read the returned Config is empty
// and every accessor yields its default.
func New(opts ...Option) *Config {
	s := settings{
		logger:   zap.NewNop(),
		provider: NewEnvPathProvider(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	c := &Config{
		options:    storage.NewMemoryStorage(),
		logger:     s.logger,
		candidates: s.provider.CandidatePaths(),
	}

	for _, path := range c.candidates {
		err := c.loadFile(path)
		if err == nil {
			c.path = path
			c.logger.Info("config file", zap.String("path", path))
			return c
		}
		c.logger.Debug("skipping config candidate", zap.String("path", path), zap.Error(err))
	}

	c.logger.Error("no good config file", zap.Strings("candidates", c.candidates))
	return c
}

// loadFile parses path into the store. It returns an error only when the file
// cannot be opened; once opened the file is consumed and closed.
func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, fs.ErrInvalid)
	}

	if err := c.read(f); err != nil {
		c.logger.Warn("config file read incomplete", zap.String("path", path), zap.Error(err))
	}
	return nil
}

// read feeds r to the line parser one line at a time, with no limit on line
// length. Complete lines read before an error are kept.
func (c *Config) read(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read config: %w", err)
		}
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			c.readLine(line)
		}
		if err != nil {
			return nil
		}
	}
}

func (c *Config) readLine(line string) {
	key, value, ok := parseLine(line)
	if !ok {
		return
	}
	if err := c.options.Set(key, value); err != nil {
		c.logger.Debug("discarding config line", zap.String("option", key), zap.Error(err))
	}
}

// Path returns the file the options were loaded from, or "" if none was readable.
func (c *Config) Path() string {
	return c.path
}

// Candidates returns the paths searched, in priority order.
func (c *Config) Candidates() []string {
	out := make([]string, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Raw returns the unconverted value stored for key.
func (c *Config) Raw(key string) (string, bool) {
	return c.options.Lookup(key)
}

// Keys returns the loaded option names in lexical order.
func (c *Config) Keys() []string {
	return c.options.Keys()
}

// Len reports the number of loaded options.
func (c *Config) Len() int {
	return c.options.Len()
}

// Snapshot returns a copy of every loaded option and its raw value.
func (c *Config) Snapshot() map[string]string {
	return c.options.Snapshot()
}

// Lookup converts the value stored for key to kind. The dynamic type of the
// result is string, int32, float32, bool, or []string.
func (c *Config) Lookup(key string, kind Kind) (any, error) {
	raw, ok := c.options.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOptionNotFound, key)
	}
	v, err := convert(raw, kind)
	if err != nil {
		return nil, fmt.Errorf("option %s: %w", key, err)
	}
	return v, nil
}

// lookupOr resolves key through parse and collapses any failure to def.
func lookupOr[T any](c *Config, key string, kind Kind, def T, parse func(string) (T, error)) T {
	raw, ok := c.options.Lookup(key)
	if !ok {
		c.logger.Debug("option not set", zap.String("option", key))
		return def
	}
	v, err := parse(raw)
	if err != nil {
		c.logger.Warn("invalid "+kind.String()+" value",
			zap.String("option", key),
			zap.String("value", raw),
			zap.Error(err),
		)
		return def
	}
	return v
}

// Int32 returns the option as a base-10 int32, or def.
func (c *Config) Int32(key string, def int32) int32 {
	return lookupOr(c, key, KindInt32, def, parseInt32)
}

// Float returns the option as a float32, or def. A trailing 'f' is accepted.
func (c *Config) Float(key string, def float32) float32 {
	return lookupOr(c, key, KindFloat, def, parseFloat)
}

// Bool returns the option as a bool, or def.
func (c *Config) Bool(key string, def bool) bool {
	return lookupOr(c, key, KindBool, def, parseBool)
}

// String returns the raw option value, or def.
func (c *Config) String(key string, def string) string {
	return lookupOr(c, key, KindString, def, func(raw string) (string, error) {
		return raw, nil
	})
}

// StringList returns the items of a `{a, b, c}` option, or def when the
// option is missing or has no well-formed braces.
func (c *Config) StringList(key string, def []string) []string {
	return lookupOr(c, key, KindList, def, parseList)
}
