package config

import (
	"os"
	"path/filepath"
)

// Install-time directories searched after the per-user locations. Packagers
// override them with -ldflags "-X ...config.SysConfDir=/usr/local/etc".
var (
	SysConfDir = "/etc"
	DataDir    = "/usr/share"
)

const (
	appDir   = "vkBasalt"
	fileName = "vkBasalt.conf"

	// OverrideEnv names the environment variable holding an explicit config path.
	OverrideEnv = "VKBASALT_CONFIG_FILE"
)

// PathProvider supplies candidate configuration file locations in priority order.
type PathProvider interface {
	CandidatePaths() []string
}

// PathProviderFunc adapts a function to PathProvider.
type PathProviderFunc func() []string

// CandidatePaths calls f.
func (f PathProviderFunc) CandidatePaths() []string {
	return f()
}

// EnvPathProvider derives candidates from XDG-style environment variables and
// the install-time directories.
type EnvPathProvider struct {
	// Override takes precedence over OverrideEnv when non-empty.
	Override   string
	Getenv     func(string) string
	SysConfDir string
	DataDir    string
}

// NewEnvPathProvider returns a provider reading the process environment.
func NewEnvPathProvider() EnvPathProvider {
	return EnvPathProvider{
		Getenv:     os.Getenv,
		SysConfDir: SysConfDir,
		DataDir:    DataDir,
	}
}

// CandidatePaths returns every location that can be derived from the
// environment, highest priority first. Unset variables contribute nothing.
func (p EnvPathProvider) CandidatePaths() []string {
	getenv := p.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var paths []string

	override := p.Override
	if override == "" {
		override = getenv(OverrideEnv)
	}
	if override != "" {
		paths = append(paths, override)
	}

	if configHome := getenv("XDG_CONFIG_HOME"); configHome != "" {
		paths = append(paths, filepath.Join(configHome, appDir, fileName))
	}

	if dataHome := getenv("XDG_DATA_HOME"); dataHome != "" {
		paths = append(paths, filepath.Join(dataHome, appDir, fileName))
	} else if home := getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".local", "share", appDir, fileName))
	}

	if p.SysConfDir != "" {
		paths = append(paths,
			filepath.Join(p.SysConfDir, fileName),
			filepath.Join(p.SysConfDir, appDir, fileName),
		)
	}
	if p.DataDir != "" {
		paths = append(paths, filepath.Join(p.DataDir, appDir, fileName))
	}

	return paths
}
