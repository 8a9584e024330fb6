// Package config loads the deparse configuration from YAML, the environment and .env files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up when no path is given.
	DefaultFilename = ".deparse.yaml"

	envManifest = "DEPARSE_MANIFEST"
	envLockfile = "DEPARSE_LOCKFILE"
	envOutDir   = "DEPARSE_OUT_DIR"
	envProgress = "DEPARSE_PROGRESS"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
	// Getenv reads the process environment. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log, Getenv: os.Getenv}
}

// Load resolves the configuration. Precedence, lowest first: defaults, the YAML file at path,
// a .env file next to it, the process environment.
func (l *Loader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = DefaultFilename
	}
	cfg := domain.DefaultConfig()

	fileCfg, found, err := readFile(path)
	if err != nil {
		return domain.Config{}, err
	}
	if found {
		l.Logger.Info("loaded configuration from " + path)
	}
	cfg = cfg.Merge(fileCfg)

	dotenv, err := readDotenv(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return domain.Config{}, err
	}
	cfg = cfg.Merge(fromEnv(func(key string) string { return dotenv[key] }))
	cfg = cfg.Merge(fromEnv(l.getenv))

	return cfg, nil
}

func (l *Loader) getenv(key string) string {
	if l.Getenv == nil {
		return os.Getenv(key)
	}
	return l.Getenv(key)
}

func readFile(path string) (domain.Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, false, nil
		}
		return domain.Config{}, false, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, false, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return cfg, true, nil
}

func readDotenv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read .env file"), "path", path)
	}
	return values, nil
}

func fromEnv(getenv func(string) string) domain.Config {
	// Unparseable values leave progress off.
	progress, _ := strconv.ParseBool(getenv(envProgress))
	return domain.Config{
		Manifest: getenv(envManifest),
		Lockfile: getenv(envLockfile),
		OutDir:   getenv(envOutDir),
		Progress: progress,
	}
}
