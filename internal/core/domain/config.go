package domain

const (
	// DefaultManifestPath is the manifest read when nothing else is configured.
	DefaultManifestPath = "package.json"
	// DefaultLockfilePath is the lock file read when nothing else is configured.
	DefaultLockfilePath = "yarn.lock"
	// DefaultOutDir is where exports are written when nothing else is configured.
	DefaultOutDir = "."
)

// Config holds the resolved input and output locations.
type Config struct {
	Manifest string `yaml:"manifest"`
	Lockfile string `yaml:"lockfile"`
	OutDir   string `yaml:"outDir"`
	// Progress renders phase progress to stderr.
	Progress bool `yaml:"progress"`
}

// DefaultConfig returns the configuration used when no file, environment or flag overrides it.
func DefaultConfig() Config {
	return Config{
		Manifest: DefaultManifestPath,
		Lockfile: DefaultLockfilePath,
		OutDir:   DefaultOutDir,
	}
}

// Merge returns c with every non-empty field of override applied. Progress can only be
// switched on by an override.
func (c Config) Merge(override Config) Config {
	if override.Manifest != "" {
		c.Manifest = override.Manifest
	}
	if override.Lockfile != "" {
		c.Lockfile = override.Lockfile
	}
	if override.OutDir != "" {
		c.OutDir = override.OutDir
	}
	if override.Progress {
		c.Progress = true
	}
	return c
}
