package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Phase names one step of a run, used to label telemetry vertices.
type Phase string

const (
	// PhaseLoad covers reading the manifest and the lock file.
	PhaseLoad Phase = "load inputs"
	// PhaseNormalize covers id assignment over the lock table.
	PhaseNormalize Phase = "normalize lock table"
	// PhaseTree covers building the dependency tree.
	PhaseTree Phase = "build tree"
	// PhaseGraph covers building the module graph.
	PhaseGraph Phase = "build graph"
	// PhaseDirect covers resolving direct dependencies.
	PhaseDirect Phase = "resolve direct dependencies"
)
