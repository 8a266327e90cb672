package domain

const (
	// DefaultInputsDir is where puzzle inputs live unless overridden by config.
	DefaultInputsDir = "assets/inputs"
	// DefaultCachePath is where computed answers are stored unless overridden.
	DefaultCachePath = ".advent/answers.json"
)

// Config holds the runner settings loaded from advent.yaml. Every field has a
// default, so a missing config file is not an error.
type Config struct {
	InputsDir    string
	CacheEnabled bool
	CachePath    string
}

// DefaultConfig returns the configuration used when no advent.yaml is present.
func DefaultConfig() *Config {
	return &Config{
		InputsDir:    DefaultInputsDir,
		CacheEnabled: true,
		CachePath:    DefaultCachePath,
	}
}
