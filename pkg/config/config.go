package config

import (
	"time"
)

// Config is the decoded configuration
type Config struct {
	// Rules are rule strings watched in addition to the command line ones
	Rules  []string `koanf:"rules" validate:"dive,required"`
	Watch  Watch    `koanf:"watch"`
	Output Output   `koanf:"output"`
}

// Watch configures the poll loop and the dispatcher
type Watch struct {
	Interval time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout  time.Duration `koanf:"timeout" validate:"gte=0"`
	Ignore   []string      `koanf:"ignore" validate:"dive,required"`
	DryRun   bool          `koanf:"dry_run"`
}

// Output configures rendering
type Output struct {
	Format string `koanf:"format" validate:"oneof=auto term text json"`
}

// Keys of the configuration tree, as used by overrides and the environment
const (
	KeyRules         = "rules"
	KeyWatchInterval = "watch.interval"
	KeyWatchTimeout  = "watch.timeout"
	KeyWatchIgnore   = "watch.ignore"
	KeyWatchDryRun   = "watch.dry_run"
	KeyOutputFormat  = "output.format"
)
