// Package config loads witd configuration.
//
// Sources are layered with koanf, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the config file: --config, or $XDG_CONFIG_HOME/witd/config.toml when present
//  3. WITD_* environment variables, e.g. WITD_WATCH_INTERVAL=2s
//  4. command line flags that were explicitly set
//
// The merged tree is decoded into Config and validated.
package config
