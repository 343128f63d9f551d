package config

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config with durations as strings, the way a user
// writes them
type fileConfig struct {
	Rules []string `toml:"rules" comment:"Rules watched in addition to the command line ones"`
	Watch struct {
		Interval string   `toml:"interval" comment:"Pause between two poll cycles"`
		Timeout  string   `toml:"timeout" comment:"Upper bound for a single command, 0s waits forever"`
		Ignore   []string `toml:"ignore" comment:"Glob patterns skipped while collecting"`
		DryRun   bool     `toml:"dry_run" comment:"Log the commands instead of running them"`
	} `toml:"watch"`
	Output struct {
		Format string `toml:"format" comment:"One of auto, term, text, json"`
	} `toml:"output"`
}

const generatedHeader = "# witd configuration\n# Place this file at $XDG_CONFIG_HOME/witd/config.toml or pass it with --config.\n\n"

// Generate renders cfg as a TOML config file
func Generate(cfg *Config) ([]byte, error) {
	var fc fileConfig
	fc.Rules = cfg.Rules
	if fc.Rules == nil {
		fc.Rules = []string{}
	}
	fc.Watch.Interval = cfg.Watch.Interval.String()
	fc.Watch.Timeout = cfg.Watch.Timeout.String()
	fc.Watch.Ignore = cfg.Watch.Ignore
	fc.Watch.DryRun = cfg.Watch.DryRun
	fc.Output.Format = cfg.Output.Format

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	if err := toml.NewEncoder(&buf).Encode(fc); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// GenerateConfigContent renders cfg with every value commented out, so the
// file documents the settings without pinning them
func GenerateConfigContent(cfg *Config) (string, error) {
	content, err := Generate(cfg)
	if err != nil {
		return "", err
	}
	return commentOutConfigValues(string(content)), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			// Section headers stay so uncommenting a value needs no other edit
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
