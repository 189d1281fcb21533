// Package config provides YAML configuration parsing for roster.
//
// This package lets the roster CLI start a session from a file instead of
// the built-in defaults. A configuration file is optional.
//
// Example configuration:
//
//	seed: true
//	on_missing_remove: report
//
//	records:
//	  - last_name: Curie
//	    first_name: Marie
//	    age: 66
//	  - last_name: ${USER_LAST_NAME:-Doe}
//	    first_name: Jane
//	    age: unknown
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/jpalmerr/roster"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for roster.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Seed starts the session with the built-in seed records.
	// Defaults to true; use [Config.SeedEnabled] to read it.
	Seed *bool `yaml:"seed"`

	// OnMissingRemove decides what removing an absent record does:
	// "report" (default) or "fatal".
	OnMissingRemove Policy `yaml:"on_missing_remove"`

	// Records are added to the session after the seed records.
	Records []RecordConfig `yaml:"records"`
}

// RecordConfig defines a single record.
type RecordConfig struct {
	// LastName supports environment variable substitution: ${VAR} or ${VAR:-default}
	LastName string `yaml:"last_name"`

	// FirstName supports environment variable substitution.
	FirstName string `yaml:"first_name"`

	// Age accepts any scalar; integers are normalized.
	Age AgeValue `yaml:"age"`
}

// Record converts the configuration to a [roster.Record].
func (rc RecordConfig) Record() roster.Record {
	return roster.NewRecord(rc.LastName, rc.FirstName, roster.Age(rc.Age))
}

// AgeValue wraps an age for YAML unmarshalling.
//
// Integers are stored in decimal form, matching [roster.AgeFromInt]. Any
// other scalar is stored verbatim as written, so `1.5` and `true` are
// accepted like typed input. A null age is left empty.
type AgeValue string

// UnmarshalYAML implements yaml.Unmarshaler for AgeValue.
func (a *AgeValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("age must be a scalar, got %v", node.Kind)
	}

	switch node.ShortTag() {
	case "!!null":
		*a = ""
		return nil
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("invalid age %q: %w", node.Value, err)
		}
		*a = AgeValue(strconv.Itoa(n))
		return nil
	}

	*a = AgeValue(node.Value)
	return nil
}

// Policy wraps [roster.MissingPolicy] for YAML unmarshalling.
type Policy roster.MissingPolicy

// UnmarshalYAML implements yaml.Unmarshaler for Policy.
func (p *Policy) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := roster.ParseMissingPolicy(s)
	if err != nil {
		return err
	}

	*p = Policy(parsed)
	return nil
}

// MissingPolicy returns the underlying roster.MissingPolicy value.
func (p Policy) MissingPolicy() roster.MissingPolicy {
	return roster.MissingPolicy(p)
}

// SeedEnabled reports whether the session starts with the seed records.
func (c *Config) SeedEnabled() bool {
	return c.Seed == nil || *c.Seed
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		varName := submatches[1]
		hasDefault := submatches[2] != ""

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return submatches[3]
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		OnMissingRemove: Policy(roster.MissingReport),
	}
}

// Load reads and parses a YAML configuration file.
//
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Unknown keys are rejected, so a misspelt field such as "prenom" is an
// error instead of an empty first name. Environment variables are expanded
// in names and text ages. An empty document yields [Default].
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// expandAndValidate expands environment variables and rejects records that
// would be collapsed into another one.
func (c *Config) expandAndValidate() error {
	seen := make(map[roster.Record]int, len(c.Records))
	seeded := make(map[roster.Record]struct{})
	if c.SeedEnabled() {
		for _, r := range roster.SeedRecords() {
			seeded[r] = struct{}{}
		}
	}

	for i := range c.Records {
		rc := &c.Records[i]

		for _, field := range []struct {
			name  string
			value *string
		}{
			{"last_name", &rc.LastName},
			{"first_name", &rc.FirstName},
		} {
			expanded, err := expandEnvVars(*field.value)
			if err != nil {
				return fmt.Errorf("records[%d]: %s: %w", i, field.name, err)
			}
			*field.value = expanded
		}

		age, err := expandEnvVars(string(rc.Age))
		if err != nil {
			return fmt.Errorf("records[%d]: age: %w", i, err)
		}
		rc.Age = AgeValue(age)

		r := rc.Record()
		if _, ok := seeded[r]; ok {
			return fmt.Errorf("records[%d]: duplicate of seed record %s", i, r)
		}
		if j, ok := seen[r]; ok {
			return fmt.Errorf("records[%d]: duplicate of records[%d]", i, j)
		}
		seen[r] = i
	}

	return nil
}

// BuildOptions converts parsed configuration into session options.
func BuildOptions(cfg *Config) []roster.Option {
	var opts []roster.Option

	if cfg.SeedEnabled() {
		opts = append(opts, roster.WithSeed())
	}

	records := make([]roster.Record, 0, len(cfg.Records))
	for _, rc := range cfg.Records {
		records = append(records, rc.Record())
	}
	if len(records) > 0 {
		opts = append(opts, roster.WithRecords(records...))
	}

	opts = append(opts, roster.WithMissingPolicy(cfg.OnMissingRemove.MissingPolicy()))
	return opts
}
