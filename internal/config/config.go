// Package config loads the constraint regimes the CLI solves for.
//
// A config file is TOML with one [[regime]] table per regime:
//
//	[[regime]]
//	name    = "loose"
//	min_run = 1
//	max_run = 3
//
//	[[regime]]
//	name    = "strict"
//	min_run = 4
//	max_run = 10
//
// Without a file, Default is used. There is no other configuration source.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/crucible/crucible"
	"github.com/katalvlaran/crucible/movement"
)

// FileName is the config file looked up in the working directory when no
// path is given explicitly.
const FileName = "crucible.toml"

var (
	// ErrNoRegimes indicates a config without any [[regime]] table.
	ErrNoRegimes = errors.New("config: at least one [[regime]] is required")
	// ErrRegimeName indicates an empty or duplicated regime name.
	ErrRegimeName = errors.New("config: regime names must be non-empty and unique")
	// ErrUnknownKey indicates keys the decoder did not recognize.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Regime is one [[regime]] table.
type Regime struct {
	Name   string `toml:"name"`
	MinRun int    `toml:"min_run"`
	MaxRun int    `toml:"max_run"`
}

// Constraints converts r to movement.Constraints.
func (r Regime) Constraints() movement.Constraints {
	return movement.Constraints{MinRun: r.MinRun, MaxRun: r.MaxRun}
}

// Config is the decoded config file.
type Config struct {
	Regimes []Regime `toml:"regime"`
}

// Default returns the loose 1..3 and strict 4..10 regimes.
func Default() Config {
	var c Config
	for _, r := range crucible.DefaultRegimes() {
		c.Regimes = append(c.Regimes, Regime{Name: r.Name, MinRun: r.Constraints.MinRun, MaxRun: r.Constraints.MaxRun})
	}

	return c
}

// Load decodes and validates the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// LoadOrDefault loads path when non-empty. With an empty path it tries
// FileName in the working directory and falls back to Default when that file
// does not exist. The returned string names the source that was used.
func LoadOrDefault(path string) (Config, string, error) {
	if path != "" {
		c, err := Load(path)
		return c, path, err
	}
	if _, err := os.Stat(FileName); err == nil {
		c, err := Load(FileName)
		return c, FileName, err
	}

	return Default(), "defaults", nil
}

// Parse decodes and validates TOML text.
func Parse(text string) (Config, error) {
	var c Config
	md, err := toml.Decode(text, &c)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks that c names at least one regime, that names are unique,
// and that every regime has valid constraints.
func (c Config) Validate() error {
	if len(c.Regimes) == 0 {
		return ErrNoRegimes
	}
	seen := make(map[string]bool, len(c.Regimes))
	for _, r := range c.Regimes {
		if r.Name == "" || seen[r.Name] {
			return fmt.Errorf("%w: %q", ErrRegimeName, r.Name)
		}
		seen[r.Name] = true
		if err := r.Constraints().Validate(); err != nil {
			return fmt.Errorf("regime %q: %w", r.Name, err)
		}
	}

	return nil
}

// CrucibleRegimes converts c for crucible.Solve.
func (c Config) CrucibleRegimes() []crucible.Regime {
	out := make([]crucible.Regime, len(c.Regimes))
	for i, r := range c.Regimes {
		out[i] = crucible.Regime{Name: r.Name, Constraints: r.Constraints()}
	}

	return out
}
