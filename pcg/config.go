// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config specifies how to construct a generator, typically read from
// the environment with [ConfigFromEnv] so that a program run can be
// reproduced by exporting the same variables.
type Config struct {

	// Seed is the generator seed.
	Seed uint64 `env:"PCG_SEED" envDefault:"0"`

	// Stream is the increment that selects the sequence.
	// If nil, the default increment of the generator is used.
	Stream *uint64 `env:"PCG_STREAM"`

	// StreamName, if set, derives the stream from a name via
	// [StreamFromName], and takes precedence over Stream.
	StreamName string `env:"PCG_STREAM_NAME"`

	// Entropy ignores Seed and the stream settings, and seeds the
	// generator from the operating system random source.
	Entropy bool `env:"PCG_ENTROPY" envDefault:"false"`
}

// ConfigFromEnv loads a [Config] from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// stream returns the configured stream and whether one was set.
func (c Config) stream() (uint64, bool) {
	switch {
	case c.StreamName != "":
		return StreamFromName(c.StreamName), true
	case c.Stream != nil:
		return *c.Stream, true
	}
	return 0, false
}

// Rand32 returns a new [Rand32] as specified by the config.
func (c Config) Rand32() (*Rand32, error) {
	if c.Entropy {
		slog.Debug("pcg: seeding Rand32 from entropy")
		return NewRand32FromEntropy()
	}
	inc, ok := c.stream()
	if !ok {
		inc = DefaultInc32
	}
	return NewRand32Inc(c.Seed, inc), nil
}

// Rand64 returns a new [Rand64] as specified by the config.
func (c Config) Rand64() (*Rand64, error) {
	if c.Entropy {
		slog.Debug("pcg: seeding Rand64 from entropy")
		return NewRand64FromEntropy()
	}
	inc := DefaultInc64
	if s, ok := c.stream(); ok {
		inc = U128(s)
	}
	return NewRand64Inc(U128(c.Seed), inc), nil
}
