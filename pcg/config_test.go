// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Nil(t, cfg.Stream)
	assert.False(t, cfg.Entropy)

	r, err := cfg.Rand32()
	require.NoError(t, err)
	assert.Equal(t, NewRand32(0).State(), r.State())

	r64, err := cfg.Rand64()
	require.NoError(t, err)
	assert.Equal(t, NewRand64(U128(0)).State(), r64.State())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PCG_SEED", "42")
	t.Setenv("PCG_STREAM", "54")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	require.NotNil(t, cfg.Stream)
	assert.Equal(t, uint64(54), *cfg.Stream)

	r, err := cfg.Rand32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xa15c02b7), r.Uint32())

	r64, err := cfg.Rand64()
	require.NoError(t, err)
	assert.Equal(t, NewRand64Inc(U128(42), U128(54)).State(), r64.State())

	t.Setenv("PCG_STREAM_NAME", "spawner")
	cfg, err = ConfigFromEnv()
	require.NoError(t, err)
	r, err = cfg.Rand32()
	require.NoError(t, err)
	assert.Equal(t, NewRand32Inc(42, StreamFromName("spawner")).State(), r.State())
}

func TestConfigFromEnvEntropy(t *testing.T) {
	t.Setenv("PCG_ENTROPY", "true")
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	a, err := cfg.Rand32()
	require.NoError(t, err)
	b, err := cfg.Rand32()
	require.NoError(t, err)
	assert.NotEqual(t, a.State(), b.State())
	_, err = cfg.Rand64()
	require.NoError(t, err)
}

func TestConfigFromEnvError(t *testing.T) {
	t.Setenv("PCG_SEED", "not-a-number")
	_, err := ConfigFromEnv()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parse env:"))
}
