package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/TomTonic/dieroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("dieroll", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cfg.Rolls)
	assert.Equal(t, dieroll.MersenneTwisterKind, cfg.Kind)
	assert.Equal(t, dieroll.ShapeD20, cfg.Shape)
	assert.False(t, cfg.Stats)
	assert.Zero(t, cfg.Compare)
	assert.False(t, cfg.Verbose)
}

func TestParseConfigShortAndLongFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"short", []string{"-r", "5", "-p", "xorshift_star", "-d", "d6"}},
		{"long", []string{"--rolls", "5", "--prng", "xorshift_star", "--dice", "d6"}},
		{"mixed", []string{"-rolls=5", "--p=xorshift_star", "-dice", "d6"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := parseConfig(newFlagSet(), c.args)
			require.NoError(t, err)
			assert.Equal(t, uint64(5), cfg.Rolls)
			assert.Equal(t, dieroll.XorshiftStarKind, cfg.Kind)
			assert.Equal(t, dieroll.ShapeD6, cfg.Shape)
		})
	}
}

func TestParseConfigEveryShape(t *testing.T) {
	for _, shape := range dieroll.Shapes() {
		cfg, err := parseConfig(newFlagSet(), []string{"-d", shape.String()})
		require.NoError(t, err, shape.String())
		assert.Equal(t, shape, cfg.Shape)
	}
}

func TestParseConfigRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		args []string
		// flag errors are reported by the flag package itself; the rest are
		// left to main.
		invalid bool
	}{
		{"unknown prng", []string{"-p", "pcg"}, false},
		{"unknown die", []string{"-d", "d3"}, false},
		{"negative rolls", []string{"-r", "-1"}, false},
		{"zero rolls", []string{"-r", "0"}, true},
		{"too few compare repeats", []string{"-compare", "5"}, true},
		{"positional", []string{"d6"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			fs := newFlagSet()
			fs.SetOutput(&out)
			_, err := parseConfig(fs, c.args)
			require.Error(t, err)
			assert.Equal(t, c.invalid, errors.Is(err, errInvalidConfig), err.Error())
			if c.invalid {
				assert.Empty(t, out.String())
			} else {
				assert.Equal(t, 1, strings.Count(out.String(), "Usage of dieroll"))
			}
		})
	}
}

func TestParseConfigExtras(t *testing.T) {
	cfg, err := parseConfig(newFlagSet(), []string{"-stats", "-compare", "11", "-v"})
	require.NoError(t, err)
	assert.True(t, cfg.Stats)
	assert.Equal(t, uint64(11), cfg.Compare)
	assert.True(t, cfg.Verbose)
}

func TestParseConfigHelp(t *testing.T) {
	_, err := parseConfig(newFlagSet(), []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}
