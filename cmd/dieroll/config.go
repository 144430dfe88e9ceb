package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/TomTonic/dieroll"
)

const (
	defaultRolls = 1
	defaultKind  = dieroll.MersenneTwisterKind
	defaultShape = dieroll.ShapeD20
)

// config holds everything the command line can select. Flags are the only
// source of configuration.
type config struct {
	Rolls   uint64
	Kind    dieroll.Kind
	Shape   dieroll.Shape
	Stats   bool
	Compare uint64
	Verbose bool
	Version bool
}

// errInvalidConfig marks flag combinations that parsed but make no sense. The
// flag package has already printed usage for its own errors.
var errInvalidConfig = errors.New("invalid configuration")

type kindValue struct{ k *dieroll.Kind }

func (v kindValue) String() string {
	if v.k == nil {
		return ""
	}
	return v.k.String()
}

func (v kindValue) Set(s string) error {
	k, err := dieroll.ParseKind(s)
	if err != nil {
		return err
	}
	*v.k = k
	return nil
}

type shapeValue struct{ s *dieroll.Shape }

func (v shapeValue) String() string {
	if v.s == nil {
		return ""
	}
	return v.s.String()
}

func (v shapeValue) Set(s string) error {
	shape, err := dieroll.ParseShape(s)
	if err != nil {
		return err
	}
	*v.s = shape
	return nil
}

// parseConfig parses args into a config. Every option has a short and a long
// spelling; the flag package accepts both -name and --name.
func parseConfig(fs *flag.FlagSet, args []string) (config, error) {
	cfg := config{
		Rolls: defaultRolls,
		Kind:  defaultKind,
		Shape: defaultShape,
	}

	rollsUsage := "number of rolls"
	fs.Uint64Var(&cfg.Rolls, "r", cfg.Rolls, rollsUsage)
	fs.Uint64Var(&cfg.Rolls, "rolls", cfg.Rolls, rollsUsage)

	kindUsage := "pseudo-random number generator: mersenne_twister or xorshift_star"
	fs.Var(kindValue{&cfg.Kind}, "p", kindUsage)
	fs.Var(kindValue{&cfg.Kind}, "prng", kindUsage)

	shapeUsage := "die to roll: d20, d12, d10, d8, d6, d4 or d_percent"
	fs.Var(shapeValue{&cfg.Shape}, "d", shapeUsage)
	fs.Var(shapeValue{&cfg.Shape}, "dice", shapeUsage)

	fs.BoolVar(&cfg.Stats, "stats", false, "print a fairness summary of the rolls to stderr")
	fs.Uint64Var(&cfg.Compare, "compare", 0, "time both generators on the chosen die for this many repeats (at least "+
		strconv.Itoa(dieroll.MinimumSamples)+") and report which is faster")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose (debug) logging")
	fs.BoolVar(&cfg.Version, "version", false, "show program version and exit")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("%w: unexpected arguments: %v", errInvalidConfig, fs.Args())
	}
	if cfg.Rolls == 0 {
		return config{}, fmt.Errorf("%w: -rolls must be at least 1", errInvalidConfig)
	}
	if cfg.Compare != 0 && cfg.Compare < dieroll.MinimumSamples {
		return config{}, fmt.Errorf("%w: -compare needs at least %d repeats, got %d",
			errInvalidConfig, dieroll.MinimumSamples, cfg.Compare)
	}
	return cfg, nil
}
