// Command dieroll rolls a die with one of the dieroll generators and prints one
// result per line.
//
//	dieroll -r 5 -p xorshift_star -d d6
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/TomTonic/dieroll"
	"github.com/rs/zerolog"
)

var version = "undefined"

// compareRolls is the number of rolls timed per repeat in -compare mode.
const compareRolls = 100_000

// speedups are the relative speedups -compare reports a confidence for.
var speedups = []float64{0.0, 0.1, 0.2, 0.3, 0.5}

func main() {
	fs := flag.NewFlagSet("dieroll", flag.ContinueOnError)
	cfg, err := parseConfig(fs, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if errors.Is(err, errInvalidConfig) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		fs.Usage()
	}
	if err != nil {
		os.Exit(2)
	}
	if cfg.Version {
		fmt.Println(version)
		return
	}

	log := newLogger(os.Stderr, cfg.Verbose, false)
	if err := run(cfg, os.Stdout, os.Stderr, log); err != nil {
		log.Error().Err(err).Msg("dieroll failed")
		os.Exit(1)
	}
}

// run performs the rolls described by cfg, writes them to stdout and optional
// reports to stderr.
func run(cfg config, stdout, stderr io.Writer, log zerolog.Logger) error {
	log.Debug().
		Stringer("prng", cfg.Kind).
		Stringer("dice", cfg.Shape).
		Uint64("rolls", cfg.Rolls).
		Msg("rolling")

	die, err := dieroll.NewRoller(cfg.Kind, cfg.Shape)
	if err != nil {
		return fmt.Errorf("create die: %w", err)
	}
	var counts []uint64
	if cfg.Stats {
		counts = make([]uint64, die.Sides())
	}
	out := bufio.NewWriter(stdout)
	for range cfg.Rolls {
		r := die.Roll()
		if counts != nil {
			counts[r-1]++
		}
		if _, err := fmt.Fprintln(out, r); err != nil {
			return fmt.Errorf("write roll: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write roll: %w", err)
	}

	if cfg.Stats {
		summary, err := dieroll.SummarizeCounts(counts)
		if err != nil {
			return fmt.Errorf("summarize rolls: %w", err)
		}
		printSummary(stderr, cfg, summary)
	}

	if cfg.Compare > 0 {
		if err := compareEngines(stderr, cfg, log); err != nil {
			return fmt.Errorf("compare generators: %w", err)
		}
	}
	return nil
}

func printSummary(w io.Writer, cfg config, s dieroll.Summary) {
	fmt.Fprintf(w, "%d rolls of a %s with %s\n", s.Rolls, cfg.Shape, cfg.Kind)
	fmt.Fprintf(w, "mean %.3f  median %.1f  stddev %.3f\n", s.Mean, s.Median, s.StdDev)
	for i, c := range s.Counts {
		fmt.Fprintf(w, "%4d: %d\n", i+1, c)
	}
	fmt.Fprintf(w, "chi-square %.3f (df=%d) p=%.4f\n", s.ChiSq, s.Sides-1, s.PValue)
}

// compareEngines times xorshift* against the Mersenne Twister on the configured
// die and reports the confidence that xorshift* is faster by each of speedups.
func compareEngines(w io.Writer, cfg config, log zerolog.Logger) error {
	xs, err := dieroll.NewRoller(dieroll.XorshiftStarKind, cfg.Shape)
	if err != nil {
		return err
	}
	mt, err := dieroll.NewRoller(dieroll.MersenneTwisterKind, cfg.Shape)
	if err != nil {
		return err
	}

	log.Debug().Uint64("repeats", cfg.Compare).Int("rolls", compareRolls).Msg("timing generators")
	timesXS := dieroll.TimeRolls(xs, compareRolls, cfg.Compare)
	timesMT := dieroll.TimeRolls(mt, compareRolls, cfg.Compare)

	results, err := dieroll.CompareRuntimes(timesXS, timesMT, speedups, 10_000)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "median ns/roll: %s %.2f, %s %.2f\n",
		dieroll.XorshiftStarKind, dieroll.Median(timesXS),
		dieroll.MersenneTwisterKind, dieroll.Median(timesMT))
	for _, r := range results {
		fmt.Fprintf(w, "%s faster by >= %3.0f%%: confidence %.3f\n",
			dieroll.XorshiftStarKind, r.RelativeSpeedup*100, r.Confidence)
	}
	return nil
}
