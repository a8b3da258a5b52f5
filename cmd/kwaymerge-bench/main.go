// kwaymerge-bench generates batches of random pre-sorted sequences and
// times the parallel k-way merge over them. It is a load harness for the
// library, not part of the library itself.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/dustin/go-humanize"
	cli "github.com/urfave/cli/v2"

	"github.com/nelimee/kwaymerge"
	"github.com/nelimee/kwaymerge/seqgen"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "kwaymerge-bench",
		Usage:   "generate sorted sequences and time the parallel k-way merge",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"KWAYMERGE_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			runCmd,
			sweepCmd,
		},
	}

	return app.Run(args)
}

var dataFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "sequences",
		Usage: "number of sorted sequences to generate",
		Value: 256,
	},
	&cli.IntFlag{
		Name:  "min-len",
		Usage: "minimum sequence length",
		Value: 100_000,
	},
	&cli.IntFlag{
		Name:  "max-len",
		Usage: "maximum sequence length",
		Value: 200_000,
	},
	&cli.Int64Flag{
		Name:  "seed",
		Usage: "generator seed; the same seed reproduces the same data",
		Value: 1,
	},
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "merge one batch of random sorted sequences",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "parallelism",
			Usage: "merge task cap (0 means GOMAXPROCS)",
			Value: 0,
		},
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "check that the output is sorted and complete",
		},
	}, dataFlags...),
	Action: func(cctx *cli.Context) error {
		logger := configLogger(cctx.String("log-level"))
		slog.SetDefault(logger)

		seqs, total := generate(cctx, logger)

		opts := []kwaymerge.Option{kwaymerge.WithLogger(logger)}
		p := cctx.Int("parallelism")
		if p > 0 {
			opts = append(opts, kwaymerge.WithParallelism(p))
		} else {
			p = runtime.GOMAXPROCS(0)
		}

		start := time.Now()
		merged := kwaymerge.Merge(seqs, opts...)
		elapsed := time.Since(start)

		fmt.Printf("merged %s elements from %s sequences in %v (%s, parallelism %d)\n",
			humanize.Comma(int64(total)),
			humanize.Comma(int64(len(seqs))),
			elapsed.Round(time.Millisecond),
			rate(total, elapsed),
			p)

		if cctx.Bool("verify") {
			return verify(merged, total)
		}
		return nil
	},
}

var sweepCmd = &cli.Command{
	Name:  "sweep",
	Usage: "compare merge timings across parallelism levels",
	Flags: dataFlags,
	Action: func(cctx *cli.Context) error {
		logger := configLogger(cctx.String("log-level"))
		slog.SetDefault(logger)

		seqs, total := generate(cctx, logger)

		var reference []float64
		var base time.Duration
		for _, p := range levels(runtime.GOMAXPROCS(0)) {
			start := time.Now()
			merged := kwaymerge.Merge(seqs, kwaymerge.WithParallelism(p))
			elapsed := time.Since(start)

			if reference == nil {
				reference = merged
				base = elapsed
			} else if !slices.Equal(merged, reference) {
				return fmt.Errorf("parallelism %d produced a different result than parallelism 1", p)
			}

			fmt.Printf("parallelism %-3d  %12v  %6.2fx  %s\n",
				p,
				elapsed.Round(time.Millisecond),
				float64(base)/float64(elapsed),
				rate(total, elapsed))
		}
		return nil
	},
}

// generate builds the input batch described by the shared data flags.
func generate(cctx *cli.Context, logger *slog.Logger) ([][]float64, int) {
	k := cctx.Int("sequences")
	minLen := cctx.Int("min-len")
	maxLen := cctx.Int("max-len")
	seed := cctx.Int64("seed")

	logger.Info("generating sequences",
		"sequences", k, "min-len", minLen, "max-len", maxLen, "seed", seed)

	start := time.Now()
	seqs := seqgen.New(seed).FloatSequences(k, minLen, maxLen)
	total := 0
	for _, s := range seqs {
		total += len(s)
	}
	logger.Info("generation complete",
		"elements", total, "took", time.Since(start).Round(time.Millisecond))
	return seqs, total
}

// levels returns the parallelism levels a sweep visits: powers of two up
// to and including max.
func levels(max int) []int {
	out := []int{1}
	for p := 2; p < max; p *= 2 {
		out = append(out, p)
	}
	if max > 1 {
		out = append(out, max)
	}
	return out
}

func verify(merged []float64, total int) error {
	if len(merged) != total {
		return fmt.Errorf("output has %d elements, want %d", len(merged), total)
	}
	if !slices.IsSorted(merged) {
		return fmt.Errorf("output is not sorted")
	}
	fmt.Println("verify: output sorted and complete")
	return nil
}

func rate(total int, elapsed time.Duration) string {
	return humanize.SI(float64(total)/elapsed.Seconds(), "elem/s")
}

func configLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
}
