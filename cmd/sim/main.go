// Command sim lets the AI play many games in parallel and reports statistics
// about them.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"os"
	"runtime"
	"time"

	"github.com/cheggaaa/pb/v3"
)

func main() {
	var cfg config
	flag.IntVar(&cfg.games, "games", 100, "number of games")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of workers")
	flag.Int64Var(&cfg.maxFrames, "frames", 200000, "max frames per game")
	flag.Int64Var(&cfg.fallDelay, "fall", 5, "frames between two ticks")
	flag.Int64Var(&cfg.seed, "seed", -1, "seed of the first game")
	flag.StringVar(&cfg.policy, "policy", "SkipAhead", "rotation policy: SkipAhead, Revert")
	flag.StringVar(&cfg.layoutFile, "layout", "", "YAML layout to start every game from")
	debug := flag.Bool("debug", false, "log every game")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, log); err != nil {
		log.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, log *slog.Logger) error {
	if cfg.seed < 0 {
		seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			return fmt.Errorf("generating seed: %w", err)
		}
		cfg.seed = seed.Int64()
	}
	if err := cfg.load(); err != nil {
		return err
	}
	log.Info("simulating",
		"games", cfg.games,
		"workers", cfg.workers,
		"seed", cfg.seed,
		"policy", cfg.policy)

	bar := pb.StartNew(cfg.games)
	results := runGames(cfg, bar, log)
	used := time.Since(bar.StartTime())
	bar.Finish()

	fmt.Println(fmtReport(cfg, summarize(results), used))
	return nil
}
