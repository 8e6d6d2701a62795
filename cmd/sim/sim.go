package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/marisvali/tetris1/world"
	"gonum.org/v1/gonum/stat"
)

type config struct {
	games      int
	workers    int
	maxFrames  int64
	fallDelay  int64
	seed       int64
	policy     string
	layoutFile string

	rotationPolicy world.RotationPolicy
	layout         world.Layout
}

// load validates the flags and reads the files they point to.
func (c *config) load() error {
	if c.games < 1 {
		return fmt.Errorf("games must be > 0, got %d", c.games)
	}
	if c.workers < 1 {
		return fmt.Errorf("workers must be > 0, got %d", c.workers)
	}
	if c.fallDelay < 1 {
		return fmt.Errorf("fall must be > 0, got %d", c.fallDelay)
	}
	p, err := world.ParseRotationPolicy(c.policy)
	if err != nil {
		return err
	}
	c.rotationPolicy = p

	if c.layoutFile != "" {
		data, err := os.ReadFile(c.layoutFile)
		if err != nil {
			return fmt.Errorf("reading layout: %w", err)
		}
		l, err := world.ParseLayoutFile(data)
		if err != nil {
			return err
		}
		g, err := l.GetGrid()
		if err != nil {
			return fmt.Errorf("%s: %w", c.layoutFile, err)
		}
		c.layout = world.LayoutFromGrid(&g)
	}
	return nil
}

type result struct {
	Seed     int64
	Score    int64
	Rows     int64
	Level    int64
	Pieces   int64
	Frames   int64
	GameOver bool
}

// playGame lets the AI play one game until it is lost or maxFrames pass.
func playGame(cfg config, seed int64) (r result) {
	p := world.Playthrough{
		SimulationVersion: world.SimulationVersion,
		Seed:              seed,
		RotationPolicy:    cfg.rotationPolicy,
		Layout:            cfg.layout,
	}
	w := world.NewWorldFromPlaythrough(p)
	var ai world.AI
	for r.Frames < cfg.maxFrames && !w.GameOver {
		input := ai.Step(&w)
		input.Tick = r.Frames%cfg.fallDelay == cfg.fallDelay-1
		w.Step(input)
		r.Frames++
	}
	r.Seed = seed
	r.Score = w.Score
	r.Rows = w.RowsCleared
	r.Level = w.Level
	r.Pieces = w.NPiecesLocked
	r.GameOver = w.GameOver
	return
}

// runGames plays cfg.games games on cfg.workers goroutines. Game i uses seed
// cfg.seed+i, so the results don't depend on the number of workers.
func runGames(cfg config, bar *pb.ProgressBar, log *slog.Logger) []result {
	results := make([]result, cfg.games)
	jobs := make(chan int, cfg.games)
	for i := range cfg.games {
		jobs <- i
	}
	close(jobs)

	wg := new(sync.WaitGroup)
	wg.Add(cfg.workers)
	for range cfg.workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = playGame(cfg, cfg.seed+int64(i))
				log.Debug("game done",
					"seed", results[i].Seed,
					"score", results[i].Score,
					"rows", results[i].Rows,
					"frames", results[i].Frames)
				bar.Increment()
			}
		}()
	}
	wg.Wait()
	return results
}

type distribution struct {
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

func distributionOf(xs []float64) (d distribution) {
	if len(xs) == 0 {
		return
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	d.Mean, d.StdDev = stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		d.StdDev = 0
	}
	d.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	d.Min = sorted[0]
	d.Max = sorted[len(sorted)-1]
	return
}

type summary struct {
	Games    int
	GameOver int
	Score    distribution
	Rows     distribution
	Level    distribution
	Pieces   distribution
	Frames   int64
}

func summarize(results []result) (s summary) {
	var score, rows, level, pieces []float64
	for _, r := range results {
		s.Games++
		if r.GameOver {
			s.GameOver++
		}
		s.Frames += r.Frames
		score = append(score, float64(r.Score))
		rows = append(rows, float64(r.Rows))
		level = append(level, float64(r.Level))
		pieces = append(pieces, float64(r.Pieces))
	}
	s.Score = distributionOf(score)
	s.Rows = distributionOf(rows)
	s.Level = distributionOf(level)
	s.Pieces = distributionOf(pieces)
	return
}
