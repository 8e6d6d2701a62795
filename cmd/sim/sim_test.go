package main

import (
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config {
	cfg := config{
		games:     6,
		workers:   3,
		maxFrames: 3000,
		fallDelay: 4,
		seed:      100,
		policy:    "SkipAhead",
	}
	require.NoError(t, cfg.load())
	return cfg
}

func silentBar(n int) *pb.ProgressBar {
	bar := pb.New(n)
	bar.SetWriter(io.Discard)
	return bar.Start()
}

func TestConfig_Load(t *testing.T) {
	cfg := testConfig(t)
	cfg.games = 0
	assert.Error(t, cfg.load())

	cfg = testConfig(t)
	cfg.policy = "Kick"
	assert.Error(t, cfg.load())

	cfg = testConfig(t)
	cfg.layoutFile = "missing.yaml"
	assert.Error(t, cfg.load())

	dir := t.TempDir()
	name := filepath.Join(dir, "layout.yaml")
	require.NoError(t, os.WriteFile(name,
		[]byte("Rows:\n  - \"2222.22222\"\n"), 0o644))
	cfg = testConfig(t)
	cfg.layoutFile = name
	require.NoError(t, cfg.load())
	assert.NotEmpty(t, cfg.layout)
}

func TestPlayGame(t *testing.T) {
	cfg := testConfig(t)
	r := playGame(cfg, 5)
	assert.Equal(t, int64(5), r.Seed)
	assert.LessOrEqual(t, r.Frames, cfg.maxFrames)
	assert.Positive(t, r.Pieces)
	assert.Equal(t, r, playGame(cfg, 5))
}

func TestRunGames_IndependentOfWorkers(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig(t)
	r1 := runGames(cfg, silentBar(cfg.games), log)
	cfg.workers = 1
	r2 := runGames(cfg, silentBar(cfg.games), log)
	assert.Equal(t, r1, r2)
	for i, r := range r1 {
		assert.Equal(t, cfg.seed+int64(i), r.Seed)
	}
}

func TestDistributionOf(t *testing.T) {
	d := distributionOf([]float64{4, 2, 6, 8})
	assert.InDelta(t, 5.0, d.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(20.0/3), d.StdDev, 1e-9)
	assert.Equal(t, 2.0, d.Min)
	assert.Equal(t, 8.0, d.Max)
	assert.Equal(t, 4.0, d.Median)

	d = distributionOf([]float64{3})
	assert.Equal(t, 0.0, d.StdDev)
	assert.Equal(t, distribution{}, distributionOf(nil))
}

func TestSummarize(t *testing.T) {
	s := summarize([]result{
		{Score: 100, Rows: 2, Frames: 10, GameOver: true},
		{Score: 300, Rows: 4, Frames: 20},
	})
	assert.Equal(t, 2, s.Games)
	assert.Equal(t, 1, s.GameOver)
	assert.Equal(t, int64(30), s.Frames)
	assert.InDelta(t, 200.0, s.Score.Mean, 1e-9)
	assert.InDelta(t, 3.0, s.Rows.Mean, 1e-9)
}

func TestFmtTable(t *testing.T) {
	out := fmtTable("Title", []string{"a", "bbb"},
		map[string]string{"a": "1,000", "bbb": "±2"})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	w := runewidth.StringWidth(lines[0])
	for _, line := range lines {
		assert.Equal(t, w, runewidth.StringWidth(line), line)
	}
	assert.Contains(t, out, "Title")
}

func TestFmtReport(t *testing.T) {
	cfg := testConfig(t)
	s := summarize([]result{{Score: 12345, Frames: 10}})
	out := fmtReport(cfg, s, time.Second)
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "SkipAhead")
}
