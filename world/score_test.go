package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsFor(t *testing.T) {
	assert.Equal(t, int64(0), PointsFor(0, 0))
	assert.Equal(t, int64(40), PointsFor(1, 0))
	assert.Equal(t, int64(100), PointsFor(2, 0))
	assert.Equal(t, int64(300), PointsFor(3, 0))
	assert.Equal(t, int64(1200), PointsFor(4, 0))
	assert.Equal(t, int64(3600), PointsFor(4, 2))
	assert.Equal(t, int64(80), PointsFor(1, 1))
	assert.Equal(t, int64(0), PointsFor(5, 3))
	assert.Equal(t, int64(0), PointsFor(-1, 3))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, int64(0), LevelFor(0))
	assert.Equal(t, int64(0), LevelFor(9))
	assert.Equal(t, int64(1), LevelFor(10))
	assert.Equal(t, int64(2), LevelFor(29))
	assert.Equal(t, int64(12), LevelFor(125))
}

func TestScoring_AddClear(t *testing.T) {
	var s Scoring
	s.AddClear(0)
	assert.Equal(t, Scoring{}, s)

	s.AddClear(1)
	assert.Equal(t, Scoring{Score: 40, RowsCleared: 1, Level: 0}, s)

	s = Scoring{RowsCleared: 9}
	s.AddClear(1)
	assert.Equal(t, int64(1), s.Level)
	assert.Equal(t, int64(10), s.RowsCleared)
	assert.Equal(t, int64(40), s.Score)

	// Points are computed with the level from before the clear.
	s = Scoring{RowsCleared: 9}
	s.AddClear(4)
	assert.Equal(t, int64(1200), s.Score)
	assert.Equal(t, int64(13), s.RowsCleared)
	assert.Equal(t, int64(1), s.Level)

	s = Scoring{RowsCleared: 20, Level: 2}
	s.AddClear(4)
	assert.Equal(t, int64(3600), s.Score)
}

func TestScoring_AddClearResult(t *testing.T) {
	var s Scoring
	s.AddClearResult(ClearResult{})
	assert.Equal(t, Scoring{}, s)

	s.AddClearResult(ClearResult{Dropped: 2, Passes: []int64{1, 1}})
	assert.Equal(t, Scoring{Score: 80, RowsCleared: 2}, s)

	s = Scoring{RowsCleared: 8}
	s.AddClearResult(ClearResult{Dropped: 5, Passes: []int64{3, 2}})
	// 300 at level 0, then 200 at level 1.
	assert.Equal(t, Scoring{Score: 500, RowsCleared: 13, Level: 1}, s)
}
