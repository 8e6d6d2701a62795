package world

// RowsPerLevel is how many cleared rows it takes to go up one level.
const RowsPerLevel = 10

var pointsPerClear = [...]int64{0, 40, 100, 300, 1200}

// PointsFor returns the points awarded for clearing dropped rows at once while
// at the given level. Counts outside [0, 4] award nothing.
func PointsFor(dropped, level int64) int64 {
	if dropped < 0 || dropped >= int64(len(pointsPerClear)) {
		return 0
	}
	return pointsPerClear[dropped] * (level + 1)
}

// LevelFor derives the level from the total number of cleared rows.
func LevelFor(rowsCleared int64) int64 {
	return rowsCleared / RowsPerLevel
}

// Scoring holds the score state of a game.
type Scoring struct {
	Score       int64
	RowsCleared int64
	Level       int64
}

// AddClear scores one detection pass. The points use the level the pass
// started at.
func (s *Scoring) AddClear(dropped int64) {
	s.Score += PointsFor(dropped, s.Level)
	s.RowsCleared += dropped
	s.Level = LevelFor(s.RowsCleared)
}

// AddClearResult scores every pass of a clear event in order.
func (s *Scoring) AddClearResult(r ClearResult) {
	for _, n := range r.Passes {
		s.AddClear(n)
	}
}
