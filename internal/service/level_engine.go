package service

// LevelEngine computes levels from cumulative points against the ordered
// threshold table. Pure lookups; shared by the award transaction and the
// read-only profile/rank queries.
type LevelEngine struct {
	thresholds []int
}

func NewLevelEngine(cfg PointsConfig) LevelEngine {
	return LevelEngine{thresholds: cfg.LevelThresholds}
}

// LevelFor returns the highest 1-indexed level whose threshold the given
// points reach.
func (e LevelEngine) LevelFor(points int) int {
	for i := len(e.thresholds) - 1; i >= 0; i-- {
		if points >= e.thresholds[i] {
			return i + 1
		}
	}
	return 1
}

// PointsForNextLevel returns the cumulative threshold of the level after
// currentLevel, or nil at max level.
func (e LevelEngine) PointsForNextLevel(currentLevel int) *int {
	if currentLevel >= len(e.thresholds) {
		return nil
	}
	next := e.thresholds[currentLevel]
	return &next
}

func (e LevelEngine) MaxLevel() int {
	return len(e.thresholds)
}
