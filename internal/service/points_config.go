package service

// PointsConfig is the immutable scoring configuration: flat grant amounts and
// the ordered level threshold table. It is injected rather than read from
// globals so tests can substitute smaller tables.
type PointsConfig struct {
	QuizCompletion    int
	CorrectAnswer     int
	PerfectQuiz       int // bonus for a 100% score
	StreakBonus       int // per streak day
	FirstQuiz         int
	LevelUpMultiplier int

	// LevelThresholds[i] is the minimum cumulative points for level i+1.
	// Must be ascending and start at 0.
	LevelThresholds []int
}

func DefaultPointsConfig() PointsConfig {
	return PointsConfig{
		QuizCompletion:    10,
		CorrectAnswer:     5,
		PerfectQuiz:       50,
		StreakBonus:       25,
		FirstQuiz:         20,
		LevelUpMultiplier: 2,
		LevelThresholds: []int{
			0,     // level 1
			100,   // level 2
			250,   // level 3
			500,   // level 4
			1000,  // level 5
			2000,  // level 6
			4000,  // level 7
			8000,  // level 8
			15000, // level 9
			30000, // level 10
		},
	}
}

// Values returns the grant amounts keyed by grant type. Used by the points
// config endpoint.
func (c PointsConfig) Values() map[string]int {
	return map[string]int{
		"quiz_completion":     c.QuizCompletion,
		"correct_answer":      c.CorrectAnswer,
		"perfect_quiz":        c.PerfectQuiz,
		"streak_bonus":        c.StreakBonus,
		"first_quiz":          c.FirstQuiz,
		"level_up_multiplier": c.LevelUpMultiplier,
	}
}
