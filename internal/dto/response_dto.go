package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type QuestionResponse struct {
	ID             uint      `json:"id"`
	QuizID         uint      `json:"quiz_id"`
	QuestionNumber int       `json:"question_number"`
	Type           string    `json:"type"`
	QuestionText   string    `json:"question_text"`
	Options        *string   `json:"options,omitempty"`
	Explanation    *string   `json:"explanation,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type QuizResponse struct {
	ID             uint               `json:"id"`
	Title          string             `json:"title"`
	Difficulty     string             `json:"difficulty,omitempty"`
	GameFormat     string             `json:"game_format"`
	TotalQuestions int                `json:"total_questions"`
	Questions      []QuestionResponse `json:"questions,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

// AttemptSummary is what a submission returns to the caller.
type AttemptSummary struct {
	ID                uint      `json:"id"`
	QuizID            uint      `json:"quiz_id"`
	QuizTitle         string    `json:"quiz_title,omitempty"`
	CompletedAt       time.Time `json:"completed_at"`
	TimeElapsed       int       `json:"time_elapsed"`
	TimeFormatted     string    `json:"time_formatted"`
	TotalQuestions    int       `json:"total_questions"`
	QuestionsAnswered int       `json:"questions_answered"`
	CorrectAnswers    int       `json:"correct_answers"`
	ScorePercentage   int       `json:"score_percentage"`
}

// SubmitAttemptResponse adds the gamification outcome to the stored attempt.
// PointsEarned is zero when the award could not be applied; the attempt
// itself is still persisted.
type SubmitAttemptResponse struct {
	AttemptSummary
	PointsEarned    int               `json:"points_earned"`
	PointsBreakdown []PointsBreakdown `json:"points_breakdown,omitempty"`
}

type AnswerRecordResponse struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	UserAnswer string `json:"user_answer"`
	IsCorrect  bool   `json:"is_correct"`
	TimeSpent  int    `json:"time_spent"`
}

type AttemptDetailResponse struct {
	AttemptSummary
	Answers []AnswerRecordResponse `json:"answers,omitempty"`
}

type PointsEntryResponse struct {
	ID           uint      `json:"id"`
	AttemptID    *uint     `json:"quiz_attempt_id,omitempty"`
	PointsEarned int       `json:"points_earned"`
	Reason       string    `json:"reason"`
	Description  string    `json:"description"`
	EarnedAt     time.Time `json:"earned_at"`
}

// PointsBreakdown is one component of an award, both in previews and in the
// result of an actual grant.
type PointsBreakdown struct {
	Reason      string `json:"reason"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}

type PointsCalculation struct {
	TotalPoints int               `json:"total_points"`
	Breakdown   []PointsBreakdown `json:"breakdown"`
}

type LevelProgress struct {
	CurrentLevel       int     `json:"current_level"`
	CurrentPoints      int     `json:"current_points"`
	PointsForNextLevel *int    `json:"points_for_next_level,omitempty"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

type UserStatsResponse struct {
	UserID                uint          `json:"user_id"`
	TotalPoints           int           `json:"total_points"`
	TotalQuizzesCompleted int           `json:"total_quizzes_completed"`
	CorrectAnswers        int           `json:"correct_answers"`
	TotalAnswers          int           `json:"total_answers"`
	AverageScore          float64       `json:"average_score"`
	CurrentStreak         int           `json:"current_streak"`
	LongestStreak         int           `json:"longest_streak"`
	Level                 int           `json:"level"`
	PointsForNextLevel    *int          `json:"points_for_next_level,omitempty"`
	Rank                  int           `json:"rank"`
	LevelProgress         LevelProgress `json:"level_progress"`
}

type LeaderboardEntry struct {
	UserID                uint    `json:"user_id"`
	TotalPoints           int     `json:"total_points"`
	Level                 int     `json:"level"`
	TotalQuizzesCompleted int     `json:"total_quizzes_completed"`
	AverageScore          float64 `json:"average_score"`
	CurrentStreak         int     `json:"current_streak"`
	LongestStreak         int     `json:"longest_streak"`
}

type GlobalStatsResponse struct {
	TotalUsers            int64   `json:"total_users"`
	TotalPointsAwarded    int64   `json:"total_points_awarded"`
	TotalQuizzesCompleted int64   `json:"total_quizzes_completed"`
	AverageUserLevel      float64 `json:"average_user_level"`
	HighestLevelAchieved  int     `json:"highest_level_achieved"`
	HighestPoints         int     `json:"highest_points"`
	LongestStreak         int     `json:"longest_streak"`
}

type PointsConfigResponse struct {
	PointValues     map[string]int `json:"point_values"`
	LevelThresholds []int          `json:"level_thresholds"`
	MaxLevel        int            `json:"max_level"`
}
