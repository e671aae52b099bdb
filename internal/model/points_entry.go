package model

import (
	"time"
)

// Grant reasons recorded in the points ledger.
const (
	ReasonQuizCompletion = "quiz_completion"
	ReasonCorrectAnswers = "correct_answers"
	ReasonPerfectScore   = "perfect_score"
	ReasonFirstQuiz      = "first_quiz"
	ReasonLevelUp        = "level_up"
	ReasonStreakBonus    = "streak_bonus"
)

// PointsEntry is one immutable grant in the append-only ledger. The ledger is
// the source of truth for a user's total points; UserStats.TotalPoints is a
// denormalized sum over it.
type PointsEntry struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `json:"user_id" gorm:"not null;index:idx_user_points_user_earned"`
	AttemptID    *uint     `json:"quiz_attempt_id,omitempty"` // nil for non-quiz grants
	PointsEarned int       `json:"points_earned" gorm:"not null"`
	Reason       string    `json:"reason" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	EarnedAt     time.Time `json:"earned_at" gorm:"autoCreateTime;index:idx_user_points_user_earned"`
}

func (PointsEntry) TableName() string { return "user_points" }
