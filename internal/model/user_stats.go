package model

import (
	"time"
)

// UserStats is the denormalized per-user summary row. Exactly one row exists
// per user; it is created lazily on first touch and mutated inside the same
// transaction that appends ledger entries, so TotalPoints never diverges from
// the sum of the user's PointsEntry rows.
type UserStats struct {
	ID                    uint       `gorm:"primarykey" json:"id"`
	UserID                uint       `json:"user_id" gorm:"not null;uniqueIndex"`
	TotalPoints           int        `json:"total_points" gorm:"default:0"`
	TotalQuizzesCompleted int        `json:"total_quizzes_completed" gorm:"default:0"`
	CorrectAnswers        int        `json:"correct_answers" gorm:"default:0"`
	TotalAnswers          int        `json:"total_answers" gorm:"default:0"`
	AverageScore          float64    `json:"average_score" gorm:"type:decimal(5,2);default:0"`
	CurrentStreak         int        `json:"current_streak" gorm:"default:0"`
	LongestStreak         int        `json:"longest_streak" gorm:"default:0"`
	LastQuizDate          *time.Time `json:"last_quiz_date,omitempty" gorm:"type:date"`
	Level                 int        `json:"level" gorm:"default:1"`
	// PointsForNextLevel is nil once the user reaches the top of the
	// threshold table.
	PointsForNextLevel *int      `json:"points_for_next_level,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (UserStats) TableName() string { return "user_stats" }
