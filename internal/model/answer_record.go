package model

import (
	"time"
)

// AnswerRecord is one per-question response. Only questions that exist in the
// database get a record; virtual questions synthesized for game scoring never
// do.
type AnswerRecord struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	AttemptID  uint      `json:"attempt_id" gorm:"not null;index"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	Question   Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserAnswer string    `json:"user_answer" gorm:"type:text"` // JSON-encoded when the answer is an object
	IsCorrect  bool      `json:"is_correct"`
	TimeSpent  int       `json:"time_spent"` // seconds
	CreatedAt  time.Time `json:"created_at"`
}
