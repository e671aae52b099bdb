package model

import (
	"time"
)

// Attempt is one completed submission for a quiz. Immutable after creation.
type Attempt struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	UserID            uint           `json:"user_id" gorm:"not null;index"`
	QuizID            uint           `json:"quiz_id" gorm:"not null;index"`
	Quiz              Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	StartedAt         time.Time      `json:"started_at"`
	CompletedAt       time.Time      `json:"completed_at" gorm:"index"`
	TimeElapsed       int            `json:"time_elapsed"` // seconds
	TotalQuestions    int            `json:"total_questions"`
	QuestionsAnswered int            `json:"questions_answered"`
	CorrectAnswers    int            `json:"correct_answers"`
	ScorePercentage   int            `json:"score_percentage"`
	Answers           []AnswerRecord `json:"answers,omitempty" gorm:"foreignKey:AttemptID"`
	CreatedAt         time.Time      `json:"created_at"`
}
