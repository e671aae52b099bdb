package model

import (
	"time"

	"gorm.io/gorm"
)

// Game format tags. Traditional quizzes score per stored question; the game
// formats may have no persisted questions at all.
const (
	FormatTraditional    = "traditional"
	FormatHangman        = "hangman"
	FormatKnowledgeTower = "knowledge_tower"
	FormatWordLadder     = "word_ladder"
	FormatMemoryGrid     = "memory_grid"
)

type Quiz struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	Title          string         `json:"title" gorm:"not null"`
	Difficulty     string         `json:"difficulty,omitempty"`
	GameFormat     string         `json:"game_format" gorm:"default:'traditional'"`
	TotalQuestions int            `json:"total_questions" gorm:"default:0"`
	Questions      []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsGameFormat reports whether the quiz is one of the game formats rather
// than a traditional question set.
func (q *Quiz) IsGameFormat() bool {
	return q.GameFormat != "" && q.GameFormat != FormatTraditional
}
