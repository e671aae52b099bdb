package model

import (
	"time"

	"gorm.io/gorm"
)

// Question types understood by the answer validator. Unknown types fall back
// to exact string comparison.
const (
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
	TypeFillInTheBlank = "fill_in_the_blank"
	TypeFillBlank      = "fill_blank"
)

type Question struct {
	ID             uint    `gorm:"primarykey" json:"id"`
	QuizID         uint    `json:"quiz_id" gorm:"not null;index"`
	QuestionNumber int     `json:"question_number" gorm:"not null"`
	Type           string  `json:"type" gorm:"not null"`
	QuestionText   string  `json:"question_text" gorm:"type:text;not null"`
	Options        *string `json:"options,omitempty" gorm:"type:text"` // JSON array
	CorrectAnswer  *string `json:"correct_answer,omitempty" gorm:"type:text"`
	// CorrectAnswersData holds a JSON object of blank key -> accepted answers
	// for multi-blank fill questions.
	CorrectAnswersData *string        `json:"correct_answers_data,omitempty" gorm:"type:text"`
	Explanation        *string        `json:"explanation,omitempty" gorm:"type:text"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}
