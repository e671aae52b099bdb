package dto

import (
	"encoding/json"
	"time"
)

// AnswerInput is one submitted answer. Answer is left untyped because the
// frontend sends strings for most question types, booleans for true/false and
// an object of blank-key -> text for multi-blank fill questions.
type AnswerInput struct {
	Answer    any  `json:"answer"`
	TimeSpent int  `json:"timeSpent"`
	IsCorrect bool `json:"isCorrect"` // client-side verdict, trusted for game formats only
	// GameSpecific carries per-answer game payloads (guessed letters, level
	// reached, ...) that are stored alongside the answer, not interpreted.
	GameSpecific json.RawMessage `json:"gameSpecific,omitempty"`
}

// GameResults is the self-reported summary a game format sends on completion.
// All fields are optional; the score calculator falls back across them.
type GameResults struct {
	Score               *float64          `json:"score,omitempty"` // raw 0-100
	CorrectWords        *int              `json:"correctWords,omitempty"`
	TotalWords          *int              `json:"totalWords,omitempty"`
	TotalWordsCompleted *int              `json:"totalWordsCompleted,omitempty"`
	CorrectAnswers      *int              `json:"correctAnswers,omitempty"`
	TotalQuestions      *int              `json:"totalQuestions,omitempty"`
	TotalLevels         *int              `json:"totalLevels,omitempty"`
	Results             []json.RawMessage `json:"results,omitempty"`
}

// SubmitAttemptRequest carries a full quiz submission. Answers are keyed by
// question id (stringified, as the frontend sends object keys).
type SubmitAttemptRequest struct {
	UserID       uint                   `json:"user_id" binding:"required"` // supplied by the auth layer upstream
	QuizID       uint                   `json:"quizId" binding:"required"`
	Answers      map[string]AnswerInput `json:"answers"`
	TimeElapsed  int                    `json:"timeElapsed"`
	CompletedAt  *time.Time             `json:"completedAt,omitempty"`
	IsGameFormat bool                   `json:"isGameFormat"`
	GameFormat   string                 `json:"gameFormat,omitempty"`
	GameResults  *GameResults           `json:"gameResults,omitempty"`
}

// CalculatePointsRequest previews the points a score would earn, without
// awarding anything.
type CalculatePointsRequest struct {
	Score          int `json:"score" binding:"min=0,max=100"`
	TotalQuestions int `json:"totalQuestions" binding:"required,min=1"`
	CorrectAnswers int `json:"correctAnswers" binding:"min=0"`
}

// AwardCustomPointsRequest is the admin grant payload.
type AwardCustomPointsRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	Points      int    `json:"points" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description"`
}
