package service

import (
	"errors"
	"strconv"

	"quizforge/internal/dto"
	"quizforge/internal/model"
)

// ErrNoQuestions rejects a traditional quiz submitted with no stored
// questions; game formats fall back to virtual questions instead.
var ErrNoQuestions = errors.New("quiz has no questions")

// ResolvedQuestion is either a stored question or a virtual placeholder
// synthesized so a game submission without persisted questions can still be
// scored. Virtual questions never produce answer records.
type ResolvedQuestion struct {
	Real    *model.Question // nil for virtual questions
	Ordinal int
}

func (q ResolvedQuestion) Virtual() bool {
	return q.Real == nil
}

// QuestionResolver produces the ordered question set a submission is scored
// against.
type QuestionResolver struct{}

func NewQuestionResolver() QuestionResolver {
	return QuestionResolver{}
}

// Resolve returns the stored questions when any exist. A traditional quiz
// without questions is a hard error; a game-format quiz synthesizes N virtual
// questions, sizing N from the best available signal.
func (r QuestionResolver) Resolve(quiz *model.Quiz, stored []model.Question, results *dto.GameResults, answerCount int) ([]ResolvedQuestion, error) {
	if len(stored) > 0 {
		resolved := make([]ResolvedQuestion, len(stored))
		for i := range stored {
			resolved[i] = ResolvedQuestion{Real: &stored[i], Ordinal: i + 1}
		}
		return resolved, nil
	}

	if !quiz.IsGameFormat() {
		return nil, ErrNoQuestions
	}

	n := virtualCount(quiz, results, answerCount)
	if n <= 0 {
		// Last-resort guard; the fallback chain should have produced a count.
		n = 1
	}

	resolved := make([]ResolvedQuestion, n)
	for i := range resolved {
		resolved[i] = ResolvedQuestion{Ordinal: i + 1}
	}
	return resolved, nil
}

func virtualCount(quiz *model.Quiz, results *dto.GameResults, answerCount int) int {
	if results != nil {
		if results.TotalQuestions != nil && *results.TotalQuestions > 0 {
			return *results.TotalQuestions
		}
		if results.TotalWords != nil && *results.TotalWords > 0 {
			return *results.TotalWords
		}
		if results.TotalLevels != nil && *results.TotalLevels > 0 {
			return *results.TotalLevels
		}
		if len(results.Results) > 0 {
			return len(results.Results)
		}
	}
	if quiz.TotalQuestions > 0 {
		return quiz.TotalQuestions
	}
	if answerCount > 0 {
		return answerCount
	}
	return 5
}

func questionKey(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
