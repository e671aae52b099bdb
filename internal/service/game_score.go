package service

import (
	"math"

	"quizforge/internal/dto"
	"quizforge/internal/model"
)

// ScoreResult is the aggregate outcome of scoring one submission.
type ScoreResult struct {
	CorrectAnswers  int
	TotalAnswered   int
	TotalQuestions  int
	ScorePercentage int
}

// GameScoreCalculator turns a game's self-reported result summary, or a set
// of per-question answers, into an aggregate score. Pure computation.
type GameScoreCalculator struct {
	validator AnswerValidator
}

func NewGameScoreCalculator(validator AnswerValidator) GameScoreCalculator {
	return GameScoreCalculator{validator: validator}
}

// ScoreGame derives the aggregate from the format's summary. Hangman and
// knowledge tower report their own counters; other formats either supply a
// raw 0-100 score or are assumed fully completed.
func (c GameScoreCalculator) ScoreGame(gameFormat string, results *dto.GameResults, totalQuestions int) ScoreResult {
	var correct, answered int

	if results == nil {
		results = &dto.GameResults{}
	}

	switch gameFormat {
	case model.FormatHangman:
		correct = intOr(results.CorrectWords, 0)
		answered = firstInt(results.TotalWordsCompleted, results.TotalWords, &totalQuestions)

	case model.FormatKnowledgeTower:
		correct = intOr(results.CorrectAnswers, 0)
		answered = firstInt(results.TotalQuestions, results.TotalLevels, &totalQuestions)

	default:
		if results.Score != nil {
			correct = int(math.Round(*results.Score / 100 * float64(totalQuestions)))
		} else {
			correct = totalQuestions
		}
		answered = totalQuestions
	}

	return ScoreResult{
		CorrectAnswers:  correct,
		TotalAnswered:   answered,
		TotalQuestions:  totalQuestions,
		ScorePercentage: percentage(correct, answered),
	}
}

// ScoreTraditional iterates the resolved questions, counting a question as
// answered only when a non-nil answer was submitted for it, and as correct
// per the validator.
func (c GameScoreCalculator) ScoreTraditional(questions []ResolvedQuestion, answers map[string]dto.AnswerInput) ScoreResult {
	var correct, answered int

	for _, q := range questions {
		if q.Virtual() {
			continue
		}
		input, ok := answers[questionKey(q.Real.ID)]
		if !ok || input.Answer == nil {
			continue
		}
		answered++
		if c.validator.IsCorrect(input.Answer, q.Real) {
			correct++
		}
	}

	return ScoreResult{
		CorrectAnswers:  correct,
		TotalAnswered:   answered,
		TotalQuestions:  len(questions),
		ScorePercentage: percentage(correct, answered),
	}
}

func percentage(correct, answered int) int {
	if answered <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(answered) * 100))
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

// firstInt returns the first non-nil candidate.
func firstInt(candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return 0
}
