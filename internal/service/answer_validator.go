package service

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"quizforge/internal/model"
)

// AnswerValidator decides whether a submitted answer is correct under the
// lenient, type-specific matching rules. Pure logic, no I/O, never errors:
// malformed payloads resolve to a lenient verdict instead of failing the
// submission.
type AnswerValidator struct{}

func NewAnswerValidator() AnswerValidator {
	return AnswerValidator{}
}

var optionLetterRe = regexp.MustCompile(`^([A-D])\)`)

// IsCorrect validates a raw user answer against a question. A question with
// no declared correct answer accepts any answer; that leniency is checked
// before anything else.
func (v AnswerValidator) IsCorrect(userAnswer any, question *model.Question) bool {
	if question.CorrectAnswer == nil {
		return true
	}
	if userAnswer == nil {
		return false
	}

	correct := *question.CorrectAnswer

	switch question.Type {
	case model.TypeMultipleChoice:
		return extractOptionLetter(stringify(userAnswer)) == extractOptionLetter(correct)

	case model.TypeTrueFalse, "true-false":
		return normalizeTrueFalse(userAnswer) == normalizeTrueFalse(correct)

	case model.TypeFillInTheBlank, "fill-in-the-blank", model.TypeFillBlank:
		return v.validateFillBlank(userAnswer, question)

	default:
		return strings.TrimSpace(stringify(userAnswer)) == strings.TrimSpace(correct)
	}
}

func (v AnswerValidator) validateFillBlank(userAnswer any, question *model.Question) bool {
	correct := *question.CorrectAnswer
	if correct == "" || correct == "null" {
		return true
	}

	switch answer := userAnswer.(type) {
	case map[string]any:
		return v.validateFillBlankObject(answer, question)
	case string:
		return v.validateFillBlankString(answer, correct)
	default:
		return false
	}
}

// validateFillBlankObject checks a multi-blank answer: every blank must be
// accepted. A blank with no declared answer list accepts anything, as does an
// unparseable correct-answers payload.
func (v AnswerValidator) validateFillBlankObject(userAnswers map[string]any, question *model.Question) bool {
	if question.CorrectAnswersData == nil {
		return true
	}

	var correctByBlank map[string][]string
	if err := json.Unmarshal([]byte(*question.CorrectAnswersData), &correctByBlank); err != nil {
		return true
	}

	for blankKey, userBlank := range userAnswers {
		accepted := correctByBlank[blankKey]
		if len(accepted) == 0 {
			continue
		}
		if !isAnswerInList(stringify(userBlank), accepted) {
			return false
		}
	}
	return true
}

// validateFillBlankString handles a single-blank answer. The correct-answer
// payload may itself be a JSON array of alternatives.
func (v AnswerValidator) validateFillBlankString(userAnswer, correctAnswer string) bool {
	if strings.HasPrefix(correctAnswer, "[") || strings.HasPrefix(correctAnswer, "{") {
		var alternatives []any
		if err := json.Unmarshal([]byte(correctAnswer), &alternatives); err == nil {
			accepted := make([]string, 0, len(alternatives))
			for _, alt := range alternatives {
				accepted = append(accepted, stringify(alt))
			}
			return isAnswerInList(userAnswer, accepted)
		}
		// Not valid JSON after all; fall through to plain matching.
	}
	return isAnswerMatch(userAnswer, correctAnswer)
}

// isAnswerInList accepts when the user answer leniently matches any entry.
// An empty list accepts anything.
func isAnswerInList(userAnswer string, accepted []string) bool {
	if len(accepted) == 0 {
		return true
	}
	for _, candidate := range accepted {
		if isAnswerMatch(userAnswer, candidate) {
			return true
		}
	}
	return false
}

// isAnswerMatch is the lenient string match: exact after lower/trim, either
// side containing the other, or (single words only) a normalized Levenshtein
// similarity above 0.70.
func isAnswerMatch(userAnswer, correctAnswer string) bool {
	user := strings.ToLower(strings.TrimSpace(userAnswer))
	correct := strings.ToLower(strings.TrimSpace(correctAnswer))
	if user == "" || correct == "" {
		return false
	}

	if user == correct {
		return true
	}
	if strings.Contains(user, correct) || strings.Contains(correct, user) {
		return true
	}

	if len(strings.Fields(user)) == 1 && len(strings.Fields(correct)) == 1 {
		return similarity(user, correct) > 0.70
	}
	return false
}

// similarity is (maxLen - editDistance) / maxLen.
func similarity(a, b string) float64 {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	return float64(maxLen-levenshtein(a, b)) / float64(maxLen)
}

func levenshtein(a, b string) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			cost := 1
			if b[i-1] == a[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j-1]+cost, curr[j-1]+1, prev[j]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// extractOptionLetter reduces "B) Paris" or "B" to "B"; anything else is
// returned as-is so mismatched formats simply fail the comparison.
func extractOptionLetter(option string) string {
	trimmed := strings.TrimSpace(option)
	if m := optionLetterRe.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	if len(trimmed) == 1 && trimmed[0] >= 'A' && trimmed[0] <= 'D' {
		return trimmed
	}
	return option
}

// normalizeTrueFalse maps booleans, common textual forms and numbers onto
// "True"/"False". Unrecognized strings pass through unchanged so they only
// match themselves.
func normalizeTrueFalse(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return "True"
		case "false", "0", "no":
			return "False"
		}
		return v
	case float64:
		if v > 0 {
			return "True"
		}
		return "False"
	case int:
		if v > 0 {
			return "True"
		}
		return "False"
	}
	return stringify(value)
}

// stringify renders the loosely-typed JSON values answers arrive as.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
