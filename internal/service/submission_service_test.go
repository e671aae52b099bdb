package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

func newTestSubmissionService(t *testing.T, db *gorm.DB, points PointsService) SubmissionService {
	t.Helper()
	validator := NewAnswerValidator()
	return NewSubmissionService(
		db,
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewAttemptRepository(db),
		NewQuestionResolver(),
		validator,
		NewGameScoreCalculator(validator),
		points,
	)
}

func seedTraditionalQuiz(t *testing.T, db *gorm.DB, userID uint) *model.Quiz {
	t.Helper()
	quiz := model.Quiz{
		UserID:         userID,
		Title:          "Capitals",
		GameFormat:     model.FormatTraditional,
		TotalQuestions: 2,
		Questions: []model.Question{
			{QuestionNumber: 1, Type: model.TypeMultipleChoice, QuestionText: "Capital of France?", CorrectAnswer: strPtr("B) Paris")},
			{QuestionNumber: 2, Type: model.TypeTrueFalse, QuestionText: "The sky is green.", CorrectAnswer: strPtr("false")},
		},
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seeding quiz: %v", err)
	}
	return &quiz
}

func TestSubmitAttemptTraditional(t *testing.T) {
	db := newTestDB(t)
	points := newTestPointsService(t, db)
	svc := newTestSubmissionService(t, db, points)
	quiz := seedTraditionalQuiz(t, db, 1)

	req := &dto.SubmitAttemptRequest{
		UserID:      1,
		QuizID:      quiz.ID,
		TimeElapsed: 95,
		Answers: map[string]dto.AnswerInput{
			questionKey(quiz.Questions[0].ID): {Answer: "B", TimeSpent: 40},
			questionKey(quiz.Questions[1].ID): {Answer: true, TimeSpent: 55},
		},
	}

	resp, err := svc.SubmitAttempt(req)
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}

	if resp.CorrectAnswers != 1 || resp.QuestionsAnswered != 2 || resp.ScorePercentage != 50 {
		t.Errorf("summary = %+v, want 1 correct of 2 at 50%%", resp.AttemptSummary)
	}
	if resp.QuizTitle != "Capitals" {
		t.Errorf("quiz title = %q, want Capitals", resp.QuizTitle)
	}
	if resp.TimeFormatted != "1m 35s" {
		t.Errorf("time formatted = %q, want 1m 35s", resp.TimeFormatted)
	}
	if resp.PointsEarned == 0 || len(resp.PointsBreakdown) == 0 {
		t.Errorf("points = %d with %d components, want a non-empty award", resp.PointsEarned, len(resp.PointsBreakdown))
	}

	var records []model.AnswerRecord
	if err := db.Where("attempt_id = ?", resp.ID).Order("question_id").Find(&records).Error; err != nil {
		t.Fatalf("loading answer records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("stored %d answer records, want 2", len(records))
	}
	if !records[0].IsCorrect {
		t.Error("answer B against B) Paris must be recorded as correct")
	}
	if records[1].IsCorrect {
		t.Error("answer true against false must be recorded as incorrect")
	}
	if records[1].UserAnswer != "true" {
		t.Errorf("boolean answer stored as %q, want \"true\"", records[1].UserAnswer)
	}
}

func TestSubmitAttemptGameFormatVirtualQuestions(t *testing.T) {
	db := newTestDB(t)
	points := newTestPointsService(t, db)
	svc := newTestSubmissionService(t, db, points)

	quiz := model.Quiz{UserID: 1, Title: "Word Hunt", GameFormat: model.FormatHangman}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seeding quiz: %v", err)
	}

	req := &dto.SubmitAttemptRequest{
		UserID:       1,
		QuizID:       quiz.ID,
		IsGameFormat: true,
		GameFormat:   model.FormatHangman,
		TimeElapsed:  42,
		GameResults: &dto.GameResults{
			CorrectWords: intPtr(3),
			TotalWords:   intPtr(5),
		},
	}

	resp, err := svc.SubmitAttempt(req)
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if resp.CorrectAnswers != 3 || resp.ScorePercentage != 60 {
		t.Errorf("summary = %+v, want 3/5 at 60%%", resp.AttemptSummary)
	}

	var recordCount int64
	if err := db.Model(&model.AnswerRecord{}).Where("attempt_id = ?", resp.ID).Count(&recordCount).Error; err != nil {
		t.Fatalf("counting answer records: %v", err)
	}
	if recordCount != 0 {
		t.Errorf("virtual questions produced %d answer records, want none", recordCount)
	}
}

func TestSubmitAttemptQuizNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newTestSubmissionService(t, db, newTestPointsService(t, db))

	_, err := svc.SubmitAttempt(&dto.SubmitAttemptRequest{UserID: 1, QuizID: 999})
	if !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("SubmitAttempt = %v, want ErrQuizNotFound", err)
	}

	// A quiz owned by someone else is indistinguishable from a missing one.
	quiz := seedTraditionalQuiz(t, db, 7)
	_, err = svc.SubmitAttempt(&dto.SubmitAttemptRequest{UserID: 1, QuizID: quiz.ID})
	if !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("SubmitAttempt for foreign quiz = %v, want ErrQuizNotFound", err)
	}
}

func TestSubmitAttemptTraditionalWithoutQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newTestSubmissionService(t, db, newTestPointsService(t, db))

	quiz := model.Quiz{UserID: 1, Title: "Empty", GameFormat: model.FormatTraditional}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seeding quiz: %v", err)
	}

	_, err := svc.SubmitAttempt(&dto.SubmitAttemptRequest{UserID: 1, QuizID: quiz.ID})
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("SubmitAttempt = %v, want ErrNoQuestions", err)
	}
}

// failingPointsService always errors on award so the swallow path can be
// exercised.
type failingPointsService struct{ PointsService }

func (failingPointsService) AwardQuizPoints(userID, attemptID uint, score, total, correct int) (*PointsAwardResult, error) {
	return nil, errors.New("ledger unavailable")
}

func TestSubmitAttemptKeepsAttemptWhenAwardFails(t *testing.T) {
	db := newTestDB(t)
	svc := newTestSubmissionService(t, db, failingPointsService{})
	quiz := seedTraditionalQuiz(t, db, 1)

	req := &dto.SubmitAttemptRequest{
		UserID: 1,
		QuizID: quiz.ID,
		Answers: map[string]dto.AnswerInput{
			questionKey(quiz.Questions[0].ID): {Answer: "B"},
		},
	}

	resp, err := svc.SubmitAttempt(req)
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if resp.PointsEarned != 0 || len(resp.PointsBreakdown) != 0 {
		t.Errorf("failed award leaked points into the response: %+v", resp)
	}

	var attemptCount int64
	if err := db.Model(&model.Attempt{}).Where("user_id = ?", 1).Count(&attemptCount).Error; err != nil {
		t.Fatalf("counting attempts: %v", err)
	}
	if attemptCount != 1 {
		t.Errorf("attempt count = %d, want the attempt kept despite the failed award", attemptCount)
	}
}

func TestGetAttemptAndListAttempts(t *testing.T) {
	db := newTestDB(t)
	points := newTestPointsService(t, db)
	svc := newTestSubmissionService(t, db, points)
	quiz := seedTraditionalQuiz(t, db, 1)

	req := &dto.SubmitAttemptRequest{
		UserID: 1,
		QuizID: quiz.ID,
		Answers: map[string]dto.AnswerInput{
			questionKey(quiz.Questions[0].ID): {Answer: "B) Paris", TimeSpent: 12},
		},
	}
	resp, err := svc.SubmitAttempt(req)
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}

	detail, err := svc.GetAttempt(resp.ID, 1)
	if err != nil {
		t.Fatalf("GetAttempt: %v", err)
	}
	if len(detail.Answers) != 1 || detail.Answers[0].TimeSpent != 12 {
		t.Errorf("detail answers = %+v, want one record with TimeSpent 12", detail.Answers)
	}

	if _, err := svc.GetAttempt(resp.ID, 99); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("GetAttempt for wrong user = %v, want ErrAttemptNotFound", err)
	}

	summaries, total, err := svc.GetUserAttempts(1, nil, 10, 0)
	if err != nil {
		t.Fatalf("GetUserAttempts: %v", err)
	}
	if total != 1 || len(summaries) != 1 {
		t.Fatalf("listed %d of %d attempts, want 1 of 1", len(summaries), total)
	}
	if summaries[0].QuizTitle != "Capitals" {
		t.Errorf("summary quiz title = %q, want Capitals", summaries[0].QuizTitle)
	}

	other := uint(quiz.ID + 1)
	filtered, _, err := svc.GetUserAttempts(1, &other, 10, 0)
	if err != nil {
		t.Fatalf("GetUserAttempts with filter: %v", err)
	}
	if len(filtered) != 0 {
		t.Errorf("filter on another quiz returned %d attempts, want 0", len(filtered))
	}
}
