package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

// ErrQuizNotFound covers both a missing quiz and a quiz owned by another
// user; callers cannot tell the two apart.
var ErrQuizNotFound = errors.New("quiz not found")

// ErrAttemptNotFound is returned when an attempt does not exist or belongs to
// another user.
var ErrAttemptNotFound = errors.New("attempt not found")

// SubmissionService turns a raw answer payload into a persisted attempt and
// triggers the points award for it.
type SubmissionService interface {
	SubmitAttempt(req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error)
	GetAttempt(attemptID, userID uint) (*dto.AttemptDetailResponse, error)
	GetUserAttempts(userID uint, quizID *uint, limit, offset int) ([]dto.AttemptSummary, int64, error)
}

type submissionService struct {
	db           *gorm.DB
	quizRepo     repository.QuizRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	resolver     QuestionResolver
	validator    AnswerValidator
	scorer       GameScoreCalculator
	points       PointsService
}

func NewSubmissionService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	resolver QuestionResolver,
	validator AnswerValidator,
	scorer GameScoreCalculator,
	points PointsService,
) SubmissionService {
	return &submissionService{
		db:           db,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		resolver:     resolver,
		validator:    validator,
		scorer:       scorer,
		points:       points,
	}
}

// SubmitAttempt validates the submission against the quiz, scores it, stores
// the attempt with its answer records and then awards points. The attempt
// transaction commits first; a failed award is logged and swallowed so the
// caller still gets their saved attempt.
func (s *submissionService) SubmitAttempt(req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error) {
	quiz, err := s.quizRepo.FindByIDForUser(req.QuizID, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("loading quiz: %w", err)
	}

	stored, err := s.questionRepo.FindByQuizOrdered(quiz.ID)
	if err != nil {
		return nil, fmt.Errorf("loading questions: %w", err)
	}

	resolved, err := s.resolver.Resolve(quiz, stored, req.GameResults, len(req.Answers))
	if err != nil {
		return nil, err
	}

	isGame := quiz.IsGameFormat() || req.IsGameFormat
	gameFormat := req.GameFormat
	if gameFormat == "" {
		gameFormat = quiz.GameFormat
	}

	var score ScoreResult
	if isGame {
		score = s.scorer.ScoreGame(gameFormat, req.GameResults, len(resolved))
	} else {
		score = s.scorer.ScoreTraditional(resolved, req.Answers)
	}

	completedAt := time.Now().UTC()
	if req.CompletedAt != nil {
		completedAt = req.CompletedAt.UTC()
	}

	attempt := &model.Attempt{
		UserID:            req.UserID,
		QuizID:            quiz.ID,
		StartedAt:         completedAt.Add(-time.Duration(req.TimeElapsed) * time.Second),
		CompletedAt:       completedAt,
		TimeElapsed:       req.TimeElapsed,
		TotalQuestions:    score.TotalQuestions,
		QuestionsAnswered: score.TotalAnswered,
		CorrectAnswers:    score.CorrectAnswers,
		ScorePercentage:   score.ScorePercentage,
		Answers:           s.buildAnswerRecords(resolved, req.Answers, isGame),
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(attempt).Error
	}); err != nil {
		return nil, fmt.Errorf("saving attempt: %w", err)
	}

	resp := &dto.SubmitAttemptResponse{AttemptSummary: s.toSummary(attempt, quiz.Title)}

	award, err := s.points.AwardQuizPoints(req.UserID, attempt.ID, score.ScorePercentage, score.TotalQuestions, score.CorrectAnswers)
	if err != nil {
		log.Error().Err(err).
			Uint("userID", req.UserID).
			Uint("attemptID", attempt.ID).
			Msg("Points award failed, attempt kept")
		return resp, nil
	}

	resp.PointsEarned = award.TotalPoints
	for _, e := range award.Entries {
		resp.PointsBreakdown = append(resp.PointsBreakdown, dto.PointsBreakdown{
			Reason:      e.Reason,
			Points:      e.PointsEarned,
			Description: e.Description,
		})
	}
	return resp, nil
}

// buildAnswerRecords materializes one record per stored question that was
// answered. Virtual questions have no database row to reference and are
// skipped. Traditional answers are re-validated server side; game formats
// trust the client verdict because the game engine already judged them.
func (s *submissionService) buildAnswerRecords(resolved []ResolvedQuestion, answers map[string]dto.AnswerInput, isGame bool) []model.AnswerRecord {
	var records []model.AnswerRecord
	for _, q := range resolved {
		if q.Virtual() {
			continue
		}
		input, ok := answers[questionKey(q.Real.ID)]
		if !ok || input.Answer == nil {
			continue
		}

		correct := input.IsCorrect
		if !isGame {
			correct = s.validator.IsCorrect(input.Answer, q.Real)
		}

		records = append(records, model.AnswerRecord{
			QuestionID: q.Real.ID,
			UserAnswer: stringify(input.Answer),
			IsCorrect:  correct,
			TimeSpent:  input.TimeSpent,
		})
	}
	return records
}

func (s *submissionService) GetAttempt(attemptID, userID uint) (*dto.AttemptDetailResponse, error) {
	attempt, err := s.attemptRepo.FindByIDWithAnswers(attemptID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("loading attempt: %w", err)
	}

	detail := &dto.AttemptDetailResponse{AttemptSummary: s.toSummary(attempt, attempt.Quiz.Title)}
	if err := copier.Copy(&detail.Answers, &attempt.Answers); err != nil {
		return nil, fmt.Errorf("mapping answers: %w", err)
	}
	return detail, nil
}

func (s *submissionService) GetUserAttempts(userID uint, quizID *uint, limit, offset int) ([]dto.AttemptSummary, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	attempts, err := s.attemptRepo.FindAllByUser(userID, quizID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing attempts: %w", err)
	}
	total, err := s.attemptRepo.CountByUser(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("counting attempts: %w", err)
	}

	summaries := make([]dto.AttemptSummary, 0, len(attempts))
	for i := range attempts {
		summaries = append(summaries, s.toSummary(&attempts[i], attempts[i].Quiz.Title))
	}
	return summaries, total, nil
}

func (s *submissionService) toSummary(attempt *model.Attempt, quizTitle string) dto.AttemptSummary {
	var summary dto.AttemptSummary
	if err := copier.Copy(&summary, attempt); err != nil {
		log.Warn().Err(err).Msg("Attempt summary mapping failed")
	}
	summary.QuizTitle = quizTitle
	summary.TimeFormatted = formatElapsed(attempt.TimeElapsed)
	return summary
}

// formatElapsed renders seconds as "45s", "5m 12s" or "1h 4m".
func formatElapsed(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh %dm", seconds/3600, (seconds%3600)/60)
}
