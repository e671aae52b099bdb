package service

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quizforge/internal/dto"
	"quizforge/internal/model"
	"quizforge/internal/repository"
)

// PointsAwardResult reports what one award transaction granted.
type PointsAwardResult struct {
	TotalPoints int
	Entries     []model.PointsEntry
}

// PointsService owns the append-only points ledger and the denormalized
// per-user stats row. Every award runs ledger inserts and the stats update in
// one transaction so the two can never diverge.
type PointsService interface {
	AwardQuizPoints(userID, attemptID uint, scorePercentage, totalQuestions, correctAnswers int) (*PointsAwardResult, error)
	AwardStreakBonus(userID uint, streakDays int) (int, error)
	AwardCustomPoints(userID uint, points int, reason, description string) error
	CalculateQuizPoints(score, totalQuestions, correctAnswers int, isFirstQuiz bool) dto.PointsCalculation
	GetUserStats(userID uint) (*model.UserStats, error)
	GetPointsHistory(userID uint, limit int) ([]model.PointsEntry, error)
}

type pointsService struct {
	db         *gorm.DB
	cfg        PointsConfig
	levels     LevelEngine
	pointsRepo repository.PointsRepository
}

func NewPointsService(db *gorm.DB, cfg PointsConfig, levels LevelEngine, pointsRepo repository.PointsRepository) PointsService {
	return &pointsService{db: db, cfg: cfg, levels: levels, pointsRepo: pointsRepo}
}

// quizOutcome carries the per-quiz fields that only quiz completions (not
// custom or streak grants) feed into the stats row.
type quizOutcome struct {
	scorePercentage int
	totalQuestions  int
	correctAnswers  int
}

// AwardQuizPoints grants all point components for one completed attempt and
// folds them into the user's stats inside a single transaction. The attempt
// row is expected to be committed already; the first-quiz check counts it.
func (s *pointsService) AwardQuizPoints(userID, attemptID uint, scorePercentage, totalQuestions, correctAnswers int) (*PointsAwardResult, error) {
	result := &PointsAwardResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var attemptCount int64
		if err := tx.Model(&model.Attempt{}).Where("user_id = ?", userID).Count(&attemptCount).Error; err != nil {
			return fmt.Errorf("counting attempts: %w", err)
		}
		isFirstQuiz := attemptCount == 1

		entries := s.buildQuizEntries(userID, attemptID, scorePercentage, correctAnswers, isFirstQuiz)
		totalPoints := 0
		for _, e := range entries {
			totalPoints += e.PointsEarned
		}

		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("inserting points entries: %w", err)
		}

		outcome := &quizOutcome{
			scorePercentage: scorePercentage,
			totalQuestions:  totalQuestions,
			correctAnswers:  correctAnswers,
		}
		levelUp, err := s.applyToStats(tx, userID, totalPoints, outcome)
		if err != nil {
			return err
		}
		if levelUp != nil {
			entries = append(entries, *levelUp)
			totalPoints += levelUp.PointsEarned
		}

		result.TotalPoints = totalPoints
		result.Entries = entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("userID", userID).
		Uint("attemptID", attemptID).
		Int("totalPoints", result.TotalPoints).
		Msg("Awarded quiz points")
	return result, nil
}

func (s *pointsService) buildQuizEntries(userID, attemptID uint, score, correctAnswers int, isFirstQuiz bool) []model.PointsEntry {
	entries := []model.PointsEntry{{
		UserID:       userID,
		AttemptID:    &attemptID,
		PointsEarned: s.cfg.QuizCompletion,
		Reason:       model.ReasonQuizCompletion,
		Description:  "Completed a quiz",
	}}

	if correctAnswers > 0 {
		entries = append(entries, model.PointsEntry{
			UserID:       userID,
			AttemptID:    &attemptID,
			PointsEarned: correctAnswers * s.cfg.CorrectAnswer,
			Reason:       model.ReasonCorrectAnswers,
			Description:  fmt.Sprintf("%d correct answers", correctAnswers),
		})
	}

	if score == 100 {
		entries = append(entries, model.PointsEntry{
			UserID:       userID,
			AttemptID:    &attemptID,
			PointsEarned: s.cfg.PerfectQuiz,
			Reason:       model.ReasonPerfectScore,
			Description:  "Perfect quiz score (100%)",
		})
	}

	if isFirstQuiz {
		entries = append(entries, model.PointsEntry{
			UserID:       userID,
			AttemptID:    &attemptID,
			PointsEarned: s.cfg.FirstQuiz,
			Reason:       model.ReasonFirstQuiz,
			Description:  "First quiz completed",
		})
	}

	return entries
}

// AwardStreakBonus grants streakDays x the streak constant. Used by the daily
// scheduler; the grant still goes through the ledger and the stats row.
func (s *pointsService) AwardStreakBonus(userID uint, streakDays int) (int, error) {
	bonus := streakDays * s.cfg.StreakBonus

	err := s.db.Transaction(func(tx *gorm.DB) error {
		entry := model.PointsEntry{
			UserID:       userID,
			PointsEarned: bonus,
			Reason:       model.ReasonStreakBonus,
			Description:  fmt.Sprintf("%d day streak bonus", streakDays),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("inserting streak bonus: %w", err)
		}
		_, err := s.applyToStats(tx, userID, bonus, nil)
		return err
	})
	if err != nil {
		return 0, err
	}
	return bonus, nil
}

// AwardCustomPoints records an arbitrary grant (achievements, admin actions).
func (s *pointsService) AwardCustomPoints(userID uint, points int, reason, description string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		entry := model.PointsEntry{
			UserID:       userID,
			PointsEarned: points,
			Reason:       reason,
			Description:  description,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("inserting custom points: %w", err)
		}
		_, err := s.applyToStats(tx, userID, points, nil)
		return err
	})
}

// applyToStats folds a grant into the user's stats row: get-or-create the
// row, accumulate totals (plus quiz counters, streak and running average when
// a quiz outcome is supplied), then recompute the level. A level crossing
// appends one more ledger entry inside the same transaction and returns it.
func (s *pointsService) applyToStats(tx *gorm.DB, userID uint, pointsToAdd int, outcome *quizOutcome) (*model.PointsEntry, error) {
	stats, err := s.getOrCreateStats(tx, userID)
	if err != nil {
		return nil, err
	}

	newTotal := stats.TotalPoints + pointsToAdd

	if outcome != nil {
		stats.TotalQuizzesCompleted++
		s.advanceStreak(stats)

		stats.CorrectAnswers += outcome.correctAnswers
		stats.TotalAnswers += outcome.totalQuestions
		count := float64(stats.TotalQuizzesCompleted)
		newAverage := (stats.AverageScore*(count-1) + float64(outcome.scorePercentage)) / count
		stats.AverageScore = math.Round(newAverage*100) / 100
	}

	var levelUpEntry *model.PointsEntry
	newLevel := s.levels.LevelFor(newTotal)
	if newLevel > stats.Level {
		bonus := newLevel * s.cfg.LevelUpMultiplier
		levelUpEntry = &model.PointsEntry{
			UserID:       userID,
			PointsEarned: bonus,
			Reason:       model.ReasonLevelUp,
			Description:  fmt.Sprintf("Reached level %d", newLevel),
		}
		if err := tx.Create(levelUpEntry).Error; err != nil {
			return nil, fmt.Errorf("inserting level-up bonus: %w", err)
		}

		stats.Level = newLevel
		stats.PointsForNextLevel = remainingToNext(s.levels, newLevel, newTotal)
		// The bonus joins the total after the level computation, so a
		// level-up entry never cascades into a second level-up.
		newTotal += bonus
	} else {
		stats.PointsForNextLevel = remainingToNext(s.levels, stats.Level, newTotal)
	}

	stats.TotalPoints = newTotal
	if err := tx.Save(stats).Error; err != nil {
		return nil, fmt.Errorf("updating user stats: %w", err)
	}
	return levelUpEntry, nil
}

// advanceStreak applies the daily-streak state machine for a quiz completed
// today. Same calendar day leaves the streak untouched.
func (s *pointsService) advanceStreak(stats *model.UserStats) {
	today := dateOnly(time.Now().UTC())

	if stats.LastQuizDate == nil {
		stats.CurrentStreak = 1
		if stats.LongestStreak < 1 {
			stats.LongestStreak = 1
		}
		stats.LastQuizDate = &today
		return
	}

	switch days := daysBetween(dateOnly(*stats.LastQuizDate), today); {
	case days == 1:
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
	case days > 1:
		stats.CurrentStreak = 1
	}
	stats.LastQuizDate = &today
}

// getOrCreateStats upserts the zero-initialized row and re-reads it. The
// unique index on user_id plus ON CONFLICT DO NOTHING makes concurrent first
// submissions safe: exactly one row survives and both transactions see it.
func (s *pointsService) getOrCreateStats(tx *gorm.DB, userID uint) (*model.UserStats, error) {
	seed := model.UserStats{
		UserID:             userID,
		Level:              1,
		PointsForNextLevel: s.levels.PointsForNextLevel(1),
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&seed).Error; err != nil {
		return nil, fmt.Errorf("upserting user stats: %w", err)
	}

	var stats model.UserStats
	if err := tx.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return nil, fmt.Errorf("loading user stats: %w", err)
	}
	return &stats, nil
}

// CalculateQuizPoints previews the breakdown an award would grant, without
// touching the ledger. Level-up bonuses are excluded: they depend on the
// user's running total, not on the attempt.
func (s *pointsService) CalculateQuizPoints(score, totalQuestions, correctAnswers int, isFirstQuiz bool) dto.PointsCalculation {
	calc := dto.PointsCalculation{}

	add := func(reason string, points int, description string) {
		calc.TotalPoints += points
		calc.Breakdown = append(calc.Breakdown, dto.PointsBreakdown{
			Reason:      reason,
			Points:      points,
			Description: description,
		})
	}

	add(model.ReasonQuizCompletion, s.cfg.QuizCompletion, "Quiz completion")
	if correctAnswers > 0 {
		add(model.ReasonCorrectAnswers, correctAnswers*s.cfg.CorrectAnswer,
			fmt.Sprintf("%d correct answers", correctAnswers))
	}
	if score == 100 {
		add(model.ReasonPerfectScore, s.cfg.PerfectQuiz, "Perfect score bonus")
	}
	if isFirstQuiz {
		add(model.ReasonFirstQuiz, s.cfg.FirstQuiz, "First quiz bonus")
	}

	return calc
}

// GetUserStats returns the user's stats row, creating the zero row on first
// access.
func (s *pointsService) GetUserStats(userID uint) (*model.UserStats, error) {
	var stats *model.UserStats
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		stats, txErr = s.getOrCreateStats(tx, userID)
		return txErr
	})
	return stats, err
}

func (s *pointsService) GetPointsHistory(userID uint, limit int) ([]model.PointsEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.pointsRepo.FindByUser(userID, limit)
}

// remainingToNext is the gap from points to the next level's threshold, nil
// at max level.
func remainingToNext(levels LevelEngine, level, points int) *int {
	next := levels.PointsForNextLevel(level)
	if next == nil {
		return nil
	}
	remaining := *next - points
	return &remaining
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
