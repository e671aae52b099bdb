package service

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quizforge/internal/model"
	"quizforge/internal/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.Quiz{}, &model.Question{}, &model.Attempt{},
		&model.AnswerRecord{}, &model.PointsEntry{}, &model.UserStats{},
	); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func newTestPointsService(t *testing.T, db *gorm.DB) PointsService {
	t.Helper()
	cfg := DefaultPointsConfig()
	return NewPointsService(db, cfg, NewLevelEngine(cfg), repository.NewPointsRepository(db))
}

func seedAttempt(t *testing.T, db *gorm.DB, userID, quizID uint) uint {
	t.Helper()
	attempt := model.Attempt{UserID: userID, QuizID: quizID, CompletedAt: time.Now().UTC()}
	if err := db.Create(&attempt).Error; err != nil {
		t.Fatalf("seeding attempt: %v", err)
	}
	return attempt.ID
}

func loadStats(t *testing.T, db *gorm.DB, userID uint) model.UserStats {
	t.Helper()
	var stats model.UserStats
	if err := db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		t.Fatalf("loading stats: %v", err)
	}
	return stats
}

func entriesByReason(entries []model.PointsEntry) map[string]int {
	byReason := make(map[string]int)
	for _, e := range entries {
		byReason[e.Reason] = e.PointsEarned
	}
	return byReason
}

func TestAwardQuizPointsFirstQuiz(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPointsService(t, db)
	attemptID := seedAttempt(t, db, 1, 1)

	result, err := svc.AwardQuizPoints(1, attemptID, 80, 5, 4)
	if err != nil {
		t.Fatalf("AwardQuizPoints: %v", err)
	}

	// 10 completion + 20 correct + 20 first quiz
	if result.TotalPoints != 50 {
		t.Errorf("total points = %d, want 50", result.TotalPoints)
	}
	byReason := entriesByReason(result.Entries)
	if byReason[model.ReasonQuizCompletion] != 10 {
		t.Errorf("completion points = %d, want 10", byReason[model.ReasonQuizCompletion])
	}
	if byReason[model.ReasonCorrectAnswers] != 20 {
		t.Errorf("correct answer points = %d, want 20", byReason[model.ReasonCorrectAnswers])
	}
	if byReason[model.ReasonFirstQuiz] != 20 {
		t.Errorf("first quiz points = %d, want 20", byReason[model.ReasonFirstQuiz])
	}
	if _, ok := byReason[model.ReasonPerfectScore]; ok {
		t.Error("80% score must not earn the perfect bonus")
	}

	stats := loadStats(t, db, 1)
	if stats.TotalPoints != 50 || stats.TotalQuizzesCompleted != 1 {
		t.Errorf("stats = %d points over %d quizzes, want 50 over 1", stats.TotalPoints, stats.TotalQuizzesCompleted)
	}
	if stats.AverageScore != 80 {
		t.Errorf("average score = %f, want 80", stats.AverageScore)
	}
	if stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
		t.Errorf("streak = %d/%d, want 1/1", stats.CurrentStreak, stats.LongestStreak)
	}
	if stats.Level != 1 {
		t.Errorf("level = %d, want 1", stats.Level)
	}
	if stats.PointsForNextLevel == nil || *stats.PointsForNextLevel != 50 {
		t.Errorf("points for next level = %v, want 50", stats.PointsForNextLevel)
	}
}

func TestAwardQuizPointsPerfectScoreAndLevelUp(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPointsService(t, db)

	first := seedAttempt(t, db, 2, 1)
	if _, err := svc.AwardQuizPoints(2, first, 80, 5, 4); err != nil {
		t.Fatalf("first award: %v", err)
	}

	second := seedAttempt(t, db, 2, 1)
	result, err := svc.AwardQuizPoints(2, second, 100, 5, 5)
	if err != nil {
		t.Fatalf("second award: %v", err)
	}

	// 10 completion + 25 correct + 50 perfect crosses 100 points, then the
	// level 2 bonus of 4 lands on top.
	byReason := entriesByReason(result.Entries)
	if byReason[model.ReasonPerfectScore] != 50 {
		t.Errorf("perfect bonus = %d, want 50", byReason[model.ReasonPerfectScore])
	}
	if byReason[model.ReasonLevelUp] != 4 {
		t.Errorf("level-up bonus = %d, want 4", byReason[model.ReasonLevelUp])
	}
	if _, ok := byReason[model.ReasonFirstQuiz]; ok {
		t.Error("second quiz must not earn the first-quiz bonus")
	}
	if result.TotalPoints != 89 {
		t.Errorf("total points = %d, want 89", result.TotalPoints)
	}

	stats := loadStats(t, db, 2)
	if stats.TotalPoints != 139 {
		t.Errorf("total points = %d, want 139", stats.TotalPoints)
	}
	if stats.Level != 2 {
		t.Errorf("level = %d, want 2", stats.Level)
	}
	if stats.PointsForNextLevel == nil || *stats.PointsForNextLevel != 115 {
		t.Errorf("points for next level = %v, want 115 (250 threshold at 135 pre-bonus)", stats.PointsForNextLevel)
	}
	if stats.AverageScore != 90 {
		t.Errorf("average score = %f, want 90", stats.AverageScore)
	}
}

func TestLedgerAndStatsStayConsistent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPointsService(t, db)
	pointsRepo := repository.NewPointsRepository(db)

	scores := []struct{ score, total, correct int }{
		{100, 5, 5}, {60, 5, 3}, {100, 10, 10}, {40, 5, 2}, {80, 5, 4},
	}
	for _, s := range scores {
		attemptID := seedAttempt(t, db, 3, 1)
		if _, err := svc.AwardQuizPoints(3, attemptID, s.score, s.total, s.correct); err != nil {
			t.Fatalf("AwardQuizPoints: %v", err)
		}
	}
	if err := svc.AwardCustomPoints(3, 30, "achievement", "tester badge"); err != nil {
		t.Fatalf("AwardCustomPoints: %v", err)
	}

	sum, err := pointsRepo.SumByUser(3)
	if err != nil {
		t.Fatalf("SumByUser: %v", err)
	}
	stats := loadStats(t, db, 3)
	if int64(stats.TotalPoints) != sum {
		t.Errorf("stats total %d diverged from ledger sum %d", stats.TotalPoints, sum)
	}

	var firstQuizEntries int64
	if err := db.Model(&model.PointsEntry{}).
		Where("user_id = ? AND reason = ?", 3, model.ReasonFirstQuiz).
		Count(&firstQuizEntries).Error; err != nil {
		t.Fatalf("counting first-quiz entries: %v", err)
	}
	if firstQuizEntries != 1 {
		t.Errorf("first-quiz bonus granted %d times, want exactly once", firstQuizEntries)
	}
}

func TestStreakTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPointsService(t, db)

	award := func() {
		t.Helper()
		attemptID := seedAttempt(t, db, 4, 1)
		if _, err := svc.AwardQuizPoints(4, attemptID, 50, 4, 2); err != nil {
			t.Fatalf("AwardQuizPoints: %v", err)
		}
	}
	setLastQuizDate := func(daysAgo int) {
		t.Helper()
		date := time.Now().UTC().AddDate(0, 0, -daysAgo)
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		if err := db.Model(&model.UserStats{}).
			Where("user_id = ?", 4).
			Update("last_quiz_date", date).Error; err != nil {
			t.Fatalf("setting last quiz date: %v", err)
		}
	}

	award()
	if s := loadStats(t, db, 4); s.CurrentStreak != 1 {
		t.Fatalf("initial streak = %d, want 1", s.CurrentStreak)
	}

	// Same day: untouched.
	award()
	if s := loadStats(t, db, 4); s.CurrentStreak != 1 {
		t.Errorf("same-day streak = %d, want 1", s.CurrentStreak)
	}

	// Consecutive day: incremented.
	setLastQuizDate(1)
	award()
	if s := loadStats(t, db, 4); s.CurrentStreak != 2 || s.LongestStreak != 2 {
		t.Errorf("next-day streak = %d/%d, want 2/2", s.CurrentStreak, s.LongestStreak)
	}

	// Gap: reset to 1, longest preserved.
	setLastQuizDate(3)
	award()
	if s := loadStats(t, db, 4); s.CurrentStreak != 1 || s.LongestStreak != 2 {
		t.Errorf("post-gap streak = %d/%d, want 1/2", s.CurrentStreak, s.LongestStreak)
	}
}

func TestAwardStreakBonus(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPointsService(t, db)

	bonus, err := svc.AwardStreakBonus(5, 4)
	if err != nil {
		t.Fatalf("AwardStreakBonus: %v", err)
	}
	if bonus != 100 {
		t.Errorf("bonus = %d, want 100 for a 4 day streak", bonus)
	}

	stats := loadStats(t, db, 5)
	if stats.TotalPoints != 104 {
		// 100 streak bonus plus the level 2 bonus of 4 it triggers.
		t.Errorf("total points = %d, want 104", stats.TotalPoints)
	}
	if stats.Level != 2 {
		t.Errorf("level = %d, want 2", stats.Level)
	}
	if stats.TotalQuizzesCompleted != 0 {
		t.Errorf("streak bonus must not count as a completed quiz, got %d", stats.TotalQuizzesCompleted)
	}
}

func TestCalculateQuizPointsPreview(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPointsService(t, db)

	calc := svc.CalculateQuizPoints(100, 10, 10, true)
	// 10 completion + 50 correct + 50 perfect + 20 first
	if calc.TotalPoints != 130 {
		t.Errorf("preview total = %d, want 130", calc.TotalPoints)
	}
	if len(calc.Breakdown) != 4 {
		t.Errorf("breakdown has %d components, want 4", len(calc.Breakdown))
	}

	var count int64
	if err := db.Model(&model.PointsEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("counting entries: %v", err)
	}
	if count != 0 {
		t.Errorf("preview wrote %d ledger entries, want none", count)
	}
}

func TestGetUserStatsCreatesRowLazily(t *testing.T) {
	db := newTestDB(t)
	svc := newTestPointsService(t, db)

	stats, err := svc.GetUserStats(42)
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.UserID != 42 || stats.Level != 1 || stats.TotalPoints != 0 {
		t.Errorf("fresh stats = %+v, want zeroed level 1 row", stats)
	}
	if stats.PointsForNextLevel == nil || *stats.PointsForNextLevel != 100 {
		t.Errorf("points for next level = %v, want 100", stats.PointsForNextLevel)
	}
}
