package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

// GlobalAggregates is the platform-wide rollup over all stats rows.
type GlobalAggregates struct {
	TotalUsers    int64
	TotalPoints   int64
	TotalQuizzes  int64
	AverageLevel  float64
	HighestLevel  int
	HighestPoints int
	LongestStreak int
}

type UserStatsRepository interface {
	FindByUser(userID uint) (*model.UserStats, error)
	TopByPoints(limit int) ([]model.UserStats, error)
	CountWithMorePoints(points int) (int64, error)
	// StreakCandidates returns stats rows whose streak is still alive as of
	// lastQuizDate and has reached minDays.
	StreakCandidates(lastQuizDate string, minDays int) ([]model.UserStats, error)
	Aggregates() (*GlobalAggregates, error)
}

type userStatsRepository struct {
	db *gorm.DB
}

func NewUserStatsRepository(db *gorm.DB) UserStatsRepository {
	return &userStatsRepository{db: db}
}

func (r *userStatsRepository) FindByUser(userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.db.Where("user_id = ?", userID).First(&stats).Error
	return &stats, err
}

func (r *userStatsRepository) TopByPoints(limit int) ([]model.UserStats, error) {
	var rows []model.UserStats
	err := r.db.
		Order("total_points DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *userStatsRepository) CountWithMorePoints(points int) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserStats{}).
		Where("total_points > ?", points).
		Count(&count).Error
	return count, err
}

func (r *userStatsRepository) StreakCandidates(lastQuizDate string, minDays int) ([]model.UserStats, error) {
	var rows []model.UserStats
	err := r.db.
		Where("DATE(last_quiz_date) = ? AND current_streak >= ?", lastQuizDate, minDays).
		Find(&rows).Error
	return rows, err
}

func (r *userStatsRepository) Aggregates() (*GlobalAggregates, error) {
	var agg GlobalAggregates
	if err := r.db.Model(&model.UserStats{}).Count(&agg.TotalUsers).Error; err != nil {
		return nil, err
	}
	row := r.db.Model(&model.UserStats{}).
		Select("COALESCE(SUM(total_points),0), COALESCE(SUM(total_quizzes_completed),0), COALESCE(AVG(level),0), COALESCE(MAX(level),1), COALESCE(MAX(total_points),0), COALESCE(MAX(longest_streak),0)").
		Row()
	if err := row.Scan(&agg.TotalPoints, &agg.TotalQuizzes, &agg.AverageLevel,
		&agg.HighestLevel, &agg.HighestPoints, &agg.LongestStreak); err != nil {
		return nil, err
	}
	return &agg, nil
}
