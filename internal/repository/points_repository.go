package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type PointsRepository interface {
	FindByUser(userID uint, limit int) ([]model.PointsEntry, error)
	SumByUser(userID uint) (int64, error)
}

type pointsRepository struct {
	db *gorm.DB
}

func NewPointsRepository(db *gorm.DB) PointsRepository {
	return &pointsRepository{db: db}
}

func (r *pointsRepository) FindByUser(userID uint, limit int) ([]model.PointsEntry, error) {
	var entries []model.PointsEntry
	err := r.db.
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *pointsRepository) SumByUser(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&model.PointsEntry{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&total).Error
	return total, err
}
