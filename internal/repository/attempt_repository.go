package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository interface {
	FindByIDForUser(id, userID uint) (*model.Attempt, error)
	FindByIDWithAnswers(id, userID uint) (*model.Attempt, error)
	FindAllByUser(userID uint, quizID *uint, limit, offset int) ([]model.Attempt, error)
	CountByUser(userID uint) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) FindByIDForUser(id, userID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Quiz").
		Where("id = ? AND user_id = ?", id, userID).
		First(&attempt).Error
	return &attempt, err
}

func (r *attemptRepository) FindByIDWithAnswers(id, userID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Quiz").
		Preload("Answers.Question").
		Where("id = ? AND user_id = ?", id, userID).
		First(&attempt).Error
	return &attempt, err
}

func (r *attemptRepository) FindAllByUser(userID uint, quizID *uint, limit, offset int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	query := r.db.Preload("Quiz").Where("user_id = ?", userID)
	if quizID != nil {
		query = query.Where("quiz_id = ?", *quizID)
	}
	err := query.
		Order("completed_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
