package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type QuizRepository interface {
	FindByID(id uint) (*model.Quiz, error)
	FindByIDWithQuestions(id uint) (*model.Quiz, error)
	FindByIDForUser(id, userID uint) (*model.Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_number ASC")
		}).
		First(&quiz, id).Error
	return &quiz, err
}

func (r *quizRepository) FindByIDForUser(id, userID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&quiz).Error
	return &quiz, err
}
