package repository

import (
	"quizforge/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByQuizOrdered(quizID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindByQuizOrdered(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("quiz_id = ?", quizID).
		Order("question_number ASC").
		Find(&questions).Error
	return questions, err
}
