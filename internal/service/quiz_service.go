package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"quizforge/internal/dto"
	"quizforge/internal/repository"
)

// QuizService serves the quiz read path used before starting an attempt.
type QuizService interface {
	GetQuizWithQuestions(quizID, userID uint) (*dto.QuizResponse, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetQuizWithQuestions(quizID, userID uint) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("loading quiz: %w", err)
	}
	if quiz.UserID != userID {
		return nil, ErrQuizNotFound
	}

	resp := &dto.QuizResponse{}
	if err := copier.Copy(resp, quiz); err != nil {
		return nil, fmt.Errorf("mapping quiz: %w", err)
	}
	return resp, nil
}
