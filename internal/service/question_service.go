package service

import (
	"errors"

	"goldenbell_backend/internal/model"
	"goldenbell_backend/internal/repository"
	"goldenbell_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionService 문제 은행 조회
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

// QuestionView 정답 키를 제외한 문제 정보
type QuestionView struct {
	ID             uint   `json:"id"`
	Course         string `json:"course"`
	Month          int    `json:"month"`
	Topic          string `json:"topic"`
	Difficulty     string `json:"difficulty"`
	QuestionNumber int    `json:"questionNumber"`
	QuestionText   string `json:"questionText"`
}

func toQuestionView(q model.Question) QuestionView {
	return QuestionView{
		ID:             q.ID,
		Course:         q.Course,
		Month:          q.Month,
		Topic:          q.Topic,
		Difficulty:     q.Difficulty,
		QuestionNumber: q.QuestionNumber,
		QuestionText:   q.QuestionText,
	}
}

func (s *QuestionService) List(filter repository.QuestionFilter) ([]QuestionView, error) {
	questions, err := s.QuestionRepo.List(filter)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, toQuestionView(q))
	}
	return views, nil
}

func (s *QuestionService) Get(id uint) (*QuestionView, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	view := toQuestionView(*question)
	return &view, nil
}
