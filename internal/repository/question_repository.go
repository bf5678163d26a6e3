package repository

import (
	"goldenbell_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// QuestionFilter 문제 목록 필터 (빈 값은 무시)
type QuestionFilter struct {
	Course     string
	Month      int
	Difficulty string
	Topic      string
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) List(filter QuestionFilter) ([]model.Question, error) {
	query := r.DB.Model(&model.Question{})

	if filter.Course != "" {
		query = query.Where("course = ?", filter.Course)
	}
	if filter.Month != 0 {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Topic != "" {
		query = query.Where("topic = ?", filter.Topic)
	}

	var questions []model.Question
	err := query.Order("month asc, question_number asc").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// FindAll 플랜 생성용 전체 문제 은행 조회.
// 난이도 커스텀 정렬은 DB가 모르므로 호출 측에서 수행한다
func (r *QuestionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Order("course asc, month asc, question_number asc").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("id IN ?", ids).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) CountByDifficulty(difficulty string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("difficulty = ?", difficulty).Count(&count).Error
	return count, err
}
