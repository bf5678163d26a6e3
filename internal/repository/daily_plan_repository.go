package repository

import (
	"goldenbell_backend/internal/model"

	"gorm.io/gorm"
)

type DailyPlanRepository struct {
	DB *gorm.DB
}

func NewDailyPlanRepository(db *gorm.DB) *DailyPlanRepository {
	return &DailyPlanRepository{DB: db}
}

func (r *DailyPlanRepository) CreatePlans(plans []model.DailyPlan) error {
	return r.DB.CreateInBatches(plans, 50).Error
}

func (r *DailyPlanRepository) CreatePlanQuestions(questions []model.DailyPlanQuestion) error {
	return r.DB.CreateInBatches(questions, 200).Error
}

func (r *DailyPlanRepository) FindPlans(userID uint) ([]model.DailyPlan, error) {
	var plans []model.DailyPlan
	err := r.DB.Where("user_id = ?", userID).Order("day_number asc").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *DailyPlanRepository) FindDayQuestions(userID uint, dayNumber int) ([]model.DailyPlanQuestion, error) {
	var questions []model.DailyPlanQuestion
	err := r.DB.Where("user_id = ? AND day_number = ?", userID, dayNumber).
		Order("id asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// DayProgressRow 일차별 배정/해결 수
type DayProgressRow struct {
	DayNumber   int
	Total       int
	SolvedCount int
}

// FindDayProgress 전체 일차의 배정 수와 해결 수를 한 번에 집계
func (r *DailyPlanRepository) FindDayProgress(userID uint) ([]DayProgressRow, error) {
	var rows []DayProgressRow
	err := r.DB.Model(&model.DailyPlanQuestion{}).
		Select("day_number, COUNT(*) AS total, SUM(CASE WHEN solved THEN 1 ELSE 0 END) AS solved_count").
		Where("user_id = ?", userID).
		Group("day_number").
		Order("day_number asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkSolved 배정된 문제를 해결 처리. false→true 단방향이며 멱등
func (r *DailyPlanRepository) MarkSolved(userID, questionID uint) error {
	return r.DB.Model(&model.DailyPlanQuestion{}).
		Where("user_id = ? AND question_id = ? AND solved = ?", userID, questionID, false).
		Update("solved", true).Error
}

// ResetDay 일차의 해결 플래그를 전부 해제해 다시 풀 수 있게 한다.
// 배정과 일차 번호는 유지됨
func (r *DailyPlanRepository) ResetDay(userID uint, dayNumber int) error {
	return r.DB.Model(&model.DailyPlanQuestion{}).
		Where("user_id = ? AND day_number = ?", userID, dayNumber).
		Update("solved", false).Error
}

func (r *DailyPlanRepository) CountAssigned(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.DailyPlanQuestion{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
