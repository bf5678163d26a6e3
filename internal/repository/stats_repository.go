package repository

import (
	"time"

	"goldenbell_backend/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) Create(stats *model.UserStats) error {
	return r.DB.Create(stats).Error
}

func (r *StatsRepository) FindByUserID(userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.DB.Where("user_id = ?", userID).First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// AddPoints 총점 증가. 증가 전용 필드라 원자적 UPDATE 식으로만 갱신
func (r *StatsRepository) AddPoints(userID uint, points int) error {
	return r.DB.Model(&model.UserStats{}).
		Where("user_id = ?", userID).
		Update("total_points", gorm.Expr("total_points + ?", points)).Error
}

// SetPlanStartDate 플랜 시작일 설정. 이미 설정되어 있으면 건드리지 않음
func (r *StatsRepository) SetPlanStartDate(userID uint, date time.Time) error {
	return r.DB.Model(&model.UserStats{}).
		Where("user_id = ? AND plan_start_date IS NULL", userID).
		Update("plan_start_date", date).Error
}
