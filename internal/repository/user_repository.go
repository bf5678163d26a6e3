package repository

import (
	"goldenbell_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByName(name string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("name = ?", name).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// LeaderboardRow 총점 순위 조회 결과
type LeaderboardRow struct {
	UserID      uint   `json:"userId"`
	Name        string `json:"name"`
	TotalPoints int    `json:"totalPoints"`
	MaxCombo    int    `json:"maxCombo"`
}

func (r *UserRepository) FindTopByPoints(limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.DB.Model(&model.UserStats{}).
		Select("user_stats.user_id, users.name, user_stats.total_points, user_stats.max_combo").
		Joins("JOIN users ON users.id = user_stats.user_id").
		Order("user_stats.total_points DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
