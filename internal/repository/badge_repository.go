package repository

import (
	"time"

	"goldenbell_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) FindCatalog() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("id asc").Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *BadgeRepository) FindByUser(userID uint) ([]model.UserBadge, error) {
	var badges []model.UserBadge
	err := r.DB.Where("user_id = ?", userID).Order("id asc").Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

// FindUnearnedByUser 아직 획득하지 않은 뱃지만 조회. 획득한 뱃지는 재평가 대상이 아님
func (r *BadgeRepository) FindUnearnedByUser(userID uint) ([]model.UserBadge, error) {
	var badges []model.UserBadge
	err := r.DB.Where("user_id = ? AND earned_at IS NULL", userID).Order("id asc").Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

// MarkEarned earned_at을 한 번만 설정. 이미 획득한 뱃지는 조건에 걸러져 no-op
func (r *BadgeRepository) MarkEarned(userID uint, badgeKey string, when time.Time) error {
	return r.DB.Model(&model.UserBadge{}).
		Where("user_id = ? AND badge_key = ? AND earned_at IS NULL", userID, badgeKey).
		Update("earned_at", when).Error
}

func (r *BadgeRepository) CreateUserBadges(badges []model.UserBadge) error {
	return r.DB.CreateInBatches(badges, 50).Error
}
