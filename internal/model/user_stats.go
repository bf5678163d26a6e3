package model

import "time"

// UserStats 사용자별 진행 집계. 회원가입 시 1행 생성되고 매 시도마다 갱신됨.
// CurrentCombo <= MaxCombo 불변식 유지
// swagger:model UserStats
type UserStats struct {
	BaseModel
	UserID          uint       `gorm:"uniqueIndex;not null" json:"userId"`
	TotalPoints     int        `gorm:"default:0" json:"totalPoints"`
	CurrentCombo    int        `gorm:"default:0" json:"currentCombo"`
	MaxCombo        int        `gorm:"default:0" json:"maxCombo"`
	ConsecutiveDays int        `gorm:"default:0" json:"consecutiveDays"`
	LastStudyDate   *time.Time `json:"lastStudyDate"`
	PlanStartDate   *time.Time `json:"planStartDate"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
