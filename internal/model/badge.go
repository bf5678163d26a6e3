package model

import "time"

// Badge 전역 뱃지 카탈로그
// swagger:model Badge
type Badge struct {
	BaseModel
	BadgeKey    string `gorm:"size:50;uniqueIndex;not null" json:"badgeKey"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge 사용자별 뱃지 선반. 회원가입 시 미획득 상태로 전부 생성되고
// EarnedAt은 정확히 한 번만 설정됨 (재수여/회수 없음)
// swagger:model UserBadge
type UserBadge struct {
	BaseModel
	UserID      uint       `gorm:"index:idx_user_badge_key,unique;not null" json:"userId"`
	BadgeKey    string     `gorm:"size:50;index:idx_user_badge_key,unique;not null" json:"badgeKey"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"size:255" json:"description"`
	EarnedAt    *time.Time `json:"earnedAt"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}

// DefaultBadges 회원가입 시 생성되는 뱃지 목록
var DefaultBadges = []Badge{
	{BadgeKey: "first_step", Name: "첫 발걸음", Description: "첫 문제를 풀었어요!"},
	{BadgeKey: "easy_master", Name: "하 마스터", Description: "하 난이도 전체 정답"},
	{BadgeKey: "medium_master", Name: "중 마스터", Description: "중 난이도 전체 정답"},
	{BadgeKey: "hard_master", Name: "상 마스터", Description: "상 난이도 전체 정답"},
	{BadgeKey: "expert_master", Name: "최상 마스터", Description: "최상 난이도 전체 정답"},
	{BadgeKey: "combo_10", Name: "10콤보", Description: "연속 10문제 정답!"},
	{BadgeKey: "combo_50", Name: "50콤보", Description: "연속 50문제 정답!"},
	{BadgeKey: "daily_complete", Name: "일일 완주", Description: "하루 50문제 완료!"},
	{BadgeKey: "weekly_streak", Name: "주간 완주", Description: "7일 연속 학습!"},
	{BadgeKey: "golden_star", Name: "골든별 마스터", Description: "전체 1,200문제 완료!"},
	{BadgeKey: "space_doctor", Name: "우주 박사", Description: "정답률 90% 이상!"},
}
