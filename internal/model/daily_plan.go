package model

import "time"

// 24일 x 하루 50문제 학습 플랜
const (
	PlanTotalDays       = 24
	PlanQuestionsPerDay = 50
)

// DailyPlan (user, dayNumber) 별 1행. 플랜 시작 시 일괄 생성
type DailyPlan struct {
	BaseModel
	UserID    uint      `gorm:"index:idx_plan_user_day,unique;not null" json:"userId"`
	DayNumber int       `gorm:"index:idx_plan_user_day,unique;not null" json:"dayNumber"`
	Date      time.Time `gorm:"not null" json:"date"`
}

func (DailyPlan) TableName() string {
	return "daily_plans"
}

// DailyPlanQuestion 특정 일차에 배정된 문제. solved는 false→true 단방향
type DailyPlanQuestion struct {
	BaseModel
	UserID     uint `gorm:"index:idx_plan_q_user_question,unique;not null" json:"userId"`
	DayNumber  int  `gorm:"index" json:"dayNumber"`
	QuestionID uint `gorm:"index:idx_plan_q_user_question,unique;not null" json:"questionId"`
	Solved     bool `gorm:"default:false" json:"solved"`
}

func (DailyPlanQuestion) TableName() string {
	return "daily_plan_questions"
}
