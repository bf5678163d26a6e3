package model

// SkippedAnswer 답을 적지 않고 넘어간 시도의 기록값
const SkippedAnswer = "(건너뜀)"

// Attempt 채점 이벤트 1건. append-only, 수정/삭제 없음
// swagger:model Attempt
type Attempt struct {
	BaseModel
	UserID     uint   `gorm:"index;not null" json:"userId"`
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	UserAnswer string `gorm:"type:text" json:"userAnswer"`
	IsCorrect  bool   `gorm:"index" json:"isCorrect"`
	Points     int    `gorm:"default:0" json:"points"`
}

func (Attempt) TableName() string {
	return "attempts"
}
