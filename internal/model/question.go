package model

// 난이도 (difficulty tiers)
const (
	DifficultyEasy   = "하"
	DifficultyMedium = "중"
	DifficultyHard   = "상"
	DifficultyExpert = "최상"
)

// DifficultyRank 정렬용 커스텀 난이도 순서: 하 < 중 < 상 < 최상
// 사전순이 아니므로 별도 매핑이 필요함
func DifficultyRank(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	case DifficultyExpert:
		return 3
	default:
		return 0
	}
}

// Question 문제 은행의 단일 문제. 시딩 이후 불변
// swagger:model Question
type Question struct {
	BaseModel
	Course         string `gorm:"size:50;index" json:"course"`
	Month          int    `gorm:"index" json:"month"`
	Topic          string `gorm:"size:100;index" json:"topic"`
	Difficulty     string `gorm:"size:10;index" json:"difficulty"`
	QuestionNumber int    `json:"questionNumber"`
	QuestionText   string `gorm:"type:text" json:"questionText"`
	Answer         string `gorm:"type:text" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
