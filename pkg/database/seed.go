package database

import (
	"encoding/json"
	"log"
	"os"

	"goldenbell_backend/internal/model"

	"gorm.io/gorm"
)

type seedQuestion struct {
	Course         string `json:"course"`
	Month          int    `json:"month"`
	Topic          string `json:"topic"`
	Difficulty     string `json:"difficulty"`
	QuestionNumber int    `json:"questionNumber"`
	QuestionText   string `json:"questionText"`
	Answer         string `json:"answer"`
}

// SeedQuestions questions.json에서 문제 은행을 로드한다.
// 이미 문제가 있으면 건너뜀 (문제는 시딩 이후 불변)
func SeedQuestions(db *gorm.DB, path string) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seeds []seedQuestion
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return err
	}

	questions := make([]model.Question, 0, len(seeds))
	for _, s := range seeds {
		questions = append(questions, model.Question{
			Course:         s.Course,
			Month:          s.Month,
			Topic:          s.Topic,
			Difficulty:     s.Difficulty,
			QuestionNumber: s.QuestionNumber,
			QuestionText:   s.QuestionText,
			Answer:         s.Answer,
		})
	}

	if err := db.CreateInBatches(questions, 200).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d questions", len(questions))
	return nil
}
