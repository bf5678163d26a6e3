package repository

import (
	"time"

	"goldenbell_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

// CountByQuestion 해당 문제의 전체 시도 수 (첫 풀이 보너스 판정용, 사용자 무관)
func (r *AttemptRepository) CountByQuestion(questionID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).Where("question_id = ?", questionID).Count(&count).Error
	return count, err
}

func (r *AttemptRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *AttemptRepository) CountCorrectByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).Where("user_id = ? AND is_correct = ?", userID, true).Count(&count).Error
	return count, err
}

// CountTodayByUser 오늘(달력일 기준) 시도 수
func (r *AttemptRepository) CountTodayByUser(userID uint, now time.Time) (int64, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var count int64
	err := r.DB.Model(&model.Attempt{}).
		Where("user_id = ? AND created_at >= ?", userID, startOfDay).
		Count(&count).Error
	return count, err
}

// CountDistinctCorrect 정답을 맞힌 고유 문제 수
func (r *AttemptRepository) CountDistinctCorrect(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Distinct("question_id").
		Count(&count).Error
	return count, err
}

func (r *AttemptRepository) CountDistinctAttempted(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).
		Where("user_id = ?", userID).
		Distinct("question_id").
		Count(&count).Error
	return count, err
}

// CountDistinctCorrectByDifficulty 난이도별 정답 고유 문제 수
func (r *AttemptRepository) CountDistinctCorrectByDifficulty(userID uint, difficulty string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).
		Joins("JOIN questions ON questions.id = attempts.question_id").
		Where("attempts.user_id = ? AND attempts.is_correct = ? AND questions.difficulty = ?", userID, true, difficulty).
		Distinct("attempts.question_id").
		Count(&count).Error
	return count, err
}

// WrongQuestionRow 오답노트 조회 결과
type WrongQuestionRow struct {
	QuestionID uint `json:"questionId"`
	WrongCount int  `json:"wrongCount"`
}

// FindUnresolvedWrong 아직 극복하지 못한 오답 문제 목록.
// 오답 기록이 있으면서 마지막 오답 이후 정답이 없는 문제만 포함, 오답 많은 순
func (r *AttemptRepository) FindUnresolvedWrong(userID uint) ([]WrongQuestionRow, error) {
	var rows []WrongQuestionRow
	err := r.DB.Raw(`
		SELECT a.question_id, COUNT(*) AS wrong_count
		FROM attempts a
		WHERE a.user_id = ? AND a.is_correct = false
		AND a.question_id NOT IN (
			SELECT a2.question_id
			FROM attempts a2
			WHERE a2.user_id = ? AND a2.is_correct = true
			AND a2.created_at > (
				SELECT MAX(a3.created_at)
				FROM attempts a3
				WHERE a3.user_id = ? AND a3.question_id = a2.question_id AND a3.is_correct = false
			)
		)
		GROUP BY a.question_id
		ORDER BY COUNT(*) DESC
	`, userID, userID, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
