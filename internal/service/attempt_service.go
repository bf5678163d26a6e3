package service

import (
	"errors"
	"sync"
	"time"

	"goldenbell_backend/internal/model"
	"goldenbell_backend/internal/repository"
	"goldenbell_backend/internal/util"
	"goldenbell_backend/pkg/logger"
	"goldenbell_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttemptService 답안 제출 파이프라인:
// 채점 → 점수 → 기록 → 통계 갱신 → 플랜 해결 처리 → 뱃지 평가 → 콤보 보너스
type AttemptService struct {
	QuestionRepo *repository.QuestionRepository
	AttemptRepo  *repository.AttemptRepository
	StatsRepo    *repository.StatsRepository
	PlanRepo     *repository.DailyPlanRepository
	BadgeService *BadgeService
	DB           *gorm.DB

	// 사용자별 제출 직렬화. 동시 제출이 같은 콤보/스트릭을 읽고
	// 이중 적용하는 것을 막는다. 사용자끼리는 독립
	userLocks sync.Map
}

func NewAttemptService(
	questionRepo *repository.QuestionRepository,
	attemptRepo *repository.AttemptRepository,
	statsRepo *repository.StatsRepository,
	planRepo *repository.DailyPlanRepository,
	badgeService *BadgeService,
	db *gorm.DB,
) *AttemptService {
	return &AttemptService{
		QuestionRepo: questionRepo,
		AttemptRepo:  attemptRepo,
		StatsRepo:    statsRepo,
		PlanRepo:     planRepo,
		BadgeService: badgeService,
		DB:           db,
	}
}

// AttemptResult 제출 1건의 채점 결과
type AttemptResult struct {
	IsCorrect     bool     `json:"isCorrect"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        int      `json:"points"`
	Combo         int      `json:"combo"`
	NewBadges     []string `json:"newBadges"`
}

// progress 통계 전이 결과 (순수 계산)
type progress struct {
	Combo           int
	MaxCombo        int
	ConsecutiveDays int
}

func (s *AttemptService) lock(userID uint) *sync.Mutex {
	v, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// SubmitAttempt 답안 1건을 처리한다. 빈 답안은 건너뜀으로 기록되고 항상 오답.
// 쓰기는 단일 트랜잭션으로 묶이며 실패 시 이전 상태가 그대로 남는다
func (s *AttemptService) SubmitAttempt(userID, questionID uint, userAnswer string) (*AttemptResult, error) {
	mu := s.lock(userID)
	mu.Lock()
	defer mu.Unlock()

	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	isCorrect := false
	if userAnswer != "" {
		isCorrect = Grade(userAnswer, question.Answer)
	}

	// 첫 시도인지 확인 (전체 기준)
	prevAttempts, err := s.AttemptRepo.CountByQuestion(questionID)
	if err != nil {
		return nil, err
	}

	points := 0
	if isCorrect {
		points = PointsFor(question.Difficulty, prevAttempts == 0)
	}

	now := time.Now()
	recorded := userAnswer
	if recorded == "" {
		recorded = model.SkippedAnswer
	}

	prev, err := s.StatsRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	next := nextProgress(prev, isCorrect, now)
	bonus := ComboBonus(next.Combo)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		attempt := &model.Attempt{
			UserID:     userID,
			QuestionID: questionID,
			UserAnswer: recorded,
			IsCorrect:  isCorrect,
			Points:     points,
		}
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}

		if prev == nil {
			stats := &model.UserStats{
				UserID:          userID,
				TotalPoints:     points + bonus,
				CurrentCombo:    next.Combo,
				MaxCombo:        next.MaxCombo,
				ConsecutiveDays: next.ConsecutiveDays,
				LastStudyDate:   &now,
			}
			if err := tx.Create(stats).Error; err != nil {
				return err
			}
		} else {
			updates := map[string]interface{}{
				"total_points":     gorm.Expr("total_points + ?", points+bonus),
				"current_combo":    next.Combo,
				"max_combo":        next.MaxCombo,
				"consecutive_days": next.ConsecutiveDays,
				"last_study_date":  now,
			}
			if err := tx.Model(&model.UserStats{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
				return err
			}
		}

		// 플랜에 배정된 문제면 해결 처리 (멱등)
		if prev != nil && prev.PlanStartDate != nil {
			if err := tx.Model(&model.DailyPlanQuestion{}).
				Where("user_id = ? AND question_id = ? AND solved = ?", userID, questionID, false).
				Update("solved", true).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	result := "wrong"
	if isCorrect {
		result = "correct"
	}
	if userAnswer == "" {
		result = "skipped"
	}
	monitoring.AttemptCounter.WithLabelValues(result).Inc()

	// 뱃지는 방금 갱신된 집계 위에서 평가
	newBadges, err := s.BadgeService.CheckAndAward(userID, now)
	if err != nil {
		// 채점 결과 자체는 이미 확정됨. 뱃지 실패는 기록만 남긴다
		logger.Log.Error("badge evaluation failed", zap.Uint("userId", userID), zap.Error(err))
		newBadges = []string{}
	}

	if bonus > 0 {
		logger.Log.Info("combo bonus",
			zap.Uint("userId", userID),
			zap.Int("combo", next.Combo),
			zap.Int("bonus", bonus))
	}

	return &AttemptResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: question.Answer,
		Points:        points + bonus,
		Combo:         next.Combo,
		NewBadges:     newBadges,
	}, nil
}

// nextProgress 이전 통계와 이번 시도의 정오로 다음 통계를 계산한다.
// 콤보는 오답/건너뜀에서 0으로, 정답에서 +1.
// 스트릭은 마지막 학습일과 오늘의 날짜 차이가 1일이면 +1, 1일 초과면 1로 리셋,
// 같은 날이면 변화 없음
func nextProgress(prev *model.UserStats, isCorrect bool, now time.Time) progress {
	var currentCombo, maxCombo, consecutiveDays int
	var lastStudy *time.Time
	if prev != nil {
		currentCombo = prev.CurrentCombo
		maxCombo = prev.MaxCombo
		consecutiveDays = prev.ConsecutiveDays
		lastStudy = prev.LastStudyDate
	}

	newCombo := 0
	if isCorrect {
		newCombo = currentCombo + 1
	}
	if newCombo > maxCombo {
		maxCombo = newCombo
	}

	if lastStudy == nil {
		consecutiveDays = 1
	} else {
		switch gap := daysBetween(*lastStudy, now); {
		case gap == 1:
			consecutiveDays++
		case gap > 1:
			consecutiveDays = 1
		}
	}

	return progress{
		Combo:           newCombo,
		MaxCombo:        maxCombo,
		ConsecutiveDays: consecutiveDays,
	}
}

// daysBetween 달력일 기준 날짜 차이 (시각 무시)
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.Local)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
