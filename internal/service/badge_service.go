package service

import (
	"errors"
	"time"

	"goldenbell_backend/internal/model"
	"goldenbell_backend/internal/repository"
	"goldenbell_backend/pkg/logger"
	"goldenbell_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BadgeService 고정 뱃지 규칙을 라이브 집계에 대해 평가하고
// 각 뱃지를 정확히 한 번만 수여한다
type BadgeService struct {
	BadgeRepo    *repository.BadgeRepository
	AttemptRepo  *repository.AttemptRepository
	StatsRepo    *repository.StatsRepository
	QuestionRepo *repository.QuestionRepository
}

func NewBadgeService(
	badgeRepo *repository.BadgeRepository,
	attemptRepo *repository.AttemptRepository,
	statsRepo *repository.StatsRepository,
	questionRepo *repository.QuestionRepository,
) *BadgeService {
	return &BadgeService{
		BadgeRepo:    badgeRepo,
		AttemptRepo:  attemptRepo,
		StatsRepo:    statsRepo,
		QuestionRepo: questionRepo,
	}
}

// badgeAggregates 평가 호출마다 새로 계산되는 집계 스냅샷
type badgeAggregates struct {
	TotalAttempts       int64
	CorrectAttempts     int64
	TodayAttempts       int64
	MaxCombo            int64
	ConsecutiveDays     int64
	UniqueCorrect       int64
	CorrectByDifficulty map[string]int64
}

// badgeRule 선언적 규칙: 집계에서 값 하나를 뽑아 임계치와 비교한다.
// 새 뱃지는 이 테이블에 행을 추가하면 됨
type badgeRule struct {
	Key       string
	Value     func(a *badgeAggregates) int64
	Threshold int64
}

// 난이도 마스터 임계치. 미지의 난이도는 테이블에 없으므로 0 기여
var masterThresholds = map[string]struct {
	Difficulty string
	Count      int64
}{
	"easy_master":   {model.DifficultyEasy, 180},
	"medium_master": {model.DifficultyMedium, 180},
	"hard_master":   {model.DifficultyHard, 420},
	"expert_master": {model.DifficultyExpert, 420},
}

var badgeRules = buildBadgeRules()

func buildBadgeRules() []badgeRule {
	rules := []badgeRule{
		{Key: "first_step", Threshold: 1,
			Value: func(a *badgeAggregates) int64 { return a.TotalAttempts }},
		{Key: "combo_10", Threshold: 10,
			Value: func(a *badgeAggregates) int64 { return a.MaxCombo }},
		{Key: "combo_50", Threshold: 50,
			Value: func(a *badgeAggregates) int64 { return a.MaxCombo }},
		{Key: "daily_complete", Threshold: 50,
			Value: func(a *badgeAggregates) int64 { return a.TodayAttempts }},
		{Key: "weekly_streak", Threshold: 7,
			Value: func(a *badgeAggregates) int64 { return a.ConsecutiveDays }},
		{Key: "golden_star", Threshold: 1199,
			Value: func(a *badgeAggregates) int64 { return a.UniqueCorrect }},
		// 정답률 90% 이상, 단 1199회 이상 시도한 경우에만
		{Key: "space_doctor", Threshold: 90,
			Value: func(a *badgeAggregates) int64 {
				if a.TotalAttempts < 1199 {
					return 0
				}
				return a.CorrectAttempts * 100 / a.TotalAttempts
			}},
	}

	for key, m := range masterThresholds {
		diff := m.Difficulty
		rules = append(rules, badgeRule{
			Key:       key,
			Threshold: m.Count,
			Value: func(a *badgeAggregates) int64 {
				return a.CorrectByDifficulty[diff]
			},
		})
	}

	return rules
}

// evaluateRules 미획득 뱃지 중 조건을 통과한 것을 돌려준다 (순수 계산)
func evaluateRules(unearned []model.UserBadge, a *badgeAggregates) []model.UserBadge {
	ruleByKey := make(map[string]badgeRule, len(badgeRules))
	for _, r := range badgeRules {
		ruleByKey[r.Key] = r
	}

	var passed []model.UserBadge
	for _, b := range unearned {
		rule, ok := ruleByKey[b.BadgeKey]
		if !ok {
			continue
		}
		if rule.Value(a) >= rule.Threshold {
			passed = append(passed, b)
		}
	}
	return passed
}

// CheckAndAward 미획득 뱃지를 전부 평가해 새로 획득한 뱃지 이름을 돌려준다.
// 이미 획득한 뱃지는 재평가/재수여되지 않음
func (s *BadgeService) CheckAndAward(userID uint, now time.Time) ([]string, error) {
	unearned, err := s.BadgeRepo.FindUnearnedByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(unearned) == 0 {
		return []string{}, nil
	}

	aggregates, err := s.collectAggregates(userID, now)
	if err != nil {
		return nil, err
	}

	earned := []string{}
	for _, badge := range evaluateRules(unearned, aggregates) {
		if err := s.BadgeRepo.MarkEarned(userID, badge.BadgeKey, now); err != nil {
			return nil, err
		}
		earned = append(earned, badge.Name)
		monitoring.BadgeCounter.WithLabelValues(badge.BadgeKey).Inc()
		logger.Log.Info("badge earned",
			zap.Uint("userId", userID),
			zap.String("badge", badge.BadgeKey))
	}

	return earned, nil
}

// GetUserBadges 사용자의 전체 뱃지 선반 (획득/미획득 포함)
func (s *BadgeService) GetUserBadges(userID uint) ([]model.UserBadge, error) {
	return s.BadgeRepo.FindByUser(userID)
}

func (s *BadgeService) collectAggregates(userID uint, now time.Time) (*badgeAggregates, error) {
	a := &badgeAggregates{
		CorrectByDifficulty: make(map[string]int64, len(masterThresholds)),
	}

	var err error
	if a.TotalAttempts, err = s.AttemptRepo.CountByUser(userID); err != nil {
		return nil, err
	}
	if a.CorrectAttempts, err = s.AttemptRepo.CountCorrectByUser(userID); err != nil {
		return nil, err
	}
	if a.TodayAttempts, err = s.AttemptRepo.CountTodayByUser(userID, now); err != nil {
		return nil, err
	}
	if a.UniqueCorrect, err = s.AttemptRepo.CountDistinctCorrect(userID); err != nil {
		return nil, err
	}

	stats, err := s.StatsRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if stats != nil {
		a.MaxCombo = int64(stats.MaxCombo)
		a.ConsecutiveDays = int64(stats.ConsecutiveDays)
	}

	for _, m := range masterThresholds {
		if _, ok := a.CorrectByDifficulty[m.Difficulty]; ok {
			continue
		}
		count, err := s.AttemptRepo.CountDistinctCorrectByDifficulty(userID, m.Difficulty)
		if err != nil {
			return nil, err
		}
		a.CorrectByDifficulty[m.Difficulty] = count
	}

	return a, nil
}
