package service

import (
	"testing"
	"time"

	"goldenbell_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullShelf() []model.UserBadge {
	shelf := make([]model.UserBadge, 0, len(model.DefaultBadges))
	for _, b := range model.DefaultBadges {
		shelf = append(shelf, model.UserBadge{
			UserID:      1,
			BadgeKey:    b.BadgeKey,
			Name:        b.Name,
			Description: b.Description,
		})
	}
	return shelf
}

func earnedKeys(passed []model.UserBadge) []string {
	keys := make([]string, 0, len(passed))
	for _, b := range passed {
		keys = append(keys, b.BadgeKey)
	}
	return keys
}

func TestEvaluateRules_FirstStep(t *testing.T) {
	a := &badgeAggregates{TotalAttempts: 1}

	passed := evaluateRules(fullShelf(), a)

	assert.Equal(t, []string{"first_step"}, earnedKeys(passed))
}

func TestEvaluateRules_NothingWithZeroAggregates(t *testing.T) {
	passed := evaluateRules(fullShelf(), &badgeAggregates{})

	assert.Empty(t, passed)
}

func TestEvaluateRules_ComboMilestones(t *testing.T) {
	a := &badgeAggregates{TotalAttempts: 30, MaxCombo: 10}
	assert.ElementsMatch(t, []string{"first_step", "combo_10"},
		earnedKeys(evaluateRules(fullShelf(), a)))

	a.MaxCombo = 50
	assert.ElementsMatch(t, []string{"first_step", "combo_10", "combo_50"},
		earnedKeys(evaluateRules(fullShelf(), a)))
}

func TestEvaluateRules_DailyCompleteAndWeeklyStreak(t *testing.T) {
	a := &badgeAggregates{TotalAttempts: 50, TodayAttempts: 50, ConsecutiveDays: 7}

	passed := earnedKeys(evaluateRules(fullShelf(), a))

	assert.Contains(t, passed, "daily_complete")
	assert.Contains(t, passed, "weekly_streak")
}

func TestEvaluateRules_GoldenStarRequires1199UniqueCorrect(t *testing.T) {
	a := &badgeAggregates{TotalAttempts: 2000, UniqueCorrect: 1198}
	assert.NotContains(t, earnedKeys(evaluateRules(fullShelf(), a)), "golden_star")

	a.UniqueCorrect = 1199
	assert.Contains(t, earnedKeys(evaluateRules(fullShelf(), a)), "golden_star")
}

func TestEvaluateRules_SpaceDoctorGatedByVolume(t *testing.T) {
	// 시도 수가 1199 미만이면 정답률 100%라도 수여하지 않음
	a := &badgeAggregates{TotalAttempts: 1198, CorrectAttempts: 1198}
	assert.NotContains(t, earnedKeys(evaluateRules(fullShelf(), a)), "space_doctor")

	a = &badgeAggregates{TotalAttempts: 1200, CorrectAttempts: 1079}
	assert.NotContains(t, earnedKeys(evaluateRules(fullShelf(), a)), "space_doctor")

	a = &badgeAggregates{TotalAttempts: 1200, CorrectAttempts: 1080}
	assert.Contains(t, earnedKeys(evaluateRules(fullShelf(), a)), "space_doctor")
}

func TestEvaluateRules_MasterThresholds(t *testing.T) {
	cases := []struct {
		key       string
		diff      string
		threshold int64
	}{
		{"easy_master", model.DifficultyEasy, 180},
		{"medium_master", model.DifficultyMedium, 180},
		{"hard_master", model.DifficultyHard, 420},
		{"expert_master", model.DifficultyExpert, 420},
	}

	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			a := &badgeAggregates{
				TotalAttempts:       c.threshold,
				CorrectByDifficulty: map[string]int64{c.diff: c.threshold - 1},
			}
			assert.NotContains(t, earnedKeys(evaluateRules(fullShelf(), a)), c.key)

			a.CorrectByDifficulty[c.diff] = c.threshold
			assert.Contains(t, earnedKeys(evaluateRules(fullShelf(), a)), c.key)
		})
	}
}

func TestEvaluateRules_UnknownKeySkipped(t *testing.T) {
	shelf := []model.UserBadge{{UserID: 1, BadgeKey: "retired_badge", Name: "은퇴 뱃지"}}

	passed := evaluateRules(shelf, &badgeAggregates{TotalAttempts: 9999})

	assert.Empty(t, passed)
}

func TestEvaluateRules_EarnedBadgesNotReevaluated(t *testing.T) {
	// 수여 흐름: 통과한 뱃지는 EarnedAt이 설정되어 미획득 목록에서 빠지므로
	// 같은 집계로 다시 평가해도 새 수여가 없어야 함
	a := &badgeAggregates{TotalAttempts: 60, TodayAttempts: 55, MaxCombo: 12}

	shelf := fullShelf()
	first := evaluateRules(shelf, a)
	require.NotEmpty(t, first)

	now := time.Now()
	passedKeys := map[string]bool{}
	for _, b := range first {
		passedKeys[b.BadgeKey] = true
	}
	remaining := []model.UserBadge{}
	for _, b := range shelf {
		if passedKeys[b.BadgeKey] {
			b.EarnedAt = &now
			continue
		}
		remaining = append(remaining, b)
	}

	second := evaluateRules(remaining, a)
	assert.Empty(t, second)
}

func TestBuildBadgeRules_CoversEveryDefaultBadge(t *testing.T) {
	ruleKeys := map[string]bool{}
	for _, r := range badgeRules {
		ruleKeys[r.Key] = true
	}

	for _, b := range model.DefaultBadges {
		assert.True(t, ruleKeys[b.BadgeKey], "규칙 없는 뱃지: %s", b.BadgeKey)
	}
}
