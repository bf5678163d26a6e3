package service

import (
	"testing"
	"time"

	"goldenbell_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func statsWith(combo, maxCombo, days int, lastStudy *time.Time) *model.UserStats {
	return &model.UserStats{
		CurrentCombo:    combo,
		MaxCombo:        maxCombo,
		ConsecutiveDays: days,
		LastStudyDate:   lastStudy,
	}
}

func TestNextProgress_ComboSequence(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)

	// [정답, 정답, 오답, 정답] → 콤보 [1, 2, 0, 1], 최대 콤보 2
	var stats *model.UserStats
	combos := []int{}
	maxCombo := 0
	for _, correct := range []bool{true, true, false, true} {
		p := nextProgress(stats, correct, now)
		combos = append(combos, p.Combo)
		maxCombo = p.MaxCombo
		stats = statsWith(p.Combo, p.MaxCombo, p.ConsecutiveDays, &now)
	}

	assert.Equal(t, []int{1, 2, 0, 1}, combos)
	assert.Equal(t, 2, maxCombo)
}

func TestNextProgress_MaxComboNeverDecreases(t *testing.T) {
	now := time.Now()
	prev := statsWith(7, 7, 1, &now)

	p := nextProgress(prev, false, now)
	assert.Equal(t, 0, p.Combo)
	assert.Equal(t, 7, p.MaxCombo)

	p = nextProgress(statsWith(0, 7, 1, &now), true, now)
	assert.Equal(t, 1, p.Combo)
	assert.Equal(t, 7, p.MaxCombo)
}

func TestNextProgress_StreakFirstStudy(t *testing.T) {
	p := nextProgress(nil, true, time.Now())
	assert.Equal(t, 1, p.ConsecutiveDays)

	p = nextProgress(statsWith(0, 0, 0, nil), false, time.Now())
	assert.Equal(t, 1, p.ConsecutiveDays)
}

func TestNextProgress_StreakYesterdayIncrements(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	p := nextProgress(statsWith(0, 0, 3, &yesterday), true, now)
	assert.Equal(t, 4, p.ConsecutiveDays)
}

func TestNextProgress_StreakGapResets(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	threeDaysAgo := now.AddDate(0, 0, -3)

	p := nextProgress(statsWith(0, 0, 9, &threeDaysAgo), true, now)
	assert.Equal(t, 1, p.ConsecutiveDays)
}

func TestNextProgress_SameDayLeavesStreakUnchanged(t *testing.T) {
	// 같은 날 여러 번 풀어도 스트릭은 그대로
	morning := time.Date(2026, 8, 31, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 8, 31, 22, 30, 0, 0, time.Local)

	p := nextProgress(statsWith(2, 5, 6, &morning), true, evening)
	assert.Equal(t, 6, p.ConsecutiveDays)
}

func TestNextProgress_StreakIndependentOfCorrectness(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	// 오답도 학습일로 집계됨
	p := nextProgress(statsWith(4, 4, 2, &yesterday), false, now)
	assert.Equal(t, 0, p.Combo)
	assert.Equal(t, 3, p.ConsecutiveDays)
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local)

	assert.Equal(t, 0, daysBetween(base.Add(-time.Hour*10), base))
	assert.Equal(t, 1, daysBetween(time.Date(2026, 8, 30, 23, 0, 0, 0, time.Local), time.Date(2026, 8, 31, 0, 30, 0, 0, time.Local)))
	assert.Equal(t, 3, daysBetween(time.Date(2026, 8, 28, 1, 0, 0, 0, time.Local), base))
}
