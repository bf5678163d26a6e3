package service

import (
	"testing"

	"goldenbell_backend/internal/model"
	"goldenbell_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(id uint, difficulty, course string, month, number int) model.Question {
	q := model.Question{
		Course:         course,
		Month:          month,
		Difficulty:     difficulty,
		QuestionNumber: number,
	}
	q.ID = id
	return q
}

func TestSortForPlan_CustomDifficultyOrder(t *testing.T) {
	questions := []model.Question{
		question(1, model.DifficultyExpert, "기초", 3, 1),
		question(2, model.DifficultyEasy, "기초", 3, 1),
		question(3, model.DifficultyHard, "기초", 3, 1),
		question(4, model.DifficultyMedium, "기초", 3, 1),
	}

	sorted := sortForPlan(questions)

	// 하 < 중 < 상 < 최상 (사전순이면 상 < 중 < 최상 < 하가 되므로 구별됨)
	assert.Equal(t, []string{"하", "중", "상", "최상"}, []string{
		sorted[0].Difficulty, sorted[1].Difficulty, sorted[2].Difficulty, sorted[3].Difficulty,
	})
}

func TestSortForPlan_TieBreakers(t *testing.T) {
	questions := []model.Question{
		question(1, model.DifficultyEasy, "기초", 4, 2),
		question(2, model.DifficultyEasy, "기초", 4, 1),
		question(3, model.DifficultyEasy, "기초", 3, 9),
		question(4, model.DifficultyEasy, "심화", 3, 1),
	}

	sorted := sortForPlan(questions)

	ids := []uint{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID}
	// 코스 → 월 → 문제번호
	assert.Equal(t, []uint{3, 2, 1, 4}, ids)
}

func TestAssignDays_FixedBatches(t *testing.T) {
	questions := make([]model.Question, 130)
	for i := range questions {
		questions[i] = question(uint(i+1), model.DifficultyEasy, "기초", 3, i+1)
	}

	days := assignDays(questions)

	require.Len(t, days, 3)
	assert.Len(t, days[0], 50)
	assert.Len(t, days[1], 50)
	assert.Len(t, days[2], 30)

	// k일차는 정렬 인덱스 [50*(k-1), 50*k) 구간
	assert.Equal(t, uint(1), days[0][0])
	assert.Equal(t, uint(50), days[0][49])
	assert.Equal(t, uint(51), days[1][0])
	assert.Equal(t, uint(101), days[2][0])
}

func TestAssignDays_RemainderBeyondDay24Dropped(t *testing.T) {
	total := model.PlanTotalDays*model.PlanQuestionsPerDay + 75
	questions := make([]model.Question, total)
	for i := range questions {
		questions[i] = question(uint(i+1), model.DifficultyEasy, "기초", 3, i+1)
	}

	days := assignDays(questions)

	require.Len(t, days, model.PlanTotalDays)
	assigned := 0
	for _, day := range days {
		assigned += len(day)
	}
	assert.Equal(t, model.PlanTotalDays*model.PlanQuestionsPerDay, assigned)
}

func progressRow(day, total, solved int) repository.DayProgressRow {
	return repository.DayProgressRow{DayNumber: day, Total: total, SolvedCount: solved}
}

func TestCurrentPlanDay_FirstUnfinishedDay(t *testing.T) {
	rows := []repository.DayProgressRow{
		progressRow(1, 50, 50),
		progressRow(2, 50, 12),
		progressRow(3, 50, 0),
	}

	day, completedDays, completed := currentPlanDay(rows)

	assert.False(t, completed)
	assert.Equal(t, 2, day)
	assert.Equal(t, 1, completedDays)
}

func TestCurrentPlanDay_SkippedAheadStillCounts(t *testing.T) {
	// 2일차를 건너뛰고 3일차를 먼저 끝낸 경우에도 2일차가 현재 일차
	rows := []repository.DayProgressRow{
		progressRow(1, 50, 50),
		progressRow(2, 50, 3),
		progressRow(3, 50, 50),
	}

	day, completedDays, completed := currentPlanDay(rows)

	assert.False(t, completed)
	assert.Equal(t, 2, day)
	assert.Equal(t, 1, completedDays)
}

func TestCurrentPlanDay_AllSolvedMeansCompleted(t *testing.T) {
	rows := []repository.DayProgressRow{}
	for day := 1; day <= model.PlanTotalDays; day++ {
		rows = append(rows, progressRow(day, 50, 50))
	}

	_, completedDays, completed := currentPlanDay(rows)

	assert.True(t, completed)
	assert.Equal(t, model.PlanTotalDays, completedDays)
}

func TestCurrentPlanDay_ShortBankCompletes(t *testing.T) {
	// 은행이 작아 3일차까지만 배정된 플랜
	rows := []repository.DayProgressRow{
		progressRow(1, 50, 50),
		progressRow(2, 50, 50),
		progressRow(3, 49, 49),
	}

	_, completedDays, completed := currentPlanDay(rows)

	assert.True(t, completed)
	assert.Equal(t, 3, completedDays)
}
