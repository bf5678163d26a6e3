package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"goldenbell_backend/internal/model"
	"goldenbell_backend/internal/repository"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// StatsService 학습 통계 조회: 전체 집계, 난이도별 진행률, 오답노트, 랭킹
type StatsService struct {
	StatsRepo    *repository.StatsRepository
	AttemptRepo  *repository.AttemptRepository
	QuestionRepo *repository.QuestionRepository
	UserRepo     *repository.UserRepository
	Redis        *redis.Client
}

func NewStatsService(
	statsRepo *repository.StatsRepository,
	attemptRepo *repository.AttemptRepository,
	questionRepo *repository.QuestionRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *StatsService {
	return &StatsService{
		StatsRepo:    statsRepo,
		AttemptRepo:  attemptRepo,
		QuestionRepo: questionRepo,
		UserRepo:     userRepo,
		Redis:        rdb,
	}
}

type DifficultyStat struct {
	Difficulty string `json:"difficulty"`
	Total      int64  `json:"total"`
	Solved     int64  `json:"solved"`
}

type StatsOverview struct {
	TotalPoints     int              `json:"totalPoints"`
	CurrentCombo    int              `json:"currentCombo"`
	MaxCombo        int              `json:"maxCombo"`
	ConsecutiveDays int              `json:"consecutiveDays"`
	TotalQuestions  int64            `json:"totalQuestions"`
	TotalAttempts   int64            `json:"totalAttempts"`
	CorrectAttempts int64            `json:"correctAttempts"`
	UniqueCorrect   int64            `json:"uniqueCorrect"`
	UniqueAttempted int64            `json:"uniqueAttempted"`
	Accuracy        int              `json:"accuracy"`
	DifficultyStats []DifficultyStat `json:"difficultyStats"`
	WrongCount      int              `json:"wrongCount"`
	PlanStartDate   *time.Time       `json:"planStartDate"`
}

var difficultyOrder = []string{
	model.DifficultyEasy,
	model.DifficultyMedium,
	model.DifficultyHard,
	model.DifficultyExpert,
}

func (s *StatsService) GetOverview(userID uint) (*StatsOverview, error) {
	overview := &StatsOverview{DifficultyStats: []DifficultyStat{}}

	stats, err := s.StatsRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if stats != nil {
		overview.TotalPoints = stats.TotalPoints
		overview.CurrentCombo = stats.CurrentCombo
		overview.MaxCombo = stats.MaxCombo
		overview.ConsecutiveDays = stats.ConsecutiveDays
		overview.PlanStartDate = stats.PlanStartDate
	}

	if overview.TotalQuestions, err = s.QuestionRepo.Count(); err != nil {
		return nil, err
	}
	if overview.TotalAttempts, err = s.AttemptRepo.CountByUser(userID); err != nil {
		return nil, err
	}
	if overview.CorrectAttempts, err = s.AttemptRepo.CountCorrectByUser(userID); err != nil {
		return nil, err
	}
	if overview.UniqueCorrect, err = s.AttemptRepo.CountDistinctCorrect(userID); err != nil {
		return nil, err
	}
	if overview.UniqueAttempted, err = s.AttemptRepo.CountDistinctAttempted(userID); err != nil {
		return nil, err
	}

	if overview.TotalAttempts > 0 {
		// 반올림 퍼센트
		overview.Accuracy = int((overview.CorrectAttempts*100 + overview.TotalAttempts/2) / overview.TotalAttempts)
	}

	for _, diff := range difficultyOrder {
		total, err := s.QuestionRepo.CountByDifficulty(diff)
		if err != nil {
			return nil, err
		}
		solved, err := s.AttemptRepo.CountDistinctCorrectByDifficulty(userID, diff)
		if err != nil {
			return nil, err
		}
		overview.DifficultyStats = append(overview.DifficultyStats, DifficultyStat{
			Difficulty: diff,
			Total:      total,
			Solved:     solved,
		})
	}

	wrong, err := s.AttemptRepo.FindUnresolvedWrong(userID)
	if err != nil {
		return nil, err
	}
	overview.WrongCount = len(wrong)

	return overview, nil
}

// WrongQuestionView 오답노트 항목. 오답 많은 순으로 정렬됨
type WrongQuestionView struct {
	ID             uint   `json:"id"`
	Course         string `json:"course"`
	Month          int    `json:"month"`
	Topic          string `json:"topic"`
	Difficulty     string `json:"difficulty"`
	QuestionNumber int    `json:"questionNumber"`
	QuestionText   string `json:"questionText"`
	WrongCount     int    `json:"wrongCount"`
}

// GetWrongNote 마지막 오답 이후 정답이 없는 문제 목록
func (s *StatsService) GetWrongNote(userID uint) ([]WrongQuestionView, error) {
	rows, err := s.AttemptRepo.FindUnresolvedWrong(userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []WrongQuestionView{}, nil
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.QuestionID)
	}

	questions, err := s.QuestionRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	questionByID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	// 쿼리의 오답 내림차순 정렬 유지
	result := make([]WrongQuestionView, 0, len(rows))
	for _, r := range rows {
		q, ok := questionByID[r.QuestionID]
		if !ok {
			continue
		}
		result = append(result, WrongQuestionView{
			ID:             q.ID,
			Course:         q.Course,
			Month:          q.Month,
			Topic:          q.Topic,
			Difficulty:     q.Difficulty,
			QuestionNumber: q.QuestionNumber,
			QuestionText:   q.QuestionText,
			WrongCount:     r.WrongCount,
		})
	}

	return result, nil
}

const (
	leaderboardCacheKey = "goldenbell:leaderboard"
	leaderboardCacheTTL = 30 * time.Second
)

// GetLeaderboard 총점 상위 사용자. 짧게 캐시됨
func (s *StatsService) GetLeaderboard(ctx context.Context, limit int) ([]repository.LeaderboardRow, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var rows []repository.LeaderboardRow
			if json.Unmarshal([]byte(cached), &rows) == nil && len(rows) >= limit {
				return rows[:limit], nil
			}
		}
	}

	rows, err := s.UserRepo.FindTopByPoints(limit)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(rows); err == nil {
			s.Redis.Set(ctx, leaderboardCacheKey, encoded, leaderboardCacheTTL)
		}
	}

	return rows, nil
}
