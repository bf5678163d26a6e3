package service

import (
	"errors"
	"sort"
	"time"

	"goldenbell_backend/internal/model"
	"goldenbell_backend/internal/repository"
	"goldenbell_backend/internal/util"

	"gorm.io/gorm"
)

// DailyPlanService 24일 학습 플랜: 전체 문제 은행을 쉬운 순으로
// 하루 50문제씩 배분하고 일차별 완료를 추적한다
type DailyPlanService struct {
	QuestionRepo *repository.QuestionRepository
	PlanRepo     *repository.DailyPlanRepository
	StatsRepo    *repository.StatsRepository
	DB           *gorm.DB
}

func NewDailyPlanService(
	questionRepo *repository.QuestionRepository,
	planRepo *repository.DailyPlanRepository,
	statsRepo *repository.StatsRepository,
	db *gorm.DB,
) *DailyPlanService {
	return &DailyPlanService{
		QuestionRepo: questionRepo,
		PlanRepo:     planRepo,
		StatsRepo:    statsRepo,
		DB:           db,
	}
}

// PlanQuestionView 오늘의 문제 1건 (정답 키 제외)
type PlanQuestionView struct {
	ID             uint   `json:"id"`
	Course         string `json:"course"`
	Month          int    `json:"month"`
	Topic          string `json:"topic"`
	Difficulty     string `json:"difficulty"`
	QuestionNumber int    `json:"questionNumber"`
	QuestionText   string `json:"questionText"`
	Solved         bool   `json:"solved"`
}

// PlanStatus 플랜 진행 상황
type PlanStatus struct {
	Started        bool               `json:"started"`
	Completed      bool               `json:"completed"`
	DayNumber      int                `json:"dayNumber"`
	TotalDays      int                `json:"totalDays"`
	CompletedDays  int                `json:"completedDays"`
	TotalQuestions int                `json:"totalQuestions"`
	SolvedCount    int                `json:"solvedCount"`
	StartDate      *time.Time         `json:"startDate,omitempty"`
	Questions      []PlanQuestionView `json:"questions"`
}

// sortForPlan 플랜 배분용 정렬: 난이도(하<중<상<최상) → 코스 → 월 → 문제번호
func sortForPlan(questions []model.Question) []model.Question {
	sorted := make([]model.Question, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if ra, rb := model.DifficultyRank(a.Difficulty), model.DifficultyRank(b.Difficulty); ra != rb {
			return ra < rb
		}
		if a.Course != b.Course {
			return a.Course < b.Course
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.QuestionNumber < b.QuestionNumber
	})
	return sorted
}

// assignDays 정렬된 문제를 50개씩 연속 배치로 나눈다.
// 인덱스 0 배치가 1일차. 24일을 넘는 잔여분은 배정하지 않음
func assignDays(sorted []model.Question) [][]uint {
	days := [][]uint{}
	for i, q := range sorted {
		day := i / model.PlanQuestionsPerDay
		if day >= model.PlanTotalDays {
			break
		}
		if day == len(days) {
			days = append(days, make([]uint, 0, model.PlanQuestionsPerDay))
		}
		days[day] = append(days[day], q.ID)
	}
	return days
}

// currentPlanDay 완료 기반 진행 모델: 배정 문제가 전부 해결되지 않은
// 첫 일차가 현재 일차. completedDays는 그 앞의 전부 해결된 일차 수.
// 그런 일차가 없으면 플랜 완료
func currentPlanDay(rows []repository.DayProgressRow) (dayNumber, completedDays int, completed bool) {
	byDay := make(map[int]repository.DayProgressRow, len(rows))
	for _, r := range rows {
		byDay[r.DayNumber] = r
	}

	for day := 1; day <= model.PlanTotalDays; day++ {
		r, ok := byDay[day]
		if !ok {
			// 은행이 24x50보다 작으면 뒤쪽 일차는 배정이 없음
			continue
		}
		if r.SolvedCount < r.Total {
			return day, completedDays, false
		}
		completedDays++
	}
	return 0, completedDays, true
}

// StartPlan 플랜을 시작한다. 이미 시작된 플랜이 있으면 실패하고
// 기존 상태는 그대로 유지됨
func (s *DailyPlanService) StartPlan(userID uint, now time.Time) (*PlanStatus, error) {
	stats, err := s.StatsRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if stats.PlanStartDate != nil {
		return nil, util.ErrPlanAlreadyStarted
	}

	questions, err := s.QuestionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := assignDays(sortForPlan(questions))

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		plans := make([]model.DailyPlan, 0, model.PlanTotalDays)
		for day := 1; day <= model.PlanTotalDays; day++ {
			plans = append(plans, model.DailyPlan{
				UserID:    userID,
				DayNumber: day,
				Date:      today.AddDate(0, 0, day-1),
			})
		}
		if err := tx.CreateInBatches(plans, 50).Error; err != nil {
			return err
		}

		assignments := make([]model.DailyPlanQuestion, 0, model.PlanTotalDays*model.PlanQuestionsPerDay)
		for i, ids := range days {
			for _, qid := range ids {
				assignments = append(assignments, model.DailyPlanQuestion{
					UserID:     userID,
					DayNumber:  i + 1,
					QuestionID: qid,
				})
			}
		}
		if err := tx.CreateInBatches(assignments, 200).Error; err != nil {
			return err
		}

		// 시작일은 한 번만 설정됨
		return tx.Model(&model.UserStats{}).
			Where("user_id = ? AND plan_start_date IS NULL", userID).
			Update("plan_start_date", today).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetCurrentDay(userID)
}

// GetCurrentDay 현재 일차와 그 일차의 문제 목록을 돌려준다
func (s *DailyPlanService) GetCurrentDay(userID uint) (*PlanStatus, error) {
	stats, err := s.StatsRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if stats == nil || stats.PlanStartDate == nil {
		return &PlanStatus{
			Started:   false,
			TotalDays: model.PlanTotalDays,
			Questions: []PlanQuestionView{},
		}, nil
	}

	progressRows, err := s.PlanRepo.FindDayProgress(userID)
	if err != nil {
		return nil, err
	}

	dayNumber, completedDays, completed := currentPlanDay(progressRows)
	status := &PlanStatus{
		Started:       true,
		Completed:     completed,
		DayNumber:     dayNumber,
		TotalDays:     model.PlanTotalDays,
		CompletedDays: completedDays,
		StartDate:     stats.PlanStartDate,
		Questions:     []PlanQuestionView{},
	}
	if completed {
		status.DayNumber = model.PlanTotalDays
		return status, nil
	}

	assigned, err := s.PlanRepo.FindDayQuestions(userID, dayNumber)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(assigned))
	solvedByID := make(map[uint]bool, len(assigned))
	for _, a := range assigned {
		ids = append(ids, a.QuestionID)
		solvedByID[a.QuestionID] = a.Solved
	}

	questions, err := s.QuestionRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	questionByID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
	}

	// 배정 순서 유지
	for _, a := range assigned {
		q, ok := questionByID[a.QuestionID]
		if !ok {
			continue
		}
		solved := solvedByID[a.QuestionID]
		if solved {
			status.SolvedCount++
		}
		status.Questions = append(status.Questions, PlanQuestionView{
			ID:             q.ID,
			Course:         q.Course,
			Month:          q.Month,
			Topic:          q.Topic,
			Difficulty:     q.Difficulty,
			QuestionNumber: q.QuestionNumber,
			QuestionText:   q.QuestionText,
			Solved:         solved,
		})
	}
	status.TotalQuestions = len(status.Questions)

	return status, nil
}

// ResetDay 일차의 해결 플래그를 초기화한다. 배정/일차 번호는 그대로
func (s *DailyPlanService) ResetDay(userID uint, dayNumber int) error {
	if dayNumber < 1 || dayNumber > model.PlanTotalDays {
		return util.ErrPlanDayOutOfRange
	}

	stats, err := s.StatsRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	if stats.PlanStartDate == nil {
		return util.ErrPlanNotStarted
	}

	return s.PlanRepo.ResetDay(userID, dayNumber)
}
