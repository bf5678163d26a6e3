package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"goldenbell_backend/internal/config"
)

// ExplainService 채점된 문제에 대한 AI 해설 생성.
// OpenRouter 호환 chat completions API를 사용한다
type ExplainService struct {
	cfg    config.AIConfig
	client *http.Client
}

func NewExplainService(cfg config.AIConfig) *ExplainService {
	return &ExplainService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type ExplainRequest struct {
	QuestionText string `json:"questionText" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
	UserAnswer   string `json:"userAnswer"`
	IsCorrect    bool   `json:"isCorrect"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

var ErrExplainUnavailable = errors.New("AI 해설 서비스를 사용할 수 없습니다")

func (s *ExplainService) buildPrompt(req ExplainRequest) string {
	studentAnswer := "학생이 답을 못 적었어요."
	if req.UserAnswer != "" {
		studentAnswer = fmt.Sprintf("학생의 답: %s", req.UserAnswer)
	}

	outcome := "학생이 틀렸어요."
	if req.IsCorrect {
		outcome = "학생이 정답을 맞혔어요!"
	}

	return fmt.Sprintf(`너는 초등학생에게 천문학을 가르치는 친절한 선생님이야. 아래 퀴즈 문제에 대해 해설을 해줘.

문제: %s
정답: %s
%s
%s

다음 규칙을 지켜줘:
- 초등학교 4학년이 이해할 수 있게 쉽게 설명해줘
- 왜 그 답이 정답인지 설명해줘
- 관련된 재미있는 사실을 1개 알려줘
- 3~5문장으로 간결하게 해줘
- 한국어로 답해줘`, req.QuestionText, req.Answer, studentAnswer, outcome)
}

// Explain 해설 텍스트 1건 생성
func (s *ExplainService) Explain(req ExplainRequest) (string, error) {
	if s.cfg.APIKey == "" {
		return "", ErrExplainUnavailable
	}

	model := s.cfg.Model
	if model == "" {
		model = "deepseek/deepseek-v3.2"
	}

	body := map[string]interface{}{
		"model": model,
		"messages": []chatMessage{
			{Role: "user", Content: s.buildPrompt(req)},
		},
		"max_tokens":  500,
		"temperature": 0.7,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequest("POST", s.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", ErrExplainUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrExplainUnavailable
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil || len(parsed.Choices) == 0 {
		return "", ErrExplainUnavailable
	}

	return parsed.Choices[0].Message.Content, nil
}
