package service

import (
	"regexp"
	"strings"
	"unicode"

	"goldenbell_backend/internal/model"
)

// 채점 로직
// - 공백/마침표/괄호 유연 처리
// - 복수 정답(쉼표 구분) 순서 무관
// - 괄호 부가설명 무시

var (
	parentheticalRe = regexp.MustCompile(`\s*[(（].*?[)）]\s*`)
	userPartSplitRe = regexp.MustCompile(`[,，\s]+`)
	correctSplitRe  = regexp.MustCompile(`[,，]`)
)

// Normalize 비교용 정규화: 모든 공백 제거, 괄호(반각/전각) 제거,
// 마침표 제거, 소문자화
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '(', ')', '（', '）', '.':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// StripParenthetical 정답 키의 괄호 부가설명 제거.
// "답 (참고 : xxx)" 같은 주석은 학생이 입력하지 않으므로 채점에서 뺀다
func StripParenthetical(text string) string {
	return strings.TrimSpace(parentheticalRe.ReplaceAllString(text, ""))
}

const suffixJari = "자리"

// Grade 제출 답안을 정답 키와 비교해 정오를 판정한다.
// 빈 답안은 항상 오답 (호출 측에서 "건너뜀"으로 처리)
func Grade(userAnswer, correctAnswer string) bool {
	cleanCorrect := StripParenthetical(correctAnswer)

	// 쉼표로 구분된 복수 정답인지 확인
	hasComma := strings.ContainsAny(cleanCorrect, ",，")

	if hasComma {
		// 복수 정답: 모든 항목이 포함되어야 정답, 순서/중복 무관
		correctParts := splitNonEmpty(correctSplitRe, cleanCorrect)
		userParts := splitNonEmpty(userPartSplitRe, userAnswer)

		for _, cp := range correctParts {
			if !matchesAny(cp, userParts) {
				return false
			}
		}
		return true
	}

	// 단일 정답
	normalUser := Normalize(userAnswer)
	normalCorrect := Normalize(cleanCorrect)

	if normalUser == "" {
		return false
	}
	if normalUser == normalCorrect {
		return true
	}

	// "자리" 접미사 유연 처리 (사자 == 사자자리)
	if strings.HasSuffix(normalCorrect, suffixJari) && normalUser+suffixJari == normalCorrect {
		return true
	}
	if strings.HasSuffix(normalUser, suffixJari) && normalCorrect+suffixJari == normalUser {
		return true
	}

	return false
}

func splitNonEmpty(re *regexp.Regexp, text string) []string {
	raw := re.Split(text, -1)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		n := Normalize(p)
		if n != "" {
			parts = append(parts, n)
		}
	}
	return parts
}

// matchesAny 양방향 부분 문자열 포함으로 토큰 일치 여부 확인
func matchesAny(correctPart string, userParts []string) bool {
	for _, up := range userParts {
		if strings.Contains(up, correctPart) || strings.Contains(correctPart, up) {
			return true
		}
	}
	return false
}

// PointsFor 난이도별 기본 점수. 미지의 난이도는 10점,
// 그 문제의 전체 첫 시도면 +10 보너스
func PointsFor(difficulty string, isFirstAttempt bool) int {
	var points int
	switch difficulty {
	case model.DifficultyEasy:
		points = 10
	case model.DifficultyMedium:
		points = 20
	case model.DifficultyHard:
		points = 30
	case model.DifficultyExpert:
		points = 50
	default:
		points = 10
	}
	if isFirstAttempt {
		points += 10
	}
	return points
}

// ComboBonus 콤보가 마일스톤에 정확히 도달한 순간의 일회성 보너스.
// 5/10/20/50에서만 발화하고 그 배수에서는 반복되지 않음
func ComboBonus(newCombo int) int {
	switch newCombo {
	case 5:
		return 50
	case 10:
		return 100
	case 20:
		return 200
	case 50:
		return 500
	default:
		return 0
	}
}
