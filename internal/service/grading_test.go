package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "목성", Normalize("  목 성  "))
	assert.Equal(t, "목성", Normalize("목성."))
	assert.Equal(t, "사자자리", Normalize("사자 자리"))
	assert.Equal(t, "금성", Normalize("(금성)"))
	assert.Equal(t, "금성", Normalize("（금성）"))
	assert.Equal(t, "apollo11", Normalize("Apollo 11"))
	assert.Equal(t, "", Normalize("   "))
}

func TestStripParenthetical(t *testing.T) {
	assert.Equal(t, "금성", StripParenthetical("금성 (참고 : 샛별)"))
	assert.Equal(t, "금성", StripParenthetical("금성（샛별）"))
	assert.Equal(t, "목성", StripParenthetical("목성"))
	// 비탐욕 매칭: 괄호 쌍마다 개별 제거, 둘러싼 공백도 같이 제거됨
	assert.Equal(t, "가나", StripParenthetical("가 (x) 나 (y)"))
}

func TestGrade_SingleAnswer(t *testing.T) {
	assert.True(t, Grade("목성", "목성"))
	assert.True(t, Grade("목 성", "목성"))
	assert.True(t, Grade("목성.", "목성"))
	assert.False(t, Grade("토성", "목성"))
}

func TestGrade_EmptyAnswerAlwaysWrong(t *testing.T) {
	assert.False(t, Grade("", "목성"))
	assert.False(t, Grade("   ", "목성"))
	assert.False(t, Grade("", "포보스, 데이모스"))
}

func TestGrade_ParentheticalIgnored(t *testing.T) {
	assert.True(t, Grade("금성", "금성 (참고 : 샛별, 개밥바라기)"))
	assert.False(t, Grade("샛별, 개밥바라기", "금성 (참고 : 샛별, 개밥바라기)"))
}

func TestGrade_JariSuffix(t *testing.T) {
	assert.True(t, Grade("사자", "사자자리"))
	assert.True(t, Grade("사자자리", "사자"))
	assert.True(t, Grade("사자 자리", "사자자리"))
	assert.False(t, Grade("백조", "사자자리"))
}

func TestGrade_MultiPart(t *testing.T) {
	assert.True(t, Grade("금성, 화성", "화성,금성"))
	assert.True(t, Grade("화성 금성", "화성,금성"))
	assert.True(t, Grade("금성，화성", "화성，금성"))
	// 모든 항목이 있어야 정답, 부분 점수 없음
	assert.False(t, Grade("금성", "화성,금성"))
	assert.False(t, Grade("", "화성,금성"))
}

func TestGrade_MultiPartOrderAndDuplicatesTolerated(t *testing.T) {
	assert.True(t, Grade("데이모스 포보스", "포보스, 데이모스"))
	assert.True(t, Grade("포보스 포보스 데이모스 목성", "포보스, 데이모스"))
}

func TestGrade_MultiPartSubstringContainment(t *testing.T) {
	// 양방향 부분 문자열 포함이면 토큰 일치
	assert.True(t, Grade("포보스위성, 데이모스", "포보스, 데이모스"))
	assert.True(t, Grade("보스, 이모스", "포보스, 데이모스"))
}

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 10, PointsFor("하", false))
	assert.Equal(t, 20, PointsFor("하", true))
	assert.Equal(t, 20, PointsFor("중", false))
	assert.Equal(t, 30, PointsFor("상", false))
	assert.Equal(t, 50, PointsFor("최상", false))
	assert.Equal(t, 60, PointsFor("최상", true))
	// 미지의 난이도는 기본 10점
	assert.Equal(t, 10, PointsFor("???", false))
	assert.Equal(t, 20, PointsFor("", true))
}

func TestComboBonus_MilestonesOnly(t *testing.T) {
	assert.Equal(t, 50, ComboBonus(5))
	assert.Equal(t, 100, ComboBonus(10))
	assert.Equal(t, 200, ComboBonus(20))
	assert.Equal(t, 500, ComboBonus(50))

	// 마일스톤 사이나 배수에서는 발화하지 않음
	for _, combo := range []int{0, 1, 4, 6, 15, 25, 30, 40, 45, 55, 100} {
		assert.Equal(t, 0, ComboBonus(combo), "combo %d", combo)
	}
}
