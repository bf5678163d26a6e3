package util

import "errors"

var (
	ErrUserNotFound       = errors.New("사용자를 찾을 수 없습니다")
	ErrNameTaken          = errors.New("이미 사용 중인 이름이에요")
	ErrInvalidCredentials = errors.New("이름 또는 비밀번호가 틀렸어요")
	ErrQuestionNotFound   = errors.New("문제를 찾을 수 없습니다")
	ErrPlanAlreadyStarted = errors.New("이미 플랜이 시작되었습니다")
	ErrPlanNotStarted     = errors.New("플랜이 아직 시작되지 않았습니다")
	ErrPlanDayOutOfRange  = errors.New("플랜 일차가 범위를 벗어났습니다")
)
