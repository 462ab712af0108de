package usecase

import "errors"

var (
	ErrInternal     = errors.New("internal error")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrTooManyLoginAttempts = errors.New("too many login attempts")

	ErrStudentNotFound         = errors.New("student not found")
	ErrEmailAlreadyRegistered  = errors.New("email already registered")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")

	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectTitleTaken = errors.New("project title already exists")
)
