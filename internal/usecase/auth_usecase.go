package usecase

import (
	"context"
	"errors"

	"project-recommender/internal/domain/student"
	"project-recommender/internal/pkg/jwt"
	"project-recommender/internal/repository"
	ucauth "project-recommender/internal/usecase/auth"
)

type AuthResult struct {
	Profile      student.Profile
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Signup(ctx context.Context, in ucauth.RegisterInput) (AuthResult, error)
	Login(ctx context.Context, in ucauth.LoginInput) (AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	authSvc  *ucauth.Service
	students student.Repository
	skills   repository.StudentSkillRepository
	jwt      jwt.Service
	throttle *LoginThrottle
}

func NewAuthUsecase(students student.Repository, skills repository.StudentSkillRepository, jwtSvc jwt.Service, throttle *LoginThrottle) *Auth {
	return &Auth{
		authSvc:  ucauth.NewService(students),
		students: students,
		skills:   skills,
		jwt:      jwtSvc,
		throttle: throttle,
	}
}

func (u *Auth) Signup(ctx context.Context, in ucauth.RegisterInput) (AuthResult, error) {
	st, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return AuthResult{}, err
	}
	return u.issue(student.Profile{Student: st})
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (AuthResult, error) {
	email := ucauth.NormalizeEmail(in.Email)
	if email != "" && u.throttle.Locked(ctx, email) {
		return AuthResult{}, ErrTooManyLoginAttempts
	}

	st, err := u.authSvc.Login(ctx, in)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			u.throttle.RecordFailure(ctx, email)
		}
		return AuthResult{}, err
	}
	u.throttle.Reset(ctx, email)

	skills, err := u.skills.FindByStudentID(ctx, st.ID)
	if err != nil {
		return AuthResult{}, ErrInternal
	}
	return u.issue(student.Profile{Student: st, Skills: skills})
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	st, err := u.students.GetStudentByID(ctx, claims.StudentID)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(st.ID, st.Email)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(st.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) issue(p student.Profile) (AuthResult, error) {
	access, err := u.jwt.GenerateAccessToken(p.ID, p.Email)
	if err != nil {
		return AuthResult{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(p.ID)
	if err != nil {
		return AuthResult{}, ErrInternal
	}
	return AuthResult{Profile: p, AccessToken: access, RefreshToken: refresh}, nil
}
