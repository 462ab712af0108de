package auth

import (
	"context"
	"errors"
	"strings"

	"project-recommender/internal/domain/student"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrPasswordTooShort       = errors.New("password must be at least 6 characters long")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	students student.Repository
}

func NewService(students student.Repository) *Service {
	return &Service{students: students}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (student.Student, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return student.Student{}, ErrInvalidInput
	}
	if !isValidPassword(in.Password) {
		return student.Student{}, ErrPasswordTooShort
	}

	exists, err := s.students.ExistsByEmail(ctx, email)
	if err != nil {
		return student.Student{}, ErrInternal
	}
	if exists {
		return student.Student{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(in.Password)), bcrypt.DefaultCost)
	if err != nil {
		return student.Student{}, ErrInternal
	}

	st := student.Student{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.students.CreateStudent(ctx, st, nil); err != nil {
		if errors.Is(err, student.ErrEmailTaken) {
			return student.Student{}, ErrEmailAlreadyRegistered
		}
		return student.Student{}, ErrInternal
	}

	created, err := s.students.GetStudentByID(ctx, st.ID)
	if err != nil {
		return student.Student{}, ErrInternal
	}
	return sanitizeStudent(created), nil
}

// Login checks credentials. Unknown emails, students created without a
// password and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (student.Student, error) {
	email := NormalizeEmail(in.Email)
	pw := strings.TrimSpace(in.Password)
	if email == "" || pw == "" {
		return student.Student{}, ErrInvalidInput
	}

	st, err := s.students.GetStudentByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, student.ErrNotFound) {
			return student.Student{}, ErrInvalidCredentials
		}
		return student.Student{}, ErrInternal
	}
	if st.PasswordHash == "" {
		return student.Student{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(pw)); err != nil {
		return student.Student{}, ErrInvalidCredentials
	}

	return sanitizeStudent(st), nil
}

func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= minPasswordLength
}

func sanitizeStudent(s student.Student) student.Student {
	s.PasswordHash = ""
	return s
}
