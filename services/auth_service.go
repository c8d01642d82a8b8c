package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/repository"
	"github.com/youssofmousssa/luxestorebackeend/utils"
)

const msgInvalidCredentials = "Invalid credentials"

// AuthService owns registration, login and identity lookup.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
	cost      int

	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration, cost int) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
		cost:      cost,
	}
}

// AuthResult is the body returned by register and login.
type AuthResult struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Register creates a user with role "user". Emails are compared exactly.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*AuthResult, error) {
	if email == "" || name == "" || password == "" {
		return nil, apperr.Validation("Missing fields")
	}

	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Name:     name,
		Password: string(hashed),
		Role:     entity.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost the race against a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Email already registered")
		}
		return nil, err
	}

	return s.issue(*user)
}

// Login fails with the same error for an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("Email and password required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// burn the same bcrypt time as a real comparison
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(password))
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	return s.issue(*user)
}

// FindByID returns apperr.ErrNotFound when the user no longer exists.
func (s *AuthService) FindByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("User not found")
	}
	return user, err
}

func (s *AuthService) issue(user entity.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) dummy() []byte {
	s.dummyOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte("luxe-store-dummy-password"), s.cost)
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
