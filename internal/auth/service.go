package auth

import (
	"errors"
	"fmt"
	"time"

	"scoutpro-backend/internal/database/models"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL is the bearer token lifetime
const TokenTTL = 24 * time.Hour

// AuthService issues and verifies bearer tokens and manages registration
// and login against the credential store.
type AuthService struct {
	users            repository.UserRepositoryInterface
	secret           []byte
	registrationCode string
	validator        *validator.Validate
	now              func() time.Time
}

// Claims represents the identity embedded in a bearer token
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RegisterRequest represents the request to register an account
type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email,max=255"`
	Password         string `json:"password" validate:"required,min=6,max=72"`
	RegistrationCode string `json:"registrationCode" validate:"required"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserView is the public view of an account
type UserView struct {
	ID    uuid.UUID       `json:"id"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// AuthResponse is the token/user pair returned by Register and Login
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepositoryInterface, secret, registrationCode string, validator *validator.Validate) *AuthService {
	return &AuthService{
		users:            users,
		secret:           []byte(secret),
		registrationCode: registrationCode,
		validator:        validator,
		now:              time.Now,
	}
}

// Register creates a new coach account gated by the shared registration
// code. The duplicate check is an exact, case-sensitive email match.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if req.RegistrationCode != s.registrationCode {
		return nil, apperrors.ErrInvalidRegistrationCode
	}

	existing, err := s.users.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.UserRoleCoach,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokenResponse(user)
}

// Login verifies credentials. Unknown email and wrong password fail with the
// same error so the caller cannot tell which check failed.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

// ValidateToken decodes and checks signature and expiry. It deliberately
// does not re-fetch the user record, so an existing token stays valid until
// expiry even if the account changes.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}
	return claims, nil
}

func (s *AuthService) tokenResponse(user *models.User) (*AuthResponse, error) {
	now := s.now()
	claims := &Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User: UserView{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}
