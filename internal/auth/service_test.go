package auth

import (
	"testing"
	"time"

	"scoutpro-backend/internal/database/models"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testRegistrationCode = "COACH2024"

// fakeUserRepo stands in for the user repository. The generated mocks live in
// a package that also mocks the service layer, which imports this package, so
// they cannot be used from in-package tests here.
type fakeUserRepo struct {
	createFn     func(user *models.User) error
	getByIDFn    func(id uuid.UUID) (*models.User, error)
	getByEmailFn func(email string) (*models.User, error)
}

var _ repository.UserRepositoryInterface = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(user)
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*models.User, error) {
	if f.getByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.getByIDFn(id)
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if f.getByEmailFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.getByEmailFn(email)
}

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	userRepo    *fakeUserRepo
	authService *AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.userRepo = &fakeUserRepo{}
	suite.authService = NewAuthService(suite.userRepo, "test-secret", testRegistrationCode, validator.New())
}

func (suite *AuthServiceTestSuite) TestRegisterIssuesToken() {
	req := &RegisterRequest{
		Email:            "coach@cityhawks.com",
		Password:         "hawks2024",
		RegistrationCode: testRegistrationCode,
	}

	var created *models.User
	suite.userRepo.getByEmailFn = func(email string) (*models.User, error) {
		suite.Equal("coach@cityhawks.com", email)
		return nil, gorm.ErrRecordNotFound
	}
	suite.userRepo.createFn = func(user *models.User) error {
		suite.Equal(models.UserRoleCoach, user.Role)
		suite.NotEqual("hawks2024", user.PasswordHash)
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hawks2024")))
		user.ID = uuid.New()
		created = user
		return nil
	}

	result, err := suite.authService.Register(req)

	suite.NoError(err)
	suite.NotNil(created)
	suite.NotEmpty(result.Token)
	suite.Equal("coach@cityhawks.com", result.User.Email)

	claims, err := suite.authService.ValidateToken(result.Token)
	suite.NoError(err)
	suite.Equal("coach@cityhawks.com", claims.Email)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsWrongCode() {
	req := &RegisterRequest{
		Email:            "coach@cityhawks.com",
		Password:         "hawks2024",
		RegistrationCode: "WRONG",
	}

	result, err := suite.authService.Register(req)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidRegistrationCode)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsDuplicateEmail() {
	req := &RegisterRequest{
		Email:            "coach@cityhawks.com",
		Password:         "hawks2024",
		RegistrationCode: testRegistrationCode,
	}

	suite.userRepo.getByEmailFn = func(email string) (*models.User, error) {
		return &models.User{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Email:     "coach@cityhawks.com",
		}, nil
	}

	result, err := suite.authService.Register(req)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *AuthServiceTestSuite) TestRegisterRejectsShortPassword() {
	req := &RegisterRequest{
		Email:            "coach@cityhawks.com",
		Password:         "abc",
		RegistrationCode: testRegistrationCode,
	}

	result, err := suite.authService.Register(req)

	suite.Nil(result)
	suite.True(apperrors.IsValidation(err))
}

func (suite *AuthServiceTestSuite) TestLoginSucceeds() {
	hash, err := bcrypt.GenerateFromPassword([]byte("hawks2024"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.userRepo.getByEmailFn = func(email string) (*models.User, error) {
		return &models.User{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			Email:        "coach@cityhawks.com",
			PasswordHash: string(hash),
			Role:         models.UserRoleCoach,
		}, nil
	}

	result, err := suite.authService.Login(&LoginRequest{
		Email:    "coach@cityhawks.com",
		Password: "hawks2024",
	})

	suite.NoError(err)
	suite.NotEmpty(result.Token)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPasswordAndUnknownEmailLookAlike() {
	hash, err := bcrypt.GenerateFromPassword([]byte("hawks2024"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.userRepo.getByEmailFn = func(email string) (*models.User, error) {
		if email == "coach@cityhawks.com" {
			return &models.User{
				BaseModel:    models.BaseModel{ID: uuid.New()},
				Email:        "coach@cityhawks.com",
				PasswordHash: string(hash),
			}, nil
		}
		return nil, gorm.ErrRecordNotFound
	}

	_, wrongPassword := suite.authService.Login(&LoginRequest{
		Email:    "coach@cityhawks.com",
		Password: "wrong",
	})
	_, unknownEmail := suite.authService.Login(&LoginRequest{
		Email:    "nobody@cityhawks.com",
		Password: "hawks2024",
	})

	suite.ErrorIs(wrongPassword, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(unknownEmail, apperrors.ErrInvalidCredentials)
	suite.Equal(wrongPassword.Error(), unknownEmail.Error())
}

func (suite *AuthServiceTestSuite) TestValidateTokenRejectsExpired() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "coach@cityhawks.com",
	}

	// issue a token from beyond its own lifetime in the past
	suite.authService.now = func() time.Time { return time.Now().Add(-TokenTTL - time.Hour) }
	resp, err := suite.authService.tokenResponse(user)
	suite.Require().NoError(err)

	claims, err := suite.authService.ValidateToken(resp.Token)

	suite.Nil(claims)
	suite.ErrorIs(err, apperrors.ErrInvalidOrExpiredToken)
}

func (suite *AuthServiceTestSuite) TestValidateTokenRejectsWrongSecret() {
	other := NewAuthService(suite.userRepo, "other-secret", testRegistrationCode, validator.New())
	resp, err := other.tokenResponse(&models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "coach@cityhawks.com",
	})
	suite.Require().NoError(err)

	claims, err := suite.authService.ValidateToken(resp.Token)

	suite.Nil(claims)
	suite.ErrorIs(err, apperrors.ErrInvalidOrExpiredToken)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
