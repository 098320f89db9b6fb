package repository

import (
	"scoutpro-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAllWithCreator() ([]TeamRow, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	GetAllWithTeam(teamID *uuid.UUID) ([]PlayerRow, error)
	GetIDsByTeamID(teamID uuid.UUID) ([]uuid.UUID, error)
	Update(player *models.Player) error
	Delete(id uuid.UUID) error
	DeleteByTeamID(teamID uuid.UUID) error
}

// ReportRepositoryInterface defines the interface for report repository operations
type ReportRepositoryInterface interface {
	Create(report *models.Report) error
	GetByID(id uuid.UUID) (*models.Report, error)
	GetAllAnnotated(playerID *uuid.UUID) ([]ReportRow, error)
	GetByPlayerIDs(playerIDs []uuid.UUID) ([]models.Report, error)
	Update(report *models.Report) error
	Delete(id uuid.UUID) error
	DeleteByPlayerIDs(playerIDs []uuid.UUID) error
}
