package service

import (
	"errors"
	"fmt"
	"time"

	"scoutpro-backend/internal/auth"
	"scoutpro-backend/internal/database/models"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/repository"
	"scoutpro-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles business logic for players
type PlayerService struct {
	repo       repository.PlayerRepositoryInterface
	reportRepo repository.ReportRepositoryInterface
	store      storage.FileStore
	policy     auth.Policy
	validator  *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, reportRepo repository.ReportRepositoryInterface, store storage.FileStore, policy auth.Policy, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:       repo,
		reportRepo: reportRepo,
		store:      store,
		policy:     policy,
		validator:  validator,
	}
}

// CreatePlayerRequest represents the request to create a player. TeamID is
// recorded as given; it is not checked against an existing team.
type CreatePlayerRequest struct {
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	Position     string    `json:"position" validate:"required,max=20"`
	JerseyNumber string    `json:"jerseyNumber" validate:"max=10"`
	TeamID       uuid.UUID `json:"teamId" validate:"required"`
}

// UpdatePlayerRequest represents the request to update a player
type UpdatePlayerRequest struct {
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	Position     string    `json:"position" validate:"required,max=20"`
	JerseyNumber string    `json:"jerseyNumber" validate:"max=10"`
	TeamID       uuid.UUID `json:"teamId" validate:"required"`
}

// PlayerResponse represents the response for player operations
type PlayerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	JerseyNumber string    `json:"jersey_number"`
	TeamID       uuid.UUID `json:"team_id"`
	TeamName     string    `json:"team_name,omitempty"`
	TeamLeague   string    `json:"team_league,omitempty"`
	CreatedAt    string    `json:"created_at"`
}

// List retrieves all players annotated with team name and league, optionally
// filtered to one team
func (s *PlayerService) List(teamID *uuid.UUID) ([]PlayerResponse, error) {
	rows, err := s.repo.GetAllWithTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	responses := make([]PlayerResponse, len(rows))
	for i, row := range rows {
		responses[i] = PlayerResponse{
			ID:           row.ID,
			Name:         row.Name,
			Position:     row.Position,
			JerseyNumber: row.JerseyNumber,
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			TeamLeague:   row.TeamLeague,
			CreatedAt:    row.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// Create creates a new player
func (s *PlayerService) Create(actorID uuid.UUID, req *CreatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if !s.policy.Allow(actorID, auth.ActionCreate, auth.Resource{Kind: "player"}) {
		return nil, apperrors.NewAuthorizationError("not allowed to create players")
	}

	player := &models.Player{
		Name:         req.Name,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		TeamID:       req.TeamID,
	}
	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return s.toResponse(player), nil
}

// Update replaces the mutable fields of a player
func (s *PlayerService) Update(actorID, id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if !s.policy.Allow(actorID, auth.ActionUpdate, auth.Resource{Kind: "player"}) {
		return nil, apperrors.NewAuthorizationError("not allowed to update this player")
	}

	player.Name = req.Name
	player.Position = req.Position
	player.JerseyNumber = req.JerseyNumber
	player.TeamID = req.TeamID
	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return s.toResponse(player), nil
}

// Delete deletes a player and cascades to its reports. Report references are
// captured first so chart files can be removed best-effort afterwards.
func (s *PlayerService) Delete(actorID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player: %w", err)
	}

	if !s.policy.Allow(actorID, auth.ActionDelete, auth.Resource{Kind: "player"}) {
		return apperrors.NewAuthorizationError("not allowed to delete this player")
	}

	reports, err := s.reportRepo.GetByPlayerIDs([]uuid.UUID{id})
	if err != nil {
		return fmt.Errorf("failed to collect reports for cascade: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if err := s.reportRepo.DeleteByPlayerIDs([]uuid.UUID{id}); err != nil {
		return fmt.Errorf("cascade step %q failed: %w", "delete reports", err)
	}

	removeSprayCharts(s.store, reports)
	return nil
}

func (s *PlayerService) toResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:           player.ID,
		Name:         player.Name,
		Position:     player.Position,
		JerseyNumber: player.JerseyNumber,
		TeamID:       player.TeamID,
		CreatedAt:    player.CreatedAt.Format(time.RFC3339),
	}
}
