package service

import (
	"errors"
	"fmt"
	"time"

	"scoutpro-backend/internal/auth"
	"scoutpro-backend/internal/database/models"
	apperrors "scoutpro-backend/internal/errors"
	"scoutpro-backend/internal/logger"
	"scoutpro-backend/internal/repository"
	"scoutpro-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams, including the team-delete
// cascade over players and reports.
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	reportRepo repository.ReportRepositoryInterface
	store      storage.FileStore
	policy     auth.Policy
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, reportRepo repository.ReportRepositoryInterface, store storage.FileStore, policy auth.Policy, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		playerRepo: playerRepo,
		reportRepo: reportRepo,
		store:      store,
		policy:     policy,
		validator:  validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	League string `json:"league" validate:"required,min=1,max=100"`
}

// UpdateTeamRequest represents the request to update a team. Both fields are
// replaced in full.
type UpdateTeamRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	League string `json:"league" validate:"required,min=1,max=100"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	League         string    `json:"league"`
	CreatedBy      uuid.UUID `json:"created_by"`
	CreatedByEmail string    `json:"created_by_email,omitempty"`
	CreatedAt      string    `json:"created_at"`
}

// List retrieves all teams annotated with the creator's email
func (s *TeamService) List() ([]TeamResponse, error) {
	rows, err := s.repo.GetAllWithCreator()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(rows))
	for i, row := range rows {
		responses[i] = TeamResponse{
			ID:             row.ID,
			Name:           row.Name,
			League:         row.League,
			CreatedBy:      row.CreatedBy,
			CreatedByEmail: row.CreatorEmail,
			CreatedAt:      row.CreatedAt.Format(time.RFC3339),
		}
	}
	return responses, nil
}

// Create creates a new team owned by the caller
func (s *TeamService) Create(actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if !s.policy.Allow(actorID, auth.ActionCreate, auth.Resource{Kind: "team"}) {
		return nil, apperrors.NewAuthorizationError("not allowed to create teams")
	}

	team := &models.Team{
		Name:      req.Name,
		League:    req.League,
		CreatedBy: actorID,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// Update replaces the mutable fields of a team
func (s *TeamService) Update(actorID, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if !s.policy.Allow(actorID, auth.ActionUpdate, auth.Resource{Kind: "team", OwnerID: team.CreatedBy}) {
		return nil, apperrors.NewAuthorizationError("not allowed to update this team")
	}

	team.Name = req.Name
	team.League = req.League
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// cascadeStep is one named, individually captured stage of a multi-step
// delete. The steps are sequential and non-atomic; a failure aborts the
// remainder and surfaces the failing stage.
type cascadeStep struct {
	name string
	run  func() error
}

// Delete deletes a team and cascades over its players and their reports.
// Player IDs and spray chart references are captured before any row is
// deleted. Chart files are removed best-effort afterwards.
func (s *TeamService) Delete(actorID, id uuid.UUID) error {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if !s.policy.Allow(actorID, auth.ActionDelete, auth.Resource{Kind: "team", OwnerID: team.CreatedBy}) {
		return apperrors.NewAuthorizationError("not allowed to delete this team")
	}

	playerIDs, err := s.playerRepo.GetIDsByTeamID(id)
	if err != nil {
		return fmt.Errorf("failed to collect players for cascade: %w", err)
	}
	reports, err := s.reportRepo.GetByPlayerIDs(playerIDs)
	if err != nil {
		return fmt.Errorf("failed to collect reports for cascade: %w", err)
	}

	steps := []cascadeStep{
		{name: "delete team", run: func() error { return s.repo.Delete(id) }},
		{name: "delete players", run: func() error { return s.playerRepo.DeleteByTeamID(id) }},
		{name: "delete reports", run: func() error { return s.reportRepo.DeleteByPlayerIDs(playerIDs) }},
	}
	log := logger.New().WithFields(map[string]interface{}{"team_id": id, "players": len(playerIDs), "reports": len(reports)})
	for _, step := range steps {
		if err := step.run(); err != nil {
			log.WithField("step", step.name).Errorf("team delete cascade failed: %v", err)
			return fmt.Errorf("cascade step %q failed: %w", step.name, err)
		}
	}

	removeSprayCharts(s.store, reports)
	return nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		League:    team.League,
		CreatedBy: team.CreatedBy,
		CreatedAt: team.CreatedAt.Format(time.RFC3339),
	}
}

// removeSprayCharts deletes the chart files referenced by the given reports.
// Best-effort: failures are logged and never fail the parent operation.
func removeSprayCharts(store storage.FileStore, reports []models.Report) {
	for _, report := range reports {
		if report.SprayChartURL == "" {
			continue
		}
		name := storage.FileName(report.SprayChartURL)
		if err := store.Remove(name); err != nil {
			logger.New().WithField("file", name).Warnf("failed to remove spray chart: %v", err)
		}
	}
}
