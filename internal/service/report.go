package service

import (
	"encoding/json"
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

// ReportService handles business logic for scouting reports
type ReportService struct {
	repo      repository.ReportRepositoryInterface
	store     storage.FileStore
	policy    auth.Policy
	validator *validator.Validate
}

// NewReportService creates a new report service
func NewReportService(repo repository.ReportRepositoryInterface, store storage.FileStore, policy auth.Policy, validator *validator.Validate) *ReportService {
	return &ReportService{
		repo:      repo,
		store:     store,
		policy:    policy,
		validator: validator,
	}
}

// CreateReportRequest represents the request to create a report. PlayerID is
// recorded as given; it is not checked against an existing player. Rating
// values are accepted as free-form strings.
type CreateReportRequest struct {
	PlayerID    uuid.UUID         `json:"playerId" validate:"required"`
	Date        string            `json:"date" validate:"required,datetime=2006-01-02"`
	Evaluations map[string]string `json:"evaluations"`
	Notes       string            `json:"notes"`
}

// UpdateReportRequest represents the request to update a report. PlayerID
// and ScoutID are immutable after creation.
type UpdateReportRequest struct {
	Date        string            `json:"date" validate:"required,datetime=2006-01-02"`
	Evaluations map[string]string `json:"evaluations"`
	Notes       string            `json:"notes"`
}

// PlayerSummary is the player annotation attached to report list entries
type PlayerSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Position     string    `json:"position"`
	JerseyNumber string    `json:"jersey_number"`
}

// ReportResponse represents the response for report operations
type ReportResponse struct {
	ID            uuid.UUID         `json:"id"`
	PlayerID      uuid.UUID         `json:"player_id"`
	ScoutID       uuid.UUID         `json:"scout_id"`
	ScoutEmail    string            `json:"scout_email,omitempty"`
	Date          string            `json:"date"`
	Evaluations   map[string]string `json:"evaluations"`
	Notes         string            `json:"notes"`
	SprayChartURL string            `json:"spray_chart_url,omitempty"`
	Player        *PlayerSummary    `json:"player,omitempty"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

// List retrieves all reports, most recent scouting date first, annotated
// with a player summary and the scout's email, optionally filtered to one
// player
func (s *ReportService) List(playerID *uuid.UUID) ([]ReportResponse, error) {
	rows, err := s.repo.GetAllAnnotated(playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	responses := make([]ReportResponse, len(rows))
	for i, row := range rows {
		responses[i] = ReportResponse{
			ID:            row.ID,
			PlayerID:      row.PlayerID,
			ScoutID:       row.ScoutID,
			ScoutEmail:    row.ScoutEmail,
			Date:          row.Date,
			Evaluations:   decodeEvaluations(row.Evaluations),
			Notes:         row.Notes,
			SprayChartURL: row.SprayChartURL,
			CreatedAt:     row.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     row.UpdatedAt.Format(time.RFC3339),
		}
		if row.PlayerName != "" {
			responses[i].Player = &PlayerSummary{
				ID:           row.PlayerID,
				Name:         row.PlayerName,
				Position:     row.PlayerPosition,
				JerseyNumber: row.PlayerJersey,
			}
		}
	}
	return responses, nil
}

// Create creates a new report. The scout is always the caller, never
// client-supplied.
func (s *ReportService) Create(actorID uuid.UUID, req *CreateReportRequest) (*ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if !s.policy.Allow(actorID, auth.ActionCreate, auth.Resource{Kind: "report"}) {
		return nil, apperrors.NewAuthorizationError("not allowed to create reports")
	}

	evaluations, err := encodeEvaluations(req.Evaluations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal evaluations: %w", err)
	}

	report := &models.Report{
		PlayerID:    req.PlayerID,
		ScoutID:     actorID,
		Date:        req.Date,
		Evaluations: evaluations,
		Notes:       req.Notes,
	}
	if err := s.repo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return s.toResponse(report), nil
}

// Update replaces date, evaluations and notes, and refreshes UpdatedAt
func (s *ReportService) Update(actorID, id uuid.UUID, req *UpdateReportRequest) (*ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if !s.policy.Allow(actorID, auth.ActionUpdate, auth.Resource{Kind: "report", OwnerID: report.ScoutID}) {
		return nil, apperrors.NewAuthorizationError("not allowed to update this report")
	}

	evaluations, err := encodeEvaluations(req.Evaluations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal evaluations: %w", err)
	}

	report.Date = req.Date
	report.Evaluations = evaluations
	report.Notes = req.Notes
	if err := s.repo.Update(report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	return s.toResponse(report), nil
}

// Delete deletes a report. A referenced spray chart file is removed
// best-effort; a missing file is not an error.
func (s *ReportService) Delete(actorID, id uuid.UUID) error {
	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReportNotFound
		}
		return fmt.Errorf("failed to get report: %w", err)
	}

	if !s.policy.Allow(actorID, auth.ActionDelete, auth.Resource{Kind: "report", OwnerID: report.ScoutID}) {
		return apperrors.NewAuthorizationError("not allowed to delete this report")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	if report.SprayChartURL != "" {
		name := storage.FileName(report.SprayChartURL)
		if err := s.store.Remove(name); err != nil {
			logger.New().WithField("file", name).Warnf("failed to remove spray chart: %v", err)
		}
	}
	return nil
}

func (s *ReportService) toResponse(report *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:            report.ID,
		PlayerID:      report.PlayerID,
		ScoutID:       report.ScoutID,
		Date:          report.Date,
		Evaluations:   decodeEvaluations(report.Evaluations),
		Notes:         report.Notes,
		SprayChartURL: report.SprayChartURL,
		CreatedAt:     report.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     report.UpdatedAt.Format(time.RFC3339),
	}
}

func encodeEvaluations(evaluations map[string]string) (json.RawMessage, error) {
	if evaluations == nil {
		evaluations = map[string]string{}
	}
	return json.Marshal(evaluations)
}

func decodeEvaluations(raw json.RawMessage) map[string]string {
	evaluations := map[string]string{}
	if len(raw) > 0 {
		// tolerate malformed stored documents rather than failing the read
		_ = json.Unmarshal(raw, &evaluations)
	}
	return evaluations
}
