package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team operations
type TeamServiceInterface interface {
	List() ([]TeamResponse, error)
	Create(actorID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	Update(actorID, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(actorID, id uuid.UUID) error
}

// PlayerServiceInterface defines the interface for player operations
type PlayerServiceInterface interface {
	List(teamID *uuid.UUID) ([]PlayerResponse, error)
	Create(actorID uuid.UUID, req *CreatePlayerRequest) (*PlayerResponse, error)
	Update(actorID, id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error)
	Delete(actorID, id uuid.UUID) error
}

// ReportServiceInterface defines the interface for scouting report operations
type ReportServiceInterface interface {
	List(playerID *uuid.UUID) ([]ReportResponse, error)
	Create(actorID uuid.UUID, req *CreateReportRequest) (*ReportResponse, error)
	Update(actorID, id uuid.UUID, req *UpdateReportRequest) (*ReportResponse, error)
	Delete(actorID, id uuid.UUID) error
}

// UploadServiceInterface defines the interface for spray chart uploads
type UploadServiceInterface interface {
	AttachSprayChart(actorID, reportID uuid.UUID, upload *SprayChartUpload) (*SprayChartResponse, error)
}
