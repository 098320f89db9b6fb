package repository

import (
	"encoding/json"
	"time"

	"scoutpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRow is a report annotated with a player summary and the scout's
// email for list views.
type ReportRow struct {
	ID             uuid.UUID       `gorm:"column:id"`
	PlayerID       uuid.UUID       `gorm:"column:player_id"`
	ScoutID        uuid.UUID       `gorm:"column:scout_id"`
	Date           string          `gorm:"column:date"`
	Evaluations    json.RawMessage `gorm:"column:evaluations"`
	Notes          string          `gorm:"column:notes"`
	SprayChartURL  string          `gorm:"column:spray_chart_url"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
	PlayerName     string          `gorm:"column:player_name"`
	PlayerPosition string          `gorm:"column:player_position"`
	PlayerJersey   string          `gorm:"column:player_jersey"`
	ScoutEmail     string          `gorm:"column:scout_email"`
}

// ReportRepository handles database operations for scouting reports
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create creates a new report
func (r *ReportRepository) Create(report *models.Report) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetAllAnnotated retrieves all reports annotated with player summary and
// scout email, most recent scouting date first, optionally filtered to one
// player.
func (r *ReportRepository) GetAllAnnotated(playerID *uuid.UUID) ([]ReportRow, error) {
	var rows []ReportRow
	query := r.db.Table("reports").
		Select("reports.id, reports.player_id, reports.scout_id, reports.date, reports.evaluations, reports.notes, reports.spray_chart_url, reports.created_at, reports.updated_at, " +
			"players.name AS player_name, players.position AS player_position, players.jersey_number AS player_jersey, users.email AS scout_email").
		Joins("LEFT JOIN players ON players.id = reports.player_id").
		Joins("LEFT JOIN users ON users.id = reports.scout_id").
		Order("reports.date DESC").
		Order("reports.created_at DESC")
	if playerID != nil {
		query = query.Where("reports.player_id = ?", *playerID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByPlayerIDs retrieves all reports referencing any of the given players.
// The cascade paths use this to collect spray chart references before the
// rows are deleted.
func (r *ReportRepository) GetByPlayerIDs(playerIDs []uuid.UUID) ([]models.Report, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}
	var reports []models.Report
	err := r.db.Where("player_id IN ?", playerIDs).Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Update updates a report
func (r *ReportRepository) Update(report *models.Report) error {
	return r.db.Save(report).Error
}

// Delete deletes a report
func (r *ReportRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Report{}, "id = ?", id).Error
}

// DeleteByPlayerIDs deletes all reports referencing any of the given players
func (r *ReportRepository) DeleteByPlayerIDs(playerIDs []uuid.UUID) error {
	if len(playerIDs) == 0 {
		return nil
	}
	return r.db.Delete(&models.Report{}, "player_id IN ?", playerIDs).Error
}
