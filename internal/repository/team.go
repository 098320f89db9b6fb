package repository

import (
	"time"

	"scoutpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRow is a team annotated with its creator's email for list views
type TeamRow struct {
	ID           uuid.UUID `gorm:"column:id"`
	Name         string    `gorm:"column:name"`
	League       string    `gorm:"column:league"`
	CreatedBy    uuid.UUID `gorm:"column:created_by"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	CreatorEmail string    `gorm:"column:creator_email"`
}

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAllWithCreator retrieves all teams annotated with the creator email.
// LEFT JOIN because the creator reference is not constrained.
func (r *TeamRepository) GetAllWithCreator() ([]TeamRow, error) {
	var rows []TeamRow
	err := r.db.Table("teams").
		Select("teams.id, teams.name, teams.league, teams.created_by, teams.created_at, users.email AS creator_email").
		Joins("LEFT JOIN users ON users.id = teams.created_by").
		Order("teams.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
