package repository

import (
	"time"

	"scoutpro-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerRow is a player annotated with its team's name and league for list
// views. Team columns are empty for orphaned players.
type PlayerRow struct {
	ID           uuid.UUID `gorm:"column:id"`
	Name         string    `gorm:"column:name"`
	Position     string    `gorm:"column:position"`
	JerseyNumber string    `gorm:"column:jersey_number"`
	TeamID       uuid.UUID `gorm:"column:team_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	TeamName     string    `gorm:"column:team_name"`
	TeamLeague   string    `gorm:"column:team_league"`
}

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetAllWithTeam retrieves all players annotated with team name and league,
// optionally filtered to a single team.
func (r *PlayerRepository) GetAllWithTeam(teamID *uuid.UUID) ([]PlayerRow, error) {
	var rows []PlayerRow
	query := r.db.Table("players").
		Select("players.id, players.name, players.position, players.jersey_number, players.team_id, players.created_at, teams.name AS team_name, teams.league AS team_league").
		Joins("LEFT JOIN teams ON teams.id = players.team_id").
		Order("players.created_at DESC")
	if teamID != nil {
		query = query.Where("players.team_id = ?", *teamID)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetIDsByTeamID retrieves the IDs of all players under a team. Used by the
// team-delete cascade, which must capture player IDs before the rows go.
func (r *PlayerRepository) GetIDsByTeamID(teamID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Player{}).Where("team_id = ?", teamID).Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete deletes a player
func (r *PlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}

// DeleteByTeamID deletes all players under a team
func (r *PlayerRepository) DeleteByTeamID(teamID uuid.UUID) error {
	return r.db.Delete(&models.Player{}, "team_id = ?", teamID).Error
}
