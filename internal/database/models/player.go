package models

import (
	"github.com/google/uuid"
)

// Player represents a scouted player. TeamID is not validated against an
// existing team and carries no foreign key constraint; orphaned players are
// listed without team annotations. Deleting a player cascades to its reports.
type Player struct {
	BaseModel
	Name         string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Position     string    `json:"position" gorm:"not null;size:20" validate:"required,max=20"`
	JerseyNumber string    `json:"jersey_number" gorm:"size:10" validate:"max=10"`
	TeamID       uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
