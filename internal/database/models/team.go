package models

import (
	"github.com/google/uuid"
)

// Team represents a baseball team. CreatedBy records the creator but is not
// an authorization boundary; any authenticated user may edit or delete any
// team. Deleting a team cascades to its players and their reports.
type Team struct {
	BaseModel
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	League    string    `json:"league" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;index"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
