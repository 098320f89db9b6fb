package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Rating is the ordered vocabulary for evaluation values. Values are
// accepted as free-form strings at the API boundary; the constants document
// the expected scale.
const (
	RatingPoor         = "Poor"
	RatingBelowAverage = "Below Average"
	RatingAverage      = "Average"
	RatingAboveAverage = "Above Average"
	RatingExcellent    = "Excellent"
)

// Report represents a dated scouting evaluation for one player. PlayerID and
// ScoutID are immutable after creation. Evaluations maps skill keys to
// rating strings and is stored as a JSON document.
type Report struct {
	BaseModel
	PlayerID      uuid.UUID       `json:"player_id" gorm:"type:uuid;not null;index" validate:"required"`
	ScoutID       uuid.UUID       `json:"scout_id" gorm:"type:uuid;not null;index"`
	Date          string          `json:"date" gorm:"not null;size:10;index" validate:"required,datetime=2006-01-02"`
	Evaluations   json.RawMessage `json:"evaluations" gorm:"type:jsonb"`
	Notes         string          `json:"notes" gorm:"type:text"`
	SprayChartURL string          `json:"spray_chart_url" gorm:"size:255"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName returns the table name for Report
func (Report) TableName() string {
	return "reports"
}
