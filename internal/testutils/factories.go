package testutils

import (
	"time"

	"scoutpro-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Email:        "coach@example.com",
		PasswordHash: string(hash),
		Role:         models.UserRoleCoach,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:      "City Hawks",
		League:    "Metro League",
		CreatedBy: uuid.New(),
	}
}

// WithCreator sets the creating user for the team
func (f *TeamFactory) WithCreator(userID uuid.UUID) *models.Team {
	team := f.Create()
	team.CreatedBy = userID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         "Mike Johnson",
		Position:     "SS",
		JerseyNumber: "12",
		TeamID:       uuid.New(),
	}
}

// WithTeam sets the team for the player
func (f *PlayerFactory) WithTeam(teamID uuid.UUID) *models.Player {
	player := f.Create()
	player.TeamID = teamID
	return player
}

// ReportFactory provides methods to create test Report data
type ReportFactory struct{}

// NewReportFactory creates a new ReportFactory
func NewReportFactory() *ReportFactory {
	return &ReportFactory{}
}

// Create creates a test Report with default values
func (f *ReportFactory) Create() *models.Report {
	now := time.Now()
	return &models.Report{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		PlayerID:    uuid.New(),
		ScoutID:     uuid.New(),
		Date:        now.Format("2006-01-02"),
		Evaluations: []byte(`{"hitting":"4","fielding":"3"}`),
		Notes:       "Strong arm, quick first step",
		UpdatedAt:   now,
	}
}

// ForPlayer sets the player and scout for the report
func (f *ReportFactory) ForPlayer(playerID, scoutID uuid.UUID) *models.Report {
	report := f.Create()
	report.PlayerID = playerID
	report.ScoutID = scoutID
	return report
}

// WithDate sets a custom report date (YYYY-MM-DD)
func (f *ReportFactory) WithDate(date string) *models.Report {
	report := f.Create()
	report.Date = date
	return report
}
