package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scoutpro-backend/internal/config"
	"scoutpro-backend/internal/database"
	"scoutpro-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the YAML fixture layout
type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type TeamData struct {
	Name         string `yaml:"name"`
	League       string `yaml:"league"`
	CreatorEmail string `yaml:"creator_email"`
}

type PlayerData struct {
	Name         string `yaml:"name"`
	Position     string `yaml:"position"`
	JerseyNumber string `yaml:"jersey_number"`
	TeamName     string `yaml:"team_name"`
}

type ReportData struct {
	PlayerName  string            `yaml:"player_name"`
	ScoutEmail  string            `yaml:"scout_email"`
	Date        string            `yaml:"date"`
	Evaluations map[string]string `yaml:"evaluations,omitempty"`
	Notes       string            `yaml:"notes,omitempty"`
}

type FixtureFile struct {
	Users   []UserData   `yaml:"users,omitempty"`
	Teams   []TeamData   `yaml:"teams,omitempty"`
	Players []PlayerData `yaml:"players,omitempty"`
	Reports []ReportData `yaml:"reports,omitempty"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

func connectWithRetry(dsn string, attempts int, delay time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = database.Initialize(dsn, nil)
		if err == nil {
			return db, nil
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not reachable after %d attempts: %w", attempts, err)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	fixtures, err := loadFixtures(dataDir)
	if err != nil {
		return err
	}

	for _, f := range fixtures {
		if err := upsertUsers(db, f.Users); err != nil {
			return err
		}
	}
	for _, f := range fixtures {
		if err := upsertTeams(db, f.Teams); err != nil {
			return err
		}
	}
	for _, f := range fixtures {
		if err := upsertPlayers(db, f.Players); err != nil {
			return err
		}
	}
	for _, f := range fixtures {
		if err := upsertReports(db, f.Reports); err != nil {
			return err
		}
	}
	return nil
}

func loadFixtures(dataDir string) ([]FixtureFile, error) {
	var fixtures []FixtureFile
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (!strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml")) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file FixtureFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		fixtures = append(fixtures, file)
		return nil
	})
	return fixtures, err
}

func upsertUsers(db *gorm.DB, users []UserData) error {
	for _, u := range users {
		var existing models.User
		err := db.Where("email = ?", u.Email).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		role := models.UserRole(u.Role)
		if role == "" {
			role = models.UserRoleCoach
		}
		user := models.User{
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Created user %s", u.Email)
	}
	return nil
}

func upsertTeams(db *gorm.DB, teams []TeamData) error {
	for _, t := range teams {
		var creator models.User
		if err := db.Where("email = ?", t.CreatorEmail).First(&creator).Error; err != nil {
			return fmt.Errorf("team %q: creator %s not found: %w", t.Name, t.CreatorEmail, err)
		}

		var existing models.Team
		err := db.Where("name = ? AND created_by = ?", t.Name, creator.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		team := models.Team{
			Name:      t.Name,
			League:    t.League,
			CreatedBy: creator.ID,
		}
		if err := db.Create(&team).Error; err != nil {
			return err
		}
		log.Printf("Created team %s", t.Name)
	}
	return nil
}

func upsertPlayers(db *gorm.DB, players []PlayerData) error {
	for _, p := range players {
		var team models.Team
		if err := db.Where("name = ?", p.TeamName).First(&team).Error; err != nil {
			return fmt.Errorf("player %q: team %s not found: %w", p.Name, p.TeamName, err)
		}

		var existing models.Player
		err := db.Where("name = ? AND team_id = ?", p.Name, team.ID).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		player := models.Player{
			Name:         p.Name,
			Position:     p.Position,
			JerseyNumber: p.JerseyNumber,
			TeamID:       team.ID,
		}
		if err := db.Create(&player).Error; err != nil {
			return err
		}
		log.Printf("Created player %s", p.Name)
	}
	return nil
}

func upsertReports(db *gorm.DB, reports []ReportData) error {
	for _, r := range reports {
		var player models.Player
		if err := db.Where("name = ?", r.PlayerName).First(&player).Error; err != nil {
			return fmt.Errorf("report for %q: player not found: %w", r.PlayerName, err)
		}
		var scout models.User
		if err := db.Where("email = ?", r.ScoutEmail).First(&scout).Error; err != nil {
			return fmt.Errorf("report for %q: scout %s not found: %w", r.PlayerName, r.ScoutEmail, err)
		}

		var existing models.Report
		err := db.Where("player_id = ? AND scout_id = ? AND date = ?", player.ID, scout.ID, r.Date).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		evals := r.Evaluations
		if evals == nil {
			evals = map[string]string{}
		}
		raw, err := json.Marshal(evals)
		if err != nil {
			return err
		}

		report := models.Report{
			PlayerID:    player.ID,
			ScoutID:     scout.ID,
			Date:        r.Date,
			Evaluations: raw,
			Notes:       r.Notes,
			UpdatedAt:   time.Now(),
		}
		if err := db.Create(&report).Error; err != nil {
			return err
		}
		log.Printf("Created report for %s on %s", r.PlayerName, r.Date)
	}
	return nil
}
