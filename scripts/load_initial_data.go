package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CyberToe/HockeyAnalyst-sub000/internal/config"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/database/models"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML seed files
type UserData struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	DisplayName string `yaml:"display_name"`
}

type TeamData struct {
	Name         string   `yaml:"name"`
	AdminEmail   string   `yaml:"admin_email"`
	MemberEmails []string `yaml:"member_emails,omitempty"`
}

type PlayerData struct {
	TeamName     string `yaml:"team_name"`
	Name         string `yaml:"name"`
	JerseyNumber *int   `yaml:"jersey_number,omitempty"`
	Type         string `yaml:"type,omitempty"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
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

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var playersFile PlayersFile
	if err := readYAML(filepath.Join(dataDir, "players.yaml"), &playersFile); err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	usersByEmail, err := upsertUsers(db, usersFile.Users)
	if err != nil {
		return err
	}
	teamsByName, err := upsertTeams(db, teamsFile.Teams, usersByEmail)
	if err != nil {
		return err
	}
	return upsertPlayers(db, playersFile.Players, teamsByName)
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, target)
}

func upsertUsers(db *gorm.DB, users []UserData) (map[string]*models.User, error) {
	result := make(map[string]*models.User, len(users))
	for _, data := range users {
		email := strings.ToLower(strings.TrimSpace(data.Email))

		var user models.User
		err := db.First(&user, "email = ?", email).Error
		if err == nil {
			result[email] = &user
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to look up user %s: %w", email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), 12)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", email, err)
		}
		user = models.User{
			Email:        email,
			PasswordHash: string(hash),
			DisplayName:  data.DisplayName,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", email, err)
		}
		log.Printf("Created user %s", email)
		result[email] = &user
	}
	return result, nil
}

func upsertTeams(db *gorm.DB, teams []TeamData, users map[string]*models.User) (map[string]*models.Team, error) {
	result := make(map[string]*models.Team, len(teams))
	for _, data := range teams {
		admin, ok := users[strings.ToLower(data.AdminEmail)]
		if !ok {
			return nil, fmt.Errorf("team %s references unknown admin %s", data.Name, data.AdminEmail)
		}

		var team models.Team
		err := db.First(&team, "name = ? AND deleted = false", data.Name).Error
		if err == nil {
			result[data.Name] = &team
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("failed to look up team %s: %w", data.Name, err)
		}

		code, err := service.GenerateTeamCode(func(code string) (bool, error) {
			var count int64
			err := db.Model(&models.Team{}).Where("code = ?", code).Count(&count).Error
			return count > 0, err
		})
		if err != nil {
			return nil, fmt.Errorf("failed to generate code for team %s: %w", data.Name, err)
		}

		team = models.Team{
			Name:        data.Name,
			Code:        code,
			CreatedByID: admin.ID,
		}
		if err := db.Create(&team).Error; err != nil {
			return nil, fmt.Errorf("failed to create team %s: %w", data.Name, err)
		}
		if err := db.Create(&models.TeamMember{
			TeamID: team.ID,
			UserID: admin.ID,
			Role:   models.TeamRoleAdmin,
		}).Error; err != nil {
			return nil, fmt.Errorf("failed to create admin membership for %s: %w", data.Name, err)
		}
		for _, email := range data.MemberEmails {
			member, ok := users[strings.ToLower(email)]
			if !ok {
				return nil, fmt.Errorf("team %s references unknown member %s", data.Name, email)
			}
			if err := db.Create(&models.TeamMember{
				TeamID: team.ID,
				UserID: member.ID,
				Role:   models.TeamRoleMember,
			}).Error; err != nil {
				return nil, fmt.Errorf("failed to create membership for %s: %w", email, err)
			}
		}
		log.Printf("Created team %s with code %s", data.Name, code)
		result[data.Name] = &team
	}
	return result, nil
}

func upsertPlayers(db *gorm.DB, players []PlayerData, teams map[string]*models.Team) error {
	for _, data := range players {
		team, ok := teams[data.TeamName]
		if !ok {
			return fmt.Errorf("player %s references unknown team %s", data.Name, data.TeamName)
		}

		var player models.Player
		err := db.First(&player, "team_id = ? AND name = ?", team.ID, data.Name).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to look up player %s: %w", data.Name, err)
		}

		playerType := models.PlayerTypeTeamPlayer
		if data.Type != "" {
			playerType = models.PlayerType(data.Type)
			if playerType != models.PlayerTypeTeamPlayer && playerType != models.PlayerTypeSubstitute {
				return fmt.Errorf("player %s has invalid type %q", data.Name, data.Type)
			}
		}
		player = models.Player{
			TeamID:       team.ID,
			Name:         data.Name,
			JerseyNumber: data.JerseyNumber,
			Type:         playerType,
		}
		if err := db.Create(&player).Error; err != nil {
			return fmt.Errorf("failed to create player %s: %w", data.Name, err)
		}
		log.Printf("Created player %s on team %s", data.Name, data.TeamName)
	}
	return nil
}
