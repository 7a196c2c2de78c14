package services

import (
	"testing"

	"github.com/hackmatch/hackmatch/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Hackathon{},
		&models.Team{},
		&models.TeamMember{},
		&models.Application{},
		&models.PortfolioProject{},
		&models.Achievement{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, name string) *models.User {
	t.Helper()

	user := models.User{
		Email:    email,
		Password: "not-a-real-hash",
		Name:     name,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return &user
}

// createTestHackathon creates a hackathon through the service so the team is
// provisioned the same way production code does it.
func createTestHackathon(t *testing.T, db *gorm.DB, leaderID uint, name string) *models.Hackathon {
	t.Helper()

	hackathon, err := NewHackathonService(db).Create(&CreateHackathonRequest{
		Name:             name,
		Description:      "a test hackathon",
		ProblemStatement: "build something",
		TeamSize:         3,
	}, leaderID)
	if err != nil {
		t.Fatalf("failed to create test hackathon %s: %v", name, err)
	}
	return hackathon
}
