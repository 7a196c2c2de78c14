package services

import (
	"github.com/hackmatch/hackmatch/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PortfolioService struct {
	db *gorm.DB
}

func NewPortfolioService(db *gorm.DB) *PortfolioService {
	return &PortfolioService{db: db}
}

type CreateProjectRequest struct {
	Name   string   `json:"name" binding:"required"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

type CreateAchievementRequest struct {
	Name  string `json:"name" binding:"required"`
	Month string `json:"month"`
	Year  int    `json:"year"`
}

// CreateProject adds a portfolio project to the caller's profile.
func (s *PortfolioService) CreateProject(req *CreateProjectRequest, userID uint) (*models.PortfolioProject, error) {
	project := models.PortfolioProject{
		Name:        req.Name,
		Bio:         req.Bio,
		Skills:      datatypes.NewJSONSlice(req.Skills),
		CreatedByID: userID,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjects returns the caller's portfolio projects.
func (s *PortfolioService) ListProjects(userID uint) ([]models.PortfolioProject, error) {
	var projects []models.PortfolioProject
	if err := s.db.Where("created_by_id = ?", userID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateAchievement adds an achievement to the caller's profile.
func (s *PortfolioService) CreateAchievement(req *CreateAchievementRequest, userID uint) (*models.Achievement, error) {
	achievement := models.Achievement{
		Name:         req.Name,
		Month:        req.Month,
		Year:         req.Year,
		AchievedByID: userID,
	}
	if err := s.db.Create(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

// ListAchievements returns the caller's achievements.
func (s *PortfolioService) ListAchievements(userID uint) ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := s.db.Where("achieved_by_id = ?", userID).Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}
