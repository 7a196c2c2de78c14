package services

import (
	"errors"

	"github.com/hackmatch/hackmatch/internal/models"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HackathonService struct {
	db *gorm.DB
}

func NewHackathonService(db *gorm.DB) *HackathonService {
	return &HackathonService{db: db}
}

type CreateHackathonRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description" binding:"required"`
	ProblemStatement string   `json:"problem_statement" binding:"required"`
	TeamSize         int      `json:"team_size" binding:"required,min=1"`
	TechStack        []string `json:"tech_stack"`
	RolesNeeded      []string `json:"roles_needed"`
}

// HackathonSummary is the detail view exposed on /hackathons/:id.
type HackathonSummary struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ProblemStatement string   `json:"problem_statement"`
	TeamSize         int      `json:"team_size"`
	TechStack        []string `json:"tech_stack"`
	RolesNeeded      []string `json:"roles_needed"`
	Leader           *struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"leader"`
}

// Create persists a hackathon and eagerly provisions its team with the
// creator as leader, all in one transaction.
func (s *HackathonService) Create(req *CreateHackathonRequest, leaderID uint) (*models.Hackathon, error) {
	hackathon := models.Hackathon{
		Name:             req.Name,
		Description:      req.Description,
		ProblemStatement: req.ProblemStatement,
		TeamSize:         req.TeamSize,
		TechStack:        datatypes.NewJSONSlice(req.TechStack),
		RolesNeeded:      datatypes.NewJSONSlice(req.RolesNeeded),
		LeaderID:         leaderID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hackathon).Error; err != nil {
			return err
		}
		if _, err := ensureTeam(tx, &hackathon); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &hackathon, nil
}

// List returns all hackathons with leaders, applications and team rosters,
// newest first.
func (s *HackathonService) List() ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	if err := s.db.
		Preload("Leader").
		Preload("Applications.Applicant").
		Preload("Team.Members.User").
		Order("created_at DESC").
		Find(&hackathons).Error; err != nil {
		return nil, err
	}
	return hackathons, nil
}

// GetByID returns a hackathon summary with its leader.
func (s *HackathonService) GetByID(id uint) (*HackathonSummary, error) {
	var hackathon models.Hackathon
	if err := s.db.Preload("Leader").First(&hackathon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("hackathon not found")
		}
		return nil, err
	}

	summary := &HackathonSummary{
		ID:               hackathon.ID,
		Name:             hackathon.Name,
		Description:      hackathon.Description,
		ProblemStatement: hackathon.ProblemStatement,
		TeamSize:         hackathon.TeamSize,
		TechStack:        hackathon.TechStack,
		RolesNeeded:      hackathon.RolesNeeded,
	}
	if hackathon.Leader != nil {
		summary.Leader = &struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		}{ID: hackathon.Leader.ID, Name: hackathon.Leader.Name}
	}

	return summary, nil
}
