package services

import (
	"errors"

	"github.com/hackmatch/hackmatch/internal/metrics"
	"github.com/hackmatch/hackmatch/internal/models"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// TeamMembershipView is the flattened membership row returned to the caller.
type TeamMembershipView struct {
	UserID               uint   `json:"user_id"`
	TeamID               uint   `json:"team_id"`
	TeamName             string `json:"team_name"`
	Role                 string `json:"role"`
	HackathonID          uint   `json:"hackathon_id"`
	HackathonName        string `json:"hackathon_name"`
	HackathonDescription string `json:"hackathon_description"`
	LeaderID             uint   `json:"leader_id"`
}

// ListForUser returns every team the user belongs to, with the parent
// hackathon summary.
func (s *TeamService) ListForUser(userID uint) ([]TeamMembershipView, error) {
	var memberships []models.TeamMember
	if err := s.db.Where("user_id = ?", userID).
		Preload("Team").
		Preload("Team.Hackathon").
		Find(&memberships).Error; err != nil {
		return nil, err
	}

	views := make([]TeamMembershipView, 0, len(memberships))
	for _, m := range memberships {
		if m.Team == nil {
			continue
		}
		view := TeamMembershipView{
			UserID:   m.UserID,
			TeamID:   m.TeamID,
			TeamName: m.Team.Name,
			Role:     m.Role,
		}
		if h := m.Team.Hackathon; h != nil {
			view.HackathonID = h.ID
			view.HackathonName = h.Name
			view.HackathonDescription = h.Description
			view.LeaderID = h.LeaderID
		}
		views = append(views, view)
	}

	return views, nil
}

type AddMemberRequest struct {
	HackathonID uint `json:"hackathon_id" binding:"required"`
	UserID      uint `json:"user_id" binding:"required"`
}

// AddMember adds a user directly to a hackathon's team. Only the team leader
// may do this. Adding an existing member is a no-op.
func (s *TeamService) AddMember(req *AddMemberRequest, actingUserID uint) (*models.TeamMember, error) {
	var team models.Team
	if err := s.db.Where("hackathon_id = ?", req.HackathonID).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("team not found for this hackathon")
		}
		return nil, err
	}

	if team.LeaderID != actingUserID {
		return nil, response.NewForbidden("only the team leader can add members")
	}

	member, _, err := addMemberIfAbsent(s.db, team.ID, req.UserID, models.RoleMember)
	return member, err
}

// ensureTeam returns the hackathon's team, creating it (with the leader as
// first member) when absent. Safe to call from concurrent transactions: a
// duplicate create loses the race and re-reads the winner's row.
func ensureTeam(tx *gorm.DB, hackathon *models.Hackathon) (*models.Team, error) {
	var team models.Team
	err := tx.Where("hackathon_id = ?", hackathon.ID).First(&team).Error
	if err == nil {
		return &team, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	team = models.Team{
		HackathonID: hackathon.ID,
		Name:        hackathon.Name + " Team",
		LeaderID:    hackathon.LeaderID,
		Status:      models.TeamActive,
	}
	if err := tx.Create(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := tx.Where("hackathon_id = ?", hackathon.ID).First(&team).Error; err != nil {
				return nil, err
			}
			return &team, nil
		}
		return nil, err
	}

	if _, _, err := addMemberIfAbsent(tx, team.ID, hackathon.LeaderID, models.RoleLeader); err != nil {
		return nil, err
	}

	metrics.TeamsProvisioned.Inc()
	return &team, nil
}

// addMemberIfAbsent inserts a membership row unless one already exists.
// The composite unique index backs up the lookup under concurrency.
func addMemberIfAbsent(tx *gorm.DB, teamID, userID uint, role string) (*models.TeamMember, bool, error) {
	var existing models.TeamMember
	err := tx.Where("team_id = ? AND user_id = ?", teamID, userID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	member := models.TeamMember{TeamID: teamID, UserID: userID, Role: role}
	if err := tx.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := tx.Where("team_id = ? AND user_id = ?", teamID, userID).First(&existing).Error; err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		return nil, false, err
	}

	return &member, true, nil
}
