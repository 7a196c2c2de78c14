package services

import (
	"errors"
	"time"

	"github.com/hackmatch/hackmatch/internal/metrics"
	"github.com/hackmatch/hackmatch/internal/models"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApplicationService owns the team-formation lifecycle: an application is
// submitted as pending, and the hackathon's leader later accepts or rejects
// it. Accepting provisions the team roster.
type ApplicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

type SubmitApplicationRequest struct {
	HackathonID uint     `json:"hackathon_id" binding:"required"`
	Skills      []string `json:"skills" binding:"required,min=1"`
	CoverNote   string   `json:"cover_note"`
}

type DecideApplicationRequest struct {
	Status string `json:"status" binding:"required"`
}

// DecisionResult confirms a decision; TeamID is set on acceptance.
type DecisionResult struct {
	ApplicationID uint   `json:"application_id"`
	Status        string `json:"status"`
	TeamID        *uint  `json:"team_id,omitempty"`
}

// IncomingApplication is a pending request as seen by a hackathon leader.
type IncomingApplication struct {
	ID             uint      `json:"id"`
	HackathonID    uint      `json:"hackathon_id"`
	HackathonName  string    `json:"hackathon_name"`
	ApplicantID    uint      `json:"applicant_id"`
	ApplicantName  string    `json:"applicant_name"`
	ApplicantEmail string    `json:"applicant_email"`
	Skills         []string  `json:"skills"`
	CoverNote      string    `json:"cover_note"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// OutgoingApplication is a request as seen by its applicant.
type OutgoingApplication struct {
	ID            uint      `json:"id"`
	HackathonID   uint      `json:"hackathon_id"`
	HackathonName string    `json:"hackathon_name"`
	TeamName      string    `json:"team_name"`
	Skills        []string  `json:"skills"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// teamNamePlaceholder is shown in the outgoing view for hackathons whose team
// has not been provisioned.
const teamNamePlaceholder = "Team not assigned yet"

// Submit validates and persists a new pending application. A user may hold at
// most one application per hackathon; the composite unique index closes the
// race between the existence check and the insert.
func (s *ApplicationService) Submit(req *SubmitApplicationRequest, applicantID uint) (*models.Application, error) {
	if len(req.Skills) == 0 {
		return nil, response.NewBadRequest("skills must not be empty")
	}

	var hackathon models.Hackathon
	if err := s.db.First(&hackathon, req.HackathonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("hackathon not found")
		}
		return nil, err
	}

	var count int64
	s.db.Model(&models.Application{}).
		Where("hackathon_id = ? AND applicant_id = ?", req.HackathonID, applicantID).
		Count(&count)
	if count > 0 {
		return nil, response.NewConflict("you have already applied for this hackathon")
	}

	application := models.Application{
		HackathonID: req.HackathonID,
		ApplicantID: applicantID,
		Skills:      datatypes.NewJSONSlice(req.Skills),
		CoverNote:   req.CoverNote,
		Status:      models.ApplicationPending,
	}

	if err := s.db.Create(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("you have already applied for this hackathon")
		}
		return nil, err
	}

	metrics.ApplicationsSubmitted.Inc()
	return &application, nil
}

// Decide accepts or rejects a pending application. Only the hackathon's
// leader may decide. Status transitions are one-way: re-applying the same
// terminal decision is a no-op, flipping a terminal decision is a conflict.
// The accept path runs as one transaction so the status flip and the roster
// update land together or not at all.
func (s *ApplicationService) Decide(applicationID uint, status string, actingUserID uint) (*DecisionResult, error) {
	if status != models.ApplicationAccepted && status != models.ApplicationRejected {
		return nil, response.NewBadRequest("status must be accepted or rejected")
	}

	var application models.Application
	if err := s.db.Preload("Hackathon").First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("application not found")
		}
		return nil, err
	}
	if application.Hackathon == nil {
		return nil, response.NewServerError("application has no hackathon")
	}

	if application.Hackathon.LeaderID != actingUserID {
		return nil, response.NewForbidden("only the hackathon leader can decide applications")
	}

	// Terminal states never change
	if application.Status != models.ApplicationPending {
		if application.Status != status {
			return nil, response.NewConflict("application already " + application.Status)
		}
		return s.terminalResult(&application)
	}

	result := &DecisionResult{ApplicationID: application.ID, Status: status}

	if status == models.ApplicationRejected {
		if err := s.db.Model(&application).Update("status", models.ApplicationRejected).Error; err != nil {
			return nil, err
		}
		metrics.ApplicationsRejected.Inc()
		return result, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&application).Update("status", models.ApplicationAccepted).Error; err != nil {
			return err
		}

		team, err := ensureTeam(tx, application.Hackathon)
		if err != nil {
			return err
		}

		if _, _, err := addMemberIfAbsent(tx, team.ID, application.ApplicantID, models.RoleMember); err != nil {
			return err
		}

		result.TeamID = &team.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ApplicationsAccepted.Inc()
	return result, nil
}

// terminalResult rebuilds the confirmation payload for an idempotent
// re-decide of an already-terminal application.
func (s *ApplicationService) terminalResult(application *models.Application) (*DecisionResult, error) {
	result := &DecisionResult{ApplicationID: application.ID, Status: application.Status}
	if application.Status == models.ApplicationAccepted {
		var team models.Team
		if err := s.db.Where("hackathon_id = ?", application.HackathonID).First(&team).Error; err == nil {
			result.TeamID = &team.ID
		}
	}
	return result, nil
}

// ListIncoming returns all applications against hackathons led by leaderID.
func (s *ApplicationService) ListIncoming(leaderID uint) ([]IncomingApplication, error) {
	var applications []models.Application
	if err := s.db.
		Joins("JOIN hackathons ON hackathons.id = applications.hackathon_id").
		Where("hackathons.leader_id = ?", leaderID).
		Preload("Applicant").
		Preload("Hackathon").
		Find(&applications).Error; err != nil {
		return nil, err
	}

	views := make([]IncomingApplication, 0, len(applications))
	for _, a := range applications {
		view := IncomingApplication{
			ID:          a.ID,
			HackathonID: a.HackathonID,
			ApplicantID: a.ApplicantID,
			Skills:      a.Skills,
			CoverNote:   a.CoverNote,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
		}
		if a.Hackathon != nil {
			view.HackathonName = a.Hackathon.Name
		}
		if a.Applicant != nil {
			view.ApplicantName = a.Applicant.Name
			view.ApplicantEmail = a.Applicant.Email
		}
		views = append(views, view)
	}

	return views, nil
}

// ListOutgoing returns all applications submitted by applicantID, each
// annotated with the resolved team name for its hackathon.
func (s *ApplicationService) ListOutgoing(applicantID uint) ([]OutgoingApplication, error) {
	var applications []models.Application
	if err := s.db.
		Where("applicant_id = ?", applicantID).
		Preload("Hackathon").
		Find(&applications).Error; err != nil {
		return nil, err
	}

	hackathonIDs := make([]uint, 0, len(applications))
	for _, a := range applications {
		hackathonIDs = append(hackathonIDs, a.HackathonID)
	}

	teamNames := make(map[uint]string)
	if len(hackathonIDs) > 0 {
		var teams []models.Team
		if err := s.db.Where("hackathon_id IN ?", hackathonIDs).Find(&teams).Error; err != nil {
			return nil, err
		}
		for _, t := range teams {
			teamNames[t.HackathonID] = t.Name
		}
	}

	views := make([]OutgoingApplication, 0, len(applications))
	for _, a := range applications {
		view := OutgoingApplication{
			ID:          a.ID,
			HackathonID: a.HackathonID,
			TeamName:    teamNamePlaceholder,
			Skills:      a.Skills,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
		}
		if a.Hackathon != nil {
			view.HackathonName = a.Hackathon.Name
		}
		if name, ok := teamNames[a.HackathonID]; ok {
			view.TeamName = name
		}
		views = append(views, view)
	}

	return views, nil
}
