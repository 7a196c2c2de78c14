package services

import (
	"errors"
	"testing"

	"github.com/hackmatch/hackmatch/internal/models"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/gorm"
)

func submitTestApplication(t *testing.T, db *gorm.DB, hackathonID, applicantID uint) *models.Application {
	t.Helper()

	app, err := NewApplicationService(db).Submit(&SubmitApplicationRequest{
		HackathonID: hackathonID,
		Skills:      []string{"Go"},
		CoverNote:   "let me in",
	}, applicantID)
	if err != nil {
		t.Fatalf("failed to submit application: %v", err)
	}
	return app
}

func appErrorStatus(t *testing.T, err error) int {
	t.Helper()

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *response.AppError, got %T: %v", err, err)
	}
	return appErr.HTTPStatus
}

func TestSubmit_CreatesPendingApplication(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")

	app := submitTestApplication(t, db, hackathon.ID, applicant.ID)

	if app.ID == 0 {
		t.Error("application should get a generated id")
	}
	if app.Status != models.ApplicationPending {
		t.Errorf("status = %q, expected %q", app.Status, models.ApplicationPending)
	}

	// The leader sees one pending incoming entry
	incoming, err := NewApplicationService(db).ListIncoming(leader.ID)
	if err != nil {
		t.Fatalf("ListIncoming() error = %v", err)
	}
	if len(incoming) != 1 {
		t.Fatalf("expected 1 incoming application, got %d", len(incoming))
	}
	if incoming[0].ApplicantID != applicant.ID {
		t.Errorf("incoming applicant = %d, expected %d", incoming[0].ApplicantID, applicant.ID)
	}
	if incoming[0].Status != models.ApplicationPending {
		t.Errorf("incoming status = %q, expected pending", incoming[0].Status)
	}
	if incoming[0].HackathonName != "GopherHack" {
		t.Errorf("incoming hackathon name = %q", incoming[0].HackathonName)
	}
}

func TestSubmit_UnknownHackathon(t *testing.T) {
	db := newTestDB(t)
	applicant := createTestUser(t, db, "x@test.dev", "X")

	_, err := NewApplicationService(db).Submit(&SubmitApplicationRequest{
		HackathonID: 999,
		Skills:      []string{"Go"},
	}, applicant.ID)

	if status := appErrorStatus(t, err); status != 404 {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestSubmit_EmptySkills(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")

	_, err := NewApplicationService(db).Submit(&SubmitApplicationRequest{
		HackathonID: hackathon.ID,
		Skills:      nil,
	}, applicant.ID)

	if status := appErrorStatus(t, err); status != 400 {
		t.Errorf("expected 400, got %d", status)
	}
}

// A second application for the same (hackathon, user) fails with a conflict
// and the count stays at 1.
func TestSubmit_Duplicate(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")

	submitTestApplication(t, db, hackathon.ID, applicant.ID)

	_, err := NewApplicationService(db).Submit(&SubmitApplicationRequest{
		HackathonID: hackathon.ID,
		Skills:      []string{"React"},
	}, applicant.ID)
	if status := appErrorStatus(t, err); status != 409 {
		t.Errorf("expected 409, got %d", status)
	}

	var count int64
	db.Model(&models.Application{}).
		Where("hackathon_id = ? AND applicant_id = ?", hackathon.ID, applicant.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("application count = %d, expected 1", count)
	}
}

// The unique index must close the race even when the pre-check is skipped.
func TestSubmit_DuplicateConstraintBackstop(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")

	submitTestApplication(t, db, hackathon.ID, applicant.ID)

	err := db.Create(&models.Application{
		HackathonID: hackathon.ID,
		ApplicantID: applicant.ID,
		Status:      models.ApplicationPending,
	}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("expected gorm.ErrDuplicatedKey, got %v", err)
	}
}

// Accepting adds the applicant to the team and returns the team id; both
// leader and applicant see the membership.
func TestDecide_Accept(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")
	app := submitTestApplication(t, db, hackathon.ID, applicant.ID)

	svc := NewApplicationService(db)
	result, err := svc.Decide(app.ID, models.ApplicationAccepted, leader.ID)
	if err != nil {
		t.Fatalf("Decide(accept) error = %v", err)
	}
	if result.Status != models.ApplicationAccepted {
		t.Errorf("result status = %q", result.Status)
	}
	if result.TeamID == nil {
		t.Fatal("accept result should include the team id")
	}

	var members []models.TeamMember
	db.Where("team_id = ? AND user_id = ?", *result.TeamID, applicant.ID).Find(&members)
	if len(members) != 1 {
		t.Fatalf("expected exactly 1 membership row, got %d", len(members))
	}
	if members[0].Role != models.RoleMember {
		t.Errorf("member role = %q, expected %q", members[0].Role, models.RoleMember)
	}

	teamSvc := NewTeamService(db)
	for _, userID := range []uint{leader.ID, applicant.ID} {
		teams, err := teamSvc.ListForUser(userID)
		if err != nil {
			t.Fatalf("ListForUser(%d) error = %v", userID, err)
		}
		if len(teams) != 1 || teams[0].HackathonID != hackathon.ID {
			t.Errorf("user %d should be on the hackathon's team, got %+v", userID, teams)
		}
	}
}

// Rejecting flips the status and creates no membership.
func TestDecide_Reject(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "y@test.dev", "Y")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")
	app := submitTestApplication(t, db, hackathon.ID, applicant.ID)

	svc := NewApplicationService(db)
	result, err := svc.Decide(app.ID, models.ApplicationRejected, leader.ID)
	if err != nil {
		t.Fatalf("Decide(reject) error = %v", err)
	}
	if result.TeamID != nil {
		t.Error("reject result should not include a team id")
	}

	outgoing, err := svc.ListOutgoing(applicant.ID)
	if err != nil {
		t.Fatalf("ListOutgoing() error = %v", err)
	}
	if len(outgoing) != 1 || outgoing[0].Status != models.ApplicationRejected {
		t.Errorf("outgoing view should show rejected, got %+v", outgoing)
	}

	var count int64
	db.Model(&models.TeamMember{}).Where("user_id = ?", applicant.ID).Count(&count)
	if count != 0 {
		t.Errorf("rejected applicant should have no membership rows, got %d", count)
	}
}

// An unknown status literal is rejected with no state change.
func TestDecide_InvalidStatus(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")
	app := submitTestApplication(t, db, hackathon.ID, applicant.ID)

	_, err := NewApplicationService(db).Decide(app.ID, "maybe", leader.ID)
	if status := appErrorStatus(t, err); status != 400 {
		t.Errorf("expected 400, got %d", status)
	}

	var reloaded models.Application
	db.First(&reloaded, app.ID)
	if reloaded.Status != models.ApplicationPending {
		t.Errorf("status should remain pending, got %q", reloaded.Status)
	}
}

func TestDecide_UnknownApplication(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")

	_, err := NewApplicationService(db).Decide(999, models.ApplicationAccepted, leader.ID)
	if status := appErrorStatus(t, err); status != 404 {
		t.Errorf("expected 404, got %d", status)
	}
}

// Only the hackathon's leader may decide.
func TestDecide_NotLeader(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	intruder := createTestUser(t, db, "z@test.dev", "Z")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")
	app := submitTestApplication(t, db, hackathon.ID, applicant.ID)

	_, err := NewApplicationService(db).Decide(app.ID, models.ApplicationAccepted, intruder.ID)
	if status := appErrorStatus(t, err); status != 403 {
		t.Errorf("expected 403, got %d", status)
	}

	var reloaded models.Application
	db.First(&reloaded, app.ID)
	if reloaded.Status != models.ApplicationPending {
		t.Errorf("status should remain pending, got %q", reloaded.Status)
	}
}

// Re-accepting is idempotent: same final state, no duplicate membership,
// no error.
func TestDecide_AcceptTwice(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")
	app := submitTestApplication(t, db, hackathon.ID, applicant.ID)

	svc := NewApplicationService(db)
	first, err := svc.Decide(app.ID, models.ApplicationAccepted, leader.ID)
	if err != nil {
		t.Fatalf("first accept error = %v", err)
	}

	second, err := svc.Decide(app.ID, models.ApplicationAccepted, leader.ID)
	if err != nil {
		t.Fatalf("second accept should be a no-op, got error %v", err)
	}
	if second.Status != models.ApplicationAccepted {
		t.Errorf("second accept status = %q", second.Status)
	}
	if second.TeamID == nil || *second.TeamID != *first.TeamID {
		t.Error("second accept should report the same team id")
	}

	var count int64
	db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", *first.TeamID, applicant.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("membership rows = %d, expected 1", count)
	}
}

// A terminal status never flips to the other terminal status.
func TestDecide_NoTerminalFlip(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")
	app := submitTestApplication(t, db, hackathon.ID, applicant.ID)

	svc := NewApplicationService(db)
	if _, err := svc.Decide(app.ID, models.ApplicationRejected, leader.ID); err != nil {
		t.Fatalf("reject error = %v", err)
	}

	_, err := svc.Decide(app.ID, models.ApplicationAccepted, leader.ID)
	if status := appErrorStatus(t, err); status != 409 {
		t.Errorf("expected 409 on terminal flip, got %d", status)
	}

	var reloaded models.Application
	db.First(&reloaded, app.ID)
	if reloaded.Status != models.ApplicationRejected {
		t.Errorf("status = %q, expected rejected", reloaded.Status)
	}
}

func TestListOutgoing_TeamNameResolution(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")
	submitTestApplication(t, db, hackathon.ID, applicant.ID)

	svc := NewApplicationService(db)
	outgoing, err := svc.ListOutgoing(applicant.ID)
	if err != nil {
		t.Fatalf("ListOutgoing() error = %v", err)
	}
	if len(outgoing) != 1 {
		t.Fatalf("expected 1 outgoing application, got %d", len(outgoing))
	}
	// Teams are provisioned at hackathon creation, so the name resolves
	if outgoing[0].TeamName != "GopherHack Team" {
		t.Errorf("team name = %q, expected %q", outgoing[0].TeamName, "GopherHack Team")
	}

	// With the team row removed the view falls back to the placeholder
	db.Where("hackathon_id = ?", hackathon.ID).Delete(&models.Team{})
	outgoing, err = svc.ListOutgoing(applicant.ID)
	if err != nil {
		t.Fatalf("ListOutgoing() error = %v", err)
	}
	if outgoing[0].TeamName != teamNamePlaceholder {
		t.Errorf("team name = %q, expected placeholder", outgoing[0].TeamName)
	}
}

// Lazy provisioning fallback: accepting against a hackathon whose team row is
// missing creates the team and adds the leader first.
func TestDecide_AcceptProvisionsMissingTeam(t *testing.T) {
	db := newTestDB(t)
	leader := createTestUser(t, db, "leader@test.dev", "Leader")
	applicant := createTestUser(t, db, "x@test.dev", "X")
	hackathon := createTestHackathon(t, db, leader.ID, "GopherHack")
	app := submitTestApplication(t, db, hackathon.ID, applicant.ID)

	// Simulate pre-policy data with no provisioned team
	var team models.Team
	if err := db.Where("hackathon_id = ?", hackathon.ID).First(&team).Error; err != nil {
		t.Fatalf("expected an eagerly provisioned team: %v", err)
	}
	db.Where("team_id = ?", team.ID).Delete(&models.TeamMember{})
	db.Delete(&team)

	result, err := NewApplicationService(db).Decide(app.ID, models.ApplicationAccepted, leader.ID)
	if err != nil {
		t.Fatalf("Decide(accept) error = %v", err)
	}
	if result.TeamID == nil {
		t.Fatal("accept should provision and report a team")
	}

	var leaderRow models.TeamMember
	if err := db.Where("team_id = ? AND user_id = ?", *result.TeamID, leader.ID).First(&leaderRow).Error; err != nil {
		t.Fatalf("leader should be a member of the provisioned team: %v", err)
	}
	if leaderRow.Role != models.RoleLeader {
		t.Errorf("leader role = %q, expected %q", leaderRow.Role, models.RoleLeader)
	}
}
