package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application status values. Transitions are one-way:
// pending -> accepted or pending -> rejected.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Team member roles.
const (
	RoleLeader = "Leader"
	RoleMember = "Member"
)

// Team status values.
const (
	TeamActive   = "active"
	TeamInactive = "inactive"
)

// Hackathon is a posted event seeking teammates. Core fields are immutable
// after creation; there is no update endpoint.
type Hackathon struct {
	ID               uint                        `gorm:"primaryKey" json:"id"`
	Name             string                      `gorm:"size:200;not null" json:"name"`
	Description      string                      `gorm:"type:text;not null" json:"description"`
	ProblemStatement string                      `gorm:"type:text;not null" json:"problem_statement"`
	TeamSize         int                         `gorm:"not null" json:"team_size"`
	TechStack        datatypes.JSONSlice[string] `json:"tech_stack"`
	RolesNeeded      datatypes.JSONSlice[string] `json:"roles_needed"`
	LeaderID         uint                        `gorm:"index;not null" json:"leader_id"`
	Leader           *User                       `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`
	Applications     []Application               `gorm:"foreignKey:HackathonID" json:"applications,omitempty"`
	Team             *Team                       `gorm:"foreignKey:HackathonID" json:"team,omitempty"`
	CreatedAt        time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
	DeletedAt        gorm.DeletedAt              `gorm:"index" json:"-"`
}

// Team is the single roster entity tied 1:1 to a hackathon. The unique index
// on HackathonID enforces the 1:1 relationship at the storage layer.
type Team struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	HackathonID uint           `gorm:"uniqueIndex;not null" json:"hackathon_id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	LeaderID    uint           `gorm:"index;not null" json:"leader_id"`
	Status      string         `gorm:"size:20;default:active" json:"status"`
	Hackathon   *Hackathon     `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
	Members     []TeamMember   `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TeamMember is a confirmed (team, user) membership. The composite unique
// index closes the race between concurrent accepts of the same applicant.
type TeamMember struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamID    uint      `gorm:"uniqueIndex:idx_team_user;not null" json:"team_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_team_user;not null" json:"user_id"`
	Role      string    `gorm:"size:50;default:Member" json:"role"`
	Team      *Team     `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Application is a user's request to join a hackathon's team. A user may hold
// at most one application per hackathon, enforced by the composite unique index.
type Application struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	HackathonID uint                        `gorm:"uniqueIndex:idx_hackathon_applicant;not null" json:"hackathon_id"`
	ApplicantID uint                        `gorm:"uniqueIndex:idx_hackathon_applicant;not null" json:"applicant_id"`
	Skills      datatypes.JSONSlice[string] `json:"skills"`
	CoverNote   string                      `gorm:"type:text" json:"cover_note"`
	Status      string                      `gorm:"size:20;default:pending;not null" json:"status"`
	Hackathon   *Hackathon                  `gorm:"foreignKey:HackathonID" json:"hackathon,omitempty"`
	Applicant   *User                       `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (Hackathon) TableName() string   { return "hackathons" }
func (Team) TableName() string        { return "teams" }
func (TeamMember) TableName() string  { return "team_members" }
func (Application) TableName() string { return "applications" }
