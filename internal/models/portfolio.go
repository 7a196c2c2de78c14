package models

import (
	"time"

	"gorm.io/datatypes"
)

// PortfolioProject is a past project shown on a user's public profile.
type PortfolioProject struct {
	ID          uint                        `gorm:"primaryKey" json:"id"`
	Name        string                      `gorm:"size:200;not null" json:"name"`
	Bio         string                      `gorm:"type:text" json:"bio"`
	Skills      datatypes.JSONSlice[string] `json:"skills"`
	CreatedByID uint                        `gorm:"index;not null" json:"created_by_id"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// Achievement is an award or milestone shown on a user's public profile.
type Achievement struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Month        string    `gorm:"size:20" json:"month"`
	Year         int       `json:"year"`
	AchievedByID uint      `gorm:"index;not null" json:"achieved_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (PortfolioProject) TableName() string { return "portfolio_projects" }
func (Achievement) TableName() string      { return "achievements" }
