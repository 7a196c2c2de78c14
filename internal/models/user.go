package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents a registered student profile.
type User struct {
	ID         uint                         `gorm:"primaryKey" json:"id"`
	Email      string                       `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password   string                       `gorm:"size:255;not null" json:"-"`
	Name       string                       `gorm:"size:200;not null" json:"name"`
	University string                       `gorm:"size:200" json:"university"`
	Course     string                       `gorm:"size:200" json:"course"`
	Year       string                       `gorm:"size:50" json:"year"`
	Location   string                       `gorm:"size:200" json:"location"`
	Bio        string                       `gorm:"type:text" json:"bio"`
	Github     string                       `gorm:"size:500" json:"github"`
	Portfolio  string                       `gorm:"size:500" json:"portfolio"`
	Skills     datatypes.JSONSlice[string]  `json:"skills"`
	Interests  datatypes.JSONSlice[string]  `json:"interests"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
	DeletedAt  gorm.DeletedAt               `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
