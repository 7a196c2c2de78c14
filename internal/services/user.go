package services

import (
	"errors"

	"github.com/hackmatch/hackmatch/internal/models"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UpdateProfileRequest struct {
	Name       string    `json:"name"`
	University string    `json:"university"`
	Course     string    `json:"course"`
	Year       string    `json:"year"`
	Location   string    `json:"location"`
	Bio        *string   `json:"bio"`
	Github     string    `json:"github"`
	Portfolio  string    `json:"portfolio"`
	Skills     *[]string `json:"skills"`
	Interests  *[]string `json:"interests"`
}

// PublicProfile is the profile view exposed on /users/:id.
type PublicProfile struct {
	ID           uint                      `json:"id"`
	Name         string                    `json:"name"`
	Email        string                    `json:"email"`
	University   string                    `json:"university"`
	Course       string                    `json:"course"`
	Year         string                    `json:"year"`
	Location     string                    `json:"location"`
	Bio          string                    `json:"bio"`
	Github       string                    `json:"github"`
	Portfolio    string                    `json:"portfolio"`
	Skills       []string                  `json:"skills"`
	Interests    []string                  `json:"interests"`
	Projects     []models.PortfolioProject `json:"projects"`
	Achievements []models.Achievement      `json:"achievements"`
}

// UpdateProfile applies a partial update to the caller's profile.
func (s *UserService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.University != "" {
		updates["university"] = req.University
	}
	if req.Course != "" {
		updates["course"] = req.Course
	}
	if req.Year != "" {
		updates["year"] = req.Year
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Github != "" {
		updates["github"] = req.Github
	}
	if req.Portfolio != "" {
		updates["portfolio"] = req.Portfolio
	}
	if req.Skills != nil {
		updates["skills"] = datatypes.NewJSONSlice(*req.Skills)
	}
	if req.Interests != nil {
		updates["interests"] = datatypes.NewJSONSlice(*req.Interests)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}

// GetPublicProfile returns a user's profile with portfolio and achievements.
func (s *UserService) GetPublicProfile(id uint) (*PublicProfile, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}

	var projects []models.PortfolioProject
	if err := s.db.Where("created_by_id = ?", id).Find(&projects).Error; err != nil {
		return nil, err
	}

	var achievements []models.Achievement
	if err := s.db.Where("achieved_by_id = ?", id).Find(&achievements).Error; err != nil {
		return nil, err
	}

	return &PublicProfile{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		University:   user.University,
		Course:       user.Course,
		Year:         user.Year,
		Location:     user.Location,
		Bio:          user.Bio,
		Github:       user.Github,
		Portfolio:    user.Portfolio,
		Skills:       user.Skills,
		Interests:    user.Interests,
		Projects:     projects,
		Achievements: achievements,
	}, nil
}
