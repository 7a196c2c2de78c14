package services

import (
	"errors"
	"time"

	"github.com/hackmatch/hackmatch/internal/config"
	"github.com/hackmatch/hackmatch/internal/models"
	"github.com/hackmatch/hackmatch/internal/utils"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type RegisterRequest struct {
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=8"`
	Name       string   `json:"name" binding:"required"`
	University string   `json:"university"`
	Course     string   `json:"course"`
	Year       string   `json:"year"`
	Location   string   `json:"location"`
	Bio        string   `json:"bio"`
	Github     string   `json:"github"`
	Portfolio  string   `json:"portfolio"`
	Skills     []string `json:"skills"`
	Interests  []string `json:"interests"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string       `json:"token"`
	User     *models.User `json:"user"`
	ExpireAt time.Time    `json:"expire_at"`
}

// Register creates a new user account.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	var count int64
	s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return nil, response.NewConflict("user already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:      req.Email,
		Password:   hash,
		Name:       req.Name,
		University: req.University,
		Course:     req.Course,
		Year:       req.Year,
		Location:   req.Location,
		Bio:        req.Bio,
		Github:     req.Github,
		Portfolio:  req.Portfolio,
		Skills:     datatypes.NewJSONSlice(req.Skills),
		Interests:  datatypes.NewJSONSlice(req.Interests),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("user already exists")
		}
		return nil, err
	}

	return &user, nil
}

// Login authenticates a user and returns a JWT token.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewUnauthorized("invalid email or password")
	}

	expireHours := s.jwtConfig.ExpireHour
	if expireHours <= 0 {
		expireHours = 24
	}

	token, err := utils.GenerateToken(user.ID, user.Email, "user", expireHours)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:    token,
		User:     &user,
		ExpireAt: time.Now().Add(time.Duration(expireHours) * time.Hour),
	}, nil
}

// GetUserByID returns a user by id.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}
