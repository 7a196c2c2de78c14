package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/hackmatch/hackmatch/internal/middleware"
	"github.com/hackmatch/hackmatch/internal/services"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/gorm"
)

type PortfolioHandler struct {
	portfolioService *services.PortfolioService
}

func NewPortfolioHandler(db *gorm.DB) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: services.NewPortfolioService(db),
	}
}

// CreateProject adds a portfolio project for the caller
// POST /api/projects
func (h *PortfolioHandler) CreateProject(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.portfolioService.CreateProject(&req, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, project)
}

// ListProjects returns the caller's portfolio projects
// GET /api/projects
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	projects, err := h.portfolioService.ListProjects(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, projects)
}

// CreateAchievement adds an achievement for the caller
// POST /api/achievements
func (h *PortfolioHandler) CreateAchievement(c *gin.Context) {
	var req services.CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	achievement, err := h.portfolioService.CreateAchievement(&req, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, achievement)
}

// ListAchievements returns the caller's achievements
// GET /api/achievements
func (h *PortfolioHandler) ListAchievements(c *gin.Context) {
	achievements, err := h.portfolioService.ListAchievements(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, achievements)
}
