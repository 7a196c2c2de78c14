package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hackmatch/hackmatch/internal/middleware"
	"github.com/hackmatch/hackmatch/internal/services"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/gorm"
)

type HackathonHandler struct {
	hackathonService *services.HackathonService
}

func NewHackathonHandler(db *gorm.DB) *HackathonHandler {
	return &HackathonHandler{
		hackathonService: services.NewHackathonService(db),
	}
}

// Create posts a new hackathon; the caller becomes its leader
// POST /api/hackathons
func (h *HackathonHandler) Create(c *gin.Context) {
	var req services.CreateHackathonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hackathon, err := h.hackathonService.Create(&req, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, hackathon)
}

// List returns all hackathons with nested rosters
// GET /api/hackathons
func (h *HackathonHandler) List(c *gin.Context) {
	hackathons, err := h.hackathonService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, hackathons)
}

// GetByID returns a hackathon summary
// GET /api/hackathons/:id
func (h *HackathonHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid hackathon id")
		return
	}

	summary, err := h.hackathonService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, summary)
}
