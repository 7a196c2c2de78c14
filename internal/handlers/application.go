package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hackmatch/hackmatch/internal/middleware"
	"github.com/hackmatch/hackmatch/internal/services"
	"github.com/hackmatch/hackmatch/pkg/response"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

func NewApplicationHandler(db *gorm.DB) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: services.NewApplicationService(db),
	}
}

// Submit creates a pending application against a hackathon
// POST /api/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req services.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	application, err := h.applicationService.Submit(&req, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, application)
}

// Decide accepts or rejects an application (leader only)
// PUT /api/applications/:id
func (h *ApplicationHandler) Decide(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid application id")
		return
	}

	var req services.DecideApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.applicationService.Decide(uint(id), req.Status, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListIncoming returns applications against the caller's hackathons
// GET /api/applications/incoming
func (h *ApplicationHandler) ListIncoming(c *gin.Context) {
	views, err := h.applicationService.ListIncoming(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, views)
}

// ListOutgoing returns the caller's own applications
// GET /api/applications/outgoing
func (h *ApplicationHandler) ListOutgoing(c *gin.Context) {
	views, err := h.applicationService.ListOutgoing(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, views)
}
