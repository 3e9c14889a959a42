package handler

import (
	"net/http"

	"github.com/sand1027/careerConnect/internal/middleware"
	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/service"
	"github.com/sand1027/careerConnect/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationHandler handles applying and application views
type ApplicationHandler struct {
	applications *service.ApplicationService
	log          *zap.Logger
}

func NewApplicationHandler(applications *service.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, log: log}
}

// Apply handles POST /apply/:id - a seeker applies to a job
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	jobID, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid job ID format", ""))
		return
	}

	app, err := h.applications.Apply(c.Request.Context(), jobID, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Job applied successfully", app))
}

// GetMine handles GET /get - the seeker's applications
func (h *ApplicationHandler) GetMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	apps, err := h.applications.GetForApplicant(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Applications fetched", apps))
}

// UpdateStatus handles POST /status/:id/update - recruiter decides on an
// application
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid application ID format", ""))
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if req.Status == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Status is required", ""))
		return
	}

	app, err := h.applications.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Application status updated successfully", app))
}

// GetApplicants handles GET /:id/applicants - the recruiter's view of a job
func (h *ApplicationHandler) GetApplicants(c *gin.Context) {
	jobID, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid job ID format", ""))
		return
	}

	apps, err := h.applications.GetApplicants(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Applicants fetched", apps))
}
