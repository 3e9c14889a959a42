package handler

import (
	"net/http"

	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/service"
	"github.com/sand1027/careerConnect/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler handles the admin review surface. Role gating happens in
// middleware, not here.
type AdminHandler struct {
	users        *service.UserService
	companies    *service.CompanyService
	jobs         *service.JobService
	applications *service.ApplicationService
	log          *zap.Logger
}

func NewAdminHandler(
	users *service.UserService,
	companies *service.CompanyService,
	jobs *service.JobService,
	applications *service.ApplicationService,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{users: users, companies: companies, jobs: jobs, applications: applications, log: log}
}

// GetUsers handles GET /users
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	responses := make([]model.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Users fetched", responses))
}

// GetUserByEmail handles GET /users/:email
func (h *AdminHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User fetched", user.ToResponse()))
}

// GetCompanies handles GET /companies
func (h *AdminHandler) GetCompanies(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Companies fetched", companies))
}

// GetJobs handles GET /jobs
func (h *AdminHandler) GetJobs(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Jobs fetched", jobs))
}

// GetApplications handles GET /applications
func (h *AdminHandler) GetApplications(c *gin.Context) {
	apps, err := h.applications.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Applications fetched", apps))
}

// UpdateApplicationStatus handles POST /applications/update
func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if req.ApplicationID == "" || req.Status == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Application ID and status are required", ""))
		return
	}
	id, err := util.ParseObjectID(req.ApplicationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid application ID format", ""))
		return
	}

	app, err := h.applications.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Application status updated successfully", app))
}

// DeleteCompany handles POST /companies/delete - cascades to jobs and
// their applications
func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	var req struct {
		CompanyID string `json:"companyId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if req.CompanyID == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Company ID is required", ""))
		return
	}
	id, err := util.ParseObjectID(req.CompanyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid company ID format", ""))
		return
	}

	if err := h.companies.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Company, associated jobs, and applications deleted successfully", nil))
}

// DeleteJob handles POST /jobs/delete - cascades to applications
func (h *AdminHandler) DeleteJob(c *gin.Context) {
	var req struct {
		JobID string `json:"jobId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if req.JobID == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Job ID is required", ""))
		return
	}
	id, err := util.ParseObjectID(req.JobID)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid job ID format", ""))
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Job and associated applications deleted successfully", nil))
}
