package handler

import (
	"net/http"
	"strconv"

	"github.com/sand1027/careerConnect/internal/middleware"
	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/service"
	"github.com/sand1027/careerConnect/pkg/search"
	"github.com/sand1027/careerConnect/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler handles job posting and search
type JobHandler struct {
	jobs *service.JobService
	log  *zap.Logger
}

func NewJobHandler(jobs *service.JobService, log *zap.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, log: log}
}

// Get handles GET /get - the search listing. Query parameters map onto the
// filter/sort pipeline.
func (h *JobHandler) Get(c *gin.Context) {
	filters := search.Filters{
		ExperienceBand: c.Query("experience"),
		State:          c.Query("state"),
		City:           c.Query("city"),
		Skill:          c.Query("skill"),
		Role:           c.Query("role"),
	}
	if raw := c.Query("salary"); raw != "" {
		if ceiling, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.SalaryCeiling = ceiling
		}
	}
	page := 1
	if raw := c.Query("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			page = p
		}
	}

	result, err := h.jobs.Search(c.Request.Context(), c.Query("keyword"), filters, c.Query("sort"), page)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Jobs fetched", gin.H{
		"jobs":       result.Jobs,
		"total":      result.Total,
		"page":       result.Page,
		"totalPages": result.TotalPages,
	}))
}

// GetByID handles GET /get/:id with company and application count populated
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid job ID format", ""))
		return
	}

	detail, err := h.jobs.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Job fetched", detail))
}

// GetAdminJobs handles GET /getadminjobs - the recruiter's own postings
func (h *JobHandler) GetAdminJobs(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	jobs, err := h.jobs.GetByCreator(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Jobs fetched", jobs))
}

// Post handles POST /post - recruiter creates a job
func (h *JobHandler) Post(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	var req model.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if req.Title == "" || req.Description == "" || req.Location == "" || req.CompanyID == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Missing required job fields", ""))
		return
	}

	job, err := h.jobs.Post(c.Request.Context(), &req, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("New job created successfully", job))
}
