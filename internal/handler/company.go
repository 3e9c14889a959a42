package handler

import (
	"net/http"

	"github.com/sand1027/careerConnect/internal/middleware"
	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/service"
	"github.com/sand1027/careerConnect/pkg/storage"
	"github.com/sand1027/careerConnect/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CompanyHandler handles recruiter company CRUD
type CompanyHandler struct {
	companies *service.CompanyService
	store     *storage.DiskStore
	log       *zap.Logger
}

func NewCompanyHandler(companies *service.CompanyService, store *storage.DiskStore, log *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companies: companies, store: store, log: log}
}

// Register handles POST /register
func (h *CompanyHandler) Register(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	var req model.RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if req.CompanyName == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Company name is required", ""))
		return
	}

	company, err := h.companies.Register(c.Request.Context(), req.CompanyName, userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Company registered successfully", company))
}

// Get handles GET /get - the recruiter's companies
func (h *CompanyHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	companies, err := h.companies.GetByOwner(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Companies fetched", companies))
}

// GetByID handles GET /get/:id
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid company ID format", ""))
		return
	}

	company, err := h.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Company fetched", company))
}

// Update handles PUT /update/:id (multipart, optional logo)
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := util.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid company ID format", ""))
		return
	}

	var req model.UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	logoPath := ""
	if file, err := c.FormFile("file"); err == nil {
		path, err := h.store.Save("logos", file)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		logoPath = path
	}

	company, err := h.companies.Update(c.Request.Context(), id, &req, logoPath)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Company information updated", company))
}
