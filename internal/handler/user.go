package handler

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sand1027/careerConnect/internal/config"
	"github.com/sand1027/careerConnect/internal/middleware"
	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/service"
	"github.com/sand1027/careerConnect/pkg/storage"
	"github.com/sand1027/careerConnect/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxNameLength  = 100
	maxEmailLength = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserHandler handles registration, sessions, profiles and saved jobs
type UserHandler struct {
	users *service.UserService
	cfg   *config.Config
	store *storage.DiskStore
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, cfg *config.Config, store *storage.DiskStore, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, cfg: cfg, store: store, log: log}
}

// Register handles POST /register (multipart, optional profile photo)
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if req.Fullname == "" || req.Email == "" || req.Password == "" || req.Role == "" || req.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("All required fields must be provided", ""))
		return
	}
	req.Fullname = strings.TrimSpace(req.Fullname)
	if len(req.Fullname) > maxNameLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Name exceeds maximum length", ""))
		return
	}
	req.Email = service.NormalizeEmail(req.Email)
	if len(req.Email) > maxEmailLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email exceeds maximum length", ""))
		return
	}
	if !emailRegex.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email format", ""))
		return
	}
	if req.Role != model.RoleStudent && req.Role != model.RoleRecruiter {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid role", ""))
		return
	}

	photoPath := ""
	if file, err := c.FormFile("file"); err == nil {
		path, err := h.store.Save("photos", file)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		photoPath = path
	}

	user, err := h.users.Register(c.Request.Context(), &req, photoPath)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSuccessResponse("Account created successfully", user.ToResponse()))
}

// Login handles POST /login and sets the HTTP-only session cookie
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if req.Email == "" || req.Password == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email, password, and role are required", ""))
		return
	}

	user, err := h.users.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	ttl := time.Duration(h.cfg.Auth.TokenTTLHours) * time.Hour
	token, err := util.GenerateToken(user.ID.Hex(), user.Role, h.cfg.Auth.JWTSecret, ttl)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, token, int(ttl.Seconds()), "/", "", h.cfg.Auth.CookieSecure, true)
	c.JSON(http.StatusOK, model.NewSuccessResponse("Welcome back "+user.Fullname, user.ToResponse()))
}

// Logout handles GET /logout and clears the session cookie
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cfg.Auth.CookieSecure, true)
	c.JSON(http.StatusOK, model.NewSuccessResponse("Logged out successfully", nil))
}

// UpdateProfile handles POST /profile/update (multipart, optional PDF resume)
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if req.Fullname == "" || req.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Fullname and phone number are required", ""))
		return
	}
	if _, err := strconv.ParseInt(req.PhoneNumber, 10, 64); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Phone number must be a valid number", ""))
		return
	}

	var resume *service.ResumeUpload
	if file, err := c.FormFile("file"); err == nil {
		contentType := file.Header.Get("Content-Type")
		if contentType != "application/pdf" {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Only PDF files are allowed for resume", ""))
			return
		}
		if file.Size > h.cfg.Uploads.MaxResumeBytes {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("Resume exceeds maximum file size", ""))
			return
		}
		path, err := h.store.Save("resumes", file)
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		resume = &service.ResumeUpload{Path: path, OriginalName: file.Filename}
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, &req, resume, "")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Profile updated successfully", user.ToResponse()))
}

// SaveJob handles POST /savejob
func (h *UserHandler) SaveJob(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Authentication required", ""))
		return
	}

	var req struct {
		JobID string `json:"jobId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	jobID, err := util.ParseObjectID(req.JobID)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid job ID format", ""))
		return
	}

	savedJobs, err := h.users.SaveJob(c.Request.Context(), userID, jobID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSuccessResponse("Job saved successfully", gin.H{"savedJobs": savedJobs}))
}
