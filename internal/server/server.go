package server

import (
	"context"
	"fmt"
	"time"

	"github.com/sand1027/careerConnect/internal/config"
	"github.com/sand1027/careerConnect/internal/middleware"
	"github.com/sand1027/careerConnect/internal/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	mongo  *mongo.Client
	log    *zap.Logger
}

// New creates a new server instance
func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	if err := EnsureSchema(db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	repos := InitRepositories(db, mongoClient)
	services := InitServices(cfg, repos, log)
	handlers, err := InitHandlers(cfg, services, log)
	if err != nil {
		return nil, err
	}

	router := setupRouter(cfg, handlers)

	return &Server{
		cfg:    cfg,
		router: router,
		mongo:  mongoClient,
		log:    log,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

// Run starts the server
func (s *Server) Run() error {
	s.log.Info("careerConnect server running", zap.String("address", s.cfg.Server.Address()))
	return s.router.Run(s.cfg.Server.Address())
}

func setupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Auth.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Uploaded files (photos, resumes, logos)
	r.Static("/uploads", cfg.Uploads.Dir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, model.NewSuccessResponse("Server is running", nil))
	})

	auth := middleware.AuthMiddleware(cfg)

	user := r.Group("/api/v1/user")
	{
		user.POST("/register", h.User.Register)
		user.POST("/login", h.User.Login)
		user.GET("/logout", h.User.Logout)
		user.POST("/profile/update", auth, h.User.UpdateProfile)
		user.POST("/savejob", auth, h.User.SaveJob)
	}

	job := r.Group("/api/v1/job")
	{
		job.GET("/get", h.Job.Get)
		job.GET("/get/:id", h.Job.GetByID)
		job.GET("/getadminjobs", auth, middleware.RequireRole(model.RoleRecruiter, model.RoleAdmin), h.Job.GetAdminJobs)
		job.POST("/post", auth, middleware.RequireRole(model.RoleRecruiter, model.RoleAdmin), h.Job.Post)
	}

	company := r.Group("/api/v1/company")
	company.Use(auth, middleware.RequireRole(model.RoleRecruiter, model.RoleAdmin))
	{
		company.POST("/register", h.Company.Register)
		company.GET("/get", h.Company.Get)
		company.GET("/get/:id", h.Company.GetByID)
		company.PUT("/update/:id", h.Company.Update)
	}

	application := r.Group("/api/v1/application")
	application.Use(auth)
	{
		application.POST("/apply/:id", h.Application.Apply)
		application.GET("/get", h.Application.GetMine)
		application.GET("/:id/applicants", middleware.RequireRole(model.RoleRecruiter, model.RoleAdmin), h.Application.GetApplicants)
		application.POST("/status/:id/update", middleware.RequireRole(model.RoleRecruiter, model.RoleAdmin), h.Application.UpdateStatus)
	}

	chat := r.Group("/api/v1/chatboat")
	chat.Use(auth)
	{
		chat.POST("/ask", h.Chat.Ask)
	}

	// Admin surface requires the admin role across the board.
	admin := r.Group("/api/admin/careerconnect")
	admin.Use(auth, middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/users", h.Admin.GetUsers)
		admin.GET("/users/:email", h.Admin.GetUserByEmail)
		admin.GET("/companies", h.Admin.GetCompanies)
		admin.GET("/jobs", h.Admin.GetJobs)
		admin.GET("/applications", h.Admin.GetApplications)
		admin.POST("/applications/update", h.Admin.UpdateApplicationStatus)
		admin.POST("/companies/delete", h.Admin.DeleteCompany)
		admin.POST("/jobs/delete", h.Admin.DeleteJob)
	}

	return r
}
