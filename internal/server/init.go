package server

import (
	"context"
	"time"

	"github.com/sand1027/careerConnect/internal/config"
	"github.com/sand1027/careerConnect/internal/handler"
	"github.com/sand1027/careerConnect/internal/repository"
	"github.com/sand1027/careerConnect/internal/service"
	"github.com/sand1027/careerConnect/pkg/storage"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Repositories bundles the persistence layer
type Repositories struct {
	Users        repository.IUserRepository
	Companies    repository.ICompanyRepository
	Jobs         repository.IJobRepository
	Applications repository.IApplicationRepository
	Tx           repository.TxRunner
}

// Services bundles the business logic layer
type Services struct {
	User        *service.UserService
	Company     *service.CompanyService
	Job         *service.JobService
	Application *service.ApplicationService
	Chat        *service.ChatService
}

// Handlers bundles the HTTP layer
type Handlers struct {
	User        *handler.UserHandler
	Company     *handler.CompanyHandler
	Job         *handler.JobHandler
	Application *handler.ApplicationHandler
	Chat        *handler.ChatHandler
	Admin       *handler.AdminHandler
}

// EnsureSchema creates the unique indexes the consistency rules rely on.
func EnsureSchema(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return repository.EnsureIndexes(ctx, db)
}

// InitRepositories wires the repositories to the database
func InitRepositories(db *mongo.Database, client *mongo.Client) *Repositories {
	return &Repositories{
		Users:        repository.NewUserRepository(db),
		Companies:    repository.NewCompanyRepository(db),
		Jobs:         repository.NewJobRepository(db),
		Applications: repository.NewApplicationRepository(db),
		Tx:           repository.NewTxRunner(client),
	}
}

// InitServices wires the services to the repositories
func InitServices(cfg *config.Config, repos *Repositories, log *zap.Logger) *Services {
	return &Services{
		User:        service.NewUserService(repos.Users, repos.Jobs, log),
		Company:     service.NewCompanyService(repos.Companies, repos.Jobs, repos.Applications, repos.Tx, log),
		Job:         service.NewJobService(repos.Jobs, repos.Companies, repos.Applications, repos.Tx, cfg, log),
		Application: service.NewApplicationService(repos.Applications, repos.Jobs, repos.Users, cfg, log),
		Chat:        service.NewChatService(cfg, log),
	}
}

// InitHandlers wires the handlers to the services
func InitHandlers(cfg *config.Config, services *Services, log *zap.Logger) (*Handlers, error) {
	store, err := storage.NewDiskStore(cfg.Uploads.Dir)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		User:        handler.NewUserHandler(services.User, cfg, store, log),
		Company:     handler.NewCompanyHandler(services.Company, store, log),
		Job:         handler.NewJobHandler(services.Job, log),
		Application: handler.NewApplicationHandler(services.Application, log),
		Chat:        handler.NewChatHandler(services.Chat, log),
		Admin:       handler.NewAdminHandler(services.User, services.Company, services.Job, services.Application, log),
	}, nil
}
