package service

import (
	"context"
	"fmt"

	"github.com/sand1027/careerConnect/internal/config"
	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ApplicationService governs the application lifecycle
type ApplicationService struct {
	applications repository.IApplicationRepository
	jobs         repository.IJobRepository
	users        repository.IUserRepository
	cfg          *config.Config
	log          *zap.Logger
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applications repository.IApplicationRepository,
	jobs repository.IJobRepository,
	users repository.IUserRepository,
	cfg *config.Config,
	log *zap.Logger,
) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, users: users, cfg: cfg, log: log}
}

// Apply creates a pending application for (job, applicant). At most one
// application may exist per pair; the compound unique index is
// authoritative under concurrent applies, the upfront check just gives a
// friendlier error on the common path.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID primitive.ObjectID) (*model.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}
	if job == nil {
		return nil, ErrNotFound
	}

	exists, err := s.applications.ExistsForJobAndApplicant(ctx, jobID, applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	app := &model.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      model.StatusPending,
	}
	created, err := s.applications.Create(ctx, app)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if err := s.jobs.AddApplication(ctx, jobID, created.ID); err != nil {
		s.log.Warn("failed to record application on job",
			zap.String("jobId", jobID.Hex()),
			zap.Error(err))
	}

	s.log.Info("application created",
		zap.String("applicationId", created.ID.Hex()),
		zap.String("jobId", jobID.Hex()))
	return created, nil
}

// UpdateStatus overwrites an application's status. Invalid values fail
// with ErrInvalidStatus and leave the stored status unchanged. When the
// terminal-status policy is on, accepted and rejected are final.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*model.Application, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	app, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up application: %w", err)
	}
	if app == nil {
		return nil, ErrNotFound
	}

	if s.cfg.Jobs.TerminalStatuses && app.Status != model.StatusPending && app.Status != status {
		return nil, ErrInvalidTransition
	}

	if err := s.applications.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	app.Status = status
	s.log.Info("application status updated",
		zap.String("applicationId", id.Hex()),
		zap.String("status", status))
	return app, nil
}

// GetForApplicant returns the seeker's applications with job details.
func (s *ApplicationService) GetForApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]*model.ApplicationDetail, error) {
	apps, err := s.applications.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, apps, true, false), nil
}

// GetApplicants returns a job's applications with applicant details for
// the recruiter view.
func (s *ApplicationService) GetApplicants(ctx context.Context, jobID primitive.ObjectID) ([]*model.ApplicationDetail, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	apps, err := s.applications.FindByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, apps, false, true), nil
}

// List returns all applications with job and applicant details (admin view).
func (s *ApplicationService) List(ctx context.Context) ([]*model.ApplicationDetail, error) {
	apps, err := s.applications.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, apps, true, true), nil
}

// populate attaches the referenced job and/or applicant to each
// application. Dangling references are tolerated: the detail stays nil.
func (s *ApplicationService) populate(ctx context.Context, apps []*model.Application, withJob, withApplicant bool) []*model.ApplicationDetail {
	details := make([]*model.ApplicationDetail, 0, len(apps))
	for _, app := range apps {
		detail := &model.ApplicationDetail{Application: *app}
		if withJob {
			if job, err := s.jobs.FindByID(ctx, app.JobID); err == nil && job != nil {
				detail.Job = job
			}
		}
		if withApplicant {
			if user, err := s.users.FindByID(ctx, app.ApplicantID); err == nil && user != nil {
				resp := user.ToResponse()
				detail.Applicant = &resp
			}
		}
		details = append(details, detail)
	}
	return details
}
