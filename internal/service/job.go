package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sand1027/careerConnect/internal/config"
	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/repository"
	"github.com/sand1027/careerConnect/pkg/search"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// JobService handles job postings and the search view
type JobService struct {
	jobs         repository.IJobRepository
	companies    repository.ICompanyRepository
	applications repository.IApplicationRepository
	tx           repository.TxRunner
	cfg          *config.Config
	log          *zap.Logger
}

// NewJobService creates a new job service
func NewJobService(
	jobs repository.IJobRepository,
	companies repository.ICompanyRepository,
	applications repository.IApplicationRepository,
	tx repository.TxRunner,
	cfg *config.Config,
	log *zap.Logger,
) *JobService {
	return &JobService{jobs: jobs, companies: companies, applications: applications, tx: tx, cfg: cfg, log: log}
}

// Post creates a job under one of the recruiter's companies.
func (s *JobService) Post(ctx context.Context, req *model.PostJobRequest, creatorID primitive.ObjectID) (*model.Job, error) {
	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid company id", ErrValidation)
	}
	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up company: %w", err)
	}
	if company == nil {
		return nil, ErrNotFound
	}

	requirements := []string{}
	for _, r := range strings.Split(req.Requirements, ",") {
		if r = strings.TrimSpace(r); r != "" {
			requirements = append(requirements, r)
		}
	}

	job := &model.Job{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: requirements,
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Experience:   req.Experience,
		Position:     req.Position,
		CompanyID:    companyID,
		CreatedBy:    creatorID,
		Featured:     req.Featured,
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.log.Info("job posted",
		zap.String("jobId", created.ID.Hex()),
		zap.String("companyId", companyID.Hex()))
	return created, nil
}

// Search materializes the job collection and runs the filter/sort pipeline
// over it, returning one page of the derived view.
func (s *JobService) Search(ctx context.Context, query string, filters search.Filters, sortKey string, page int) (search.Result, error) {
	jobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return search.Result{}, fmt.Errorf("failed to list jobs: %w", err)
	}
	return search.Run(jobs, query, filters, sortKey, page, s.cfg.Jobs.PageSize), nil
}

// GetDetail returns a job with its company and application count populated.
func (s *JobService) GetDetail(ctx context.Context, id primitive.ObjectID) (*model.JobDetail, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}

	detail := &model.JobDetail{Job: *job}

	if company, err := s.companies.FindByID(ctx, job.CompanyID); err == nil && company != nil {
		detail.Company = company
	}
	if count, err := s.applications.CountByJob(ctx, id); err == nil {
		detail.ApplicationCount = int(count)
	}
	return detail, nil
}

// GetByCreator returns the recruiter's jobs.
func (s *JobService) GetByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*model.Job, error) {
	return s.jobs.FindByCreator(ctx, creatorID)
}

// List returns all jobs (admin view).
func (s *JobService) List(ctx context.Context) ([]*model.Job, error) {
	return s.jobs.FindAll(ctx)
}

// Delete removes the job and every application referencing it inside one
// transaction.
func (s *JobService) Delete(ctx context.Context, id primitive.ObjectID) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up job: %w", err)
	}
	if job == nil {
		return ErrNotFound
	}

	err = s.tx.Run(ctx, func(ctx context.Context) error {
		if _, err := s.applications.DeleteByJob(ctx, id); err != nil {
			return err
		}
		return s.jobs.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	s.log.Info("job deleted with cascade", zap.String("jobId", id.Hex()))
	return nil
}
