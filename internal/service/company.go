package service

import (
	"context"
	"fmt"

	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CompanyService handles recruiter companies and their cascading removal
type CompanyService struct {
	companies    repository.ICompanyRepository
	jobs         repository.IJobRepository
	applications repository.IApplicationRepository
	tx           repository.TxRunner
	log          *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companies repository.ICompanyRepository,
	jobs repository.IJobRepository,
	applications repository.IApplicationRepository,
	tx repository.TxRunner,
	log *zap.Logger,
) *CompanyService {
	return &CompanyService{companies: companies, jobs: jobs, applications: applications, tx: tx, log: log}
}

// Register creates a company shell owned by the recruiter.
func (s *CompanyService) Register(ctx context.Context, name string, ownerID primitive.ObjectID) (*model.Company, error) {
	company := &model.Company{Name: name, UserID: ownerID}
	created, err := s.companies.Create(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	s.log.Info("company registered",
		zap.String("companyId", created.ID.Hex()),
		zap.String("ownerId", ownerID.Hex()))
	return created, nil
}

// GetByID returns a company or ErrNotFound.
func (s *CompanyService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}
	return company, nil
}

// GetByOwner returns the recruiter's companies.
func (s *CompanyService) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Company, error) {
	return s.companies.FindByOwner(ctx, ownerID)
}

// List returns all companies (admin view).
func (s *CompanyService) List(ctx context.Context) ([]*model.Company, error) {
	return s.companies.FindAll(ctx)
}

// Update applies the mutable company fields.
func (s *CompanyService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateCompanyRequest, logoPath string) (*model.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrNotFound
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Industry != "" {
		fields["industry"] = req.Industry
	}
	if req.Size != "" {
		fields["size"] = req.Size
	}
	if req.Website != "" {
		fields["website"] = req.Website
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if logoPath != "" {
		fields["logo"] = logoPath
	}

	if len(fields) > 0 {
		if err := s.companies.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("failed to update company: %w", err)
		}
	}
	return s.companies.FindByID(ctx, id)
}

// Delete removes the company, every job referencing it, and every
// application referencing those jobs, inside one transaction so partial
// deletes cannot be observed.
func (s *CompanyService) Delete(ctx context.Context, id primitive.ObjectID) error {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up company: %w", err)
	}
	if company == nil {
		return ErrNotFound
	}

	err = s.tx.Run(ctx, func(ctx context.Context) error {
		jobs, err := s.jobs.FindByCompany(ctx, id)
		if err != nil {
			return err
		}
		jobIDs := make([]primitive.ObjectID, len(jobs))
		for i, job := range jobs {
			jobIDs[i] = job.ID
		}

		if _, err := s.applications.DeleteByJobs(ctx, jobIDs); err != nil {
			return err
		}
		if _, err := s.jobs.DeleteByCompany(ctx, id); err != nil {
			return err
		}
		return s.companies.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.log.Info("company deleted with cascade", zap.String("companyId", id.Hex()))
	return nil
}
