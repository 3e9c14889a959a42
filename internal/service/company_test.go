package service

import (
	"context"
	"testing"

	"github.com/sand1027/careerConnect/internal/config"
	"github.com/sand1027/careerConnect/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestDeleteCompanyCascades(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	svc := NewCompanyService(companies, jobs, apps, fakeTxRunner{}, zap.NewNop())

	owner := primitive.NewObjectID()
	company, err := svc.Register(context.Background(), "Acme", owner)
	require.NoError(t, err)
	other, err := svc.Register(context.Background(), "Globex", owner)
	require.NoError(t, err)

	// Two jobs under the doomed company, one under the survivor.
	j1, _ := jobs.Create(context.Background(), &model.Job{Title: "Backend", CompanyID: company.ID})
	j2, _ := jobs.Create(context.Background(), &model.Job{Title: "Frontend", CompanyID: company.ID})
	j3, _ := jobs.Create(context.Background(), &model.Job{Title: "Designer", CompanyID: other.ID})

	for _, jobID := range []primitive.ObjectID{j1.ID, j1.ID, j2.ID, j3.ID} {
		apps.Create(context.Background(), &model.Application{
			JobID:       jobID,
			ApplicantID: primitive.NewObjectID(),
		})
	}

	require.NoError(t, svc.Delete(context.Background(), company.ID))

	// No jobs or applications referencing the deleted company remain.
	remaining, _ := jobs.FindByCompany(context.Background(), company.ID)
	assert.Empty(t, remaining)
	for _, jobID := range []primitive.ObjectID{j1.ID, j2.ID} {
		left, _ := apps.FindByJob(context.Background(), jobID)
		assert.Empty(t, left)
	}

	// The other company and its job and application survive intact.
	_, err = svc.GetByID(context.Background(), other.ID)
	require.NoError(t, err)
	survivors, _ := apps.FindByJob(context.Background(), j3.ID)
	assert.Len(t, survivors, 1)
}

func TestDeleteCompanyNotFound(t *testing.T) {
	svc := NewCompanyService(newFakeCompanyRepo(), newFakeJobRepo(), newFakeApplicationRepo(), fakeTxRunner{}, zap.NewNop())

	err := svc.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteJobCascades(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	cfg := &config.Config{}
	cfg.Jobs.PageSize = 5
	svc := NewJobService(jobs, companies, apps, fakeTxRunner{}, cfg, zap.NewNop())

	job, _ := jobs.Create(context.Background(), &model.Job{Title: "Backend"})
	keep, _ := jobs.Create(context.Background(), &model.Job{Title: "Frontend"})
	apps.Create(context.Background(), &model.Application{JobID: job.ID, ApplicantID: primitive.NewObjectID()})
	apps.Create(context.Background(), &model.Application{JobID: keep.ID, ApplicantID: primitive.NewObjectID()})

	require.NoError(t, svc.Delete(context.Background(), job.ID))

	gone, _ := apps.FindByJob(context.Background(), job.ID)
	assert.Empty(t, gone)
	left, _ := apps.FindByJob(context.Background(), keep.ID)
	assert.Len(t, left, 1)
}

func TestPostJobUnknownCompany(t *testing.T) {
	cfg := &config.Config{}
	cfg.Jobs.PageSize = 5
	svc := NewJobService(newFakeJobRepo(), newFakeCompanyRepo(), newFakeApplicationRepo(), fakeTxRunner{}, cfg, zap.NewNop())

	_, err := svc.Post(context.Background(), &model.PostJobRequest{
		Title:     "Backend",
		CompanyID: primitive.NewObjectID().Hex(),
	}, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostJobSplitsRequirements(t *testing.T) {
	companies := newFakeCompanyRepo()
	cfg := &config.Config{}
	cfg.Jobs.PageSize = 5
	svc := NewJobService(newFakeJobRepo(), companies, newFakeApplicationRepo(), fakeTxRunner{}, cfg, zap.NewNop())

	company, _ := companies.Create(context.Background(), &model.Company{Name: "Acme"})

	job, err := svc.Post(context.Background(), &model.PostJobRequest{
		Title:        "Backend",
		CompanyID:    company.ID.Hex(),
		Requirements: "Go, MongoDB, , Docker ",
	}, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "MongoDB", "Docker"}, job.Requirements)
}

func TestJobDetailCountsApplications(t *testing.T) {
	companies := newFakeCompanyRepo()
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	cfg := &config.Config{}
	cfg.Jobs.PageSize = 5
	svc := NewJobService(jobs, companies, apps, fakeTxRunner{}, cfg, zap.NewNop())

	company, _ := companies.Create(context.Background(), &model.Company{Name: "Acme"})
	job, _ := jobs.Create(context.Background(), &model.Job{Title: "Backend", CompanyID: company.ID})
	apps.Create(context.Background(), &model.Application{JobID: job.ID, ApplicantID: primitive.NewObjectID()})
	apps.Create(context.Background(), &model.Application{JobID: job.ID, ApplicantID: primitive.NewObjectID()})

	detail, err := svc.GetDetail(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.ApplicationCount)
	require.NotNil(t, detail.Company)
	assert.Equal(t, "Acme", detail.Company.Name)
}
