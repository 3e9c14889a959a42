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

func newApplicationService(apps *fakeApplicationRepo, jobs *fakeJobRepo, terminal bool) *ApplicationService {
	cfg := &config.Config{}
	cfg.Jobs.TerminalStatuses = terminal
	return NewApplicationService(apps, jobs, newFakeUserRepo(), cfg, zap.NewNop())
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := newApplicationService(apps, jobs, false)

	job, _ := jobs.Create(context.Background(), &model.Job{Title: "Backend Engineer"})
	applicant := primitive.NewObjectID()

	app, err := svc.Apply(context.Background(), job.ID, applicant)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, app.Status)

	// The job document records the application exactly once.
	stored, _ := jobs.FindByID(context.Background(), job.ID)
	assert.Equal(t, []primitive.ObjectID{app.ID}, stored.Applications)
}

func TestApplyTwiceFails(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := newApplicationService(apps, jobs, false)

	job, _ := jobs.Create(context.Background(), &model.Job{Title: "Backend Engineer"})
	applicant := primitive.NewObjectID()

	_, err := svc.Apply(context.Background(), job.ID, applicant)
	require.NoError(t, err)

	_, err = svc.Apply(context.Background(), job.ID, applicant)
	assert.ErrorIs(t, err, ErrAlreadyApplied)

	all, _ := apps.FindAll(context.Background())
	assert.Len(t, all, 1)
}

func TestApplyUnknownJob(t *testing.T) {
	svc := newApplicationService(newFakeApplicationRepo(), newFakeJobRepo(), false)

	_, err := svc.Apply(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := newApplicationService(apps, jobs, false)

	job, _ := jobs.Create(context.Background(), &model.Job{Title: "Backend Engineer"})
	app, err := svc.Apply(context.Background(), job.ID, primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), app.ID, "hired")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// The stored status is untouched by the rejected update.
	stored, _ := apps.FindByID(context.Background(), app.ID)
	assert.Equal(t, model.StatusPending, stored.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := newApplicationService(newFakeApplicationRepo(), newFakeJobRepo(), false)

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), model.StatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusOverwritesWithoutGuardByDefault(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := newApplicationService(apps, jobs, false)

	job, _ := jobs.Create(context.Background(), &model.Job{Title: "Backend Engineer"})
	app, err := svc.Apply(context.Background(), job.ID, primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), app.ID, model.StatusAccepted)
	require.NoError(t, err)

	// Without the terminal policy any status can replace any other.
	_, err = svc.UpdateStatus(context.Background(), app.ID, model.StatusRejected)
	require.NoError(t, err)

	stored, _ := apps.FindByID(context.Background(), app.ID)
	assert.Equal(t, model.StatusRejected, stored.Status)
}

func TestUpdateStatusTerminalPolicy(t *testing.T) {
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	svc := newApplicationService(apps, jobs, true)

	job, _ := jobs.Create(context.Background(), &model.Job{Title: "Backend Engineer"})
	app, err := svc.Apply(context.Background(), job.ID, primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), app.ID, model.StatusAccepted)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), app.ID, model.StatusRejected)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored, _ := apps.FindByID(context.Background(), app.ID)
	assert.Equal(t, model.StatusAccepted, stored.Status)
}
