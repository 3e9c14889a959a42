package service

import (
	"context"

	"github.com/sand1027/careerConnect/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes for exercising the consistency rules without
// a running database.

type fakeTxRunner struct{}

func (fakeTxRunner) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users      map[primitive.ObjectID]*model.User
	lastUpdate map[string]interface{}
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	r.lastUpdate = fields
	return nil
}

func (r *fakeUserRepo) AddSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (bool, error) {
	user, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	for _, saved := range user.Profile.SavedJobs {
		if saved == jobID {
			return false, nil
		}
	}
	user.Profile.SavedJobs = append(user.Profile.SavedJobs, jobID)
	return true, nil
}

type fakeCompanyRepo struct {
	companies map[primitive.ObjectID]*model.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[primitive.ObjectID]*model.Company)}
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	company.ID = primitive.NewObjectID()
	r.companies[company.ID] = company
	return company, nil
}

func (r *fakeCompanyRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Company, error) {
	var out []*model.Company
	for _, c := range r.companies {
		if c.UserID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) FindAll(ctx context.Context) ([]*model.Company, error) {
	out := make([]*model.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	return nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.companies, id)
	return nil
}

type fakeJobRepo struct {
	jobs map[primitive.ObjectID]*model.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[primitive.ObjectID]*model.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	job.ID = primitive.NewObjectID()
	if job.Applications == nil {
		job.Applications = []primitive.ObjectID{}
	}
	r.jobs[job.ID] = job
	return job, nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	return r.jobs[id], nil
}

func (r *fakeJobRepo) FindAll(ctx context.Context) ([]*model.Job, error) {
	out := make([]*model.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out, nil
}

func (r *fakeJobRepo) FindByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*model.Job, error) {
	var out []*model.Job
	for _, j := range r.jobs {
		if j.CreatedBy == creatorID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindByCompany(ctx context.Context, companyID primitive.ObjectID) ([]*model.Job, error) {
	var out []*model.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) AddApplication(ctx context.Context, jobID, applicationID primitive.ObjectID) error {
	if job, ok := r.jobs[jobID]; ok {
		job.Applications = append(job.Applications, applicationID)
	}
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	var n int64
	for id, j := range r.jobs {
		if j.CompanyID == companyID {
			delete(r.jobs, id)
			n++
		}
	}
	return n, nil
}

type fakeApplicationRepo struct {
	applications map[primitive.ObjectID]*model.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[primitive.ObjectID]*model.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app *model.Application) (*model.Application, error) {
	app.ID = primitive.NewObjectID()
	if app.Status == "" {
		app.Status = model.StatusPending
	}
	r.applications[app.ID] = app
	return app, nil
}

func (r *fakeApplicationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error) {
	return r.applications[id], nil
}

func (r *fakeApplicationRepo) FindAll(ctx context.Context) ([]*model.Application, error) {
	out := make([]*model.Application, 0, len(r.applications))
	for _, a := range r.applications {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]*model.Application, error) {
	var out []*model.Application
	for _, a := range r.applications {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByJob(ctx context.Context, jobID primitive.ObjectID) ([]*model.Application, error) {
	var out []*model.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ExistsForJobAndApplicant(ctx context.Context, jobID, applicantID primitive.ObjectID) (bool, error) {
	for _, a := range r.applications {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if app, ok := r.applications[id]; ok {
		app.Status = status
	}
	return nil
}

func (r *fakeApplicationRepo) CountByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	apps, _ := r.FindByJob(ctx, jobID)
	return int64(len(apps)), nil
}

func (r *fakeApplicationRepo) DeleteByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	var n int64
	for id, a := range r.applications {
		if a.JobID == jobID {
			delete(r.applications, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) DeleteByJobs(ctx context.Context, jobIDs []primitive.ObjectID) (int64, error) {
	var n int64
	for _, jobID := range jobIDs {
		c, _ := r.DeleteByJob(ctx, jobID)
		n += c
	}
	return n, nil
}
