package repository

import (
	"context"
	"time"

	"github.com/sand1027/careerConnect/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IJobRepository defines job persistence
type IJobRepository interface {
	Create(ctx context.Context, job *model.Job) (*model.Job, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error)
	FindAll(ctx context.Context) ([]*model.Job, error)
	FindByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*model.Job, error)
	FindByCompany(ctx context.Context, companyID primitive.ObjectID) ([]*model.Job, error)
	AddApplication(ctx context.Context, jobID, applicationID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error)
}

// JobRepository implements job persistence
type JobRepository struct {
	collection *mongo.Collection
}

func NewJobRepository(db *mongo.Database) IJobRepository {
	return &JobRepository{collection: db.Collection("jobs")}
}

func (r *JobRepository) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Applications == nil {
		job.Applications = []primitive.ObjectID{}
	}
	res, err := r.collection.InsertOne(ctx, job)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return job, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	var job *model.Job
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

func (r *JobRepository) FindAll(ctx context.Context) ([]*model.Job, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*model.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) FindByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*model.Job, error) {
	return r.find(ctx, bson.M{"created_by": creatorID})
}

func (r *JobRepository) FindByCompany(ctx context.Context, companyID primitive.ObjectID) ([]*model.Job, error) {
	return r.find(ctx, bson.M{"company": companyID})
}

func (r *JobRepository) find(ctx context.Context, filter bson.M) ([]*model.Job, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*model.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AddApplication records an application id on the job document.
func (r *JobRepository) AddApplication(ctx context.Context, jobID, applicationID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{
			"$addToSet": bson.M{"applications": applicationID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}

func (r *JobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *JobRepository) DeleteByCompany(ctx context.Context, companyID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"company": companyID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
