package repository

import (
	"context"
	"time"

	"github.com/sand1027/careerConnect/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IApplicationRepository defines application persistence
type IApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) (*model.Application, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error)
	FindAll(ctx context.Context) ([]*model.Application, error)
	FindByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]*model.Application, error)
	FindByJob(ctx context.Context, jobID primitive.ObjectID) ([]*model.Application, error)
	ExistsForJobAndApplicant(ctx context.Context, jobID, applicantID primitive.ObjectID) (bool, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	CountByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error)
	DeleteByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error)
	DeleteByJobs(ctx context.Context, jobIDs []primitive.ObjectID) (int64, error)
}

// ApplicationRepository implements application persistence
type ApplicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) IApplicationRepository {
	return &ApplicationRepository{collection: db.Collection("applications")}
}

// Create inserts a new application. The compound unique index on
// (job, applicant) makes duplicates a storage-level error, so concurrent
// applies cannot both land; callers translate duplicate-key errors.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) (*model.Application, error) {
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = model.StatusPending
	}
	res, err := r.collection.InsertOne(ctx, app)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		app.ID = oid
	}
	return app, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error) {
	var app *model.Application
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return app, nil
}

func (r *ApplicationRepository) FindAll(ctx context.Context) ([]*model.Application, error) {
	return r.find(ctx, bson.M{})
}

func (r *ApplicationRepository) FindByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]*model.Application, error) {
	return r.find(ctx, bson.M{"applicant": applicantID})
}

func (r *ApplicationRepository) FindByJob(ctx context.Context, jobID primitive.ObjectID) ([]*model.Application, error) {
	return r.find(ctx, bson.M{"job": jobID})
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]*model.Application, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []*model.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepository) ExistsForJobAndApplicant(ctx context.Context, jobID, applicantID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"job": jobID, "applicant": applicantID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	return err
}

func (r *ApplicationRepository) CountByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"job": jobID})
}

func (r *ApplicationRepository) DeleteByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"job": jobID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *ApplicationRepository) DeleteByJobs(ctx context.Context, jobIDs []primitive.ObjectID) (int64, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}
	res, err := r.collection.DeleteMany(ctx, bson.M{"job": bson.M{"$in": jobIDs}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
