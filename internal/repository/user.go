package repository

import (
	"context"
	"time"

	"github.com/sand1027/careerConnect/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IUserRepository defines user persistence
type IUserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	AddSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (bool, error)
}

// UserRepository implements user persistence
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Profile.SavedJobs == nil {
		user.Profile.SavedJobs = []primitive.ObjectID{}
	}
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user *model.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user *model.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	fields["updatedAt"] = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

// AddSavedJob appends jobID to the user's saved set in a single guarded
// write: the filter excludes documents already holding the id, so two
// concurrent saves cannot both succeed. Returns false when the id was
// already present (or the user does not exist - callers check existence).
func (r *UserRepository) AddSavedJob(ctx context.Context, userID, jobID primitive.ObjectID) (bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID, "profile.savedJobs": bson.M{"$ne": jobID}},
		bson.M{
			"$addToSet": bson.M{"profile.savedJobs": jobID},
			"$set":      bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
