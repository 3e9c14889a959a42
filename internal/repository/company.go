package repository

import (
	"context"
	"time"

	"github.com/sand1027/careerConnect/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ICompanyRepository defines company persistence
type ICompanyRepository interface {
	Create(ctx context.Context, company *model.Company) (*model.Company, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Company, error)
	FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Company, error)
	FindAll(ctx context.Context) ([]*model.Company, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CompanyRepository implements company persistence
type CompanyRepository struct {
	collection *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) ICompanyRepository {
	return &CompanyRepository{collection: db.Collection("companies")}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) (*model.Company, error) {
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, company)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		company.ID = oid
	}
	return company, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Company, error) {
	var company *model.Company
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return company, nil
}

func (r *CompanyRepository) FindByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Company, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []*model.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]*model.Company, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []*model.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	fields["updatedAt"] = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

func (r *CompanyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
