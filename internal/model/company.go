package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Company struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Industry    string             `bson:"industry,omitempty" json:"industry,omitempty"`
	Size        string             `bson:"size,omitempty" json:"size,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"` // owning recruiter
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RegisterCompanyRequest creates a company shell for a recruiter.
type RegisterCompanyRequest struct {
	CompanyName string `json:"companyName"`
}

// UpdateCompanyRequest carries the mutable company fields (multipart form).
type UpdateCompanyRequest struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
	Industry    string `form:"industry" json:"industry"`
	Size        string `form:"size" json:"size"`
	Website     string `form:"website" json:"website"`
	Location    string `form:"location" json:"location"`
}
