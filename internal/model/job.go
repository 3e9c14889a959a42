package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job types (free-form in storage; these are the values the UI offers)
const (
	JobTypeFullTime   = "Full-Time"
	JobTypePartTime   = "Part-Time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

type Job struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title        string               `bson:"title" json:"title"`
	Description  string               `bson:"description" json:"description"`
	Requirements []string             `bson:"requirements" json:"requirements"`
	Salary       float64              `bson:"salary" json:"salary"` // LPA; 0 means not disclosed
	Location     string               `bson:"location" json:"location"`
	JobType      string               `bson:"jobType" json:"jobType"`
	Experience   string               `bson:"experienceLevel" json:"experienceLevel"` // free-text range, e.g. "2-5 years"
	Position     int                  `bson:"position" json:"position"`
	CompanyID    primitive.ObjectID   `bson:"company" json:"company"`
	CreatedBy    primitive.ObjectID   `bson:"created_by" json:"created_by"`
	Featured     bool                 `bson:"featured" json:"featured"`
	Applications []primitive.ObjectID `bson:"applications" json:"applications"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// PostJobRequest is the recruiter's job-creation payload.
type PostJobRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"` // comma-separated
	Salary       float64 `json:"salary"`
	Location     string  `json:"location"`
	JobType      string  `json:"jobType"`
	Experience   string  `json:"experience"`
	Position     int     `json:"position"`
	CompanyID    string  `json:"companyId"`
	Featured     bool    `json:"featured"`
}

// JobDetail is a Job with its company and application count populated.
type JobDetail struct {
	Job
	Company          *Company `json:"companyDetail,omitempty"`
	ApplicationCount int      `json:"applicationCount"`
}
