package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application statuses
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the allowed application statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID       primitive.ObjectID `bson:"job" json:"job"`
	ApplicantID primitive.ObjectID `bson:"applicant" json:"applicant"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UpdateStatusRequest is the admin/recruiter status-change payload.
type UpdateStatusRequest struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

// ApplicationDetail is an Application with the job and applicant populated
// for admin and recruiter views.
type ApplicationDetail struct {
	Application
	Job       *Job          `json:"jobDetail,omitempty"`
	Applicant *UserResponse `json:"applicantDetail,omitempty"`
}
