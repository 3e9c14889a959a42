package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// Experience is one entry in a profile's work history.
type Experience struct {
	JobTitle    string     `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Company     string     `bson:"company,omitempty" json:"company,omitempty"`
	StartDate   *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"` // nil means current position
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
}

// Education is one entry in a profile's education history.
type Education struct {
	Degree      string `bson:"degree,omitempty" json:"degree,omitempty"`
	Institution string `bson:"institution,omitempty" json:"institution,omitempty"`
	Year        string `bson:"year,omitempty" json:"year,omitempty"`
}

// SocialLinks holds a profile's external links.
type SocialLinks struct {
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	GitHub   string `bson:"github,omitempty" json:"github,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
}

// Profile is the embedded profile sub-document of a User.
type Profile struct {
	Bio                string               `bson:"bio,omitempty" json:"bio,omitempty"`
	Skills             []string             `bson:"skills,omitempty" json:"skills,omitempty"`
	Resume             string               `bson:"resume,omitempty" json:"resume,omitempty"`
	ResumeOriginalName string               `bson:"resumeOriginalName,omitempty" json:"resumeOriginalName,omitempty"`
	CompanyID          primitive.ObjectID   `bson:"company,omitempty" json:"company,omitempty"`
	ProfilePhoto       string               `bson:"profilePhoto" json:"profilePhoto"`
	SavedJobs          []primitive.ObjectID `bson:"savedJobs" json:"savedJobs"`
	Experience         []Experience         `bson:"experience,omitempty" json:"experience,omitempty"`
	Education          []Education          `bson:"education,omitempty" json:"education,omitempty"`
	SocialLinks        SocialLinks          `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Location           string               `bson:"location,omitempty" json:"location,omitempty"`
}

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Fullname    string             `bson:"fullname" json:"fullname"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Password    string             `bson:"password" json:"-"` // bcrypt hash - never expose
	Role        string             `bson:"role" json:"role"`
	Profile     Profile            `bson:"profile" json:"profile"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserResponse is the sanitized view of a User (password omitted).
type UserResponse struct {
	ID          string  `json:"id"`
	Fullname    string  `json:"fullname"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Role        string  `json:"role"`
	Profile     Profile `json:"profile"`
}

// ToResponse converts User to UserResponse (excludes password hash)
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID.Hex(),
		Fullname:    u.Fullname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Profile:     u.Profile,
	}
}

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Fullname    string `form:"fullname" json:"fullname"`
	Email       string `form:"email" json:"email"`
	Password    string `form:"password" json:"password"`
	Role        string `form:"role" json:"role"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateProfileRequest carries the multipart profile-update fields.
// SocialLinks, Experience and Education arrive JSON-encoded; Skills is a
// comma-separated list. Email is intentionally absent: it is immutable.
type UpdateProfileRequest struct {
	Fullname    string `form:"fullname"`
	PhoneNumber string `form:"phoneNumber"`
	Bio         string `form:"bio"`
	Skills      string `form:"skills"`
	SocialLinks string `form:"socialLinks"`
	Experience  string `form:"experience"`
	Education   string `form:"education"`
	Location    string `form:"location"`
}
