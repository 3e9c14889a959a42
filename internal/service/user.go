package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sand1027/careerConnect/internal/model"
	"github.com/sand1027/careerConnect/internal/repository"
	"github.com/sand1027/careerConnect/pkg/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// UserService handles accounts, profiles and saved jobs
type UserService struct {
	users repository.IUserRepository
	jobs  repository.IJobRepository
	log   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users repository.IUserRepository, jobs repository.IJobRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, jobs: jobs, log: log}
}

// NormalizeEmail lower-cases and trims an email so uniqueness is
// effectively case-insensitive.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// Register creates an account. The password is stored as a bcrypt hash,
// never plaintext. Fails with ErrDuplicateEmail when the normalized email
// is taken; the unique index makes that hold under concurrent signups too.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest, photoPath string) (*model.User, error) {
	email := NormalizeEmail(req.Email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Fullname:    req.Fullname,
		Email:       email,
		PhoneNumber: req.PhoneNumber,
		Password:    hash,
		Role:        req.Role,
		Profile: model.Profile{
			ProfilePhoto: photoPath,
			SavedJobs:    []primitive.ObjectID{},
		},
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info("user registered",
		zap.String("userId", created.ID.Hex()),
		zap.String("role", created.Role))
	return created, nil
}

// Login verifies credentials and the requested role against the account.
func (s *UserService) Login(ctx context.Context, email, password, role string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !util.VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if role != user.Role {
		return nil, ErrWrongRole
	}
	return user, nil
}

// ResumeUpload describes an already-stored resume file.
type ResumeUpload struct {
	Path         string
	OriginalName string
}

// UpdateProfile applies a profile update. Email is immutable here. Skills
// arrive comma-separated; socialLinks/experience/education arrive as JSON
// strings, matching the multipart form the SPA sends. Empty fields keep
// their stored values.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *model.UpdateProfileRequest, resume *ResumeUpload, photoPath string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	fields := map[string]interface{}{
		"fullname":    req.Fullname,
		"phoneNumber": req.PhoneNumber,
	}

	if req.Bio != "" {
		fields["profile.bio"] = req.Bio
	}
	if skills := splitSkills(req.Skills); len(skills) > 0 {
		fields["profile.skills"] = skills
	}
	if req.Location != "" {
		fields["profile.location"] = req.Location
	}

	if req.SocialLinks != "" {
		var links model.SocialLinks
		if err := json.Unmarshal([]byte(req.SocialLinks), &links); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON in socialLinks", ErrValidation)
		}
		fields["profile.socialLinks"] = links
	}
	if req.Experience != "" {
		var experience []model.Experience
		if err := json.Unmarshal([]byte(req.Experience), &experience); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON in experience", ErrValidation)
		}
		fields["profile.experience"] = experience
	}
	if req.Education != "" {
		var education []model.Education
		if err := json.Unmarshal([]byte(req.Education), &education); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON in education", ErrValidation)
		}
		fields["profile.education"] = education
	}

	if resume != nil {
		fields["profile.resume"] = resume.Path
		fields["profile.resumeOriginalName"] = resume.OriginalName
	}
	if photoPath != "" {
		fields["profile.profilePhoto"] = photoPath
	}

	if err := s.users.Update(ctx, userID, fields); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return updated, nil
}

// SaveJob adds jobID to the user's saved set. The dedup check is a single
// guarded write at the storage layer, so concurrent saves cannot both pass.
// Callers should treat ErrAlreadySaved as a benign outcome on re-invoke.
func (s *UserService) SaveJob(ctx context.Context, userID, jobID primitive.ObjectID) ([]primitive.ObjectID, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}
	if job == nil {
		return nil, ErrNotFound
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}

	added, err := s.users.AddSavedJob(ctx, userID, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	if !added {
		return nil, ErrAlreadySaved
	}

	updated, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return updated.Profile.SavedJobs, nil
}

// GetByID returns a user or ErrNotFound.
func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetByEmail returns a user by email or ErrNotFound (admin view).
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List returns all users (admin view).
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}

func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
