package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanuchaudhary/Job-Portal/internal/dtos"
	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/repositories"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

// JobService owns the job catalog. Postings belong to a recruiter and may
// optionally link a company; a job with no company is a valid independent
// posting.
type JobService struct {
	jobs      repositories.JobRepository
	users     repositories.UserRepository
	companies repositories.CompanyRepository
}

func NewJobService(
	jobs repositories.JobRepository,
	users repositories.UserRepository,
	companies repositories.CompanyRepository,
) *JobService {
	return &JobService{
		jobs:      jobs,
		users:     users,
		companies: companies,
	}
}

// Create posts a job owned by callerID. The caller must be a recruiter and a
// linked company, when given, must already exist.
func (s *JobService) Create(ctx context.Context, callerID string, req dtos.CreateJobRequest) (*models.Job, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("caller is not a recruiter: %w", shared.ErrForbidden)
		}
		return nil, fmt.Errorf("resolving caller: %w", err)
	}
	if caller.Role != models.RoleRecruiter {
		return nil, fmt.Errorf("only recruiters can post jobs: %w", shared.ErrForbidden)
	}

	var companyID *string
	if req.CompanyID != "" {
		company, err := s.companies.FindByID(ctx, req.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("company %s: %w", req.CompanyID, err)
		}
		companyID = &company.ID
	}

	job := &models.Job{
		RecruiterID: caller.ID,
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		Requirement: req.Requirement,
		IsOpen:      true,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}
	return job, nil
}

// List returns every posting with its company attached.
func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	return s.jobs.List(ctx)
}

// Find matches the title filter case-insensitively; no match is an empty
// result, not an error.
func (s *JobService) Find(ctx context.Context, req dtos.FindJobRequest) ([]models.Job, error) {
	return s.jobs.SearchByTitle(ctx, req.Title)
}
