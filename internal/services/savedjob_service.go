package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/repositories"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

// SavedJobService keeps the bookmark ledger. A user bookmarks for themselves,
// there are no ownership subtleties beyond that.
type SavedJobService struct {
	savedJobs repositories.SavedJobRepository
	jobs      repositories.JobRepository
}

func NewSavedJobService(savedJobs repositories.SavedJobRepository, jobs repositories.JobRepository) *SavedJobService {
	return &SavedJobService{savedJobs: savedJobs, jobs: jobs}
}

// Save bookmarks jobID for userID. The job must exist and a second bookmark
// of the same job fails with ErrConflict.
func (s *SavedJobService) Save(ctx context.Context, userID, jobID string) (*models.SavedJob, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", jobID, err)
	}
	if _, err := s.savedJobs.FindByUserAndJob(ctx, userID, job.ID); err == nil {
		return nil, fmt.Errorf("job %s already saved: %w", job.ID, shared.ErrConflict)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("checking bookmark: %w", err)
	}

	savedJob := &models.SavedJob{
		UserID: userID,
		JobID:  job.ID,
	}
	if err := s.savedJobs.Create(ctx, savedJob); err != nil {
		return nil, fmt.Errorf("saving bookmark: %w", err)
	}
	savedJob.Job = job
	return savedJob, nil
}

// Unsave removes the caller's bookmark of jobID; a missing bookmark is
// ErrNotFound.
func (s *SavedJobService) Unsave(ctx context.Context, userID, jobID string) error {
	return s.savedJobs.DeleteByUserAndJob(ctx, userID, jobID)
}

// List returns the caller's bookmarks with jobs attached.
func (s *SavedJobService) List(ctx context.Context, userID string) ([]models.SavedJob, error) {
	return s.savedJobs.ListByUser(ctx, userID)
}
