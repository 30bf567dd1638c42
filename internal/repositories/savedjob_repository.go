package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type SavedJobRepository interface {
	Create(ctx context.Context, savedJob *models.SavedJob) error
	FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.SavedJob, error)
	ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error)
	DeleteByUserAndJob(ctx context.Context, userID, jobID string) error
}

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Create(ctx context.Context, savedJob *models.SavedJob) error {
	return r.db.WithContext(ctx).Create(savedJob).Error
}

func (r *savedJobRepository) FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.SavedJob, error) {
	var savedJob models.SavedJob
	err := r.db.WithContext(ctx).
		First(&savedJob, "user_id = ? AND job_id = ?", userID, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &savedJob, nil
}

func (r *savedJobRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error) {
	savedJobs := []models.SavedJob{}
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&savedJobs).Error
	if err != nil {
		return nil, err
	}
	return savedJobs, nil
}

func (r *savedJobRepository) DeleteByUserAndJob(ctx context.Context, userID, jobID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.SavedJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
