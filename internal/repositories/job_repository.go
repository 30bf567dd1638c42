package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context) ([]models.Job, error)
	SearchByTitle(ctx context.Context, filter string) ([]models.Job, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]models.Job, error) {
	jobs := []models.Job{}
	if err := r.db.WithContext(ctx).Preload("Company").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) SearchByTitle(ctx context.Context, filter string) ([]models.Job, error) {
	jobs := []models.Job{}
	err := r.db.WithContext(ctx).
		Preload("Company").
		Where("title ILIKE ?", "%"+filter+"%").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
