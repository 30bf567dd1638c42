package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	// FindByApplicantAndJob backs the duplicate-application existence check;
	// no unique constraint exists underneath it.
	FindByApplicantAndJob(ctx context.Context, applicantID, jobID string) (*models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)
	Save(ctx context.Context, application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByApplicantAndJob(ctx context.Context, applicantID, jobID string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		First(&application, "applicant_id = ? AND job_id = ?", applicantID, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	applications := []models.Application{}
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Job").
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) Save(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}
