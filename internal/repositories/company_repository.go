package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id string) (*models.Company, error)
	FindByName(ctx context.Context, name string) (*models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
	SearchByName(ctx context.Context, filter string) ([]models.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) FindByID(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]models.Company, error) {
	companies := []models.Company{}
	if err := r.db.WithContext(ctx).Preload("Jobs").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) SearchByName(ctx context.Context, filter string) ([]models.Company, error) {
	companies := []models.Company{}
	err := r.db.WithContext(ctx).
		Preload("Jobs").
		Where("name ILIKE ?", "%"+filter+"%").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}
