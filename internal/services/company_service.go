package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hanuchaudhary/Job-Portal/internal/dtos"
	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/repositories"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type CompanyService struct {
	companies repositories.CompanyRepository
}

func NewCompanyService(companies repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// Create registers a company. Names are unique; a taken name fails with
// ErrConflict.
func (s *CompanyService) Create(ctx context.Context, req dtos.CreateCompanyRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if _, err := s.companies.FindByName(ctx, name); err == nil {
		return nil, fmt.Errorf("company %q: %w", name, shared.ErrConflict)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("checking company name: %w", err)
	}

	company := &models.Company{
		Name: name,
		Logo: req.Logo,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}
	return company, nil
}

// List returns every company with its jobs attached.
func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.companies.List(ctx)
}

// Find matches the name filter case-insensitively; no match is an empty
// result, not an error.
func (s *CompanyService) Find(ctx context.Context, req dtos.FindCompanyRequest) ([]models.Company, error) {
	return s.companies.SearchByName(ctx, req.Name)
}
