package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanuchaudhary/Job-Portal/internal/dtos"
	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/repositories"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

func createJobRequest() dtos.CreateJobRequest {
	return dtos.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Own the Go services",
		Location:    "Remote",
		Type:        "Full-time",
		Requirement: "3+ years Go",
	}
}

func TestCreateJob_SetsOwnerAndOpen(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewJobService(store.Jobs(), store.Users(), store.Companies())

	recruiter := seedUser(t, store, "recruiter@example.com", models.RoleRecruiter)

	job, err := svc.Create(context.Background(), recruiter.ID, createJobRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, recruiter.ID, job.RecruiterID)
	assert.Nil(t, job.CompanyID, "no company given posts independently")
	assert.True(t, job.IsOpen, "new postings are open")
}

func TestCreateJob_CandidateForbidden(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewJobService(store.Jobs(), store.Users(), store.Companies())

	candidate := seedUser(t, store, "candidate@example.com", models.RoleCandidate)

	_, err := svc.Create(context.Background(), candidate.ID, createJobRequest())
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestCreateJob_UnknownCaller(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewJobService(store.Jobs(), store.Users(), store.Companies())

	_, err := svc.Create(context.Background(), "no-such-user", createJobRequest())
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestCreateJob_LinksExistingCompany(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewJobService(store.Jobs(), store.Users(), store.Companies())

	recruiter := seedUser(t, store, "recruiter@example.com", models.RoleRecruiter)
	company := seedCompany(t, store, "Acme")

	req := createJobRequest()
	req.CompanyID = company.ID

	job, err := svc.Create(context.Background(), recruiter.ID, req)
	require.NoError(t, err)
	require.NotNil(t, job.CompanyID)
	assert.Equal(t, company.ID, *job.CompanyID)

	// List attaches the company record
	jobs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.NotNil(t, jobs[0].Company)
	assert.Equal(t, "Acme", jobs[0].Company.Name)
}

func TestCreateJob_UnknownCompany(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewJobService(store.Jobs(), store.Users(), store.Companies())

	recruiter := seedUser(t, store, "recruiter@example.com", models.RoleRecruiter)

	req := createJobRequest()
	req.CompanyID = "no-such-company"

	_, err := svc.Create(context.Background(), recruiter.ID, req)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestFindJobs_TitleSubstring(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := NewJobService(store.Jobs(), store.Users(), store.Companies())

	recruiter := seedUser(t, store, "recruiter@example.com", models.RoleRecruiter)
	seedJob(t, store, recruiter.ID, "Senior Backend Engineer")
	seedJob(t, store, recruiter.ID, "Product Designer")

	found, err := svc.Find(context.Background(), dtos.FindJobRequest{Title: "backend"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Senior Backend Engineer", found[0].Title)

	found, err = svc.Find(context.Background(), dtos.FindJobRequest{Title: "intern"})
	require.NoError(t, err)
	assert.Empty(t, found)
}
