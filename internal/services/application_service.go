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

// ApplicationService governs the application lifecycle: who may submit,
// who may read, who may move an application between statuses.
type ApplicationService struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
	users        repositories.UserRepository
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	users repositories.UserRepository,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		users:        users,
	}
}

// Submit files callerID's application for jobID. The checks run in a fixed
// order: job existence, then candidate role, then the duplicate check. The
// duplicate rule is an existence check rather than a storage constraint, so
// two truly concurrent submissions can both pass it.
func (s *ApplicationService) Submit(ctx context.Context, jobID, callerID string, req dtos.SubmitApplicationRequest) (*models.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", jobID, err)
	}

	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("caller is not a registered candidate: %w", shared.ErrForbidden)
		}
		return nil, fmt.Errorf("resolving caller: %w", err)
	}
	if caller.Role != models.RoleCandidate {
		return nil, fmt.Errorf("only candidates can apply: %w", shared.ErrForbidden)
	}

	if _, err := s.applications.FindByApplicantAndJob(ctx, caller.ID, job.ID); err == nil {
		return nil, fmt.Errorf("already applied to job %s: %w", job.ID, shared.ErrConflict)
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("checking existing application: %w", err)
	}

	application := &models.Application{
		ApplicantID: caller.ID,
		JobID:       &job.ID,
		Status:      models.StatusApplied,
		IsApplied:   true,
		Resume:      req.Resume,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Education:   req.Education,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}
	return application, nil
}

// ListForJob returns every application for the job, each with its applicant
// and job attached. Any recruiter may list any job's applications; the call
// is not restricted to the job's own recruiter.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID, callerID string) ([]models.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", jobID, err)
	}
	if err := s.requireRecruiter(ctx, callerID); err != nil {
		return nil, err
	}
	applications, err := s.applications.ListByJob(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	return applications, nil
}

// UpdateStatus sets the application's status to any of the four values.
// There is no transition graph: Hired back to Applied is as valid as Applied
// to Interviewing. Like ListForJob, any recruiter qualifies.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID string, status models.ApplicationStatus, callerID string) (*models.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, shared.ErrValidation)
	}
	if err := s.requireRecruiter(ctx, callerID); err != nil {
		return nil, err
	}
	application, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application %s: %w", applicationID, err)
	}
	application.Status = status
	if err := s.applications.Save(ctx, application); err != nil {
		return nil, fmt.Errorf("saving application: %w", err)
	}
	return application, nil
}

func (s *ApplicationService) requireRecruiter(ctx context.Context, callerID string) error {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("caller is not a recruiter: %w", shared.ErrForbidden)
		}
		return fmt.Errorf("resolving caller: %w", err)
	}
	if caller.Role != models.RoleRecruiter {
		return fmt.Errorf("only recruiters may do this: %w", shared.ErrForbidden)
	}
	return nil
}
