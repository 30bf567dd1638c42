package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

// MemoryStore keeps all five entity collections in process memory and hands
// out repository views over them. It mirrors what the relational schema
// provides: unique email/name checks on insert and cascade removal of
// dependent rows. Slices keep insertion order, which doubles as
// creation-ascending order.
type MemoryStore struct {
	mu           sync.Mutex
	users        []models.User
	companies    []models.Company
	jobs         []models.Job
	applications []models.Application
	savedJobs    []models.SavedJob
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Users() UserRepository               { return &memoryUsers{s} }
func (s *MemoryStore) Companies() CompanyRepository        { return &memoryCompanies{s} }
func (s *MemoryStore) Jobs() JobRepository                 { return &memoryJobs{s} }
func (s *MemoryStore) Applications() ApplicationRepository { return &memoryApplications{s} }
func (s *MemoryStore) SavedJobs() SavedJobRepository       { return &memorySavedJobs{s} }

// --- unexported lookups; callers hold s.mu ---

func (s *MemoryStore) userByID(id string) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *MemoryStore) companyByID(id string) (models.Company, bool) {
	for _, c := range s.companies {
		if c.ID == id {
			return c, true
		}
	}
	return models.Company{}, false
}

func (s *MemoryStore) jobByID(id string) (models.Job, bool) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return models.Job{}, false
}

// jobWithCompany returns a detached copy with the Company association filled.
func (s *MemoryStore) jobWithCompany(j models.Job) models.Job {
	job := j
	if job.CompanyID != nil {
		if c, ok := s.companyByID(*job.CompanyID); ok {
			job.Company = &c
		}
	}
	return job
}

func fillID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// --- users ---

type memoryUsers struct {
	s *MemoryStore
}

func (m *memoryUsers) Create(ctx context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate key value violates unique constraint on users.email")
		}
	}
	fillID(&user.ID)
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.s.users = append(m.s.users, *user)
	return nil
}

func (m *memoryUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if u, ok := m.s.userByID(id); ok {
		return &u, nil
	}
	return nil, shared.ErrNotFound
}

func (m *memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memoryUsers) FindProfile(ctx context.Context, id string) (*models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	u, ok := m.s.userByID(id)
	if !ok {
		return nil, shared.ErrNotFound
	}

	u.Applications = []models.Application{}
	for _, a := range m.s.applications {
		if a.ApplicantID != id {
			continue
		}
		app := a
		if app.JobID != nil {
			if j, ok := m.s.jobByID(*app.JobID); ok {
				job := m.s.jobWithCompany(j)
				app.Job = &job
			}
		}
		u.Applications = append(u.Applications, app)
	}

	u.Jobs = []models.Job{}
	for _, j := range m.s.jobs {
		if j.RecruiterID != id {
			continue
		}
		job := j
		job.Applications = []models.Application{}
		for _, a := range m.s.applications {
			if a.JobID != nil && *a.JobID == job.ID {
				app := a
				if applicant, ok := m.s.userByID(app.ApplicantID); ok {
					app.Applicant = &applicant
				}
				job.Applications = append(job.Applications, app)
			}
		}
		u.Jobs = append(u.Jobs, job)
	}

	u.SavedJobs = []models.SavedJob{}
	for _, sj := range m.s.savedJobs {
		if sj.UserID != id {
			continue
		}
		saved := sj
		if j, ok := m.s.jobByID(saved.JobID); ok {
			job := j
			saved.Job = &job
		}
		u.SavedJobs = append(u.SavedJobs, saved)
	}
	return &u, nil
}

func (m *memoryUsers) Search(ctx context.Context, filter string) ([]models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	needle := strings.ToLower(filter)
	users := []models.User{}
	for _, u := range m.s.users {
		if strings.Contains(strings.ToLower(u.FullName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *memoryUsers) Save(ctx context.Context, user *models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i, u := range m.s.users {
		if u.ID == user.ID {
			user.UpdatedAt = time.Now()
			m.s.users[i] = *user
			return nil
		}
	}
	return shared.ErrNotFound
}

// Delete removes the user and, like the schema's cascade constraints, every
// job the user posted, every application the user filed or that targets one
// of those jobs, and every bookmark held by the user or pointing at one of
// those jobs.
func (m *memoryUsers) Delete(ctx context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, ok := m.s.userByID(id); !ok {
		return shared.ErrNotFound
	}

	ownedJobs := map[string]bool{}
	remainingJobs := m.s.jobs[:0:0]
	for _, j := range m.s.jobs {
		if j.RecruiterID == id {
			ownedJobs[j.ID] = true
			continue
		}
		remainingJobs = append(remainingJobs, j)
	}
	m.s.jobs = remainingJobs

	remainingApps := m.s.applications[:0:0]
	for _, a := range m.s.applications {
		if a.ApplicantID == id || (a.JobID != nil && ownedJobs[*a.JobID]) {
			continue
		}
		remainingApps = append(remainingApps, a)
	}
	m.s.applications = remainingApps

	remainingSaved := m.s.savedJobs[:0:0]
	for _, sj := range m.s.savedJobs {
		if sj.UserID == id || ownedJobs[sj.JobID] {
			continue
		}
		remainingSaved = append(remainingSaved, sj)
	}
	m.s.savedJobs = remainingSaved

	remainingUsers := m.s.users[:0:0]
	for _, u := range m.s.users {
		if u.ID != id {
			remainingUsers = append(remainingUsers, u)
		}
	}
	m.s.users = remainingUsers
	return nil
}

// --- companies ---

type memoryCompanies struct {
	s *MemoryStore
}

func (m *memoryCompanies) Create(ctx context.Context, company *models.Company) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, c := range m.s.companies {
		if c.Name == company.Name {
			return fmt.Errorf("duplicate key value violates unique constraint on companies.name")
		}
	}
	fillID(&company.ID)
	company.CreatedAt = time.Now()
	m.s.companies = append(m.s.companies, *company)
	return nil
}

func (m *memoryCompanies) FindByID(ctx context.Context, id string) (*models.Company, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if c, ok := m.s.companyByID(id); ok {
		return &c, nil
	}
	return nil, shared.ErrNotFound
}

func (m *memoryCompanies) FindByName(ctx context.Context, name string) (*models.Company, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, c := range m.s.companies {
		if c.Name == name {
			company := c
			return &company, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memoryCompanies) withJobs(c models.Company) models.Company {
	company := c
	company.Jobs = []models.Job{}
	for _, j := range m.s.jobs {
		if j.CompanyID != nil && *j.CompanyID == company.ID {
			company.Jobs = append(company.Jobs, j)
		}
	}
	return company
}

func (m *memoryCompanies) List(ctx context.Context) ([]models.Company, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	companies := []models.Company{}
	for _, c := range m.s.companies {
		companies = append(companies, m.withJobs(c))
	}
	return companies, nil
}

func (m *memoryCompanies) SearchByName(ctx context.Context, filter string) ([]models.Company, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	needle := strings.ToLower(filter)
	companies := []models.Company{}
	for _, c := range m.s.companies {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			companies = append(companies, m.withJobs(c))
		}
	}
	return companies, nil
}

// --- jobs ---

type memoryJobs struct {
	s *MemoryStore
}

func (m *memoryJobs) Create(ctx context.Context, job *models.Job) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	fillID(&job.ID)
	job.CreatedAt = time.Now()
	m.s.jobs = append(m.s.jobs, *job)
	return nil
}

func (m *memoryJobs) FindByID(ctx context.Context, id string) (*models.Job, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if j, ok := m.s.jobByID(id); ok {
		return &j, nil
	}
	return nil, shared.ErrNotFound
}

func (m *memoryJobs) List(ctx context.Context) ([]models.Job, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	jobs := []models.Job{}
	for _, j := range m.s.jobs {
		jobs = append(jobs, m.s.jobWithCompany(j))
	}
	return jobs, nil
}

func (m *memoryJobs) SearchByTitle(ctx context.Context, filter string) ([]models.Job, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	needle := strings.ToLower(filter)
	jobs := []models.Job{}
	for _, j := range m.s.jobs {
		if strings.Contains(strings.ToLower(j.Title), needle) {
			jobs = append(jobs, m.s.jobWithCompany(j))
		}
	}
	return jobs, nil
}

// --- applications ---

type memoryApplications struct {
	s *MemoryStore
}

func (m *memoryApplications) Create(ctx context.Context, application *models.Application) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	fillID(&application.ID)
	if application.Status == "" {
		application.Status = models.StatusApplied
	}
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	stored := *application
	stored.Applicant = nil
	stored.Job = nil
	m.s.applications = append(m.s.applications, stored)
	return nil
}

func (m *memoryApplications) FindByID(ctx context.Context, id string) (*models.Application, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, a := range m.s.applications {
		if a.ID == id {
			application := a
			return &application, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memoryApplications) FindByApplicantAndJob(ctx context.Context, applicantID, jobID string) (*models.Application, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, a := range m.s.applications {
		if a.ApplicantID == applicantID && a.JobID != nil && *a.JobID == jobID {
			application := a
			return &application, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memoryApplications) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	applications := []models.Application{}
	for _, a := range m.s.applications {
		if a.JobID == nil || *a.JobID != jobID {
			continue
		}
		app := a
		if applicant, ok := m.s.userByID(app.ApplicantID); ok {
			app.Applicant = &applicant
		}
		if j, ok := m.s.jobByID(*app.JobID); ok {
			job := j
			app.Job = &job
		}
		applications = append(applications, app)
	}
	return applications, nil
}

func (m *memoryApplications) Save(ctx context.Context, application *models.Application) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i, a := range m.s.applications {
		if a.ID == application.ID {
			application.UpdatedAt = time.Now()
			stored := *application
			stored.Applicant = nil
			stored.Job = nil
			m.s.applications[i] = stored
			return nil
		}
	}
	return shared.ErrNotFound
}

// --- saved jobs ---

type memorySavedJobs struct {
	s *MemoryStore
}

func (m *memorySavedJobs) Create(ctx context.Context, savedJob *models.SavedJob) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	fillID(&savedJob.ID)
	savedJob.CreatedAt = time.Now()
	stored := *savedJob
	stored.Job = nil
	m.s.savedJobs = append(m.s.savedJobs, stored)
	return nil
}

func (m *memorySavedJobs) FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.SavedJob, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, sj := range m.s.savedJobs {
		if sj.UserID == userID && sj.JobID == jobID {
			saved := sj
			return &saved, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m *memorySavedJobs) ListByUser(ctx context.Context, userID string) ([]models.SavedJob, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	savedJobs := []models.SavedJob{}
	for _, sj := range m.s.savedJobs {
		if sj.UserID != userID {
			continue
		}
		saved := sj
		if j, ok := m.s.jobByID(saved.JobID); ok {
			job := j
			saved.Job = &job
		}
		savedJobs = append(savedJobs, saved)
	}
	return savedJobs, nil
}

func (m *memorySavedJobs) DeleteByUserAndJob(ctx context.Context, userID, jobID string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i, sj := range m.s.savedJobs {
		if sj.UserID == userID && sj.JobID == jobID {
			m.s.savedJobs = append(m.s.savedJobs[:i], m.s.savedJobs[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}
