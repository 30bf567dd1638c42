package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the fixed capability class of a user, set at registration and
// never changed afterwards.
type Role string

const (
	RoleRecruiter Role = "Recruiter"
	RoleCandidate Role = "Candidate"
)

func (r Role) Valid() bool {
	return r == RoleRecruiter || r == RoleCandidate
}

// ApplicationStatus is the lifecycle state of an application. Transitions are
// not constrained: an authorized recruiter may set any of the four values.
type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "Applied"
	StatusInterviewing ApplicationStatus = "Interviewing"
	StatusHired        ApplicationStatus = "Hired"
	StatusRejected     ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusHired, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:320;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"password"` // bcrypt hash; serialized on raw reads, stripped from auth responses
	FullName  string    `gorm:"size:120;not null" json:"fullName"`
	Role      Role      `gorm:"size:16;not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Jobs         []Job         `gorm:"foreignKey:RecruiterID;constraint:OnDelete:CASCADE" json:"jobs,omitempty"`
	Applications []Application `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
	SavedJobs    []SavedJob    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"savedJobs,omitempty"`
}

type Company struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:120;not null" json:"name"`
	Logo      string    `gorm:"size:500" json:"logo"`
	CreatedAt time.Time `json:"createdAt"`

	Jobs []Job `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"jobs,omitempty"`
}

type Job struct {
	ID          string   `gorm:"primaryKey;size:36" json:"id"`
	RecruiterID string   `gorm:"size:36;not null;index" json:"recruiterId"`
	Recruiter   *User    `gorm:"foreignKey:RecruiterID" json:"recruiter,omitempty"`
	CompanyID   *string  `gorm:"size:36;index" json:"companyId"` // nil for an independent posting
	Company     *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`

	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:120" json:"location"`
	Type        string    `gorm:"size:60" json:"type"`
	Requirement string    `gorm:"type:text" json:"requirement"`
	IsOpen      bool      `gorm:"default:true" json:"isOpen"`
	CreatedAt   time.Time `json:"createdAt"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
	SavedJobs    []SavedJob    `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"savedJobs,omitempty"`
}

type Application struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	ApplicantID string  `gorm:"size:36;not null;index" json:"applicantId"`
	Applicant   *User   `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	JobID       *string `gorm:"size:36;index" json:"jobId"`
	Job         *Job    `gorm:"foreignKey:JobID" json:"job,omitempty"`

	Status     ApplicationStatus `gorm:"size:16;not null;default:'Applied'" json:"status"`
	IsApplied  bool              `gorm:"default:true" json:"isApplied"`
	Resume     string            `gorm:"size:500" json:"resume"` // opaque reference, no file handling
	Skills     string            `gorm:"type:text" json:"skills"`
	Experience string            `gorm:"type:text" json:"experience"`
	Education  string            `gorm:"type:text" json:"education"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// SavedJob is a bookmark linking a user to a job, nothing more.
type SavedJob struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"userId"`
	JobID     string    `gorm:"size:36;not null;index" json:"jobId"`
	Job       *Job      `gorm:"foreignKey:JobID" json:"job,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (s *SavedJob) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
