package ports

import (
	"context"
	"time"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
)

// ListJobsFilter carries all query parameters for listing job postings.
type ListJobsFilter struct {
	Company         string   // optional: partial, case-insensitive
	Location        string   // optional: partial, case-insensitive
	RemoteOnly      bool     // true = only postings with remote_allowed
	ExperienceLevel string   // optional: exact match
	EmploymentType  string   // optional: exact match
	MinSalary       *float64 // optional: salary_min >= MinSalary
	MaxSalary       *float64 // optional: salary_max <= MaxSalary
	Skills          []string // optional: every skill must appear in required or preferred
	ActiveOnly      bool
	SortBy          string // defaults to created_at
	SortOrder       string // "asc" or "desc"
	Skip            int
	Limit           int // capped at 100 by the handler
}

// JobUpdate holds the mutable fields of a posting; nil means "leave unchanged".
type JobUpdate struct {
	Title           *string
	Company         *string
	Location        *string
	Description     *string
	EmploymentType  *string
	ExperienceLevel *string
	SalaryMin       *float64
	SalaryMax       *float64
	RequiredSkills  []string
	PreferredSkills []string
	RemoteAllowed   *bool
	IsActive        *bool
	ExpiresAt       *time.Time
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error)
	FindByID(ctx context.Context, id string) (*domain.JobPosting, error)
	// List returns a page of postings matching filter and the total count.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.JobPosting, int64, error)
	Update(ctx context.Context, id string, upd JobUpdate) (*domain.JobPosting, error)
	Delete(ctx context.Context, id string) error
}
