package ports

import (
	"context"
	"time"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
)

// CreateJobInput carries all data needed to create a posting.
type CreateJobInput struct {
	Title           string
	Company         string
	Location        string
	Description     string
	EmploymentType  string
	ExperienceLevel string
	SalaryMin       *float64
	SalaryMax       *float64
	SalaryCurrency  string
	RequiredSkills  []string
	PreferredSkills []string
	RemoteAllowed   bool
	ExpiresAt       *time.Time
}

// ListJobsResult is returned by List.
type ListJobsResult struct {
	Total    int64
	Jobs     []*domain.JobPosting
	Page     int
	PageSize int
}

// JobService defines use-case operations for job postings. Mutating
// operations take the acting user so ownership rules can be enforced:
// only the posting employer or an admin may update or deactivate.
type JobService interface {
	Create(ctx context.Context, in CreateJobInput, actor *domain.User) (*domain.JobPosting, error)
	Get(ctx context.Context, id string) (*domain.JobPosting, error)
	List(ctx context.Context, filter ListJobsFilter) (*ListJobsResult, error)
	Update(ctx context.Context, id string, upd JobUpdate, actor *domain.User) (*domain.JobPosting, error)
	// Deactivate soft-deletes a posting (is_active=false); idempotent.
	Deactivate(ctx context.Context, id string, actor *domain.User) (*domain.JobPosting, error)
	// Delete permanently removes a posting; the router restricts it to admins.
	Delete(ctx context.Context, id string) error
	// Analyze schedules background demand analysis for the posting's
	// required skills and returns the number of tasks enqueued.
	Analyze(ctx context.Context, id string) (int, error)
}
