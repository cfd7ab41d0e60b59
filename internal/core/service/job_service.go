package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/api/metrics"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

const (
	defaultJobPageSize = 10
	maxPageSize        = 100
)

// JobService implements job posting use cases.
type JobService struct {
	repo       ports.JobRepository
	dispatcher ports.TaskDispatcher
	logger     zerolog.Logger
}

func NewJobService(repo ports.JobRepository, dispatcher ports.TaskDispatcher, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, dispatcher: dispatcher, logger: logger}
}

// Create stores a new posting owned by the acting user.
func (s *JobService) Create(ctx context.Context, in ports.CreateJobInput, actor *domain.User) (*domain.JobPosting, error) {
	now := time.Now().UTC()
	currency := in.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}

	job := &domain.JobPosting{
		Title:           in.Title,
		Company:         in.Company,
		Location:        in.Location,
		Description:     in.Description,
		EmploymentType:  domain.EmploymentType(in.EmploymentType),
		ExperienceLevel: domain.ExperienceLevel(in.ExperienceLevel),
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		SalaryCurrency:  currency,
		RequiredSkills:  emptyIfNil(in.RequiredSkills),
		PreferredSkills: emptyIfNil(in.PreferredSkills),
		RemoteAllowed:   in.RemoteAllowed,
		IsActive:        true,
		PostedByUserID:  actor.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       in.ExpiresAt,
	}
	if !job.ValidSalaryRange() {
		return nil, domain.ErrInvalidSalaryRange
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(created.EmploymentType)).Inc()
	s.logger.Info().
		Str("job_id", created.ID).
		Str("company", created.Company).
		Str("posted_by", actor.Username).
		Msg("job posting created")
	return created, nil
}

// Get returns a posting and records the view for analytics after the fact.
func (s *JobService) Get(ctx context.Context, id string) (*domain.JobPosting, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.dispatcher.Enqueue(ports.AnalyticsTask{Kind: ports.TaskJobView, JobID: job.ID})
	return job, nil
}

// List returns a page of postings matching filter plus the total count.
func (s *JobService) List(ctx context.Context, filter ports.ListJobsFilter) (*ports.ListJobsResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultJobPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	jobs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListJobsResult{
		Total:    total,
		Jobs:     jobs,
		Page:     filter.Skip/filter.Limit + 1,
		PageSize: filter.Limit,
	}, nil
}

// Update applies a partial update. Only the posting owner or an admin may
// modify a posting; everyone else gets ErrForbidden.
func (s *JobService) Update(ctx context.Context, id string, upd ports.JobUpdate, actor *domain.User) (*domain.JobPosting, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(job, actor); err != nil {
		return nil, err
	}

	min, max := job.SalaryMin, job.SalaryMax
	if upd.SalaryMin != nil {
		min = upd.SalaryMin
	}
	if upd.SalaryMax != nil {
		max = upd.SalaryMax
	}
	if min != nil && max != nil && *max < *min {
		return nil, domain.ErrInvalidSalaryRange
	}

	return s.repo.Update(ctx, id, upd)
}

// Deactivate soft-deletes a posting. Calling it on an already inactive
// posting is a no-op, not an error.
func (s *JobService) Deactivate(ctx context.Context, id string, actor *domain.User) (*domain.JobPosting, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(job, actor); err != nil {
		return nil, err
	}

	inactive := false
	updated, err := s.repo.Update(ctx, id, ports.JobUpdate{IsActive: &inactive})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", id).Str("by", actor.Username).Msg("job posting deactivated")
	return updated, nil
}

// Delete permanently removes a posting. Role gating (admin only) happens in
// the router.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("job_id", id).Msg("job posting deleted")
	return nil
}

// Analyze enqueues one demand-analysis task per required skill and returns
// how many were scheduled. The tasks run after the 202 response is sent.
func (s *JobService) Analyze(ctx context.Context, id string) (int, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}

	for _, skill := range job.RequiredSkills {
		s.dispatcher.Enqueue(ports.AnalyticsTask{
			Kind:  ports.TaskSkillAnalysis,
			JobID: job.ID,
			Skill: skill,
		})
	}
	return len(job.RequiredSkills), nil
}

// checkOwnership allows admins and the posting owner through.
func (s *JobService) checkOwnership(job *domain.JobPosting, actor *domain.User) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if job.PostedByUserID != actor.ID {
		return domain.ErrForbidden
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
