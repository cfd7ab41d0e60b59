package ports

import (
	"context"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
)

// CreateSkillInput carries all data needed to create a skill.
type CreateSkillInput struct {
	Name          string
	Category      string
	Description   string
	DemandScore   float64
	GrowthRate    *float64
	RelatedSkills string
}

// ListSkillsResult is returned by List and Trending.
type ListSkillsResult struct {
	Total    int64
	Skills   []*domain.Skill
	Page     int
	PageSize int
}

// SkillService defines use-case operations for skills. The router restricts
// mutations to admins; reads are public.
type SkillService interface {
	Create(ctx context.Context, in CreateSkillInput) (*domain.Skill, error)
	Get(ctx context.Context, id string) (*domain.Skill, error)
	GetByName(ctx context.Context, name string) (*domain.Skill, error)
	List(ctx context.Context, filter ListSkillsFilter) (*ListSkillsResult, error)
	Trending(ctx context.Context, category string, limit int) (*ListSkillsResult, error)
	Update(ctx context.Context, id string, upd SkillUpdate) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}
