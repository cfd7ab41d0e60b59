package ports

import (
	"context"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
)

// ListSkillsFilter carries all query parameters for listing skills.
type ListSkillsFilter struct {
	Category  string   // optional: exact match
	MinDemand *float64 // optional: demand_score >= MinDemand
	Search    string   // optional: partial, case-insensitive, on name or description
	SortBy    string   // defaults to demand_score
	SortOrder string   // "asc" or "desc"
	Skip      int
	Limit     int
}

// SkillUpdate holds the mutable fields of a skill; nil means "leave unchanged".
type SkillUpdate struct {
	Name          *string
	Category      *string
	Description   *string
	DemandScore   *float64
	GrowthRate    *float64
	RelatedSkills *string
}

// SkillRepository defines persistence operations for skills.
// Create and Update must surface domain.ErrSkillExists on a duplicate name.
type SkillRepository interface {
	Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	// FindByName matches the skill name case-insensitively.
	FindByName(ctx context.Context, name string) (*domain.Skill, error)
	List(ctx context.Context, filter ListSkillsFilter) ([]*domain.Skill, int64, error)
	// Trending returns up to limit skills ordered by demand_score desc,
	// growth_rate desc, optionally scoped to a category.
	Trending(ctx context.Context, category string, limit int) ([]*domain.Skill, int64, error)
	Update(ctx context.Context, id string, upd SkillUpdate) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}
