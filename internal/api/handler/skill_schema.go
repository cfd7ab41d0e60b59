package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

// --- Request / Response types ---

type createSkillRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=100"`
	Category      string   `json:"category" validate:"omitempty,oneof=technical soft domain-specific"`
	Description   string   `json:"description,omitempty"`
	DemandScore   float64  `json:"demand_score" validate:"gte=0,lte=100"`
	GrowthRate    *float64 `json:"growth_rate"`
	RelatedSkills string   `json:"related_skills,omitempty"`
}

func (r *createSkillRequest) toInput() ports.CreateSkillInput {
	category := r.Category
	if category == "" {
		category = string(domain.CategoryTechnical)
	}
	return ports.CreateSkillInput{
		Name:          r.Name,
		Category:      category,
		Description:   r.Description,
		DemandScore:   r.DemandScore,
		GrowthRate:    r.GrowthRate,
		RelatedSkills: r.RelatedSkills,
	}
}

type updateSkillRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Category      *string  `json:"category" validate:"omitempty,oneof=technical soft domain-specific"`
	Description   *string  `json:"description"`
	DemandScore   *float64 `json:"demand_score" validate:"omitempty,gte=0,lte=100"`
	GrowthRate    *float64 `json:"growth_rate"`
	RelatedSkills *string  `json:"related_skills"`
}

func (r *updateSkillRequest) toUpdate() ports.SkillUpdate {
	return ports.SkillUpdate{
		Name:          r.Name,
		Category:      r.Category,
		Description:   r.Description,
		DemandScore:   r.DemandScore,
		GrowthRate:    r.GrowthRate,
		RelatedSkills: r.RelatedSkills,
	}
}

type skillListResponse struct {
	Total    int64           `json:"total"`
	Skills   []*domain.Skill `json:"skills"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// parseSkillFilter reads the list query parameters, applying the documented
// defaults (skip=0, limit=20, sort demand_score desc).
func parseSkillFilter(c echo.Context) ports.ListSkillsFilter {
	return ports.ListSkillsFilter{
		Category:  c.QueryParam("category"),
		MinDemand: queryFloat(c, "min_demand"),
		Search:    c.QueryParam("search"),
		SortBy:    queryDefault(c, "sort_by", "demand_score"),
		SortOrder: queryDefault(c, "sort_order", "desc"),
		Skip:      queryInt(c, "skip", 0),
		Limit:     queryInt(c, "limit", 20),
	}
}
