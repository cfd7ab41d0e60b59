package domain

import "time"

// SkillCategory classifies a skill for filtering and trending queries.
type SkillCategory string

const (
	CategoryTechnical      SkillCategory = "technical"
	CategorySoft           SkillCategory = "soft"
	CategoryDomainSpecific SkillCategory = "domain-specific"
)

// Skill tracks an in-demand workforce skill and its market metrics.
// Name is globally unique (case-preserving, looked up case-insensitively).
type Skill struct {
	ID       string        `json:"id" bson:"_id,omitempty"`
	Name     string        `json:"name" bson:"name"`
	Category SkillCategory `json:"category" bson:"category"`

	// DemandScore is on a 0-100 scale; GrowthRate is percent year-over-year.
	DemandScore float64  `json:"demand_score" bson:"demand_score"`
	GrowthRate  *float64 `json:"growth_rate" bson:"growth_rate,omitempty"`

	Description   string `json:"description,omitempty" bson:"description,omitempty"`
	RelatedSkills string `json:"related_skills,omitempty" bson:"related_skills,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
