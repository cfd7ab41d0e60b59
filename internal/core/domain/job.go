package domain

import "time"

// EmploymentType classifies how a position is contracted.
type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "full-time"
	EmploymentPartTime  EmploymentType = "part-time"
	EmploymentContract  EmploymentType = "contract"
	EmploymentTemporary EmploymentType = "temporary"
)

// ExperienceLevel classifies the seniority a posting targets.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// JobPosting is the core aggregate for job market data: the position, its
// salary band, and the skills it demands.
type JobPosting struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	Title           string          `json:"title" bson:"title"`
	Company         string          `json:"company" bson:"company"`
	Location        string          `json:"location,omitempty" bson:"location,omitempty"`
	Description     string          `json:"description,omitempty" bson:"description,omitempty"`
	EmploymentType  EmploymentType  `json:"employment_type" bson:"employment_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level" bson:"experience_level"`

	SalaryMin      *float64 `json:"salary_min" bson:"salary_min,omitempty"`
	SalaryMax      *float64 `json:"salary_max" bson:"salary_max,omitempty"`
	SalaryCurrency string   `json:"salary_currency" bson:"salary_currency"`

	RequiredSkills  []string `json:"required_skills" bson:"required_skills"`
	PreferredSkills []string `json:"preferred_skills" bson:"preferred_skills"`

	RemoteAllowed  bool   `json:"remote_allowed" bson:"remote_allowed"`
	IsActive       bool   `json:"is_active" bson:"is_active"`
	PostedByUserID string `json:"posted_by_user_id,omitempty" bson:"posted_by_user_id,omitempty"`

	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	ExpiresAt *time.Time `json:"expires_at" bson:"expires_at,omitempty"`
}

// ValidSalaryRange reports whether the min/max salary pair is coherent.
// Either bound may be absent.
func (j *JobPosting) ValidSalaryRange() bool {
	if j.SalaryMin == nil || j.SalaryMax == nil {
		return true
	}
	return *j.SalaryMax >= *j.SalaryMin
}
