package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

// --- Request / Response types ---

type createJobRequest struct {
	Title           string     `json:"title" validate:"required,min=5,max=200"`
	Company         string     `json:"company" validate:"required,min=2,max=200"`
	Location        string     `json:"location,omitempty"`
	Description     string     `json:"description,omitempty"`
	EmploymentType  string     `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract temporary"`
	ExperienceLevel string     `json:"experience_level" validate:"omitempty,oneof=entry mid senior executive"`
	SalaryMin       *float64   `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *float64   `json:"salary_max" validate:"omitempty,gte=0"`
	SalaryCurrency  string     `json:"salary_currency" validate:"omitempty,max=3"`
	RequiredSkills  []string   `json:"required_skills"`
	PreferredSkills []string   `json:"preferred_skills"`
	RemoteAllowed   bool       `json:"remote_allowed"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

func (r *createJobRequest) toInput() ports.CreateJobInput {
	employmentType := r.EmploymentType
	if employmentType == "" {
		employmentType = string(domain.EmploymentFullTime)
	}
	experienceLevel := r.ExperienceLevel
	if experienceLevel == "" {
		experienceLevel = string(domain.ExperienceMid)
	}
	return ports.CreateJobInput{
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		EmploymentType:  employmentType,
		ExperienceLevel: experienceLevel,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		SalaryCurrency:  r.SalaryCurrency,
		RequiredSkills:  r.RequiredSkills,
		PreferredSkills: r.PreferredSkills,
		RemoteAllowed:   r.RemoteAllowed,
		ExpiresAt:       r.ExpiresAt,
	}
}

type updateJobRequest struct {
	Title           *string    `json:"title" validate:"omitempty,min=5,max=200"`
	Company         *string    `json:"company" validate:"omitempty,min=2,max=200"`
	Location        *string    `json:"location"`
	Description     *string    `json:"description"`
	EmploymentType  *string    `json:"employment_type" validate:"omitempty,oneof=full-time part-time contract temporary"`
	ExperienceLevel *string    `json:"experience_level" validate:"omitempty,oneof=entry mid senior executive"`
	SalaryMin       *float64   `json:"salary_min" validate:"omitempty,gte=0"`
	SalaryMax       *float64   `json:"salary_max" validate:"omitempty,gte=0"`
	RequiredSkills  []string   `json:"required_skills"`
	PreferredSkills []string   `json:"preferred_skills"`
	RemoteAllowed   *bool      `json:"remote_allowed"`
	IsActive        *bool      `json:"is_active"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

func (r *updateJobRequest) toUpdate() ports.JobUpdate {
	return ports.JobUpdate{
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		EmploymentType:  r.EmploymentType,
		ExperienceLevel: r.ExperienceLevel,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		RequiredSkills:  r.RequiredSkills,
		PreferredSkills: r.PreferredSkills,
		RemoteAllowed:   r.RemoteAllowed,
		IsActive:        r.IsActive,
		ExpiresAt:       r.ExpiresAt,
	}
}

type jobListResponse struct {
	Total    int64                `json:"total"`
	Jobs     []*domain.JobPosting `json:"jobs"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

type analyzeJobResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	JobID          string `json:"job_id"`
	TasksScheduled int    `json:"tasks_scheduled"`
}

// --- Query parsing ---

// parseJobFilter reads the list query parameters, applying the documented
// defaults (skip=0, limit=10, active_only=true, sort created_at desc).
func parseJobFilter(c echo.Context) ports.ListJobsFilter {
	filter := ports.ListJobsFilter{
		Company:         c.QueryParam("company"),
		Location:        c.QueryParam("location"),
		RemoteOnly:      queryBool(c, "remote_only", false),
		ExperienceLevel: c.QueryParam("experience_level"),
		EmploymentType:  c.QueryParam("employment_type"),
		MinSalary:       queryFloat(c, "min_salary"),
		MaxSalary:       queryFloat(c, "max_salary"),
		Skills:          queryCSV(c, "skills"),
		ActiveOnly:      queryBool(c, "active_only", true),
		SortBy:          queryDefault(c, "sort_by", "created_at"),
		SortOrder:       queryDefault(c, "sort_order", "desc"),
		Skip:            queryInt(c, "skip", 0),
		Limit:           queryInt(c, "limit", 10),
	}
	return filter
}

func queryDefault(c echo.Context, name, fallback string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return fallback
}

func queryInt(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func queryBool(c echo.Context, name string, fallback bool) bool {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func queryFloat(c echo.Context, name string) *float64 {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// queryCSV splits a comma-separated parameter, trimming whitespace and
// dropping empty entries.
func queryCSV(c echo.Context, name string) []string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
