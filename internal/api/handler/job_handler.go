package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/api/middleware"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job posting operations.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /v1/jobs.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job posting details"
// @Success      201   {object}  domain.JobPosting
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domain.ErrUnauthenticated
	}

	job, err := h.service.Create(c.Request().Context(), req.toInput(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// List handles GET /v1/jobs with filtering, sorting, and pagination.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        skip              query  int     false  "records to skip"
// @Param        limit             query  int     false  "max records (1-100)"
// @Param        company           query  string  false  "partial company match"
// @Param        location          query  string  false  "partial location match"
// @Param        remote_only       query  bool    false  "only remote postings"
// @Param        experience_level  query  string  false  "exact experience level"
// @Param        employment_type   query  string  false  "exact employment type"
// @Param        min_salary        query  number  false  "salary_min lower bound"
// @Param        max_salary        query  number  false  "salary_max upper bound"
// @Param        skills            query  string  false  "comma-separated skills"
// @Param        sort_by           query  string  false  "sort field"
// @Param        sort_order        query  string  false  "asc or desc"
// @Param        active_only       query  bool    false  "only active postings (default true)"
// @Success      200  {object}  jobListResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), parseJobFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobListResponse{
		Total:    result.Total,
		Jobs:     result.Jobs,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// Get handles GET /v1/jobs/:id. The view is recorded asynchronously for
// analytics.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job posting ID"
// @Success      200  {object}  domain.JobPosting
// @Failure      404  {object}  map[string]string
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Update handles PUT /v1/jobs/:id. Employers may only update their own
// postings; admins may update any.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Job posting ID"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  domain.JobPosting
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domain.ErrUnauthenticated
	}

	job, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toUpdate(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Deactivate handles PATCH /v1/jobs/:id/deactivate (soft delete).
//
// @Summary      Deactivate a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job posting ID"
// @Success      200  {object}  domain.JobPosting
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/jobs/{id}/deactivate [patch]
func (h *JobHandler) Deactivate(c echo.Context) error {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		return domain.ErrUnauthenticated
	}

	job, err := h.service.Deactivate(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /v1/jobs/:id. Permanent removal, admin only.
//
// @Summary      Delete a job posting
// @Tags         jobs
// @Security     BearerAuth
// @Param        id  path  string  true  "Job posting ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Analyze handles POST /v1/jobs/:id/analyze: schedules background demand
// analysis for each required skill and returns 202 immediately.
//
// @Summary      Analyze a posting's required skills
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job posting ID"
// @Success      202  {object}  analyzeJobResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/jobs/{id}/analyze [post]
func (h *JobHandler) Analyze(c echo.Context) error {
	id := c.Param("id")
	scheduled, err := h.service.Analyze(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, analyzeJobResponse{
		Status:         "accepted",
		Message:        "skill analysis started in background",
		JobID:          id,
		TasksScheduled: scheduled,
	})
}
