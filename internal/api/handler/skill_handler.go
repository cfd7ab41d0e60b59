package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

// SkillHandler handles HTTP requests for the skill catalogue. Reads are
// public; the router restricts mutations to admins.
type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// Create handles POST /v1/skills.
//
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSkillRequest  true  "Skill details"
// @Success      201   {object}  domain.Skill
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/skills [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req createSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	skill, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, skill)
}

// List handles GET /v1/skills with filtering, sorting, and pagination.
//
// @Summary      List skills
// @Tags         skills
// @Produce      json
// @Param        skip        query  int     false  "records to skip"
// @Param        limit       query  int     false  "max records (1-100)"
// @Param        category    query  string  false  "exact category"
// @Param        min_demand  query  number  false  "minimum demand score"
// @Param        search      query  string  false  "partial match on name or description"
// @Param        sort_by     query  string  false  "sort field"
// @Param        sort_order  query  string  false  "asc or desc"
// @Success      200  {object}  skillListResponse
// @Router       /v1/skills [get]
func (h *SkillHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), parseSkillFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skillListResponse{
		Total:    result.Total,
		Skills:   result.Skills,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// Get handles GET /v1/skills/:id.
//
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill ID"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  map[string]string
// @Router       /v1/skills/{id} [get]
func (h *SkillHandler) Get(c echo.Context) error {
	skill, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

// GetByName handles GET /v1/skills/name/:name (case-insensitive).
//
// @Summary      Get a skill by name
// @Tags         skills
// @Produce      json
// @Param        name  path      string  true  "Skill name"
// @Success      200   {object}  domain.Skill
// @Failure      404   {object}  map[string]string
// @Router       /v1/skills/name/{name} [get]
func (h *SkillHandler) GetByName(c echo.Context) error {
	skill, err := h.service.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

// Trending handles GET /v1/skills/trending/top: top skills by demand score,
// ties broken on growth rate.
//
// @Summary      Top trending skills
// @Tags         skills
// @Produce      json
// @Param        limit     query  int     false  "number of skills (1-50)"
// @Param        category  query  string  false  "exact category"
// @Success      200  {object}  skillListResponse
// @Router       /v1/skills/trending/top [get]
func (h *SkillHandler) Trending(c echo.Context) error {
	result, err := h.service.Trending(c.Request().Context(), c.QueryParam("category"), queryInt(c, "limit", 10))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skillListResponse{
		Total:    result.Total,
		Skills:   result.Skills,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// Update handles PUT /v1/skills/:id.
//
// @Summary      Update a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Skill ID"
// @Param        body  body      updateSkillRequest  true  "Fields to update"
// @Success      200   {object}  domain.Skill
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/skills/{id} [put]
func (h *SkillHandler) Update(c echo.Context) error {
	var req updateSkillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	skill, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

// Delete handles DELETE /v1/skills/:id. Permanent removal, admin only.
//
// @Summary      Delete a skill
// @Tags         skills
// @Security     BearerAuth
// @Param        id  path  string  true  "Skill ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/skills/{id} [delete]
func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
