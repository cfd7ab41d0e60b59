package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

type stubSkillService struct {
	createFn    func(ctx context.Context, in ports.CreateSkillInput) (*domain.Skill, error)
	getFn       func(ctx context.Context, id string) (*domain.Skill, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Skill, error)
	listFn      func(ctx context.Context, filter ports.ListSkillsFilter) (*ports.ListSkillsResult, error)
	trendingFn  func(ctx context.Context, category string, limit int) (*ports.ListSkillsResult, error)
	updateFn    func(ctx context.Context, id string, upd ports.SkillUpdate) (*domain.Skill, error)
	deleteFn    func(ctx context.Context, id string) error
}

func (s *stubSkillService) Create(ctx context.Context, in ports.CreateSkillInput) (*domain.Skill, error) {
	return s.createFn(ctx, in)
}

func (s *stubSkillService) Get(ctx context.Context, id string) (*domain.Skill, error) {
	return s.getFn(ctx, id)
}

func (s *stubSkillService) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	return s.getByNameFn(ctx, name)
}

func (s *stubSkillService) List(ctx context.Context, filter ports.ListSkillsFilter) (*ports.ListSkillsResult, error) {
	return s.listFn(ctx, filter)
}

func (s *stubSkillService) Trending(ctx context.Context, category string, limit int) (*ports.ListSkillsResult, error) {
	return s.trendingFn(ctx, category, limit)
}

func (s *stubSkillService) Update(ctx context.Context, id string, upd ports.SkillUpdate) (*domain.Skill, error) {
	return s.updateFn(ctx, id, upd)
}

func (s *stubSkillService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestSkillHandler_Create_DefaultsCategory(t *testing.T) {
	stub := &stubSkillService{
		createFn: func(ctx context.Context, in ports.CreateSkillInput) (*domain.Skill, error) {
			if in.Category != "technical" {
				t.Fatalf("expected default category technical, got %q", in.Category)
			}
			return &domain.Skill{ID: "skill-1", Name: in.Name}, nil
		},
	}
	h := NewSkillHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/v1/skills", `{"name":"Go","demand_score":90}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestSkillHandler_Create_BadCategoryRejected(t *testing.T) {
	stub := &stubSkillService{
		createFn: func(ctx context.Context, in ports.CreateSkillInput) (*domain.Skill, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewSkillHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/skills", `{"name":"Go","category":"mystic"}`)
	if err := h.Create(c); err == nil {
		t.Fatalf("expected validation error for bad category")
	}
}

func TestSkillHandler_Create_DuplicatePropagates(t *testing.T) {
	stub := &stubSkillService{
		createFn: func(ctx context.Context, in ports.CreateSkillInput) (*domain.Skill, error) {
			return nil, domain.ErrSkillExists
		},
	}
	h := NewSkillHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/v1/skills", `{"name":"Go"}`)
	if err := h.Create(c); err != domain.ErrSkillExists {
		t.Fatalf("expected ErrSkillExists, got %v", err)
	}
}

func TestSkillHandler_List_ParsesQuery(t *testing.T) {
	stub := &stubSkillService{
		listFn: func(ctx context.Context, filter ports.ListSkillsFilter) (*ports.ListSkillsResult, error) {
			if filter.Category != "technical" || filter.Search != "cloud" {
				t.Fatalf("filters not parsed: %+v", filter)
			}
			if filter.MinDemand == nil || *filter.MinDemand != 70 {
				t.Fatalf("min_demand not parsed: %+v", filter.MinDemand)
			}
			if filter.SortBy != "growth_rate" || filter.SortOrder != "asc" {
				t.Fatalf("sort not parsed: %s %s", filter.SortBy, filter.SortOrder)
			}
			return &ports.ListSkillsResult{Skills: []*domain.Skill{}, Page: 1, PageSize: 20}, nil
		},
	}
	h := NewSkillHandler(stub)

	c, rec := newTestContext(http.MethodGet,
		"/v1/skills?category=technical&search=cloud&min_demand=70&sort_by=growth_rate&sort_order=asc", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSkillHandler_GetByName(t *testing.T) {
	stub := &stubSkillService{
		getByNameFn: func(ctx context.Context, name string) (*domain.Skill, error) {
			if name != "kubernetes" {
				t.Fatalf("unexpected name %q", name)
			}
			return &domain.Skill{ID: "skill-1", Name: "Kubernetes"}, nil
		},
	}
	h := NewSkillHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/v1/skills/name/kubernetes", "")
	c.SetParamNames("name")
	c.SetParamValues("kubernetes")

	if err := h.GetByName(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Kubernetes" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestSkillHandler_Trending_DefaultLimit(t *testing.T) {
	stub := &stubSkillService{
		trendingFn: func(ctx context.Context, category string, limit int) (*ports.ListSkillsResult, error) {
			if limit != 10 {
				t.Fatalf("expected default limit 10, got %d", limit)
			}
			if category != "soft" {
				t.Fatalf("expected category soft, got %q", category)
			}
			return &ports.ListSkillsResult{Skills: []*domain.Skill{}, Page: 1, PageSize: limit}, nil
		},
	}
	h := NewSkillHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/v1/skills/trending/top?category=soft", "")
	if err := h.Trending(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
