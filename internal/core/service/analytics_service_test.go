package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

func skillNamed(name string, score float64) *domain.Skill {
	return &domain.Skill{Name: name, Category: domain.CategoryTechnical, DemandScore: score}
}

type stubMarketClient struct {
	demand *ports.SkillDemand
	err    error
	calls  []string
}

func (c *stubMarketClient) AnalyzeSkillDemand(_ context.Context, skill string) (*ports.SkillDemand, error) {
	c.calls = append(c.calls, skill)
	if c.err != nil {
		return nil, c.err
	}
	d := *c.demand
	d.Skill = skill
	return &d, nil
}

func TestAnalyticsService_SkillAnalysis_UpdatesCatalogue(t *testing.T) {
	repo := newStubSkillRepo()
	created, _ := repo.Create(context.Background(), skillNamed("Go", 40))

	market := &stubMarketClient{demand: &ports.SkillDemand{DemandScore: 91.5, GrowthRate: 3.4}}
	svc := NewAnalyticsService(repo, market, zerolog.Nop())

	err := svc.Process(context.Background(), ports.AnalyticsTask{
		Kind:  ports.TaskSkillAnalysis,
		Skill: "Go",
		JobID: "job-1",
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	updated, _ := repo.FindByID(context.Background(), created.ID)
	if updated.DemandScore != 91.5 {
		t.Fatalf("demand score not updated: %f", updated.DemandScore)
	}
	if updated.GrowthRate == nil || *updated.GrowthRate != 3.4 {
		t.Fatalf("growth rate not updated: %v", updated.GrowthRate)
	}
}

func TestAnalyticsService_SkillAnalysis_UnknownSkillIsNotAnError(t *testing.T) {
	repo := newStubSkillRepo()
	market := &stubMarketClient{demand: &ports.SkillDemand{DemandScore: 75.5, GrowthRate: 1.2, Mock: true}}
	svc := NewAnalyticsService(repo, market, zerolog.Nop())

	err := svc.Process(context.Background(), ports.AnalyticsTask{
		Kind:  ports.TaskSkillAnalysis,
		Skill: "COBOL",
	})
	if err != nil {
		t.Fatalf("expected nil error for uncatalogued skill, got %v", err)
	}
	if len(market.calls) != 1 {
		t.Fatalf("market client should still be consulted")
	}
}

func TestAnalyticsService_SkillAnalysis_MarketErrorPropagates(t *testing.T) {
	repo := newStubSkillRepo()
	market := &stubMarketClient{err: errors.New("upstream down")}
	svc := NewAnalyticsService(repo, market, zerolog.Nop())

	err := svc.Process(context.Background(), ports.AnalyticsTask{
		Kind:  ports.TaskSkillAnalysis,
		Skill: "Go",
	})
	if err == nil {
		t.Fatalf("expected error from market client")
	}
}

func TestAnalyticsService_JobView(t *testing.T) {
	svc := NewAnalyticsService(newStubSkillRepo(), &stubMarketClient{}, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.AnalyticsTask{Kind: ports.TaskJobView, JobID: "job-9"}); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
}

func TestAnalyticsService_UnknownKind(t *testing.T) {
	svc := NewAnalyticsService(newStubSkillRepo(), &stubMarketClient{}, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.AnalyticsTask{Kind: "mystery"}); err == nil {
		t.Fatalf("expected error for unknown task kind")
	}
}
