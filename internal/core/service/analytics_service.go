package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/api/metrics"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

// analyticsService consumes fire-and-forget tasks from the dispatcher.
// Failures are logged and counted but never reach the request that enqueued
// the task — its response has already been sent.
type analyticsService struct {
	skills ports.SkillRepository
	market ports.MarketDataClient
	log    zerolog.Logger
}

// NewAnalyticsService returns an AnalyticsService implementation.
func NewAnalyticsService(skills ports.SkillRepository, market ports.MarketDataClient, log zerolog.Logger) ports.AnalyticsService {
	return &analyticsService{skills: skills, market: market, log: log}
}

func (s *analyticsService) Process(ctx context.Context, task ports.AnalyticsTask) error {
	switch task.Kind {
	case ports.TaskJobView:
		metrics.JobViewsTotal.Inc()
		s.log.Debug().Str("job_id", task.JobID).Msg("job view recorded")
		return nil
	case ports.TaskSkillAnalysis:
		return s.analyzeSkill(ctx, task)
	default:
		return fmt.Errorf("unknown task kind %q", task.Kind)
	}
}

// analyzeSkill fetches market demand for a skill and folds the result back
// into the skill catalogue when an entry exists.
func (s *analyticsService) analyzeSkill(ctx context.Context, task ports.AnalyticsTask) error {
	start := time.Now()

	demand, err := s.market.AnalyzeSkillDemand(ctx, task.Skill)
	if err != nil {
		metrics.AnalysisTasksTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("analyze %q: %w", task.Skill, err)
	}

	skill, err := s.skills.FindByName(ctx, task.Skill)
	if err != nil {
		if errors.Is(err, domain.ErrSkillNotFound) {
			// required skill not in the catalogue; analysis result is log-only
			metrics.AnalysisTasksTotal.WithLabelValues("skill_unknown").Inc()
			s.log.Info().
				Str("skill", task.Skill).
				Float64("demand_score", demand.DemandScore).
				Msg("analyzed skill has no catalogue entry")
			return nil
		}
		metrics.AnalysisTasksTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("analyze %q: lookup: %w", task.Skill, err)
	}

	if _, err := s.skills.Update(ctx, skill.ID, ports.SkillUpdate{
		DemandScore: &demand.DemandScore,
		GrowthRate:  &demand.GrowthRate,
	}); err != nil {
		metrics.AnalysisTasksTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("analyze %q: update: %w", task.Skill, err)
	}

	metrics.AnalysisTasksTotal.WithLabelValues("ok").Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("skill", task.Skill).
		Str("job_id", task.JobID).
		Float64("demand_score", demand.DemandScore).
		Float64("growth_rate", demand.GrowthRate).
		Bool("mock", demand.Mock).
		Msg("skill demand updated")
	return nil
}
