package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

const (
	defaultSkillPageSize = 20
	maxTrendingLimit     = 50
)

// SkillService implements skill catalogue use cases.
type SkillService struct {
	repo   ports.SkillRepository
	logger zerolog.Logger
}

func NewSkillService(repo ports.SkillRepository, logger zerolog.Logger) *SkillService {
	return &SkillService{repo: repo, logger: logger}
}

// Create stores a new skill. Names are unique, checked case-insensitively.
func (s *SkillService) Create(ctx context.Context, in ports.CreateSkillInput) (*domain.Skill, error) {
	if _, err := s.repo.FindByName(ctx, in.Name); err == nil {
		return nil, domain.ErrSkillExists
	} else if !errors.Is(err, domain.ErrSkillNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	skill := &domain.Skill{
		Name:          in.Name,
		Category:      domain.SkillCategory(in.Category),
		DemandScore:   in.DemandScore,
		GrowthRate:    in.GrowthRate,
		Description:   in.Description,
		RelatedSkills: in.RelatedSkills,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, skill)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("skill", created.Name).Str("category", string(created.Category)).Msg("skill created")
	return created, nil
}

func (s *SkillService) Get(ctx context.Context, id string) (*domain.Skill, error) {
	return s.repo.FindByID(ctx, id)
}

// GetByName looks a skill up by name, case-insensitively.
func (s *SkillService) GetByName(ctx context.Context, name string) (*domain.Skill, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *SkillService) List(ctx context.Context, filter ports.ListSkillsFilter) (*ports.ListSkillsResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultSkillPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	skills, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListSkillsResult{
		Total:    total,
		Skills:   skills,
		Page:     filter.Skip/filter.Limit + 1,
		PageSize: filter.Limit,
	}, nil
}

// Trending returns the top skills by demand score, then growth rate.
func (s *SkillService) Trending(ctx context.Context, category string, limit int) (*ports.ListSkillsResult, error) {
	if limit <= 0 {
		limit = defaultJobPageSize
	}
	if limit > maxTrendingLimit {
		limit = maxTrendingLimit
	}

	skills, total, err := s.repo.Trending(ctx, category, limit)
	if err != nil {
		return nil, err
	}

	return &ports.ListSkillsResult{
		Total:    total,
		Skills:   skills,
		Page:     1,
		PageSize: limit,
	}, nil
}

// Update applies a partial update; renaming to an existing name fails.
func (s *SkillService) Update(ctx context.Context, id string, upd ports.SkillUpdate) (*domain.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil && *upd.Name != skill.Name {
		if existing, err := s.repo.FindByName(ctx, *upd.Name); err == nil && existing.ID != id {
			return nil, domain.ErrSkillExists
		} else if err != nil && !errors.Is(err, domain.ErrSkillNotFound) {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, upd)
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("skill_id", id).Msg("skill deleted")
	return nil
}
