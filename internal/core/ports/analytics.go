package ports

import "context"

// TaskKind discriminates background work routed through the dispatcher.
type TaskKind string

const (
	TaskJobView       TaskKind = "job_view"
	TaskSkillAnalysis TaskKind = "skill_analysis"
)

// AnalyticsTask is a fire-and-forget unit of work scheduled after the HTTP
// response is committed. Failures are logged, never surfaced to the caller.
type AnalyticsTask struct {
	Kind  TaskKind
	JobID string
	Skill string
}

// ShardKey returns the value the dispatcher hashes to pick a worker, keeping
// tasks for the same skill (or job) ordered.
func (t AnalyticsTask) ShardKey() string {
	if t.Kind == TaskSkillAnalysis {
		return t.Skill
	}
	return t.JobID
}

// SkillDemand is the outcome of a market-demand analysis for one skill.
type SkillDemand struct {
	Skill       string
	DemandScore float64
	GrowthRate  float64
	// Mock is true when no external API key is configured and canned
	// figures were returned.
	Mock bool
}

// MarketDataClient fetches labor-market statistics from an external source.
type MarketDataClient interface {
	AnalyzeSkillDemand(ctx context.Context, skill string) (*SkillDemand, error)
}

// AnalyticsService processes dispatched tasks.
type AnalyticsService interface {
	Process(ctx context.Context, task AnalyticsTask) error
}

// TaskDispatcher is the interface handlers and services use to enqueue work.
type TaskDispatcher interface {
	Enqueue(task AnalyticsTask)
}
