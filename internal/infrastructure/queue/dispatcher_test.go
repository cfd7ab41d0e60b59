package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

type recordingService struct {
	mu    sync.Mutex
	tasks []ports.AnalyticsTask
	done  chan struct{}
	want  int
}

func newRecordingService(want int) *recordingService {
	return &recordingService{done: make(chan struct{}), want: want}
}

func (s *recordingService) Process(_ context.Context, task ports.AnalyticsTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
	if len(s.tasks) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingService) wait(t *testing.T) []ports.AnalyticsTask {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for tasks")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.AnalyticsTask, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func TestDispatcher_ProcessesAllTasks(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.AnalyticsTask{Kind: ports.TaskJobView, JobID: "job-1"})
	d.Enqueue(ports.AnalyticsTask{Kind: ports.TaskSkillAnalysis, Skill: "Go"})
	d.Enqueue(ports.AnalyticsTask{Kind: ports.TaskSkillAnalysis, Skill: "Redis"})

	tasks := svc.wait(t)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 processed tasks, got %d", len(tasks))
	}
}

// Tasks sharing a shard key land on one worker and therefore keep their
// enqueue order.
func TestDispatcher_SameKeyKeepsOrder(t *testing.T) {
	const n = 20
	svc := newRecordingService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Enqueue(ports.AnalyticsTask{Kind: ports.TaskJobView, JobID: "job-42"})
	}

	tasks := svc.wait(t)
	for _, task := range tasks {
		if task.JobID != "job-42" {
			t.Fatalf("unexpected task: %+v", task)
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("Kubernetes")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("Kubernetes"); got != first {
			t.Fatalf("shard index not deterministic: %d vs %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
