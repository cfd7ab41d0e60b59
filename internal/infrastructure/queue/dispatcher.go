package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/api/metrics"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes analytics tasks to a fixed set of workers using
// consistent hashing on the task's shard key, keeping tasks for the same
// skill (or job) ordered. Enqueued work runs after the originating HTTP
// response has been sent; task failures never affect that response.
type Dispatcher struct {
	workers []chan ports.AnalyticsTask
	service ports.AnalyticsService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AnalyticsService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AnalyticsTask, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AnalyticsTask, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a task to the worker responsible for its shard key.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(task ports.AnalyticsTask) {
	i := d.shardIndex(task.ShardKey())
	d.workers[i] <- task
	metrics.TasksQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a shard key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AnalyticsTask) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-ch:
			if !ok {
				return
			}
			metrics.TasksQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Process(ctx, task); err != nil {
				d.log.Error().Err(err).
					Str("kind", string(task.Kind)).
					Str("skill", task.Skill).
					Str("job_id", task.JobID).
					Int("worker_id", id).
					Msg("task processing failed")
			}
		}
	}
}
