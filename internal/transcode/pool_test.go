package transcode

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/internal/models"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
	done chan struct{}
}

func newCountingProcessor(expected int) *countingProcessor {
	return &countingProcessor{done: make(chan struct{}, expected)}
}

func (p *countingProcessor) Process(ctx context.Context, job models.TranscodeJob) {
	p.mu.Lock()
	p.seen = append(p.seen, job.MovieID)
	p.mu.Unlock()
	p.done <- struct{}{}
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

func poolConfig(workers, queue int) *config.Config {
	return &config.Config{
		Worker: config.WorkerConfig{PoolSize: workers, QueueSize: queue},
		Logger: config.Logger{Level: "error"},
	}
}

func waitProcessed(t *testing.T, proc *countingProcessor, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-proc.done:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for job %d of %d", i+1, n)
		}
	}
}

func TestPoolProcessesSubmittedJobs(t *testing.T) {
	proc := newCountingProcessor(4)
	pool := NewPool(poolConfig(2, 8), proc, testLogger())

	if err := pool.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer pool.Stop()

	for i := 0; i < 4; i++ {
		if err := pool.Submit(models.TranscodeJob{MovieID: uuid.New()}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	waitProcessed(t, proc, 4)

	if got := proc.count(); got != 4 {
		t.Errorf("processed %d jobs, want 4", got)
	}
}

func TestPoolSubmitDoesNotBlockWhenFull(t *testing.T) {
	proc := newCountingProcessor(0)
	// Never started, so nothing drains the queue.
	pool := NewPool(poolConfig(1, 2), proc, testLogger())

	if err := pool.Submit(models.TranscodeJob{MovieID: uuid.New()}); err != nil {
		t.Fatal(err)
	}
	if err := pool.Submit(models.TranscodeJob{MovieID: uuid.New()}); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		done <- pool.Submit(models.TranscodeJob{MovieID: uuid.New()})
	}()
	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error submitting to a full queue")
		}
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a full queue")
	}
}

func TestPoolStartTwice(t *testing.T) {
	pool := NewPool(poolConfig(1, 2), newCountingProcessor(0), testLogger())
	if err := pool.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer pool.Stop()

	if err := pool.Start(context.Background()); err == nil {
		t.Fatal("expected an error starting an already running pool")
	}
}

func TestPoolStopWaitsForWorkers(t *testing.T) {
	proc := newCountingProcessor(1)
	pool := NewPool(poolConfig(1, 2), proc, testLogger())

	if err := pool.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := pool.Submit(models.TranscodeJob{MovieID: uuid.New()}); err != nil {
		t.Fatal(err)
	}
	waitProcessed(t, proc, 1)

	stopped := make(chan struct{})
	go func() {
		pool.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after workers drained")
	}
}
