package transcode

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/pkg/logger"
	"github.com/streamflix/streamflix-server/pkg/utils"
)

const cpuCheckInterval = 10 * time.Second

// Processor is the unit of work a pool worker runs per job.
type Processor interface {
	Process(ctx context.Context, job models.TranscodeJob)
}

// Pool is the bounded background execution context for transcode jobs.
// Upload handlers submit and forget; completion is observable only
// through the tracker and the appearance of renditions in the store.
type Pool struct {
	processor Processor
	logger    logger.Logger
	cfg       *config.Config
	jobs      chan models.TranscodeJob

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPool(cfg *config.Config, processor Processor, log logger.Logger) *Pool {
	size := cfg.Worker.QueueSize
	if size <= 0 {
		size = 64
	}
	return &Pool{
		processor: processor,
		logger:    log,
		cfg:       cfg,
		jobs:      make(chan models.TranscodeJob, size),
	}
}

func (p *Pool) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return errors.New("pool already started")
	}
	ctx, p.cancel = context.WithCancel(ctx)
	p.mu.Unlock()

	workers := p.cfg.Worker.PoolSize
	if workers <= 0 {
		workers = 2
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
	p.logger.Infof("transcode pool started with %d workers", workers)
	return nil
}

// Stop cancels in-flight context waits and blocks until workers drain.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Submit enqueues a job without blocking the caller. A full queue is an
// error; the upload itself has already succeeded and the operator can
// re-trigger the job later, so shedding here beats stalling the request.
func (p *Pool) Submit(job models.TranscodeJob) error {
	select {
	case p.jobs <- job:
		return nil
	default:
		return errors.Errorf("transcode queue full, dropping job for movie %s", job.MovieID)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			p.waitForCPU(ctx)
			p.processor.Process(ctx, job)
		}
	}
}

// waitForCPU defers job starts while the host is already saturated with
// encoder processes. In-flight encodes are never interrupted.
func (p *Pool) waitForCPU(ctx context.Context) {
	max := p.cfg.Worker.MaxCPUUsage
	if max <= 0 {
		return
	}
	for {
		if ok, usage := utils.CheckCPUUsage(max); ok {
			return
		} else {
			p.logger.Infof("CPU usage %.2f%% above %.2f%%, delaying transcode", usage, max)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(cpuCheckInterval):
		}
	}
}
