package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/rs/xid"
	"github.com/sig-0/iq"
)

var (
	errInvalidJob      = errors.New("invalid job")
	errInvalidInterval = errors.New("invalid interval")
)

// retryDelay is the backoff before a failed job is retried
const retryDelay = time.Second * 10

// Scheduler is the recurring job runner for registered jobs (periodic
// price broadcast, and anything else that runs on an interval)
type Scheduler struct {
	logger *slog.Logger

	registeredJobs sync.Map

	q             iq.Queue[scheduledRun]
	queryInterval time.Duration
	qMux          sync.Mutex
}

// New creates a new Scheduler instance
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		q:             iq.NewQueue[scheduledRun](),
		queryInterval: time.Second, // every second
	}

	// Apply the options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register registers a new job with the scheduler.
// The job is immediately queued up for execution
func (s *Scheduler) Register(j Job) error {
	if j == nil || j.Name() == "" {
		return errInvalidJob
	}

	if j.Interval() <= 0 {
		return errInvalidInterval
	}

	// Register the job
	id := xid.New()
	s.registeredJobs.Store(id, j)

	s.logger.Info(
		"registered new job",
		"name", j.Name(),
	)

	// Schedule the run
	s.scheduleRun(
		time.Now().UTC(),
		id,
		j,
	)

	return nil
}

// Start starts the job scheduling service loop [BLOCKING]
func (s *Scheduler) Start(ctx context.Context) error {
	collectorCh := make(chan *workerResponse, 100)

	// Start a listener for monitoring jobs
	ticker := time.NewTicker(s.queryInterval)
	defer ticker.Stop()

	// handleDue initializes all runs that are executable (due)
	handleDue := func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				nextRun := s.nextRun()
				if nextRun == nil {
					return // nothing to schedule anymore
				}

				s.logger.Info(
					"scheduling run",
					"name", nextRun.job.Name(),
				)

				// Spawn worker
				info := &workerInfo{
					job:   nextRun.job,
					jobID: nextRun.jobID,
					resCh: collectorCh,
				}

				go handleRun(ctx, info)
			}
		}
	}

	// Initialize the first set of due runs (on boot)
	handleDue()

	for {
		select {
		case <-ctx.Done():
			// In-flight workers either observe the canceled context or
			// park their response in the buffered channel
			s.logger.Info("scheduler service shut down")

			return nil
		case <-ticker.C:
			handleDue()
		case response := <-collectorCh:
			now := time.Now().UTC()

			jobRaw, ok := s.registeredJobs.Load(response.jobID)
			if !ok {
				s.logger.Error(
					"unable to load registered job",
					"id", response.jobID.String(),
				)

				continue
			}

			job, _ := jobRaw.(Job)

			if response.error != nil {
				s.logger.Error(
					"error encountered during job run",
					"name", job.Name(),
					"err", response.error.Error(),
				)

				// Retry the run soon
				s.scheduleRun(
					now.Add(retryDelay),
					response.jobID,
					job,
				)

				continue
			}

			// Schedule the next run for this job
			s.scheduleRun(
				now.Add(job.Interval()),
				response.jobID,
				job,
			)
		}
	}
}

// scheduleRun schedules a new job run
func (s *Scheduler) scheduleRun(
	at time.Time,
	jobID xid.ID,
	job Job,
) {
	s.qMux.Lock()
	defer s.qMux.Unlock()

	futureRun := scheduledRun{
		at:    at,
		jobID: jobID,
		job:   job,
	}

	s.q.Push(futureRun)
}

// nextRun fetches the next due run, as of the moment of calling
func (s *Scheduler) nextRun() *scheduledRun {
	s.qMux.Lock()
	defer s.qMux.Unlock()

	now := time.Now().UTC()

	// Check if anything needs to be scheduled
	if s.q.Len() == 0 {
		return nil // nothing to schedule, all jobs are running
	}

	// Check if the top element is due
	if s.q.Index(0).at.After(now) {
		return nil // nothing to schedule, latest run is in the future
	}

	// Grab the next run
	nextRun := s.q.PopFront()

	return nextRun
}
