package render

import (
	"sync"
	"time"

	"storyreel-backend/internal/models"
)

// JobStore owns every render job record. Jobs live only in memory; terminal
// jobs are evicted once their retention window passes, after which polls
// see the same not-found as an unknown id.
type JobStore struct {
	mu        sync.RWMutex
	jobs      map[string]*trackedJob
	retention time.Duration
	now       func() time.Time
	stopSweep chan struct{}
	sweepOnce sync.Once
}

type trackedJob struct {
	job        models.RenderJob
	terminalAt time.Time
}

const DefaultRetention = 30 * time.Minute

func NewJobStore(retention time.Duration) *JobStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &JobStore{
		jobs:      make(map[string]*trackedJob),
		retention: retention,
		now:       time.Now,
		stopSweep: make(chan struct{}),
	}
}

// StartSweeper evicts expired terminal jobs in the background until Close.
func (s *JobStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stopSweep:
				return
			}
		}
	}()
}

func (s *JobStore) Close() {
	s.sweepOnce.Do(func() { close(s.stopSweep) })
}

func (s *JobStore) Put(job models.RenderJob) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = &trackedJob{job: job}
}

// Get returns a snapshot of the job, or false for unknown/evicted ids.
func (s *JobStore) Get(jobID string) (models.RenderJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tracked, ok := s.jobs[jobID]
	if !ok {
		return models.RenderJob{}, false
	}
	return snapshot(&tracked.job), true
}

// Update applies fn to the stored job under the store lock. Terminal
// transitions start the retention clock.
func (s *JobStore) Update(jobID string, fn func(job *models.RenderJob)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	tracked, ok := s.jobs[jobID]
	if !ok {
		return false
	}

	wasTerminal := tracked.job.Terminal()
	fn(&tracked.job)
	tracked.job.UpdatedAt = s.now()
	if !wasTerminal && tracked.job.Terminal() {
		tracked.terminalAt = s.now()
	}
	return true
}

// Sweep removes terminal jobs past the retention window. Active jobs are
// never evicted.
func (s *JobStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.retention)
	removed := 0
	for id, tracked := range s.jobs {
		if tracked.job.Terminal() && !tracked.terminalAt.IsZero() && tracked.terminalAt.Before(cutoff) {
			delete(s.jobs, id)
			removed++
		}
	}
	return removed
}

func (s *JobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

// snapshot copies the job so callers never share slices with the store.
func snapshot(job *models.RenderJob) models.RenderJob {
	out := *job
	out.Logs = append([]string(nil), job.Logs...)
	if job.Assets != nil {
		assets := *job.Assets
		out.Assets = &assets
	}
	return out
}
