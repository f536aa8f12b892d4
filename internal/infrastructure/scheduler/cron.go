package scheduler

import (
	"fmt"
	"sync"

	"bodhira/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages daily recurring jobs keyed by a caller-supplied job
// ID. It owns the only in-process record of which jobs are live: the
// jobs map is rebuilt from persistent storage after every restart.
//
// The cron loop is not started by the constructor. Callers must install
// the initial job set first and then call Start, so the clock never
// runs against a partially populated table.
type Scheduler struct {
	cron *cron.Cron
	jobs map[string]cron.EntryID
	log  logger.Logger
	mu   sync.Mutex // guards jobs and cron entry mutation
}

// NewScheduler creates a stopped scheduler with second-level precision.
func NewScheduler(log logger.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		jobs: make(map[string]cron.EntryID),
		log:  log,
	}
}

// dailySpec builds a cron spec firing once per day at hour:minute in
// the host's local time zone.
func dailySpec(hour, minute int) string {
	// Seconds Minutes Hours DayOfMonth Month DayOfWeek
	return fmt.Sprintf("0 %d %d * * *", minute, hour)
}

// UpsertDailyJob installs cmd to run once per day at hour:minute under
// jobID. Any job previously registered under the same ID is removed
// before the new one is added, so at most one entry is ever live per
// ID. The absence of a prior job is not an error.
func (s *Scheduler) UpsertDailyJob(jobID string, hour, minute int, cmd func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.jobs[jobID]; ok {
		s.cron.Remove(prev)
		delete(s.jobs, jobID)
		s.log.Debug(fmt.Sprintf("Replaced existing cron entry %d for job %s", prev, jobID))
	}

	entryID, err := s.cron.AddFunc(dailySpec(hour, minute), cmd)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to add cron job %s", jobID), err)
		return fmt.Errorf("failed to add cron job %s: %w", jobID, err)
	}
	s.jobs[jobID] = entryID
	s.log.Info(fmt.Sprintf("Added cron job %s (entry %d) firing daily at %02d:%02d", jobID, entryID, hour, minute))
	return nil
}

// RemoveJob removes the job registered under jobID. Removing an
// unknown ID is a no-op.
func (s *Scheduler) RemoveJob(jobID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID, ok := s.jobs[jobID]
	if !ok {
		s.log.Debug(fmt.Sprintf("No cron job registered under %s, nothing to remove", jobID))
		return
	}
	s.cron.Remove(entryID)
	delete(s.jobs, jobID)
	s.log.Info(fmt.Sprintf("Removed cron job %s (entry %d)", jobID, entryID))
}

// HasJob reports whether a job is registered under jobID.
func (s *Scheduler) HasJob(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[jobID]
	return ok
}

// JobCount returns the number of registered jobs.
func (s *Scheduler) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Start begins firing registered jobs as their schedules elapse.
// Each job runs in its own goroutine, so a slow notification dispatch
// cannot delay other jobs or block job management.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Cron scheduler started.")
}

// Stop halts all firing. Registered jobs are kept and resume firing if
// Start is called again within the same process.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done() // Wait for running jobs to complete
	s.log.Info("Cron scheduler stopped.")
}

// GetEntries returns the list of scheduled entries. Useful for debugging.
func (s *Scheduler) GetEntries() []cron.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entries()
}
