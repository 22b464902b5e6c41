package pipeline

import (
	"sync"
	"time"

	"github.com/bwalden3/leadkit/internal/leads"
)

// JobStatus represents the state of a scrape job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusScraping  JobStatus = "scraping"
	StatusEnriching JobStatus = "enriching"
	StatusStoring   JobStatus = "storing"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
	StatusPartial   JobStatus = "partial"
)

// Job tracks the state of a single multi-platform scrape run.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	request leads.ScrapeRequest
	errors  []string
}

// Progress tracks per-platform and per-lead counts.
type Progress struct {
	PlatformsTotal int      `json:"platforms_total"`
	PlatformsDone  int      `json:"platforms_done"`
	LeadsScraped   int      `json:"leads_scraped"`
	LeadsStored    int      `json:"leads_stored"`
	Errors         []string `json:"errors"`
}

// NewJob builds a queued job for a validated request.
func NewJob(req leads.ScrapeRequest) *Job {
	now := time.Now()
	return &Job{
		ID:        generateULID(),
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
		request:   req,
	}
}

// Request returns the scrape request the job was created with.
func (j *Job) Request() leads.ScrapeRequest {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.request
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetPlatformsTotal records how many platforms the job covers.
func (j *Job) SetPlatformsTotal(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.PlatformsTotal = n
	j.UpdatedAt = time.Now()
}

// IncrPlatformsDone marks one platform as finished.
func (j *Job) IncrPlatformsDone() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.PlatformsDone++
	j.UpdatedAt = time.Now()
}

// AddLeads records scraped/stored lead counts.
func (j *Job) AddLeads(scraped, stored int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.LeadsScraped += scraped
	j.Progress.LeadsStored += stored
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	Progress  Progress  `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:        j.ID,
		Status:    j.Status,
		Phase:     j.Phase,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
		Progress: Progress{
			PlatformsTotal: j.Progress.PlatformsTotal,
			PlatformsDone:  j.Progress.PlatformsDone,
			LeadsScraped:   j.Progress.LeadsScraped,
			LeadsStored:    j.Progress.LeadsStored,
			Errors:         errs,
		},
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
