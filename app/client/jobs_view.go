package client

import (
	"context"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API

// API defines calls used by views, implemented by Client
type API interface {
	ListJobs(ctx context.Context, q jobs.Query) (jobs.Page, error)
	GetJob(ctx context.Context, idOrSlug string) (jobs.Job, error)
	CreateJob(ctx context.Context, in jobs.Input) (jobs.Job, error)
	UpdateJob(ctx context.Context, id string, upd jobs.Update) (jobs.Job, error)
	UpdateStatus(ctx context.Context, id string, status enums.JobStatus) (jobs.Job, error)
	ReorderJobs(ctx context.Context, ids []string) ([]jobs.Job, error)
}

// JobsState is a snapshot of the list view
type JobsState struct {
	Data    *jobs.Page // nil until first successful fetch
	Loading bool
	Err     error
	Phase   enums.Phase
}

// ViewOption func type
type ViewOption func(o *viewOptions)

type viewOptions struct {
	onChange func()
}

// WithOnChange sets callback fired after every state transition
func WithOnChange(fn func()) ViewOption {
	return func(o *viewOptions) { o.onChange = fn }
}

// JobsView holds a list of jobs for the current query and mutates jobs through the API.
// Every mutation refetches the list, reorder is applied optimistically and rolled back on failure.
type JobsView struct {
	api      API
	onChange func()

	mu     sync.Mutex
	query  jobs.Query
	state  JobsState
	seq    uint64 // incremented on every fetch and reorder, older fetch results discarded
	loaded bool
}

// NewJobsView makes list view for the query. Nothing is fetched until Load.
func NewJobsView(api API, q jobs.Query, opts ...ViewOption) *JobsView {
	o := viewOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return &JobsView{api: api, onChange: o.onChange, query: q, state: JobsState{Phase: enums.PhaseIdle}}
}

// State returns current state
func (v *JobsView) State() JobsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Query returns current query
func (v *JobsView) Query() jobs.Query {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// Load fetches the list for the current query
func (v *JobsView) Load(ctx context.Context) error {
	return v.fetch(ctx)
}

// Refetch fetches the list again
func (v *JobsView) Refetch(ctx context.Context) error {
	return v.fetch(ctx)
}

// SetQuery changes the query and refetches. Same query on a loaded view is a no-op.
func (v *JobsView) SetQuery(ctx context.Context, q jobs.Query) error {
	v.mu.Lock()
	if v.loaded && q == v.query {
		v.mu.Unlock()
		return nil
	}
	v.query = q
	v.mu.Unlock()
	return v.fetch(ctx)
}

// CreateJob creates job and refetches the list
func (v *JobsView) CreateJob(ctx context.Context, in jobs.Input) (jobs.Job, error) {
	job, err := v.api.CreateJob(ctx, in)
	if err != nil {
		v.setErr(err)
		return jobs.Job{}, err
	}
	v.resync(ctx)
	return job, nil
}

// UpdateJob updates job and refetches the list
func (v *JobsView) UpdateJob(ctx context.Context, id string, upd jobs.Update) (jobs.Job, error) {
	job, err := v.api.UpdateJob(ctx, id, upd)
	if err != nil {
		v.setErr(err)
		return jobs.Job{}, err
	}
	v.resync(ctx)
	return job, nil
}

// ToggleJobStatus sets job status and refetches the list
func (v *JobsView) ToggleJobStatus(ctx context.Context, id string, status enums.JobStatus) (jobs.Job, error) {
	job, err := v.api.UpdateStatus(ctx, id, status)
	if err != nil {
		v.setErr(err)
		return jobs.Job{}, err
	}
	v.resync(ctx)
	return job, nil
}

// ReorderJobs reorders held jobs to match ids right away, then calls the API.
// On success the list is refetched, on any failure the exact pre-reorder data restored.
func (v *JobsView) ReorderJobs(ctx context.Context, ids []string) error {
	v.mu.Lock()
	v.seq++ // in-flight fetches must not overwrite the projection
	snapshot := v.state.Data
	if snapshot != nil {
		v.state.Data = project(snapshot, ids)
	}
	v.mu.Unlock()
	v.changed()

	if _, err := v.api.ReorderJobs(ctx, ids); err != nil {
		log.Printf("[DEBUG] reorder failed, rollback: %v", err)
		v.mu.Lock()
		v.seq++
		v.state.Data = snapshot
		v.state.Err = err
		v.state.Loading = false
		v.state.Phase = enums.PhaseError
		v.mu.Unlock()
		v.changed()
		return err
	}
	v.resync(ctx)
	return nil
}

// project makes a new page with held jobs arranged as ids, unknown ids skipped
func project(p *jobs.Page, ids []string) *jobs.Page {
	byID := make(map[string]jobs.Job, len(p.Jobs))
	for _, j := range p.Jobs {
		byID[j.ID] = j
	}
	res := &jobs.Page{Jobs: make([]jobs.Job, 0, len(ids)), Pagination: p.Pagination}
	for _, id := range ids {
		if j, ok := byID[id]; ok {
			res.Jobs = append(res.Jobs, j)
		}
	}
	return res
}

// resync refetches after successful mutation. Fetch failure is reflected in state only.
func (v *JobsView) resync(ctx context.Context) {
	if err := v.fetch(ctx); err != nil {
		log.Printf("[WARN] failed to refetch jobs: %v", err)
	}
}

func (v *JobsView) fetch(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	q := v.query
	v.state.Loading = true
	v.state.Err = nil
	v.state.Phase = enums.PhaseLoading
	v.mu.Unlock()
	v.changed()

	page, err := v.api.ListJobs(ctx, q)

	v.mu.Lock()
	if seq != v.seq {
		v.mu.Unlock()
		log.Printf("[DEBUG] discard stale jobs response, query %+v", q)
		return err
	}
	v.loaded = true
	v.state.Loading = false
	if err != nil {
		v.state.Err = err
		v.state.Phase = enums.PhaseError
	} else {
		v.state.Data = &page
		v.state.Phase = enums.PhaseSuccess
	}
	v.mu.Unlock()
	v.changed()
	return err
}

func (v *JobsView) setErr(err error) {
	v.mu.Lock()
	v.state.Err = err
	v.state.Phase = enums.PhaseError
	v.mu.Unlock()
	v.changed()
}

func (v *JobsView) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}
