package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
)

// JobState is a snapshot of the single job view
type JobState struct {
	Data    *jobs.Job
	Loading bool
	Err     error
	Phase   enums.Phase
}

// JobView holds a single job fetched by id or slug
type JobView struct {
	api      API
	onChange func()

	mu    sync.Mutex
	id    string
	state JobState
	seq   uint64
}

// NewJobView makes view for the job id or slug. Nothing is fetched until Load.
func NewJobView(api API, id string, opts ...ViewOption) *JobView {
	o := viewOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return &JobView{api: api, onChange: o.onChange, id: id, state: JobState{Phase: enums.PhaseIdle}}
}

// State returns current state
func (v *JobView) State() JobState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// SetID switches the view to another job and fetches it
func (v *JobView) SetID(ctx context.Context, id string) error {
	v.mu.Lock()
	v.id = id
	v.mu.Unlock()
	return v.Load(ctx)
}

// Load fetches the job. Blank id clears the view without a request.
// Missing job results in nil data and error wrapping ErrNotFound.
func (v *JobView) Load(ctx context.Context) error {
	v.mu.Lock()
	v.seq++
	seq := v.seq
	id := v.id
	if strings.TrimSpace(id) == "" {
		v.state = JobState{Phase: enums.PhaseIdle}
		v.mu.Unlock()
		v.changed()
		return nil
	}
	v.state.Loading = true
	v.state.Err = nil
	v.state.Phase = enums.PhaseLoading
	v.mu.Unlock()
	v.changed()

	job, err := v.api.GetJob(ctx, id)
	if errors.Is(err, ErrNotFound) {
		err = &APIError{StatusCode: http.StatusNotFound, Message: "Job not found"}
	}

	v.mu.Lock()
	if seq != v.seq {
		v.mu.Unlock()
		return err
	}
	v.state.Loading = false
	if err != nil {
		v.state.Data = nil
		v.state.Err = err
		v.state.Phase = enums.PhaseError
	} else {
		v.state.Data = &job
		v.state.Phase = enums.PhaseSuccess
	}
	v.mu.Unlock()
	v.changed()
	return err
}

func (v *JobView) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}
