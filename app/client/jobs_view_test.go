package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/talentflow/app/client/mocks"
	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
	"github.com/umputun/talentflow/app/web"
)

func testPage(idList ...string) jobs.Page {
	res := jobs.Page{Jobs: []jobs.Job{}, Pagination: jobs.Pagination{Page: 1, PageSize: 8, Total: len(idList), TotalPages: 1}}
	for i, id := range idList {
		res.Jobs = append(res.Jobs, jobs.Job{ID: id, Slug: "job-" + id, Title: "Job " + id, Order: i + 1})
	}
	return res
}

// phaseRecorder collects phases reported via OnChange
type phaseRecorder struct {
	mu     sync.Mutex
	phases []enums.Phase
}

func (p *phaseRecorder) add(ph enums.Phase) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phases = append(p.phases, ph)
}

func (p *phaseRecorder) list() []enums.Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]enums.Phase{}, p.phases...)
}

func TestJobsView_Load(t *testing.T) {
	api := &mocks.APIMock{ListJobsFunc: func(context.Context, jobs.Query) (jobs.Page, error) {
		return testPage("1", "2"), nil
	}}
	rec := &phaseRecorder{}
	var v *JobsView
	v = NewJobsView(api, jobs.Query{PageSize: 8}, WithOnChange(func() { rec.add(v.State().Phase) }))

	st := v.State()
	assert.Equal(t, enums.PhaseIdle, st.Phase)
	assert.Nil(t, st.Data)
	assert.False(t, st.Loading)
	assert.Empty(t, api.ListJobsCalls(), "nothing fetched before load")

	require.NoError(t, v.Load(context.Background()))
	st = v.State()
	assert.Equal(t, enums.PhaseSuccess, st.Phase)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
	require.NotNil(t, st.Data)
	assert.Equal(t, []string{"1", "2"}, ids(st.Data.Jobs))
	assert.Equal(t, []enums.Phase{enums.PhaseLoading, enums.PhaseSuccess}, rec.list())
	require.Len(t, api.ListJobsCalls(), 1)
	assert.Equal(t, jobs.Query{PageSize: 8}, api.ListJobsCalls()[0].Q)
}

func TestJobsView_LoadError(t *testing.T) {
	fail := false
	api := &mocks.APIMock{ListJobsFunc: func(context.Context, jobs.Query) (jobs.Page, error) {
		if fail {
			return jobs.Page{}, &APIError{StatusCode: 500, Message: "boom"}
		}
		return testPage("1"), nil
	}}
	v := NewJobsView(api, jobs.Query{})
	require.NoError(t, v.Load(context.Background()))

	fail = true
	err := v.Refetch(context.Background())
	require.Error(t, err)
	st := v.State()
	assert.Equal(t, enums.PhaseError, st.Phase)
	assert.EqualError(t, st.Err, "boom")
	require.NotNil(t, st.Data, "previous data kept on fetch error")
	assert.Equal(t, []string{"1"}, ids(st.Data.Jobs))

	fail = false
	require.NoError(t, v.Refetch(context.Background()))
	assert.NoError(t, v.State().Err, "error cleared by the next fetch")
}

func TestJobsView_SetQuery(t *testing.T) {
	api := &mocks.APIMock{ListJobsFunc: func(_ context.Context, q jobs.Query) (jobs.Page, error) {
		if q.Status == enums.StatusFilterArchived {
			return testPage("4"), nil
		}
		return testPage("1", "2", "3"), nil
	}}
	v := NewJobsView(api, jobs.Query{Status: enums.StatusFilterAll})
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	require.NoError(t, v.SetQuery(ctx, jobs.Query{Status: enums.StatusFilterAll}))
	assert.Len(t, api.ListJobsCalls(), 1, "same query doesn't refetch")

	require.NoError(t, v.SetQuery(ctx, jobs.Query{Status: enums.StatusFilterArchived}))
	assert.Len(t, api.ListJobsCalls(), 2)
	assert.Equal(t, []string{"4"}, ids(v.State().Data.Jobs))
	assert.Equal(t, jobs.Query{Status: enums.StatusFilterArchived}, v.Query())
}

func TestJobsView_Mutations(t *testing.T) {
	api := &mocks.APIMock{
		ListJobsFunc: func(context.Context, jobs.Query) (jobs.Page, error) {
			return testPage("1", "2"), nil
		},
		CreateJobFunc: func(_ context.Context, in jobs.Input) (jobs.Job, error) {
			if in.Title == "" {
				return jobs.Job{}, &APIError{StatusCode: 400, Message: "Title is required"}
			}
			return jobs.Job{ID: "new", Title: in.Title}, nil
		},
		UpdateJobFunc: func(_ context.Context, id string, _ jobs.Update) (jobs.Job, error) {
			return jobs.Job{ID: id}, nil
		},
		UpdateStatusFunc: func(_ context.Context, id string, status enums.JobStatus) (jobs.Job, error) {
			if id == "missing" {
				return jobs.Job{}, &APIError{StatusCode: 404, Message: "Job not found"}
			}
			return jobs.Job{ID: id, Status: status}, nil
		},
	}
	v := NewJobsView(api, jobs.Query{})
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	job, err := v.CreateJob(ctx, jobs.Input{Title: "Go"})
	require.NoError(t, err)
	assert.Equal(t, "new", job.ID)
	assert.Len(t, api.ListJobsCalls(), 2, "refetch after create")

	_, err = v.CreateJob(ctx, jobs.Input{})
	require.EqualError(t, err, "Title is required")
	assert.Equal(t, enums.PhaseError, v.State().Phase)
	assert.EqualError(t, v.State().Err, "Title is required")
	assert.Len(t, api.ListJobsCalls(), 2, "no refetch after failed create")

	title := "Rust"
	_, err = v.UpdateJob(ctx, "1", jobs.Update{Title: &title})
	require.NoError(t, err)
	assert.Len(t, api.ListJobsCalls(), 3)
	assert.NoError(t, v.State().Err)

	job, err = v.ToggleJobStatus(ctx, "2", enums.JobStatusArchived)
	require.NoError(t, err)
	assert.Equal(t, enums.JobStatusArchived, job.Status)
	assert.Len(t, api.ListJobsCalls(), 4)

	_, err = v.ToggleJobStatus(ctx, "missing", enums.JobStatusArchived)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, v.State().Err, ErrNotFound)
}

func TestJobsView_ReorderOptimistic(t *testing.T) {
	serverOrder := []string{"1", "2", "3"}
	var v *JobsView
	var projected []string
	api := &mocks.APIMock{
		ListJobsFunc: func(context.Context, jobs.Query) (jobs.Page, error) {
			return testPage(serverOrder...), nil
		},
		ReorderJobsFunc: func(context.Context, []string) ([]jobs.Job, error) {
			projected = ids(v.State().Data.Jobs) // state seen while the call is in flight
			serverOrder = []string{"3", "1", "2"}
			return nil, nil
		},
	}
	v = NewJobsView(api, jobs.Query{})
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	require.NoError(t, v.ReorderJobs(ctx, []string{"3", "unknown", "1", "2"}))
	assert.Equal(t, []string{"3", "1", "2"}, projected, "projection applied before the call, unknown ids skipped")
	assert.Len(t, api.ListJobsCalls(), 2, "refetch after successful reorder")
	st := v.State()
	assert.Equal(t, enums.PhaseSuccess, st.Phase)
	assert.Equal(t, []string{"3", "1", "2"}, ids(st.Data.Jobs))
}

func TestJobsView_ReorderRollback(t *testing.T) {
	var v *JobsView
	var projected []string
	api := &mocks.APIMock{
		ListJobsFunc: func(context.Context, jobs.Query) (jobs.Page, error) {
			return testPage("1", "2", "3"), nil
		},
		ReorderJobsFunc: func(context.Context, []string) ([]jobs.Job, error) {
			projected = ids(v.State().Data.Jobs)
			return nil, &APIError{StatusCode: 500, Message: "Reorder failed"}
		},
	}
	v = NewJobsView(api, jobs.Query{})
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))
	snapshot := v.State().Data

	err := v.ReorderJobs(ctx, []string{"3", "2", "1"})
	require.EqualError(t, err, "Reorder failed")
	assert.Equal(t, []string{"3", "2", "1"}, projected)

	st := v.State()
	assert.Same(t, snapshot, st.Data, "exact snapshot restored")
	assert.Equal(t, []string{"1", "2", "3"}, ids(st.Data.Jobs))
	assert.Equal(t, enums.PhaseError, st.Phase)
	assert.EqualError(t, st.Err, "Reorder failed")
	assert.Len(t, api.ListJobsCalls(), 1, "no refetch after failed reorder")
}

func TestJobsView_ReorderBeforeLoad(t *testing.T) {
	api := &mocks.APIMock{ReorderJobsFunc: func(context.Context, []string) ([]jobs.Job, error) {
		return nil, errors.New("network down")
	}}
	v := NewJobsView(api, jobs.Query{})
	err := v.ReorderJobs(context.Background(), []string{"1"})
	require.Error(t, err)
	assert.Nil(t, v.State().Data, "nothing to project or restore")
	assert.EqualError(t, v.State().Err, "network down")
}

func TestJobsView_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	api := &mocks.APIMock{ListJobsFunc: func(_ context.Context, q jobs.Query) (jobs.Page, error) {
		if q.Search == "slow" {
			close(started)
			<-release
			return testPage("slow"), nil
		}
		return testPage("fast"), nil
	}}
	v := NewJobsView(api, jobs.Query{Search: "slow"})
	ctx := context.Background()

	done := make(chan error)
	go func() { done <- v.Load(ctx) }()
	<-started

	require.NoError(t, v.SetQuery(ctx, jobs.Query{Search: "fast"}))
	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("slow fetch not finished")
	}

	st := v.State()
	assert.Equal(t, []string{"fast"}, ids(st.Data.Jobs), "stale response doesn't overwrite fresher state")
	assert.Equal(t, enums.PhaseSuccess, st.Phase)
	assert.False(t, st.Loading)
}

func TestJobsView_RollbackWithServer(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	ts := prepTestAPI(t, web.Config{ReorderFailureRate: web.TestModeFailureRate, Random: func() float64 {
		if fail.Load() {
			return 0.1
		}
		return 0.9
	}})
	v := NewJobsView(New(ts.URL), jobs.Query{Status: enums.StatusFilterActive})
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))
	before := v.State().Data

	err := v.ReorderJobs(ctx, []string{"3", "2", "1"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.Transient())
	assert.Same(t, before, v.State().Data)
	assert.Equal(t, []string{"1", "2", "3"}, ids(v.State().Data.Jobs))

	fail.Store(false)
	require.NoError(t, v.ReorderJobs(ctx, []string{"3", "2", "1"}))
	assert.Equal(t, []string{"3", "2", "1"}, ids(v.State().Data.Jobs))
	assert.NoError(t, v.State().Err)
}
