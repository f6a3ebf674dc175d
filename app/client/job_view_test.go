package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/talentflow/app/client/mocks"
	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
	"github.com/umputun/talentflow/app/web"
)

func TestJobView_BlankID(t *testing.T) {
	api := &mocks.APIMock{}
	changes := 0
	v := NewJobView(api, "  ", WithOnChange(func() { changes++ }))

	require.NoError(t, v.Load(context.Background()))
	st := v.State()
	assert.Nil(t, st.Data)
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
	assert.Equal(t, enums.PhaseIdle, st.Phase)
	assert.Empty(t, api.GetJobCalls())
	assert.Equal(t, 1, changes)
}

func TestJobView_Load(t *testing.T) {
	ts := prepTestAPI(t, web.Config{})
	v := NewJobView(New(ts.URL), "product-manager")
	ctx := context.Background()

	require.NoError(t, v.Load(ctx))
	st := v.State()
	require.NotNil(t, st.Data)
	assert.Equal(t, "3", st.Data.ID)
	assert.Equal(t, enums.PhaseSuccess, st.Phase)

	err := v.SetID(ctx, "no-such-job")
	require.Error(t, err)
	st = v.State()
	assert.Nil(t, st.Data, "data cleared for missing job")
	assert.ErrorIs(t, st.Err, ErrNotFound)
	assert.Equal(t, "Job not found", st.Err.Error())
	assert.Equal(t, enums.PhaseError, st.Phase)
	assert.False(t, st.Loading)

	require.NoError(t, v.SetID(ctx, "1"))
	st = v.State()
	require.NotNil(t, st.Data)
	assert.Equal(t, "senior-frontend-developer", st.Data.Slug)
	assert.NoError(t, st.Err)

	require.NoError(t, v.SetID(ctx, ""))
	assert.Nil(t, v.State().Data)
	assert.Equal(t, enums.PhaseIdle, v.State().Phase)
}

func TestJobView_ServerError(t *testing.T) {
	api := &mocks.APIMock{GetJobFunc: func(context.Context, string) (jobs.Job, error) {
		return jobs.Job{}, &APIError{StatusCode: http.StatusInternalServerError, Message: "store unavailable"}
	}}
	v := NewJobView(api, "1")

	err := v.Load(context.Background())
	require.Error(t, err)
	st := v.State()
	assert.Nil(t, st.Data)
	assert.EqualError(t, st.Err, "store unavailable")
	assert.NotErrorIs(t, st.Err, ErrNotFound)
	require.Len(t, api.GetJobCalls(), 1)
	assert.Equal(t, "1", api.GetJobCalls()[0].IdOrSlug)
}
