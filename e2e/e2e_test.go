//go:build e2e

// Package e2e provides end-to-end tests running the talentflow binary and talking to it over HTTP.
//
// Test organization:
// - e2e_test.go: TestMain, shared helpers, constants, jobs api tests
// - auth_test.go: basic auth on write endpoints
// - import_test.go: bulk import mode against the running server
package e2e

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/talentflow/app/client"
	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
)

const (
	baseURL    = "http://localhost:18080"
	binaryPath = "/tmp/talentflow-e2e"
)

// auth server constants (separate server for auth tests to keep the main one open)
const (
	authBaseURL  = "http://localhost:18081"
	testPassword = "testpass123"                                                  //nolint:gosec // test password for e2e tests
	passwordHash = "$2y$10$ZcZnRH/ya6JUmBRGE8qlBupIFUYgvOewRXtpkB8HecWtUnryAHr0S" //nolint:gosec // bcrypt hash of testpass123 for e2e tests
)

var serverCmd *exec.Cmd

func TestMain(m *testing.M) {
	// build test binary
	ctx := context.Background()
	build := exec.CommandContext(ctx, "go", "build", "-o", binaryPath, "./app")
	build.Dir = ".."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Printf("failed to build: %v\n", err)
		os.Exit(1)
	}

	// start server with memory store, no auth
	serverCmd = exec.CommandContext(ctx, binaryPath, "--listen=:18080", "--store.type=memory", "--log.enabled")
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr
	if err := serverCmd.Start(); err != nil {
		fmt.Printf("failed to start server: %v\n", err)
		os.Exit(1)
	}

	if err := waitForServer(baseURL+"/ping", 30*time.Second); err != nil {
		fmt.Printf("server not ready: %v\n", err)
		_ = serverCmd.Process.Kill()
		os.Exit(1)
	}

	code := m.Run()

	_ = serverCmd.Process.Kill()
	_ = os.Remove(binaryPath)
	os.Exit(code)
}

func waitForServer(url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	hc := &http.Client{Timeout: 5 * time.Second}
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("server not ready after %v", timeout)
		default:
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody) // #nosec G107 - test url
			if err != nil {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			resp, err := hc.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return nil
				}
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}

func TestJobs_ListSeeded(t *testing.T) {
	cl := client.New(baseURL)
	page, err := cl.ListJobs(context.Background(), jobs.Query{Search: "engineer"})
	require.NoError(t, err)
	require.NotEmpty(t, page.Jobs)
	assert.Equal(t, "backend-engineer", page.Jobs[0].Slug)
	assert.Equal(t, 1, page.Pagination.Page)
}

func TestJobs_Lifecycle(t *testing.T) {
	ctx := context.Background()
	cl := client.New(baseURL)

	job, err := cl.CreateJob(ctx, jobs.Input{Title: "E2E Site Reliability Engineer", Tags: []string{"SRE"}})
	require.NoError(t, err)
	assert.Equal(t, "e2e-site-reliability-engineer", job.Slug)
	assert.Equal(t, enums.JobStatusActive, job.Status)

	_, err = cl.CreateJob(ctx, jobs.Input{Title: "e2e site reliability engineer"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, jobs.SlugTakenMessage, apiErr.Message)

	archived, err := cl.UpdateStatus(ctx, job.ID, enums.JobStatusArchived)
	require.NoError(t, err)
	assert.Equal(t, enums.JobStatusArchived, archived.Status)

	got, err := cl.GetJob(ctx, job.Slug)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)

	_, err = cl.GetJob(ctx, "no-such-job")
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestJobs_ReorderView(t *testing.T) {
	ctx := context.Background()
	view := client.NewJobsView(client.New(baseURL), jobs.Query{PageSize: 100})
	require.NoError(t, view.Load(ctx))

	st := view.State()
	require.GreaterOrEqual(t, len(st.Data.Jobs), 2)
	first, second := st.Data.Jobs[0].ID, st.Data.Jobs[1].ID

	require.NoError(t, view.ReorderJobs(ctx, []string{second, first}))
	st = view.State()
	assert.Equal(t, enums.PhaseSuccess, st.Phase)
	assert.Equal(t, second, st.Data.Jobs[0].ID)
	assert.Equal(t, 1, st.Data.Jobs[0].Order)
	assert.Equal(t, first, st.Data.Jobs[1].ID)
}
