// Package importer loads job definitions from a file and creates them through the API
package importer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/go-pkgz/syncs"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/umputun/talentflow/app/client"
	"github.com/umputun/talentflow/app/jobs"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure -fmt goimports . API

// API creates jobs, implemented by client.Client
type API interface {
	CreateJob(ctx context.Context, in jobs.Input) (jobs.Job, error)
}

// Repeater retries fun on errors, see repeater.Repeater
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// Importer creates jobs concurrently, retrying transient failures
type Importer struct {
	API         API
	Concurrency int      // max parallel requests, 1 if not set
	Repeater    Repeater // default is 3 attempts with backoff
}

// Report summarizes import results
type Report struct {
	Created int
	Skipped int // slug already taken
	Failed  int
	Errors  []error
}

// File is the import file layout
type File struct {
	Jobs []jobs.Input `json:"jobs" yaml:"jobs" jsonschema:"required,minItems=1,description=jobs to create"`
}

// errStop terminates retries for non-transient errors
var errStop = errors.New("stop retries")

// NewRepeater makes backoff repeater for the given number of attempts
func NewRepeater(attempts int, duration time.Duration) Repeater {
	return repeater.New(&strategy.Backoff{Repeats: attempts, Duration: duration, Factor: 2, Jitter: true})
}

// LoadFile reads jobs from yaml or json file with top level "jobs" list
func LoadFile(path string) ([]jobs.Input, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse import file %s: %w", path, err)
	}
	if len(f.Jobs) == 0 {
		return nil, fmt.Errorf("no jobs in %s", path)
	}
	for i, in := range f.Jobs {
		if strings.TrimSpace(in.Title) == "" {
			return nil, fmt.Errorf("job %d: title is required", i+1)
		}
	}
	return f.Jobs, nil
}

// GenerateSchema generates a JSON schema for the import file
func GenerateSchema() *jsonschema.Schema {
	return jsonschema.Reflect(&File{})
}

// Import creates all inputs, returns report. Jobs with taken slugs are skipped, not failed.
func (im *Importer) Import(ctx context.Context, inputs []jobs.Input) Report {
	concur := im.Concurrency
	if concur <= 0 {
		concur = 1
	}
	rptr := im.Repeater
	if rptr == nil {
		rptr = NewRepeater(3, 100*time.Millisecond)
	}

	var mu sync.Mutex
	res := Report{}
	gr := syncs.NewSizedGroup(concur, syncs.Context(ctx))
	for _, in := range inputs {
		gr.Go(func(ctx context.Context) {
			job, err := im.create(ctx, rptr, in)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				res.Created++
				log.Printf("[INFO] imported %q as %s", in.Title, job.Slug)
			case isConflict(err):
				res.Skipped++
				log.Printf("[INFO] skipped %q, slug already taken", in.Title)
			default:
				res.Failed++
				res.Errors = append(res.Errors, fmt.Errorf("job %q: %w", in.Title, err))
				log.Printf("[WARN] failed to import %q, %v", in.Title, err)
			}
		})
	}
	gr.Wait()
	return res
}

// create calls API, retrying only transient failures
func (im *Importer) create(ctx context.Context, rptr Repeater, in jobs.Input) (jobs.Job, error) {
	var job jobs.Job
	var permanent error
	err := rptr.Do(ctx, func() error {
		j, err := im.API.CreateJob(ctx, in)
		if err == nil {
			job = j
			return nil
		}
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && !apiErr.Transient() {
			permanent = err
			return errStop
		}
		return err
	}, errStop)
	if permanent != nil {
		return jobs.Job{}, permanent
	}
	return job, err
}

func isConflict(err error) bool {
	var apiErr *client.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest && apiErr.Message == jobs.SlugTakenMessage
}
