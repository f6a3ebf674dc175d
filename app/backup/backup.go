// Package backup writes periodic JSON snapshots of the job collection and prunes old ones
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"

	"github.com/umputun/talentflow/app/jobs"
)

const (
	filePrefix = "jobs-"
	fileSuffix = ".json"
	tsFormat   = "20060102T150405.000Z"
)

// Source provides the collection to snapshot, see jobs.Repository
type Source interface {
	Export(ctx context.Context) ([]jobs.Job, error)
}

// Snapshotter dumps Source to Dir and keeps up to Keep newest snapshots, Keep <= 0 keeps all
type Snapshotter struct {
	Source Source
	Dir    string
	Keep   int

	now func() time.Time
}

// Run makes snapshots on cron schedule spec until context canceled
func (s *Snapshotter) Run(ctx context.Context, spec string) error {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return fmt.Errorf("can't parse backup schedule %q: %w", spec, err)
	}
	c := cron.New()
	c.Schedule(sched, cron.FuncJob(func() {
		if _, err := s.Snapshot(ctx); err != nil {
			log.Printf("[WARN] snapshot failed, %v", err)
		}
	}))
	log.Printf("[INFO] backup to %s scheduled, first: %s", s.Dir, sched.Next(time.Now()).Format(time.RFC3339))
	c.Start()
	<-ctx.Done()
	log.Print("[DEBUG] terminate backup scheduler")
	<-c.Stop().Done()
	return nil
}

// Snapshot writes the ordered collection to a new file, prunes old snapshots and returns the file name
func (s *Snapshotter) Snapshot(ctx context.Context) (string, error) {
	list, err := s.Source.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to export jobs: %w", err)
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode jobs: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to make backup dir %s: %w", s.Dir, err)
	}
	name := filepath.Join(s.Dir, filePrefix+s.timestamp().Format(tsFormat)+fileSuffix)
	tmp := name + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, name); err != nil {
		return "", fmt.Errorf("failed to rename snapshot: %w", err)
	}
	log.Printf("[INFO] snapshot of %d jobs saved to %s", len(list), name)

	if err := s.prune(); err != nil {
		log.Printf("[WARN] failed to prune snapshots, %v", err)
	}
	return name, nil
}

// Load reads jobs from snapshot file
func Load(path string) ([]jobs.Job, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var res []jobs.Job
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return res, nil
}

// List returns snapshot files in Dir, oldest first
func (s *Snapshotter) List() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.Dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	sort.Strings(files) // timestamp format sorts chronologically
	return files, nil
}

func (s *Snapshotter) prune() error {
	if s.Keep <= 0 {
		return nil
	}
	files, err := s.List()
	if err != nil {
		return err
	}
	if len(files) <= s.Keep {
		return nil
	}
	for _, f := range files[:len(files)-s.Keep] {
		if err := os.Remove(f); err != nil {
			return fmt.Errorf("failed to remove %s: %w", f, err)
		}
		log.Printf("[DEBUG] removed old snapshot %s", f)
	}
	return nil
}

func (s *Snapshotter) timestamp() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}
