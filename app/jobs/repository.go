package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/talentflow/app/enums"
)

// DefaultPageSize used when the query has no valid page size
const DefaultPageSize = 8

// storeKey is the only key the repository uses, it holds the whole collection
const storeKey = "jobs"

// KV is a durable key-value storage, see store.Store
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}

// Repository is the sole mutator of the stored collection.
// Every mutation is read full collection, change in memory, write it back, serialized by mu.
type Repository struct {
	kv    KV
	now   func() time.Time
	newID func() string

	mu          sync.Mutex
	initialized bool
}

// NewRepository makes repository on top of the given store. The store is not touched until the first call.
func NewRepository(kv KV) *Repository {
	return &Repository{
		kv:    kv,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Init seeds the demo dataset if the store has no collection yet. Safe to call multiple times,
// every other method calls it implicitly.
func (r *Repository) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initLocked(ctx)
}

func (r *Repository) initLocked(ctx context.Context) error {
	if r.initialized {
		return nil
	}
	_, found, err := r.kv.Get(ctx, storeKey)
	if err != nil {
		return fmt.Errorf("failed to check stored jobs: %w", err)
	}
	if !found {
		log.Printf("[INFO] no stored jobs, seeding demo dataset")
		if err := r.save(ctx, DemoJobs()); err != nil {
			return fmt.Errorf("failed to seed demo jobs: %w", err)
		}
	}
	r.initialized = true
	return nil
}

// List returns a page of jobs matching the query, sorted by order
func (r *Repository) List(ctx context.Context, q Query) (Page, error) {
	q = q.normalize()

	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.loadInit(ctx)
	if err != nil {
		return Page{}, err
	}

	search := strings.ToLower(q.Search)
	filtered := make([]Job, 0, len(all))
	for _, j := range all {
		if search != "" && !j.matches(search) {
			continue
		}
		if !q.Status.Matches(j.Status) {
			continue
		}
		filtered = append(filtered, j)
	}
	sortByOrder(filtered)

	total := len(filtered)
	totalPages := (total + q.PageSize - 1) / q.PageSize
	start := min((q.Page-1)*q.PageSize, total)
	end := min(start+q.PageSize, total)

	return Page{
		Jobs: filtered[start:end],
		Pagination: Pagination{
			Page:       q.Page,
			PageSize:   q.PageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    q.Page < totalPages,
			HasPrev:    q.Page > 1,
		},
	}, nil
}

// Get finds job by id or by slug. Ids are checked first across the whole collection,
// slugs only if no id matched. Returns ErrNotFound if none.
func (r *Repository) Get(ctx context.Context, idOrSlug string) (Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.loadInit(ctx)
	if err != nil {
		return Job{}, err
	}
	if i := indexByID(all, idOrSlug); i >= 0 {
		return all[i], nil
	}
	for _, j := range all {
		if j.Slug == idOrSlug {
			return j, nil
		}
	}
	return Job{}, errJobNotFound
}

// Create adds a new active job at the end of the ordering
func (r *Repository) Create(ctx context.Context, in Input) (Job, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Job{}, errTitleRequired
	}
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(in.Title)
	}
	if slug == "" {
		return Job{}, errSlugBlank
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.loadInit(ctx)
	if err != nil {
		return Job{}, err
	}
	if slugTaken(all, slug, "") {
		return Job{}, errSlugTaken
	}

	now := r.now()
	job := Job{
		ID:          r.newID(),
		Slug:        slug,
		Title:       in.Title,
		Status:      enums.JobStatusActive,
		Tags:        in.Tags,
		Location:    in.Location,
		Type:        in.Type,
		Salary:      in.Salary,
		Description: in.Description,
		Order:       len(all) + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if job.Tags == nil {
		job.Tags = []string{}
	}
	if job.Type == "" {
		job.Type = DefaultType
	}

	if err := r.save(ctx, append(all, job)); err != nil {
		return Job{}, err
	}
	log.Printf("[DEBUG] created job %s (%s)", job.ID, job.Slug)
	return job, nil
}

// Update merges supplied fields into the job with given id. Slug is recomputed only
// if slug or title supplied, order changes only if supplied.
func (r *Repository) Update(ctx context.Context, id string, upd Update) (Job, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return Job{}, errTitleRequired
	}
	if upd.Status != nil && upd.Status.String() == "" {
		return Job{}, errStatusInvalid
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.loadInit(ctx)
	if err != nil {
		return Job{}, err
	}
	idx := indexByID(all, id)
	if idx < 0 {
		return Job{}, errJobNotFound
	}

	job := all[idx]
	if upd.Slug != nil || upd.Title != nil {
		slug := resolveSlug(job, upd)
		if slug == "" {
			return Job{}, errSlugBlank
		}
		if slugTaken(all, slug, job.ID) {
			return Job{}, errSlugTaken
		}
		job.Slug = slug
	}
	upd.apply(&job)
	job.UpdatedAt = r.now()
	all[idx] = job

	if err := r.save(ctx, all); err != nil {
		return Job{}, err
	}
	log.Printf("[DEBUG] updated job %s (%s)", job.ID, job.Slug)
	return job, nil
}

// UpdateStatus changes only the status of the job
func (r *Repository) UpdateStatus(ctx context.Context, id string, status enums.JobStatus) (Job, error) {
	return r.Update(ctx, id, Update{Status: &status})
}

// Reorder assigns order 1..k to the listed jobs in the given sequence. Unknown and repeated ids
// are ignored. Jobs missing from the list follow the listed ones, keeping their previous relative
// order, so the resulting orders always form 1..N. Returns the full collection in stored sequence.
func (r *Repository) Reorder(ctx context.Context, ids []string) ([]Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.loadInit(ctx)
	if err != nil {
		return nil, err
	}

	pos := make(map[string]int, len(all))
	for i, j := range all {
		pos[j.ID] = i
	}

	placed := make(map[int]bool, len(all))
	sequence := make([]int, 0, len(all))
	for _, id := range ids {
		i, ok := pos[id]
		if !ok || placed[i] {
			continue
		}
		placed[i] = true
		sequence = append(sequence, i)
	}
	listed := len(sequence)

	rest := make([]int, 0, len(all)-listed)
	for i := range all {
		if !placed[i] {
			rest = append(rest, i)
		}
	}
	sort.SliceStable(rest, func(a, b int) bool { return all[rest[a]].Order < all[rest[b]].Order })
	sequence = append(sequence, rest...)

	now := r.now()
	for n, i := range sequence {
		order := n + 1
		if n < listed || all[i].Order != order {
			all[i].Order = order
			all[i].UpdatedAt = now
		}
	}

	if err := r.save(ctx, all); err != nil {
		return nil, err
	}
	log.Printf("[DEBUG] reordered %d jobs, %d listed", len(all), listed)
	return all, nil
}

// Export returns the whole collection sorted by order
func (r *Repository) Export(ctx context.Context) ([]Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.loadInit(ctx)
	if err != nil {
		return nil, err
	}
	sortByOrder(all)
	return all, nil
}

// Reset clears the store, the next call seeds the demo dataset again
func (r *Repository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.kv.Clear(ctx); err != nil {
		return fmt.Errorf("failed to reset jobs: %w", err)
	}
	r.initialized = false
	return nil
}

// Seed stores the given collection without validation and marks repository initialized.
// Missing status is stored as active and nil tags as empty, so the collection stays readable.
func (r *Repository) Seed(ctx context.Context, jobs []Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]Job, len(jobs))
	for i, j := range jobs {
		if j.Status.String() == "" {
			j.Status = enums.JobStatusActive
		}
		if j.Tags == nil {
			j.Tags = []string{}
		}
		res[i] = j
	}
	if err := r.save(ctx, res); err != nil {
		return err
	}
	r.initialized = true
	return nil
}

func (r *Repository) loadInit(ctx context.Context) ([]Job, error) {
	if err := r.initLocked(ctx); err != nil {
		return nil, err
	}
	return r.load(ctx)
}

func (r *Repository) load(ctx context.Context) ([]Job, error) {
	data, found, err := r.kv.Get(ctx, storeKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	if !found {
		return []Job{}, nil
	}
	var res []Job
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("failed to decode stored jobs: %w", err)
	}
	if res == nil {
		res = []Job{}
	}
	return res, nil
}

func (r *Repository) save(ctx context.Context, jobs []Job) error {
	data, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("failed to encode jobs: %w", err)
	}
	if err := r.kv.Set(ctx, storeKey, data); err != nil {
		return fmt.Errorf("failed to save jobs: %w", err)
	}
	return nil
}

// EmptyPage returns a page without jobs for the query, for filters nothing can match
func EmptyPage(q Query) Page {
	q = q.normalize()
	return Page{Jobs: []Job{}, Pagination: Pagination{Page: q.Page, PageSize: q.PageSize, HasPrev: q.Page > 1}}
}

func (q Query) normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.Status.String() == "" {
		q.Status = enums.StatusFilterAll
	}
	return q
}

// matches checks lowercased term against title and tags
func (j Job) matches(term string) bool {
	if strings.Contains(strings.ToLower(j.Title), term) {
		return true
	}
	for _, tag := range j.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func (u Update) apply(j *Job) {
	if u.Title != nil {
		j.Title = *u.Title
	}
	if u.Status != nil {
		j.Status = *u.Status
	}
	if u.Tags != nil {
		j.Tags = *u.Tags
		if j.Tags == nil {
			j.Tags = []string{}
		}
	}
	if u.Location != nil {
		j.Location = *u.Location
	}
	if u.Type != nil {
		j.Type = *u.Type
	}
	if u.Salary != nil {
		j.Salary = *u.Salary
	}
	if u.Description != nil {
		j.Description = *u.Description
	}
	if u.Order != nil {
		j.Order = *u.Order
	}
}

// resolveSlug picks explicit non-blank slug, otherwise derives it from the new or existing title
func resolveSlug(j Job, u Update) string {
	if u.Slug != nil {
		if s := strings.TrimSpace(*u.Slug); s != "" {
			return s
		}
	}
	if u.Title != nil {
		return Slugify(*u.Title)
	}
	return Slugify(j.Title)
}

// slugTaken checks case-insensitive slug collision with any job except excludeID
func slugTaken(all []Job, slug, excludeID string) bool {
	for _, j := range all {
		if j.ID != excludeID && strings.EqualFold(j.Slug, slug) {
			return true
		}
	}
	return false
}

func indexByID(all []Job, id string) int {
	for i, j := range all {
		if j.ID == id {
			return i
		}
	}
	return -1
}

func sortByOrder(jobs []Job) {
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].Order < jobs[j].Order })
}
