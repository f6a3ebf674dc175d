// Package jobs implements the job repository. It owns every collection invariant:
// slug derivation and uniqueness, contiguous ordering, filtering and pagination.
// The whole collection is kept under a single store key and rewritten on every mutation.
package jobs

import (
	"errors"
	"time"

	"github.com/umputun/talentflow/app/enums"
)

// DefaultType is the employment type assigned when none supplied
const DefaultType = "Full-time"

// SlugTakenMessage is the message of slug conflict error, sent to API clients as is
const SlugTakenMessage = "A job with this slug already exists"

// Job is a single job posting
type Job struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Status      enums.JobStatus `json:"status"`
	Tags        []string        `json:"tags"`
	Location    string          `json:"location"`
	Type        string          `json:"type"`
	Salary      string          `json:"salary"`
	Description string          `json:"description"`
	Order       int             `json:"order"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Input is a payload to create a job
type Input struct {
	Title       string   `json:"title" yaml:"title" jsonschema:"required,minLength=1,description=job title"`
	Slug        string   `json:"slug,omitempty" yaml:"slug" jsonschema:"description=explicit slug, derived from title if empty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags"`
	Location    string   `json:"location,omitempty" yaml:"location"`
	Type        string   `json:"type,omitempty" yaml:"type" jsonschema:"default=Full-time"`
	Salary      string   `json:"salary,omitempty" yaml:"salary"`
	Description string   `json:"description,omitempty" yaml:"description"`
}

// Update is a partial payload, nil fields are left untouched
type Update struct {
	Title       *string          `json:"title,omitempty"`
	Slug        *string          `json:"slug,omitempty"`
	Status      *enums.JobStatus `json:"status,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Salary      *string          `json:"salary,omitempty"`
	Description *string          `json:"description,omitempty"`
	Order       *int             `json:"order,omitempty"`
}

// Query defines listing parameters
type Query struct {
	Page     int
	PageSize int
	Search   string
	Status   enums.StatusFilter
}

// Pagination describes the slice returned by List
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Page is a result of List
type Page struct {
	Jobs       []Job      `json:"jobs"`
	Pagination Pagination `json:"pagination"`
}

// error kinds, use errors.Is to check
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

// Error carries a user-facing message and unwraps to one of the error kinds
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap returns the error kind
func (e *Error) Unwrap() error { return e.Kind }

var (
	errTitleRequired = &Error{Kind: ErrValidation, Message: "Title is required"}
	errSlugBlank     = &Error{Kind: ErrValidation, Message: "Slug must not be blank"}
	errSlugTaken     = &Error{Kind: ErrConflict, Message: SlugTakenMessage}
	errJobNotFound   = &Error{Kind: ErrNotFound, Message: "Job not found"}
	errStatusInvalid = &Error{Kind: ErrValidation, Message: "Status is invalid"}
)
