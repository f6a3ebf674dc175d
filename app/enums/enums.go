// Package enums provides type-safe enumeration types shared by the repository, the API and the client.
//
// The enum types are defined as unexported integer types in this file, and the go:generate directives
// invoke github.com/go-pkgz/enum to create the exported struct types with String, Parse*, Must*,
// text marshaling and sql Scan/Value methods in the *_enum.go files.
//
// Usage:
//
//	status := enums.JobStatusArchived
//	fmt.Println(status.String()) // "archived"
//
//	filter, err := enums.ParseStatusFilter(r.URL.Query().Get("status"))
//	if err != nil {
//	    // handle invalid input
//	}
//
// To regenerate the enum types after modifications:
//
//	go generate ./app/enums
package enums

//go:generate go run github.com/go-pkgz/enum@latest -type jobStatus -lower
//go:generate go run github.com/go-pkgz/enum@latest -type statusFilter -lower
//go:generate go run github.com/go-pkgz/enum@latest -type eventType -lower
//go:generate go run github.com/go-pkgz/enum@latest -type phase -lower

// jobStatus represents the lifecycle status of a job posting.
// Use the exported JobStatus type and its constants in actual code.
type jobStatus int

const (
	jobStatusActive jobStatus = iota
	jobStatusArchived
)

// statusFilter represents the status selector of a job listing query.
// Use the exported StatusFilter type and its constants in actual code.
type statusFilter int

const (
	statusFilterAll statusFilter = iota
	statusFilterActive
	statusFilterArchived
)

// eventType represents a job mutation reported to notifiers.
// Use the exported EventType type and its constants in actual code.
type eventType int

const (
	eventTypeCreated eventType = iota
	eventTypeUpdated
	eventTypeStatus
)

// phase represents the fetch state of a client view: idle -> loading -> success|error.
// Use the exported Phase type and its constants in actual code.
type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseSuccess
	phaseError
)

// Matches reports whether a job with the given status passes the filter.
// Zero value of StatusFilter behaves as StatusFilterAll.
func (e StatusFilter) Matches(status JobStatus) bool {
	switch e {
	case StatusFilterActive:
		return status == JobStatusActive
	case StatusFilterArchived:
		return status == JobStatusArchived
	default:
		return true
	}
}
