package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/talentflow/app/enums"
	"github.com/umputun/talentflow/app/jobs"
)

// APIStatusResponse is the JSON response for /api/v1/status
type APIStatusResponse struct {
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Stats     APIStats  `json:"stats"`
	Timestamp time.Time `json:"timestamp"`
}

// APIStats represents job counts in JSON API response
type APIStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Archived int `json:"archived"`
}

// statusRequest is the body of PATCH /api/jobs/{id}/status
type statusRequest struct {
	Status *enums.JobStatus `json:"status"`
}

// reorderRequest is the body of POST /api/jobs/reorder
type reorderRequest struct {
	JobIDs []string `json:"jobIds"`
}

// handleListJobs returns a page of jobs. Invalid page and pageSize fall back to defaults,
// unknown status matches no jobs.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	q := jobs.Query{
		Page:     queryInt(params.Get("page"), 1),
		PageSize: queryInt(params.Get("pageSize"), jobs.DefaultPageSize),
		Search:   params.Get("search"),
		Status:   enums.StatusFilterAll,
	}
	if st := params.Get("status"); st != "" {
		filter, err := enums.ParseStatusFilter(st)
		if err != nil {
			log.Printf("[DEBUG] unknown status filter %q", st)
			s.writeJSON(w, http.StatusOK, jobs.EmptyPage(q))
			return
		}
		q.Status = filter
	}

	page, err := s.repo.List(r.Context(), q)
	if err != nil {
		s.writeRepoError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, page)
}

// handleGetJob returns a job by id or slug
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.repo.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeRepoError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, job)
}

// handleCreateJob creates a new job
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var in jobs.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	job, err := s.repo.Create(r.Context(), in)
	if err != nil {
		s.writeRepoError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, job)
	s.notify(r.Context(), enums.EventTypeCreated, job)
}

// handleUpdateJob merges supplied fields into the job
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	var upd jobs.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	job, err := s.repo.Update(r.Context(), r.PathValue("id"), upd)
	if err != nil {
		s.writeRepoError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, job)
	s.notify(r.Context(), enums.EventTypeUpdated, job)
}

// handleUpdateStatus archives or restores the job
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == nil {
		s.writeJSONError(w, http.StatusBadRequest, "Status is required")
		return
	}
	job, err := s.repo.UpdateStatus(r.Context(), r.PathValue("id"), *req.Status)
	if err != nil {
		s.writeRepoError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, job)
	s.notify(r.Context(), enums.EventTypeStatus, job)
}

// handleReorderJobs applies a new ordering. With fault injection enabled it fails randomly
// before touching the repository.
func (s *Server) handleReorderJobs(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Invalid request body")
		return
	}
	if req.JobIDs == nil {
		s.writeJSONError(w, http.StatusInternalServerError, "jobIds is required")
		return
	}

	if s.reorderFailureRate > 0 && s.random() < s.reorderFailureRate {
		log.Printf("[DEBUG] injected reorder failure")
		s.writeJSONError(w, http.StatusInternalServerError, "Reorder failed")
		return
	}

	res, err := s.repo.Reorder(r.Context(), req.JobIDs)
	if err != nil {
		log.Printf("[ERROR] failed to reorder jobs: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// handleAPIStatus returns server info and job counts
func (s *Server) handleAPIStatus(w http.ResponseWriter, r *http.Request) {
	counts := make(map[enums.StatusFilter]int, len(enums.StatusFilterValues))
	for _, f := range enums.StatusFilterValues {
		page, err := s.repo.List(r.Context(), jobs.Query{PageSize: 1, Status: f})
		if err != nil {
			s.writeRepoError(w, err)
			return
		}
		counts[f] = page.Pagination.Total
	}

	s.writeJSON(w, http.StatusOK, APIStatusResponse{
		Version: s.version,
		Uptime:  time.Since(s.startTime).Truncate(time.Second).String(),
		Stats: APIStats{
			Total:    counts[enums.StatusFilterAll],
			Active:   counts[enums.StatusFilterActive],
			Archived: counts[enums.StatusFilterArchived],
		},
		Timestamp: time.Now(),
	})
}

// writeRepoError maps repository errors to status codes
func (s *Server) writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, jobs.ErrNotFound):
		s.writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, jobs.ErrValidation), errors.Is(err, jobs.ErrConflict):
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] repository failure: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[WARN] failed to encode JSON error response: %v", err)
	}
}

// queryInt parses positive int, returns def for missing, malformed or non-positive values
func queryInt(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
