package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/hr-agent/internal/fetch"
	"github.com/jonathan/hr-agent/internal/types"
)

// maxUploadBytes caps an entire resume upload request.
const maxUploadBytes = 16 << 20

// Slot search defaults when the query omits them.
const (
	defaultSlotDuration  = 30
	defaultSlotDaysAhead = 14
)

// allowedResumeExtensions are the upload types the extractor understands.
var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".rtf":  true,
	".odt":  true,
	".txt":  true,
}

// handleProcess accepts a multipart upload of resumes plus a job description
// (inline text or a job posting URL) and returns the ranked candidates.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload: maximum total size is 16MB")
		return
	}

	jobDescription, err := s.resolveJobDescription(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	files := r.MultipartForm.File["resumes"]
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one resume file is required")
		return
	}

	paths, cleanup, err := s.saveUploads(files)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	log.Printf("Processing %d resumes against job description", len(paths))

	texts := s.extractor.Extract(r.Context(), paths)
	candidates := s.batch.Process(r.Context(), texts, jobDescription)

	response := map[string]any{"candidates": candidates}
	if runID, ok := s.recordRun(r, jobDescription, candidates); ok {
		response["run_id"] = runID
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// resolveJobDescription reads the job description from the form, fetching
// and extracting it when only a posting URL was supplied.
func (s *Server) resolveJobDescription(r *http.Request) (string, error) {
	if text := strings.TrimSpace(r.FormValue("job_description")); text != "" {
		return text, nil
	}

	jobURL := strings.TrimSpace(r.FormValue("job_url"))
	if jobURL == "" {
		return "", fmt.Errorf("Job description is required")
	}

	text, err := fetch.JobDescription(r.Context(), jobURL, nil)
	if err != nil {
		log.Printf("Error fetching job posting %s: %v", jobURL, err)
		return "", fmt.Errorf("Could not fetch job description from URL")
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("Job posting at URL contained no text")
	}
	return text, nil
}

// saveUploads stages uploaded resumes on disk for the extractor and returns
// their paths plus a cleanup function that removes them.
func (s *Server) saveUploads(files []*multipart.FileHeader) ([]string, func(), error) {
	dir := s.cfg.UploadDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "hr-agent-uploads-")
		if err != nil {
			return nil, nil, fmt.Errorf("could not stage uploads: %w", err)
		}
		dir = tmp
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("could not stage uploads: %w", err)
	}

	var paths []string
	cleanup := func() {
		for _, path := range paths {
			if err := os.Remove(path); err != nil {
				log.Printf("Could not remove uploaded file %s: %v", path, err)
			}
		}
	}

	for _, header := range files {
		name := filepath.Base(header.Filename)
		if !allowedResumeExtensions[strings.ToLower(filepath.Ext(name))] {
			log.Printf("Skipping upload with unsupported extension: %s", name)
			continue
		}

		src, err := header.Open()
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("could not read upload %s", name)
		}

		path := filepath.Join(dir, name)
		dst, err := os.Create(path)
		if err != nil {
			_ = src.Close()
			cleanup()
			return nil, nil, fmt.Errorf("could not stage upload %s", name)
		}

		_, err = io.Copy(dst, src)
		_ = src.Close()
		_ = dst.Close()
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("could not stage upload %s", name)
		}

		paths = append(paths, path)
		log.Printf("Saved resume: %s", name)
	}

	if len(paths) == 0 {
		cleanup()
		return nil, nil, fmt.Errorf("No valid resume files found")
	}
	return paths, cleanup, nil
}

// recordRun persists the screening outcome when a database is configured.
// Persistence failures are logged, never surfaced to the caller.
func (s *Server) recordRun(r *http.Request, jobDescription string, candidates []types.RankedCandidate) (uuid.UUID, bool) {
	if s.store == nil {
		return uuid.Nil, false
	}

	runID, err := s.store.CreateScreeningRun(r.Context(), jobDescription, len(candidates))
	if err != nil {
		log.Printf("Error recording screening run: %v", err)
		return uuid.Nil, false
	}
	if err := s.store.SaveCandidates(r.Context(), runID, candidates); err != nil {
		log.Printf("Error recording candidates for run %s: %v", runID, err)
	}
	return runID, true
}

// handleSlots returns open interview slots grouped by date.
func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	duration := queryInt(r, "duration", defaultSlotDuration)
	days := queryInt(r, "days", defaultSlotDaysAhead)
	if duration <= 0 || days <= 0 {
		s.errorResponse(w, http.StatusBadRequest, "duration and days must be positive")
		return
	}

	groups := s.slotFinder.FindSlots(r.Context(), duration, days)
	s.jsonResponse(w, http.StatusOK, map[string]any{"available_slots": groups})
}

// handleSchedule books a single interview.
func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req types.ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Each candidate must have name and email")
		return
	}

	result, err := s.scheduler.Schedule(r.Context(), req.Candidate, req.StartTime, req.EndTime)
	if err != nil {
		log.Printf("Error scheduling interview: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error occurred while scheduling interview")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleInterviews lists upcoming scheduled interviews.
func (s *Server) handleInterviews(w http.ResponseWriter, r *http.Request) {
	interviews := s.scheduler.ScheduledInterviews(r.Context())
	s.jsonResponse(w, http.StatusOK, map[string]any{"interviews": interviews})
}

// handleCalendarURL returns the embeddable calendar URL, or an empty string
// when it cannot be determined.
func (s *Server) handleCalendarURL(w http.ResponseWriter, r *http.Request) {
	url, err := s.calClient.EmbedURL(r.Context())
	if err != nil {
		log.Printf("Error getting calendar URL: %v", err)
		url = ""
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"calendar_url": url})
}

// handleListRuns lists recorded screening runs.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "Screening history is not enabled")
		return
	}

	runs, err := s.store.ListRuns(r.Context(), queryInt(r, "limit", 20))
	if err != nil {
		log.Printf("Error listing screening runs: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns the ranked candidates of one recorded run.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, http.StatusNotFound, "Screening history is not enabled")
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid run ID")
		return
	}

	candidates, err := s.store.GetRunCandidates(r.Context(), runID)
	if err != nil {
		log.Printf("Error getting run %s: %v", runID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"candidates": candidates})
}

func queryInt(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
