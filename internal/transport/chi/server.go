// Package chi exposes the coursegate HTTP API consumed by the mini-app.
package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/daha-edu/coursegate/internal/domain/course"
	"github.com/daha-edu/coursegate/internal/domain/filter"
	"github.com/daha-edu/coursegate/internal/logger"
	courseuc "github.com/daha-edu/coursegate/internal/usecase/course"
	healthuc "github.com/daha-edu/coursegate/internal/usecase/health"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	codeBadRequest     = "bad_request"
	codeCourseNotFound = "course_not_found"
	codeUnauthorized   = "unauthorized"
)

// Server routes HTTP requests to the course and health services.
type Server struct {
	courses *courseuc.Service
	health  *healthuc.Service
	logger  *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(courses *courseuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{courses: courses, health: health, logger: logger}
}

// Mount attaches all routes to the given router.
func (s *Server) Mount(r chi.Router) {
	r.Get("/courses", s.listCourses)
	r.Get("/courses/{courseID}", s.getCourse)
	r.Get("/health", s.getHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// coursesResponse is the JSON body of the course listing endpoint.
type coursesResponse struct {
	Courses []course.Course `json:"courses"`
	Total   int             `json:"total"`
}

// listCourses handles GET /courses. Repeated subject, difficulty and grade
// query parameters build the filter bag; no parameters means no constraint.
func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	bag, err := bagFromQuery(r)
	if err != nil {
		logger.FromContext(r.Context()).Warn("Malformed filter query", zap.Error(err))
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	courses := s.courses.FilterCourses(r.Context(), bag)
	writeJSON(w, http.StatusOK, coursesResponse{Courses: courses, Total: len(courses)})
}

// getCourse handles GET /courses/{courseID}.
func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "course id must be an integer")
		return
	}

	c, ok := s.courses.CourseByID(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, codeCourseNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// getHealth handles GET /health. Degraded mode still answers 200 since the
// service keeps serving offline data.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

// bagFromQuery binds the repeated filter query parameters into a Bag.
func bagFromQuery(r *http.Request) (filter.Bag, error) {
	bag := filter.NewBag()
	query := r.URL.Query()

	var subjects []string
	if err := runtime.BindQueryParameter("form", true, false, "subject", query, &subjects); err != nil {
		return bag, err
	}
	for _, s := range subjects {
		bag.AddSubject(s)
	}

	var difficulties []string
	if err := runtime.BindQueryParameter("form", true, false, "difficulty", query, &difficulties); err != nil {
		return bag, err
	}
	for _, d := range difficulties {
		bag.AddDifficulty(d)
	}

	var grades []string
	if err := runtime.BindQueryParameter("form", true, false, "grade", query, &grades); err != nil {
		return bag, err
	}
	for _, g := range grades {
		bag.AddGrade(g)
	}

	return bag, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
