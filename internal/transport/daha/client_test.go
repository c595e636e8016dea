package daha

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daha-edu/coursegate/internal/domain"
	"github.com/daha-edu/coursegate/internal/domain/filter"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Limit:   100,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, srv
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(&Config{})
	if err == nil {
		t.Fatal("expected error for empty base URL")
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestCourses_QueryParamsAndHeaders(t *testing.T) {
	var gotQuery map[string][]string
	var gotKey string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotKey = r.Header.Get("X-API-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"courses":[{"id":1,"title":"Основы Python"}]}`))
	})

	courses, err := client.Courses(context.Background(), filter.Params{
		CategoryID: 2,
		Level:      "INTERMEDIATE",
		GradeID:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != 1 {
		t.Fatalf("unexpected courses: %+v", courses)
	}

	if got := gotQuery["category_id"]; len(got) != 1 || got[0] != "2" {
		t.Errorf("category_id = %v, want [2]", got)
	}
	if got := gotQuery["level"]; len(got) != 1 || got[0] != "INTERMEDIATE" {
		t.Errorf("level = %v, want [INTERMEDIATE]", got)
	}
	if got := gotQuery["grade_id"]; len(got) != 1 || got[0] != "3" {
		t.Errorf("grade_id = %v, want [3]", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "100" {
		t.Errorf("limit = %v, want [100]", got)
	}
	if gotKey != "test-key" {
		t.Errorf("X-API-Key = %q, want test-key", gotKey)
	}
}

func TestAllCourses_NoFilterParams(t *testing.T) {
	var gotQuery map[string][]string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"courses":[]}`))
	})

	if _, err := client.AllCourses(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, param := range []string{"category_id", "level", "grade_id"} {
		if _, ok := gotQuery[param]; ok {
			t.Errorf("unconstrained listing must not send %s", param)
		}
	}
}

func TestCourses_NonSuccessStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	})

	_, err := client.Courses(context.Background(), filter.Params{CategoryID: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}

	var catErr *domain.CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected *CatalogError, got %T", err)
	}
	if catErr.Status != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503", catErr.Status)
	}
}

func TestCourses_MalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"courses": "нет"`))
	})

	_, err := client.Courses(context.Background(), filter.Params{CategoryID: 1})
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestCourses_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(&Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	srv.Close() // обрываем соединение заранее

	_, err = client.AllCourses(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}

	var catErr *domain.CatalogError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected *CatalogError, got %T", err)
	}
	if catErr.Status != 0 {
		t.Errorf("transport failure must carry status 0, got %d", catErr.Status)
	}
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("Ping must use HEAD, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPing_Failure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := client.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
}
