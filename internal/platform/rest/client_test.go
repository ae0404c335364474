package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "studyrank/internal/platform/errors"
	"studyrank/internal/platform/rest"
)

func TestErrorMessageUsesServerBodyText(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("quota exceeded"))
	}))
	defer srv.Close()

	client := rest.New(srv.URL, srv.Client(), nil)
	err := client.GetJSON(context.Background(), "list groups", "/groups", nil)
	if err == nil {
		t.Fatal("expected error for 403 response")
	}
	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "quota exceeded" {
		t.Fatalf("expected server body as message, got %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", apiErr.Status)
	}
}

func TestErrorMessageFallsBackToStatusWhenBodyEmpty(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := rest.New(srv.URL, srv.Client(), nil)
	err := client.PostJSON(context.Background(), "create user", "/users", map[string]string{"name": "a"}, nil)
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if got := err.Error(); got != "create user failed with status 502" {
		t.Fatalf("unexpected fallback message: %q", got)
	}
}

func TestSuccessDecodesBodyAndSetsHeaders(t *testing.T) {
	t.Parallel()
	var gotContentType, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-1","name":"Ana"}`))
	}))
	defer srv.Close()

	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	client := rest.New(srv.URL, srv.Client(), nil)
	if err := client.PostJSON(context.Background(), "create user", "/users", map[string]string{"name": "Ana"}, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if out.ID != "u-1" || out.Name != "Ana" {
		t.Fatalf("unexpected decode result: %+v", out)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected json content type, got %q", gotContentType)
	}
	if gotRequestID == "" {
		t.Fatal("expected X-Request-Id header on request")
	}
}

func TestUndecodableSuccessBodyFailsAtBoundary(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	var out struct{}
	client := rest.New(srv.URL, srv.Client(), nil)
	err := client.GetJSON(context.Background(), "fetch summary", "/groups/g-1/activities/summary", &out)
	if !errors.Is(err, apperrors.ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestEmptyResultOperationIgnoresBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := rest.New(srv.URL, srv.Client(), nil)
	if err := client.PostJSON(context.Background(), "join group", "/groups/g-1/join", map[string]string{"user_id": "u-1"}, nil); err != nil {
		t.Fatalf("join: %v", err)
	}
}

func TestHealthReportsPerProbe(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/db-health" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("pool exhausted"))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	checks := rest.New(srv.URL, srv.Client(), nil).Health(context.Background())
	if len(checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(checks))
	}
	if !checks[0].OK || checks[0].Name != "service" {
		t.Fatalf("expected service probe ok, got %+v", checks[0])
	}
	if checks[1].OK || checks[1].Details != "pool exhausted" {
		t.Fatalf("expected database probe failure with body text, got %+v", checks[1])
	}
}
