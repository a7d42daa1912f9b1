package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fashionchat/internal/handlers"
	"fashionchat/internal/models"
)

type stubResponder struct{}

func (stubResponder) Respond(_ context.Context, _ string, _ []models.ChatMessage) (string, map[string]interface{}, error) {
	return "stub reply", map[string]interface{}{"model": "keyword-matcher"}, nil
}

func newTestRouter(rateLimit int) http.Handler {
	return New(handlers.NewChatHandler(stubResponder{}), rateLimit, "*")
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(60)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var health models.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&health); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", health.Status)
	}
}

func TestRootEndpoint(t *testing.T) {
	r := newTestRouter(60)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Fashion Chatbot API is running") {
		t.Errorf("Unexpected root body: %s", rr.Body.String())
	}
}

func TestChatEndpoint(t *testing.T) {
	r := newTestRouter(60)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hello","conversation_history":[]}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode chat response: %v", err)
	}
	if resp.Response != "stub reply" {
		t.Errorf("Expected 'stub reply', got %q", resp.Response)
	}
}

func TestChatEndpointWrongMethod(t *testing.T) {
	r := newTestRouter(60)

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected status 405, got %d", rr.Code)
	}
}

func TestChatEndpointRateLimited(t *testing.T) {
	r := newTestRouter(2)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		last = rr.Code
	}

	if last != http.StatusTooManyRequests {
		t.Errorf("Expected third request to be rate limited (429), got %d", last)
	}
}
