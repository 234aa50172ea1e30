package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// newTestClient starts server with handler and returns a connected client.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := New(server.URL, opts...)
	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	t.Cleanup(client.Close)

	return client
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

type recordingLogger struct {
	errors atomic.Int32
	warns  atomic.Int32
	debugs atomic.Int32
}

func (l *recordingLogger) Errorf(_ string, _ ...any) { l.errors.Add(1) }
func (l *recordingLogger) Warnf(_ string, _ ...any)  { l.warns.Add(1) }
func (l *recordingLogger) Debugf(_ string, _ ...any) { l.debugs.Add(1) }

func TestNew(t *testing.T) {
	t.Parallel()

	client := New(" http://example.com/ ", WithTimeout(0))

	if client == nil {
		t.Fatal("expected client to be created")
	}

	if client.baseURL != "http://example.com" {
		t.Errorf("expected baseURL=http://example.com, got %s", client.baseURL)
	}

	if client.options.timeout != 0 {
		t.Errorf("expected timeout=0, got %v", client.options.timeout)
	}
}

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	client := New("")

	err := client.Connect(context.Background())

	if err == nil {
		t.Fatal("expected error for empty URL")
	}

	if err.Error() != "base URL must be set" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConnect_InvalidOptions(t *testing.T) {
	t.Parallel()

	client := New("http://example.com")
	// Force invalid options by setting nil logger
	client.options.requestLogger = nil

	err := client.Connect(context.Background())

	if err == nil {
		t.Fatal("expected error for invalid options")
	}

	if !strings.Contains(err.Error(), "invalid options") {
		t.Errorf("expected error to contain 'invalid options', got: %v", err)
	}
}

func TestConnect_OnlyOnce(t *testing.T) {
	t.Parallel()

	client := New("http://example.com")

	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("first connect failed: %v", err)
	}

	first := client.client

	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("second connect failed: %v", err)
	}

	if client.client != first {
		t.Error("expected second connect to keep the existing transport")
	}
}

func TestConnect_NilClient(t *testing.T) {
	t.Parallel()

	var client *Client

	err := client.Connect(context.Background())

	if err == nil || err.Error() != "mojaloop client is nil" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRequest_SetsHeaders(t *testing.T) {
	t.Parallel()

	var contentType, accept, customHeader string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		accept = r.Header.Get("Accept")
		customHeader = r.Header.Get("FSPIOP-Source")
		writeJSON(w, http.StatusOK, `[]`)
	}, WithRequestHeader("FSPIOP-Source", "hub"))

	if _, err := client.GetParticipants(context.Background()); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if contentType != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", contentType)
	}

	if accept != "application/json" {
		t.Errorf("expected Accept=application/json, got %s", accept)
	}

	if customHeader != "hub" {
		t.Errorf("expected FSPIOP-Source=hub, got %s", customHeader)
	}
}

func TestRequest_SetsBasicAuth(t *testing.T) {
	t.Parallel()

	var authHeader string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, `[]`)
	}, WithBasicAuth("user", "pass"))

	if _, err := client.GetParticipants(context.Background()); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if !strings.HasPrefix(authHeader, "Basic ") {
		t.Errorf("expected Basic auth header, got %s", authHeader)
	}
}

func TestRequest_SetsTokenAuth(t *testing.T) {
	t.Parallel()

	var authHeader string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, `[]`)
	}, WithAuthScheme("Bearer"), WithAuthToken("my-token"))

	if _, err := client.GetParticipants(context.Background()); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if authHeader != "Bearer my-token" {
		t.Errorf("expected 'Bearer my-token', got %s", authHeader)
	}
}

func TestRequest_NilClient(t *testing.T) {
	t.Parallel()

	var client *Client

	_, err := client.GetParticipants(context.Background())

	if err == nil {
		t.Fatal("expected error for nil client")
	}

	if err.Error() != "mojaloop client is nil" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRequest_NotConnected(t *testing.T) {
	t.Parallel()

	client := New("http://example.com")

	_, err := client.GetParticipants(context.Background())

	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}

	if err.Error() != "client not connected - call Connect() first" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRequest_TransportErrorNotReinterpreted(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	logger := &recordingLogger{}
	client := New(server.URL, WithRequestLogger(logger))
	if err := client.Connect(context.Background()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	// Close server to cause connection error
	server.Close()

	for _, throwOnError := range []bool{true, false} {
		res, err := client.GetSettlement(context.Background(), 1, WithThrowOnError(throwOnError))

		if err == nil {
			t.Fatalf("throwOnError=%v: expected transport error", throwOnError)
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			t.Errorf("throwOnError=%v: transport error reported as APIError: %v", throwOnError, err)
		}

		if res.OK() || res.Error != nil {
			t.Errorf("throwOnError=%v: expected zero result, got %+v", throwOnError, res)
		}
	}

	if logger.errors.Load() == 0 {
		t.Error("expected transport errors to be logged")
	}
}

func TestRequest_SingleAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusServiceUnavailable, `{"errorInformation":{"errorCode":"2003","errorDescription":"Service currently unavailable"}}`)
	})

	_, err := client.GetSettlement(context.Background(), 1)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("expected exactly one attempt, got %d", calls.Load())
	}
}

func TestRequest_LogsNonSuccess(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"errorInformation":{"errorCode":"3200","errorDescription":"not found"}}`)
	}, WithRequestLogger(logger))

	_, _ = client.GetSettlement(context.Background(), 1, WithThrowOnError(false))

	if logger.debugs.Load() == 0 {
		t.Error("expected request to be logged at debug")
	}

	if logger.warns.Load() == 0 {
		t.Error("expected non-2xx response to be logged at warn")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	var requestedPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		writeJSON(w, http.StatusOK, `{"status":"OK","uptime":12,"versionNumber":"13.0.0","services":[{"name":"datastore","status":"OK"}]}`)
	})

	res, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requestedPath != "/health" {
		t.Errorf("expected path=/health, got %s", requestedPath)
	}

	if res.Body.Status != "OK" || len(res.Body.Services) != 1 {
		t.Errorf("unexpected health body: %+v", res.Body)
	}
}
