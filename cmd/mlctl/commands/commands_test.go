package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestParticipantsList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/participants" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"fsp1","isActive":1}]`))
	}))
	defer server.Close()

	out, err := runCmd(t, "participants", "list", "--base-url", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, `"name": "fsp1"`) {
		t.Errorf("expected participant in output, got %s", out)
	}
}

func TestSettlementGet_Tagged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errorInformation":{"errorCode":"3100","errorDescription":"settlement not found"}}`))
	}))
	defer server.Close()

	out, err := runCmd(t, "settlements", "get", "9", "--base-url", server.URL, "--tagged")
	if err != nil {
		t.Fatalf("tagged mode must not fail on Mojaloop errors: %v", err)
	}

	if !strings.Contains(out, `"kind": "MojaloopError"`) || !strings.Contains(out, "settlement not found") {
		t.Errorf("unexpected output: %s", out)
	}

	_, err = runCmd(t, "settlements", "get", "9", "--base-url", server.URL)
	if err == nil || err.Error() != "settlement not found" {
		t.Errorf("expected Mojaloop error, got %v", err)
	}
}

func TestReport_WritesFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("xlsx-bytes"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "report.xlsx")

	if _, err := runCmd(t, "report", "12", "--base-url", server.URL, "-o", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}

	if string(data) != "xlsx-bytes" {
		t.Errorf("unexpected report contents %q", data)
	}
}

func TestConfigFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	cfgPath := filepath.Join(t.TempDir(), "mlctl.yaml")
	if err := os.WriteFile(cfgPath, []byte("base-url: "+server.URL+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, "health", "--config", cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, `"status": "OK"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestMissingBaseURL(t *testing.T) {
	_, err := runCmd(t, "health")

	if err == nil || !strings.Contains(err.Error(), "base URL must be set") {
		t.Errorf("expected missing base URL error, got %v", err)
	}
}
