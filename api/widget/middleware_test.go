package widget

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

type captureLogger struct {
	msgs   []string
	fields []map[string]any
}

func (c *captureLogger) Debugf(string, ...any) {}
func (c *captureLogger) Debugw(msg string, fields map[string]any) {
	c.msgs = append(c.msgs, msg)
	c.fields = append(c.fields, fields)
}
func (c *captureLogger) Infof(string, ...any)  {}
func (c *captureLogger) Warnf(string, ...any)  {}
func (c *captureLogger) Errorf(string, ...any) {}

func TestWithRequestLogAssignsID(t *testing.T) {
	log := &captureLogger{}
	h := WithRequestLog(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/trip?distance=50", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	id := rec.Header().Get(RequestIDHeader)
	if id == "" {
		t.Fatalf("expected a generated request id header")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("request id %q is not a uuid: %v", id, err)
	}

	if len(log.fields) != 1 {
		t.Fatalf("expected one access log entry, got %d", len(log.fields))
	}
	fields := log.fields[0]
	if fields["request_id"] != id {
		t.Fatalf("logged request id %v does not match header %q", fields["request_id"], id)
	}
	if fields["status"] != http.StatusNoContent {
		t.Fatalf("expected status 204 in log, got %v", fields["status"])
	}
	if fields["path"] != "/api/trip" {
		t.Fatalf("unexpected path in log: %v", fields["path"])
	}
	if fields["query"] != "distance=50" {
		t.Fatalf("unexpected query in log: %v", fields["query"])
	}
}

func TestWithRequestLogKeepsIncomingID(t *testing.T) {
	log := &captureLogger{}
	h := WithRequestLog(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "upstream-id-42" {
		t.Fatalf("expected the incoming id to be propagated, got %q", got)
	}
	if log.fields[0]["request_id"] != "upstream-id-42" {
		t.Fatalf("expected the incoming id in the log, got %v", log.fields[0]["request_id"])
	}
}

func TestWithRequestLogDefaultStatus(t *testing.T) {
	log := &captureLogger{}
	h := WithRequestLog(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if log.fields[0]["status"] != http.StatusOK {
		t.Fatalf("implicit 200 should be logged, got %v", log.fields[0]["status"])
	}
}

func TestWithRequestLogNilLogger(t *testing.T) {
	h := WithRequestLog(nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
