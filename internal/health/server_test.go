package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error { return f.err }

func TestReadyReflectsDatabaseAndState(t *testing.T) {
	s := NewServer(Config{ServiceName: "prop-edge-pipeline", DB: &fakePinger{}})

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "not ready until marked")

	s.SetReady(true)
	runID := uuid.New()
	s.RecordRun(runID, time.Now())

	rec = httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), runID.String())
}

func TestReadyFailsOnDatabaseError(t *testing.T) {
	s := NewServer(Config{ServiceName: "prop-edge-pipeline", DB: &fakePinger{err: errors.New("connection refused")}})
	s.SetReady(true)

	rec := httptest.NewRecorder()
	s.handleReady(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthAlwaysOK(t *testing.T) {
	s := NewServer(Config{ServiceName: "prop-edge-pipeline", Version: "dev"})

	rec := httptest.NewRecorder()
	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "prop-edge-pipeline")
}
