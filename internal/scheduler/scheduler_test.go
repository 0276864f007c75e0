package scheduler

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScheduler(t *testing.T) *Scheduler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewScheduler(nil, time.UTC, time.Minute, log)
}

func TestSchedulePipelineRejectsBadCron(t *testing.T) {
	s := testScheduler(t)
	assert.Error(t, s.SchedulePipeline("not a cron expression"))
}

func TestStartRequiresJobs(t *testing.T) {
	s := testScheduler(t)
	assert.Error(t, s.Start())
}

func TestLifecycle(t *testing.T) {
	s := testScheduler(t)
	require.NoError(t, s.SchedulePipeline("0 9 * * *"))

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.Error(t, s.Start(), "double start rejected")
	assert.False(t, s.NextRun().IsZero())

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
	assert.NoError(t, s.Stop(), "stop is idempotent")
}

func TestCannotScheduleWhileRunning(t *testing.T) {
	s := testScheduler(t)
	require.NoError(t, s.SchedulePipeline("0 9 * * *"))
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Error(t, s.SchedulePipeline("0 10 * * *"))
}
