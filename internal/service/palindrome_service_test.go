package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/palindrome-service/internal/observability"
	"github.com/spec-kit/palindrome-service/internal/requestlog"
)

func newTestService(t *testing.T) (*PalindromeService, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetrics()
	log := requestlog.New()
	require.NoError(t, metrics.TrackListSize(log))
	return NewPalindromeService(PalindromeDependencies{Log: log, Metrics: metrics}), metrics
}

func snapshot(t *testing.T, m *observability.Metrics) observability.Snapshot {
	t.Helper()
	snap, err := m.Snapshot()
	require.NoError(t, err)
	return snap
}

func TestCountedCheckCountsEveryCall(t *testing.T) {
	svc, metrics := newTestService(t)

	assert.True(t, svc.CountedCheck("abba"))
	assert.False(t, svc.CountedCheck("abca"))
	assert.True(t, svc.CountedCheck(""))

	snap := snapshot(t, metrics)
	assert.Equal(t, 3.0, snap.Counter)
	assert.Equal(t, 3.0, snap.ListSize)
	assert.Zero(t, snap.Timer.Count)
}

func TestTimedCheckRecordsOneObservationPerCall(t *testing.T) {
	svc, metrics := newTestService(t)

	assert.True(t, svc.TimedCheck("aba"))
	assert.False(t, svc.TimedCheck("ab"))

	snap := snapshot(t, metrics)
	assert.Equal(t, uint64(2), snap.Timer.Count)
	assert.GreaterOrEqual(t, snap.Timer.SumSeconds, 0.0)
	assert.Zero(t, snap.Counter)
	assert.Equal(t, 2.0, snap.ListSize)
}

func TestClearLogResetsGauge(t *testing.T) {
	svc, metrics := newTestService(t)
	for i := 0; i < 7; i++ {
		svc.CountedCheck("x")
	}
	svc.TimedCheck("y")
	require.Equal(t, 8.0, snapshot(t, metrics).ListSize)

	svc.ClearLog()

	snap := snapshot(t, metrics)
	assert.Zero(t, snap.ListSize)
	assert.Zero(t, svc.LogSize())
	assert.Equal(t, 7.0, snap.Counter, "clearing the log leaves the counter alone")
}

func TestConcurrentChecksKeepEveryEntry(t *testing.T) {
	svc, metrics := newTestService(t)

	const workers, perW = 8, 250
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				if w%2 == 0 {
					svc.CountedCheck("level")
				} else {
					svc.TimedCheck("levels")
				}
			}
		}(w)
	}
	wg.Wait()

	snap := snapshot(t, metrics)
	assert.Equal(t, float64(workers*perW), snap.ListSize)
	assert.Equal(t, float64(workers/2*perW), snap.Counter)
	assert.Equal(t, uint64(workers/2*perW), snap.Timer.Count)
}

func TestServiceWorksWithoutMetrics(t *testing.T) {
	svc := NewPalindromeService(PalindromeDependencies{})

	assert.True(t, svc.CountedCheck("noon"))
	assert.False(t, svc.TimedCheck("moon"))
	assert.Equal(t, 2, svc.LogSize())
}
