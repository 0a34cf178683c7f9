package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest(http.MethodPost, "/api/trips/{idTrip}/clients", http.StatusCreated, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestIncrementRateLimited(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.IncrementRateLimited()
	m.IncrementRateLimited()
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.RateLimited), 0)
}
