package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { RegisterMetrics(reg) })

	assert.Panics(t, func() { RegisterMetrics(reg) }, "double registration must panic")
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/health", "200"))

	RecordRequest("GET", "/health", 0, 10*time.Millisecond)
	RecordRequest("GET", "/health", 200, 10*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(HTTPRequests.WithLabelValues("GET", "/health", "200")))
}

func TestRecordAuthAttempt(t *testing.T) {
	counter := AuthAttempts.WithLabelValues(OperationLogin, ResultRejected)
	before := testutil.ToFloat64(counter)

	RecordAuthAttempt(OperationLogin, ResultRejected)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordTokenIssued(t *testing.T) {
	before := testutil.ToFloat64(TokensIssued)
	RecordTokenIssued()
	assert.Equal(t, before+1, testutil.ToFloat64(TokensIssued))
}
