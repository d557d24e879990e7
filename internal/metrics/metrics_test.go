package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsolatedRegistries(t *testing.T) {
	a := New()
	b := New()

	a.BookingsCreated.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(a.BookingsCreated))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.BookingsCreated))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.EmailDispatch.WithLabelValues(DispatchSent).Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `stefan_email_dispatch_total{result="sent"} 1`)
}
