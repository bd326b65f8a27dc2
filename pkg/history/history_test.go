package history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unishare.xyz/home-monitor/pkg/common"
	"unishare.xyz/home-monitor/pkg/models"
	_ "unishare.xyz/home-monitor/pkg/testing"
)

const queryResponseCSV = `#datatype,string,long,dateTime:RFC3339,double
#group,false,false,false,false
#default,_result,,,
,result,table,_time,_value
,,0,2026-09-01T10:00:00Z,25.5
,,0,2026-09-01T10:01:00Z,25.8
`

func TestSeries(t *testing.T) {
	common.SetTestLoggerNop()

	var gotFlux string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/api/v2/query") {
			http.NotFound(w, r)
			return
		}
		body := make([]byte, r.ContentLength)
		r.Body.Read(body)
		gotFlux = string(body)

		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(queryResponseCSV))
	}))
	defer server.Close()

	reader := NewReader(server.URL, "test-token", "test-org", "home-monitor-logs")

	points, err := reader.Series(context.Background(), "AA:BB:CC", models.KindTemperature)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, 25.5, points[0].Value)
	assert.Equal(t, 25.8, points[1].Value)
	assert.True(t, points[0].Time.Before(points[1].Time))

	// the flux query must select the device measurement and the
	// metric's topic leaf field
	assert.Contains(t, gotFlux, `"AA:BB:CC"`)
	assert.Contains(t, gotFlux, `"temperature"`)
	assert.Contains(t, gotFlux, `"home-monitor-logs"`)
}

func TestSeriesQueryError(t *testing.T) {
	common.SetTestLoggerNop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "boom"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	reader := NewReader(server.URL, "test-token", "test-org", "home-monitor-logs")

	_, err := reader.Series(context.Background(), "AA:BB:CC", models.KindHumidity)
	require.Error(t, err)
}
