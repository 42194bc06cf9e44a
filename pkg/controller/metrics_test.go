package controller_test

import (
	"context"
	"countries/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics_RecordsRouteAndStatus(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/countries/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	mw, err := controller.WithMetrics(mp, mux)
	require.NoError(t, err)
	handler := mw(mux)

	for _, path := range []string{"/v1/countries/Atlantis", "/v1/countries/Narnia", "/nowhere"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	var histogramPoints int
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					route, _ := dp.Attributes.Value(attribute.Key("http.route"))
					status, _ := dp.Attributes.Value(attribute.Key("http.status_code"))
					counts[route.AsString()+" "+status.AsString()] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					histogramPoints += int(dp.Count)
				}
			}
		}
	}

	require.Equal(t, map[string]int64{
		"GET /v1/countries/{name} 404": 2,
		"unmatched 404":                1,
	}, counts)
	require.Equal(t, 3, histogramPoints)
}
