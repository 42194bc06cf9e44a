package controller_test

import (
	"countries/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func servePprof(t *testing.T, path string) *http.Response {
	t.Helper()
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://pprof.local"+path, nil))

	return rec.Result()
}

func TestPprofMux_Index(t *testing.T) {
	res := servePprof(t, "/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestPprofMux_Cmdline_OK(t *testing.T) {
	res := servePprof(t, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPprofMux_NamedProfile(t *testing.T) {
	res := servePprof(t, "/debug/pprof/goroutine?debug=1")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, res.Header.Get("Content-Type"), "text/plain")
}

func TestPprofMux_OutsidePrefix(t *testing.T) {
	res := servePprof(t, "/cmdline")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
