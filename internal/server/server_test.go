// internal/server/server_test.go
package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primedesign-core/design"
	"primedesign/pkg/api"
)

const designTemplate = "GGCCCCCCACGATCAGCAGTTCGGCTTGTGAGGTCTTCGCCGGGTGGTCTCCCGCATTTATACCTTGCTGGCGCCTCAAGGCGCCACCATATGAACGATGGATGAAGGCTTCCGATCCGTCGTCGCGTCGTAGTTAAAAGCTTTGAGTCCAAGCCGGTGAGCAGTTTAGGCAGCCACCATGAGGCACCTCTAAACGTGCGGAGAACAAGAGTCGAAAGTTTTGCCTGAAGGGCCGTCTTGCTTCTTCAATCCAACGATACTAACGCATGCTAACGATGCATCAAGCTGCGCGAGCCCAAC"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(design.NewService(), logger, NewMetrics(reg))
	srv := httptest.NewServer(h.Router(reg))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestDesignEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("ok", func(t *testing.T) {
		resp := postJSON(t, srv, "/v1/design", DesignRequest{
			Sequence: designTemplate, TargetStart: 100, TargetEnd: 200,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		res := decodeBody[api.DesignResultV1](t, resp)
		require.Len(t, res.Pairs, 10)
		assert.Equal(t, "TACCTTGCTGGCGCCTCAAG", res.Pairs[0].Forward.Sequence)
		assert.Nil(t, res.Multiplex)
	})

	t.Run("multiplex", func(t *testing.T) {
		resp := postJSON(t, srv, "/v1/design", DesignRequest{
			Sequence: designTemplate, TargetStart: 100, TargetEnd: 200, Multiplex: true,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		res := decodeBody[api.DesignResultV1](t, resp)
		require.NotNil(t, res.Multiplex)
		assert.InDelta(t, 0.836, res.Multiplex.OverallScore, 0.01)
	})

	t.Run("invalid region", func(t *testing.T) {
		resp := postJSON(t, srv, "/v1/design", DesignRequest{
			Sequence: designTemplate, TargetStart: 200, TargetEnd: 100,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeBody[map[string]string](t, resp)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/design", "application/json",
			strings.NewReader(`{"sequence":"ACGT","bogus":true}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTmEndpoint(t *testing.T) {
	srv := newTestServer(t)

	t.Run("lenient default", func(t *testing.T) {
		resp := postJSON(t, srv, "/v1/thermo/tm", ThermoRequest{Sequence: "ATGCGTACGATCGATCGTAC"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		res := decodeBody[api.ThermoV1](t, resp)
		assert.Equal(t, "lenient", res.Method)
		assert.InDelta(t, 55.45, res.Tm, 0.05)
		assert.Negative(t, res.DeltaG)
	})

	t.Run("strict", func(t *testing.T) {
		resp := postJSON(t, srv, "/v1/thermo/tm", ThermoRequest{Sequence: "GCGCGCGCGCGC", Method: "strict"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		res := decodeBody[api.ThermoV1](t, resp)
		assert.InDelta(t, 97.33, res.Tm, 0.05)
	})

	t.Run("strict rejects unknown bases", func(t *testing.T) {
		resp := postJSON(t, srv, "/v1/thermo/tm", ThermoRequest{Sequence: "ACGTNACGT", Method: "strict"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("bad method", func(t *testing.T) {
		resp := postJSON(t, srv, "/v1/thermo/tm", ThermoRequest{Sequence: "ACGT", Method: "sloppy"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestComprehensiveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/v1/thermo/comprehensive", ThermoRequest{Sequence: "GAATTC"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decodeBody[api.ComprehensiveV1](t, resp)
	assert.Contains(t, res.CorrectionsApplied, "terminal_correction")
	assert.Contains(t, res.CorrectionsApplied, "symmetry_correction")
	assert.Negative(t, res.DeltaH)
	assert.GreaterOrEqual(t, res.FormationProbability, 0.0)
	assert.LessOrEqual(t, res.FormationProbability, 1.0)

	short := postJSON(t, srv, "/v1/thermo/comprehensive", ThermoRequest{Sequence: "A"})
	assert.Equal(t, http.StatusUnprocessableEntity, short.StatusCode)
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv, "/v1/stats", StatsRequest{
		Sequence: "ATCGATCGATCG", WindowSize: 4,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res := decodeBody[StatsResponse](t, resp)
	assert.Equal(t, 12, res.Stats.Length)
	assert.InDelta(t, 50.0, res.Stats.GCPercent, 1e-9)
	assert.Len(t, res.Windows, 3)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Generate one labelled request first.
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "primedesign_requests_total")
}
