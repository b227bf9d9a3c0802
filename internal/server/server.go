// internal/server/server.go
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"primedesign-core/design"
	"primedesign-core/dna"
	"primedesign-core/seqstats"
	"primedesign/internal/jsonutil"
	"primedesign/internal/output"
	"primedesign/pkg/api"
)

// Handler is the thin HTTP layer over the design service. It delegates
// all domain logic so transport concerns stay isolated here.
type Handler struct {
	svc     *design.Service
	logger  *slog.Logger
	metrics *Metrics
}

// New constructs a handler with its dependencies.
func New(svc *design.Service, logger *slog.Logger, metrics *Metrics) *Handler {
	return &Handler{svc: svc, logger: logger, metrics: metrics}
}

// Router mounts all endpoints. reg also backs GET /metrics.
func (h *Handler) Router(reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", h.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Post("/v1/design", h.handleDesign)
	r.Post("/v1/thermo/tm", h.handleTm)
	r.Post("/v1/thermo/comprehensive", h.handleComprehensive)
	r.Post("/v1/stats", h.handleStats)
	return r
}

func (h *Handler) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, "healthz", map[string]string{"status": "ok"})
}

func (h *Handler) handleDesign(w http.ResponseWriter, r *http.Request) {
	const endpoint = "design"
	var req DesignRequest
	if err := jsonutil.DecodeStrict(r.Body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, endpoint, err)
		return
	}
	params := design.DefaultParams()
	if req.Params != nil {
		params = *req.Params
	}

	start := time.Now()
	res, err := h.svc.DesignPrimers(req.Sequence, req.TargetStart, req.TargetEnd, params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, design.ErrInvalidRegion) {
			status = http.StatusBadRequest
		}
		h.writeError(w, status, endpoint, err)
		return
	}
	if !req.Multiplex {
		res.Multiplex = nil
	}
	h.metrics.DesignDuration.Observe(time.Since(start).Seconds())
	h.metrics.PairsReturned.Observe(float64(len(res.Pairs)))
	h.logger.Info("design completed",
		"pairs", len(res.Pairs),
		"target_start", req.TargetStart,
		"target_end", req.TargetEnd,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	h.writeJSON(w, http.StatusOK, endpoint, output.FromResult(res))
}

func (h *Handler) handleTm(w http.ResponseWriter, r *http.Request) {
	const endpoint = "thermo_tm"
	var req ThermoRequest
	if err := jsonutil.DecodeStrict(r.Body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, endpoint, err)
		return
	}
	seq := dna.Normalize(req.Sequence)
	calc := h.svc.Calculator()

	method := req.Method
	if method == "" {
		method = "lenient"
	}
	var tm float64
	switch method {
	case "lenient":
		tm = calc.TmLenient(seq)
	case "strict":
		var err error
		tm, err = calc.TmNearestNeighbor(seq)
		if err != nil {
			h.writeError(w, http.StatusUnprocessableEntity, endpoint, err)
			return
		}
	default:
		h.writeError(w, http.StatusBadRequest, endpoint, errors.New("method must be strict or lenient"))
		return
	}

	dg, err := calc.DeltaG(seq, calc.Conditions().TemperatureK)
	if err != nil {
		// Lenient Tm tolerates unknown stacks; report ΔG as zero then.
		dg = 0
	}
	h.writeJSON(w, http.StatusOK, endpoint, api.ThermoV1{
		Sequence: seq,
		Tm:       tm,
		DeltaG:   dg,
		Method:   method,
	})
}

func (h *Handler) handleComprehensive(w http.ResponseWriter, r *http.Request) {
	const endpoint = "thermo_comprehensive"
	var req ThermoRequest
	if err := jsonutil.DecodeStrict(r.Body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, endpoint, err)
		return
	}
	seq := dna.Normalize(req.Sequence)
	res, err := h.svc.Calculator().Comprehensive(seq)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, endpoint, err)
		return
	}
	h.writeJSON(w, http.StatusOK, endpoint, api.ComprehensiveV1{
		Sequence:             seq,
		Tm:                   res.TmC,
		DeltaH:               res.DH,
		DeltaS:               res.DS,
		DeltaG:               res.DG,
		FormationProbability: res.FormationProbability,
		CorrectionsApplied:   res.CorrectionsApplied,
		Breakdown: api.BreakdownV1{
			NearestNeighbor:   res.Breakdown.NearestNeighbor,
			TerminalEffects:   res.Breakdown.TerminalEffects,
			MismatchPenalty:   res.Breakdown.MismatchPenalty,
			LoopStructures:    res.Breakdown.LoopStructures,
			SaltCorrection:    res.Breakdown.SaltCorrection,
			MolecularCrowding: res.Breakdown.MolecularCrowding,
		},
	})
}

// StatsResponse is the body returned by POST /v1/stats.
type StatsResponse struct {
	Stats   seqstats.Stats         `json:"stats"`
	Windows []seqstats.WindowStats `json:"windows,omitempty"`
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	const endpoint = "stats"
	var req StatsRequest
	if err := jsonutil.DecodeStrict(r.Body, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, endpoint, err)
		return
	}
	seq := dna.Normalize(req.Sequence)
	resp := StatsResponse{Stats: seqstats.Compute(seq)}
	if req.WindowSize > 0 {
		step := req.WindowStep
		if step <= 0 {
			step = req.WindowSize
		}
		resp.Windows = seqstats.Windows(seq, req.WindowSize, step)
	}
	h.writeJSON(w, http.StatusOK, endpoint, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, endpoint string, v any) {
	h.metrics.Requests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsonutil.EncodePretty(w, v); err != nil {
		h.logger.Error("writing response", "endpoint", endpoint, "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, endpoint string, err error) {
	h.logger.Warn("request rejected", "endpoint", endpoint, "status", status, "error", err)
	h.writeJSON(w, status, endpoint, map[string]string{"error": err.Error()})
}
