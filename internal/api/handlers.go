package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/wealthcoach/wealthcoach/internal/calculation"
	"github.com/wealthcoach/wealthcoach/internal/domain"
	"github.com/wealthcoach/wealthcoach/internal/output"
)

// RequiredMonthlyRequest is the body of POST /v1/required-monthly.
type RequiredMonthlyRequest struct {
	Target          float64 `json:"target"`
	HorizonYears    int     `json:"horizon_years"`
	AnnualReturnPct float64 `json:"annual_return_pct"`
	AnnualFeePct    float64 `json:"annual_fee_pct"`
}

// RequiredMonthlyResponse is the reply of POST /v1/required-monthly.
type RequiredMonthlyResponse struct {
	RequiredMonthly decimal.Decimal `json:"required_monthly"`
	NetReturnPct    float64         `json:"net_return_pct"`
	Iterations      int             `json:"iterations"`
	Reachable       bool            `json:"reachable"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	var plan domain.Plan
	if !s.decode(w, r, &plan) {
		return
	}

	s.logWarnings(r, &domain.PlanFile{Plans: []domain.Plan{plan}})
	report, err := s.engine.EvaluatePlan(r.Context(), &plan)
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, report)
}

// handleBatch evaluates a plan file. With ?format=<name> the batch is rendered
// by that output formatter instead of returned as JSON.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var formatter output.Formatter
	if name := r.URL.Query().Get("format"); name != "" {
		f, err := output.LookupFormatter(name)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		formatter = f
	}

	var file domain.PlanFile
	if !s.decode(w, r, &file) {
		return
	}

	s.logWarnings(r, &file)
	batch, err := s.engine.EvaluatePlanFile(r.Context(), &file)
	if err != nil {
		s.writeEngineError(w, r, err)
		return
	}

	if formatter == nil {
		s.respond(w, r, http.StatusOK, batch)
		return
	}
	body, err := formatter.Format(batch)
	if err != nil {
		s.requestLog(r).WithError(err).Error("render failed")
		writeError(w, r, http.StatusInternalServerError, "failed to render report")
		return
	}
	w.Header().Set("Content-Type", contentType(formatter.Name()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (s *Server) handleRequiredMonthly(w http.ResponseWriter, r *http.Request) {
	var req RequiredMonthlyRequest
	if !s.decode(w, r, &req) {
		return
	}
	switch {
	case req.Target < 0:
		writeError(w, r, http.StatusBadRequest, "target cannot be negative")
		return
	case req.HorizonYears < 1 || req.HorizonYears > domain.MaxHorizonYears:
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("horizon_years must be between 1 and %d", domain.MaxHorizonYears))
		return
	case req.AnnualFeePct < 0:
		writeError(w, r, http.StatusBadRequest, "annual_fee_pct cannot be negative")
		return
	}

	net := calculation.NetReturn(req.AnnualReturnPct, req.AnnualFeePct)
	res := s.engine.RequiredMonthly(req.Target, req.HorizonYears, net)
	s.respond(w, r, http.StatusOK, RequiredMonthlyResponse{
		RequiredMonthly: decimal.NewFromFloat(res.Monthly).Round(2),
		NetReturnPct:    net,
		Iterations:      res.Iterations,
		Reachable:       res.Reachable,
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) logWarnings(r *http.Request, file *domain.PlanFile) {
	for _, warning := range s.parser.Warnings(file) {
		s.requestLog(r).Warn(warning)
	}
}

func (s *Server) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidPlan) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s.requestLog(r).WithError(err).Error("projection failed")
	writeError(w, r, http.StatusInternalServerError, "projection failed")
}

func contentType(format string) string {
	switch format {
	case "html":
		return "text/html; charset=utf-8"
	case "csv", "detailed-csv":
		return "text/csv; charset=utf-8"
	case "json":
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}

// respond encodes v before any header is written, so a payload that cannot be
// encoded turns into a logged 500 rather than a truncated 200.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.requestLog(r).WithError(err).Error("encoding response failed")
		writeError(w, r, http.StatusInternalServerError, "encoding response failed")
		return
	}
	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	// ErrorResponse holds only strings and always encodes.
	body, _ := json.Marshal(ErrorResponse{Error: msg, RequestID: RequestIDFromContext(r.Context())})
	writeBody(w, status, body)
}
