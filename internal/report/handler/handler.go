package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fundus/internal/report"
	domain "fundus/pkg/domain"
	dErrors "fundus/pkg/domain-errors"
	"fundus/pkg/platform/httputil"
	"fundus/pkg/platform/sentinel"
	"fundus/pkg/requestcontext"
)

// Service defines the report operations the handler needs.
type Service interface {
	Build(ctx context.Context, unitID domain.UnitID, cfg report.Config) (*report.Report, error)
}

// Exporter persists a built report and returns its object key.
type Exporter interface {
	Export(ctx context.Context, unitID domain.UnitID, rpt *report.Report) (string, error)
}

// Handler wires the report endpoint to the report service.
type Handler struct {
	service  Service
	exporter Exporter
	logger   *slog.Logger
}

// New constructs a report handler. exporter may be nil; export requests
// are then rejected.
func New(service Service, exporter Exporter, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		exporter: exporter,
		logger:   logger,
	}
}

// Register mounts report endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/units/{unitID}/report", h.HandleGetReport)
}

// HandleGetReport handles GET /units/{unitID}/report requests.
//
// Query parameters: cap_rate (required), days_back, loan_balance,
// opex_annual, and export=true to persist the result.
func (h *Handler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	unitID, err := domain.ParseUnitID(chi.URLParam(r, "unitID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	cfg, err := configFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rpt, err := h.service.Build(ctx, unitID, cfg)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			err = dErrors.Wrap(dErrors.CodeNotFound, "unit not found", err)
		}
		h.logger.ErrorContext(ctx, "report build failed",
			"request_id", requestID,
			"unit_id", unitID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	if r.URL.Query().Get("export") == "true" {
		key, err := h.export(ctx, unitID, rpt)
		if err != nil {
			h.logger.ErrorContext(ctx, "report export failed",
				"request_id", requestID,
				"unit_id", unitID,
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
		w.Header().Set("X-Export-Key", key)
	}

	h.logger.InfoContext(ctx, "report served",
		"request_id", requestID,
		"unit_id", unitID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, rpt)
}

func (h *Handler) export(ctx context.Context, unitID domain.UnitID, rpt *report.Report) (string, error) {
	if h.exporter == nil {
		return "", dErrors.New(dErrors.CodeBadRequest, "export is not configured")
	}
	key, err := h.exporter.Export(ctx, unitID, rpt)
	if err != nil {
		return "", dErrors.Wrap(dErrors.CodeUnavailable, "export failed", err)
	}
	return key, nil
}

func configFromQuery(r *http.Request) (report.Config, error) {
	query := r.URL.Query()
	var cfg report.Config

	capRate, err := parseFloat(query.Get("cap_rate"), "cap_rate")
	if err != nil {
		return report.Config{}, err
	}
	if capRate == nil {
		return report.Config{}, dErrors.New(dErrors.CodeInvalidInput, "cap_rate is required")
	}
	cfg.AssumedCapRate = *capRate

	if raw := query.Get("days_back"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return report.Config{}, dErrors.New(dErrors.CodeInvalidInput, "days_back must be an integer")
		}
		cfg.DaysBack = days
	}

	cfg.LoanBalance, err = parseFloat(query.Get("loan_balance"), "loan_balance")
	if err != nil {
		return report.Config{}, err
	}

	opex, err := parseFloat(query.Get("opex_annual"), "opex_annual")
	if err != nil {
		return report.Config{}, err
	}
	if opex != nil {
		cfg.OpexAnnual = *opex
	}
	return cfg, nil
}

func parseFloat(raw, name string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, name+" must be a number")
	}
	return &v, nil
}
