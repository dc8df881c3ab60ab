package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/skylens/drone-roi/internal/config"
	"github.com/skylens/drone-roi/internal/report"
	"github.com/skylens/drone-roi/internal/sharelink"
	"github.com/skylens/drone-roi/pkg/constants"
	"github.com/skylens/drone-roi/pkg/roi"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and estimate API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Estimate API endpoint (editor-driven updates)
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Share-link resolution: the input record encoded as query parameters
	mux.HandleFunc("/api/share", h.handleShare)

	// Report document export
	mux.HandleFunc("/api/export", h.handleExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

// estimateRequest is the editor payload. Both sections are optional;
// omitted keys keep their defaults so a partial record is still complete
// by the time it reaches the engine.
type estimateRequest struct {
	Project config.ProjectConfig `json:"project"`
	Inputs  config.InputRecord   `json:"inputs"`
}

type estimateResponse struct {
	Metrics    report.MetricsPayload `json:"metrics"`
	Inputs     config.InputRecord    `json:"inputs"`
	Warnings   []string              `json:"warnings,omitempty"`
	ShareQuery string                `json:"shareQuery"`
	Duration   string                `json:"duration"`
}

type exportResponse struct {
	Report   report.ReportPayload `json:"report"`
	Warnings []string             `json:"warnings,omitempty"`
	Duration string               `json:"duration"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	req, err := h.decodeEstimateRequest(w, r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleEstimate")
		return
	}

	h.respondEstimate(w, req.Project, req.Inputs, start, "server.handleEstimate")
}

func (h *handler) handleShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	project, inputs := sharelink.Decode(r.URL.Query())
	h.respondEstimate(w, project, inputs, start, "server.handleShare")
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	req, err := h.decodeEstimateRequest(w, r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleExport")
		return
	}

	conf := config.Configuration{Project: req.Project, Inputs: req.Inputs}
	metrics := roi.Calculate(conf.EngineInputs())
	doc := report.Build(req.Project, metrics)
	elapsed := time.Since(start)

	h.logger.Info("report exported",
		zap.String("op", "server.handleExport"),
		zap.String("reportId", doc.ID),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, exportResponse{
		Report:   report.NewReportPayload(doc),
		Warnings: conf.ValidateConfiguration(),
		Duration: elapsed.String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) decodeEstimateRequest(w http.ResponseWriter, r *http.Request) (estimateRequest, error) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	// Defaults first so absent keys stay complete.
	req := estimateRequest{
		Project: config.DefaultProject(),
		Inputs:  config.DefaultInputs(),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return req, fmt.Errorf("request exceeds limit of %d bytes", h.maxBodySize)
		}
		return req, fmt.Errorf("failed to decode request: %v", err)
	}
	return req, nil
}

func (h *handler) respondEstimate(w http.ResponseWriter, project config.ProjectConfig, inputs config.InputRecord, start time.Time, op string) {
	conf := config.Configuration{Project: project, Inputs: inputs}
	warnings := conf.ValidateConfiguration()
	metrics := roi.Calculate(conf.EngineInputs())
	elapsed := time.Since(start)

	h.logger.Info("estimate computed",
		zap.String("op", op),
		zap.Float64("totalSavings", metrics.TotalSavings),
		zap.Float64("totalCosts", metrics.TotalCosts),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, estimateResponse{
		Metrics:    report.NewMetricsPayload(metrics),
		Inputs:     inputs,
		Warnings:   warnings,
		ShareQuery: sharelink.Encode(project, inputs).Encode(),
		Duration:   elapsed.String(),
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("estimate request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
