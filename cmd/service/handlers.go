package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	querybuilder "waf-querybuilder"
	"waf-querybuilder/cmd/service/internal/sources"
	"waf-querybuilder/internal/security"
)

type Handler struct {
	Resolver sources.Resolver
	Log      zerolog.Logger
}

func NewHandler(resolver sources.Resolver, log zerolog.Logger) *Handler {
	return &Handler{Resolver: resolver, Log: log}
}

func (h *Handler) HandleAppAccessQuery(w http.ResponseWriter, r *http.Request) {
	var req appAccessRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	source, err := h.resolveOptionalSource(r, req.SourceRef, req.Source)
	if err != nil {
		h.writeSourceError(w, err)
		return
	}
	logType, err := querybuilder.ParseLogType(source.LogType)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if logType == querybuilder.LogTypeWAF {
		writeError(w, http.StatusBadRequest, "WAF sources are served by /queries/waf")
		return
	}
	if err := validateSource(source); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.WindowMinutes <= 0 {
		writeError(w, http.StatusBadRequest, "windowMinutes must be greater than zero")
		return
	}
	if req.ErrorThreshold <= 0 {
		writeError(w, http.StatusBadRequest, "errorThreshold must be greater than zero")
		return
	}

	sql := querybuilder.BuildAppAccessQuery(h.Log, querybuilder.AppAccessParams{
		LogType:        logType,
		Database:       source.Database,
		Table:          source.Table,
		EndTime:        endTimeOrNow(req.EndTime),
		WindowMinutes:  req.WindowMinutes,
		ErrorThreshold: req.ErrorThreshold,
	})
	writeJSON(w, http.StatusOK, queryResponse{SQL: sql})
}

func (h *Handler) HandleWAFQuery(w http.ResponseWriter, r *http.Request) {
	var req wafRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	source, err := h.resolveOptionalSource(r, req.SourceRef, req.Source)
	if err != nil {
		h.writeSourceError(w, err)
		return
	}
	if source.LogType != "" {
		logType, err := querybuilder.ParseLogType(source.LogType)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if logType != querybuilder.LogTypeWAF {
			writeError(w, http.StatusBadRequest, "app access sources are served by /queries/app-access")
			return
		}
	}
	if err := validateSource(source); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.WindowMinutes <= 0 {
		writeError(w, http.StatusBadRequest, "windowMinutes must be greater than zero")
		return
	}
	if req.RunScheduleMinutes <= 0 {
		writeError(w, http.StatusBadRequest, "runScheduleMinutes must be greater than zero")
		return
	}
	if err := validateCountryThresholds(req.ThresholdsByCountry); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sql, err := querybuilder.BuildWAFQuery(h.Log, querybuilder.WAFParams{
		Database:           source.Database,
		Table:              source.Table,
		EndTime:            endTimeOrNow(req.EndTime),
		WindowMinutes:      req.WindowMinutes,
		RequestThreshold:   req.RequestThreshold,
		CountryThresholds:  req.ThresholdsByCountry,
		GroupBy:            querybuilder.ParseGroupBy(req.GroupBy),
		RunScheduleMinutes: req.RunScheduleMinutes,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, queryResponse{SQL: sql})
}

func (h *Handler) resolveOptionalSource(r *http.Request, sourceRef string, fallback sources.SourceConfig) (sources.SourceConfig, error) {
	if strings.TrimSpace(sourceRef) == "" {
		return fallback, nil
	}
	if h.Resolver == nil {
		return sources.SourceConfig{}, sources.ErrNotConfigured
	}
	return h.Resolver.ResolveByRef(r.Context(), sourceRef)
}

func (h *Handler) writeSourceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sources.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, sources.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, sources.ErrNotConfigured):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// validateSource is the trust boundary in front of the query builder: the
// builder embeds these values into SQL literally, so anything outside the
// allowlist is rejected here.
func validateSource(source sources.SourceConfig) error {
	if !security.IsSafeIdentifier(source.Database) {
		return errors.New("database is not a safe identifier")
	}
	if !security.IsSafeIdentifier(source.Table) {
		return errors.New("table is not a safe identifier")
	}
	return nil
}

// validateCountryThresholds checks the mapping decodes and every key is a
// two-letter country code before the raw string reaches the query builder.
func validateCountryThresholds(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var byCountry map[string]float64
	if err := json.Unmarshal([]byte(raw), &byCountry); err != nil {
		return errors.New("thresholdsByCountry is not a valid JSON mapping")
	}
	for country := range byCountry {
		if !security.IsCountryCode(country) {
			return fmt.Errorf("thresholdsByCountry contains an invalid country code %q", country)
		}
	}
	return nil
}

func endTimeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
