package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/kinur1/FutureInsight/internal/symbols"
	"github.com/kinur1/FutureInsight/internal/viewer"
	"github.com/kinur1/FutureInsight/pkg/models"
)

// handleConfig returns the defaults the viewer page boots with.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	rng := models.DefaultRange(s.cfg.Viewer.LookbackDays)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"default_symbols": s.cfg.Viewer.DefaultSymbols,
		"default_start":   rng.Start.Format(models.DateLayout),
		"default_end":     rng.End.Format(models.DateLayout),
		"max_symbols":     s.cfg.Viewer.MaxSymbols,
		"currency_prefix": s.cfg.Viewer.CurrencyPrefix,
		"provider":        s.provider.Name(),
	})
}

// handleView runs the full pipeline for the requested symbols and range.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	syms, err := s.parseSymbolsQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	rng, err := s.parseRangeQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := s.pipeline.Run(r.Context(), syms, rng)
	if err != nil {
		// Run only fails on an invalid range; everything else is
		// reported per symbol inside the report.
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

// handleSymbolCSV serves a single symbol's table as a CSV download.
func (s *Server) handleSymbolCSV(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["symbol"]))
	if symbol == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("symbol is required"))
		return
	}

	rng, err := s.parseRangeQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := s.pipeline.Run(r.Context(), []string{symbol}, rng)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	res := report.Results[0]
	switch res.Status {
	case viewer.StatusError:
		s.writeError(w, http.StatusBadGateway, fmt.Errorf("failed to load %s", symbol))
	case viewer.StatusNoData:
		s.writeError(w, http.StatusNotFound, fmt.Errorf("no data found for %s", symbol))
	default:
		filename := fmt.Sprintf("%s_%s_to_%s.csv",
			symbol,
			rng.Start.Format(models.DateLayout),
			rng.End.Format(models.DateLayout))

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte(res.CSV)); err != nil {
			s.logger.WithError(err).Error("Failed to write CSV response")
		}
	}
}

// parseSymbolsQuery resolves the symbol list from the query string,
// falling back to the configured defaults.
func (s *Server) parseSymbolsQuery(r *http.Request) ([]string, error) {
	text := r.URL.Query().Get("symbols")
	if text == "" {
		text = s.cfg.Viewer.DefaultSymbols
	}

	syms := symbols.Parse(text)
	if len(syms) > s.cfg.Viewer.MaxSymbols {
		return nil, fmt.Errorf("too many symbols: %d (max %d)", len(syms), s.cfg.Viewer.MaxSymbols)
	}

	return syms, nil
}

// parseRangeQuery resolves the date range from the query string. Missing
// bounds fall back to the configured lookback window ending today.
func (s *Server) parseRangeQuery(r *http.Request) (models.DateRange, error) {
	rng := models.DefaultRange(s.cfg.Viewer.LookbackDays)

	q := r.URL.Query()
	if v := q.Get("start"); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			return models.DateRange{}, err
		}
		rng.Start = d
	}
	if v := q.Get("end"); v != "" {
		d, err := models.ParseDate(v)
		if err != nil {
			return models.DateRange{}, err
		}
		rng.End = d
	}

	return rng, nil
}
