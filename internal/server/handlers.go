package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"MarketAdvisor/internal/advisor"
	"MarketAdvisor/internal/collector"
	"MarketAdvisor/internal/model"
	"MarketAdvisor/internal/recorder"
)

// analysisDays is the history window for full single-symbol analysis, in
// trading days (roughly one year).
const analysisDays = 252

type recommendationsResponse struct {
	Direction   model.Direction `json:"direction"`
	Fallback    bool            `json:"fallback"`
	Picks       []model.Pick    `json:"picks"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type overviewResponse struct {
	Indices     []collector.IndexQuote `json:"indices"`
	GeneratedAt time.Time              `json:"generated_at"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStockAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	ctx := r.Context()

	_, ind, err := s.collector.Snapshot(ctx, symbol, analysisDays)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("stock analysis fetch failed")
		s.respondError(w, http.StatusBadGateway, "could not fetch data for this symbol")
		return
	}

	info := s.collector.FetchInfo(ctx, symbol)
	sent := s.collector.FetchSentiment(ctx, symbol)

	rec := advisor.AnalyzeStock(symbol, ind, &info, sent)
	s.recordAnalysis(rec)
	s.respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleFundAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	ctx := r.Context()

	_, ind, err := s.collector.Snapshot(ctx, symbol, analysisDays)
	if err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("fund analysis fetch failed")
		s.respondError(w, http.StatusBadGateway, "could not fetch data for this symbol")
		return
	}

	info := s.collector.FetchInfo(ctx, symbol)

	rec := advisor.AnalyzeFund(symbol, ind, &info)
	s.recordAnalysis(rec)
	s.respondJSON(w, http.StatusOK, rec)
}

func (s *Server) handleStockRecommendations(w http.ResponseWriter, r *http.Request) {
	direction, ok := parseDirection(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "direction must be buy or sell")
		return
	}

	picks, fallback := s.ranker.TopStocks(r.Context(), direction)
	s.recordScan(model.AssetStock, direction, picks, fallback)
	s.respondJSON(w, http.StatusOK, recommendationsResponse{
		Direction:   direction,
		Fallback:    fallback,
		Picks:       picks,
		GeneratedAt: time.Now(),
	})
}

func (s *Server) handleFundRecommendations(w http.ResponseWriter, r *http.Request) {
	direction, ok := parseDirection(r)
	if !ok {
		s.respondError(w, http.StatusBadRequest, "direction must be buy or sell")
		return
	}

	picks, fallback := s.ranker.TopFunds(r.Context(), direction)
	s.recordScan(model.AssetFund, direction, picks, fallback)
	s.respondJSON(w, http.StatusOK, recommendationsResponse{
		Direction:   direction,
		Fallback:    fallback,
		Picks:       picks,
		GeneratedAt: time.Now(),
	})
}

func (s *Server) handleMarketOverview(w http.ResponseWriter, r *http.Request) {
	quotes := s.collector.MarketOverview(r.Context())
	s.respondJSON(w, http.StatusOK, overviewResponse{
		Indices:     quotes,
		GeneratedAt: time.Now(),
	})
}

func parseDirection(r *http.Request) (model.Direction, bool) {
	switch strings.ToLower(r.URL.Query().Get("direction")) {
	case "", "buy":
		return model.DirectionBuy, true
	case "sell":
		return model.DirectionSell, true
	default:
		return "", false
	}
}

func (s *Server) recordAnalysis(rec *model.Recommendation) {
	if err := s.recorder.RecordAnalysis(rec); err != nil {
		s.log.Error().Err(err).Str("symbol", rec.Symbol).Msg("record analysis")
	}
}

func (s *Server) recordScan(class model.AssetClass, direction model.Direction, picks []model.Pick, fallback bool) {
	err := s.recorder.RecordScan(&recorder.ScanRecord{
		AssetClass: class,
		Direction:  direction,
		Picks:      picks,
		Fallback:   fallback,
	})
	if err != nil {
		s.log.Error().Err(err).Str("asset_class", string(class)).Msg("record scan")
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}
