package universe

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"MarketAdvisor/internal/advisor"
	"MarketAdvisor/internal/collector"
	"MarketAdvisor/internal/model"
)

const (
	// minStockBars / minFundBars: candidates with shorter histories are
	// skipped, not retried.
	minStockBars = 30
	minFundBars  = 50

	// fetch windows for the quick screen, in trading days
	stockScanDays = 63  // ~3 months
	fundScanDays  = 126 // ~6 months

	topN = 5

	// defaultConcurrency bounds the parallel fan-out; each candidate's
	// pipeline is independent and side-effect-free.
	defaultConcurrency = 5
)

// Ranker fans the fetch→indicator→score pipeline out across a candidate
// universe. It never fails: when every candidate is skipped it falls back to
// the canned recommendation set, so callers always get a non-empty top-5.
type Ranker struct {
	Collector   *collector.Collector
	Concurrency int
	log         zerolog.Logger
}

// NewRanker creates a Ranker around a collector.
func NewRanker(col *collector.Collector, log zerolog.Logger) *Ranker {
	return &Ranker{
		Collector:   col,
		Concurrency: defaultConcurrency,
		log:         log.With().Str("component", "ranker").Logger(),
	}
}

// TopStocks scans the stock universe in the given direction and returns the
// five highest-scoring candidates. The second return is true when the canned
// fallback list was served.
func (r *Ranker) TopStocks(ctx context.Context, direction model.Direction) ([]model.Pick, bool) {
	picks := r.scan(ctx, StockCandidates, func(ctx context.Context, c Candidate) *model.Pick {
		series, ind, err := r.Collector.Snapshot(ctx, c.Symbol, stockScanDays)
		if err != nil {
			r.log.Debug().Err(err).Str("symbol", c.Symbol).Msg("skipping candidate")
			return nil
		}
		if len(series.Bars) < minStockBars {
			r.log.Debug().Str("symbol", c.Symbol).Int("bars", len(series.Bars)).Msg("series too short, skipping")
			return nil
		}
		res := advisor.ScreenStock(ind, c.Sector, direction)
		return buildPick(c, series.CurrentPrice, res)
	})
	if len(picks) == 0 {
		r.log.Warn().Str("direction", string(direction)).Msg("entire stock universe failed, using fallback list")
		return FallbackStocks(direction), true
	}
	return picks, false
}

// TopFunds scans the fund universe in the given direction and returns the
// five highest-scoring candidates. The second return is true when the canned
// fallback list was served.
func (r *Ranker) TopFunds(ctx context.Context, direction model.Direction) ([]model.Pick, bool) {
	picks := r.scan(ctx, FundCandidates, func(ctx context.Context, c Candidate) *model.Pick {
		series, ind, err := r.Collector.Snapshot(ctx, c.Symbol, fundScanDays)
		if err != nil {
			r.log.Debug().Err(err).Str("symbol", c.Symbol).Msg("skipping candidate")
			return nil
		}
		if len(series.Bars) < minFundBars {
			r.log.Debug().Str("symbol", c.Symbol).Int("bars", len(series.Bars)).Msg("series too short, skipping")
			return nil
		}
		info := r.Collector.FetchInfo(ctx, c.Symbol)
		res := advisor.ScreenFund(ind, &info, c.Sector, direction)
		return buildPick(c, series.CurrentPrice, res)
	})
	if len(picks) == 0 {
		r.log.Warn().Str("direction", string(direction)).Msg("entire fund universe failed, using fallback list")
		return FallbackFunds(direction), true
	}
	return picks, false
}

// scan evaluates all candidates in parallel, collects the survivors, and
// ranks them by composite score. Ordering depends only on the scores, never
// on fetch completion order.
func (r *Ranker) scan(ctx context.Context, candidates []Candidate, eval func(context.Context, Candidate) *model.Pick) []model.Pick {
	results := make([]*model.Pick, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	limit := r.Concurrency
	if limit <= 0 {
		limit = defaultConcurrency
	}
	g.SetLimit(limit)

	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			results[i] = eval(gctx, c) // nil means skipped
			return nil
		})
	}
	_ = g.Wait() // eval never returns an error; skips are nil slots

	picks := make([]model.Pick, 0, len(results))
	for _, p := range results {
		if p != nil {
			picks = append(picks, *p)
		}
	}

	sort.SliceStable(picks, func(i, j int) bool { return picks[i].Score > picks[j].Score })
	if len(picks) > topN {
		picks = picks[:topN]
	}
	return picks
}

func buildPick(c Candidate, currentPrice float64, res advisor.ScreenResult) *model.Pick {
	return &model.Pick{
		Symbol:       c.Symbol,
		Name:         c.Name,
		Sector:       c.Sector,
		CurrentPrice: currentPrice,
		TargetPrice:  currentPrice * res.TargetMultiplier,
		Confidence:   res.Confidence,
		PriceChange:  (res.TargetMultiplier - 1) * 100,
		Reasoning:    res.Reasoning,
		Score:        res.Score,
	}
}
