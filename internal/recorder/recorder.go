package recorder

import "MarketAdvisor/internal/model"

// ScanRecord holds one completed universe scan.
type ScanRecord struct {
	AssetClass model.AssetClass
	Direction  model.Direction
	Picks      []model.Pick
	Fallback   bool // true when the canned list was served
}

// Recorder persists analysis history for later inspection. The core never
// reads it back; it is a write-only audit trail.
type Recorder interface {
	RecordAnalysis(rec *model.Recommendation) error
	RecordScan(scan *ScanRecord) error
	Close() error
}
