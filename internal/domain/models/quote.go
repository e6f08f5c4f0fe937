package models

import "time"

// Quote is a single region/price observation from one source.
// Price is in whole rupiah per kg, no minor units.
type Quote struct {
	Source    SourceID  `json:"source"`
	Region    string    `json:"region"`
	Price     int       `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// SourceID identifies a configured quote source.
type SourceID string

const (
	SourceKPBN      SourceID = "KPBN"
	SourceBPS       SourceID = "BPS"
	SourceGAPKI     SourceID = "GAPKI"
	SourceDisbun    SourceID = "Dinas Perkebunan"
	SourceInfoSawit SourceID = "InfoSawit"
	SourceSocial    SourceID = "Social Media"
	SourceFallback  SourceID = "Fallback"
)

// credibility ranks sources by trustworthiness. 5 is the highest
// authority, 1 the lowest; sources not listed here score 0.
var credibility = map[SourceID]int{
	SourceKPBN:      5,
	SourceBPS:       5,
	SourceGAPKI:     4,
	SourceDisbun:    4,
	SourceInfoSawit: 3,
	SourceSocial:    1,
}

// Credibility returns the static weight for a source, 0 when unknown.
func Credibility(s SourceID) int {
	return credibility[s]
}

// PriceSnapshot is the aggregated result served to callers.
// Current is ranked by source credibility (descending, stable);
// Historical is sorted by timestamp ascending.
//
// Historical is synthesized from Current, not observed: it exists so
// consumers can render a plausible trend line when no real history is
// available, and must never be treated as market data.
type PriceSnapshot struct {
	Current    []Quote `json:"current"`
	Historical []Quote `json:"historical"`
}
