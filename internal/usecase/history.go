package usecase

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"SawitFeed/internal/domain/models"
)

// Trend parameters for the synthetic series, tuned against the shape of
// real TBS price charts: a mild upward drift most of the time, a
// smaller corrective drift otherwise, a seasonal swing peaking
// mid-year, and bounded day-to-day noise.
const (
	uptrendMonthly   = 0.02
	downtrendMonthly = -0.015
	uptrendProb      = 0.6
	seasonalFactor   = 0.03
	dailyVariance    = 0.05
	daysPerMonth     = 30
)

// Synthesizer produces a plausible-looking daily price history seeded
// from current quotes. The output is entirely synthetic: it exists so
// a trend chart can be rendered when no real history is available, and
// must never be presented as observed market data.
type Synthesizer struct {
	months int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer covering the trailing months.
// The generator is injected so tests can pin a seed and assert
// deterministic output.
func NewSynthesizer(months int, rng *rand.Rand) *Synthesizer {
	if months < 1 {
		months = 6
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{months: months, rng: rng}
}

// Generate walks backward day by day from now for every input quote,
// covering months × 30 points per quote, and returns the combined
// series sorted by timestamp ascending.
//
// The walk is autoregressive: each day's price is derived from the
// previous (later) day's price, not independently from the seed quote.
func (s *Synthesizer) Generate(current []models.Quote) []models.Quote {
	return s.GenerateMonths(current, s.months)
}

// GenerateMonths is Generate with an explicit horizon.
func (s *Synthesizer) GenerateMonths(current []models.Quote, months int) []models.Quote {
	if months < 1 {
		months = s.months
	}

	now := time.Now().UTC()
	historical := make([]models.Quote, 0, len(current)*months*daysPerMonth)

	s.mu.Lock()
	for _, seed := range current {
		price := seed.Price
		for i := 0; i < months; i++ {
			for day := 0; day < daysPerMonth; day++ {
				ts := now.AddDate(0, -i, -day)

				month := int(ts.Month()) - 1
				seasonal := math.Sin(float64(month)/11*math.Pi) * seasonalFactor

				trend := downtrendMonthly
				if s.rng.Float64() < uptrendProb {
					trend = uptrendMonthly
				}
				trend *= float64(months-i) / float64(months)

				noise := (s.rng.Float64() - 0.5) * 2 * dailyVariance

				price = int(math.Round(float64(price) * (1 + seasonal + trend + noise)))

				historical = append(historical, models.Quote{
					Source:    seed.Source,
					Region:    seed.Region,
					Price:     price,
					Timestamp: ts,
				})
			}
		}
	}
	s.mu.Unlock()

	sort.SliceStable(historical, func(i, j int) bool {
		return historical[i].Timestamp.Before(historical[j].Timestamp)
	})
	return historical
}
