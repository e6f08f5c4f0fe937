// Package fallback supplies the fixed price set used when no source
// yields valid data. It has no external dependency and always succeeds.
package fallback

import (
	"time"

	"SawitFeed/internal/domain/models"
)

// Known-good reference prices per producing region, in rupiah per kg.
var regions = []struct {
	region string
	price  int
}{
	{"Sumatera Utara", 2150},
	{"Riau", 2200},
	{"Jambi", 2100},
	{"Kalimantan Barat", 2050},
}

// Quotes returns the fixed fallback price set, timestamped now.
// Fallback quotes carry no credibility weight; consumers can tell them
// apart from real data by the source tag.
func Quotes() []models.Quote {
	now := time.Now().UTC()
	out := make([]models.Quote, 0, len(regions))
	for _, r := range regions {
		out = append(out, models.Quote{
			Source:    models.SourceFallback,
			Region:    r.region,
			Price:     r.price,
			Timestamp: now,
		})
	}
	return out
}
