package usecase

import (
	"errors"
	"sort"
	"unicode/utf8"

	"SawitFeed/internal/domain/models"
)

// ErrNoValidData reports that no quote from any source survived
// validation. It is a result state, not a failure: the caller
// substitutes the fallback price set and carries on.
var ErrNoValidData = errors.New("no valid quotes from any source")

// ValidateAndRank filters implausible quotes and ranks the survivors.
//
// A quote is kept iff its price lies strictly inside (min, max) and its
// region name is longer than 2 characters. Rejected quotes are dropped
// silently. Survivors are stable-sorted by source credibility
// descending, so equally credible quotes keep their input order.
func ValidateAndRank(quotes []models.Quote, min, max int) ([]models.Quote, error) {
	kept := make([]models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Price <= min || q.Price >= max {
			continue
		}
		if utf8.RuneCountInString(q.Region) <= 2 {
			continue
		}
		kept = append(kept, q)
	}

	if len(kept) == 0 {
		return nil, ErrNoValidData
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return models.Credibility(kept[i].Source) > models.Credibility(kept[j].Source)
	})
	return kept, nil
}
