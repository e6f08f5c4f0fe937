package util

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// ErrBadPrice reports a token that cannot be normalized to a number.
var ErrBadPrice = errors.New("price token is not a number")

// ParsePrice normalizes a raw price token into whole rupiah.
// Numeric tokens are rounded; strings go through ParsePriceString.
func ParsePrice(token interface{}) (int, error) {
	switch v := token.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(math.Round(v)), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, ErrBadPrice
		}
		return int(math.Round(f)), nil
	case string:
		return ParsePriceString(v)
	default:
		return 0, ErrBadPrice
	}
}

// ParsePriceString converts a textual price like "Rp 2.500" to 2500.
//
// The rule is inherited from the upstream feed and is lossy on purpose:
// every dot is treated as a thousands separator and the first comma as
// the decimal point, so a plain decimal like "2500.50" parses to 250050.
// Downstream consumers depend on this exact behavior.
func ParsePriceString(s string) (int, error) {
	// Keep digits and commas only; dots and currency symbols drop out.
	cleaned := make([]byte, 0, len(s))
	replaced := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			cleaned = append(cleaned, c)
		case c == ',' && !replaced:
			cleaned = append(cleaned, '.')
			replaced = true
		case c == ',':
			cleaned = append(cleaned, ',')
		}
	}

	// Parse the longest leading decimal prefix; a second comma or any
	// trailing garbage is ignored, matching parseFloat semantics.
	end := 0
	dot := false
	for end < len(cleaned) {
		c := cleaned[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !dot {
			dot = true
			end++
			continue
		}
		break
	}

	prefix := string(cleaned[:end])
	if prefix == "" || prefix == "." {
		return 0, ErrBadPrice
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, ErrBadPrice
	}
	return int(math.Round(f)), nil
}
