package sources

import (
	"context"
	"fmt"
	"time"

	"SawitFeed/internal/domain/models"
	"SawitFeed/pkg/config"
	xhttp "SawitFeed/pkg/http"
	"SawitFeed/pkg/util"
)

// APISource lifts quotes out of a structured JSON price list, the shape
// the KPBN trading board exposes:
//
//	{"prices": [{"region": "Riau", "price": 2200}, ...]}
//
// Price values arrive as numbers or formatted strings; both go through
// the shared price parser. Items that fail to parse are dropped.
type APISource struct {
	name   models.SourceID
	url    string
	client *xhttp.Client
}

func NewAPISource(cfg config.SourceConfig, client *xhttp.Client) *APISource {
	return &APISource{
		name:   models.SourceID(cfg.Name),
		url:    cfg.URL,
		client: client,
	}
}

func (s *APISource) Name() models.SourceID { return s.name }

type apiPayload struct {
	Prices []struct {
		Region string      `json:"region"`
		Price  interface{} `json:"price"`
	} `json:"prices"`
}

func (s *APISource) Fetch(ctx context.Context) ([]models.Quote, error) {
	var payload apiPayload
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{URL: s.url}, &payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}

	now := time.Now().UTC()
	quotes := make([]models.Quote, 0, len(payload.Prices))
	for _, item := range payload.Prices {
		price, err := util.ParsePrice(item.Price)
		if err != nil {
			continue
		}
		quotes = append(quotes, models.Quote{
			Source:    s.name,
			Region:    item.Region,
			Price:     price,
			Timestamp: now,
		})
	}
	return quotes, nil
}
