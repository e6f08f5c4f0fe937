package sources

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"SawitFeed/internal/domain/models"
	"SawitFeed/pkg/config"
	xhttp "SawitFeed/pkg/http"
	"SawitFeed/pkg/util"
)

var (
	// Rupiah-prefixed price token with optional thousands groups,
	// e.g. "Rp 2.500" or "Rp2,150".
	priceRe = regexp.MustCompile(`(?i)Rp\s*\d{1,3}(?:[.,]\d{3})*`)

	// Known producing-province names as they appear in news text.
	regionRe = regexp.MustCompile(`(?i)(sumatera utara|kalimantan barat|kalimantan timur|sumatera|kalimantan|riau|jambi|aceh|bengkulu|sumsel|sumut|kalbar|kaltim|kalsel|kalteng)`)

	tagRe = regexp.MustCompile(`<[^>]*>`)
)

// DocumentSource scans a semi-structured page (news feed, bulletin,
// social timeline) block by block. A quote is emitted only when the
// price matcher and the region matcher both hit inside the same block;
// a source pinned to a single province via config needs only the price.
type DocumentSource struct {
	name   models.SourceID
	url    string
	region string
	client *xhttp.Client
}

func NewDocumentSource(cfg config.SourceConfig, client *xhttp.Client) *DocumentSource {
	return &DocumentSource{
		name:   models.SourceID(cfg.Name),
		url:    cfg.URL,
		region: cfg.Region,
		client: client,
	}
}

func (s *DocumentSource) Name() models.SourceID { return s.name }

func (s *DocumentSource) Fetch(ctx context.Context) ([]models.Quote, error) {
	var body []byte
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{URL: s.url}, &body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}

	now := time.Now().UTC()
	var quotes []models.Quote
	for _, block := range textBlocks(string(body)) {
		priceTok := priceRe.FindString(block)
		if priceTok == "" {
			continue
		}

		region := s.region
		if region == "" {
			region = regionRe.FindString(block)
			if region == "" {
				continue
			}
		}

		price, err := util.ParsePriceString(priceTok)
		if err != nil {
			continue
		}

		quotes = append(quotes, models.Quote{
			Source:    s.name,
			Region:    region,
			Price:     price,
			Timestamp: now,
		})
	}
	return quotes, nil
}

// textBlocks strips markup and splits a document into scannable units.
// Tags become line breaks so that adjacent elements never merge into
// one block and pair an unrelated price with an unrelated region.
func textBlocks(doc string) []string {
	flat := tagRe.ReplaceAllString(doc, "\n")
	lines := strings.Split(flat, "\n")
	blocks := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			blocks = append(blocks, line)
		}
	}
	return blocks
}
