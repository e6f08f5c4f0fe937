// Package sources implements the external quote endpoints. Every source
// performs exactly one retrieval per aggregation cycle; retries happen
// only at cache-refresh granularity, never in here.
package sources

import (
	"fmt"

	"SawitFeed/internal/domain/repository"
	"SawitFeed/pkg/config"
	xhttp "SawitFeed/pkg/http"
)

// Build constructs the configured source list.
func Build(cfgs []config.SourceConfig, client *xhttp.Client) ([]repository.Source, error) {
	out := make([]repository.Source, 0, len(cfgs))
	for _, sc := range cfgs {
		switch sc.Type {
		case "api":
			out = append(out, NewAPISource(sc, client))
		case "document":
			out = append(out, NewDocumentSource(sc, client))
		default:
			return nil, fmt.Errorf("source %q: unknown type %q", sc.Name, sc.Type)
		}
	}
	return out, nil
}
