package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"SawitFeed/internal/domain/models"
	"SawitFeed/pkg/config"
	xhttp "SawitFeed/pkg/http"

	"github.com/stretchr/testify/require"
)

func apiSource(t *testing.T, handler http.HandlerFunc) (*APISource, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	src := NewAPISource(config.SourceConfig{
		Name: string(models.SourceKPBN),
		Type: "api",
		URL:  srv.URL,
	}, xhttp.NewClient())
	return src, srv
}

func TestAPISourceParsesPriceList(t *testing.T) {
	src, _ := apiSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prices":[
			{"region":"Riau","price":2200},
			{"region":"Jambi","price":"Rp 2.100"},
			{"region":"Sumatera Utara","price":"2150"}
		]}`))
	})

	quotes, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	require.Equal(t, "Riau", quotes[0].Region)
	require.Equal(t, 2200, quotes[0].Price)
	require.Equal(t, 2100, quotes[1].Price)
	require.Equal(t, 2150, quotes[2].Price)
	for _, q := range quotes {
		require.Equal(t, models.SourceKPBN, q.Source)
		require.False(t, q.Timestamp.IsZero())
	}
}

func TestAPISourceDropsUnparseableItems(t *testing.T) {
	src, _ := apiSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prices":[
			{"region":"Riau","price":"harga naik"},
			{"region":"Jambi","price":2100}
		]}`))
	})

	quotes, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.Equal(t, "Jambi", quotes[0].Region)
}

func TestAPISourceErrorStatus(t *testing.T) {
	src, _ := apiSource(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	})

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), string(models.SourceKPBN))
}

func TestAPISourceMalformedJSON(t *testing.T) {
	src, _ := apiSource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prices": [`))
	})

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}
