package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"SawitFeed/internal/domain/models"
	"SawitFeed/internal/domain/repository"
	scache "SawitFeed/internal/service/cache"

	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttl time.Duration, sources ...repository.Source) *PriceService {
	t.Helper()
	log := testLogger(t)
	collector := NewCollector(sources, nopMetrics{}, log, time.Second, 4)
	synth := NewSynthesizer(6, nil)
	cache := scache.NewSnapshotCache(ttl, nopMetrics{})
	return NewPriceService(collector, synth, cache, nil, nopMetrics{}, log, 500, 5000)
}

func TestGetCurrentPricesServesCachedWithinTTL(t *testing.T) {
	src := &fakeSource{name: models.SourceKPBN, quotes: []models.Quote{
		quote(models.SourceKPBN, "Riau", 2200),
		quote(models.SourceKPBN, "Jambi", 2100),
	}}
	svc := newTestService(t, 5*time.Minute, src)

	first := svc.GetCurrentPrices(context.Background())
	second := svc.GetCurrentPrices(context.Background())

	require.EqualValues(t, 1, src.fetches.Load(), "second call within TTL must not hit the network")
	require.Equal(t, first.Current, second.Current)
	require.Equal(t, first.Historical, second.Historical)
}

func TestGetCurrentPricesRefreshesAfterTTL(t *testing.T) {
	src := &fakeSource{name: models.SourceKPBN, quotes: []models.Quote{
		quote(models.SourceKPBN, "Riau", 2200),
	}}
	svc := newTestService(t, time.Millisecond, src)

	svc.GetCurrentPrices(context.Background())
	time.Sleep(5 * time.Millisecond)
	svc.GetCurrentPrices(context.Background())

	require.EqualValues(t, 2, src.fetches.Load())
}

func TestGetCurrentPricesAllSourcesFail(t *testing.T) {
	down := errors.New("upstream down")
	a := &fakeSource{name: models.SourceKPBN, err: down}
	b := &fakeSource{name: models.SourceBPS, err: down}
	svc := newTestService(t, 5*time.Minute, a, b)

	snap := svc.GetCurrentPrices(context.Background())

	want := map[string]int{
		"Sumatera Utara":   2150,
		"Riau":             2200,
		"Jambi":            2100,
		"Kalimantan Barat": 2050,
	}
	require.Len(t, snap.Current, len(want))
	for _, q := range snap.Current {
		require.Equal(t, models.SourceFallback, q.Source)
		require.Equal(t, want[q.Region], q.Price, "region %s", q.Region)
	}
	require.Len(t, snap.Historical, len(want)*6*30)
}

func TestFallbackSubstitutionIsCached(t *testing.T) {
	// Sources answer but nothing survives validation; the resulting
	// fallback snapshot is still a completed cycle and stays cached.
	src := &fakeSource{name: models.SourceSocial, quotes: []models.Quote{
		quote(models.SourceSocial, "Riau", 120000),
	}}
	svc := newTestService(t, 5*time.Minute, src)

	first := svc.GetCurrentPrices(context.Background())
	second := svc.GetCurrentPrices(context.Background())

	require.EqualValues(t, 1, src.fetches.Load())
	require.Equal(t, first.Current, second.Current)
	for _, q := range first.Current {
		require.Equal(t, models.SourceFallback, q.Source)
	}
}

func TestGetFallbackPrices(t *testing.T) {
	src := &fakeSource{name: models.SourceKPBN, quotes: []models.Quote{
		quote(models.SourceKPBN, "Riau", 2200),
	}}
	svc := newTestService(t, 5*time.Minute, src)

	snap := svc.GetFallbackPrices(context.Background())

	require.EqualValues(t, 0, src.fetches.Load(), "fallback endpoint never touches sources")
	require.Len(t, snap.Current, 4)
	require.Len(t, snap.Historical, 4*6*30)
}

func TestFallbackSnapshotHonorsMonths(t *testing.T) {
	svc := newTestService(t, 5*time.Minute)

	snap := svc.FallbackSnapshot(context.Background(), 2)
	require.Len(t, snap.Historical, 4*2*30)
}

func TestGetCurrentPricesRankedByCredibility(t *testing.T) {
	src := &fakeSource{name: models.SourceSocial, quotes: []models.Quote{
		quote(models.SourceSocial, "Riau", 2000),
	}}
	official := &fakeSource{name: models.SourceKPBN, quotes: []models.Quote{
		quote(models.SourceKPBN, "Sumatera Utara", 2150),
	}}
	svc := newTestService(t, 5*time.Minute, src, official)

	snap := svc.GetCurrentPrices(context.Background())

	require.Len(t, snap.Current, 2)
	require.Equal(t, models.SourceKPBN, snap.Current[0].Source)
	require.Equal(t, models.SourceSocial, snap.Current[1].Source)
}
