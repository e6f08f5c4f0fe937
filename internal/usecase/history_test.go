package usecase

import (
	"math/rand"
	"testing"
	"time"

	"SawitFeed/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func TestSynthesizerPointCount(t *testing.T) {
	synth := NewSynthesizer(6, rand.New(rand.NewSource(1)))

	seed := []models.Quote{{
		Source:    models.SourceBPS,
		Region:    "Riau",
		Price:     2000,
		Timestamp: time.Now().UTC(),
	}}

	out := synth.Generate(seed)
	require.Len(t, out, 180)
}

func TestSynthesizerPricesArePositive(t *testing.T) {
	synth := NewSynthesizer(6, rand.New(rand.NewSource(42)))

	seed := []models.Quote{
		{Source: models.SourceBPS, Region: "Riau", Price: 2000},
		{Source: models.SourceGAPKI, Region: "Jambi", Price: 501},
	}

	for _, q := range synth.Generate(seed) {
		require.Greater(t, q.Price, 0, "region %s at %s", q.Region, q.Timestamp)
	}
}

func TestSynthesizerSortedByTimestamp(t *testing.T) {
	synth := NewSynthesizer(6, rand.New(rand.NewSource(7)))

	seed := []models.Quote{
		{Source: models.SourceBPS, Region: "Riau", Price: 2200},
		{Source: models.SourceKPBN, Region: "Sumatera Utara", Price: 2150},
	}

	out := synth.Generate(seed)
	require.Len(t, out, 360)
	for i := 1; i < len(out); i++ {
		require.False(t, out[i].Timestamp.Before(out[i-1].Timestamp),
			"series must be non-decreasing at index %d", i)
	}
}

func TestSynthesizerKeepsSeedIdentity(t *testing.T) {
	synth := NewSynthesizer(6, rand.New(rand.NewSource(3)))

	seed := []models.Quote{{Source: models.SourceFallback, Region: "Jambi", Price: 2100}}

	for _, q := range synth.Generate(seed) {
		require.Equal(t, models.SourceFallback, q.Source)
		require.Equal(t, "Jambi", q.Region)
	}
}

func TestSynthesizerDeterministicWithPinnedSeed(t *testing.T) {
	seed := []models.Quote{{Source: models.SourceBPS, Region: "Riau", Price: 2000}}

	a := NewSynthesizer(6, rand.New(rand.NewSource(99))).Generate(seed)
	b := NewSynthesizer(6, rand.New(rand.NewSource(99))).Generate(seed)

	require.Len(t, b, len(a))
	for i := range a {
		require.Equal(t, a[i].Price, b[i].Price, "prices diverge at index %d", i)
	}
}

func TestSynthesizerMonthsOverride(t *testing.T) {
	synth := NewSynthesizer(6, rand.New(rand.NewSource(5)))

	seed := []models.Quote{{Source: models.SourceBPS, Region: "Riau", Price: 2000}}
	out := synth.GenerateMonths(seed, 2)
	require.Len(t, out, 60)
}
