package usecase

import (
	"testing"
	"time"

	"SawitFeed/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func quote(src models.SourceID, region string, price int) models.Quote {
	return models.Quote{
		Source:    src,
		Region:    region,
		Price:     price,
		Timestamp: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateBandIsExclusive(t *testing.T) {
	in := []models.Quote{
		quote(models.SourceBPS, "Riau", 500),  // at lower bound, out
		quote(models.SourceBPS, "Riau", 501),  // inside, kept
		quote(models.SourceBPS, "Riau", 4999), // inside, kept
		quote(models.SourceBPS, "Riau", 5000), // at upper bound, out
		quote(models.SourceBPS, "Riau", 120),  // below, out
		quote(models.SourceBPS, "Riau", 9000), // above, out
	}

	out, err := ValidateAndRank(in, 500, 5000)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, 501, out[0].Price)
	require.Equal(t, 4999, out[1].Price)
}

func TestValidateRejectsShortRegions(t *testing.T) {
	in := []models.Quote{
		quote(models.SourceBPS, "NA", 2000),
		quote(models.SourceBPS, "", 2000),
		quote(models.SourceBPS, "Riau", 2000),
	}

	out, err := ValidateAndRank(in, 500, 5000)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "Riau", out[0].Region)
}

func TestRankOrdersByCredibilityDesc(t *testing.T) {
	in := []models.Quote{
		quote(models.SourceSocial, "Jambi", 2000),
		quote(models.SourceGAPKI, "Riau", 2100),
		quote(models.SourceKPBN, "Sumatera Utara", 2200),
		quote(models.SourceInfoSawit, "Kalimantan Barat", 2050),
	}

	out, err := ValidateAndRank(in, 500, 5000)
	require.NoError(t, err)

	got := make([]models.SourceID, 0, len(out))
	for _, q := range out {
		got = append(got, q.Source)
	}
	require.Equal(t, []models.SourceID{
		models.SourceKPBN,
		models.SourceGAPKI,
		models.SourceInfoSawit,
		models.SourceSocial,
	}, got)
}

func TestRankIsStableForEqualCredibility(t *testing.T) {
	// KPBN and BPS both weigh 5; input order must survive.
	in := []models.Quote{
		quote(models.SourceKPBN, "Riau", 2200),
		quote(models.SourceBPS, "Jambi", 2100),
		quote(models.SourceBPS, "Aceh", 2000),
		quote(models.SourceKPBN, "Sumut", 1900),
	}

	out, err := ValidateAndRank(in, 500, 5000)
	require.NoError(t, err)
	require.Len(t, out, 4)
	require.Equal(t, "Riau", out[0].Region)
	require.Equal(t, "Jambi", out[1].Region)
	require.Equal(t, "Aceh", out[2].Region)
	require.Equal(t, "Sumut", out[3].Region)
}

func TestValidateUnknownSourceRanksLast(t *testing.T) {
	in := []models.Quote{
		quote(models.SourceID("Forum"), "Riau", 2000),
		quote(models.SourceSocial, "Jambi", 2000),
	}

	out, err := ValidateAndRank(in, 500, 5000)
	require.NoError(t, err)
	require.Equal(t, models.SourceSocial, out[0].Source)
	require.Equal(t, models.SourceID("Forum"), out[1].Source)
}

func TestValidateEmptySurvivorsIsResultState(t *testing.T) {
	in := []models.Quote{
		quote(models.SourceBPS, "Riau", 100),
		quote(models.SourceBPS, "X", 2000),
	}

	out, err := ValidateAndRank(in, 500, 5000)
	require.ErrorIs(t, err, ErrNoValidData)
	require.Nil(t, out)
}
