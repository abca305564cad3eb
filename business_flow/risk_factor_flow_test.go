package businessflow

import (
	"context"
	"testing"

	"github.com/amirphl/Simorgh/app/dto"
	"github.com/amirphl/Simorgh/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReplaceRequest() *dto.AdminReplaceRiskFactorsRequest {
	return &dto.AdminReplaceRiskFactorsRequest{
		DiscountForBoth: 0.85,
		TaxRate:         0.2,

		HomeBasePremium:       600,
		HomeValuePercentage:   0.003,
		HomeValueBaseLine:     300_000,
		HighLiability:         1.3,
		LowLiability:          1,
		HomeOldAge:            1.6,
		HomeMidAge:            1.3,
		HomeNewAge:            1,
		HeatingOilFactor:      2.2,
		HeatingWoodFactor:     1.3,
		HeatingElectricFactor: 1,
		HeatingGasFactor:      1,
		HeatingOtherFactor:    1,
		Rural:                 1.2,
		Urban:                 1,

		AutoBasePremium: 800,
		DriverYoung:     2.1,
		DriverOld:       1,
		AccidentsMany:   2.6,
		AccidentsFew:    1.3,
		AccidentsNone:   1,
		VehicleOld:      2.1,
		VehicleMid:      1.6,
		VehicleNew:      1,
	}
}

func TestCurrentSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("SeedsDefaultsWhenTableEmpty", func(t *testing.T) {
		repo := &fakeRiskFactorRepo{}
		flow := NewRiskFactorFlow(repo, nil, nil)

		snapshot, err := flow.CurrentSnapshot(ctx)
		require.NoError(t, err)
		require.NotNil(t, snapshot)
		assert.Equal(t, 750, snapshot.AutoBasePremium)
		assert.Equal(t, 500, snapshot.HomeBasePremium)

		// The defaults must now be persisted
		latest, err := repo.Latest(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.True(t, latest.Complete())
	})

	t.Run("ReturnsLatestPersistedRow", func(t *testing.T) {
		repo := &fakeRiskFactorRepo{}
		first := models.DefaultRiskFactorSnapshot()
		require.NoError(t, repo.Save(ctx, first))
		second := models.DefaultRiskFactorSnapshot()
		second.AutoBasePremium = 900
		require.NoError(t, repo.Save(ctx, second))

		flow := NewRiskFactorFlow(repo, nil, nil)

		snapshot, err := flow.CurrentSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 900, snapshot.AutoBasePremium)
	})

	t.Run("IncompleteRowFallsBackToDefaults", func(t *testing.T) {
		repo := &fakeRiskFactorRepo{}
		broken := models.DefaultRiskFactorSnapshot()
		broken.DriverYoung = 0
		require.NoError(t, repo.Save(ctx, broken))

		flow := NewRiskFactorFlow(repo, nil, nil)

		snapshot, err := flow.CurrentSnapshot(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, snapshot.DriverYoung, 0.001)
	})
}

func TestAdminReplaceRiskFactors(t *testing.T) {
	ctx := context.Background()

	t.Run("InsertsNewRowAndLatestWins", func(t *testing.T) {
		repo := &fakeRiskFactorRepo{}
		require.NoError(t, repo.Save(ctx, models.DefaultRiskFactorSnapshot()))
		flow := NewRiskFactorFlow(repo, nil, nil)

		resp, err := flow.AdminReplaceRiskFactors(ctx, validReplaceRequest())
		require.NoError(t, err)
		assert.Equal(t, 800, resp.Factors.AutoBasePremium)

		// The previous row is retained; replacement appends
		count, err := repo.Count(ctx, models.RiskFactorSnapshotFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		snapshot, err := flow.CurrentSnapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 800, snapshot.AutoBasePremium)
		assert.InDelta(t, 0.2, snapshot.TaxRate, 0.001)
	})

	t.Run("IncompleteTableRejected", func(t *testing.T) {
		repo := &fakeRiskFactorRepo{}
		require.NoError(t, repo.Save(ctx, models.DefaultRiskFactorSnapshot()))
		flow := NewRiskFactorFlow(repo, nil, nil)

		req := validReplaceRequest()
		req.VehicleOld = 0

		_, err := flow.AdminReplaceRiskFactors(ctx, req)
		require.Error(t, err)
		assert.True(t, IsRiskFactorsInvalid(err))

		// Nothing was inserted
		count, err := repo.Count(ctx, models.RiskFactorSnapshotFilter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("ExistingQuotesKeepStoredPremiums", func(t *testing.T) {
		// Replacing factors must not touch premiums already written to quotes;
		// only the next rating calculation sees the new table.
		repo := &fakeRiskFactorRepo{}
		require.NoError(t, repo.Save(ctx, models.DefaultRiskFactorSnapshot()))
		flow := NewRiskFactorFlow(repo, nil, nil)

		before, err := flow.CurrentSnapshot(ctx)
		require.NoError(t, err)
		storedPremium := ComputeAutoPremium(before, 30, 0, 2, false)

		_, err = flow.AdminReplaceRiskFactors(ctx, validReplaceRequest())
		require.NoError(t, err)

		after, err := flow.CurrentSnapshot(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 862.50, storedPremium, 0.001)
		assert.NotEqual(t, storedPremium, ComputeAutoPremium(after, 30, 0, 2, false))
	})
}

func TestAdminGetRiskFactors(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRiskFactorRepo{}
	require.NoError(t, repo.Save(ctx, models.DefaultRiskFactorSnapshot()))
	flow := NewRiskFactorFlow(repo, nil, nil)

	resp, err := flow.AdminGetRiskFactors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 750, resp.Factors.AutoBasePremium)
	assert.InDelta(t, 0.9, resp.Factors.DiscountForBoth, 0.001)
	assert.InDelta(t, 0.15, resp.Factors.TaxRate, 0.001)
}
