package businessflow

import (
	"context"
	"encoding/json"
	"log"

	"github.com/amirphl/Simorgh/app/dto"
	"github.com/amirphl/Simorgh/config"
	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/repository"
	"github.com/amirphl/Simorgh/utils"
	"github.com/redis/go-redis/v9"
)

// RiskFactorFlow owns the risk factor table. Rating flows pull a single
// immutable snapshot per calculation; admins replace the whole table at once.
type RiskFactorFlow interface {
	CurrentSnapshot(ctx context.Context) (*models.RiskFactorSnapshot, error)
	AdminGetRiskFactors(ctx context.Context) (*dto.AdminGetRiskFactorsResponse, error)
	AdminReplaceRiskFactors(ctx context.Context, req *dto.AdminReplaceRiskFactorsRequest) (*dto.AdminReplaceRiskFactorsResponse, error)
}

type RiskFactorFlowImpl struct {
	riskFactorRepo repository.RiskFactorRepository
	cacheConfig    *config.CacheConfig
	rc             *redis.Client
}

// NewRiskFactorFlow creates a new risk factor flow instance. rc may be nil
// when caching is disabled; every lookup then goes to the database.
func NewRiskFactorFlow(
	riskFactorRepo repository.RiskFactorRepository,
	cacheConfig *config.CacheConfig,
	rc *redis.Client,
) RiskFactorFlow {
	return &RiskFactorFlowImpl{
		riskFactorRepo: riskFactorRepo,
		cacheConfig:    cacheConfig,
		rc:             rc,
	}
}

// CurrentSnapshot returns the risk factor table in effect right now.
//
// Lookup order: redis cache, then the latest persisted row, then the
// documented defaults. A missing table is seeded with the defaults so later
// reads and admin listings see the same row. A row that cannot be read or
// fails validation falls back to the defaults instead of blocking rating.
func (f *RiskFactorFlowImpl) CurrentSnapshot(ctx context.Context) (*models.RiskFactorSnapshot, error) {
	if cached := f.fromCache(ctx); cached != nil {
		return cached, nil
	}

	snapshot, err := f.riskFactorRepo.Latest(ctx)
	if err != nil {
		log.Printf("risk factors: failed to load latest snapshot, using defaults: %v", err)
		return models.DefaultRiskFactorSnapshot(), nil
	}

	if snapshot == nil {
		snapshot = models.DefaultRiskFactorSnapshot()
		snapshot.CreatedAt = utils.UTCNow()
		snapshot.UpdatedAt = utils.UTCNow()
		if err := f.riskFactorRepo.Save(ctx, snapshot); err != nil {
			log.Printf("risk factors: failed to seed default snapshot: %v", err)
			return models.DefaultRiskFactorSnapshot(), nil
		}
	}

	if !snapshot.Complete() {
		log.Printf("risk factors: persisted snapshot %d is incomplete, using defaults", snapshot.ID)
		return models.DefaultRiskFactorSnapshot(), nil
	}

	f.toCache(ctx, snapshot)

	return snapshot, nil
}

// AdminGetRiskFactors returns the risk factor table in effect.
func (f *RiskFactorFlowImpl) AdminGetRiskFactors(ctx context.Context) (*dto.AdminGetRiskFactorsResponse, error) {
	snapshot, err := f.CurrentSnapshot(ctx)
	if err != nil {
		return nil, NewBusinessError("RISK_FACTORS_LOAD_FAILED", "Failed to load risk factors", err)
	}

	return &dto.AdminGetRiskFactorsResponse{
		Message: "Risk factors retrieved successfully",
		Factors: ToRiskFactorItem(snapshot),
	}, nil
}

// AdminReplaceRiskFactors inserts a new snapshot row (latest row wins).
// Quotes and policies priced under the previous table keep their stored
// premiums; only future calculations see the new multipliers.
func (f *RiskFactorFlowImpl) AdminReplaceRiskFactors(ctx context.Context, req *dto.AdminReplaceRiskFactorsRequest) (*dto.AdminReplaceRiskFactorsResponse, error) {
	snapshot := &models.RiskFactorSnapshot{
		DiscountForBoth: req.DiscountForBoth,
		TaxRate:         req.TaxRate,

		HomeBasePremium:       req.HomeBasePremium,
		HomeValuePercentage:   req.HomeValuePercentage,
		HomeValueBaseLine:     req.HomeValueBaseLine,
		HighLiability:         req.HighLiability,
		LowLiability:          req.LowLiability,
		HomeOldAge:            req.HomeOldAge,
		HomeMidAge:            req.HomeMidAge,
		HomeNewAge:            req.HomeNewAge,
		HeatingOilFactor:      req.HeatingOilFactor,
		HeatingWoodFactor:     req.HeatingWoodFactor,
		HeatingElectricFactor: req.HeatingElectricFactor,
		HeatingGasFactor:      req.HeatingGasFactor,
		HeatingOtherFactor:    req.HeatingOtherFactor,
		Rural:                 req.Rural,
		Urban:                 req.Urban,

		AutoBasePremium: req.AutoBasePremium,
		DriverYoung:     req.DriverYoung,
		DriverOld:       req.DriverOld,
		AccidentsMany:   req.AccidentsMany,
		AccidentsFew:    req.AccidentsFew,
		AccidentsNone:   req.AccidentsNone,
		VehicleOld:      req.VehicleOld,
		VehicleMid:      req.VehicleMid,
		VehicleNew:      req.VehicleNew,

		CreatedAt: utils.UTCNow(),
		UpdatedAt: utils.UTCNow(),
	}

	if !snapshot.Complete() {
		return nil, NewBusinessError("RISK_FACTORS_INVALID", "Risk factor table must be complete", ErrRiskFactorsInvalid)
	}

	if err := f.riskFactorRepo.Save(ctx, snapshot); err != nil {
		return nil, NewBusinessError("RISK_FACTORS_SAVE_FAILED", "Failed to save risk factors", err)
	}

	f.invalidateCache(ctx)

	return &dto.AdminReplaceRiskFactorsResponse{
		Message: "Risk factors replaced successfully",
		Factors: ToRiskFactorItem(snapshot),
	}, nil
}

func (f *RiskFactorFlowImpl) fromCache(ctx context.Context) *models.RiskFactorSnapshot {
	if f.rc == nil || f.cacheConfig == nil {
		return nil
	}

	cacheKey := redisKey(*f.cacheConfig, utils.RiskFactorsCacheKey)
	bs, err := f.rc.Get(ctx, cacheKey).Bytes()
	if err != nil || len(bs) == 0 {
		return nil
	}

	var snapshot models.RiskFactorSnapshot
	if err := json.Unmarshal(bs, &snapshot); err != nil || !snapshot.Complete() {
		_ = f.rc.Del(ctx, cacheKey).Err()
		return nil
	}

	return &snapshot
}

func (f *RiskFactorFlowImpl) toCache(ctx context.Context, snapshot *models.RiskFactorSnapshot) {
	if f.rc == nil || f.cacheConfig == nil {
		return
	}

	cacheKey := redisKey(*f.cacheConfig, utils.RiskFactorsCacheKey)
	if bs, err := json.Marshal(snapshot); err == nil {
		_ = f.rc.Set(ctx, cacheKey, bs, f.cacheConfig.DefaultTTL).Err()
	}
}

func (f *RiskFactorFlowImpl) invalidateCache(ctx context.Context) {
	if f.rc == nil || f.cacheConfig == nil {
		return
	}

	cacheKey := redisKey(*f.cacheConfig, utils.RiskFactorsCacheKey)
	_ = f.rc.Del(ctx, cacheKey).Err()
}
