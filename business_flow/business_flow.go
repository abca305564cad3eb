// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/amirphl/Simorgh/app/dto"
	"github.com/amirphl/Simorgh/config"
	"github.com/amirphl/Simorgh/models"
)

const RequestIDKey = "X-Request-ID"

// dateLayout is the wire format for policy and quote dates.
const dateLayout = "2006-01-02"

func redisKey(cfg config.CacheConfig, key string) string {
	return cfg.RedisPrefix + key
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ToAutoQuoteItem converts an auto quote model to its transport representation
func ToAutoQuoteItem(q *models.AutoQuote) dto.AutoQuoteItem {
	return dto.AutoQuoteItem{
		ID:             q.ID,
		UUID:           q.UUID.String(),
		CustomerID:     q.CustomerID,
		VehicleID:      q.VehicleID,
		GenerationDate: formatDate(q.GenerationDate),
		BasePremium:    q.BasePremium,
		Premium:        q.Premium,
		TaxRate:        q.TaxRate,
		Active:         q.Active,
	}
}

// ToHomeQuoteItem converts a home quote model to its transport representation
func ToHomeQuoteItem(q *models.HomeQuote) dto.HomeQuoteItem {
	return dto.HomeQuoteItem{
		ID:             q.ID,
		UUID:           q.UUID.String(),
		CustomerID:     q.CustomerID,
		HomeID:         q.HomeID,
		GenerationDate: formatDate(q.GenerationDate),
		LiabilityLimit: q.LiabilityLimit,
		BasePremium:    q.BasePremium,
		Premium:        q.Premium,
		TaxRate:        q.TaxRate,
		Active:         q.Active,
	}
}

// ToAutoPolicyItem converts an auto policy model to its transport representation
func ToAutoPolicyItem(p *models.AutoPolicy) dto.AutoPolicyItem {
	return dto.AutoPolicyItem{
		ID:            p.ID,
		UUID:          p.UUID.String(),
		QuoteID:       p.QuoteID,
		CustomerID:    p.CustomerID,
		VehicleID:     p.VehicleID,
		EffectiveDate: formatDate(p.EffectiveDate),
		EndDate:       formatDate(p.EndDate),
		BasePremium:   p.BasePremium,
		Premium:       p.Premium,
		TaxRate:       p.TaxRate,
		Active:        p.Active,
	}
}

// ToHomePolicyItem converts a home policy model to its transport representation
func ToHomePolicyItem(p *models.HomePolicy) dto.HomePolicyItem {
	return dto.HomePolicyItem{
		ID:             p.ID,
		UUID:           p.UUID.String(),
		QuoteID:        p.QuoteID,
		CustomerID:     p.CustomerID,
		HomeID:         p.HomeID,
		EffectiveDate:  formatDate(p.EffectiveDate),
		EndDate:        formatDate(p.EndDate),
		LiabilityLimit: p.LiabilityLimit,
		BasePremium:    p.BasePremium,
		Premium:        p.Premium,
		TaxRate:        p.TaxRate,
		Active:         p.Active,
	}
}

// ToRiskFactorItem converts a snapshot model to its transport representation
func ToRiskFactorItem(s *models.RiskFactorSnapshot) dto.RiskFactorItem {
	return dto.RiskFactorItem{
		DiscountForBoth: s.DiscountForBoth,
		TaxRate:         s.TaxRate,

		HomeBasePremium:       s.HomeBasePremium,
		HomeValuePercentage:   s.HomeValuePercentage,
		HomeValueBaseLine:     s.HomeValueBaseLine,
		HighLiability:         s.HighLiability,
		LowLiability:          s.LowLiability,
		HomeOldAge:            s.HomeOldAge,
		HomeMidAge:            s.HomeMidAge,
		HomeNewAge:            s.HomeNewAge,
		HeatingOilFactor:      s.HeatingOilFactor,
		HeatingWoodFactor:     s.HeatingWoodFactor,
		HeatingElectricFactor: s.HeatingElectricFactor,
		HeatingGasFactor:      s.HeatingGasFactor,
		HeatingOtherFactor:    s.HeatingOtherFactor,
		Rural:                 s.Rural,
		Urban:                 s.Urban,

		AutoBasePremium: s.AutoBasePremium,
		DriverYoung:     s.DriverYoung,
		DriverOld:       s.DriverOld,
		AccidentsMany:   s.AccidentsMany,
		AccidentsFew:    s.AccidentsFew,
		AccidentsNone:   s.AccidentsNone,
		VehicleOld:      s.VehicleOld,
		VehicleMid:      s.VehicleMid,
		VehicleNew:      s.VehicleNew,

		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
