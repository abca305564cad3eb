package dto

// AdminReplaceRiskFactorsRequest represents the payload to replace the full risk factor table.
// A replacement must be complete; partial tables are rejected so rating never
// mixes old and new multipliers.
type AdminReplaceRiskFactorsRequest struct {
	DiscountForBoth float64 `json:"discount_for_both" validate:"required,gt=0"`
	TaxRate         float64 `json:"tax_rate" validate:"gte=0"`

	HomeBasePremium       int     `json:"home_base_premium" validate:"required,gt=0"`
	HomeValuePercentage   float64 `json:"home_value_percentage" validate:"gte=0"`
	HomeValueBaseLine     int     `json:"home_value_base_line" validate:"required,gt=0"`
	HighLiability         float64 `json:"high_liability" validate:"required,gt=0"`
	LowLiability          float64 `json:"low_liability" validate:"required,gt=0"`
	HomeOldAge            float64 `json:"home_old_age" validate:"required,gt=0"`
	HomeMidAge            float64 `json:"home_mid_age" validate:"required,gt=0"`
	HomeNewAge            float64 `json:"home_new_age" validate:"required,gt=0"`
	HeatingOilFactor      float64 `json:"heating_oil" validate:"required,gt=0"`
	HeatingWoodFactor     float64 `json:"heating_wood" validate:"required,gt=0"`
	HeatingElectricFactor float64 `json:"heating_electric" validate:"required,gt=0"`
	HeatingGasFactor      float64 `json:"heating_gas" validate:"required,gt=0"`
	HeatingOtherFactor    float64 `json:"heating_other" validate:"required,gt=0"`
	Rural                 float64 `json:"rural" validate:"required,gt=0"`
	Urban                 float64 `json:"urban" validate:"required,gt=0"`

	AutoBasePremium int     `json:"auto_base_premium" validate:"required,gt=0"`
	DriverYoung     float64 `json:"driver_young" validate:"required,gt=0"`
	DriverOld       float64 `json:"driver_old" validate:"required,gt=0"`
	AccidentsMany   float64 `json:"accidents_many" validate:"required,gt=0"`
	AccidentsFew    float64 `json:"accidents_few" validate:"required,gt=0"`
	AccidentsNone   float64 `json:"accidents_none" validate:"required,gt=0"`
	VehicleOld      float64 `json:"vehicle_old" validate:"required,gt=0"`
	VehicleMid      float64 `json:"vehicle_mid" validate:"required,gt=0"`
	VehicleNew      float64 `json:"vehicle_new" validate:"required,gt=0"`
}

type RiskFactorItem struct {
	DiscountForBoth float64 `json:"discount_for_both"`
	TaxRate         float64 `json:"tax_rate"`

	HomeBasePremium       int     `json:"home_base_premium"`
	HomeValuePercentage   float64 `json:"home_value_percentage"`
	HomeValueBaseLine     int     `json:"home_value_base_line"`
	HighLiability         float64 `json:"high_liability"`
	LowLiability          float64 `json:"low_liability"`
	HomeOldAge            float64 `json:"home_old_age"`
	HomeMidAge            float64 `json:"home_mid_age"`
	HomeNewAge            float64 `json:"home_new_age"`
	HeatingOilFactor      float64 `json:"heating_oil"`
	HeatingWoodFactor     float64 `json:"heating_wood"`
	HeatingElectricFactor float64 `json:"heating_electric"`
	HeatingGasFactor      float64 `json:"heating_gas"`
	HeatingOtherFactor    float64 `json:"heating_other"`
	Rural                 float64 `json:"rural"`
	Urban                 float64 `json:"urban"`

	AutoBasePremium int     `json:"auto_base_premium"`
	DriverYoung     float64 `json:"driver_young"`
	DriverOld       float64 `json:"driver_old"`
	AccidentsMany   float64 `json:"accidents_many"`
	AccidentsFew    float64 `json:"accidents_few"`
	AccidentsNone   float64 `json:"accidents_none"`
	VehicleOld      float64 `json:"vehicle_old"`
	VehicleMid      float64 `json:"vehicle_mid"`
	VehicleNew      float64 `json:"vehicle_new"`

	CreatedAt string `json:"created_at"`
}

type AdminGetRiskFactorsResponse struct {
	Message string         `json:"message"`
	Factors RiskFactorItem `json:"factors"`
}

type AdminReplaceRiskFactorsResponse struct {
	Message string         `json:"message"`
	Factors RiskFactorItem `json:"factors"`
}
