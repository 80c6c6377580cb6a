package app

import "github.com/shopspring/decimal"

type AddOnType string

const (
	AddOnFixed AddOnType = "fixed"
	AddOnUsage AddOnType = "usage"
)

type UsageType string

const (
	UsagePrice      UsageType = "price"
	UsagePercentage UsageType = "percentage"
)

type TierType string

const (
	TierFlat      TierType = "flat"
	TierTiered    TierType = "tiered"
	TierStairstep TierType = "stairstep"
	TierVolume    TierType = "volume"
)

type AddOnMini struct {
	ID              string           `json:"id"`
	Object          string           `json:"object,omitempty"`
	Code            string           `json:"code,omitempty"`
	Name            string           `json:"name,omitempty"`
	AddOnType       AddOnType        `json:"add_on_type,omitempty"`
	UsageType       UsageType        `json:"usage_type,omitempty"`
	UsagePercentage *decimal.Decimal `json:"usage_percentage,omitempty"`
	MeasuredUnitID  string           `json:"measured_unit_id,omitempty"`
	ItemID          string           `json:"item_id,omitempty"`
	ExternalSKU     string           `json:"external_sku,omitempty"`
	AccountingCode  string           `json:"accounting_code,omitempty"`
}

type AddOn struct {
	ID                      string                      `json:"id"`
	Object                  string                      `json:"object,omitempty"`
	PlanID                  string                      `json:"plan_id,omitempty"`
	Code                    string                      `json:"code"`
	State                   ResourceState               `json:"state,omitempty"`
	Name                    string                      `json:"name"`
	AddOnType               AddOnType                   `json:"add_on_type,omitempty"`
	UsageType               UsageType                   `json:"usage_type,omitempty"`
	UsageCalculationType    string                      `json:"usage_calculation_type,omitempty"`
	UsagePercentage         *decimal.Decimal            `json:"usage_percentage,omitempty"`
	MeasuredUnitID          string                      `json:"measured_unit_id,omitempty"`
	LiabilityGLAccountID    string                      `json:"liability_gl_account_id,omitempty"`
	RevenueGLAccountID      string                      `json:"revenue_gl_account_id,omitempty"`
	PerformanceObligationID string                      `json:"performance_obligation_id,omitempty"`
	AccountingCode          string                      `json:"accounting_code,omitempty"`
	RevenueScheduleType     RevenueScheduleType         `json:"revenue_schedule_type,omitempty"`
	AvalaraTransactionType  *int                        `json:"avalara_transaction_type,omitempty"`
	AvalaraServiceType      *int                        `json:"avalara_service_type,omitempty"`
	TaxCode                 string                      `json:"tax_code,omitempty"`
	DisplayQuantity         bool                        `json:"display_quantity"`
	DefaultQuantity         int                         `json:"default_quantity"`
	Optional                bool                        `json:"optional"`
	Currencies              []AddOnPricing              `json:"currencies,omitempty"`
	Item                    *ItemMini                   `json:"item,omitempty"`
	TierType                TierType                    `json:"tier_type,omitempty"`
	UsageTimeframe          string                      `json:"usage_timeframe,omitempty"`
	Tiers                   []Tier                      `json:"tiers,omitempty"`
	PercentageTiers         []PercentageTiersByCurrency `json:"percentage_tiers,omitempty"`
	ExternalSKU             string                      `json:"external_sku,omitempty"`
	Timestamps
}

type AddOnPricing struct {
	Currency          string           `json:"currency"`
	UnitAmount        decimal.Decimal  `json:"unit_amount"`
	UnitAmountDecimal *decimal.Decimal `json:"unit_amount_decimal,omitempty"`
	TaxInclusive      bool             `json:"tax_inclusive"`
}

type Tier struct {
	EndingQuantity  *int           `json:"ending_quantity,omitempty"`
	UsagePercentage string         `json:"usage_percentage,omitempty"`
	Currencies      []AddOnPricing `json:"currencies,omitempty"`
}

// AddOnPricingRequest sets a per-currency price. When UnitAmountDecimal is
// set it takes precedence over UnitAmount and is sent as a string.
type AddOnPricingRequest struct {
	Currency          string           `json:"currency" validate:"required,max=3"`
	UnitAmount        *float64         `json:"unit_amount,omitempty" validate:"omitempty,min=0,max=1000000"`
	UnitAmountDecimal *decimal.Decimal `json:"unit_amount_decimal,omitempty" validate:"omitempty,min=0,max=1000000"`
	TaxInclusive      *bool            `json:"tax_inclusive,omitempty"`
}

type TierRequest struct {
	EndingQuantity  *int                  `json:"ending_quantity,omitempty" validate:"omitempty,min=1,max=999999999"`
	UsagePercentage string                `json:"usage_percentage,omitempty"`
	Currencies      []AddOnPricingRequest `json:"currencies,omitempty" validate:"omitempty,dive"`
}

type PercentageTier struct {
	EndingAmount    *float64 `json:"ending_amount,omitempty" validate:"omitempty,min=0.01,max=9999999999999.99"`
	UsagePercentage string   `json:"usage_percentage,omitempty"`
}

type PercentageTiersByCurrency struct {
	Currency string           `json:"currency" validate:"required,max=3"`
	Tiers    []PercentageTier `json:"tiers,omitempty"`
}

type ListAddOnsParams struct {
	ListParams
	State ResourceState `query:"state,omitempty" validate:"omitempty,oneof=active inactive"`
}

// AddOnFields are the attributes accepted by both add-on create and update.
type AddOnFields struct {
	Code                    string                      `json:"code,omitempty" validate:"omitempty,max=50"`
	Name                    string                      `json:"name,omitempty" validate:"omitempty,max=255"`
	UsageCalculationType    string                      `json:"usage_calculation_type,omitempty" validate:"omitempty,oneof=cumulative last_in_period"`
	UsagePercentage         *float64                    `json:"usage_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	MeasuredUnitID          string                      `json:"measured_unit_id,omitempty" validate:"omitempty,max=13"`
	MeasuredUnitName        string                      `json:"measured_unit_name,omitempty"`
	AccountingCode          string                      `json:"accounting_code,omitempty" validate:"omitempty,max=20"`
	LiabilityGLAccountID    string                      `json:"liability_gl_account_id,omitempty" validate:"omitempty,max=13"`
	RevenueGLAccountID      string                      `json:"revenue_gl_account_id,omitempty" validate:"omitempty,max=13"`
	PerformanceObligationID string                      `json:"performance_obligation_id,omitempty" validate:"omitempty,max=13"`
	RevenueScheduleType     RevenueScheduleType         `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	AvalaraTransactionType  *int                        `json:"avalara_transaction_type,omitempty" validate:"omitempty,min=0"`
	AvalaraServiceType      *int                        `json:"avalara_service_type,omitempty" validate:"omitempty,min=0"`
	TaxCode                 string                      `json:"tax_code,omitempty" validate:"omitempty,max=50"`
	DisplayQuantity         *bool                       `json:"display_quantity,omitempty"`
	DefaultQuantity         *int                        `json:"default_quantity,omitempty"`
	Optional                *bool                       `json:"optional,omitempty"`
	Currencies              []AddOnPricingRequest       `json:"currencies,omitempty" validate:"omitempty,dive"`
	Tiers                   []TierRequest               `json:"tiers,omitempty" validate:"omitempty,dive"`
	PercentageTiers         []PercentageTiersByCurrency `json:"percentage_tiers,omitempty" validate:"omitempty,dive"`
}

type CreateAddOn struct {
	ItemCode       string    `json:"item_code,omitempty" validate:"omitempty,max=50"`
	ItemID         string    `json:"item_id,omitempty" validate:"omitempty,max=13"`
	AddOnType      AddOnType `json:"add_on_type,omitempty" validate:"omitempty,oneof=fixed usage"`
	UsageType      UsageType `json:"usage_type,omitempty" validate:"omitempty,oneof=price percentage"`
	TierType       TierType  `json:"tier_type,omitempty" validate:"omitempty,oneof=flat tiered stairstep volume"`
	UsageTimeframe string    `json:"usage_timeframe,omitempty" validate:"omitempty,oneof=billing_period subscription_term"`
	AddOnFields
}

type UpdateAddOn struct {
	AddOnFields
}
