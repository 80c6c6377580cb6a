package app

import "github.com/shopspring/decimal"

type PricingModel string

const (
	PricingFixed PricingModel = "fixed"
	PricingRamp  PricingModel = "ramp"
)

type IntervalUnit string

const (
	IntervalDays   IntervalUnit = "days"
	IntervalMonths IntervalUnit = "months"
)

type Plan struct {
	ID                              string              `json:"id"`
	Object                          string              `json:"object,omitempty"`
	Code                            string              `json:"code"`
	Name                            string              `json:"name"`
	State                           ResourceState       `json:"state,omitempty"`
	PricingModel                    PricingModel        `json:"pricing_model,omitempty"`
	Currencies                      []PlanPricing       `json:"currencies,omitempty"`
	RampIntervals                   []PlanRampInterval  `json:"ramp_intervals,omitempty"`
	SetupFees                       []PlanSetupPricing  `json:"setup_fees,omitempty"`
	IntervalUnit                    IntervalUnit        `json:"interval_unit,omitempty"`
	IntervalLength                  int                 `json:"interval_length,omitempty"`
	Description                     string              `json:"description,omitempty"`
	AccountingCode                  string              `json:"accounting_code,omitempty"`
	RevenueScheduleType             RevenueScheduleType `json:"revenue_schedule_type,omitempty"`
	LiabilityGLAccountID            string              `json:"liability_gl_account_id,omitempty"`
	RevenueGLAccountID              string              `json:"revenue_gl_account_id,omitempty"`
	PerformanceObligationID         string              `json:"performance_obligation_id,omitempty"`
	SetupFeeAccountingCode          string              `json:"setup_fee_accounting_code,omitempty"`
	SetupFeeRevenueScheduleType     RevenueScheduleType `json:"setup_fee_revenue_schedule_type,omitempty"`
	SetupFeeLiabilityGLAccountID    string              `json:"setup_fee_liability_gl_account_id,omitempty"`
	SetupFeeRevenueGLAccountID      string              `json:"setup_fee_revenue_gl_account_id,omitempty"`
	SetupFeePerformanceObligationID string              `json:"setup_fee_performance_obligation_id,omitempty"`
	TrialUnit                       IntervalUnit        `json:"trial_unit,omitempty"`
	TrialLength                     int                 `json:"trial_length"`
	TrialRequiresBillingInfo        bool                `json:"trial_requires_billing_info"`
	TotalBillingCycles              *int                `json:"total_billing_cycles,omitempty"`
	AutoRenew                       bool                `json:"auto_renew"`
	CustomFields                    []CustomField       `json:"custom_fields,omitempty"`
	AvalaraTransactionType          *int                `json:"avalara_transaction_type,omitempty"`
	AvalaraServiceType              *int                `json:"avalara_service_type,omitempty"`
	TaxCode                         string              `json:"tax_code,omitempty"`
	TaxExempt                       bool                `json:"tax_exempt"`
	VertexTransactionType           string              `json:"vertex_transaction_type,omitempty"`
	HostedPages                     *PlanHostedPages    `json:"hosted_pages,omitempty"`
	AllowAnyItemOnSubscriptions     bool                `json:"allow_any_item_on_subscriptions"`
	DunningCampaignID               string              `json:"dunning_campaign_id,omitempty"`
	Timestamps
}

type PlanPricing struct {
	Currency       string          `json:"currency"`
	SetupFee       decimal.Decimal `json:"setup_fee"`
	UnitAmount     decimal.Decimal `json:"unit_amount"`
	PriceSegmentID string          `json:"price_segment_id,omitempty"`
	TaxInclusive   bool            `json:"tax_inclusive"`
}

type PlanSetupPricing struct {
	Currency   string          `json:"currency"`
	UnitAmount decimal.Decimal `json:"unit_amount"`
}

type PlanRampInterval struct {
	StartingBillingCycle int               `json:"starting_billing_cycle"`
	Currencies           []PlanRampPricing `json:"currencies"`
}

type PlanRampPricing struct {
	Currency       string          `json:"currency"`
	UnitAmount     decimal.Decimal `json:"unit_amount"`
	PriceSegmentID string          `json:"price_segment_id,omitempty"`
}

type PlanHostedPages struct {
	SuccessURL         string `json:"success_url,omitempty"`
	CancelURL          string `json:"cancel_url,omitempty"`
	BypassConfirmation *bool  `json:"bypass_confirmation,omitempty"`
	DisplayQuantity    *bool  `json:"display_quantity,omitempty"`
}

type ListPlansParams struct {
	ListParams
	State ResourceState `query:"state,omitempty" validate:"omitempty,oneof=active inactive"`
}

type PlanPricingRequest struct {
	Currency       string   `json:"currency" validate:"required,max=3"`
	SetupFee       *float64 `json:"setup_fee,omitempty" validate:"omitempty,min=0,max=1000000"`
	UnitAmount     *float64 `json:"unit_amount,omitempty" validate:"omitempty,min=0,max=1000000"`
	PriceSegmentID string   `json:"price_segment_id,omitempty" validate:"omitempty,max=55"`
	TaxInclusive   *bool    `json:"tax_inclusive,omitempty"`
}

type PlanSetupPricingRequest struct {
	Currency   string   `json:"currency" validate:"required,max=3"`
	UnitAmount *float64 `json:"unit_amount,omitempty" validate:"omitempty,min=0,max=1000000"`
}

type PlanRampPricingRequest struct {
	Currency       string  `json:"currency" validate:"required,max=3"`
	UnitAmount     float64 `json:"unit_amount" validate:"min=0,max=1000000"`
	PriceSegmentID string  `json:"price_segment_id,omitempty" validate:"omitempty,max=55"`
}

type PlanRampIntervalRequest struct {
	StartingBillingCycle int                      `json:"starting_billing_cycle,omitempty" validate:"omitempty,min=1"`
	Currencies           []PlanRampPricingRequest `json:"currencies,omitempty" validate:"omitempty,dive"`
}

// PlanFields are the attributes accepted by both plan create and update.
type PlanFields struct {
	Currencies                      []PlanPricingRequest      `json:"currencies,omitempty" validate:"omitempty,dive"`
	RampIntervals                   []PlanRampIntervalRequest `json:"ramp_intervals,omitempty" validate:"omitempty,dive"`
	SetupFees                       []PlanSetupPricingRequest `json:"setup_fees,omitempty" validate:"omitempty,dive"`
	Description                     string                    `json:"description,omitempty"`
	AccountingCode                  string                    `json:"accounting_code,omitempty" validate:"omitempty,max=20"`
	RevenueScheduleType             RevenueScheduleType       `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	LiabilityGLAccountID            string                    `json:"liability_gl_account_id,omitempty" validate:"omitempty,max=13"`
	RevenueGLAccountID              string                    `json:"revenue_gl_account_id,omitempty" validate:"omitempty,max=13"`
	PerformanceObligationID         string                    `json:"performance_obligation_id,omitempty" validate:"omitempty,max=13"`
	SetupFeeAccountingCode          string                    `json:"setup_fee_accounting_code,omitempty" validate:"omitempty,max=20"`
	SetupFeeRevenueScheduleType     RevenueScheduleType       `json:"setup_fee_revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	SetupFeeLiabilityGLAccountID    string                    `json:"setup_fee_liability_gl_account_id,omitempty" validate:"omitempty,max=13"`
	SetupFeeRevenueGLAccountID      string                    `json:"setup_fee_revenue_gl_account_id,omitempty" validate:"omitempty,max=13"`
	SetupFeePerformanceObligationID string                    `json:"setup_fee_performance_obligation_id,omitempty" validate:"omitempty,max=13"`
	TrialUnit                       IntervalUnit              `json:"trial_unit,omitempty" validate:"omitempty,oneof=days months"`
	TrialLength                     *int                      `json:"trial_length,omitempty" validate:"omitempty,min=0"`
	TrialRequiresBillingInfo        *bool                     `json:"trial_requires_billing_info,omitempty"`
	TotalBillingCycles              *int                      `json:"total_billing_cycles,omitempty" validate:"omitempty,min=0"`
	AutoRenew                       *bool                     `json:"auto_renew,omitempty"`
	CustomFields                    []CustomField             `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	AvalaraTransactionType          *int                      `json:"avalara_transaction_type,omitempty" validate:"omitempty,min=0"`
	AvalaraServiceType              *int                      `json:"avalara_service_type,omitempty" validate:"omitempty,min=0"`
	TaxCode                         string                    `json:"tax_code,omitempty" validate:"omitempty,max=50"`
	TaxExempt                       *bool                     `json:"tax_exempt,omitempty"`
	VertexTransactionType           string                    `json:"vertex_transaction_type,omitempty" validate:"omitempty,oneof=sale rental lease"`
	HostedPages                     *PlanHostedPages          `json:"hosted_pages,omitempty"`
	AllowAnyItemOnSubscriptions     *bool                     `json:"allow_any_item_on_subscriptions,omitempty"`
	DunningCampaignID               string                    `json:"dunning_campaign_id,omitempty"`
}

type CreatePlan struct {
	Code           string       `json:"code" validate:"required,max=50"`
	Name           string       `json:"name" validate:"required,max=255"`
	PricingModel   PricingModel `json:"pricing_model,omitempty" validate:"omitempty,oneof=fixed ramp"`
	IntervalUnit   IntervalUnit `json:"interval_unit,omitempty" validate:"omitempty,oneof=days months"`
	IntervalLength int          `json:"interval_length,omitempty" validate:"omitempty,min=1"`
	PlanFields
}

type UpdatePlan struct {
	Code string `json:"code,omitempty" validate:"omitempty,max=50"`
	Name string `json:"name,omitempty" validate:"omitempty,max=255"`
	PlanFields
}
