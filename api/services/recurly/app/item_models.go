package app

import "github.com/shopspring/decimal"

type Item struct {
	ID                      string              `json:"id"`
	Object                  string              `json:"object,omitempty"`
	Code                    string              `json:"code"`
	State                   ResourceState       `json:"state,omitempty"`
	Name                    string              `json:"name"`
	Description             string              `json:"description,omitempty"`
	ExternalSKU             string              `json:"external_sku,omitempty"`
	AccountingCode          string              `json:"accounting_code,omitempty"`
	RevenueScheduleType     RevenueScheduleType `json:"revenue_schedule_type,omitempty"`
	PerformanceObligationID string              `json:"performance_obligation_id,omitempty"`
	LiabilityGLAccountID    string              `json:"liability_gl_account_id,omitempty"`
	RevenueGLAccountID      string              `json:"revenue_gl_account_id,omitempty"`
	AvalaraTransactionType  *int                `json:"avalara_transaction_type,omitempty"`
	AvalaraServiceType      *int                `json:"avalara_service_type,omitempty"`
	TaxCode                 string              `json:"tax_code,omitempty"`
	TaxExempt               bool                `json:"tax_exempt"`
	CustomFields            []CustomField       `json:"custom_fields,omitempty"`
	Currencies              []ItemPricing       `json:"currencies,omitempty"`
	Timestamps
}

type ItemPricing struct {
	Currency     string          `json:"currency"`
	UnitAmount   decimal.Decimal `json:"unit_amount"`
	TaxInclusive bool            `json:"tax_inclusive"`
}

type ItemPricingRequest struct {
	Currency     string  `json:"currency" validate:"required,max=3"`
	UnitAmount   float64 `json:"unit_amount" validate:"min=0,max=1000000"`
	TaxInclusive *bool   `json:"tax_inclusive,omitempty"`
}

type ListItemsParams struct {
	ListParams
	State ResourceState `query:"state,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ItemFields are the attributes accepted by both item create and update.
type ItemFields struct {
	Description             string               `json:"description,omitempty"`
	ExternalSKU             string               `json:"external_sku,omitempty" validate:"omitempty,max=50"`
	AccountingCode          string               `json:"accounting_code,omitempty" validate:"omitempty,max=20,recurly_code"`
	RevenueScheduleType     RevenueScheduleType  `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	PerformanceObligationID string               `json:"performance_obligation_id,omitempty" validate:"omitempty,max=13"`
	LiabilityGLAccountID    string               `json:"liability_gl_account_id,omitempty" validate:"omitempty,max=13"`
	RevenueGLAccountID      string               `json:"revenue_gl_account_id,omitempty" validate:"omitempty,max=13"`
	AvalaraTransactionType  *int                 `json:"avalara_transaction_type,omitempty" validate:"omitempty,min=0"`
	AvalaraServiceType      *int                 `json:"avalara_service_type,omitempty" validate:"omitempty,min=0"`
	TaxCode                 string               `json:"tax_code,omitempty" validate:"omitempty,max=50"`
	TaxExempt               *bool                `json:"tax_exempt,omitempty"`
	CustomFields            []CustomField        `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	Currencies              []ItemPricingRequest `json:"currencies,omitempty" validate:"omitempty,dive"`
}

type CreateItem struct {
	Code string `json:"code" validate:"required,max=50,recurly_code"`
	Name string `json:"name" validate:"required,max=255"`
	ItemFields
}

type UpdateItem struct {
	Code string `json:"code,omitempty" validate:"omitempty,max=50,recurly_code"`
	Name string `json:"name,omitempty" validate:"omitempty,max=255"`
	ItemFields
}
