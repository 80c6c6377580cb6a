package app

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionState string

const (
	SubscriptionActive   SubscriptionState = "active"
	SubscriptionCanceled SubscriptionState = "canceled"
	SubscriptionExpired  SubscriptionState = "expired"
	SubscriptionFailed   SubscriptionState = "failed"
	SubscriptionFuture   SubscriptionState = "future"
	SubscriptionPaused   SubscriptionState = "paused"
)

type NetTermsType string

const (
	NetTermsNet NetTermsType = "net"
	NetTermsEOM NetTermsType = "eom"
)

type RefundType string

const (
	RefundFull    RefundType = "full"
	RefundNone    RefundType = "none"
	RefundPartial RefundType = "partial"
)

type Subscription struct {
	ID                      string                        `json:"id"`
	Object                  string                        `json:"object,omitempty"`
	UUID                    string                        `json:"uuid,omitempty"`
	Account                 *AccountMini                  `json:"account,omitempty"`
	Plan                    *SubscriptionPlan             `json:"plan,omitempty"`
	State                   SubscriptionState             `json:"state,omitempty"`
	Shipping                *SubscriptionShipping         `json:"shipping,omitempty"`
	CouponRedemptions       []CouponRedemptionMini        `json:"coupon_redemptions,omitempty"`
	PendingChange           *SubscriptionChange           `json:"pending_change,omitempty"`
	CurrentPeriodStartedAt  *time.Time                    `json:"current_period_started_at,omitempty"`
	CurrentPeriodEndsAt     *time.Time                    `json:"current_period_ends_at,omitempty"`
	CurrentTermStartedAt    *time.Time                    `json:"current_term_started_at,omitempty"`
	CurrentTermEndsAt       *time.Time                    `json:"current_term_ends_at,omitempty"`
	TrialStartedAt          *time.Time                    `json:"trial_started_at,omitempty"`
	TrialEndsAt             *time.Time                    `json:"trial_ends_at,omitempty"`
	RemainingBillingCycles  *int                          `json:"remaining_billing_cycles,omitempty"`
	TotalBillingCycles      *int                          `json:"total_billing_cycles,omitempty"`
	RenewalBillingCycles    *int                          `json:"renewal_billing_cycles,omitempty"`
	AutoRenew               bool                          `json:"auto_renew"`
	RampIntervals           []SubscriptionRampIntervalRef `json:"ramp_intervals,omitempty"`
	PausedAt                *time.Time                    `json:"paused_at,omitempty"`
	RemainingPauseCycles    *int                          `json:"remaining_pause_cycles,omitempty"`
	Currency                string                        `json:"currency,omitempty"`
	RevenueScheduleType     RevenueScheduleType           `json:"revenue_schedule_type,omitempty"`
	UnitAmount              decimal.Decimal               `json:"unit_amount"`
	TaxInclusive            bool                          `json:"tax_inclusive"`
	Quantity                int                           `json:"quantity"`
	AddOns                  []SubscriptionAddOn           `json:"add_ons,omitempty"`
	AddOnsTotal             decimal.Decimal               `json:"add_ons_total"`
	Subtotal                decimal.Decimal               `json:"subtotal"`
	Tax                     decimal.Decimal               `json:"tax"`
	TaxInfo                 *TaxInfo                      `json:"tax_info,omitempty"`
	PriceSegmentID          string                        `json:"price_segment_id,omitempty"`
	Total                   decimal.Decimal               `json:"total"`
	CollectionMethod        CollectionMethod              `json:"collection_method,omitempty"`
	PONumber                string                        `json:"po_number,omitempty"`
	NetTerms                int                           `json:"net_terms"`
	NetTermsType            NetTermsType                  `json:"net_terms_type,omitempty"`
	TermsAndConditions      string                        `json:"terms_and_conditions,omitempty"`
	CustomerNotes           string                        `json:"customer_notes,omitempty"`
	ExpirationReason        string                        `json:"expiration_reason,omitempty"`
	CustomFields            []CustomField                 `json:"custom_fields,omitempty"`
	CreatedAt               *time.Time                    `json:"created_at,omitempty"`
	UpdatedAt               *time.Time                    `json:"updated_at,omitempty"`
	ActivatedAt             *time.Time                    `json:"activated_at,omitempty"`
	CanceledAt              *time.Time                    `json:"canceled_at,omitempty"`
	ExpiresAt               *time.Time                    `json:"expires_at,omitempty"`
	BankAccountAuthorizedAt *time.Time                    `json:"bank_account_authorized_at,omitempty"`
	GatewayCode             string                        `json:"gateway_code,omitempty"`
	BillingInfoID           string                        `json:"billing_info_id,omitempty"`
	ActiveInvoiceID         string                        `json:"active_invoice_id,omitempty"`
	BusinessEntityID        string                        `json:"business_entity_id,omitempty"`
	StartedWithGift         bool                          `json:"started_with_gift"`
	ConvertedAt             *time.Time                    `json:"converted_at,omitempty"`
	ActionResult            map[string]any                `json:"action_result,omitempty"`
}

// SubscriptionPlan is the plan reference on a subscription.
type SubscriptionPlan struct {
	PlanMini
	IntervalUnit   string `json:"interval_unit,omitempty"`
	IntervalLength int    `json:"interval_length,omitempty"`
}

type SubscriptionShipping struct {
	Object  string          `json:"object,omitempty"`
	Address *Address        `json:"address,omitempty"`
	Method  *ShippingMethod `json:"method,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
}

type ShippingMethod struct {
	ID             string `json:"id"`
	Object         string `json:"object,omitempty"`
	Code           string `json:"code,omitempty"`
	Name           string `json:"name,omitempty"`
	AccountingCode string `json:"accounting_code,omitempty"`
	TaxCode        string `json:"tax_code,omitempty"`
}

type SubscriptionChange struct {
	ID                  string                `json:"id"`
	Object              string                `json:"object,omitempty"`
	SubscriptionID      string                `json:"subscription_id,omitempty"`
	Plan                *SubscriptionPlan     `json:"plan,omitempty"`
	AddOns              []SubscriptionAddOn   `json:"add_ons,omitempty"`
	UnitAmount          decimal.Decimal       `json:"unit_amount"`
	Quantity            int                   `json:"quantity"`
	Shipping            *SubscriptionShipping `json:"shipping,omitempty"`
	ActivateAt          *time.Time            `json:"activate_at,omitempty"`
	Activated           bool                  `json:"activated"`
	RevenueScheduleType RevenueScheduleType   `json:"revenue_schedule_type,omitempty"`
	CustomFields        []CustomField         `json:"custom_fields,omitempty"`
	Timestamps
}

type SubscriptionAddOn struct {
	ID                  string              `json:"id"`
	Object              string              `json:"object,omitempty"`
	SubscriptionID      string              `json:"subscription_id,omitempty"`
	AddOn               *AddOnMini          `json:"add_on,omitempty"`
	AddOnSource         string              `json:"add_on_source,omitempty"`
	Quantity            int                 `json:"quantity"`
	UnitAmount          decimal.Decimal     `json:"unit_amount"`
	UnitAmountDecimal   string              `json:"unit_amount_decimal,omitempty"`
	RevenueScheduleType RevenueScheduleType `json:"revenue_schedule_type,omitempty"`
	TierType            string              `json:"tier_type,omitempty"`
	Tiers               []SubscriptionTier  `json:"tiers,omitempty"`
	ExpiredAt           *time.Time          `json:"expired_at,omitempty"`
	CreatedAt           *time.Time          `json:"created_at,omitempty"`
	UpdatedAt           *time.Time          `json:"updated_at,omitempty"`
}

type SubscriptionTier struct {
	StartingQuantity  int             `json:"starting_quantity,omitempty"`
	EndingQuantity    int             `json:"ending_quantity,omitempty"`
	UnitAmount        decimal.Decimal `json:"unit_amount"`
	UnitAmountDecimal string          `json:"unit_amount_decimal,omitempty"`
}

type SubscriptionRampIntervalRef struct {
	StartingBillingCycle   int             `json:"starting_billing_cycle"`
	RemainingBillingCycles int             `json:"remaining_billing_cycles"`
	UnitAmount             decimal.Decimal `json:"unit_amount"`
}

type TaxInfo struct {
	Type       string      `json:"type,omitempty"`
	Region     string      `json:"region,omitempty"`
	Rate       float64     `json:"rate,omitempty"`
	TaxDetails []TaxDetail `json:"tax_details,omitempty"`
}

type TaxDetail struct {
	Type     string          `json:"type,omitempty"`
	Region   string          `json:"region,omitempty"`
	Rate     float64         `json:"rate,omitempty"`
	Tax      decimal.Decimal `json:"tax"`
	Name     string          `json:"name,omitempty"`
	Level    string          `json:"level,omitempty"`
	Billable bool            `json:"billable"`
}

type ListSubscriptionsParams struct {
	ListParams
	State SubscriptionState `query:"state,omitempty" validate:"omitempty,oneof=active canceled expired failed future paused"`
}

// SubscriptionAccount creates or references the account inline when creating
// a subscription.
type SubscriptionAccount struct {
	Code      string `json:"code,omitempty" validate:"omitempty,max=50"`
	Email     string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Company   string `json:"company,omitempty" validate:"omitempty,max=50"`
}

type CreateSubscriptionShipping struct {
	Address    *Address         `json:"address,omitempty"`
	MethodID   string           `json:"method_id,omitempty"`
	MethodCode string           `json:"method_code,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
}

type UpdateSubscriptionShipping struct {
	ObjectID   string   `json:"object_id,omitempty" validate:"omitempty,max=13"`
	Address    *Address `json:"address,omitempty"`
	MethodID   string   `json:"method_id,omitempty"`
	MethodCode string   `json:"method_code,omitempty"`
}

type CreateSubscriptionAddOn struct {
	Code                string              `json:"code" validate:"required,max=50"`
	ID                  string              `json:"id,omitempty" validate:"omitempty,max=13"`
	AddOnSource         string              `json:"add_on_source,omitempty" validate:"omitempty,oneof=plan_add_on item"`
	Quantity            *int                `json:"quantity,omitempty" validate:"omitempty,min=0"`
	UnitAmount          *float64            `json:"unit_amount,omitempty" validate:"omitempty,min=0,max=1000000"`
	UnitAmountDecimal   *decimal.Decimal    `json:"unit_amount_decimal,omitempty" validate:"omitempty,min=0,max=1000000"`
	RevenueScheduleType RevenueScheduleType `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
}

type SubscriptionRampInterval struct {
	StartingBillingCycle int     `json:"starting_billing_cycle" validate:"min=1"`
	UnitAmount           float64 `json:"unit_amount" validate:"min=0"`
}

type CreateSubscription struct {
	PlanCode             string                      `json:"plan_code,omitempty" validate:"required_without=PlanID,max=50"`
	PlanID               string                      `json:"plan_id,omitempty" validate:"omitempty,max=13"`
	BusinessEntityID     string                      `json:"business_entity_id,omitempty" validate:"omitempty,max=13"`
	BusinessEntityCode   string                      `json:"business_entity_code,omitempty"`
	Account              *SubscriptionAccount        `json:"account,omitempty"`
	PriceSegmentID       string                      `json:"price_segment_id,omitempty"`
	BillingInfoID        string                      `json:"billing_info_id,omitempty" validate:"omitempty,max=13"`
	Shipping             *CreateSubscriptionShipping `json:"shipping,omitempty"`
	CollectionMethod     CollectionMethod            `json:"collection_method,omitempty" validate:"omitempty,oneof=automatic manual"`
	Currency             string                      `json:"currency" validate:"required,max=3"`
	UnitAmount           *float64                    `json:"unit_amount,omitempty" validate:"omitempty,min=0,max=1000000"`
	TaxInclusive         *bool                       `json:"tax_inclusive,omitempty"`
	Quantity             *int                        `json:"quantity,omitempty" validate:"omitempty,min=0"`
	AddOns               []CreateSubscriptionAddOn   `json:"add_ons,omitempty" validate:"omitempty,dive"`
	CouponCodes          []string                    `json:"coupon_codes,omitempty"`
	CustomFields         []CustomField               `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	TrialEndsAt          *time.Time                  `json:"trial_ends_at,omitempty"`
	StartsAt             *time.Time                  `json:"starts_at,omitempty"`
	NextBillDate         *time.Time                  `json:"next_bill_date,omitempty"`
	TotalBillingCycles   *int                        `json:"total_billing_cycles,omitempty" validate:"omitempty,min=1"`
	RenewalBillingCycles *int                        `json:"renewal_billing_cycles,omitempty"`
	AutoRenew            *bool                       `json:"auto_renew,omitempty"`
	RampIntervals        []SubscriptionRampInterval  `json:"ramp_intervals,omitempty" validate:"omitempty,dive"`
	RevenueScheduleType  RevenueScheduleType         `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	TermsAndConditions   string                      `json:"terms_and_conditions,omitempty"`
	CustomerNotes        string                      `json:"customer_notes,omitempty"`
	CreditCustomerNotes  string                      `json:"credit_customer_notes,omitempty"`
	PONumber             string                      `json:"po_number,omitempty" validate:"omitempty,max=50"`
	NetTerms             *int                        `json:"net_terms,omitempty" validate:"omitempty,min=0"`
	NetTermsType         NetTermsType                `json:"net_terms_type,omitempty" validate:"omitempty,oneof=net eom"`
	GatewayCode          string                      `json:"gateway_code,omitempty" validate:"omitempty,max=13"`
	TransactionType      string                      `json:"transaction_type,omitempty" validate:"omitempty,eq=moto"`
}

type UpdateSubscription struct {
	CollectionMethod       CollectionMethod            `json:"collection_method,omitempty" validate:"omitempty,oneof=automatic manual"`
	CustomFields           []CustomField               `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	RemainingBillingCycles *int                        `json:"remaining_billing_cycles,omitempty"`
	RenewalBillingCycles   *int                        `json:"renewal_billing_cycles,omitempty"`
	AutoRenew              *bool                       `json:"auto_renew,omitempty"`
	NextBillDate           *time.Time                  `json:"next_bill_date,omitempty"`
	RevenueScheduleType    RevenueScheduleType         `json:"revenue_schedule_type,omitempty" validate:"omitempty,oneof=at_range_end at_range_start evenly never"`
	TermsAndConditions     string                      `json:"terms_and_conditions,omitempty"`
	CustomerNotes          string                      `json:"customer_notes,omitempty"`
	PONumber               string                      `json:"po_number,omitempty" validate:"omitempty,max=50"`
	PriceSegmentID         string                      `json:"price_segment_id,omitempty"`
	NetTerms               *int                        `json:"net_terms,omitempty" validate:"omitempty,min=0"`
	NetTermsType           NetTermsType                `json:"net_terms_type,omitempty" validate:"omitempty,oneof=net eom"`
	GatewayCode            string                      `json:"gateway_code,omitempty" validate:"omitempty,max=13"`
	TaxInclusive           *bool                       `json:"tax_inclusive,omitempty"`
	Shipping               *UpdateSubscriptionShipping `json:"shipping,omitempty"`
	BillingInfoID          string                      `json:"billing_info_id,omitempty" validate:"omitempty,max=13"`
}

// TerminateParams travel as query parameters on DELETE /subscriptions/{id}.
type TerminateParams struct {
	Refund RefundType `query:"refund,omitempty" validate:"omitempty,oneof=full none partial"`
	Charge *bool      `query:"charge"`
}

type CancelSubscription struct {
	Timeframe string `json:"timeframe,omitempty" validate:"omitempty,oneof=bill_date term_end"`
}

type PauseSubscription struct {
	RemainingPauseCycles int `json:"remaining_pause_cycles" validate:"required,min=1"`
}

type ConvertTrial struct {
	AutoRenew *bool `json:"auto_renew,omitempty"`
}
