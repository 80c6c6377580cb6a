package app

import "time"

type CouponState string

const (
	CouponExpired    CouponState = "expired"
	CouponMaxedOut   CouponState = "maxed_out"
	CouponRedeemable CouponState = "redeemable"
)

type DiscountType string

const (
	DiscountFixed     DiscountType = "fixed"
	DiscountFreeTrial DiscountType = "free_trial"
	DiscountPercent   DiscountType = "percent"
)

type CouponDuration string

const (
	DurationForever   CouponDuration = "forever"
	DurationSingleUse CouponDuration = "single_use"
	DurationTemporal  CouponDuration = "temporal"
)

type CouponDiscount struct {
	Type       DiscountType     `json:"type"`
	Percent    *int             `json:"percent,omitempty"`
	Currencies []CurrencyAmount `json:"currencies,omitempty"`
	Trial      *DiscountTrial   `json:"trial,omitempty"`
}

type DiscountTrial struct {
	Unit   string `json:"unit"`
	Length int    `json:"length"`
}

type CouponMini struct {
	ID         string         `json:"id"`
	Object     string         `json:"object,omitempty"`
	Code       string         `json:"code"`
	Name       string         `json:"name"`
	State      CouponState    `json:"state,omitempty"`
	Discount   CouponDiscount `json:"discount"`
	CouponType string         `json:"coupon_type,omitempty"`
	ExpiredAt  *time.Time     `json:"expired_at,omitempty"`
}

type Coupon struct {
	ID                       string            `json:"id"`
	Object                   string            `json:"object,omitempty"`
	Code                     string            `json:"code"`
	Name                     string            `json:"name"`
	State                    CouponState       `json:"state,omitempty"`
	MaxRedemptions           *int              `json:"max_redemptions,omitempty"`
	MaxRedemptionsPerAccount *int              `json:"max_redemptions_per_account,omitempty"`
	UniqueCouponCodesCount   int               `json:"unique_coupon_codes_count"`
	UniqueCodeTemplate       string            `json:"unique_code_template,omitempty"`
	UniqueCouponCode         *UniqueCouponCode `json:"unique_coupon_code,omitempty"`
	Duration                 CouponDuration    `json:"duration"`
	TemporalAmount           *int              `json:"temporal_amount,omitempty"`
	TemporalUnit             string            `json:"temporal_unit,omitempty"`
	FreeTrialUnit            string            `json:"free_trial_unit,omitempty"`
	FreeTrialAmount          *int              `json:"free_trial_amount,omitempty"`
	AppliesToAllPlans        bool              `json:"applies_to_all_plans"`
	AppliesToAllItems        bool              `json:"applies_to_all_items"`
	AppliesToNonPlanCharges  bool              `json:"applies_to_non_plan_charges"`
	Plans                    []PlanMini        `json:"plans,omitempty"`
	Items                    []ItemMini        `json:"items,omitempty"`
	RedemptionResource       string            `json:"redemption_resource,omitempty"`
	Discount                 CouponDiscount    `json:"discount"`
	CouponType               string            `json:"coupon_type,omitempty"`
	HostedPageDescription    string            `json:"hosted_page_description,omitempty"`
	InvoiceDescription       string            `json:"invoice_description,omitempty"`
	RedeemBy                 *time.Time        `json:"redeem_by,omitempty"`
	ExpiredAt                *time.Time        `json:"expired_at,omitempty"`
	Timestamps
}

type ListCouponsParams struct {
	ListParams
}

type CouponPricing struct {
	Currency string  `json:"currency" validate:"required,max=3"`
	Discount float64 `json:"discount" validate:"min=0"`
}

// CouponFields are the attributes accepted by coupon create, update and restore.
type CouponFields struct {
	MaxRedemptions           *int       `json:"max_redemptions,omitempty" validate:"omitempty,min=1"`
	MaxRedemptionsPerAccount *int       `json:"max_redemptions_per_account,omitempty" validate:"omitempty,min=1"`
	HostedDescription        string     `json:"hosted_description,omitempty"`
	InvoiceDescription       string     `json:"invoice_description,omitempty"`
	RedeemByDate             *time.Time `json:"redeem_by_date,omitempty"`
}

type CreateCoupon struct {
	Code                    string          `json:"code" validate:"required,max=50"`
	Name                    string          `json:"name" validate:"required,max=255"`
	Duration                CouponDuration  `json:"duration" validate:"required,oneof=forever single_use temporal"`
	DiscountType            DiscountType    `json:"discount_type" validate:"required,oneof=fixed free_trial percent"`
	UniqueCodeTemplate      string          `json:"unique_code_template,omitempty"`
	TemporalAmount          *int            `json:"temporal_amount,omitempty" validate:"omitempty,min=1"`
	TemporalUnit            string          `json:"temporal_unit,omitempty" validate:"omitempty,oneof=day month week year"`
	DiscountPercent         *int            `json:"discount_percent,omitempty" validate:"omitempty,min=1,max=100"`
	FreeTrialUnit           string          `json:"free_trial_unit,omitempty" validate:"omitempty,oneof=day month week"`
	FreeTrialAmount         *int            `json:"free_trial_amount,omitempty" validate:"omitempty,min=1"`
	Currencies              []CouponPricing `json:"currencies,omitempty" validate:"omitempty,dive"`
	AppliesToAllPlans       *bool           `json:"applies_to_all_plans,omitempty"`
	AppliesToAllItems       *bool           `json:"applies_to_all_items,omitempty"`
	AppliesToNonPlanCharges *bool           `json:"applies_to_non_plan_charges,omitempty"`
	PlanCodes               []string        `json:"plan_codes,omitempty"`
	ItemCodes               []string        `json:"item_codes,omitempty"`
	RedemptionResource      string          `json:"redemption_resource,omitempty" validate:"omitempty,oneof=account subscription"`
	CouponType              string          `json:"coupon_type,omitempty" validate:"omitempty,oneof=bulk single_code"`
	CouponFields
}

type UpdateCoupon struct {
	Name string `json:"name,omitempty" validate:"omitempty,max=255"`
	CouponFields
}
