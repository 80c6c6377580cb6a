package app

import "time"

type UniqueCouponCode struct {
	ID             string     `json:"id"`
	Object         string     `json:"object,omitempty"`
	Code           string     `json:"code"`
	State          string     `json:"state,omitempty"`
	BulkCouponID   string     `json:"bulk_coupon_id,omitempty"`
	BulkCouponCode string     `json:"bulk_coupon_code,omitempty"`
	RedeemedAt     *time.Time `json:"redeemed_at,omitempty"`
	ExpiredAt      *time.Time `json:"expired_at,omitempty"`
	Timestamps
}

// UniqueCouponCodeParams is what Generate answers with: the list parameters
// that select the newly generated codes.
type UniqueCouponCodeParams struct {
	Limit     int        `json:"limit,omitempty" query:"limit,omitempty"`
	Order     SortOrder  `json:"order,omitempty" query:"order,omitempty"`
	Sort      SortField  `json:"sort,omitempty" query:"sort,omitempty"`
	BeginTime *time.Time `json:"begin_time,omitempty" query:"begin_time,omitempty"`
}

type GenerateUniqueCouponCodes struct {
	NumberOfUniqueCodes int `json:"number_of_unique_codes" validate:"required,min=1"`
}

type ListUniqueCouponCodesParams struct {
	ListParams
	Redeemed string `query:"redeemed,omitempty" validate:"omitempty,oneof=true false"`
}
