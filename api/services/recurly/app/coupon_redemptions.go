package app

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

type CouponRedemption struct {
	ID             string           `json:"id"`
	Object         string           `json:"object,omitempty"`
	Account        *AccountMini     `json:"account,omitempty"`
	SubscriptionID string           `json:"subscription_id,omitempty"`
	Coupon         Coupon           `json:"coupon"`
	State          string           `json:"state,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	Discounted     *decimal.Decimal `json:"discounted,omitempty"`
	CreatedAt      *time.Time       `json:"created_at,omitempty"`
	UpdatedAt      *time.Time       `json:"updated_at,omitempty"`
	RemovedAt      *time.Time       `json:"removed_at,omitempty"`
}

type CouponRedemptionMini struct {
	ID     string     `json:"id"`
	Object string     `json:"object,omitempty"`
	Coupon CouponMini `json:"coupon"`
}

type ListCouponRedemptionsParams struct {
	ListParams
	State string `query:"state,omitempty"`
}

type CreateCouponRedemption struct {
	CouponID       string `json:"coupon_id" validate:"required"`
	Currency       string `json:"currency,omitempty" validate:"omitempty,max=3"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// CouponRedemptionService manages coupons applied to accounts and reads
// redemptions by invoice and subscription.
type CouponRedemptionService interface {
	ListForAccount(ctx context.Context, accountID string, params ListCouponRedemptionsParams, opts ...gw.CallOption) (List[CouponRedemption], error)
	ListActive(ctx context.Context, accountID string, opts ...gw.CallOption) (List[CouponRedemption], error)
	Create(ctx context.Context, accountID string, body CreateCouponRedemption, opts ...gw.CallOption) (CouponRedemption, error)
	// Remove drops the account's active redemption and returns it.
	Remove(ctx context.Context, accountID string, opts ...gw.CallOption) (CouponRedemption, error)
	ListForInvoice(ctx context.Context, invoiceID string, params ListCouponRedemptionsParams, opts ...gw.CallOption) (List[CouponRedemption], error)
	ListForSubscription(ctx context.Context, subscriptionID string, params ListCouponRedemptionsParams, opts ...gw.CallOption) (List[CouponRedemption], error)
}

type couponRedemptionService struct{ base }

func NewCouponRedemptionService(g gw.Gateway, log *zap.Logger) CouponRedemptionService {
	return couponRedemptionService{newBase(g, log)}
}

func (s couponRedemptionService) ListForAccount(ctx context.Context, accountID string, params ListCouponRedemptionsParams, opts ...gw.CallOption) (List[CouponRedemption], error) {
	const op = "List Account Coupon Redemptions"
	path, err := resourcePath(op, "/accounts/%s/coupon_redemptions", accountID)
	if err != nil {
		return List[CouponRedemption]{}, err
	}
	return get[List[CouponRedemption]](ctx, s.base, op, path, params, opts)
}

func (s couponRedemptionService) ListActive(ctx context.Context, accountID string, opts ...gw.CallOption) (List[CouponRedemption], error) {
	const op = "List Active Coupon Redemptions"
	path, err := resourcePath(op, "/accounts/%s/coupon_redemptions/active", accountID)
	if err != nil {
		return List[CouponRedemption]{}, err
	}
	return get[List[CouponRedemption]](ctx, s.base, op, path, nil, opts)
}

func (s couponRedemptionService) Create(ctx context.Context, accountID string, body CreateCouponRedemption, opts ...gw.CallOption) (CouponRedemption, error) {
	const op = "Create Coupon Redemption"
	path, err := resourcePath(op, "/accounts/%s/coupon_redemptions/active", accountID)
	if err != nil {
		return CouponRedemption{}, err
	}
	return call[CouponRedemption](ctx, s.base, http.MethodPost, op, path, nil, body, opts)
}

func (s couponRedemptionService) Remove(ctx context.Context, accountID string, opts ...gw.CallOption) (CouponRedemption, error) {
	const op = "Remove Coupon Redemption"
	path, err := resourcePath(op, "/accounts/%s/coupon_redemptions/active", accountID)
	if err != nil {
		return CouponRedemption{}, err
	}
	return call[CouponRedemption](ctx, s.base, http.MethodDelete, op, path, nil, nil, opts)
}

func (s couponRedemptionService) ListForInvoice(ctx context.Context, invoiceID string, params ListCouponRedemptionsParams, opts ...gw.CallOption) (List[CouponRedemption], error) {
	const op = "List Invoice Coupon Redemptions"
	path, err := resourcePath(op, "/invoices/%s/coupon_redemptions", invoiceID)
	if err != nil {
		return List[CouponRedemption]{}, err
	}
	return get[List[CouponRedemption]](ctx, s.base, op, path, params, opts)
}

func (s couponRedemptionService) ListForSubscription(ctx context.Context, subscriptionID string, params ListCouponRedemptionsParams, opts ...gw.CallOption) (List[CouponRedemption], error) {
	const op = "List Subscription Coupon Redemptions"
	path, err := resourcePath(op, "/subscriptions/%s/coupon_redemptions", subscriptionID)
	if err != nil {
		return List[CouponRedemption]{}, err
	}
	return get[List[CouponRedemption]](ctx, s.base, op, path, params, opts)
}
