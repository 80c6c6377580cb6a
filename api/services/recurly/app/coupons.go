package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// CouponService manages /coupons. couponID accepts an id or CouponCode(code).
type CouponService interface {
	List(ctx context.Context, params ListCouponsParams, opts ...gw.CallOption) (List[Coupon], error)
	Create(ctx context.Context, body CreateCoupon, opts ...gw.CallOption) (Coupon, error)
	Get(ctx context.Context, couponID string, opts ...gw.CallOption) (Coupon, error)
	Update(ctx context.Context, couponID string, body UpdateCoupon, opts ...gw.CallOption) (Coupon, error)
	// Deactivate expires the coupon so it can no longer be redeemed.
	Deactivate(ctx context.Context, couponID string, opts ...gw.CallOption) (Coupon, error)
	// Restore makes an expired coupon redeemable again, applying body on the way.
	Restore(ctx context.Context, couponID string, body UpdateCoupon, opts ...gw.CallOption) (Coupon, error)
}

type couponService struct{ base }

func NewCouponService(g gw.Gateway, log *zap.Logger) CouponService {
	return couponService{newBase(g, log)}
}

func (s couponService) List(ctx context.Context, params ListCouponsParams, opts ...gw.CallOption) (List[Coupon], error) {
	return get[List[Coupon]](ctx, s.base, "List Coupons", "/coupons", params, opts)
}

func (s couponService) Create(ctx context.Context, body CreateCoupon, opts ...gw.CallOption) (Coupon, error) {
	return call[Coupon](ctx, s.base, http.MethodPost, "Create Coupon", "/coupons", nil, body, opts)
}

func (s couponService) Get(ctx context.Context, couponID string, opts ...gw.CallOption) (Coupon, error) {
	const op = "Get Coupon"
	path, err := resourcePath(op, "/coupons/%s", couponID)
	if err != nil {
		return Coupon{}, err
	}
	return get[Coupon](ctx, s.base, op, path, nil, opts)
}

func (s couponService) Update(ctx context.Context, couponID string, body UpdateCoupon, opts ...gw.CallOption) (Coupon, error) {
	const op = "Update Coupon"
	path, err := resourcePath(op, "/coupons/%s", couponID)
	if err != nil {
		return Coupon{}, err
	}
	return call[Coupon](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s couponService) Deactivate(ctx context.Context, couponID string, opts ...gw.CallOption) (Coupon, error) {
	const op = "Deactivate Coupon"
	path, err := resourcePath(op, "/coupons/%s", couponID)
	if err != nil {
		return Coupon{}, err
	}
	return call[Coupon](ctx, s.base, http.MethodDelete, op, path, nil, nil, opts)
}

func (s couponService) Restore(ctx context.Context, couponID string, body UpdateCoupon, opts ...gw.CallOption) (Coupon, error) {
	const op = "Restore Coupon"
	path, err := resourcePath(op, "/coupons/%s/restore", couponID)
	if err != nil {
		return Coupon{}, err
	}
	return call[Coupon](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}
