package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// UniqueCouponCodeService manages the codes of bulk coupons. uniqueCodeID
// accepts an id or UUIDRef(uuid).
type UniqueCouponCodeService interface {
	Generate(ctx context.Context, couponID string, body GenerateUniqueCouponCodes, opts ...gw.CallOption) (UniqueCouponCodeParams, error)
	List(ctx context.Context, couponID string, params ListUniqueCouponCodesParams, opts ...gw.CallOption) (List[UniqueCouponCode], error)
	Get(ctx context.Context, uniqueCodeID string, opts ...gw.CallOption) (UniqueCouponCode, error)
	Deactivate(ctx context.Context, uniqueCodeID string, opts ...gw.CallOption) (UniqueCouponCode, error)
	Reactivate(ctx context.Context, uniqueCodeID string, opts ...gw.CallOption) (UniqueCouponCode, error)
}

type uniqueCouponCodeService struct{ base }

func NewUniqueCouponCodeService(g gw.Gateway, log *zap.Logger) UniqueCouponCodeService {
	return uniqueCouponCodeService{newBase(g, log)}
}

func (s uniqueCouponCodeService) Generate(ctx context.Context, couponID string, body GenerateUniqueCouponCodes, opts ...gw.CallOption) (UniqueCouponCodeParams, error) {
	const op = "Generate Unique Coupon Codes"
	path, err := resourcePath(op, "/coupons/%s/generate", couponID)
	if err != nil {
		return UniqueCouponCodeParams{}, err
	}
	s.log.Info("generating unique coupon codes",
		zap.String("coupon_id", couponID),
		zap.Int("count", body.NumberOfUniqueCodes),
	)
	return call[UniqueCouponCodeParams](ctx, s.base, http.MethodPost, op, path, nil, body, opts)
}

func (s uniqueCouponCodeService) List(ctx context.Context, couponID string, params ListUniqueCouponCodesParams, opts ...gw.CallOption) (List[UniqueCouponCode], error) {
	const op = "List Unique Coupon Codes"
	path, err := resourcePath(op, "/coupons/%s/unique_coupon_codes", couponID)
	if err != nil {
		return List[UniqueCouponCode]{}, err
	}
	return get[List[UniqueCouponCode]](ctx, s.base, op, path, params, opts)
}

func (s uniqueCouponCodeService) Get(ctx context.Context, uniqueCodeID string, opts ...gw.CallOption) (UniqueCouponCode, error) {
	const op = "Get Unique Coupon Code"
	path, err := resourcePath(op, "/unique_coupon_codes/%s", uniqueCodeID)
	if err != nil {
		return UniqueCouponCode{}, err
	}
	return get[UniqueCouponCode](ctx, s.base, op, path, nil, opts)
}

func (s uniqueCouponCodeService) Deactivate(ctx context.Context, uniqueCodeID string, opts ...gw.CallOption) (UniqueCouponCode, error) {
	const op = "Deactivate Unique Coupon Code"
	path, err := resourcePath(op, "/unique_coupon_codes/%s", uniqueCodeID)
	if err != nil {
		return UniqueCouponCode{}, err
	}
	return call[UniqueCouponCode](ctx, s.base, http.MethodDelete, op, path, nil, nil, opts)
}

func (s uniqueCouponCodeService) Reactivate(ctx context.Context, uniqueCodeID string, opts ...gw.CallOption) (UniqueCouponCode, error) {
	const op = "Reactivate Unique Coupon Code"
	path, err := resourcePath(op, "/unique_coupon_codes/%s/restore", uniqueCodeID)
	if err != nil {
		return UniqueCouponCode{}, err
	}
	return call[UniqueCouponCode](ctx, s.base, http.MethodPut, op, path, nil, nil, opts)
}
