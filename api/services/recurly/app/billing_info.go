package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// BillingInfoService manages the single billing info record of an account.
type BillingInfoService interface {
	Get(ctx context.Context, accountID string, opts ...gw.CallOption) (BillingInfo, error)
	Update(ctx context.Context, accountID string, body BillingInfoRequest, opts ...gw.CallOption) (BillingInfo, error)
	Remove(ctx context.Context, accountID string, opts ...gw.CallOption) error
	Verify(ctx context.Context, accountID string, body VerifyBillingInfo, opts ...gw.CallOption) (Transaction, error)
	VerifyCVV(ctx context.Context, accountID string, body VerifyBillingInfoCVV, opts ...gw.CallOption) (Transaction, error)
}

type billingInfoService struct{ base }

func NewBillingInfoService(g gw.Gateway, log *zap.Logger) BillingInfoService {
	return billingInfoService{newBase(g, log)}
}

func (s billingInfoService) Get(ctx context.Context, accountID string, opts ...gw.CallOption) (BillingInfo, error) {
	const op = "Get billing info"
	path, err := resourcePath(op, "/accounts/%s/billing_info", accountID)
	if err != nil {
		return BillingInfo{}, err
	}
	return get[BillingInfo](ctx, s.base, op, path, nil, opts)
}

func (s billingInfoService) Update(ctx context.Context, accountID string, body BillingInfoRequest, opts ...gw.CallOption) (BillingInfo, error) {
	const op = "Update billing info"
	path, err := resourcePath(op, "/accounts/%s/billing_info", accountID)
	if err != nil {
		return BillingInfo{}, err
	}
	return call[BillingInfo](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s billingInfoService) Remove(ctx context.Context, accountID string, opts ...gw.CallOption) error {
	const op = "Remove billing info"
	path, err := resourcePath(op, "/accounts/%s/billing_info", accountID)
	if err != nil {
		return err
	}
	return callNoContent(ctx, s.base, http.MethodDelete, op, path, opts)
}

func (s billingInfoService) Verify(ctx context.Context, accountID string, body VerifyBillingInfo, opts ...gw.CallOption) (Transaction, error) {
	const op = "Verify billing info"
	path, err := resourcePath(op, "/accounts/%s/billing_info/verify", accountID)
	if err != nil {
		return Transaction{}, err
	}
	return call[Transaction](ctx, s.base, http.MethodPost, op, path, nil, body, opts)
}

func (s billingInfoService) VerifyCVV(ctx context.Context, accountID string, body VerifyBillingInfoCVV, opts ...gw.CallOption) (Transaction, error) {
	const op = "Verify billing info CVV"
	path, err := resourcePath(op, "/accounts/%s/billing_info/verify_cvv", accountID)
	if err != nil {
		return Transaction{}, err
	}
	return call[Transaction](ctx, s.base, http.MethodPost, op, path, nil, body, opts)
}
