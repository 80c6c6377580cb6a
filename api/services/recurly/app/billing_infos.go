package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// BillingInfosService manages accounts that carry several billing infos
// (wallet feature).
type BillingInfosService interface {
	List(ctx context.Context, accountID string, params ListBillingInfosParams, opts ...gw.CallOption) (List[BillingInfo], error)
	Create(ctx context.Context, accountID string, body BillingInfoRequest, opts ...gw.CallOption) (BillingInfo, error)
	Get(ctx context.Context, accountID, billingInfoID string, opts ...gw.CallOption) (BillingInfo, error)
	Update(ctx context.Context, accountID, billingInfoID string, body BillingInfoRequest, opts ...gw.CallOption) (BillingInfo, error)
	Remove(ctx context.Context, accountID, billingInfoID string, opts ...gw.CallOption) error
	Verify(ctx context.Context, accountID, billingInfoID string, body VerifyBillingInfo, opts ...gw.CallOption) (Transaction, error)
	VerifyCVV(ctx context.Context, accountID, billingInfoID string, body VerifyBillingInfoCVV, opts ...gw.CallOption) (Transaction, error)
}

type billingInfosService struct{ base }

func NewBillingInfosService(g gw.Gateway, log *zap.Logger) BillingInfosService {
	return billingInfosService{newBase(g, log)}
}

func (s billingInfosService) List(ctx context.Context, accountID string, params ListBillingInfosParams, opts ...gw.CallOption) (List[BillingInfo], error) {
	const op = "List Billing Infos"
	path, err := resourcePath(op, "/accounts/%s/billing_infos", accountID)
	if err != nil {
		return List[BillingInfo]{}, err
	}
	return get[List[BillingInfo]](ctx, s.base, op, path, params, opts)
}

func (s billingInfosService) Create(ctx context.Context, accountID string, body BillingInfoRequest, opts ...gw.CallOption) (BillingInfo, error) {
	const op = "Create Billing Info"
	path, err := resourcePath(op, "/accounts/%s/billing_infos", accountID)
	if err != nil {
		return BillingInfo{}, err
	}
	return call[BillingInfo](ctx, s.base, http.MethodPost, op, path, nil, body, opts)
}

func (s billingInfosService) Get(ctx context.Context, accountID, billingInfoID string, opts ...gw.CallOption) (BillingInfo, error) {
	const op = "Get Billing Info"
	path, err := resourcePath(op, "/accounts/%s/billing_infos/%s", accountID, billingInfoID)
	if err != nil {
		return BillingInfo{}, err
	}
	return get[BillingInfo](ctx, s.base, op, path, nil, opts)
}

func (s billingInfosService) Update(ctx context.Context, accountID, billingInfoID string, body BillingInfoRequest, opts ...gw.CallOption) (BillingInfo, error) {
	const op = "Update Billing Info"
	path, err := resourcePath(op, "/accounts/%s/billing_infos/%s", accountID, billingInfoID)
	if err != nil {
		return BillingInfo{}, err
	}
	return call[BillingInfo](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s billingInfosService) Remove(ctx context.Context, accountID, billingInfoID string, opts ...gw.CallOption) error {
	const op = "Remove Billing Info"
	path, err := resourcePath(op, "/accounts/%s/billing_infos/%s", accountID, billingInfoID)
	if err != nil {
		return err
	}
	return callNoContent(ctx, s.base, http.MethodDelete, op, path, opts)
}

func (s billingInfosService) Verify(ctx context.Context, accountID, billingInfoID string, body VerifyBillingInfo, opts ...gw.CallOption) (Transaction, error) {
	const op = "Verify Billing Info"
	path, err := resourcePath(op, "/accounts/%s/billing_infos/%s/verify", accountID, billingInfoID)
	if err != nil {
		return Transaction{}, err
	}
	return call[Transaction](ctx, s.base, http.MethodPost, op, path, nil, body, opts)
}

func (s billingInfosService) VerifyCVV(ctx context.Context, accountID, billingInfoID string, body VerifyBillingInfoCVV, opts ...gw.CallOption) (Transaction, error) {
	const op = "Verify Billing Info CVV"
	path, err := resourcePath(op, "/accounts/%s/billing_infos/%s/verify_cvv", accountID, billingInfoID)
	if err != nil {
		return Transaction{}, err
	}
	return call[Transaction](ctx, s.base, http.MethodPost, op, path, nil, body, opts)
}
