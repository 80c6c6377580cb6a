package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// AccountService covers /accounts and the account-scoped read endpoints.
// accountID accepts either the Recurly id or AccountCode(code).
type AccountService interface {
	List(ctx context.Context, params ListAccountsParams, opts ...gw.CallOption) (List[Account], error)
	Create(ctx context.Context, body CreateAccount, opts ...gw.CallOption) (Account, error)
	Get(ctx context.Context, accountID string, opts ...gw.CallOption) (Account, error)
	Update(ctx context.Context, accountID string, body UpdateAccount, opts ...gw.CallOption) (Account, error)
	// Deactivate closes the account; the API answers with the closed account.
	Deactivate(ctx context.Context, accountID string, opts ...gw.CallOption) (Account, error)
	Reactivate(ctx context.Context, accountID string, opts ...gw.CallOption) (Account, error)
	Balance(ctx context.Context, accountID string, opts ...gw.CallOption) (AccountBalance, error)
	ListChildren(ctx context.Context, accountID string, params ListAccountsParams, opts ...gw.CallOption) (List[Account], error)
	ListExternalSubscriptions(ctx context.Context, accountID string, params ListExternalSubscriptionsParams, opts ...gw.CallOption) (List[ExternalSubscription], error)
}

type accountService struct{ base }

func NewAccountService(g gw.Gateway, log *zap.Logger) AccountService {
	return accountService{newBase(g, log)}
}

func (s accountService) List(ctx context.Context, params ListAccountsParams, opts ...gw.CallOption) (List[Account], error) {
	return get[List[Account]](ctx, s.base, "List Accounts", "/accounts", params, opts)
}

func (s accountService) Create(ctx context.Context, body CreateAccount, opts ...gw.CallOption) (Account, error) {
	return call[Account](ctx, s.base, http.MethodPost, "Create Account", "/accounts", nil, body, opts)
}

func (s accountService) Get(ctx context.Context, accountID string, opts ...gw.CallOption) (Account, error) {
	const op = "Get Account"
	path, err := resourcePath(op, "/accounts/%s", accountID)
	if err != nil {
		return Account{}, err
	}
	return get[Account](ctx, s.base, op, path, nil, opts)
}

func (s accountService) Update(ctx context.Context, accountID string, body UpdateAccount, opts ...gw.CallOption) (Account, error) {
	const op = "Update Account"
	path, err := resourcePath(op, "/accounts/%s", accountID)
	if err != nil {
		return Account{}, err
	}
	return call[Account](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s accountService) Deactivate(ctx context.Context, accountID string, opts ...gw.CallOption) (Account, error) {
	const op = "Deactivate Account"
	path, err := resourcePath(op, "/accounts/%s", accountID)
	if err != nil {
		return Account{}, err
	}
	s.log.Info("deactivating account", zap.String("account_id", accountID))
	return call[Account](ctx, s.base, http.MethodDelete, op, path, nil, nil, opts)
}

func (s accountService) Reactivate(ctx context.Context, accountID string, opts ...gw.CallOption) (Account, error) {
	const op = "Reactivate Account"
	path, err := resourcePath(op, "/accounts/%s/reactivate", accountID)
	if err != nil {
		return Account{}, err
	}
	return call[Account](ctx, s.base, http.MethodPut, op, path, nil, nil, opts)
}

func (s accountService) Balance(ctx context.Context, accountID string, opts ...gw.CallOption) (AccountBalance, error) {
	const op = "Get Account Balance"
	path, err := resourcePath(op, "/accounts/%s/balance", accountID)
	if err != nil {
		return AccountBalance{}, err
	}
	return get[AccountBalance](ctx, s.base, op, path, nil, opts)
}

func (s accountService) ListChildren(ctx context.Context, accountID string, params ListAccountsParams, opts ...gw.CallOption) (List[Account], error) {
	const op = "List Child Accounts"
	path, err := resourcePath(op, "/accounts/%s/accounts", accountID)
	if err != nil {
		return List[Account]{}, err
	}
	return get[List[Account]](ctx, s.base, op, path, params, opts)
}

func (s accountService) ListExternalSubscriptions(ctx context.Context, accountID string, params ListExternalSubscriptionsParams, opts ...gw.CallOption) (List[ExternalSubscription], error) {
	const op = "List Account External Subscriptions"
	path, err := resourcePath(op, "/accounts/%s/external_subscriptions", accountID)
	if err != nil {
		return List[ExternalSubscription]{}, err
	}
	return get[List[ExternalSubscription]](ctx, s.base, op, path, params, opts)
}
