package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

func TestAccounts_ListSendsFiltersInOrder(t *testing.T) {
	g, seen := vendorServer(t, http.StatusOK, `{"object":"list","has_more":false,"data":[{"id":"a1","code":"acme","email":"ops@acme.test"}]}`)
	svc := NewAccountService(g, nil)

	page, err := svc.List(context.Background(), ListAccountsParams{
		ListParams: ListParams{Limit: 2, Order: OrderDesc},
		Email:      "ops@acme.test",
		Subscriber: lo.ToPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, seen.method)
	assert.Equal(t, "/accounts?limit=2&order=desc&email=ops%40acme.test&subscriber=true", seen.uri)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "acme", page.Data[0].Code)
	assert.False(t, page.HasMore)
}

func TestAccounts_ListWithoutParamsHasNoQuery(t *testing.T) {
	g, seen := vendorServer(t, http.StatusOK, `{"object":"list","data":[]}`)
	_, err := NewAccountService(g, nil).List(context.Background(), ListAccountsParams{})
	require.NoError(t, err)
	assert.Equal(t, "/accounts", seen.uri)
}

func TestAccounts_CreatePostsBody(t *testing.T) {
	g, seen := vendorServer(t, http.StatusCreated, `{"id":"a2","code":"new-acct","first_name":"Ada"}`)
	svc := NewAccountService(g, nil)

	acct, err := svc.Create(context.Background(), CreateAccount{
		Code:          "new-acct",
		AccountFields: AccountFields{FirstName: "Ada", Email: "ada@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/accounts", seen.uri)
	assert.JSONEq(t, `{"code":"new-acct","first_name":"Ada","email":"ada@example.com"}`, seen.body)
	assert.Equal(t, "a2", acct.ID)
	assert.Equal(t, "Ada", acct.FirstName)
}

func TestAccounts_CreateRejectsInvalidBodyWithoutCalling(t *testing.T) {
	fake := &fakeGateway{}
	svc := NewAccountService(fake, nil)

	cases := []struct {
		name string
		body CreateAccount
	}{
		{"missing code", CreateAccount{}},
		{"code too long", CreateAccount{Code: strings.Repeat("x", 51)}},
		{"bad email", CreateAccount{Code: "c", AccountFields: AccountFields{Email: "not-an-email"}}},
		{"unknown locale", CreateAccount{Code: "c", AccountFields: AccountFields{PreferredLocale: "xx-XX"}}},
		{"bad acquisition channel", CreateAccount{Code: "c", Acquisition: &UpdateAccountAcquisition{Channel: "carrier_pigeon"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.body)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Empty(t, fake.calls)
}

func TestAccounts_PathsAndLabels(t *testing.T) {
	fake := &fakeGateway{}
	svc := NewAccountService(fake, nil)
	ctx := context.Background()
	id := AccountCode("acme")

	type step struct {
		run    func() error
		op     string
		method string
		path   string
	}
	steps := []step{
		{func() error { _, err := svc.Get(ctx, id); return err }, "Get Account", http.MethodGet, "/accounts/code-acme"},
		{func() error { _, err := svc.Update(ctx, id, UpdateAccount{}); return err }, "Update Account", http.MethodPut, "/accounts/code-acme"},
		{func() error { _, err := svc.Deactivate(ctx, id); return err }, "Deactivate Account", http.MethodDelete, "/accounts/code-acme"},
		{func() error { _, err := svc.Reactivate(ctx, id); return err }, "Reactivate Account", http.MethodPut, "/accounts/code-acme/reactivate"},
		{func() error { _, err := svc.Balance(ctx, id); return err }, "Get Account Balance", http.MethodGet, "/accounts/code-acme/balance"},
		{func() error { _, err := svc.ListChildren(ctx, id, ListAccountsParams{}); return err }, "List Child Accounts", http.MethodGet, "/accounts/code-acme/accounts"},
		{func() error {
			_, err := svc.ListExternalSubscriptions(ctx, id, ListExternalSubscriptionsParams{})
			return err
		}, "List Account External Subscriptions", http.MethodGet, "/accounts/code-acme/external_subscriptions"},
	}
	for _, s := range steps {
		require.NoError(t, s.run(), s.op)
		req := fake.last(t)
		assert.Equal(t, s.op, req.Op)
		assert.Equal(t, s.method, req.Method, s.op)
		assert.Equal(t, s.path, req.Path, s.op)
	}
}

func TestAccounts_EscapesIDs(t *testing.T) {
	fake := &fakeGateway{}
	_, err := NewAccountService(fake, nil).Get(context.Background(), AccountCode("a b/c"))
	require.NoError(t, err)
	assert.Equal(t, "/accounts/code-a%20b%2Fc", fake.last(t).Path)
}

func TestAccounts_EmptyIDIsValidationError(t *testing.T) {
	fake := &fakeGateway{}
	_, err := NewAccountService(fake, nil).Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fake.calls)
}

func TestAccounts_CallOptionsReachGateway(t *testing.T) {
	fake := &fakeGateway{}
	_, err := NewAccountService(fake, nil).Create(context.Background(), CreateAccount{Code: "c"},
		gw.WithAPIKey("per-call"), gw.WithIdempotencyKey("idem"))
	require.NoError(t, err)
	req := fake.last(t)
	assert.Equal(t, "per-call", req.APIKey)
	assert.Equal(t, "idem", req.IdempotencyKey)
}

func TestAccounts_NotFoundSurfacesAPIError(t *testing.T) {
	g, _ := vendorServer(t, http.StatusNotFound, `{"error":{"type":"not_found","message":"Couldn't find Account"}}`)
	acct, err := NewAccountService(g, nil).Get(context.Background(), AccountCode("missing"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "Get Account failed: 404")
	assert.Equal(t, Account{}, acct)

	var apiErr *gw.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Couldn't find Account", apiErr.Detail.Message)
}
