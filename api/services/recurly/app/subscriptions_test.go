package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSubscriptions_Routes(t *testing.T) {
	fake := &fakeGateway{}
	svc := NewSubscriptionService(fake, nil)
	sub := UUIDRef("123")

	assertRoutes(t, fake, []routeCase{
		{func(ctx context.Context) error { _, err := svc.List(ctx, ListSubscriptionsParams{}); return err }, "List subscriptions", http.MethodGet, "/subscriptions"},
		{func(ctx context.Context) error {
			_, err := svc.ListForAccount(ctx, AccountCode("acme"), ListSubscriptionsParams{})
			return err
		}, "List account subscriptions", http.MethodGet, "/accounts/code-acme/subscriptions"},
		{func(ctx context.Context) error { _, err := svc.Get(ctx, sub); return err }, "Get subscription", http.MethodGet, "/subscriptions/uuid-123"},
		{func(ctx context.Context) error {
			_, err := svc.Update(ctx, sub, UpdateSubscription{AutoRenew: lo.ToPtr(false)})
			return err
		}, "Update subscription", http.MethodPut, "/subscriptions/uuid-123"},
		{func(ctx context.Context) error {
			_, err := svc.Cancel(ctx, sub, CancelSubscription{Timeframe: "term_end"})
			return err
		}, "Cancel subscription", http.MethodPut, "/subscriptions/uuid-123/cancel"},
		{func(ctx context.Context) error { _, err := svc.Reactivate(ctx, sub); return err }, "Reactivate subscription", http.MethodPut, "/subscriptions/uuid-123/reactivate"},
		{func(ctx context.Context) error { _, err := svc.Resume(ctx, sub); return err }, "Resume subscription", http.MethodPut, "/subscriptions/uuid-123/resume"},
		{func(ctx context.Context) error {
			_, err := svc.ConvertTrial(ctx, sub, ConvertTrial{})
			return err
		}, "Convert trial", http.MethodPut, "/subscriptions/uuid-123/convert_trial"},
		{func(ctx context.Context) error { _, err := svc.PreviewRenewal(ctx, sub); return err }, "Preview renewal", http.MethodGet, "/subscriptions/uuid-123/preview_renewal"},
	})
}

func TestSubscriptions_CreateSendsPlanAndCurrency(t *testing.T) {
	g, seen := vendorServer(t, http.StatusCreated, `{"id":"s1","uuid":"abc","state":"active","plan":{"id":"p1","code":"gold"}}`)
	svc := NewSubscriptionService(g, nil)

	sub, err := svc.Create(context.Background(), CreateSubscription{
		PlanCode: "gold",
		Currency: "USD",
		Account:  &SubscriptionAccount{Code: "acme"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, seen.method)
	assert.Equal(t, "/subscriptions", seen.uri)
	assert.JSONEq(t, `{"plan_code":"gold","currency":"USD","account":{"code":"acme"}}`, seen.body)
	assert.Equal(t, "abc", sub.UUID)
	require.NotNil(t, sub.Plan)
	assert.Equal(t, "gold", sub.Plan.Code)
}

func TestSubscriptions_CreateValidation(t *testing.T) {
	fake := &fakeGateway{}
	svc := NewSubscriptionService(fake, nil)

	_, err := svc.Create(context.Background(), CreateSubscription{Currency: "USD"})
	assert.ErrorIs(t, err, ErrValidation, "plan code or id is required")

	_, err = svc.Create(context.Background(), CreateSubscription{PlanCode: "gold"})
	assert.ErrorIs(t, err, ErrValidation, "currency is required")

	_, err = svc.Create(context.Background(), CreateSubscription{PlanID: "p1", Currency: "USD"})
	require.NoError(t, err)
	assert.Len(t, fake.calls, 1)
}

func TestSubscriptions_TerminateUsesQueryAndLogs(t *testing.T) {
	g, seen := vendorServer(t, http.StatusOK, `{"id":"s1","state":"expired"}`)
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewSubscriptionService(g, zap.New(core))

	sub, err := svc.Terminate(context.Background(), "s1", TerminateParams{Refund: RefundPartial, Charge: lo.ToPtr(false)})
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, seen.method)
	assert.Equal(t, "/subscriptions/s1?refund=partial&charge=false", seen.uri)
	assert.Empty(t, seen.body)
	assert.Equal(t, SubscriptionState("expired"), sub.State)
	assert.Equal(t, 1, logs.FilterMessage("terminating subscription").Len())
}

func TestSubscriptions_TerminateRejectsUnknownRefund(t *testing.T) {
	fake := &fakeGateway{}
	_, err := NewSubscriptionService(fake, nil).Terminate(context.Background(), "s1", TerminateParams{Refund: "most"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fake.calls)
}

func TestSubscriptions_PauseNeedsCycles(t *testing.T) {
	fake := &fakeGateway{}
	svc := NewSubscriptionService(fake, nil)

	_, err := svc.Pause(context.Background(), "s1", PauseSubscription{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, fake.calls)

	_, err = svc.Pause(context.Background(), "s1", PauseSubscription{RemainingPauseCycles: 2})
	require.NoError(t, err)
	req := fake.last(t)
	assert.Equal(t, "Pause subscription", req.Op)
	assert.Equal(t, "/subscriptions/s1/pause", req.Path)
	assert.Equal(t, PauseSubscription{RemainingPauseCycles: 2}, req.Body)
}

func TestSubscriptions_ReactivateAndResumeSendEmptyObject(t *testing.T) {
	g, seen := vendorServer(t, http.StatusOK, `{"id":"s1","state":"active"}`)
	svc := NewSubscriptionService(g, nil)

	_, err := svc.Resume(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "{}", seen.body)

	_, err = svc.Reactivate(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "{}", seen.body)
}

func TestSubscriptions_CancelRejectsUnknownTimeframe(t *testing.T) {
	fake := &fakeGateway{}
	_, err := NewSubscriptionService(fake, nil).Cancel(context.Background(), "s1", CancelSubscription{Timeframe: "tomorrow"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubscriptions_PreviewRenewalReturnsRawFields(t *testing.T) {
	g, _ := vendorServer(t, http.StatusOK, `{"object":"invoice_collection","charge_invoice":{"total":12.5}}`)
	preview, err := NewSubscriptionService(g, nil).PreviewRenewal(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "invoice_collection", preview["object"])
	assert.Contains(t, preview, "charge_invoice")
}
