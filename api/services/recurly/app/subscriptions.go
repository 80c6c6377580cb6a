package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// SubscriptionService drives the subscription lifecycle. State transitions are
// decided by the vendor; this service only issues the calls.
type SubscriptionService interface {
	List(ctx context.Context, params ListSubscriptionsParams, opts ...gw.CallOption) (List[Subscription], error)
	ListForAccount(ctx context.Context, accountID string, params ListSubscriptionsParams, opts ...gw.CallOption) (List[Subscription], error)
	Create(ctx context.Context, body CreateSubscription, opts ...gw.CallOption) (Subscription, error)
	Get(ctx context.Context, subscriptionID string, opts ...gw.CallOption) (Subscription, error)
	Update(ctx context.Context, subscriptionID string, body UpdateSubscription, opts ...gw.CallOption) (Subscription, error)
	Terminate(ctx context.Context, subscriptionID string, params TerminateParams, opts ...gw.CallOption) (Subscription, error)
	Cancel(ctx context.Context, subscriptionID string, body CancelSubscription, opts ...gw.CallOption) (Subscription, error)
	Reactivate(ctx context.Context, subscriptionID string, opts ...gw.CallOption) (Subscription, error)
	Pause(ctx context.Context, subscriptionID string, body PauseSubscription, opts ...gw.CallOption) (Subscription, error)
	Resume(ctx context.Context, subscriptionID string, opts ...gw.CallOption) (Subscription, error)
	ConvertTrial(ctx context.Context, subscriptionID string, body ConvertTrial, opts ...gw.CallOption) (Subscription, error)
	// PreviewRenewal returns the renewal invoice collection as raw JSON fields.
	PreviewRenewal(ctx context.Context, subscriptionID string, opts ...gw.CallOption) (map[string]any, error)
}

type subscriptionService struct{ base }

func NewSubscriptionService(g gw.Gateway, log *zap.Logger) SubscriptionService {
	return subscriptionService{newBase(g, log)}
}

func (s subscriptionService) List(ctx context.Context, params ListSubscriptionsParams, opts ...gw.CallOption) (List[Subscription], error) {
	return get[List[Subscription]](ctx, s.base, "List subscriptions", "/subscriptions", params, opts)
}

func (s subscriptionService) ListForAccount(ctx context.Context, accountID string, params ListSubscriptionsParams, opts ...gw.CallOption) (List[Subscription], error) {
	const op = "List account subscriptions"
	path, err := resourcePath(op, "/accounts/%s/subscriptions", accountID)
	if err != nil {
		return List[Subscription]{}, err
	}
	return get[List[Subscription]](ctx, s.base, op, path, params, opts)
}

func (s subscriptionService) Create(ctx context.Context, body CreateSubscription, opts ...gw.CallOption) (Subscription, error) {
	return call[Subscription](ctx, s.base, http.MethodPost, "Create subscription", "/subscriptions", nil, body, opts)
}

func (s subscriptionService) Get(ctx context.Context, subscriptionID string, opts ...gw.CallOption) (Subscription, error) {
	const op = "Get subscription"
	path, err := resourcePath(op, "/subscriptions/%s", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	return get[Subscription](ctx, s.base, op, path, nil, opts)
}

func (s subscriptionService) Update(ctx context.Context, subscriptionID string, body UpdateSubscription, opts ...gw.CallOption) (Subscription, error) {
	const op = "Update subscription"
	path, err := resourcePath(op, "/subscriptions/%s", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	return call[Subscription](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s subscriptionService) Terminate(ctx context.Context, subscriptionID string, params TerminateParams, opts ...gw.CallOption) (Subscription, error) {
	const op = "Terminate subscription"
	path, err := resourcePath(op, "/subscriptions/%s", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	s.log.Info("terminating subscription", zap.String("subscription_id", subscriptionID), zap.String("refund", string(params.Refund)))
	return call[Subscription](ctx, s.base, http.MethodDelete, op, path, params, nil, opts)
}

func (s subscriptionService) Cancel(ctx context.Context, subscriptionID string, body CancelSubscription, opts ...gw.CallOption) (Subscription, error) {
	const op = "Cancel subscription"
	path, err := resourcePath(op, "/subscriptions/%s/cancel", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	return call[Subscription](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s subscriptionService) Reactivate(ctx context.Context, subscriptionID string, opts ...gw.CallOption) (Subscription, error) {
	const op = "Reactivate subscription"
	path, err := resourcePath(op, "/subscriptions/%s/reactivate", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	return call[Subscription](ctx, s.base, http.MethodPut, op, path, nil, emptyBody, opts)
}

func (s subscriptionService) Pause(ctx context.Context, subscriptionID string, body PauseSubscription, opts ...gw.CallOption) (Subscription, error) {
	const op = "Pause subscription"
	path, err := resourcePath(op, "/subscriptions/%s/pause", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	s.log.Info("pausing subscription", zap.String("subscription_id", subscriptionID), zap.Int("remaining_pause_cycles", body.RemainingPauseCycles))
	return call[Subscription](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s subscriptionService) Resume(ctx context.Context, subscriptionID string, opts ...gw.CallOption) (Subscription, error) {
	const op = "Resume subscription"
	path, err := resourcePath(op, "/subscriptions/%s/resume", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	return call[Subscription](ctx, s.base, http.MethodPut, op, path, nil, emptyBody, opts)
}

func (s subscriptionService) ConvertTrial(ctx context.Context, subscriptionID string, body ConvertTrial, opts ...gw.CallOption) (Subscription, error) {
	const op = "Convert trial"
	path, err := resourcePath(op, "/subscriptions/%s/convert_trial", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	return call[Subscription](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s subscriptionService) PreviewRenewal(ctx context.Context, subscriptionID string, opts ...gw.CallOption) (map[string]any, error) {
	const op = "Preview renewal"
	path, err := resourcePath(op, "/subscriptions/%s/preview_renewal", subscriptionID)
	if err != nil {
		return nil, err
	}
	return get[map[string]any](ctx, s.base, op, path, nil, opts)
}
