package router

import (
	"context"
	"net/http"

	"github.com/tbeaudouin05/recurly-trellai/api/services/recurly/app"
)

func (rt *routes) register() {
	rt.accounts()
	rt.billing()
	rt.subscriptions()
	rt.plans()
	rt.items()
	rt.coupons()
	rt.measuredUnits()
	rt.priceSegments()
}

func (rt *routes) accounts() {
	rt.handle(http.MethodGet, "/v3/accounts", func(ctx context.Context, c *app.Client, q request) (any, error) {
		lp, err := listParams(q.r.URL.Query())
		if err != nil {
			return nil, err
		}
		params := app.ListAccountsParams{ListParams: lp, Email: q.r.URL.Query().Get("email"), PastDue: q.r.URL.Query().Get("past_due")}
		if params.Subscriber, err = boolParam(q.r.URL.Query(), "subscriber"); err != nil {
			return nil, err
		}
		return c.Accounts.List(ctx, params, q.opts...)
	})
	rt.handleStatus(http.MethodPost, "/v3/accounts", http.StatusCreated, func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.CreateAccount](q)
		if err != nil {
			return nil, err
		}
		return c.Accounts.Create(ctx, body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/accounts/{account_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Accounts.Get(ctx, q.param("account_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/accounts/{account_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.UpdateAccount](q)
		if err != nil {
			return nil, err
		}
		return c.Accounts.Update(ctx, q.param("account_id"), body, q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/accounts/{account_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Accounts.Deactivate(ctx, q.param("account_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/accounts/{account_id}/reactivate", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Accounts.Reactivate(ctx, q.param("account_id"), q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/accounts/{account_id}/balance", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Accounts.Balance(ctx, q.param("account_id"), q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/accounts/{account_id}/subscriptions", func(ctx context.Context, c *app.Client, q request) (any, error) {
		params, err := subscriptionParams(q)
		if err != nil {
			return nil, err
		}
		return c.Subscriptions.ListForAccount(ctx, q.param("account_id"), params, q.opts...)
	})
}

func (rt *routes) billing() {
	rt.handle(http.MethodGet, "/v3/accounts/{account_id}/billing_info", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.BillingInfo.Get(ctx, q.param("account_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/accounts/{account_id}/billing_info", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.BillingInfoRequest](q)
		if err != nil {
			return nil, err
		}
		return c.BillingInfo.Update(ctx, q.param("account_id"), body, q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/accounts/{account_id}/billing_info", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return nil, c.BillingInfo.Remove(ctx, q.param("account_id"), q.opts...)
	})
	rt.handle(http.MethodPost, "/v3/accounts/{account_id}/billing_info/verify", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.VerifyBillingInfo](q)
		if err != nil {
			return nil, err
		}
		return c.BillingInfo.Verify(ctx, q.param("account_id"), body, q.opts...)
	})
}

func subscriptionParams(q request) (app.ListSubscriptionsParams, error) {
	lp, err := listParams(q.r.URL.Query())
	if err != nil {
		return app.ListSubscriptionsParams{}, err
	}
	return app.ListSubscriptionsParams{
		ListParams: lp,
		State:      app.SubscriptionState(q.r.URL.Query().Get("state")),
	}, nil
}

func (rt *routes) subscriptions() {
	rt.handle(http.MethodGet, "/v3/subscriptions", func(ctx context.Context, c *app.Client, q request) (any, error) {
		params, err := subscriptionParams(q)
		if err != nil {
			return nil, err
		}
		return c.Subscriptions.List(ctx, params, q.opts...)
	})
	rt.handleStatus(http.MethodPost, "/v3/subscriptions", http.StatusCreated, func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.CreateSubscription](q)
		if err != nil {
			return nil, err
		}
		return c.Subscriptions.Create(ctx, body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/subscriptions/{subscription_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Subscriptions.Get(ctx, q.param("subscription_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/subscriptions/{subscription_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.UpdateSubscription](q)
		if err != nil {
			return nil, err
		}
		return c.Subscriptions.Update(ctx, q.param("subscription_id"), body, q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/subscriptions/{subscription_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		params := app.TerminateParams{Refund: app.RefundType(q.r.URL.Query().Get("refund"))}
		var err error
		if params.Charge, err = boolParam(q.r.URL.Query(), "charge"); err != nil {
			return nil, err
		}
		return c.Subscriptions.Terminate(ctx, q.param("subscription_id"), params, q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/subscriptions/{subscription_id}/cancel", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.CancelSubscription](q)
		if err != nil {
			return nil, err
		}
		return c.Subscriptions.Cancel(ctx, q.param("subscription_id"), body, q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/subscriptions/{subscription_id}/reactivate", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Subscriptions.Reactivate(ctx, q.param("subscription_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/subscriptions/{subscription_id}/pause", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.PauseSubscription](q)
		if err != nil {
			return nil, err
		}
		return c.Subscriptions.Pause(ctx, q.param("subscription_id"), body, q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/subscriptions/{subscription_id}/resume", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Subscriptions.Resume(ctx, q.param("subscription_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/subscriptions/{subscription_id}/convert_trial", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.ConvertTrial](q)
		if err != nil {
			return nil, err
		}
		return c.Subscriptions.ConvertTrial(ctx, q.param("subscription_id"), body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/subscriptions/{subscription_id}/preview_renewal", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Subscriptions.PreviewRenewal(ctx, q.param("subscription_id"), q.opts...)
	})
}

func (rt *routes) plans() {
	rt.handle(http.MethodGet, "/v3/plans", func(ctx context.Context, c *app.Client, q request) (any, error) {
		lp, err := listParams(q.r.URL.Query())
		if err != nil {
			return nil, err
		}
		state := app.ResourceState(q.r.URL.Query().Get("state"))
		return c.Plans.List(ctx, app.ListPlansParams{ListParams: lp, State: state}, q.opts...)
	})
	rt.handleStatus(http.MethodPost, "/v3/plans", http.StatusCreated, func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.CreatePlan](q)
		if err != nil {
			return nil, err
		}
		return c.Plans.Create(ctx, body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/plans/{plan_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Plans.Get(ctx, q.param("plan_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/plans/{plan_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.UpdatePlan](q)
		if err != nil {
			return nil, err
		}
		return c.Plans.Update(ctx, q.param("plan_id"), body, q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/plans/{plan_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Plans.Remove(ctx, q.param("plan_id"), q.opts...)
	})

	rt.handle(http.MethodGet, "/v3/plans/{plan_id}/add_ons", func(ctx context.Context, c *app.Client, q request) (any, error) {
		lp, err := listParams(q.r.URL.Query())
		if err != nil {
			return nil, err
		}
		state := app.ResourceState(q.r.URL.Query().Get("state"))
		return c.AddOns.List(ctx, q.param("plan_id"), app.ListAddOnsParams{ListParams: lp, State: state}, q.opts...)
	})
	rt.handleStatus(http.MethodPost, "/v3/plans/{plan_id}/add_ons", http.StatusCreated, func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.CreateAddOn](q)
		if err != nil {
			return nil, err
		}
		return c.AddOns.Create(ctx, q.param("plan_id"), body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/plans/{plan_id}/add_ons/{add_on_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.AddOns.Get(ctx, q.param("plan_id"), q.param("add_on_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/plans/{plan_id}/add_ons/{add_on_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.UpdateAddOn](q)
		if err != nil {
			return nil, err
		}
		return c.AddOns.Update(ctx, q.param("plan_id"), q.param("add_on_id"), body, q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/plans/{plan_id}/add_ons/{add_on_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.AddOns.Remove(ctx, q.param("plan_id"), q.param("add_on_id"), q.opts...)
	})
}

func (rt *routes) items() {
	rt.handle(http.MethodGet, "/v3/items", func(ctx context.Context, c *app.Client, q request) (any, error) {
		lp, err := listParams(q.r.URL.Query())
		if err != nil {
			return nil, err
		}
		state := app.ResourceState(q.r.URL.Query().Get("state"))
		return c.Items.List(ctx, app.ListItemsParams{ListParams: lp, State: state}, q.opts...)
	})
	rt.handleStatus(http.MethodPost, "/v3/items", http.StatusCreated, func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.CreateItem](q)
		if err != nil {
			return nil, err
		}
		return c.Items.Create(ctx, body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/items/{item_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Items.Get(ctx, q.param("item_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/items/{item_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.UpdateItem](q)
		if err != nil {
			return nil, err
		}
		return c.Items.Update(ctx, q.param("item_id"), body, q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/items/{item_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Items.Deactivate(ctx, q.param("item_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/items/{item_id}/reactivate", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Items.Reactivate(ctx, q.param("item_id"), q.opts...)
	})
}

func (rt *routes) coupons() {
	rt.handle(http.MethodGet, "/v3/coupons", func(ctx context.Context, c *app.Client, q request) (any, error) {
		lp, err := listParams(q.r.URL.Query())
		if err != nil {
			return nil, err
		}
		return c.Coupons.List(ctx, app.ListCouponsParams{ListParams: lp}, q.opts...)
	})
	rt.handleStatus(http.MethodPost, "/v3/coupons", http.StatusCreated, func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.CreateCoupon](q)
		if err != nil {
			return nil, err
		}
		return c.Coupons.Create(ctx, body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/coupons/{coupon_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Coupons.Get(ctx, q.param("coupon_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/coupons/{coupon_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.UpdateCoupon](q)
		if err != nil {
			return nil, err
		}
		return c.Coupons.Update(ctx, q.param("coupon_id"), body, q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/coupons/{coupon_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.Coupons.Deactivate(ctx, q.param("coupon_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/coupons/{coupon_id}/restore", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.UpdateCoupon](q)
		if err != nil {
			return nil, err
		}
		return c.Coupons.Restore(ctx, q.param("coupon_id"), body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/coupons/{coupon_id}/unique_coupon_codes", func(ctx context.Context, c *app.Client, q request) (any, error) {
		lp, err := listParams(q.r.URL.Query())
		if err != nil {
			return nil, err
		}
		params := app.ListUniqueCouponCodesParams{ListParams: lp, Redeemed: q.r.URL.Query().Get("redeemed")}
		return c.UniqueCouponCodes.List(ctx, q.param("coupon_id"), params, q.opts...)
	})
	rt.handleStatus(http.MethodPost, "/v3/coupons/{coupon_id}/generate", http.StatusCreated, func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.GenerateUniqueCouponCodes](q)
		if err != nil {
			return nil, err
		}
		return c.UniqueCouponCodes.Generate(ctx, q.param("coupon_id"), body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/unique_coupon_codes/{unique_coupon_code_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.UniqueCouponCodes.Get(ctx, q.param("unique_coupon_code_id"), q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/unique_coupon_codes/{unique_coupon_code_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.UniqueCouponCodes.Deactivate(ctx, q.param("unique_coupon_code_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/unique_coupon_codes/{unique_coupon_code_id}/restore", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.UniqueCouponCodes.Reactivate(ctx, q.param("unique_coupon_code_id"), q.opts...)
	})
}

func (rt *routes) measuredUnits() {
	rt.handle(http.MethodGet, "/v3/measured_units", func(ctx context.Context, c *app.Client, q request) (any, error) {
		lp, err := listParams(q.r.URL.Query())
		if err != nil {
			return nil, err
		}
		state := app.ResourceState(q.r.URL.Query().Get("state"))
		return c.MeasuredUnits.List(ctx, app.ListMeasuredUnitsParams{ListParams: lp, State: state}, q.opts...)
	})
	rt.handleStatus(http.MethodPost, "/v3/measured_units", http.StatusCreated, func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.CreateMeasuredUnit](q)
		if err != nil {
			return nil, err
		}
		return c.MeasuredUnits.Create(ctx, body, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/measured_units/{measured_unit_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.MeasuredUnits.Get(ctx, q.param("measured_unit_id"), q.opts...)
	})
	rt.handle(http.MethodPut, "/v3/measured_units/{measured_unit_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		body, err := decode[app.UpdateMeasuredUnit](q)
		if err != nil {
			return nil, err
		}
		return c.MeasuredUnits.Update(ctx, q.param("measured_unit_id"), body, q.opts...)
	})
	rt.handle(http.MethodDelete, "/v3/measured_units/{measured_unit_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.MeasuredUnits.Remove(ctx, q.param("measured_unit_id"), q.opts...)
	})
}

func (rt *routes) priceSegments() {
	rt.handle(http.MethodGet, "/v3/price_segments", func(ctx context.Context, c *app.Client, q request) (any, error) {
		query := q.r.URL.Query()
		limit, err := intParam(query, "limit")
		if err != nil {
			return nil, err
		}
		params := app.ListPriceSegmentsParams{IDs: splitIDs(query.Get("ids")), Limit: limit, Order: app.SortOrder(query.Get("order"))}
		return c.PriceSegments.List(ctx, params, q.opts...)
	})
	rt.handle(http.MethodGet, "/v3/price_segments/{price_segment_id}", func(ctx context.Context, c *app.Client, q request) (any, error) {
		return c.PriceSegments.Get(ctx, q.param("price_segment_id"), q.opts...)
	})
}
