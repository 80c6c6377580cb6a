package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// AddOnService manages the add-ons of a plan.
type AddOnService interface {
	List(ctx context.Context, planID string, params ListAddOnsParams, opts ...gw.CallOption) (List[AddOn], error)
	Create(ctx context.Context, planID string, body CreateAddOn, opts ...gw.CallOption) (AddOn, error)
	Get(ctx context.Context, planID, addOnID string, opts ...gw.CallOption) (AddOn, error)
	Update(ctx context.Context, planID, addOnID string, body UpdateAddOn, opts ...gw.CallOption) (AddOn, error)
	Remove(ctx context.Context, planID, addOnID string, opts ...gw.CallOption) (AddOn, error)
}

type addOnService struct{ base }

func NewAddOnService(g gw.Gateway, log *zap.Logger) AddOnService {
	return addOnService{newBase(g, log)}
}

func (s addOnService) List(ctx context.Context, planID string, params ListAddOnsParams, opts ...gw.CallOption) (List[AddOn], error) {
	const op = "List Plan Add-ons"
	path, err := resourcePath(op, "/plans/%s/add_ons", planID)
	if err != nil {
		return List[AddOn]{}, err
	}
	s.log.Info("listing add-ons for plan", zap.String("plan_id", planID))
	return get[List[AddOn]](ctx, s.base, op, path, params, opts)
}

func (s addOnService) Create(ctx context.Context, planID string, body CreateAddOn, opts ...gw.CallOption) (AddOn, error) {
	const op = "Create Plan Add-on"
	path, err := resourcePath(op, "/plans/%s/add_ons", planID)
	if err != nil {
		return AddOn{}, err
	}
	return call[AddOn](ctx, s.base, http.MethodPost, op, path, nil, body, opts)
}

func (s addOnService) Get(ctx context.Context, planID, addOnID string, opts ...gw.CallOption) (AddOn, error) {
	const op = "Get Plan Add-on"
	path, err := resourcePath(op, "/plans/%s/add_ons/%s", planID, addOnID)
	if err != nil {
		return AddOn{}, err
	}
	return get[AddOn](ctx, s.base, op, path, nil, opts)
}

func (s addOnService) Update(ctx context.Context, planID, addOnID string, body UpdateAddOn, opts ...gw.CallOption) (AddOn, error) {
	const op = "Update Plan Add-on"
	path, err := resourcePath(op, "/plans/%s/add_ons/%s", planID, addOnID)
	if err != nil {
		return AddOn{}, err
	}
	return call[AddOn](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s addOnService) Remove(ctx context.Context, planID, addOnID string, opts ...gw.CallOption) (AddOn, error) {
	const op = "Remove Plan Add-on"
	path, err := resourcePath(op, "/plans/%s/add_ons/%s", planID, addOnID)
	if err != nil {
		return AddOn{}, err
	}
	return call[AddOn](ctx, s.base, http.MethodDelete, op, path, nil, nil, opts)
}
