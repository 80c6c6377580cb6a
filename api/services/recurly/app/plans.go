package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// PlanService manages /plans. planID accepts an id or PlanCode(code).
type PlanService interface {
	List(ctx context.Context, params ListPlansParams, opts ...gw.CallOption) (List[Plan], error)
	Create(ctx context.Context, body CreatePlan, opts ...gw.CallOption) (Plan, error)
	Get(ctx context.Context, planID string, opts ...gw.CallOption) (Plan, error)
	Update(ctx context.Context, planID string, body UpdatePlan, opts ...gw.CallOption) (Plan, error)
	// Remove deactivates the plan and returns it in its inactive state.
	Remove(ctx context.Context, planID string, opts ...gw.CallOption) (Plan, error)
}

type planService struct{ base }

func NewPlanService(g gw.Gateway, log *zap.Logger) PlanService {
	return planService{newBase(g, log)}
}

func (s planService) List(ctx context.Context, params ListPlansParams, opts ...gw.CallOption) (List[Plan], error) {
	return get[List[Plan]](ctx, s.base, "List Plans", "/plans", params, opts)
}

func (s planService) Create(ctx context.Context, body CreatePlan, opts ...gw.CallOption) (Plan, error) {
	return call[Plan](ctx, s.base, http.MethodPost, "Create Plan", "/plans", nil, body, opts)
}

func (s planService) Get(ctx context.Context, planID string, opts ...gw.CallOption) (Plan, error) {
	const op = "Get Plan"
	path, err := resourcePath(op, "/plans/%s", planID)
	if err != nil {
		return Plan{}, err
	}
	return get[Plan](ctx, s.base, op, path, nil, opts)
}

func (s planService) Update(ctx context.Context, planID string, body UpdatePlan, opts ...gw.CallOption) (Plan, error) {
	const op = "Update Plan"
	path, err := resourcePath(op, "/plans/%s", planID)
	if err != nil {
		return Plan{}, err
	}
	return call[Plan](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s planService) Remove(ctx context.Context, planID string, opts ...gw.CallOption) (Plan, error) {
	const op = "Remove Plan"
	path, err := resourcePath(op, "/plans/%s", planID)
	if err != nil {
		return Plan{}, err
	}
	s.log.Info("removing plan", zap.String("plan_id", planID))
	return call[Plan](ctx, s.base, http.MethodDelete, op, path, nil, nil, opts)
}
