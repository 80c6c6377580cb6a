package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

type MeasuredUnit struct {
	ID          string        `json:"id"`
	Object      string        `json:"object,omitempty"`
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name"`
	State       ResourceState `json:"state,omitempty"`
	Description string        `json:"description,omitempty"`
	Timestamps
}

type ListMeasuredUnitsParams struct {
	ListParams
	State ResourceState `query:"state,omitempty" validate:"omitempty,oneof=active inactive"`
}

type CreateMeasuredUnit struct {
	Name        string `json:"name" validate:"required,max=255"`
	DisplayName string `json:"display_name" validate:"required,max=50,display_name"`
	Description string `json:"description,omitempty"`
}

type UpdateMeasuredUnit struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=255"`
	DisplayName string `json:"display_name,omitempty" validate:"omitempty,max=50,display_name"`
	Description string `json:"description,omitempty"`
}

// MeasuredUnitService manages the units usage add-ons are metered in.
// unitID accepts an id or MeasuredUnitName(name).
type MeasuredUnitService interface {
	List(ctx context.Context, params ListMeasuredUnitsParams, opts ...gw.CallOption) (List[MeasuredUnit], error)
	Create(ctx context.Context, body CreateMeasuredUnit, opts ...gw.CallOption) (MeasuredUnit, error)
	Get(ctx context.Context, unitID string, opts ...gw.CallOption) (MeasuredUnit, error)
	Update(ctx context.Context, unitID string, body UpdateMeasuredUnit, opts ...gw.CallOption) (MeasuredUnit, error)
	Remove(ctx context.Context, unitID string, opts ...gw.CallOption) (MeasuredUnit, error)
}

type measuredUnitService struct{ base }

func NewMeasuredUnitService(g gw.Gateway, log *zap.Logger) MeasuredUnitService {
	return measuredUnitService{newBase(g, log)}
}

func (s measuredUnitService) List(ctx context.Context, params ListMeasuredUnitsParams, opts ...gw.CallOption) (List[MeasuredUnit], error) {
	return get[List[MeasuredUnit]](ctx, s.base, "List Measured Units", "/measured_units", params, opts)
}

func (s measuredUnitService) Create(ctx context.Context, body CreateMeasuredUnit, opts ...gw.CallOption) (MeasuredUnit, error) {
	return call[MeasuredUnit](ctx, s.base, http.MethodPost, "Create Measured Unit", "/measured_units", nil, body, opts)
}

func (s measuredUnitService) Get(ctx context.Context, unitID string, opts ...gw.CallOption) (MeasuredUnit, error) {
	const op = "Get Measured Unit"
	path, err := resourcePath(op, "/measured_units/%s", unitID)
	if err != nil {
		return MeasuredUnit{}, err
	}
	return get[MeasuredUnit](ctx, s.base, op, path, nil, opts)
}

func (s measuredUnitService) Update(ctx context.Context, unitID string, body UpdateMeasuredUnit, opts ...gw.CallOption) (MeasuredUnit, error) {
	const op = "Update Measured Unit"
	path, err := resourcePath(op, "/measured_units/%s", unitID)
	if err != nil {
		return MeasuredUnit{}, err
	}
	return call[MeasuredUnit](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s measuredUnitService) Remove(ctx context.Context, unitID string, opts ...gw.CallOption) (MeasuredUnit, error) {
	const op = "Remove Measured Unit"
	path, err := resourcePath(op, "/measured_units/%s", unitID)
	if err != nil {
		return MeasuredUnit{}, err
	}
	return call[MeasuredUnit](ctx, s.base, http.MethodDelete, op, path, nil, nil, opts)
}
