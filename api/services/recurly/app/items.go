package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// ItemService manages the catalog at /items. itemID accepts an id or ItemCode(code).
type ItemService interface {
	List(ctx context.Context, params ListItemsParams, opts ...gw.CallOption) (List[Item], error)
	Create(ctx context.Context, body CreateItem, opts ...gw.CallOption) (Item, error)
	Get(ctx context.Context, itemID string, opts ...gw.CallOption) (Item, error)
	Update(ctx context.Context, itemID string, body UpdateItem, opts ...gw.CallOption) (Item, error)
	Deactivate(ctx context.Context, itemID string, opts ...gw.CallOption) (Item, error)
	Reactivate(ctx context.Context, itemID string, opts ...gw.CallOption) (Item, error)
}

type itemService struct{ base }

func NewItemService(g gw.Gateway, log *zap.Logger) ItemService {
	return itemService{newBase(g, log)}
}

func (s itemService) List(ctx context.Context, params ListItemsParams, opts ...gw.CallOption) (List[Item], error) {
	return get[List[Item]](ctx, s.base, "List Items", "/items", params, opts)
}

func (s itemService) Create(ctx context.Context, body CreateItem, opts ...gw.CallOption) (Item, error) {
	return call[Item](ctx, s.base, http.MethodPost, "Create Item", "/items", nil, body, opts)
}

func (s itemService) Get(ctx context.Context, itemID string, opts ...gw.CallOption) (Item, error) {
	const op = "Get Item"
	path, err := resourcePath(op, "/items/%s", itemID)
	if err != nil {
		return Item{}, err
	}
	return get[Item](ctx, s.base, op, path, nil, opts)
}

func (s itemService) Update(ctx context.Context, itemID string, body UpdateItem, opts ...gw.CallOption) (Item, error) {
	const op = "Update Item"
	path, err := resourcePath(op, "/items/%s", itemID)
	if err != nil {
		return Item{}, err
	}
	return call[Item](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s itemService) Deactivate(ctx context.Context, itemID string, opts ...gw.CallOption) (Item, error) {
	const op = "Deactivate Item"
	path, err := resourcePath(op, "/items/%s", itemID)
	if err != nil {
		return Item{}, err
	}
	return call[Item](ctx, s.base, http.MethodDelete, op, path, nil, nil, opts)
}

func (s itemService) Reactivate(ctx context.Context, itemID string, opts ...gw.CallOption) (Item, error) {
	const op = "Reactivate Item"
	path, err := resourcePath(op, "/items/%s/reactivate", itemID)
	if err != nil {
		return Item{}, err
	}
	return call[Item](ctx, s.base, http.MethodPut, op, path, nil, nil, opts)
}
