package app

import (
	"context"

	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

type PriceSegment struct {
	ID     string `json:"id"`
	Object string `json:"object,omitempty"`
	Code   string `json:"code,omitempty"`
}

// ListPriceSegmentsParams is narrower than ListParams: the endpoint takes no
// sort or time window.
type ListPriceSegmentsParams struct {
	IDs   []string  `query:"ids"`
	Limit int       `query:"limit,omitempty" validate:"omitempty,min=1,max=200"`
	Order SortOrder `query:"order,omitempty" validate:"omitempty,oneof=asc desc"`
}

// PriceSegmentService reads /price_segments. segmentID accepts an id or a
// "code-" prefixed code.
type PriceSegmentService interface {
	List(ctx context.Context, params ListPriceSegmentsParams, opts ...gw.CallOption) (List[PriceSegment], error)
	Get(ctx context.Context, segmentID string, opts ...gw.CallOption) (PriceSegment, error)
}

type priceSegmentService struct{ base }

func NewPriceSegmentService(g gw.Gateway, log *zap.Logger) PriceSegmentService {
	return priceSegmentService{newBase(g, log)}
}

func (s priceSegmentService) List(ctx context.Context, params ListPriceSegmentsParams, opts ...gw.CallOption) (List[PriceSegment], error) {
	return get[List[PriceSegment]](ctx, s.base, "List Price Segments", "/price_segments", params, opts)
}

func (s priceSegmentService) Get(ctx context.Context, segmentID string, opts ...gw.CallOption) (PriceSegment, error) {
	const op = "Get Price Segment"
	path, err := resourcePath(op, "/price_segments/%s", segmentID)
	if err != nil {
		return PriceSegment{}, err
	}
	return get[PriceSegment](ctx, s.base, op, path, nil, opts)
}
