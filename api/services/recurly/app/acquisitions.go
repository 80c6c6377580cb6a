package app

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

type AcquisitionChannel string

const (
	ChannelAdvertising      AcquisitionChannel = "advertising"
	ChannelBlog             AcquisitionChannel = "blog"
	ChannelDirectTraffic    AcquisitionChannel = "direct_traffic"
	ChannelEmail            AcquisitionChannel = "email"
	ChannelEvents           AcquisitionChannel = "events"
	ChannelMarketingContent AcquisitionChannel = "marketing_content"
	ChannelOrganicSearch    AcquisitionChannel = "organic_search"
	ChannelOther            AcquisitionChannel = "other"
	ChannelOutboundSales    AcquisitionChannel = "outbound_sales"
	ChannelPaidSearch       AcquisitionChannel = "paid_search"
	ChannelPublicRelations  AcquisitionChannel = "public_relations"
	ChannelReferral         AcquisitionChannel = "referral"
	ChannelSocialMedia      AcquisitionChannel = "social_media"
)

type AccountAcquisition struct {
	ID         string             `json:"id"`
	Object     string             `json:"object,omitempty"`
	Account    *AccountMini       `json:"account,omitempty"`
	Cost       *CurrencyAmount    `json:"cost,omitempty"`
	Channel    AcquisitionChannel `json:"channel,omitempty"`
	Subchannel string             `json:"subchannel,omitempty"`
	Campaign   string             `json:"campaign,omitempty"`
	AcquiredAt *time.Time         `json:"acquired_at,omitempty"`
	CreatedAt  *time.Time         `json:"created_at,omitempty"`
	UpdatedAt  *time.Time         `json:"updated_at,omitempty"`
}

type AcquisitionCost struct {
	Currency string           `json:"currency,omitempty" validate:"omitempty,len=3"`
	Amount   *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,min=0"`
}

type UpdateAccountAcquisition struct {
	Cost       *AcquisitionCost   `json:"cost,omitempty"`
	Channel    AcquisitionChannel `json:"channel,omitempty" validate:"omitempty,oneof=advertising blog direct_traffic email events marketing_content organic_search other outbound_sales paid_search public_relations referral social_media"`
	Subchannel string             `json:"subchannel,omitempty"`
	Campaign   string             `json:"campaign,omitempty"`
	AcquiredAt *time.Time         `json:"acquired_at,omitempty"`
}

// AcquisitionService reads and edits how accounts were acquired.
type AcquisitionService interface {
	List(ctx context.Context, params ListParams, opts ...gw.CallOption) (List[AccountAcquisition], error)
	Get(ctx context.Context, accountID string, opts ...gw.CallOption) (AccountAcquisition, error)
	Update(ctx context.Context, accountID string, body UpdateAccountAcquisition, opts ...gw.CallOption) (AccountAcquisition, error)
	Remove(ctx context.Context, accountID string, opts ...gw.CallOption) error
}

type acquisitionService struct{ base }

func NewAcquisitionService(g gw.Gateway, log *zap.Logger) AcquisitionService {
	return acquisitionService{newBase(g, log)}
}

func (s acquisitionService) List(ctx context.Context, params ListParams, opts ...gw.CallOption) (List[AccountAcquisition], error) {
	return get[List[AccountAcquisition]](ctx, s.base, "List Account Acquisition", "/acquisitions", params, opts)
}

func (s acquisitionService) Get(ctx context.Context, accountID string, opts ...gw.CallOption) (AccountAcquisition, error) {
	const op = "Get Account Acquisition"
	path, err := resourcePath(op, "/accounts/%s/acquisition", accountID)
	if err != nil {
		return AccountAcquisition{}, err
	}
	return get[AccountAcquisition](ctx, s.base, op, path, nil, opts)
}

func (s acquisitionService) Update(ctx context.Context, accountID string, body UpdateAccountAcquisition, opts ...gw.CallOption) (AccountAcquisition, error) {
	const op = "Update Account Acquisition"
	path, err := resourcePath(op, "/accounts/%s/acquisition", accountID)
	if err != nil {
		return AccountAcquisition{}, err
	}
	return call[AccountAcquisition](ctx, s.base, http.MethodPut, op, path, nil, body, opts)
}

func (s acquisitionService) Remove(ctx context.Context, accountID string, opts ...gw.CallOption) error {
	const op = "Remove Account Acquisition"
	path, err := resourcePath(op, "/accounts/%s/acquisition", accountID)
	if err != nil {
		return err
	}
	return callNoContent(ctx, s.base, http.MethodDelete, op, path, opts)
}
