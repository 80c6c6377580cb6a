package app

import (
	"go.uber.org/zap"

	gw "github.com/tbeaudouin05/recurly-trellai/api/services/recurly/gateway"
)

// Client groups every resource service over one Gateway.
type Client struct {
	Accounts          AccountService
	Acquisitions      AcquisitionService
	Notes             NoteService
	CouponRedemptions CouponRedemptionService
	BillingInfo       BillingInfoService
	BillingInfos      BillingInfosService
	Subscriptions     SubscriptionService
	Plans             PlanService
	AddOns            AddOnService
	Items             ItemService
	Coupons           CouponService
	UniqueCouponCodes UniqueCouponCodeService
	MeasuredUnits     MeasuredUnitService
	PriceSegments     PriceSegmentService
}

func NewClient(g gw.Gateway, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		Accounts:          NewAccountService(g, log),
		Acquisitions:      NewAcquisitionService(g, log),
		Notes:             NewNoteService(g, log),
		CouponRedemptions: NewCouponRedemptionService(g, log),
		BillingInfo:       NewBillingInfoService(g, log),
		BillingInfos:      NewBillingInfosService(g, log),
		Subscriptions:     NewSubscriptionService(g, log),
		Plans:             NewPlanService(g, log),
		AddOns:            NewAddOnService(g, log),
		Items:             NewItemService(g, log),
		Coupons:           NewCouponService(g, log),
		UniqueCouponCodes: NewUniqueCouponCodeService(g, log),
		MeasuredUnits:     NewMeasuredUnitService(g, log),
		PriceSegments:     NewPriceSegmentService(g, log),
	}
}
