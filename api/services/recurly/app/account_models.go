package app

import "time"

type AccountState string

const (
	AccountActive     AccountState = "active"
	AccountClosed     AccountState = "closed"
	AccountSubscriber AccountState = "subscriber"
)

type BillTo string

const (
	BillToParent BillTo = "parent"
	BillToSelf   BillTo = "self"
)

// TransactionTypeMoto flags mail-order/telephone-order payments.
const TransactionTypeMoto = "moto"

type Account struct {
	ID                      string            `json:"id"`
	Object                  string            `json:"object,omitempty"`
	State                   AccountState      `json:"state,omitempty"`
	HostedLoginToken        string            `json:"hosted_login_token,omitempty"`
	ShippingAddresses       []ShippingAddress `json:"shipping_addresses,omitempty"`
	HasLiveSubscription     bool              `json:"has_live_subscription"`
	HasActiveSubscription   bool              `json:"has_active_subscription"`
	HasFutureSubscription   bool              `json:"has_future_subscription"`
	HasCanceledSubscription bool              `json:"has_canceled_subscription"`
	HasPausedSubscription   bool              `json:"has_paused_subscription"`
	HasPastDueInvoice       bool              `json:"has_past_due_invoice"`
	Timestamps
	Code                     string            `json:"code"`
	Username                 string            `json:"username,omitempty"`
	Email                    string            `json:"email,omitempty"`
	OverrideBusinessEntityID string            `json:"override_business_entity_id,omitempty"`
	PreferredLocale          string            `json:"preferred_locale,omitempty"`
	PreferredTimeZone        string            `json:"preferred_time_zone,omitempty"`
	CCEmails                 string            `json:"cc_emails,omitempty"`
	FirstName                string            `json:"first_name,omitempty"`
	LastName                 string            `json:"last_name,omitempty"`
	Company                  string            `json:"company,omitempty"`
	VATNumber                string            `json:"vat_number,omitempty"`
	TaxExempt                bool              `json:"tax_exempt"`
	ExemptionCertificate     string            `json:"exemption_certificate,omitempty"`
	ExternalAccounts         []ExternalAccount `json:"external_accounts,omitempty"`
	ParentAccountID          string            `json:"parent_account_id,omitempty"`
	BillTo                   BillTo            `json:"bill_to,omitempty"`
	DunningCampaignID        string            `json:"dunning_campaign_id,omitempty"`
	InvoiceTemplateID        string            `json:"invoice_template_id,omitempty"`
	Address                  *Address          `json:"address,omitempty"`
	BillingInfo              *BillingInfo      `json:"billing_info,omitempty"`
	CustomFields             []CustomField     `json:"custom_fields,omitempty"`
	EntityUseCode            string            `json:"entity_use_code,omitempty"`
}

type ShippingAddress struct {
	ID         string `json:"id,omitempty"`
	Object     string `json:"object,omitempty"`
	AccountID  string `json:"account_id,omitempty"`
	Nickname   string `json:"nickname,omitempty" validate:"omitempty,max=255"`
	FirstName  string `json:"first_name" validate:"required,max=255"`
	LastName   string `json:"last_name" validate:"required,max=255"`
	Company    string `json:"company,omitempty" validate:"omitempty,max=255"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email      string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	VATNumber  string `json:"vat_number,omitempty" validate:"omitempty,max=20"`
	Street1    string `json:"street1" validate:"required,max=255"`
	Street2    string `json:"street2,omitempty" validate:"omitempty,max=255"`
	City       string `json:"city" validate:"required,max=255"`
	Region     string `json:"region,omitempty" validate:"omitempty,max=255"`
	PostalCode string `json:"postal_code" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=50"`
	GeoCode    string `json:"geo_code,omitempty" validate:"omitempty,max=20"`
	Timestamps
}

type ExternalAccount struct {
	ExternalAccountCode    string `json:"external_account_code,omitempty"`
	ExternalConnectionType string `json:"external_connection_type,omitempty"`
}

type AccountBalance struct {
	Object   string           `json:"object,omitempty"`
	Account  AccountMini      `json:"account"`
	PastDue  bool             `json:"past_due"`
	Balances []CurrencyAmount `json:"balances"`
}

type ExternalSubscription struct {
	ID                       string                    `json:"id"`
	Object                   string                    `json:"object,omitempty"`
	Account                  *AccountMini              `json:"account,omitempty"`
	ExternalSubscriptionID   string                    `json:"external_subscription_id,omitempty"`
	ExternalProductReference *ExternalProductReference `json:"external_product_reference,omitempty"`
	LastPurchased            *time.Time                `json:"last_purchased,omitempty"`
	AutoRenew                bool                      `json:"auto_renew"`
	InGracePeriod            bool                      `json:"in_grace_period"`
	AppIdentifier            string                    `json:"app_identifier,omitempty"`
	Quantity                 int                       `json:"quantity"`
	ExternalID               string                    `json:"external_id,omitempty"`
	ActivatedAt              *time.Time                `json:"activated_at,omitempty"`
	CanceledAt               *time.Time                `json:"canceled_at,omitempty"`
	ExpiresAt                *time.Time                `json:"expires_at,omitempty"`
	TrialStartedAt           *time.Time                `json:"trial_started_at,omitempty"`
	TrialEndsAt              *time.Time                `json:"trial_ends_at,omitempty"`
	ImportedTrial            bool                      `json:"imported_trial"`
	State                    string                    `json:"state,omitempty"`
	Timestamps
}

type ExternalProductReference struct {
	ID                     string `json:"id"`
	Object                 string `json:"object,omitempty"`
	ReferenceCode          string `json:"reference_code,omitempty"`
	ExternalConnectionType string `json:"external_connection_type,omitempty"`
}

// ListAccountsParams filters GET /accounts and GET /accounts/{id}/accounts.
type ListAccountsParams struct {
	ListParams
	Email      string `query:"email,omitempty" validate:"omitempty,email"`
	Subscriber *bool  `query:"subscriber"`
	// PastDue only accepts "true".
	PastDue string `query:"past_due,omitempty" validate:"omitempty,eq=true"`
}

type ListExternalSubscriptionsParams struct {
	Sort SortField `query:"sort,omitempty" validate:"omitempty,oneof=created_at updated_at"`
}

// AccountFields are the attributes shared by account create and update.
type AccountFields struct {
	Username                 string              `json:"username,omitempty" validate:"omitempty,max=255"`
	Email                    string              `json:"email,omitempty" validate:"omitempty,email,max=255"`
	PreferredLocale          string              `json:"preferred_locale,omitempty" validate:"omitempty,oneof=da-DK de-CH de-DE en-AU en-CA en-GB en-IE en-NZ en-US es-ES es-MX es-US fi-FI fr-BE fr-CA fr-CH fr-FR hi-IN it-IT ja-JP ko-KR nl-BE nl-NL pl-PL pt-BR pt-PT ro-RO ru-RU sk-SK sv-SE tr-TR zh-CN"`
	PreferredTimeZone        string              `json:"preferred_time_zone,omitempty"`
	CCEmails                 string              `json:"cc_emails,omitempty" validate:"omitempty,max=255"`
	FirstName                string              `json:"first_name,omitempty" validate:"omitempty,max=255"`
	LastName                 string              `json:"last_name,omitempty" validate:"omitempty,max=255"`
	Company                  string              `json:"company,omitempty" validate:"omitempty,max=100"`
	VATNumber                string              `json:"vat_number,omitempty" validate:"omitempty,max=20"`
	TaxExempt                *bool               `json:"tax_exempt,omitempty"`
	ExemptionCertificate     string              `json:"exemption_certificate,omitempty" validate:"omitempty,max=30"`
	OverrideBusinessEntityID string              `json:"override_business_entity_id,omitempty"`
	ParentAccountCode        string              `json:"parent_account_code,omitempty" validate:"omitempty,max=50"`
	ParentAccountID          string              `json:"parent_account_id,omitempty" validate:"omitempty,max=13"`
	BillTo                   BillTo              `json:"bill_to,omitempty" validate:"omitempty,oneof=parent self"`
	TransactionType          string              `json:"transaction_type,omitempty" validate:"omitempty,eq=moto"`
	DunningCampaignID        string              `json:"dunning_campaign_id,omitempty"`
	InvoiceTemplateID        string              `json:"invoice_template_id,omitempty"`
	Address                  *Address            `json:"address,omitempty"`
	BillingInfo              *BillingInfoRequest `json:"billing_info,omitempty"`
	CustomFields             []CustomField       `json:"custom_fields,omitempty" validate:"omitempty,dive"`
	EntityUseCode            string              `json:"entity_use_code,omitempty"`
}

type CreateAccount struct {
	Code              string                    `json:"code" validate:"required,max=50"`
	Acquisition       *UpdateAccountAcquisition `json:"acquisition,omitempty"`
	ExternalAccounts  []ExternalAccount         `json:"external_accounts,omitempty"`
	ShippingAddresses []ShippingAddress         `json:"shipping_addresses,omitempty" validate:"omitempty,dive"`
	AccountFields
}

type UpdateAccount struct {
	AccountFields
}
