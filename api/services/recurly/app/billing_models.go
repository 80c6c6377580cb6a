package app

import (
	"time"

	"github.com/shopspring/decimal"
)

type BillingInfo struct {
	ID                       string                    `json:"id"`
	Object                   string                    `json:"object,omitempty"`
	AccountID                string                    `json:"account_id,omitempty"`
	FirstName                string                    `json:"first_name,omitempty"`
	LastName                 string                    `json:"last_name,omitempty"`
	Company                  string                    `json:"company,omitempty"`
	Address                  *Address                  `json:"address,omitempty"`
	VATNumber                string                    `json:"vat_number,omitempty"`
	Valid                    bool                      `json:"valid"`
	PaymentMethod            *PaymentMethod            `json:"payment_method,omitempty"`
	Fraud                    *FraudInfo                `json:"fraud,omitempty"`
	PrimaryPaymentMethod     bool                      `json:"primary_payment_method"`
	BackupPaymentMethod      bool                      `json:"backup_payment_method"`
	PaymentGatewayReferences []PaymentGatewayReference `json:"payment_gateway_references,omitempty"`
	CreatedAt                *time.Time                `json:"created_at,omitempty"`
	UpdatedAt                *time.Time                `json:"updated_at,omitempty"`
	UpdatedBy                *UpdatedBy                `json:"updated_by,omitempty"`
}

type PaymentMethod struct {
	Object                string         `json:"object,omitempty"`
	CardType              string         `json:"card_type,omitempty"`
	FirstSix              string         `json:"first_six,omitempty"`
	LastFour              string         `json:"last_four,omitempty"`
	LastTwo               string         `json:"last_two,omitempty"`
	ExpMonth              int            `json:"exp_month,omitempty"`
	ExpYear               int            `json:"exp_year,omitempty"`
	GatewayToken          string         `json:"gateway_token,omitempty"`
	CCBinCountry          string         `json:"cc_bin_country,omitempty"`
	FundingSource         string         `json:"funding_source,omitempty"`
	GatewayCode           string         `json:"gateway_code,omitempty"`
	GatewayAttributes     map[string]any `json:"gateway_attributes,omitempty"`
	CardNetworkPreference string         `json:"card_network_preference,omitempty"`
	BillingAgreementID    string         `json:"billing_agreement_id,omitempty"`
	NameOnAccount         string         `json:"name_on_account,omitempty"`
	AccountType           string         `json:"account_type,omitempty"`
	RoutingNumber         string         `json:"routing_number,omitempty"`
	RoutingNumberBank     string         `json:"routing_number_bank,omitempty"`
	Username              string         `json:"username,omitempty"`
}

type FraudInfo struct {
	Score              int            `json:"score,omitempty"`
	Decision           string         `json:"decision,omitempty"`
	RiskRulesTriggered map[string]any `json:"risk_rules_triggered,omitempty"`
}

type PaymentGatewayReference struct {
	ID            string `json:"id,omitempty"`
	Object        string `json:"object,omitempty"`
	Reference     string `json:"reference,omitempty"`
	ReferenceType string `json:"reference_type,omitempty"`
}

type UpdatedBy struct {
	IP      string `json:"ip,omitempty"`
	Country string `json:"country,omitempty"`
}

type Transaction struct {
	ID                      string                `json:"id"`
	Object                  string                `json:"object,omitempty"`
	UUID                    string                `json:"uuid,omitempty"`
	OriginalTransactionID   string                `json:"original_transaction_id,omitempty"`
	Account                 *AccountMini          `json:"account,omitempty"`
	Initiator               string                `json:"initiator,omitempty"`
	Invoice                 *InvoiceMini          `json:"invoice,omitempty"`
	MerchantReasonCode      string                `json:"merchant_reason_code,omitempty"`
	VoidedByInvoice         *InvoiceMini          `json:"voided_by_invoice,omitempty"`
	SubscriptionIDs         []string              `json:"subscription_ids,omitempty"`
	Type                    string                `json:"type,omitempty"`
	Origin                  string                `json:"origin,omitempty"`
	Currency                string                `json:"currency,omitempty"`
	Amount                  decimal.Decimal       `json:"amount"`
	Status                  string                `json:"status,omitempty"`
	Success                 bool                  `json:"success"`
	BackupPaymentMethodUsed bool                  `json:"backup_payment_method_used"`
	Refunded                bool                  `json:"refunded"`
	BillingAddress          *Address              `json:"billing_address,omitempty"`
	CollectionMethod        CollectionMethod      `json:"collection_method,omitempty"`
	PaymentMethod           *PaymentMethod        `json:"payment_method,omitempty"`
	IPAddressV4             string                `json:"ip_address_v4,omitempty"`
	IPAddressCountry        string                `json:"ip_address_country,omitempty"`
	StatusCode              string                `json:"status_code,omitempty"`
	StatusMessage           string                `json:"status_message,omitempty"`
	CustomerMessage         string                `json:"customer_message,omitempty"`
	CustomerMessageLocale   string                `json:"customer_message_locale,omitempty"`
	PaymentGateway          *PaymentGateway       `json:"payment_gateway,omitempty"`
	GatewayMessage          string                `json:"gateway_message,omitempty"`
	GatewayReference        string                `json:"gateway_reference,omitempty"`
	GatewayApprovalCode     string                `json:"gateway_approval_code,omitempty"`
	GatewayResponseCode     string                `json:"gateway_response_code,omitempty"`
	GatewayResponseTime     float64               `json:"gateway_response_time,omitempty"`
	GatewayResponseValues   map[string]any        `json:"gateway_response_values,omitempty"`
	CVVCheck                string                `json:"cvv_check,omitempty"`
	AVSCheck                string                `json:"avs_check,omitempty"`
	CreatedAt               *time.Time            `json:"created_at,omitempty"`
	UpdatedAt               *time.Time            `json:"updated_at,omitempty"`
	VoidedAt                *time.Time            `json:"voided_at,omitempty"`
	CollectedAt             *time.Time            `json:"collected_at,omitempty"`
	ActionResult            map[string]any        `json:"action_result,omitempty"`
	VATNumber               string                `json:"vat_number,omitempty"`
	FraudInfo               *TransactionFraudInfo `json:"fraud_info,omitempty"`
}

type PaymentGateway struct {
	ID     string `json:"id"`
	Object string `json:"object,omitempty"`
	Type   string `json:"type,omitempty"`
	Name   string `json:"name,omitempty"`
}

type TransactionFraudInfo struct {
	Object             string      `json:"object,omitempty"`
	Score              int         `json:"score,omitempty"`
	Decision           string      `json:"decision,omitempty"`
	Reference          string      `json:"reference,omitempty"`
	RiskRulesTriggered []FraudRule `json:"risk_rules_triggered,omitempty"`
}

type FraudRule struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type PaymentGatewayReferenceRequest struct {
	Token         string `json:"token,omitempty" validate:"omitempty,max=50"`
	ReferenceType string `json:"reference_type,omitempty" validate:"omitempty,oneof=stripe_confirmation_token upi_vpa"`
}

type GatewayAttributes struct {
	AccountReference string `json:"account_reference,omitempty" validate:"omitempty,max=264"`
}

// BillingInfoRequest is the body for creating or updating billing info, either
// the account's single record or one of several.
type BillingInfoRequest struct {
	TokenID                         string                           `json:"token_id,omitempty" validate:"omitempty,max=22"`
	FirstName                       string                           `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName                        string                           `json:"last_name,omitempty" validate:"omitempty,max=50"`
	Company                         string                           `json:"company,omitempty" validate:"omitempty,max=100"`
	Address                         *Address                         `json:"address,omitempty"`
	Number                          string                           `json:"number,omitempty"`
	Month                           string                           `json:"month,omitempty" validate:"omitempty,max=2"`
	Year                            string                           `json:"year,omitempty" validate:"omitempty,max=4"`
	CVV                             string                           `json:"cvv,omitempty" validate:"omitempty,max=4"`
	Currency                        string                           `json:"currency,omitempty"`
	VATNumber                       string                           `json:"vat_number,omitempty"`
	IPAddress                       string                           `json:"ip_address,omitempty" validate:"omitempty,max=20"`
	GatewayToken                    string                           `json:"gateway_token,omitempty" validate:"omitempty,max=50"`
	GatewayCode                     string                           `json:"gateway_code,omitempty" validate:"omitempty,max=12"`
	PaymentGatewayReferences        []PaymentGatewayReferenceRequest `json:"payment_gateway_references,omitempty" validate:"omitempty,dive"`
	GatewayAttributes               *GatewayAttributes               `json:"gateway_attributes,omitempty"`
	AmazonBillingAgreementID        string                           `json:"amazon_billing_agreement_id,omitempty"`
	PaypalBillingAgreementID        string                           `json:"paypal_billing_agreement_id,omitempty"`
	RokuBillingAgreementID          string                           `json:"roku_billing_agreement_id,omitempty"`
	FraudSessionID                  string                           `json:"fraud_session_id,omitempty"`
	AdyenRiskProfileReferenceID     string                           `json:"adyen_risk_profile_reference_id,omitempty"`
	TransactionType                 string                           `json:"transaction_type,omitempty" validate:"omitempty,eq=moto"`
	ThreeDSecureActionResultTokenID string                           `json:"three_d_secure_action_result_token_id,omitempty" validate:"omitempty,max=22"`
	IBAN                            string                           `json:"iban,omitempty" validate:"omitempty,max=34"`
	NameOnAccount                   string                           `json:"name_on_account,omitempty" validate:"omitempty,max=255"`
	AccountNumber                   string                           `json:"account_number,omitempty" validate:"omitempty,max=255"`
	RoutingNumber                   string                           `json:"routing_number,omitempty" validate:"omitempty,max=15"`
	SortCode                        string                           `json:"sort_code,omitempty" validate:"omitempty,max=15"`
	Type                            string                           `json:"type,omitempty" validate:"omitempty,oneof=bacs becs"`
	AccountType                     string                           `json:"account_type,omitempty" validate:"omitempty,oneof=checking savings"`
	TaxIdentifier                   string                           `json:"tax_identifier,omitempty"`
	TaxIdentifierType               string                           `json:"tax_identifier_type,omitempty" validate:"omitempty,oneof=cpf cnpj cuit"`
	PrimaryPaymentMethod            *bool                            `json:"primary_payment_method,omitempty"`
	BackupPaymentMethod             *bool                            `json:"backup_payment_method,omitempty"`
	ExternalHPPType                 string                           `json:"external_hpp_type,omitempty" validate:"omitempty,eq=adyen"`
	OnlineBankingPaymentType        string                           `json:"online_banking_payment_type,omitempty" validate:"omitempty,oneof=ideal sofort"`
	CardType                        string                           `json:"card_type,omitempty" validate:"omitempty,oneof='American Express' Dankort 'Diners Club' Discover ELO Forbrugsforeningen Hipercard JCB Laser Maestro MasterCard 'Test Card' 'Union Pay' Unknown Visa 'Tarjeta Naranja'"`
	CardNetworkPreference           string                           `json:"card_network_preference,omitempty" validate:"omitempty,oneof=Bancontact CartesBancaires Dankort MasterCard Visa"`
	ReturnURL                       string                           `json:"return_url,omitempty"`
}

// VerifyBillingInfo is sent as {} when both fields are empty.
type VerifyBillingInfo struct {
	GatewayCode                     string `json:"gateway_code,omitempty" validate:"omitempty,max=13"`
	ThreeDSecureActionResultTokenID string `json:"three_d_secure_action_result_token_id,omitempty"`
}

type VerifyBillingInfoCVV struct {
	VerificationValue               string `json:"verification_value,omitempty"`
	GatewayCode                     string `json:"gateway_code,omitempty" validate:"omitempty,max=13"`
	ThreeDSecureActionResultTokenID string `json:"three_d_secure_action_result_token_id,omitempty"`
	TokenID                         string `json:"token_id,omitempty"`
}

type ListBillingInfosParams struct {
	IDs       []string   `query:"ids"`
	Sort      SortField  `query:"sort,omitempty" validate:"omitempty,oneof=created_at updated_at"`
	BeginTime *time.Time `query:"begin_time"`
	EndTime   *time.Time `query:"end_time"`
}
