package app

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shapes shared by several resource families.

type Address struct {
	Phone      string `json:"phone,omitempty"`
	Street1    string `json:"street1,omitempty"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
	GeoCode    string `json:"geo_code,omitempty"`
}

// CustomField is a name/value pair. A nil Value clears the field server-side.
type CustomField struct {
	Name  string  `json:"name" validate:"required,max=50,custom_field_name"`
	Value *string `json:"value" validate:"omitempty,max=255"`
}

type CurrencyAmount struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

type CollectionMethod string

const (
	CollectionAutomatic CollectionMethod = "automatic"
	CollectionManual    CollectionMethod = "manual"
)

type RevenueScheduleType string

const (
	RevenueScheduleAtRangeEnd   RevenueScheduleType = "at_range_end"
	RevenueScheduleAtRangeStart RevenueScheduleType = "at_range_start"
	RevenueScheduleEvenly       RevenueScheduleType = "evenly"
	RevenueScheduleNever        RevenueScheduleType = "never"
)

// ResourceState is the active/inactive filter several list endpoints accept.
type ResourceState string

const (
	StateActive   ResourceState = "active"
	StateInactive ResourceState = "inactive"
)

// AccountMini is the account reference embedded in other resources.
type AccountMini struct {
	ID                string `json:"id"`
	Object            string `json:"object,omitempty"`
	Code              string `json:"code,omitempty"`
	Email             string `json:"email,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Company           string `json:"company,omitempty"`
	ParentAccountID   string `json:"parent_account_id,omitempty"`
	BillTo            string `json:"bill_to,omitempty"`
	DunningCampaignID string `json:"dunning_campaign_id,omitempty"`
}

type PlanMini struct {
	ID     string `json:"id"`
	Object string `json:"object,omitempty"`
	Code   string `json:"code,omitempty"`
	Name   string `json:"name,omitempty"`
}

type ItemMini struct {
	ID          string `json:"id"`
	Object      string `json:"object,omitempty"`
	Code        string `json:"code,omitempty"`
	Name        string `json:"name,omitempty"`
	State       string `json:"state,omitempty"`
	Description string `json:"description,omitempty"`
}

type InvoiceMini struct {
	ID               string `json:"id"`
	Object           string `json:"object,omitempty"`
	Number           string `json:"number,omitempty"`
	BusinessEntityID string `json:"business_entity_id,omitempty"`
	Type             string `json:"type,omitempty"`
	State            string `json:"state,omitempty"`
}

type User struct {
	ID        string     `json:"id"`
	Object    string     `json:"object,omitempty"`
	Email     string     `json:"email,omitempty"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	TimeZone  string     `json:"time_zone,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Timestamps groups the audit times most resources carry.
type Timestamps struct {
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
