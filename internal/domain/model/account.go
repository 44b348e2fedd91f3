package model

import (
	"time"
)

// AccountStatus represents the lifecycle status of an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusSuspended AccountStatus = "suspended"
)

func (s AccountStatus) String() string {
	return string(s)
}

// Account is the primary profile document this service mutates.
//
// Several fields are stored in two places: a legacy top-level location and a
// nested profile location. Both are always written in the same update so the
// copies never diverge.
type Account struct {
	ID          string `bson:"_id" json:"id"`
	OwnerUserID string `bson:"userId" json:"ownerUserId"`

	// Legacy top-level duplicates of profile fields.
	Name     *string `bson:"name,omitempty" json:"name,omitempty"`
	Username *string `bson:"username,omitempty" json:"username,omitempty"`
	Dob      *string `bson:"dob,omitempty" json:"dob,omitempty"`
	Phone    *string `bson:"phone,omitempty" json:"phone,omitempty"`
	Note     *string `bson:"note,omitempty" json:"note,omitempty"`

	Profile Profile `bson:"profile" json:"profile"`

	NextKin         *NextKin         `bson:"nextKin,omitempty" json:"nextKin,omitempty"`
	UserPreferences *UserPreferences `bson:"userPreferences,omitempty" json:"userPreferences,omitempty"`
	ContactInfo     *ContactInfo     `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`

	GovID           []GovIDEntry `bson:"govId,omitempty" json:"govId,omitempty"`
	UserBanksDetail []BankDetail `bson:"userBanksDetail,omitempty" json:"userBanksDetail,omitempty"`

	// POAddress is either a []POAddressEntry or, for historical compatibility,
	// the literal string "null" when an explicit null was supplied.
	POAddress any `bson:"poAddress,omitempty" json:"poAddress,omitempty"`

	AccountPermissions map[string][]string `bson:"accountPermissions,omitempty" json:"accountPermissions,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the nested profile bag on an Account. Pointer fields distinguish
// a cleared (null) value from one that was never set.
type Profile struct {
	FirstName     *string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName      *string `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Bio           *string `bson:"bio,omitempty" json:"bio,omitempty"`
	Language      *string `bson:"language,omitempty" json:"language,omitempty"`
	Currency      *string `bson:"currency,omitempty" json:"currency,omitempty"`
	Suspend       *bool   `bson:"suspend,omitempty" json:"suspend,omitempty"`
	TransactionID *string `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Name          *string `bson:"name,omitempty" json:"name,omitempty"`
	Username      *string `bson:"username,omitempty" json:"username,omitempty"`
	Dob           *string `bson:"dob,omitempty" json:"dob,omitempty"`
	Phone         *string `bson:"phone,omitempty" json:"phone,omitempty"`
	Picture       *string `bson:"picture,omitempty" json:"picture,omitempty"`
}

// NextKin is the account holder's next of kin.
type NextKin struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Address  string `bson:"address" json:"address" validate:"required"`
	Phone    string `bson:"phone" json:"phone" validate:"required"`
	Email    string `bson:"email" json:"email" validate:"required,email"`
	Gender   string `bson:"gender" json:"gender" validate:"required"`
	Relation string `bson:"relation" json:"relation" validate:"required"`
}

// ContactPreferences holds contact-channel opt-ins.
type ContactPreferences struct {
	Email *bool `bson:"email,omitempty" json:"email,omitempty"`
	SMS   *bool `bson:"sms,omitempty" json:"sms,omitempty"`
}

// UserPreferences holds notification preferences.
type UserPreferences struct {
	ContactPreferences ContactPreferences `bson:"contactPreferences" json:"contactPreferences"`
	AlertsPreferences  []string           `bson:"alertsPreferences,omitempty" json:"alertsPreferences,omitempty"`
}

// ContactInfo is the account's structured contact record.
type ContactInfo struct {
	Email    string `bson:"email" json:"email" validate:"required,email"`
	Phone    string `bson:"phone" json:"phone" validate:"required"`
	Address1 string `bson:"Address1" json:"Address1" validate:"required"`
	Address2 string `bson:"Address2,omitempty" json:"Address2,omitempty"`
	Address3 string `bson:"Address3,omitempty" json:"Address3,omitempty"`
	Country  string `bson:"country" json:"country" validate:"required"`
	Postcode string `bson:"postcode" json:"postcode" validate:"required"`
}

// GovIDEntry is one government-issued identifier.
type GovIDEntry struct {
	Key   string `bson:"key,omitempty" json:"key,omitempty"`
	Value string `bson:"value,omitempty" json:"value,omitempty"`
}

// POAddressEntry is one proof-of-address document reference.
type POAddressEntry struct {
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
	Type     string `bson:"type,omitempty" json:"type,omitempty"`
	Document string `bson:"document,omitempty" json:"document,omitempty"`
}

// BankDetail is one linked bank account.
type BankDetail struct {
	BankName      string `bson:"bankName" json:"bankName" validate:"required"`
	AccountNumber string `bson:"accountNumber" json:"accountNumber" validate:"required"`
	SortCode      string `bson:"sortCode,omitempty" json:"sortCode,omitempty"`
	Alias         string `bson:"alias" json:"alias" validate:"required"`
}
