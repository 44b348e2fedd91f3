package model

// User is the denormalized identity record sharing its ID with the owning
// Account. It carries only the name fields that downstream consumers read;
// after every successful Account update they are re-synced from the Account's
// post-update profile.
type User struct {
	ID        string  `bson:"_id" json:"id"`
	FirstName *string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName  *string `bson:"lastName,omitempty" json:"lastName,omitempty"`
}
