package entity

import (
	"time"
)

// Donation is one listed batch of surplus food. Its lifecycle runs
// Available -> Initiated -> Collected and never moves backwards; the
// Collected state is terminal.
type Donation struct {
	ID          string `json:"id" firestore:"id"`
	DonorEmail  string `json:"donor_email" firestore:"donorEmail"`
	DonorName   string `json:"donor_name" firestore:"donorName"`
	FoodItem    string `json:"food_item" firestore:"foodItem"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Quantity    int    `json:"quantity" firestore:"quantity"`
	Unit        string `json:"unit" firestore:"unit"`

	City      string   `json:"city" firestore:"city"`
	District  string   `json:"district" firestore:"district"`
	Address   string   `json:"address" firestore:"address"`
	Latitude  *float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`

	ExpiryDate          time.Time `json:"expiry_date" firestore:"expiryDate"`
	SpecialInstructions string    `json:"special_instructions,omitempty" firestore:"specialInstructions,omitempty"`

	Collected           bool       `json:"collected" firestore:"collected"`
	CollectionInitiated bool       `json:"collection_initiated" firestore:"collectionInitiated"`
	InitiatedBy         string     `json:"initiated_by,omitempty" firestore:"initiatedBy,omitempty"`
	InitiatedAt         *time.Time `json:"initiated_at,omitempty" firestore:"initiatedAt,omitempty"`
	CollectedBy         string     `json:"collected_by,omitempty" firestore:"collectedBy,omitempty"`
	CollectedAt         *time.Time `json:"collected_at,omitempty" firestore:"collectedAt,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`

	// Version increments on every lifecycle write and backs the
	// conditional-update check in the repository.
	Version int64 `json:"version" firestore:"version"`
}

// Available reports whether the donation can still be claimed.
func (d *Donation) Available() bool {
	return !d.Collected && !d.CollectionInitiated
}
