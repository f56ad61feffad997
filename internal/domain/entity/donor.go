package entity

import (
	"strings"
	"time"
)

const (
	RoleDonor     = "donor"
	RoleRecipient = "recipient"
)

type Donor struct {
	Email          string    `json:"email" firestore:"email"`
	Name           string    `json:"name" firestore:"name"`
	Role           string    `json:"role" firestore:"role"`
	PhoneNumber    string    `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty" firestore:"profilePicture,omitempty"`
	Address        string    `json:"address,omitempty" firestore:"address,omitempty"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
	LastLoginAt    time.Time `json:"last_login_at" firestore:"lastLoginAt"`

	ProfileComplete bool `json:"profile_complete" firestore:"profileComplete"`
}

func NewDonor(email, name string) *Donor {
	now := time.Now()
	return &Donor{
		Email:       email,
		Name:        name,
		Role:        RoleDonor,
		CreatedAt:   now,
		LastLoginAt: now,
	}
}

// RecomputeProfileComplete derives the completeness flag from the donor's
// required fields. It is called on every profile mutation so the stored
// value can never go stale.
func (d *Donor) RecomputeProfileComplete() {
	d.ProfileComplete = notBlank(d.Name) && notBlank(d.PhoneNumber) && notBlank(d.Address)
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
