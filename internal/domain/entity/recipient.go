package entity

import (
	"time"
)

type Recipient struct {
	Email            string    `json:"email" firestore:"email"`
	Name             string    `json:"name" firestore:"name"`
	OrganizationName string    `json:"organization_name,omitempty" firestore:"organizationName,omitempty"`
	LicenseNumber    string    `json:"license_number,omitempty" firestore:"licenseNumber,omitempty"`
	Role             string    `json:"role" firestore:"role"`
	PhoneNumber      string    `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	ProfilePicture   string    `json:"profile_picture,omitempty" firestore:"profilePicture,omitempty"`
	Address          string    `json:"address,omitempty" firestore:"address,omitempty"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	LastLoginAt      time.Time `json:"last_login_at" firestore:"lastLoginAt"`

	ProfileComplete bool `json:"profile_complete" firestore:"profileComplete"`
}

func NewRecipient(email, name string) *Recipient {
	now := time.Now()
	return &Recipient{
		Email:       email,
		Name:        name,
		Role:        RoleRecipient,
		CreatedAt:   now,
		LastLoginAt: now,
	}
}

// RecomputeProfileComplete derives the completeness flag from the
// recipient's required fields: name, organization and license.
func (r *Recipient) RecomputeProfileComplete() {
	r.ProfileComplete = notBlank(r.Name) && notBlank(r.OrganizationName) && notBlank(r.LicenseNumber)
}
