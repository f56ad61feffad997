package usecase

import (
	"context"
	"time"

	"connectfood/internal/domain/entity"
	"connectfood/internal/domain/repository"
	"connectfood/pkg/errors"
	"connectfood/pkg/logger"
)

type ProfileUseCase struct {
	donorRepo     repository.DonorRepository
	recipientRepo repository.RecipientRepository
	donationRepo  repository.DonationRepository
}

func NewProfileUseCase(
	donorRepo repository.DonorRepository,
	recipientRepo repository.RecipientRepository,
	donationRepo repository.DonationRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		donorRepo:     donorRepo,
		recipientRepo: recipientRepo,
		donationRepo:  donationRepo,
	}
}

type Stats struct {
	TotalDonations  int64  `json:"total_donations"`
	TotalItems      int64  `json:"total_items"`
	ActiveDonations int64  `json:"active_donations"`
	Role            string `json:"role"`
}

type Profile struct {
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	PhoneNumber      string    `json:"phone_number,omitempty"`
	ProfilePicture   string    `json:"profile_picture,omitempty"`
	Address          string    `json:"address,omitempty"`
	OrganizationName string    `json:"organization_name,omitempty"`
	LicenseNumber    string    `json:"license_number,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	LastLoginAt      time.Time `json:"last_login_at"`
	ProfileComplete  bool      `json:"profile_complete"`
	Stats            Stats     `json:"stats"`
}

type UpdateProfileInput struct {
	Name             *string
	PhoneNumber      *string
	Address          *string
	ProfilePicture   *string
	OrganizationName *string
	LicenseNumber    *string
}

// GetProfile returns the profile with its statistics block and refreshes
// the last-login stamp.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, email, role string) (*Profile, error) {
	switch role {
	case entity.RoleDonor:
		return uc.donorProfile(ctx, email)
	case entity.RoleRecipient:
		return uc.recipientProfile(ctx, email)
	}
	return nil, errors.BadRequest("Invalid role", nil)
}

func (uc *ProfileUseCase) donorProfile(ctx context.Context, email string) (*Profile, error) {
	donor, err := uc.donorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	stats, err := uc.donorStats(ctx, email)
	if err != nil {
		return nil, err
	}

	donor.LastLoginAt = time.Now()
	if err := uc.donorRepo.Save(ctx, donor); err != nil {
		logger.Warn("Failed to refresh donor last login: %v", err)
	}

	return &Profile{
		Email:           donor.Email,
		Name:            donor.Name,
		Role:            donor.Role,
		PhoneNumber:     donor.PhoneNumber,
		ProfilePicture:  donor.ProfilePicture,
		Address:         donor.Address,
		CreatedAt:       donor.CreatedAt,
		LastLoginAt:     donor.LastLoginAt,
		ProfileComplete: donor.ProfileComplete,
		Stats:           *stats,
	}, nil
}

func (uc *ProfileUseCase) recipientProfile(ctx context.Context, email string) (*Profile, error) {
	recipient, err := uc.recipientRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	stats, err := uc.recipientStats(ctx)
	if err != nil {
		return nil, err
	}

	recipient.LastLoginAt = time.Now()
	if err := uc.recipientRepo.Save(ctx, recipient); err != nil {
		logger.Warn("Failed to refresh recipient last login: %v", err)
	}

	return &Profile{
		Email:            recipient.Email,
		Name:             recipient.Name,
		Role:             recipient.Role,
		PhoneNumber:      recipient.PhoneNumber,
		ProfilePicture:   recipient.ProfilePicture,
		Address:          recipient.Address,
		OrganizationName: recipient.OrganizationName,
		LicenseNumber:    recipient.LicenseNumber,
		CreatedAt:        recipient.CreatedAt,
		LastLoginAt:      recipient.LastLoginAt,
		ProfileComplete:  recipient.ProfileComplete,
		Stats:            *stats,
	}, nil
}

// UpdateProfile applies the partial update and recomputes the completeness
// flag from the role's required fields. It returns the new flag.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, email, role string, input UpdateProfileInput) (bool, error) {
	switch role {
	case entity.RoleDonor:
		donor, err := uc.donorRepo.GetByEmail(ctx, email)
		if err != nil {
			return false, err
		}

		if input.Name != nil {
			donor.Name = *input.Name
		}
		if input.PhoneNumber != nil {
			donor.PhoneNumber = *input.PhoneNumber
		}
		if input.Address != nil {
			donor.Address = *input.Address
		}
		if input.ProfilePicture != nil {
			donor.ProfilePicture = *input.ProfilePicture
		}

		donor.RecomputeProfileComplete()
		if err := uc.donorRepo.Save(ctx, donor); err != nil {
			return false, err
		}
		return donor.ProfileComplete, nil

	case entity.RoleRecipient:
		recipient, err := uc.recipientRepo.GetByEmail(ctx, email)
		if err != nil {
			return false, err
		}

		if input.Name != nil {
			recipient.Name = *input.Name
		}
		if input.OrganizationName != nil {
			recipient.OrganizationName = *input.OrganizationName
		}
		if input.LicenseNumber != nil {
			recipient.LicenseNumber = *input.LicenseNumber
		}
		if input.PhoneNumber != nil {
			recipient.PhoneNumber = *input.PhoneNumber
		}
		if input.Address != nil {
			recipient.Address = *input.Address
		}
		if input.ProfilePicture != nil {
			recipient.ProfilePicture = *input.ProfilePicture
		}

		recipient.RecomputeProfileComplete()
		if err := uc.recipientRepo.Save(ctx, recipient); err != nil {
			return false, err
		}
		return recipient.ProfileComplete, nil
	}

	return false, errors.BadRequest("Invalid role", nil)
}

// GetStats returns just the statistics block. Donor stats cover the
// donor's own listings; recipient stats are platform-wide, matching what
// the recipient dashboard shows.
func (uc *ProfileUseCase) GetStats(ctx context.Context, email, role string) (*Stats, error) {
	switch role {
	case entity.RoleDonor:
		if _, err := uc.donorRepo.GetByEmail(ctx, email); err != nil {
			return nil, err
		}
		return uc.donorStats(ctx, email)
	case entity.RoleRecipient:
		if _, err := uc.recipientRepo.GetByEmail(ctx, email); err != nil {
			return nil, err
		}
		return uc.recipientStats(ctx)
	}
	return nil, errors.BadRequest("Invalid role", nil)
}

func (uc *ProfileUseCase) donorStats(ctx context.Context, email string) (*Stats, error) {
	donations, err := uc.donationRepo.ListByDonor(ctx, email)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Role: entity.RoleDonor}
	for _, d := range donations {
		stats.TotalDonations++
		stats.TotalItems += int64(d.Quantity)
		if !d.Collected {
			stats.ActiveDonations++
		}
	}
	return stats, nil
}

func (uc *ProfileUseCase) recipientStats(ctx context.Context) (*Stats, error) {
	collected, err := uc.donationRepo.ListCollected(ctx)
	if err != nil {
		return nil, err
	}
	live, err := uc.donationRepo.ListLive(ctx, "", "", 0)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Role: entity.RoleRecipient}
	for _, d := range collected {
		stats.TotalDonations++
		stats.TotalItems += int64(d.Quantity)
	}
	stats.ActiveDonations = int64(len(live))
	return stats, nil
}
