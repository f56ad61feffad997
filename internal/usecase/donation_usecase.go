package usecase

import (
	"context"
	"time"

	"connectfood/internal/domain/entity"
	"connectfood/internal/domain/repository"
	"connectfood/pkg/errors"
)

// DonationUseCase owns the donation lifecycle. Nothing else writes the
// collection-status fields.
type DonationUseCase struct {
	donationRepo  repository.DonationRepository
	donorRepo     repository.DonorRepository
	recipientRepo repository.RecipientRepository
}

func NewDonationUseCase(
	donationRepo repository.DonationRepository,
	donorRepo repository.DonorRepository,
	recipientRepo repository.RecipientRepository,
) *DonationUseCase {
	return &DonationUseCase{
		donationRepo:  donationRepo,
		donorRepo:     donorRepo,
		recipientRepo: recipientRepo,
	}
}

type CreateDonationInput struct {
	FoodItem            string
	Description         string
	Quantity            int
	Unit                string
	City                string
	District            string
	Address             string
	Latitude            *float64
	Longitude           *float64
	ExpiryDate          time.Time
	SpecialInstructions string
}

// Create lists a new donation for a donor with a complete profile. The
// collection-status fields always start out cleared no matter what the
// caller sent over the wire.
func (uc *DonationUseCase) Create(ctx context.Context, donorEmail string, input CreateDonationInput) (*entity.Donation, error) {
	donor, err := uc.donorRepo.GetByEmail(ctx, donorEmail)
	if err != nil {
		return nil, err
	}

	if !donor.ProfileComplete {
		return nil, errors.PreconditionFailed("Please complete your profile before creating donations")
	}

	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity must be zero or greater", nil)
	}

	donation := &entity.Donation{
		DonorEmail:          donor.Email,
		DonorName:           donor.Name,
		FoodItem:            input.FoodItem,
		Description:         input.Description,
		Quantity:            input.Quantity,
		Unit:                input.Unit,
		City:                input.City,
		District:            input.District,
		Address:             input.Address,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		ExpiryDate:          input.ExpiryDate,
		SpecialInstructions: input.SpecialInstructions,
		CreatedAt:           time.Now(),
	}

	if err := uc.donationRepo.Create(ctx, donation); err != nil {
		return nil, err
	}

	return donation, nil
}

// Initiate claims an available donation for the calling recipient's
// organization. The state checks run inside the store transaction, so two
// recipients racing for the same donation produce exactly one winner; the
// loser gets a Conflict and should not retry, because the donation is
// genuinely gone.
func (uc *DonationUseCase) Initiate(ctx context.Context, id, recipientEmail string) (*entity.Donation, error) {
	recipient, err := uc.recipientRepo.GetByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, err
	}

	org := recipient.OrganizationName
	now := time.Now()

	return uc.donationRepo.Transition(ctx, id, func(d *entity.Donation) error {
		if d.Collected {
			return errors.Conflict("Donation already collected")
		}
		if d.CollectionInitiated {
			return errors.Conflict("Collection already initiated")
		}

		d.CollectionInitiated = true
		d.InitiatedBy = org
		d.InitiatedAt = &now
		return nil
	})
}

// Collect finishes a claim. Only the organization that initiated the
// collection may collect, and a collected donation is terminal.
func (uc *DonationUseCase) Collect(ctx context.Context, id, recipientEmail string) (*entity.Donation, error) {
	recipient, err := uc.recipientRepo.GetByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, err
	}

	org := recipient.OrganizationName
	now := time.Now()

	return uc.donationRepo.Transition(ctx, id, func(d *entity.Donation) error {
		if d.Collected {
			return errors.Conflict("Donation already collected")
		}
		if !d.CollectionInitiated {
			return errors.Conflict("Collection has not been initiated")
		}
		if d.InitiatedBy != org {
			return errors.Conflict("Donation was initiated by another organization")
		}

		d.Collected = true
		d.CollectedBy = org
		d.CollectedAt = &now
		return nil
	})
}

func (uc *DonationUseCase) ListMine(ctx context.Context, donorEmail string) ([]*entity.Donation, error) {
	return uc.donationRepo.ListByDonor(ctx, donorEmail)
}

func (uc *DonationUseCase) ListLive(ctx context.Context, city, district string, minQuantity int) ([]*entity.Donation, error) {
	return uc.donationRepo.ListLive(ctx, city, district, minQuantity)
}

// ListReceived returns every collected donation across all recipients.
func (uc *DonationUseCase) ListReceived(ctx context.Context) ([]*entity.Donation, error) {
	return uc.donationRepo.ListCollected(ctx)
}
