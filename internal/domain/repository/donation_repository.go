package repository

import (
	"context"

	"connectfood/internal/domain/entity"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	GetByID(ctx context.Context, id string) (*entity.Donation, error)

	// Transition performs a read-verify-conditional-write cycle on one
	// donation: the current record is re-read inside the store's
	// transaction, mutate validates and alters it, and the write is
	// rejected if another writer landed first. A rejected write surfaces
	// as a CONFLICT error; mutate errors pass through unchanged.
	Transition(ctx context.Context, id string, mutate func(*entity.Donation) error) (*entity.Donation, error)

	ListByDonor(ctx context.Context, donorEmail string) ([]*entity.Donation, error)
	ListLive(ctx context.Context, city, district string, minQuantity int) ([]*entity.Donation, error)
	ListCollected(ctx context.Context) ([]*entity.Donation, error)
}
