package repository

import (
	"context"

	"connectfood/internal/domain/entity"
)

type DonorRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.Donor, error)
	Save(ctx context.Context, donor *entity.Donor) error
}

type RecipientRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.Recipient, error)
	Save(ctx context.Context, recipient *entity.Recipient) error
}

// AccountRegistry creates or refreshes a profile on login. The whole
// register-or-refresh runs as one store transaction so that an email can
// never end up in both the donor and recipient collections, even when two
// first-time logins race each other.
type AccountRegistry interface {
	RegisterOrRefresh(ctx context.Context, role, email, name, picture string) error
}
