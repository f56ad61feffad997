package repository

import (
	"context"
	stderrors "errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"connectfood/internal/domain/entity"
	"connectfood/internal/domain/repository"
	"connectfood/pkg/errors"
)

const (
	donorCollection     = "donors"
	recipientCollection = "recipients"
)

type firestoreDonorRepository struct {
	client *firestore.Client
}

func NewFirestoreDonorRepository(client *firestore.Client) repository.DonorRepository {
	return &firestoreDonorRepository{
		client: client,
	}
}

func (r *firestoreDonorRepository) GetByEmail(ctx context.Context, email string) (*entity.Donor, error) {
	doc, err := r.client.Collection(donorCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Donor", err)
		}
		return nil, storeError("Failed to get donor", err)
	}

	var donor entity.Donor
	if err := doc.DataTo(&donor); err != nil {
		return nil, errors.Internal("Failed to parse donor data", err)
	}

	return &donor, nil
}

func (r *firestoreDonorRepository) Save(ctx context.Context, donor *entity.Donor) error {
	_, err := r.client.Collection(donorCollection).Doc(donor.Email).Set(ctx, donor)
	if err != nil {
		return storeError("Failed to save donor", err)
	}
	return nil
}

type firestoreRecipientRepository struct {
	client *firestore.Client
}

func NewFirestoreRecipientRepository(client *firestore.Client) repository.RecipientRepository {
	return &firestoreRecipientRepository{
		client: client,
	}
}

func (r *firestoreRecipientRepository) GetByEmail(ctx context.Context, email string) (*entity.Recipient, error) {
	doc, err := r.client.Collection(recipientCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Recipient", err)
		}
		return nil, storeError("Failed to get recipient", err)
	}

	var recipient entity.Recipient
	if err := doc.DataTo(&recipient); err != nil {
		return nil, errors.Internal("Failed to parse recipient data", err)
	}

	return &recipient, nil
}

func (r *firestoreRecipientRepository) Save(ctx context.Context, recipient *entity.Recipient) error {
	_, err := r.client.Collection(recipientCollection).Doc(recipient.Email).Set(ctx, recipient)
	if err != nil {
		return storeError("Failed to save recipient", err)
	}
	return nil
}

type firestoreAccountRegistry struct {
	client *firestore.Client
}

func NewFirestoreAccountRegistry(client *firestore.Client) repository.AccountRegistry {
	return &firestoreAccountRegistry{
		client: client,
	}
}

// RegisterOrRefresh runs a single transaction over both profile
// collections: it reads the email's document under the opposite role
// first, so two racing first-time logins with different roles cannot both
// commit. Profiles are keyed by email, which makes the cross-role check a
// point read.
func (r *firestoreAccountRegistry) RegisterOrRefresh(ctx context.Context, role, email, name, picture string) error {
	ownCollection := donorCollection
	otherCollection := recipientCollection
	otherRole := entity.RoleRecipient
	if role == entity.RoleRecipient {
		ownCollection = recipientCollection
		otherCollection = donorCollection
		otherRole = entity.RoleDonor
	}

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		otherRef := r.client.Collection(otherCollection).Doc(email)
		if _, err := tx.Get(otherRef); err == nil {
			return errors.Conflict("User already registered as " + otherRole)
		} else if status.Code(err) != codes.NotFound {
			return err
		}

		ownRef := r.client.Collection(ownCollection).Doc(email)
		doc, err := tx.Get(ownRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		now := time.Now()

		if role == entity.RoleDonor {
			var donor *entity.Donor
			if err == nil {
				donor = &entity.Donor{}
				if err := doc.DataTo(donor); err != nil {
					return errors.Internal("Failed to parse donor data", err)
				}
				donor.ProfilePicture = picture
				donor.LastLoginAt = now
			} else {
				donor = entity.NewDonor(email, name)
				donor.ProfilePicture = picture
			}
			return tx.Set(ownRef, donor)
		}

		var recipient *entity.Recipient
		if err == nil {
			recipient = &entity.Recipient{}
			if err := doc.DataTo(recipient); err != nil {
				return errors.Internal("Failed to parse recipient data", err)
			}
			recipient.ProfilePicture = picture
			recipient.LastLoginAt = now
		} else {
			recipient = entity.NewRecipient(email, name)
			recipient.ProfilePicture = picture
		}
		return tx.Set(ownRef, recipient)
	})

	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return appErr
		}
		switch status.Code(err) {
		case codes.Unavailable, codes.DeadlineExceeded:
			return errors.Unavailable("Account store is unavailable", err)
		}
		return errors.Internal("Failed to register account", err)
	}

	return nil
}
