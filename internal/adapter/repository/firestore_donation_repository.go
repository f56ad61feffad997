package repository

import (
	"context"
	stderrors "errors"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"connectfood/internal/domain/entity"
	"connectfood/internal/domain/repository"
	"connectfood/pkg/errors"
)

const donationCollection = "donations"

type firestoreDonationRepository struct {
	client *firestore.Client
}

func NewFirestoreDonationRepository(client *firestore.Client) repository.DonationRepository {
	return &firestoreDonationRepository{
		client: client,
	}
}

func (r *firestoreDonationRepository) Create(ctx context.Context, donation *entity.Donation) error {
	if donation.ID == "" {
		doc := r.client.Collection(donationCollection).NewDoc()
		donation.ID = doc.ID
	}

	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now()
	}
	donation.Version = 1

	_, err := r.client.Collection(donationCollection).Doc(donation.ID).Set(ctx, donation)
	if err != nil {
		return storeError("Failed to create donation", err)
	}

	return nil
}

func (r *firestoreDonationRepository) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	doc, err := r.client.Collection(donationCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Donation", err)
		}
		return nil, storeError("Failed to get donation", err)
	}

	var donation entity.Donation
	if err := doc.DataTo(&donation); err != nil {
		return nil, errors.Internal("Failed to parse donation data", err)
	}
	donation.ID = doc.Ref.ID

	return &donation, nil
}

// Transition re-reads the donation inside a Firestore transaction, applies
// mutate, bumps the version and writes back. Firestore rejects the commit
// if the document changed after the read, so at most one concurrent caller
// wins; the losers either abort with CONFLICT or re-run mutate against the
// new state and fail its checks.
func (r *firestoreDonationRepository) Transition(ctx context.Context, id string, mutate func(*entity.Donation) error) (*entity.Donation, error) {
	var result *entity.Donation

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.client.Collection(donationCollection).Doc(id)
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Donation", err)
			}
			return err
		}

		var donation entity.Donation
		if err := doc.DataTo(&donation); err != nil {
			return errors.Internal("Failed to parse donation data", err)
		}
		donation.ID = doc.Ref.ID

		if err := mutate(&donation); err != nil {
			return err
		}

		donation.Version++
		result = &donation

		return tx.Set(ref, &donation)
	})

	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return nil, appErr
		}
		switch status.Code(err) {
		case codes.Aborted, codes.FailedPrecondition:
			return nil, errors.Conflict("Donation was modified by another request")
		case codes.Unavailable, codes.DeadlineExceeded:
			return nil, errors.Unavailable("Donation store is unavailable", err)
		}
		return nil, errors.Internal("Failed to update donation", err)
	}

	return result, nil
}

func (r *firestoreDonationRepository) ListByDonor(ctx context.Context, donorEmail string) ([]*entity.Donation, error) {
	query := r.client.Collection(donationCollection).
		Where("donorEmail", "==", donorEmail).
		OrderBy("createdAt", firestore.Desc)

	return r.collect(ctx, query.Documents(ctx), "Failed to list donor donations")
}

// ListLive filters on collected == false in the store; the substring
// matching on city/district happens in memory because Firestore has no
// contains operator.
func (r *firestoreDonationRepository) ListLive(ctx context.Context, city, district string, minQuantity int) ([]*entity.Donation, error) {
	query := r.client.Collection(donationCollection).Where("collected", "==", false)

	donations, err := r.collect(ctx, query.Documents(ctx), "Failed to list live donations")
	if err != nil {
		return nil, err
	}

	return filterLive(donations, city, district, minQuantity), nil
}

func filterLive(donations []*entity.Donation, city, district string, minQuantity int) []*entity.Donation {
	city = strings.ToLower(city)
	district = strings.ToLower(district)

	var matched []*entity.Donation
	for _, d := range donations {
		if d.Collected || d.Quantity < minQuantity {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(d.City), city) {
			continue
		}
		if district != "" && !strings.Contains(strings.ToLower(d.District), district) {
			continue
		}
		matched = append(matched, d)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched
}

func (r *firestoreDonationRepository) ListCollected(ctx context.Context) ([]*entity.Donation, error) {
	query := r.client.Collection(donationCollection).Where("collected", "==", true)
	return r.collect(ctx, query.Documents(ctx), "Failed to list collected donations")
}

func (r *firestoreDonationRepository) collect(ctx context.Context, iter *firestore.DocumentIterator, errMessage string) ([]*entity.Donation, error) {
	var donations []*entity.Donation

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeError(errMessage, err)
		}

		var donation entity.Donation
		if err := doc.DataTo(&donation); err != nil {
			return nil, errors.Internal("Failed to parse donation data", err)
		}
		donation.ID = doc.Ref.ID
		donations = append(donations, &donation)
	}

	return donations, nil
}

func storeError(message string, err error) *errors.AppError {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return errors.Unavailable(message, err)
	}
	return errors.Internal(message, err)
}
