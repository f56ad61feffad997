package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"connectfood/internal/domain/entity"
	"connectfood/pkg/errors"
)

// memoryDonationRepo mimics the store's read-verify-conditional-write
// cycle under a mutex, so the lifecycle races are exercised with the same
// semantics the Firestore repository provides.
type memoryDonationRepo struct {
	mu        sync.Mutex
	donations map[string]*entity.Donation
	nextID    int
}

func newMemoryDonationRepo() *memoryDonationRepo {
	return &memoryDonationRepo{donations: make(map[string]*entity.Donation)}
}

func (m *memoryDonationRepo) Create(ctx context.Context, donation *entity.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if donation.ID == "" {
		m.nextID++
		donation.ID = fmt.Sprintf("donation-%d", m.nextID)
	}
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now()
	}
	donation.Version = 1

	stored := *donation
	m.donations[donation.ID] = &stored
	return nil
}

func (m *memoryDonationRepo) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.donations[id]
	if !ok {
		return nil, errors.NotFound("Donation", nil)
	}
	copied := *d
	return &copied, nil
}

func (m *memoryDonationRepo) Transition(ctx context.Context, id string, mutate func(*entity.Donation) error) (*entity.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.donations[id]
	if !ok {
		return nil, errors.NotFound("Donation", nil)
	}

	next := *current
	if err := mutate(&next); err != nil {
		return nil, err
	}

	next.Version++
	m.donations[id] = &next

	result := next
	return &result, nil
}

func (m *memoryDonationRepo) ListByDonor(ctx context.Context, donorEmail string) ([]*entity.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*entity.Donation
	for _, d := range m.donations {
		if d.DonorEmail == donorEmail {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memoryDonationRepo) ListLive(ctx context.Context, city, district string, minQuantity int) ([]*entity.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	city = strings.ToLower(city)
	district = strings.ToLower(district)

	var out []*entity.Donation
	for _, d := range m.donations {
		if d.Collected || d.Quantity < minQuantity {
			continue
		}
		if city != "" && !strings.Contains(strings.ToLower(d.City), city) {
			continue
		}
		if district != "" && !strings.Contains(strings.ToLower(d.District), district) {
			continue
		}
		copied := *d
		out = append(out, &copied)
	}
	return out, nil
}

func (m *memoryDonationRepo) ListCollected(ctx context.Context) ([]*entity.Donation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*entity.Donation
	for _, d := range m.donations {
		if d.Collected {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memoryDonorRepo struct {
	mu     sync.Mutex
	donors map[string]*entity.Donor
}

func newMemoryDonorRepo() *memoryDonorRepo {
	return &memoryDonorRepo{donors: make(map[string]*entity.Donor)}
}

func (m *memoryDonorRepo) GetByEmail(ctx context.Context, email string) (*entity.Donor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.donors[email]
	if !ok {
		return nil, errors.NotFound("Donor", nil)
	}
	copied := *d
	return &copied, nil
}

func (m *memoryDonorRepo) Save(ctx context.Context, donor *entity.Donor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *donor
	m.donors[donor.Email] = &stored
	return nil
}

type memoryRecipientRepo struct {
	mu         sync.Mutex
	recipients map[string]*entity.Recipient
}

func newMemoryRecipientRepo() *memoryRecipientRepo {
	return &memoryRecipientRepo{recipients: make(map[string]*entity.Recipient)}
}

func (m *memoryRecipientRepo) GetByEmail(ctx context.Context, email string) (*entity.Recipient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.recipients[email]
	if !ok {
		return nil, errors.NotFound("Recipient", nil)
	}
	copied := *r
	return &copied, nil
}

func (m *memoryRecipientRepo) Save(ctx context.Context, recipient *entity.Recipient) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *recipient
	m.recipients[recipient.Email] = &stored
	return nil
}

// memoryAccountRegistry honors the cross-role exclusivity contract the
// Firestore registry enforces transactionally.
type memoryAccountRegistry struct {
	mu         sync.Mutex
	donorRepo  *memoryDonorRepo
	recipRepo  *memoryRecipientRepo
}

func newMemoryAccountRegistry(donorRepo *memoryDonorRepo, recipRepo *memoryRecipientRepo) *memoryAccountRegistry {
	return &memoryAccountRegistry{donorRepo: donorRepo, recipRepo: recipRepo}
}

func (m *memoryAccountRegistry) RegisterOrRefresh(ctx context.Context, role, email, name, picture string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	if role == entity.RoleDonor {
		if _, err := m.recipRepo.GetByEmail(ctx, email); err == nil {
			return errors.Conflict("User already registered as recipient")
		}
		donor, err := m.donorRepo.GetByEmail(ctx, email)
		if err != nil {
			donor = entity.NewDonor(email, name)
		}
		donor.ProfilePicture = picture
		donor.LastLoginAt = now
		return m.donorRepo.Save(ctx, donor)
	}

	if _, err := m.donorRepo.GetByEmail(ctx, email); err == nil {
		return errors.Conflict("User already registered as donor")
	}
	recipient, err := m.recipRepo.GetByEmail(ctx, email)
	if err != nil {
		recipient = entity.NewRecipient(email, name)
	}
	recipient.ProfilePicture = picture
	recipient.LastLoginAt = now
	return m.recipRepo.Save(ctx, recipient)
}

type fakeIdentity struct {
	Email   string
	Name    string
	Picture string
}

type fakeVerifier struct {
	identities map[string]*fakeIdentity
}

func (f *fakeVerifier) Verify(ctx context.Context, idToken string) (string, string, string, error) {
	identity, ok := f.identities[idToken]
	if !ok {
		return "", "", "", fmt.Errorf("token verification failed")
	}
	return identity.Email, identity.Name, identity.Picture, nil
}

type fakeTokenService struct{}

func (f *fakeTokenService) Issue(email, role string) (string, error) {
	return "session:" + email + ":" + role, nil
}

func (f *fakeTokenService) Validate(tokenString string) (string, string, error) {
	parts := strings.Split(tokenString, ":")
	if len(parts) != 3 || parts[0] != "session" {
		return "", "", errors.InvalidToken("Invalid or expired token", nil)
	}
	return parts[1], parts[2], nil
}

func seedDonor(t *testing.T, repo *memoryDonorRepo, email string, complete bool) *entity.Donor {
	t.Helper()
	donor := entity.NewDonor(email, "Donor "+email)
	if complete {
		donor.PhoneNumber = "01700000000"
		donor.Address = "House 1, Road 2"
		donor.RecomputeProfileComplete()
		if !donor.ProfileComplete {
			t.Fatalf("seed donor should be complete")
		}
	}
	if err := repo.Save(context.Background(), donor); err != nil {
		t.Fatalf("failed to seed donor: %v", err)
	}
	return donor
}

func seedRecipient(t *testing.T, repo *memoryRecipientRepo, email, org string) *entity.Recipient {
	t.Helper()
	recipient := entity.NewRecipient(email, "Recipient "+email)
	recipient.OrganizationName = org
	recipient.LicenseNumber = "LIC-001"
	recipient.RecomputeProfileComplete()
	if err := repo.Save(context.Background(), recipient); err != nil {
		t.Fatalf("failed to seed recipient: %v", err)
	}
	return recipient
}
