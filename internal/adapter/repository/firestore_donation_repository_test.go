package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"connectfood/internal/domain/entity"
	"connectfood/pkg/errors"
)

func liveDonation(city, district string, quantity int, createdAt time.Time) *entity.Donation {
	return &entity.Donation{
		City:      city,
		District:  district,
		Quantity:  quantity,
		CreatedAt: createdAt,
	}
}

func TestFilterLive(t *testing.T) {
	now := time.Now()
	collected := liveDonation("Dhaka", "Gulshan", 100, now)
	collected.Collected = true

	donations := []*entity.Donation{
		liveDonation("Dhaka", "Gulshan", 50, now.Add(-time.Hour)),
		liveDonation("Chattogram", "Pahartali", 5, now.Add(-2*time.Hour)),
		liveDonation("Dhaka", "Mirpur", 20, now),
		collected,
	}

	tests := []struct {
		name     string
		city     string
		district string
		minQty   int
		want     int
	}{
		{"no filters", "", "", 0, 3},
		{"city substring case-insensitive", "dhak", "", 0, 2},
		{"district filter", "", "gulshan", 0, 1},
		{"min quantity", "", "", 10, 2},
		{"combined", "dhaka", "mirpur", 10, 1},
		{"nothing matches", "sylhet", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterLive(donations, tt.city, tt.district, tt.minQty)
			assert.Len(t, got, tt.want)
			for _, d := range got {
				assert.False(t, d.Collected)
				assert.GreaterOrEqual(t, d.Quantity, tt.minQty)
			}
		})
	}
}

func TestFilterLiveOrdersNewestFirst(t *testing.T) {
	now := time.Now()
	donations := []*entity.Donation{
		liveDonation("Dhaka", "Gulshan", 10, now.Add(-time.Hour)),
		liveDonation("Dhaka", "Gulshan", 10, now),
	}

	got := filterLive(donations, "", "", 0)

	assert.Len(t, got, 2)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
}

func TestStoreErrorClassification(t *testing.T) {
	unavailable := storeError("store down", status.Error(codes.Unavailable, "unavailable"))
	assert.Equal(t, "UNAVAILABLE", unavailable.Code)

	timedOut := storeError("store slow", status.Error(codes.DeadlineExceeded, "deadline"))
	assert.Equal(t, "UNAVAILABLE", timedOut.Code)

	other := storeError("boom", status.Error(codes.Internal, "internal"))
	assert.Equal(t, "INTERNAL_ERROR", other.Code)
}

func TestStoreErrorKeepsCause(t *testing.T) {
	cause := status.Error(codes.Unavailable, "unavailable")
	appErr := storeError("store down", cause)
	assert.True(t, errors.Is(appErr, "UNAVAILABLE"))
	assert.ErrorIs(t, appErr, cause)
}
