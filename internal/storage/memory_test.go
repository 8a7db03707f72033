package storage

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/lokly/internal/models"
)

var referencePattern = regexp.MustCompile(`^LK\d{6}[0-9A-F]{4}$`)

func seededStore(t *testing.T) *Memory {
	t.Helper()
	store := NewMemory()
	require.NoError(t, Seed(context.Background(), store))
	return store
}

func TestListExperiencesSkipsInactive(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	inactive := models.Experience{
		Title:       "Retired Walking Tour",
		Description: "No longer offered",
		Location:    "Varanasi",
		Category:    "Tour",
		Rating:      "4.0",
		IsActive:    false,
	}
	require.NoError(t, store.CreateExperience(ctx, &inactive))

	listed, err := store.ListExperiences(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	for _, experience := range listed {
		assert.True(t, experience.IsActive)
	}

	byCategory, err := store.ListExperiencesByCategory(ctx, "tour")
	require.NoError(t, err)
	assert.Empty(t, byCategory)

	found, err := store.SearchExperiences(ctx, "walking")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearchExperiences(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		query      string
		wantTitles []string
	}{
		{
			name:       "title match is case-insensitive",
			query:      "KATHAK",
			wantTitles: []string{"Traditional Kathak Dance Class"},
		},
		{
			name:       "matches location",
			query:      "old city",
			wantTitles: []string{"Authentic Banarasi Cooking"},
		},
		{
			name:       "matches description",
			query:      "footwork",
			wantTitles: []string{"Traditional Kathak Dance Class"},
		},
		{
			name:       "matches category",
			query:      "food",
			wantTitles: []string{"Authentic Banarasi Cooking"},
		},
		{
			name:       "shared substring matches both",
			query:      "varanasi",
			wantTitles: []string{"Traditional Kathak Dance Class", "Authentic Banarasi Cooking"},
		},
		{
			name:       "no match",
			query:      "pottery",
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := store.SearchExperiences(ctx, tt.query)
			require.NoError(t, err)

			var titles []string
			for _, experience := range found {
				titles = append(titles, experience.Title)
			}
			assert.ElementsMatch(t, tt.wantTitles, titles)
		})
	}
}

func TestListExperiencesByCategory(t *testing.T) {
	store := seededStore(t)

	found, err := store.ListExperiencesByCategory(context.Background(), "dAnCe")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Traditional Kathak Dance Class", found[0].Title)
}

func TestListTimeSlotsFiltersUnavailable(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	blocked := models.TimeSlot{ExperienceID: 1, Name: "Late Night", StartTime: "10:00", EndTime: "11:00", IsAvailable: false}
	require.NoError(t, store.CreateTimeSlot(ctx, &blocked))

	slots, err := store.ListTimeSlots(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, slots, 4)
	for _, slot := range slots {
		assert.True(t, slot.IsAvailable)
		assert.Equal(t, uint(1), slot.ExperienceID)
	}
}

func TestCreateBookingRoundtrip(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	packageID := uint(1)
	booking := models.Booking{
		UserID:        7,
		ExperienceID:  1,
		PackageID:     &packageID,
		TimeSlotID:    2,
		SelectedDate:  "2026-09-12",
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		Phone:         "+919800000000",
		PaymentMethod: models.PaymentMethodUPI,
		TotalAmount:   76672,
	}
	require.NoError(t, store.CreateBooking(ctx, &booking))

	assert.Regexp(t, referencePattern, booking.Reference)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.NotZero(t, booking.ID)

	stored, err := store.GetBookingByReference(ctx, booking.Reference)
	require.NoError(t, err)
	assert.Equal(t, booking.Reference, stored.Reference)
	assert.Equal(t, booking.TotalAmount, stored.TotalAmount)
	assert.Equal(t, booking.Email, stored.Email)

	require.NotNil(t, stored.Experience)
	assert.Equal(t, "Traditional Kathak Dance Class", stored.Experience.Title)
	require.NotNil(t, stored.Package)
	assert.Equal(t, "Single Session", stored.Package.Name)
	require.NotNil(t, stored.TimeSlot)
	assert.Equal(t, "Afternoon", stored.TimeSlot.Name)
}

func TestDoubleBookingIsAccepted(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	newBooking := func() models.Booking {
		return models.Booking{
			UserID:        1,
			ExperienceID:  1,
			TimeSlotID:    1,
			SelectedDate:  "2026-09-12",
			FullName:      "Asha Verma",
			Email:         "asha@example.com",
			Phone:         "+919800000000",
			PaymentMethod: models.PaymentMethodCard,
			TotalAmount:   76672,
		}
	}

	first := newBooking()
	second := newBooking()
	require.NoError(t, store.CreateBooking(ctx, &first))
	require.NoError(t, store.CreateBooking(ctx, &second))
	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestListBookingsByEmailAndUser(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	for _, booking := range []models.Booking{
		{UserID: 1, ExperienceID: 1, TimeSlotID: 1, SelectedDate: "2026-09-12", FullName: "Asha Verma", Email: "asha@example.com", Phone: "1", PaymentMethod: "upi", TotalAmount: 76672},
		{UserID: 1, ExperienceID: 2, TimeSlotID: 5, SelectedDate: "2026-09-13", FullName: "Asha Verma", Email: "asha@example.com", Phone: "1", PaymentMethod: "upi", TotalAmount: 102272},
		{UserID: 2, ExperienceID: 2, TimeSlotID: 6, SelectedDate: "2026-09-14", FullName: "Nikhil Rao", Email: "nikhil@example.com", Phone: "2", PaymentMethod: "card", TotalAmount: 102272},
	} {
		b := booking
		require.NoError(t, store.CreateBooking(ctx, &b))
	}

	byEmail, err := store.ListBookingsByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)
	for _, booking := range byEmail {
		require.NotNil(t, booking.Experience)
		require.NotNil(t, booking.TimeSlot)
	}

	byUser, err := store.ListBookingsByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "nikhil@example.com", byUser[0].Email)
}

func TestGetBookingNotFound(t *testing.T) {
	store := seededStore(t)

	_, err := store.GetBookingByReference(context.Background(), "LK260831FFFF")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserLookups(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	user := models.User{Username: "asha", Email: "asha@example.com", PasswordHash: "x", FullName: "Asha Verma"}
	require.NoError(t, store.CreateUser(ctx, &user))
	require.NotZero(t, user.ID)

	byID, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha", byID.Username)

	byName, err := store.GetUserByUsername(ctx, "asha")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := store.GetUserByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = store.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
