package bookingflow

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/lokly/internal/models"
	"github.com/farellandr/lokly/internal/server"
	"github.com/farellandr/lokly/internal/session"
	"github.com/farellandr/lokly/internal/storage"
)

func newFlowFixture(t *testing.T) (*Client, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemory()
	require.NoError(t, storage.Seed(context.Background(), store))

	srv := httptest.NewServer(server.NewRouter(store, session.NewMemoryStore()))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	flowStore, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return client, flowStore
}

func validForm() Form {
	return Form{
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		Phone:         "+919800000000",
		PaymentMethod: models.PaymentMethodUPI,
	}
}

// selectFromAPI walks the availability flow: fetch the experience, pick a
// slot and package, save the selection.
func selectFromAPI(t *testing.T, client *Client, flowStore *Store) Selection {
	t.Helper()
	ctx := context.Background()

	experience, err := client.GetExperience(ctx, 1)
	require.NoError(t, err)

	slots, err := client.ListTimeSlots(ctx, experience.ID)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	packages, err := client.ListPackages(ctx, experience.ID)
	require.NoError(t, err)
	require.NotEmpty(t, packages)

	sel := Selection{
		ExperienceID: experience.ID,
		Experience:   *experience,
		TimeSlot:     slots[0],
		Package:      packages[0],
		SelectedDate: "2026-09-12",
	}
	require.NoError(t, flowStore.Save(sel))
	return sel
}

func TestCheckoutHappyPath(t *testing.T) {
	client, flowStore := newFlowFixture(t)
	sel := selectFromAPI(t, client, flowStore)
	ctx := context.Background()

	checkout := NewCheckout(client, flowStore)
	assert.Equal(t, StateFormEntry, checkout.State())

	booking, err := checkout.Submit(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, checkout.State())
	assert.Regexp(t, `^LK\d{6}[0-9A-F]{4}$`, booking.Reference)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, Total(sel.Package.Price), booking.TotalAmount)
	assert.Equal(t, 76672, booking.TotalAmount)

	// Confirmation is a fresh read keyed by the reference.
	confirmed, err := checkout.Confirmation(ctx)
	require.NoError(t, err)
	assert.Equal(t, booking.Reference, confirmed.Reference)
	require.NotNil(t, confirmed.Experience)
	assert.Equal(t, sel.Experience.Title, confirmed.Experience.Title)

	// The selection is consumed; a reload shows the no-booking-data state.
	_, err = flowStore.Load()
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestCheckoutInvalidFormStaysInFormEntry(t *testing.T) {
	client, flowStore := newFlowFixture(t)
	selectFromAPI(t, client, flowStore)
	ctx := context.Background()

	checkout := NewCheckout(client, flowStore)

	tests := []struct {
		name   string
		mutate func(*Form)
	}{
		{name: "missing name", mutate: func(f *Form) { f.FullName = "" }},
		{name: "missing email", mutate: func(f *Form) { f.Email = "" }},
		{name: "missing phone", mutate: func(f *Form) { f.Phone = "" }},
		{name: "bad payment method", mutate: func(f *Form) { f.PaymentMethod = "cash" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, err := checkout.Submit(ctx, form)
			require.Error(t, err)
			assert.Equal(t, StateFormEntry, checkout.State())
		})
	}

	// The selection is untouched by failed attempts.
	_, err := flowStore.Load()
	require.NoError(t, err)
}

func TestCheckoutServerRejectionAllowsResubmit(t *testing.T) {
	client, flowStore := newFlowFixture(t)
	sel := selectFromAPI(t, client, flowStore)
	ctx := context.Background()

	// A slot from the other experience trips the referential check.
	broken := sel
	broken.TimeSlot = models.TimeSlot{ID: 5, ExperienceID: 2, Name: "Morning"}
	require.NoError(t, flowStore.Save(broken))

	checkout := NewCheckout(client, flowStore)
	_, err := checkout.Submit(ctx, validForm())
	require.Error(t, err)
	assert.Equal(t, StateFailed, checkout.State())
	assert.Equal(t, validForm(), checkout.Form())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)

	// Fix the selection and resubmit from the failed state.
	require.NoError(t, flowStore.Save(sel))
	booking, err := checkout.Submit(ctx, validForm())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, checkout.State())
	assert.NotEmpty(t, booking.Reference)
}

func TestCheckoutWithoutSelection(t *testing.T) {
	client, flowStore := newFlowFixture(t)

	checkout := NewCheckout(client, flowStore)
	_, err := checkout.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Equal(t, StateFormEntry, checkout.State())
}

func TestCheckoutIsSingleUse(t *testing.T) {
	client, flowStore := newFlowFixture(t)
	selectFromAPI(t, client, flowStore)
	ctx := context.Background()

	checkout := NewCheckout(client, flowStore)
	_, err := checkout.Submit(ctx, validForm())
	require.NoError(t, err)

	_, err = checkout.Submit(ctx, validForm())
	assert.Error(t, err)
	assert.Equal(t, StateConfirmed, checkout.State())
}
