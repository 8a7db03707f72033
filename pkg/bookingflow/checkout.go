package bookingflow

import (
	"context"
	"errors"

	"github.com/farellandr/lokly/internal/models"
)

// Checkout states. A failed submission returns to form entry with the form
// kept, so the user can correct and resubmit. Confirmed is terminal.
type State int

const (
	StateFormEntry State = iota
	StateSubmitting
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateFormEntry:
		return "form_entry"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Form is the attendee detail entered at checkout.
type Form struct {
	FullName      string
	Email         string
	Phone         string
	PaymentMethod string
}

var errInvalidForm = errors.New("all attendee fields are required and payment method must be upi or card")

func (f Form) validate() error {
	if f.FullName == "" || f.Email == "" || f.Phone == "" {
		return errInvalidForm
	}
	if f.PaymentMethod != models.PaymentMethodUPI && f.PaymentMethod != models.PaymentMethodCard {
		return errInvalidForm
	}
	return nil
}

// Checkout drives a selection through submission and confirmation.
type Checkout struct {
	client  *Client
	store   *Store
	state   State
	form    Form
	booking *models.Booking
	lastErr error
}

func NewCheckout(client *Client, store *Store) *Checkout {
	return &Checkout{client: client, store: store, state: StateFormEntry}
}

func (c *Checkout) State() State { return c.state }

// Form returns the attendee detail from the last submission attempt, kept
// across failures so the form stays populated.
func (c *Checkout) Form() Form { return c.form }

// Booking returns the confirmed booking, nil before confirmation.
func (c *Checkout) Booking() *models.Booking { return c.booking }

func (c *Checkout) Err() error { return c.lastErr }

// Submit posts the booking built from the stored selection and the given
// form. On success the selection is cleared and the checkout is confirmed;
// on failure the user may resubmit.
func (c *Checkout) Submit(ctx context.Context, form Form) (*models.Booking, error) {
	if c.state != StateFormEntry && c.state != StateFailed {
		return nil, errors.New("checkout already " + c.state.String())
	}
	c.form = form

	sel, err := c.store.Load()
	if err != nil {
		c.lastErr = err
		return nil, err
	}

	if err := form.validate(); err != nil {
		c.state = StateFormEntry
		c.lastErr = err
		return nil, err
	}

	c.state = StateSubmitting

	packageID := sel.Package.ID
	booking, err := c.client.CreateBooking(ctx, BookingRequest{
		ExperienceID:  sel.ExperienceID,
		PackageID:     &packageID,
		TimeSlotID:    sel.TimeSlot.ID,
		SelectedDate:  sel.SelectedDate,
		FullName:      form.FullName,
		Email:         form.Email,
		Phone:         form.Phone,
		PaymentMethod: form.PaymentMethod,
		TotalAmount:   Total(sel.Package.Price),
	})
	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		return nil, err
	}

	c.state = StateConfirmed
	c.booking = booking
	c.lastErr = nil
	if err := c.store.Clear(); err != nil {
		return booking, err
	}
	return booking, nil
}

// Confirmation re-fetches the booking by its reference, the same read the
// confirmation screen performs.
func (c *Checkout) Confirmation(ctx context.Context) (*models.Booking, error) {
	if c.state != StateConfirmed || c.booking == nil {
		return nil, errors.New("no confirmed booking")
	}
	return c.client.GetBooking(ctx, c.booking.Reference)
}
