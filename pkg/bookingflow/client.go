package bookingflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/farellandr/lokly/internal/models"
)

// APIError is a non-2xx response from the booking API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is a thin JSON client over the booking API. The cookie jar keeps
// the session cookie across calls.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: baseURL, http: &http.Client{Jar: jar}}, nil
}

type BookingRequest struct {
	ExperienceID  uint   `json:"experienceId"`
	PackageID     *uint  `json:"packageId,omitempty"`
	TimeSlotID    uint   `json:"timeSlotId"`
	SelectedDate  string `json:"selectedDate"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
	TotalAmount   int    `json:"totalAmount"`
}

func (c *Client) GetExperience(ctx context.Context, id uint) (*models.Experience, error) {
	var experience models.Experience
	if err := c.get(ctx, fmt.Sprintf("/api/experiences/%d", id), &experience); err != nil {
		return nil, err
	}
	return &experience, nil
}

func (c *Client) ListTimeSlots(ctx context.Context, experienceID uint) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	if err := c.get(ctx, fmt.Sprintf("/api/experiences/%d/timeslots", experienceID), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) ListPackages(ctx context.Context, experienceID uint) ([]models.Package, error) {
	var packages []models.Package
	if err := c.get(ctx, fmt.Sprintf("/api/experiences/%d/packages", experienceID), &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.post(ctx, "/api/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) GetBooking(ctx context.Context, reference string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.get(ctx, "/api/bookings/"+url.PathEscape(reference), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Message = body.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
