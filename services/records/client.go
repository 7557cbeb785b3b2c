// File: services/records/client.go
package records

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"roomly/models"
)

// Client is the interface to the external booking-records service, which owns
// all booking, room and equipment data. The scheduling engine reads existing
// bookings through it and writes confirmed occurrences back through it.
type Client interface {
	ListBookings(ctx context.Context, roomID string, from, to time.Time) ([]models.Booking, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// CreateBookingRequest is the payload for a single booking-create call.
type CreateBookingRequest struct {
	RoomID  string    `json:"roomId"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Purpose string    `json:"purpose,omitempty"`
	Notes   string    `json:"notes,omitempty"`
}

// HTTPClient implements Client over JSON/HTTP. Calls go through a circuit
// breaker so a dead collaborator fails fast instead of tying up requests.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *zap.Logger
}

// NewHTTPClient builds a records client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "booking-records",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("records breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		logger:  logger,
	}
}

// ListBookings fetches the bookings for a room (all rooms when roomID is
// empty) whose intervals may intersect [from, to). Timestamps are exchanged
// as RFC3339 instants.
func (c *HTTPClient) ListBookings(ctx context.Context, roomID string, from, to time.Time) ([]models.Booking, error) {
	query := url.Values{}
	if roomID != "" {
		query.Set("roomId", roomID)
	}
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))

	body, err := c.do(ctx, http.MethodGet, "/bookings?"+query.Encode(), nil)
	if err != nil {
		return nil, newTransportError("list bookings", err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal(body, &bookings); err != nil {
		return nil, newTransportError("list bookings", fmt.Errorf("decode response: %w", err))
	}
	return bookings, nil
}

// CreateBooking submits one booking-create request and returns the created
// record.
func (c *HTTPClient) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, newTransportError("create booking", fmt.Errorf("encode request: %w", err))
	}

	body, err := c.do(ctx, http.MethodPost, "/bookings", payload)
	if err != nil {
		return nil, newTransportError("create booking", err)
	}

	var booking models.Booking
	if err := json.Unmarshal(body, &booking); err != nil {
		return nil, newTransportError("create booking", fmt.Errorf("decode response: %w", err))
	}
	return &booking, nil
}

// ListRooms fetches the bookable rooms.
func (c *HTTPClient) ListRooms(ctx context.Context) ([]models.Room, error) {
	body, err := c.do(ctx, http.MethodGet, "/rooms", nil)
	if err != nil {
		return nil, newTransportError("list rooms", err)
	}

	var rooms []models.Room
	if err := json.Unmarshal(body, &rooms); err != nil {
		return nil, newTransportError("list rooms", fmt.Errorf("decode response: %w", err))
	}
	return rooms, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 256))
		}
		return body, nil
	})
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
