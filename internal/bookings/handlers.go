package bookings

import (
	"fmt"
	"time"

	"agromart-backend/internal/pkg/apperr"
	"agromart-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

type bookingBody struct {
	ResourceID       string    `json:"resource_id"`
	FarmerID         string    `json:"farmer_id"`
	FarmerName       string    `json:"farmer_name"`
	FarmerContact    string    `json:"farmer_contact"`
	FarmerEmail      string    `json:"farmer_email"`
	Date             time.Time `json:"date"`
	DurationHours    int       `json:"duration_hours"`
	PartialPayment   bool      `json:"partial_payment"`
	TotalAmount      float64   `json:"total_amount"`
	DeliveryLocation string    `json:"delivery_location"`
	DeliveryAddress  string    `json:"delivery_address"`
}

func (b bookingBody) toInput() (CreateBookingInput, error) {
	resourceID, err := uuid.Parse(b.ResourceID)
	if err != nil {
		return CreateBookingInput{}, apperr.Validation("Invalid resource_id format")
	}
	farmerID, err := uuid.Parse(b.FarmerID)
	if err != nil {
		return CreateBookingInput{}, apperr.Validation("Invalid farmer_id format")
	}
	return CreateBookingInput{
		ResourceID:       resourceID,
		FarmerID:         farmerID,
		FarmerName:       b.FarmerName,
		FarmerContact:    b.FarmerContact,
		FarmerEmail:      b.FarmerEmail,
		Date:             b.Date,
		DurationHours:    b.DurationHours,
		PartialPayment:   b.PartialPayment,
		TotalAmount:      b.TotalAmount,
		DeliveryLocation: b.DeliveryLocation,
		DeliveryAddress:  b.DeliveryAddress,
	}, nil
}

// POST /api/v1/bookings/create-booking
func (h *Handlers) CreateBooking(c *fiber.Ctx) error {
	var body bookingBody
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	in, err := body.toInput()
	if err != nil {
		return response.Fail(c, err)
	}
	booking, err := h.Service.CreateBooking(c.Context(), in)
	if err != nil {
		return response.Fail(c, err)
	}
	msg := "Booking request submitted. Await confirmation."
	if booking.PartialPayment {
		msg = "Booking request submitted with partial payment. Await confirmation."
	}
	return response.Created(c, msg, booking, nil)
}

// POST /api/v1/bookings/bulk-create
func (h *Handlers) BulkCreateBookings(c *fiber.Ctx) error {
	var body struct {
		Bookings []bookingBody `json:"bookings"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	inputs := make([]CreateBookingInput, 0, len(body.Bookings))
	for _, b := range body.Bookings {
		in, err := b.toInput()
		if err != nil {
			return response.Fail(c, err)
		}
		inputs = append(inputs, in)
	}
	created, err := h.Service.BulkCreateBookings(c.Context(), inputs)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Created(c, fmt.Sprintf("%d bookings created successfully", len(created)), created, nil)
}

// GET /api/v1/bookings/get-all-bookings
func (h *Handlers) GetAllBookings(c *fiber.Ctx) error {
	bookingList, err := h.Service.GetAllBookings(c.Context())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Bookings fetched successfully", bookingList, nil)
}

// GET /api/v1/bookings/get-booking/:booking_id
func (h *Handlers) GetBookingByID(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("booking_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid booking_id format"))
	}
	booking, err := h.Service.GetBookingByID(c.Context(), bookingID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Booking fetched successfully", booking, nil)
}

// PATCH /api/v1/bookings/update-status/:booking_id
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("booking_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid booking_id format"))
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	booking, err := h.Service.UpdateStatus(c.Context(), bookingID, body.Status)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Booking status updated", booking, nil)
}

// DELETE /api/v1/bookings/delete-booking/:booking_id
func (h *Handlers) DeleteBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("booking_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid booking_id format"))
	}
	if err := h.Service.DeleteBooking(c.Context(), bookingID); err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Booking deleted successfully", nil, nil)
}

// POST /api/v1/bookings/bulk-delete
func (h *Handlers) BulkDeleteBookings(c *fiber.Ctx) error {
	var body struct {
		BookingIDs []string `json:"booking_ids"`
	}
	if err := c.BodyParser(&body); err != nil {
		return response.Fail(c, apperr.Validation("Invalid request body"))
	}
	ids := make([]uuid.UUID, 0, len(body.BookingIDs))
	for _, raw := range body.BookingIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.Fail(c, apperr.Validation("Invalid booking id: %s", raw))
		}
		ids = append(ids, id)
	}
	deleted, err := h.Service.BulkDeleteBookings(c.Context(), ids)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, fmt.Sprintf("%d bookings deleted successfully", deleted), nil, nil)
}

// GET /api/v1/bookings/user-bookings/:user_id
func (h *Handlers) GetFarmerBookings(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid user_id format"))
	}
	views, err := h.Service.GetFarmerBookings(c.Context(), userID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Bookings fetched successfully", views, nil)
}

// GET /api/v1/bookings/owner-bookings/:user_id
func (h *Handlers) GetBookingsForOwner(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return response.Fail(c, apperr.Validation("Invalid user_id format"))
	}
	views, err := h.Service.GetBookingsForOwner(c.Context(), userID)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Success(c, "Bookings for owned resources fetched successfully", views, nil)
}
