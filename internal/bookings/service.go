package bookings

import (
	"context"
	"errors"
	"time"

	"agromart-backend/internal/models"
	"agromart-backend/internal/pkg/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type CreateBookingInput struct {
	ResourceID       uuid.UUID
	FarmerID         uuid.UUID
	FarmerName       string
	FarmerContact    string
	FarmerEmail      string
	Date             time.Time
	DurationHours    int
	PartialPayment   bool
	TotalAmount      float64
	DeliveryLocation string
	DeliveryAddress  string
}

// CreateBooking records a booking request against an existing resource.
// Status always starts at Pending.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if in.ResourceID == uuid.Nil {
		return nil, apperr.Validation("resource_id is required")
	}
	if in.FarmerID == uuid.Nil {
		return nil, apperr.Validation("farmer_id is required")
	}

	var exists int64
	if err := s.DB.WithContext(ctx).Model(&models.Resource{}).Where("resource_id = ?", in.ResourceID).Count(&exists).Error; err != nil {
		return nil, apperr.Store(err)
	}
	if exists == 0 {
		return nil, apperr.NotFound("Resource not found")
	}

	booking := &models.Booking{
		ResourceID:       in.ResourceID,
		FarmerID:         in.FarmerID,
		FarmerName:       in.FarmerName,
		FarmerContact:    in.FarmerContact,
		FarmerEmail:      in.FarmerEmail,
		Date:             in.Date,
		DurationHours:    in.DurationHours,
		PartialPayment:   in.PartialPayment,
		TotalAmount:      in.TotalAmount,
		DeliveryLocation: in.DeliveryLocation,
		DeliveryAddress:  in.DeliveryAddress,
		Status:           models.BookingStatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(booking).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return booking, nil
}

// BulkCreateBookings validates every entry before inserting any of them.
func (s *Service) BulkCreateBookings(ctx context.Context, inputs []CreateBookingInput) ([]models.Booking, error) {
	if len(inputs) == 0 {
		return nil, apperr.Validation("No bookings provided")
	}

	bookingList := make([]models.Booking, 0, len(inputs))
	for _, in := range inputs {
		if in.ResourceID == uuid.Nil {
			return nil, apperr.Validation("resource_id is required for every booking")
		}
		if in.FarmerID == uuid.Nil {
			return nil, apperr.Validation("farmer_id is required for every booking")
		}
		bookingList = append(bookingList, models.Booking{
			ResourceID:       in.ResourceID,
			FarmerID:         in.FarmerID,
			FarmerName:       in.FarmerName,
			FarmerContact:    in.FarmerContact,
			FarmerEmail:      in.FarmerEmail,
			Date:             in.Date,
			DurationHours:    in.DurationHours,
			PartialPayment:   in.PartialPayment,
			TotalAmount:      in.TotalAmount,
			DeliveryLocation: in.DeliveryLocation,
			DeliveryAddress:  in.DeliveryAddress,
			Status:           models.BookingStatusPending,
		})
	}
	if err := s.DB.WithContext(ctx).Create(&bookingList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return bookingList, nil
}

func (s *Service) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	var bookingList []models.Booking
	if err := s.DB.WithContext(ctx).Order("date DESC").Find(&bookingList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return bookingList, nil
}

func (s *Service) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.WithContext(ctx).Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Booking not found")
		}
		return nil, apperr.Store(err)
	}
	return &booking, nil
}

// UpdateStatus moves a booking to Pending, Confirmed or Rejected.
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, apperr.Validation("Invalid status value")
	}
	booking, err := s.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Model(booking).Update("status", status).Error; err != nil {
		return nil, apperr.Store(err)
	}
	booking.Status = status
	return booking, nil
}

func (s *Service) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("booking_id = ?", bookingID).Delete(&models.Booking{})
	if res.Error != nil {
		return apperr.Store(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Booking not found")
	}
	return nil
}

// BulkDeleteBookings removes the given bookings and reports how many existed.
func (s *Service) BulkDeleteBookings(ctx context.Context, bookingIDs []uuid.UUID) (int64, error) {
	if len(bookingIDs) == 0 {
		return 0, apperr.Validation("No booking ids provided")
	}
	res := s.DB.WithContext(ctx).Where("booking_id IN ?", bookingIDs).Delete(&models.Booking{})
	if res.Error != nil {
		return 0, apperr.Store(res.Error)
	}
	return res.RowsAffected, nil
}

// BookingView is a booking enriched with its resource name for table display.
type BookingView struct {
	models.Booking
	ResourceName string `json:"resource_name"`
}

// GetFarmerBookings lists a farmer's bookings, newest first, with resource names.
func (s *Service) GetFarmerBookings(ctx context.Context, farmerID uuid.UUID) ([]BookingView, error) {
	var bookingList []models.Booking
	if err := s.DB.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("date DESC").
		Find(&bookingList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return s.enrich(ctx, bookingList)
}

// GetBookingsForOwner lists bookings placed against resources the user owns.
func (s *Service) GetBookingsForOwner(ctx context.Context, ownerID uuid.UUID) ([]BookingView, error) {
	var resourceIDs []uuid.UUID
	if err := s.DB.WithContext(ctx).Model(&models.Resource{}).
		Where("owner_id = ?", ownerID).
		Pluck("resource_id", &resourceIDs).Error; err != nil {
		return nil, apperr.Store(err)
	}
	if len(resourceIDs) == 0 {
		return []BookingView{}, nil
	}
	var bookingList []models.Booking
	if err := s.DB.WithContext(ctx).
		Where("resource_id IN ?", resourceIDs).
		Order("date DESC").
		Find(&bookingList).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return s.enrich(ctx, bookingList)
}

// enrich attaches resource names with a single lookup instead of one query
// per booking.
func (s *Service) enrich(ctx context.Context, bookingList []models.Booking) ([]BookingView, error) {
	ids := make([]uuid.UUID, 0, len(bookingList))
	seen := map[uuid.UUID]bool{}
	for _, b := range bookingList {
		if !seen[b.ResourceID] {
			seen[b.ResourceID] = true
			ids = append(ids, b.ResourceID)
		}
	}

	names := map[uuid.UUID]string{}
	if len(ids) > 0 {
		var resourceList []models.Resource
		if err := s.DB.WithContext(ctx).Where("resource_id IN ?", ids).Find(&resourceList).Error; err != nil {
			return nil, apperr.Store(err)
		}
		for _, r := range resourceList {
			names[r.ResourceID] = r.Name
		}
	}

	views := make([]BookingView, 0, len(bookingList))
	for _, b := range bookingList {
		name, ok := names[b.ResourceID]
		if !ok {
			name = "Unknown Resource"
		}
		views = append(views, BookingView{Booking: b, ResourceName: name})
	}
	return views, nil
}
