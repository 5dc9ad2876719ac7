package services

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	intconfig "vahanpe/internal/config"
	"vahanpe/internal/domain"
	"vahanpe/internal/domain/models"
	"vahanpe/internal/notify"
	"vahanpe/internal/repositories"
	"vahanpe/internal/utils"
)

// BookingService owns the booking lifecycle: identifier allocation at
// creation, admin status updates through the transition rules, and event
// emission after a successful commit.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	CatalogRepo repositories.CatalogRepository
	Dispatcher  notify.Dispatcher
	IDTag       string
	RequestID   string

	// Now is injectable for month-rollover tests.
	Now func() time.Time

	DB *sql.DB
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) catalog() repositories.CatalogRepository {
	if s.CatalogRepo.DB != nil {
		return s.CatalogRepo
	}
	return repositories.CatalogRepository{DB: s.db()}
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create allocates a booking identifier, persists the booking in its
// initial state and emits the confirmation event. Allocation failure means
// no record is created.
func (s BookingService) Create(ctx context.Context, req models.NewBooking) (models.Booking, error) {
	if req.ServiceType != models.CategoryVehicle && req.ServiceType != models.CategoryDrivingLicence {
		return models.Booking{}, domain.ValidationError{Field: "serviceType", Msg: "must be Vehicle or Driving Licence"}
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return models.Booking{}, domain.ValidationError{Field: "customerPhone", Msg: "required"}
	}
	if strings.TrimSpace(req.ServiceSelected) == "" {
		return models.Booking{}, domain.ValidationError{Field: "serviceSelected", Msg: "required"}
	}

	title := req.ServiceSelected
	price := req.Price
	// Price is a snapshot of the catalog at creation time; the client's
	// figure is only trusted for services missing from the catalog.
	if svc, err := s.catalog().GetByID(req.ServiceSelected); err == nil {
		title = svc.Title
		price = svc.Price
	}
	if price <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "price", Msg: "must be positive"}
	}

	repo := s.bookings()
	alloc := Allocator{Tag: s.IDTag, LatestID: repo.LatestBookingIDWithPrefix}
	bookingID, err := alloc.Allocate(s.now())
	if err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		BookingID:          bookingID,
		ServiceType:        req.ServiceType,
		VehicleType:        strings.TrimSpace(req.VehicleType),
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		RegistrationType:   strings.TrimSpace(req.RegistrationType),
		LicenceIssuedFrom:  strings.TrimSpace(req.LicenceIssuedFrom),
		LicenceClass:       strings.TrimSpace(req.LicenceClass),
		ServiceSelected:    title,
		ServiceDescription: strings.TrimSpace(req.ServiceDescription),
		Status:             domain.StatusConfirmationFeePaid,
		FeasibilityStatus:  domain.FeasibilityPending,
		RefundStatus:       domain.RefundPending,
		CustomerPhone:      strings.TrimSpace(req.CustomerPhone),
		CustomerName:       strings.TrimSpace(req.CustomerName),
		Price:              price,
	}

	id, err := repo.Insert(b)
	if err != nil {
		if domain.IsConflict(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to create booking", Err: err}
	}
	b.ID = id
	utils.LogEvent(s.RequestID, "booking", "create", "booking_id="+bookingID)

	s.dispatch(ctx, notify.RKBookingReceived, notify.Event{
		BookingID: b.BookingID,
		Phone:     b.CustomerPhone,
		Service:   b.ServiceSelected,
		Status:    string(b.Status),
	})

	return b, nil
}

// GetByRef resolves either the numeric row id or the customer-facing
// booking identifier.
func (s BookingService) GetByRef(ref string) (models.Booking, error) {
	repo := s.bookings()
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return repo.GetByID(id)
	}
	return repo.GetByBookingID(ref)
}

func (s BookingService) ListAll() ([]models.Booking, error) {
	return s.bookings().ListAll()
}

func (s BookingService) ListByPhone(phone string) ([]models.Booking, error) {
	if strings.TrimSpace(phone) == "" {
		return nil, domain.ValidationError{Field: "phone", Msg: "required"}
	}
	return s.bookings().ListByPhone(phone)
}

// UpdateStatus applies an admin decision through the transition rules,
// persists the result, and only then emits the customer event. A storage
// failure therefore never leaves a notification recorded for a state that
// was not committed.
func (s BookingService) UpdateStatus(ctx context.Context, ref string, req models.StatusUpdate) (models.Booking, error) {
	repo := s.bookings()

	b, err := s.GetByRef(ref)
	if err != nil {
		return models.Booking{}, err
	}

	next, shouldNotify, err := ApplyAdminUpdate(b, req)
	if err != nil {
		return models.Booking{}, err
	}

	if err := repo.UpdateStatusFields(b.ID, next); err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Msg: "failed to update booking", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "update_status",
		"booking_id="+b.BookingID+" status="+string(next.Status)+" notify="+strconv.FormatBool(shouldNotify))

	if shouldNotify {
		s.dispatch(ctx, notify.RKStatusUpdated, notify.Event{
			BookingID: b.BookingID,
			Phone:     b.CustomerPhone,
			Service:   b.ServiceSelected,
			Status:    string(next.Status),
			Remarks:   strings.TrimSpace(req.Remarks),
		})
	}

	b.Status = next.Status
	b.FeasibilityStatus = next.FeasibilityStatus
	b.RefundStatus = next.RefundStatus
	b.LastNotifiedStatus = next.LastNotifiedStatus
	b.UpdatedAt = s.now()
	return b, nil
}

func (s BookingService) dispatch(ctx context.Context, key string, ev notify.Event) {
	if s.Dispatcher == nil {
		return
	}
	if err := s.Dispatcher.Dispatch(ctx, key, ev); err != nil {
		// Fire-and-forget: the status change already committed.
		utils.LogEvent(s.RequestID, "booking", "dispatch_failed", "booking_id="+ev.BookingID+" err="+err.Error())
	}
}
