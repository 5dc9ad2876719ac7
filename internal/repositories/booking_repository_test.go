package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"vahanpe/internal/domain"
	"vahanpe/internal/domain/models"
)

func newRepo(t *testing.T) (BookingRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	return BookingRepository{DB: db}, mock, func() { db.Close() }
}

func TestLatestBookingIDWithPrefix(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery("SELECT booking_id FROM bookings WHERE booking_id LIKE \\?").
		WithArgs("VH-202503-%").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow("VH-202503-0123"))

	code, ok, err := repo.LatestBookingIDWithPrefix("VH-202503-")
	if err != nil {
		t.Fatalf("LatestBookingIDWithPrefix: %v", err)
	}
	if !ok || code != "VH-202503-0123" {
		t.Errorf("got %q/%v, want VH-202503-0123/true", code, ok)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestLatestBookingIDWithPrefixEmptyMonth(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery("SELECT booking_id FROM bookings WHERE booking_id LIKE \\?").
		WithArgs("VH-202504-%").
		WillReturnError(sql.ErrNoRows)

	code, ok, err := repo.LatestBookingIDWithPrefix("VH-202504-")
	if err != nil {
		t.Fatalf("LatestBookingIDWithPrefix: %v", err)
	}
	if ok || code != "" {
		t.Errorf("got %q/%v, want empty/false", code, ok)
	}
}

func TestInsertDuplicateBookingIDIsConflict(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'VH-202503-0005'"})

	_, err := repo.Insert(models.Booking{
		BookingID:       "VH-202503-0005",
		ServiceType:     models.CategoryVehicle,
		ServiceSelected: "RC Transfer (Ownership Change)",
		CustomerPhone:   "9876543210",
		Price:           1500,
		Status:          domain.StatusConfirmationFeePaid,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestUpdateStatusFieldsMissingBooking(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE id = \\?").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := repo.UpdateStatusFields(99, models.StatusFields{
		Status:            domain.StatusProcessing,
		FeasibilityStatus: domain.FeasibilityDoable,
		RefundStatus:      domain.RefundPending,
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestUpdateStatusFieldsNoOpWriteIsFine(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	// Same values rewritten: MySQL reports 0 affected, but the row exists.
	mock.ExpectExec("UPDATE bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings WHERE id = \\?").
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := repo.UpdateStatusFields(12, models.StatusFields{
		Status:             domain.StatusProcessing,
		FeasibilityStatus:  domain.FeasibilityDoable,
		RefundStatus:       domain.RefundPending,
		LastNotifiedStatus: domain.StatusProcessing,
	})
	if err != nil {
		t.Fatalf("UpdateStatusFields: %v", err)
	}
}

func TestGetByBookingIDNotFound(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE booking_id = \\?").
		WithArgs("VH-209912-0001").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByBookingID("VH-209912-0001")
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestListByPhoneScansRows(t *testing.T) {
	repo, mock, done := newRepo(t)
	defer done()

	now := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "booking_id", "service_type",
		"vehicle_type", "registration_number", "registration_type",
		"licence_issued_from", "licence_class",
		"service_selected", "service_description",
		"status", "feasibility_status", "refund_status", "last_notified_status",
		"customer_phone", "customer_name", "price",
		"created_at", "updated_at",
	}).
		AddRow(2, "VH-202503-0002", "Driving Licence", "", "", "", "Maharashtra", "LMV", "DL Renewal", "", "Processing", "Doable", "Pending", "Processing", "9876543210", "Asha", 499.0, now, now).
		AddRow(1, "VH-202502-0031", "Vehicle", "Car", "MH12AB1234", "Private", "", "", "RC Transfer (Ownership Change)", "", "Delivered", "Doable", "N/A", "Delivered", "9876543210", "Asha", 1500.0, now, now)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE customer_phone = \\?").
		WithArgs("9876543210").
		WillReturnRows(rows)

	out, err := repo.ListByPhone("9876543210")
	if err != nil {
		t.Fatalf("ListByPhone: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].BookingID != "VH-202503-0002" || out[1].RefundStatus != domain.RefundNotApplicable {
		t.Errorf("unexpected rows: %+v", out)
	}
}
