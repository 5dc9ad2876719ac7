package repositories

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"vahanpe/internal/domain"
	"vahanpe/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

const bookingColumns = `
	id, booking_id, service_type,
	COALESCE(vehicle_type,''), COALESCE(registration_number,''), COALESCE(registration_type,''),
	COALESCE(licence_issued_from,''), COALESCE(licence_class,''),
	service_selected, COALESCE(service_description,''),
	status, feasibility_status, refund_status, COALESCE(last_notified_status,''),
	customer_phone, COALESCE(customer_name,''), price,
	created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID, &b.BookingID, &b.ServiceType,
		&b.VehicleType, &b.RegistrationNumber, &b.RegistrationType,
		&b.LicenceIssuedFrom, &b.LicenceClass,
		&b.ServiceSelected, &b.ServiceDescription,
		&b.Status, &b.FeasibilityStatus, &b.RefundStatus, &b.LastNotifiedStatus,
		&b.CustomerPhone, &b.CustomerName, &b.Price,
		&b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

// Insert stores a freshly allocated booking. The uniq_booking_id constraint
// is the last line of defense against a concurrent allocation race; a
// duplicate key surfaces as a conflict so the caller can retry allocation.
func (r BookingRepository) Insert(b models.Booking) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO bookings (
			booking_id, service_type, vehicle_type, registration_number, registration_type,
			licence_issued_from, licence_class, service_selected, service_description,
			customer_phone, customer_name, price, status, feasibility_status, refund_status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.BookingID, b.ServiceType, nullIfEmpty(b.VehicleType), nullIfEmpty(b.RegistrationNumber), nullIfEmpty(b.RegistrationType),
		nullIfEmpty(b.LicenceIssuedFrom), nullIfEmpty(b.LicenceClass), b.ServiceSelected, nullIfEmpty(b.ServiceDescription),
		b.CustomerPhone, nullIfEmpty(b.CustomerName), b.Price, string(b.Status), string(b.FeasibilityStatus), string(b.RefundStatus),
	)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "booking", Msg: "booking id already allocated", Err: err}
		}
		return 0, fmt.Errorf("insert booking: %w", err)
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`, id))
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

func (r BookingRepository) GetByBookingID(code string) (models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE booking_id = ? LIMIT 1`, code))
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

func (r BookingRepository) ListAll() ([]models.Booking, error) {
	return r.list(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`)
}

func (r BookingRepository) ListByPhone(phone string) ([]models.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE customer_phone = ? ORDER BY created_at DESC, id DESC`, phone)
}

func (r BookingRepository) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatusFields persists the outcome of a lifecycle update in a single
// write. last_notified_status travels with the status so a dispatch is
// never recorded against an uncommitted state.
func (r BookingRepository) UpdateStatusFields(id int64, f models.StatusFields) error {
	res, err := r.DB.Exec(`
		UPDATE bookings
		SET status = ?, feasibility_status = ?, refund_status = ?, last_notified_status = ?, updated_at = NOW()
		WHERE id = ?
	`, string(f.Status), string(f.FeasibilityStatus), string(f.RefundStatus), nullIfEmpty(string(f.LastNotifiedStatus)), id)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		// MySQL reports 0 for no-op writes too, so confirm existence
		// before calling it missing.
		var exists int
		if scanErr := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE id = ?`, id).Scan(&exists); scanErr == nil && exists == 0 {
			return domain.NotFoundError{Resource: "booking"}
		}
	}
	return nil
}

// LatestBookingIDWithPrefix returns the most recently inserted booking id
// matching prefix, by insertion order. Within a month the zero-padded
// suffix makes insertion and numeric order coincide.
func (r BookingRepository) LatestBookingIDWithPrefix(prefix string) (string, bool, error) {
	var code string
	err := r.DB.QueryRow(`
		SELECT booking_id FROM bookings WHERE booking_id LIKE ? ORDER BY id DESC LIMIT 1
	`, prefix+"%").Scan(&code)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("latest booking id: %w", err)
	}
	return code, true, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
