package db

import (
	"database/sql"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"vahanpe/internal/domain/models"
)

var ddl = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		booking_id VARCHAR(32) NOT NULL,
		service_type VARCHAR(32) NOT NULL,
		vehicle_type VARCHAR(16),
		registration_number VARCHAR(64),
		registration_type VARCHAR(64),
		licence_issued_from VARCHAR(64),
		licence_class VARCHAR(64),
		service_selected VARCHAR(255) NOT NULL,
		service_description TEXT,
		status VARCHAR(32) NOT NULL DEFAULT 'Confirmation Fee Paid',
		feasibility_status VARCHAR(16) NOT NULL DEFAULT 'Pending',
		refund_status VARCHAR(16) NOT NULL DEFAULT 'Pending',
		last_notified_status VARCHAR(32),
		customer_phone VARCHAR(32) NOT NULL,
		customer_name VARCHAR(255),
		price DECIMAL(10,2) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_booking_id (booking_id),
		KEY idx_customer_phone (customer_phone)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		phone VARCHAR(32) NOT NULL,
		name VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_phone (phone)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS admins (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(64) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'admin',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

	`CREATE TABLE IF NOT EXISTS services (
		id VARCHAR(64) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		region_type VARCHAR(16),
		category VARCHAR(32) NOT NULL,
		icon_name VARCHAR(64)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

// initialServices is the launch catalog. Prices are editable afterwards via
// the admin API, so the seed only runs on an empty table.
var initialServices = []models.Service{
	{ID: "transfer_ownership", Title: "Transfer of Ownership", Description: "RC transfer support for vehicle sale or purchase.", Price: 1500, RegionType: "KA", Category: models.CategoryVehicle, IconName: "Car"},
	{ID: "hypothecation_termination", Title: "Hypothecation Termination", Description: "Remove bank/finance hypothecation after loan closure.", Price: 1200, RegionType: "KA", Category: models.CategoryVehicle, IconName: "Shield"},
	{ID: "address_change", Title: "Address Change in RC", Description: "Update RC address within the same state registration.", Price: 800, RegionType: "KA", Category: models.CategoryVehicle, IconName: "FileText"},
	{ID: "mobile_update_rc", Title: "Mobile Number Update (RC)", Description: "Link or update the registered mobile number in vehicle records.", Price: 500, RegionType: "KA", Category: models.CategoryVehicle, IconName: "Smartphone"},
	{ID: "duplicate_rc", Title: "Duplicate RC", Description: "Assistance if RC is lost, damaged, or misplaced.", Price: 1800, RegionType: "KA", Category: models.CategoryVehicle, IconName: "Copy"},
	{ID: "rc_renewal", Title: "RC Renewal (15+ Years)", Description: "Documentation support for registration renewal (subject to Fitness/RTO approval).", Price: 2500, RegionType: "KA", Category: models.CategoryVehicle, IconName: "Clock"},
	{ID: "re_registration", Title: "Re-Registration to Bangalore RTO", Description: "Support for vehicles relocating to Karnataka.", Price: 3000, RegionType: "NON_KA", Category: models.CategoryVehicle, IconName: "Truck"},
	{ID: "dl_renewal", Title: "DL Renewal", Description: "For licences expired within 6 months. We handle filing and follow-ups.", Price: 1200, RegionType: "KA", Category: models.CategoryDrivingLicence, IconName: "RotateCw"},
	{ID: "address_update_dl", Title: "Address Update in DL", Description: "Moved homes? Update your DL address easily.", Price: 800, RegionType: "KA", Category: models.CategoryDrivingLicence, IconName: "MapPin"},
	{ID: "mobile_update_dl", Title: "Mobile Number Update", Description: "Link or update your registered mobile number.", Price: 500, RegionType: "KA", Category: models.CategoryDrivingLicence, IconName: "Smartphone"},
	{ID: "duplicate_dl", Title: "Duplicate DL", Description: "Lost or damaged licence? Get a replacement with our support.", Price: 1500, RegionType: "KA", Category: models.CategoryDrivingLicence, IconName: "Copy"},
	{ID: "dl_extract", Title: "DL Extract", Description: "Download your official DL extract for verification or compliance.", Price: 300, RegionType: "KA", Category: models.CategoryDrivingLicence, IconName: "Download"},
	{ID: "idp", Title: "International Driving Permit (IDP)", Description: "Complete documentation support for IDP application.", Price: 2500, RegionType: "KA", Category: models.CategoryDrivingLicence, IconName: "Globe"},
	{ID: "other_state_transfer", Title: "Other State DL -> Bangalore", Description: "Seamless assistance to migrate your Driving Licence to Karnataka.", Price: 3000, RegionType: "NON_KA", Category: models.CategoryDrivingLicence, IconName: "Map"},
}

// EnsureSchema creates the tables when missing and seeds the service
// catalog and the default admin account on first run.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	if err := seedAdmin(db); err != nil {
		return err
	}
	return seedServices(db)
}

func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}
	if _, err := db.Exec(`INSERT INTO admins (username, password_hash, role) VALUES (?, ?, 'admin')`, "admin", string(hash)); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Warn("default admin account created (admin/admin123), change the password")
	return nil
}

func seedServices(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		return fmt.Errorf("count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, svc := range initialServices {
		if _, err := db.Exec(`
			INSERT INTO services (id, title, description, price, region_type, category, icon_name)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, svc.ID, svc.Title, svc.Description, svc.Price, svc.RegionType, svc.Category, svc.IconName); err != nil {
			return fmt.Errorf("seed service %s: %w", svc.ID, err)
		}
	}
	log.Infof("service catalog seeded with %d entries", len(initialServices))
	return nil
}
