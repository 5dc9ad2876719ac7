package repositories

import (
	"database/sql"
	"fmt"

	"vahanpe/internal/domain"
	"vahanpe/internal/domain/models"
)

type CatalogRepository struct {
	DB *sql.DB
}

const serviceColumns = `id, title, COALESCE(description,''), price, COALESCE(region_type,''), category, COALESCE(icon_name,'')`

func (r CatalogRepository) List() ([]models.Service, error) {
	rows, err := r.DB.Query(`SELECT ` + serviceColumns + ` FROM services ORDER BY category, id`)
	if err != nil {
		return nil, fmt.Errorf("query services: %w", err)
	}
	defer rows.Close()

	out := []models.Service{}
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.RegionType, &s.Category, &s.IconName); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r CatalogRepository) GetByID(id string) (models.Service, error) {
	var s models.Service
	err := r.DB.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = ? LIMIT 1`, id).
		Scan(&s.ID, &s.Title, &s.Description, &s.Price, &s.RegionType, &s.Category, &s.IconName)
	if err == sql.ErrNoRows {
		return models.Service{}, domain.NotFoundError{Resource: "service"}
	}
	return s, err
}

func (r CatalogRepository) UpdatePrice(id string, price float64) error {
	res, err := r.DB.Exec(`UPDATE services SET price = ? WHERE id = ?`, price, id)
	if err != nil {
		return fmt.Errorf("update service price: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		var exists int
		if scanErr := r.DB.QueryRow(`SELECT COUNT(*) FROM services WHERE id = ?`, id).Scan(&exists); scanErr == nil && exists == 0 {
			return domain.NotFoundError{Resource: "service"}
		}
	}
	return nil
}
