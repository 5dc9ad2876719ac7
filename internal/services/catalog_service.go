package services

import (
	"database/sql"

	intconfig "vahanpe/internal/config"
	"vahanpe/internal/domain"
	"vahanpe/internal/domain/models"
	"vahanpe/internal/repositories"
	"vahanpe/internal/utils"
)

// CatalogService exposes the service catalog. Bookings snapshot prices at
// creation, so a price edit never rewrites history.
type CatalogService struct {
	CatalogRepo repositories.CatalogRepository
	RequestID   string
	DB          *sql.DB
}

func (s CatalogService) repo() repositories.CatalogRepository {
	if s.CatalogRepo.DB != nil {
		return s.CatalogRepo
	}
	db := s.DB
	if db == nil {
		db = intconfig.DB
	}
	return repositories.CatalogRepository{DB: db}
}

func (s CatalogService) List() ([]models.Service, error) {
	return s.repo().List()
}

func (s CatalogService) UpdatePrice(id string, price float64) error {
	if price <= 0 {
		return domain.ValidationError{Field: "price", Msg: "must be positive"}
	}
	if err := s.repo().UpdatePrice(id, price); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "catalog", "update_price", "service="+id)
	return nil
}
