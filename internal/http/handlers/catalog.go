package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vahanpe/internal/http/middleware"
	"vahanpe/internal/services"
)

// GET /api/services
func (h Handlers) GetServices(c *gin.Context) {
	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	list, err := svc.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type priceUpdateRequest struct {
	Price float64 `json:"price"`
}

// PATCH /api/services/:id (admin)
func (h Handlers) UpdateServicePrice(c *gin.Context) {
	var req priceUpdateRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	id := c.Param("id")
	svc := services.CatalogService{RequestID: middleware.GetRequestID(c)}
	if err := svc.UpdatePrice(id, req.Price); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "service price updated", "id": id, "price": req.Price})
}
