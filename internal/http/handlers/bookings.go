package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vahanpe/internal/domain/models"
	"vahanpe/internal/http/middleware"
	"vahanpe/internal/services"
)

func (h Handlers) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Dispatcher: h.Dispatcher,
		IDTag:      h.Env.BookingIDTag,
		RequestID:  middleware.GetRequestID(c),
	}
}

// POST /api/bookings
func (h Handlers) CreateBooking(c *gin.Context) {
	var req models.NewBooking
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := h.bookingService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":        b.ID,
		"bookingId": b.BookingID,
		"message":   "booking created successfully",
	})
}

// GET /api/bookings (admin)
func (h Handlers) GetBookings(c *gin.Context) {
	list, err := h.bookingService(c).ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/user/:phone
func (h Handlers) GetUserBookings(c *gin.Context) {
	list, err := h.bookingService(c).ListByPhone(c.Param("phone"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id — accepts the row id or the VH- booking id.
func (h Handlers) GetBooking(c *gin.Context) {
	b, err := h.bookingService(c).GetByRef(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PATCH /api/bookings/:id/status (admin)
func (h Handlers) UpdateBookingStatus(c *gin.Context) {
	var req models.StatusUpdate
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := h.bookingService(c).UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "booking updated",
		"status":            b.Status,
		"feasibilityStatus": b.FeasibilityStatus,
		"refundStatus":      b.RefundStatus,
	})
}

// GET /api/bookings/:id/receipt
func (h Handlers) GetBookingReceipt(c *gin.Context) {
	b, err := h.bookingService(c).GetByRef(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ReceiptService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.Generate(b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
