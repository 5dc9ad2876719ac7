package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vahanpe/internal/http/middleware"
	"vahanpe/internal/utils"
)

type createOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

// POST /api/payment/create-order
func (h Handlers) CreateOrder(c *gin.Context) {
	if h.Razorpay == nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "payment gateway configuration missing", nil)
		return
	}

	var req createOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Amount <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "valid amount is required", nil)
		return
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = "INR"
	}

	// Razorpay expects the amount in paise.
	order, err := h.Razorpay.Order.Create(map[string]interface{}{
		"amount":          int64(math.Round(req.Amount * 100)),
		"currency":        currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
	}, nil)
	if err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "payment", "create_order_failed", err.Error())
		respondError(c, http.StatusInternalServerError, "internal_error", "failed to create order", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       order["id"],
		"currency": order["currency"],
		"amount":   order["amount"],
	})
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// POST /api/payment/verify-payment — checks the gateway's HMAC over
// "<order_id>|<payment_id>" with the key secret.
func (h Handlers) VerifyPayment(c *gin.Context) {
	if h.Env.RazorpayKeySecret == "" {
		respondError(c, http.StatusInternalServerError, "internal_error", "payment gateway configuration missing", nil)
		return
	}

	var req verifyPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if !VerifyRazorpaySignature(req.OrderID, req.PaymentID, req.Signature, h.Env.RazorpayKeySecret) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "failure", "message": "invalid signature"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "payment verified"})
}

// VerifyRazorpaySignature reports whether signature matches the HMAC-SHA256
// of "orderID|paymentID" under secret, compared in constant time.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
