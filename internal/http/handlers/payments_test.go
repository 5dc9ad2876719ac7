package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signOrder(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	const secret = "test_secret"
	sig := signOrder("order_ABC123", "pay_XYZ789", secret)

	if !VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig, secret) {
		t.Error("valid signature rejected")
	}
	if VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", sig, "other_secret") {
		t.Error("signature accepted under wrong secret")
	}
	if VerifyRazorpaySignature("order_ABC123", "pay_OTHER", sig, secret) {
		t.Error("signature accepted for wrong payment id")
	}
	if VerifyRazorpaySignature("order_ABC123", "pay_XYZ789", "deadbeef", secret) {
		t.Error("garbage signature accepted")
	}
}
