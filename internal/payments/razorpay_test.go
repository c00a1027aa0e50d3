package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "rzp_test_secret"
	orderID := "order_ABC123"
	paymentID := "pay_XYZ789"

	valid := sign(orderID+"|"+paymentID, secret)

	assert.True(t, VerifySignature(orderID, paymentID, valid, secret))

	// Signing with a different secret must fail.
	assert.False(t, VerifySignature(orderID, paymentID, sign(orderID+"|"+paymentID, "wrong"), secret))

	// Any tampered component must fail.
	assert.False(t, VerifySignature("order_OTHER", paymentID, valid, secret))
	assert.False(t, VerifySignature(orderID, "pay_OTHER", valid, secret))
	assert.False(t, VerifySignature(orderID, paymentID, "deadbeef", secret))
	assert.False(t, VerifySignature(orderID, paymentID, "", secret))
}
