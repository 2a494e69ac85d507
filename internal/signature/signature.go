// Package signature implements the HMAC check both payment trust paths rely
// on: the client-submitted verify claim (signed over "orderId|paymentId" with
// the key secret) and the gateway webhook (signed over the raw request body
// with the webhook secret).
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Compute returns the hex-encoded HMAC-SHA256 of message under secret.
func Compute(secret string, message []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(message)
	return hex.EncodeToString(mac.Sum(nil))
}

// PaymentMessage builds the canonical message Razorpay signs for a
// client-side checkout: orderID + "|" + paymentID.
func PaymentMessage(orderID, paymentID string) []byte {
	return []byte(orderID + "|" + paymentID)
}

// Verify reports whether candidate is the correct hex HMAC-SHA256 of message
// under secret. Fails closed: an empty secret or empty candidate never
// verifies. The comparison is constant-time.
func Verify(secret string, message []byte, candidate string) bool {
	if secret == "" || candidate == "" {
		return false
	}

	expected, err := hex.DecodeString(Compute(secret, message))
	if err != nil {
		return false
	}
	got, err := hex.DecodeString(candidate)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, got)
}
