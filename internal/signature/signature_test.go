package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

func hexHMAC(secret, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerify_AcceptsCorrectDigest(t *testing.T) {
	secret := "s3cr3t"
	msg := PaymentMessage("order_1", "pay_1")

	want := hexHMAC(secret, "order_1|pay_1")
	if got := Compute(secret, msg); got != want {
		t.Fatalf("Compute mismatch: got %s want %s", got, want)
	}
	if !Verify(secret, msg, want) {
		t.Fatalf("expected correct digest to verify")
	}
}

func TestVerify_RejectsMutations(t *testing.T) {
	secret := "s3cr3t"
	msg := []byte("order_1|pay_1")
	good := Compute(secret, msg)

	// Flip one nibble of the signature.
	for i := 0; i < len(good); i++ {
		mutated := []byte(good)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		if string(mutated) == good {
			continue
		}
		if Verify(secret, msg, string(mutated)) {
			t.Fatalf("mutated signature at %d verified", i)
		}
	}

	if Verify(secret, []byte("order_1|pay_2"), good) {
		t.Fatalf("mutated message verified")
	}
	if Verify("s3cr3u", msg, good) {
		t.Fatalf("mutated secret verified")
	}
}

func TestVerify_FailsClosed(t *testing.T) {
	msg := []byte("order_1|pay_1")
	if Verify("", msg, Compute("", msg)) {
		t.Fatalf("empty secret must not verify")
	}
	if Verify("s3cr3t", msg, "") {
		t.Fatalf("empty candidate must not verify")
	}
	if Verify("s3cr3t", msg, "not-hex-at-all") {
		t.Fatalf("non-hex candidate must not verify")
	}
	// Case-insensitive hex decodes to the same bytes; uppercase still verifies.
	if !Verify("s3cr3t", msg, strings.ToUpper(Compute("s3cr3t", msg))) {
		t.Fatalf("uppercase hex should verify")
	}
}

func TestVerify_RawBody(t *testing.T) {
	secret := "whsec"
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_2","order_id":"order_2"}}}}`)

	sig := Compute(secret, body)
	if !Verify(secret, body, sig) {
		t.Fatalf("raw body signature should verify")
	}

	// Re-serialized body with different whitespace must not verify.
	reserialized := []byte(`{"event": "payment.captured", "payload": {"payment": {"entity": {"id": "pay_2", "order_id": "order_2"}}}}`)
	if Verify(secret, reserialized, sig) {
		t.Fatalf("whitespace-shifted body must not verify")
	}
}
