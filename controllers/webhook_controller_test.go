package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signWebhook(secretKey []byte, id, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(id + "." + timestamp + "."))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	secretKey := []byte("0123456789abcdef")
	secret := "whsec_" + base64.StdEncoding.EncodeToString(secretKey)
	body := []byte(`{"type":"user.created"}`)

	header := http.Header{}
	header.Set("svix-id", "msg_1")
	header.Set("svix-timestamp", "1700000000")
	header.Set("svix-signature", "v1,"+signWebhook(secretKey, "msg_1", "1700000000", body))

	assert.True(t, verifyWebhookSignature(header, body, secret))
}

func TestVerifyWebhookSignature_MultipleEntries(t *testing.T) {
	secretKey := []byte("0123456789abcdef")
	secret := "whsec_" + base64.StdEncoding.EncodeToString(secretKey)
	body := []byte(`{}`)

	good := signWebhook(secretKey, "msg_1", "1700000000", body)
	header := http.Header{}
	header.Set("svix-id", "msg_1")
	header.Set("svix-timestamp", "1700000000")
	header.Set("svix-signature", "v1,bogus v2,"+good+" v1,"+good)

	assert.True(t, verifyWebhookSignature(header, body, secret))
}

func TestVerifyWebhookSignature_Rejections(t *testing.T) {
	secretKey := []byte("0123456789abcdef")
	secret := "whsec_" + base64.StdEncoding.EncodeToString(secretKey)
	body := []byte(`{"type":"user.created"}`)
	good := signWebhook(secretKey, "msg_1", "1700000000", body)

	makeHeader := func(id, ts, sig string) http.Header {
		h := http.Header{}
		if id != "" {
			h.Set("svix-id", id)
		}
		if ts != "" {
			h.Set("svix-timestamp", ts)
		}
		if sig != "" {
			h.Set("svix-signature", sig)
		}
		return h
	}

	// Tampered body
	assert.False(t, verifyWebhookSignature(makeHeader("msg_1", "1700000000", "v1,"+good), []byte(`{"type":"user.deleted"}`), secret))
	// Tampered timestamp
	assert.False(t, verifyWebhookSignature(makeHeader("msg_1", "1700000001", "v1,"+good), body, secret))
	// Missing headers
	assert.False(t, verifyWebhookSignature(makeHeader("", "1700000000", "v1,"+good), body, secret))
	assert.False(t, verifyWebhookSignature(makeHeader("msg_1", "", "v1,"+good), body, secret))
	assert.False(t, verifyWebhookSignature(makeHeader("msg_1", "1700000000", ""), body, secret))
	// Missing or malformed secret
	assert.False(t, verifyWebhookSignature(makeHeader("msg_1", "1700000000", "v1,"+good), body, ""))
	assert.False(t, verifyWebhookSignature(makeHeader("msg_1", "1700000000", "v1,"+good), body, "whsec_%%%not-base64%%%"))
	// Wrong version prefix only
	assert.False(t, verifyWebhookSignature(makeHeader("msg_1", "1700000000", "v2,"+good), body, secret))
}
