package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/parvarora1603/BTechConnect/models"
	"github.com/parvarora1603/BTechConnect/services"
)

// WebhookController consumes signup events from the identity provider
type WebhookController struct {
	UserProfileService       *services.UserProfileService
	EmailVerificationService *services.EmailVerificationService
	IdentityService          *services.IdentityService
	EmailService             *services.EmailService
}

func NewWebhookController(
	userProfileService *services.UserProfileService,
	emailVerificationService *services.EmailVerificationService,
	identityService *services.IdentityService,
	emailService *services.EmailService,
) *WebhookController {
	return &WebhookController{
		UserProfileService:       userProfileService,
		EmailVerificationService: emailVerificationService,
		IdentityService:          identityService,
		EmailService:             emailService,
	}
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID                    string `json:"id"`
		FirstName             string `json:"first_name"`
		LastName              string `json:"last_name"`
		PrimaryEmailAddressID string `json:"primary_email_address_id"`
		EmailAddresses        []struct {
			ID           string `json:"id"`
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// HandleIdentityWebhook gates account activation on the academic email
// check. Academic emails get an approved profile; others land in the
// manual review queue with the provider metadata marked accordingly.
func (wc *WebhookController) HandleIdentityWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if !verifyWebhookSignature(r.Header, body, os.Getenv("IDENTITY_WEBHOOK_SECRET")) {
		respondError(w, http.StatusBadRequest, "Invalid webhook signature")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if event.Type != "user.created" {
		respondJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	var email string
	for _, addr := range event.Data.EmailAddresses {
		if addr.ID == event.Data.PrimaryEmailAddressID {
			email = addr.EmailAddress
			break
		}
	}
	if email == "" {
		respondError(w, http.StatusBadRequest, "No primary email found")
		return
	}

	fullName := strings.TrimSpace(event.Data.FirstName + " " + event.Data.LastName)
	isAcademic := wc.EmailVerificationService.IsValidAcademicEmail(r.Context(), email)

	status := models.VerificationPending
	if isAcademic {
		status = models.VerificationApproved
	}

	profile := models.UserProfile{
		UserID:             event.Data.ID,
		Email:              email,
		FullName:           fullName,
		VerificationStatus: status,
	}
	if _, err := wc.UserProfileService.AddUserProfile(r.Context(), profile); err != nil {
		log.Printf("Error creating user profile for %s: %v", event.Data.ID, err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	wc.IdentityService.MarkAcademicEmailStatus(r.Context(), event.Data.ID, isAcademic)
	if isAcademic {
		wc.EmailService.SendVerificationSuccessEmail(r.Context(), email, fullName)
	} else {
		wc.EmailService.SendVerificationPendingEmail(r.Context(), email, fullName)
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// verifyWebhookSignature checks the provider's HMAC signature headers:
// base64(HMAC-SHA256(secret, "<id>.<timestamp>.<body>")) must match one of
// the space-separated "v1,<sig>" entries.
func verifyWebhookSignature(header http.Header, body []byte, secret string) bool {
	id := header.Get("svix-id")
	timestamp := header.Get("svix-timestamp")
	signatures := header.Get("svix-signature")
	if id == "" || timestamp == "" || signatures == "" || secret == "" {
		return false
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, "whsec_"))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(id + "." + timestamp + "."))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, entry := range strings.Fields(signatures) {
		parts := strings.SplitN(entry, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		if hmac.Equal([]byte(parts[1]), []byte(expected)) {
			return true
		}
	}
	return false
}
