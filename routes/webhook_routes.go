package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterWebhookRoutes sets up the identity provider webhook. The route is
// authenticated by its HMAC signature, not a session token.
func RegisterWebhookRoutes(
	r *mux.Router,
	userProfileService *services.UserProfileService,
	emailVerificationService *services.EmailVerificationService,
	identityService *services.IdentityService,
	emailService *services.EmailService,
) {
	controller := controllers.NewWebhookController(userProfileService, emailVerificationService, identityService, emailService)

	r.HandleFunc("/api/webhooks/identity", controller.HandleIdentityWebhook).Methods("POST")
}
