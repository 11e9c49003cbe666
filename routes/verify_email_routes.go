package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterVerifyEmailRoutes sets up the academic email check under
// /api/verify-email. The route is unauthenticated: the signup form calls
// it before an account exists.
func RegisterVerifyEmailRoutes(r *mux.Router, emailVerificationService *services.EmailVerificationService) {
	controller := controllers.NewVerifyEmailController(emailVerificationService)

	r.HandleFunc("/api/verify-email", controller.VerifyEmail).Methods("POST")
}
