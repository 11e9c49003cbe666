package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for profile operations under /api/profiles
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService, identityService *services.IdentityService, emailService *services.EmailService) {
	controller := controllers.NewUserProfileController(userProfileService, identityService, emailService)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.Use(middleware.RequireAuth)

	profileRouter.HandleFunc("/me", controller.GetMyProfile).Methods("GET")
	profileRouter.HandleFunc("/me", controller.UpdateMyProfile).Methods("PATCH")
	profileRouter.HandleFunc("/pending", controller.GetPendingVerifications).Methods("GET")
	profileRouter.HandleFunc("/{userId}/verification", controller.SetVerificationStatus).Methods("PATCH")
}
