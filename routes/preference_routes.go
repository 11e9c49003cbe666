package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterPreferenceRoutes sets up routes for matching preferences under /api/preferences
func RegisterPreferenceRoutes(r *mux.Router, preferenceService *services.PreferenceService) {
	controller := controllers.NewPreferenceController(preferenceService)

	preferenceRouter := r.PathPrefix("/api/preferences").Subrouter()
	preferenceRouter.Use(middleware.RequireAuth)

	preferenceRouter.HandleFunc("/me", controller.GetMyPreferences).Methods("GET")
	preferenceRouter.HandleFunc("/me", controller.UpdateMyPreferences).Methods("PUT")
}
