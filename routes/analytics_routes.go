package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterAnalyticsRoutes sets up routes for event tracking under /api/analytics
func RegisterAnalyticsRoutes(r *mux.Router, analyticsService *services.AnalyticsService, userProfileService *services.UserProfileService) {
	controller := controllers.NewAnalyticsController(analyticsService, userProfileService)

	analyticsRouter := r.PathPrefix("/api/analytics").Subrouter()
	analyticsRouter.Use(middleware.RequireAuth)

	analyticsRouter.HandleFunc("/track", controller.TrackEvent).Methods("POST")
	analyticsRouter.HandleFunc("/events", controller.GetEvents).Methods("GET")
}
