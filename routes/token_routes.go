package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterTokenRoutes sets up the room token route under /api/token
func RegisterTokenRoutes(r *mux.Router, tokenService *services.TokenService, userProfileService *services.UserProfileService) {
	controller := controllers.NewTokenController(tokenService, userProfileService)

	tokenRouter := r.PathPrefix("/api/token").Subrouter()
	tokenRouter.Use(middleware.RequireAuth)

	tokenRouter.HandleFunc("", controller.CreateToken).Methods("POST")
}
