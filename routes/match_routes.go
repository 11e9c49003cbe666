package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under /api/match
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/api/match").Subrouter()
	matchRouter.Use(middleware.RequireAuth)

	matchRouter.HandleFunc("", controller.CreateMatch).Methods("POST")
	matchRouter.HandleFunc("/end", controller.EndMatch).Methods("POST")
	matchRouter.HandleFunc("/recent", controller.GetRecentMatches).Methods("GET")
}
