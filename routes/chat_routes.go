package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat operations under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, matchService *services.MatchService, broadcaster controllers.MessageBroadcaster) {
	controller := controllers.NewChatController(chatService, matchService, broadcaster)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(middleware.RequireAuth)

	chatRouter.HandleFunc("/message", controller.CreateMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.GetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages/mark-as-read", controller.MarkMessagesAsRead).Methods("POST")
}
