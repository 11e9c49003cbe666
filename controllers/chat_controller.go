package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/models"
	"github.com/parvarora1603/BTechConnect/services"
)

// MessageBroadcaster relays stored messages to the match's socket room
type MessageBroadcaster interface {
	Broadcast(room, event string, msg interface{})
}

// ChatController handles HTTP requests for chat messages
type ChatController struct {
	ChatService  *services.ChatService
	MatchService *services.MatchService
	Broadcaster  MessageBroadcaster
}

func NewChatController(chatService *services.ChatService, matchService *services.MatchService, broadcaster MessageBroadcaster) *ChatController {
	return &ChatController{ChatService: chatService, MatchService: matchService, Broadcaster: broadcaster}
}

// CreateMessage stores a message and relays it to the match's room
func (cc *ChatController) CreateMessage(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		MatchID string `json:"matchId"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.MatchID == "" || payload.Content == "" {
		respondError(w, http.StatusBadRequest, "matchId and content are required")
		return
	}

	if !cc.requireParticipant(w, r, payload.MatchID, user.UserID) {
		return
	}

	message, err := cc.ChatService.SendMessage(r.Context(), models.Message{
		MatchID:  payload.MatchID,
		SenderID: user.UserID,
		Content:  payload.Content,
	})
	if err != nil {
		log.Printf("Error storing message: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	if cc.Broadcaster != nil {
		cc.Broadcaster.Broadcast(models.MatchRoomName(payload.MatchID), "newMessage", message)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"message": message})
}

// GetMessages fetches messages for a match, newest first
func (cc *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matchID := r.URL.Query().Get("matchId")
	if matchID == "" {
		respondError(w, http.StatusBadRequest, "matchId is required")
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	if !cc.requireParticipant(w, r, matchID, user.UserID) {
		return
	}

	messages, err := cc.ChatService.GetMessagesByMatchID(r.Context(), matchID, limit)
	if err != nil {
		log.Printf("Error fetching messages: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// MarkMessagesAsRead marks the messages the caller received as read
func (cc *ChatController) MarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		MatchID string `json:"matchId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.MatchID == "" {
		respondError(w, http.StatusBadRequest, "matchId is required")
		return
	}

	if !cc.requireParticipant(w, r, payload.MatchID, user.UserID) {
		return
	}

	if err := cc.ChatService.MarkMessagesAsRead(r.Context(), payload.MatchID, user.UserID); err != nil {
		log.Printf("Error marking messages as read: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to mark messages as read")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (cc *ChatController) requireParticipant(w http.ResponseWriter, r *http.Request, matchID, userID string) bool {
	match, err := cc.MatchService.GetMatch(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			respondError(w, http.StatusNotFound, "Match not found")
			return false
		}
		log.Printf("Error fetching match %s: %v", matchID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch match")
		return false
	}
	if match.User1ID != userID && match.User2ID != userID {
		respondError(w, http.StatusForbidden, "Not a participant of this match")
		return false
	}
	return true
}
