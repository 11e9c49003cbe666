package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/models"
	"github.com/parvarora1603/BTechConnect/services"
)

// MatchController handles HTTP requests for match-related actions
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// CreateMatch pairs the caller with a peer according to the requested
// match type, resuming any active match between the two users.
func (mc *MatchController) CreateMatch(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		MatchType string `json:"matchType"`
	}
	if r.Body != nil {
		// A missing body falls back to a random match
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}
	if payload.MatchType == "" {
		payload.MatchType = models.MatchTypeRandom
	}

	match, err := mc.MatchService.CreateOrResumeMatch(r.Context(), user.UserID, payload.MatchType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			respondError(w, http.StatusNotFound, "User profile not found")
		case errors.Is(err, services.ErrNoCandidates):
			respondError(w, http.StatusNotFound, "No matches found. Try a different match type or try again later.")
		default:
			log.Printf("Error creating match: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to create match")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"match": match})
}

// EndMatch ends an active match on behalf of one of its participants
func (mc *MatchController) EndMatch(w http.ResponseWriter, r *http.Request) {
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

	match, err := mc.MatchService.EndMatch(r.Context(), payload.MatchID, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			respondError(w, http.StatusNotFound, "Match not found")
		case errors.Is(err, services.ErrNotParticipant):
			respondError(w, http.StatusForbidden, "Not a participant of this match")
		default:
			log.Printf("Error ending match: %v", err)
			respondError(w, http.StatusInternalServerError, "Failed to end match")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"match": match})
}

// GetRecentMatches lists the caller's matches, newest first
func (mc *MatchController) GetRecentMatches(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	matches, err := mc.MatchService.GetRecentMatches(r.Context(), user.UserID, 10)
	if err != nil {
		log.Printf("Error fetching recent matches: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch matches")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
