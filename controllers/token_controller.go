package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"
)

// TokenController issues room access tokens for the realtime provider
type TokenController struct {
	TokenService       *services.TokenService
	UserProfileService *services.UserProfileService
}

func NewTokenController(tokenService *services.TokenService, userProfileService *services.UserProfileService) *TokenController {
	return &TokenController{TokenService: tokenService, UserProfileService: userProfileService}
}

// CreateToken mints a signed token scoping the caller to a single room
func (tc *TokenController) CreateToken(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		Room string `json:"room"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Room == "" {
		respondError(w, http.StatusBadRequest, "Room is required")
		return
	}

	profile, err := tc.UserProfileService.GetUserProfile(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "User profile not found")
			return
		}
		log.Printf("Error fetching profile for token: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	token, err := tc.TokenService.CreateRoomToken(user.UserID, profile.FullName, payload.Room)
	if err != nil {
		log.Printf("Error creating room token: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
