package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"
)

// AnalyticsController handles event tracking and the admin event feed
type AnalyticsController struct {
	AnalyticsService   *services.AnalyticsService
	UserProfileService *services.UserProfileService
}

func NewAnalyticsController(analyticsService *services.AnalyticsService, userProfileService *services.UserProfileService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService, UserProfileService: userProfileService}
}

// TrackEvent records a lifecycle event for the caller. The write is
// best-effort, so the endpoint reports success as soon as the payload is
// accepted.
func (ac *AnalyticsController) TrackEvent(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		EventType string                 `json:"eventType"`
		EventData map[string]interface{} `json:"eventData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.EventType == "" {
		respondError(w, http.StatusBadRequest, "Event type is required")
		return
	}

	ac.AnalyticsService.TrackEvent(r.Context(), user.UserID, payload.EventType, payload.EventData)

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetEvents lists events of one type within a timeframe (admin only)
func (ac *AnalyticsController) GetEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := ac.UserProfileService.GetUserProfile(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "User profile not found")
			return
		}
		log.Printf("Error fetching profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	if !profile.IsAdmin {
		respondError(w, http.StatusForbidden, "Admin access required")
		return
	}

	eventType := r.URL.Query().Get("eventType")
	if eventType == "" {
		respondError(w, http.StatusBadRequest, "eventType is required")
		return
	}
	timeframe := r.URL.Query().Get("timeframe")

	events, err := ac.AnalyticsService.GetEvents(r.Context(), eventType, timeframe)
	if err != nil {
		log.Printf("Error fetching analytics events: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}
