package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/models"
	"github.com/parvarora1603/BTechConnect/services"
)

// PreferenceController handles the caller's matching preferences
type PreferenceController struct {
	PreferenceService *services.PreferenceService
}

func NewPreferenceController(preferenceService *services.PreferenceService) *PreferenceController {
	return &PreferenceController{PreferenceService: preferenceService}
}

// GetMyPreferences returns the caller's preferences, creating the default
// row on first access.
func (pc *PreferenceController) GetMyPreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	prefs, err := pc.PreferenceService.GetOrCreatePreferences(r.Context(), user.UserID)
	if err != nil {
		log.Printf("Error fetching preferences: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch preferences")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"preferences": prefs})
}

// UpdateMyPreferences overwrites the caller's preferences
func (pc *PreferenceController) UpdateMyPreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		MatchSameCollege   bool     `json:"matchSameCollege"`
		MatchSameBranch    bool     `json:"matchSameBranch"`
		MatchSameYear      bool     `json:"matchSameYear"`
		PreferredInterests []string `json:"preferredInterests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	prefs := models.UserPreferences{
		UserID:             user.UserID,
		MatchSameCollege:   payload.MatchSameCollege,
		MatchSameBranch:    payload.MatchSameBranch,
		MatchSameYear:      payload.MatchSameYear,
		PreferredInterests: payload.PreferredInterests,
	}

	updated, err := pc.PreferenceService.UpdatePreferences(r.Context(), prefs)
	if err != nil {
		log.Printf("Error updating preferences: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"preferences": updated})
}
