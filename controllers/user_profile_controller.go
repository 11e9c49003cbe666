package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/models"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// UserProfileController handles requests related to user profiles
type UserProfileController struct {
	UserProfileService *services.UserProfileService
	IdentityService    *services.IdentityService
	EmailService       *services.EmailService
}

// NewUserProfileController creates a new instance of UserProfileController
func NewUserProfileController(userProfileService *services.UserProfileService, identityService *services.IdentityService, emailService *services.EmailService) *UserProfileController {
	return &UserProfileController{
		UserProfileService: userProfileService,
		IdentityService:    identityService,
		EmailService:       emailService,
	}
}

// GetMyProfile returns the caller's profile
func (c *UserProfileController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "User profile not found")
			return
		}
		log.Printf("Error fetching profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// UpdateMyProfile applies the onboarding/profile-edit fields
func (c *UserProfileController) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload struct {
		FullName     *string  `json:"fullName"`
		College      *string  `json:"college"`
		Branch       *string  `json:"branch"`
		Year         *string  `json:"year"`
		Bio          *string  `json:"bio"`
		Interests    []string `json:"interests"`
		AvatarKey    *string  `json:"avatarKey"`
		StudentIDKey *string  `json:"studentIdKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updates := map[string]interface{}{}
	if payload.FullName != nil {
		updates["fullName"] = *payload.FullName
	}
	if payload.College != nil {
		updates["college"] = *payload.College
	}
	if payload.Branch != nil {
		updates["branch"] = *payload.Branch
	}
	if payload.Year != nil {
		updates["year"] = *payload.Year
	}
	if payload.Bio != nil {
		updates["bio"] = *payload.Bio
	}
	if payload.Interests != nil {
		updates["interests"] = payload.Interests
	}
	if payload.AvatarKey != nil {
		updates["avatarKey"] = *payload.AvatarKey
	}
	if payload.StudentIDKey != nil {
		updates["studentIdKey"] = *payload.StudentIDKey
	}
	if len(updates) == 0 {
		respondError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	profile, err := c.UserProfileService.UpdateUserProfile(r.Context(), user.UserID, updates)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// GetPendingVerifications lists profiles awaiting manual review (admin only)
func (c *UserProfileController) GetPendingVerifications(w http.ResponseWriter, r *http.Request) {
	if !c.requireAdmin(w, r) {
		return
	}

	profiles, err := c.UserProfileService.GetPendingVerifications(r.Context())
	if err != nil {
		log.Printf("Error fetching pending verifications: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch pending verifications")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}

// SetVerificationStatus resolves a pending profile (admin only). The status
// email and the identity metadata patch are best-effort side effects.
func (c *UserProfileController) SetVerificationStatus(w http.ResponseWriter, r *http.Request) {
	if !c.requireAdmin(w, r) {
		return
	}

	userID := mux.Vars(r)["userId"]

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		respondError(w, http.StatusBadRequest, "Status is required")
		return
	}
	if payload.Status != models.VerificationApproved && payload.Status != models.VerificationRejected {
		respondError(w, http.StatusBadRequest, "Status must be approved or rejected")
		return
	}

	profile, err := c.UserProfileService.SetVerificationStatus(r.Context(), userID, payload.Status)
	if err != nil {
		log.Printf("Error resolving verification for %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to update verification status")
		return
	}

	approved := payload.Status == models.VerificationApproved
	c.IdentityService.MarkAcademicEmailStatus(r.Context(), userID, approved)
	if approved {
		c.EmailService.SendVerificationSuccessEmail(r.Context(), profile.Email, profile.FullName)
	} else {
		c.EmailService.SendVerificationRejectedEmail(r.Context(), profile.Email, profile.FullName)
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// requireAdmin writes the error response and returns false when the caller
// is not an administrator.
func (c *UserProfileController) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return false
	}

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondError(w, http.StatusNotFound, "User profile not found")
			return false
		}
		log.Printf("Error fetching admin profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return false
	}
	if !profile.IsAdmin {
		respondError(w, http.StatusForbidden, "Admin access required")
		return false
	}
	return true
}
