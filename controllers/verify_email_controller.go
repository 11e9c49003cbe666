package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/parvarora1603/BTechConnect/services"
)

// VerifyEmailController exposes the academic email check to the signup flow
type VerifyEmailController struct {
	EmailVerificationService *services.EmailVerificationService
}

func NewVerifyEmailController(emailVerificationService *services.EmailVerificationService) *VerifyEmailController {
	return &VerifyEmailController{EmailVerificationService: emailVerificationService}
}

// VerifyEmail reports whether an email belongs to an academic institution
func (vc *VerifyEmailController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	isAcademic := vc.EmailVerificationService.IsValidAcademicEmail(r.Context(), payload.Email)

	respondJSON(w, http.StatusOK, map[string]bool{"isAcademic": isAcademic})
}
