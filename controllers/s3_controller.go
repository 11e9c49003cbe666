package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/parvarora1603/BTechConnect/services"
)

// S3Controller issues presigned URLs for profile image uploads
type S3Controller struct {
	S3Service *services.S3Service
}

func NewS3Controller(s3Service *services.S3Service) *S3Controller {
	return &S3Controller{S3Service: s3Service}
}

// GeneratePresignedURL generates a presigned URL for uploading an avatar or
// student ID image
func (sc *S3Controller) GeneratePresignedURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
		Kind     string `json:"kind"` // "avatar" or "studentId"
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	prefix := services.AvatarPrefix
	if payload.Kind == "studentId" {
		prefix = services.StudentIDPrefix
	}

	url, key, err := sc.S3Service.GenerateUploadURL(r.Context(), prefix, payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Error generating presigned upload URL: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to generate pre-signed URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GetPresignedReadURL generates a presigned URL for reading a stored image
func (sc *S3Controller) GetPresignedReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := sc.S3Service.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		log.Printf("Error generating presigned read URL: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to generate read pre-signed URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
