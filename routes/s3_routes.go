package routes

import (
	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/middleware"
	"github.com/parvarora1603/BTechConnect/services"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for image uploads under /api/uploads
func RegisterS3Routes(r *mux.Router, s3Service *services.S3Service) {
	controller := controllers.NewS3Controller(s3Service)

	uploadRouter := r.PathPrefix("/api/uploads").Subrouter()
	uploadRouter.Use(middleware.RequireAuth)

	uploadRouter.HandleFunc("/presign", controller.GeneratePresignedURL).Methods("POST")
	uploadRouter.HandleFunc("/read-url", controller.GetPresignedReadURL).Methods("POST")
}
