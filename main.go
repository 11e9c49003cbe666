package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/parvarora1603/BTechConnect/controllers"
	"github.com/parvarora1603/BTechConnect/routes"
	"github.com/parvarora1603/BTechConnect/services"
	"github.com/parvarora1603/BTechConnect/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("Loaded env file:", p)
			return
		}
	}
}

func main() {
	loadDotenv()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	preferenceService := &services.PreferenceService{Dynamo: dynamoService}
	analyticsService := &services.AnalyticsService{Dynamo: dynamoService}
	chatService := &services.ChatService{Dynamo: dynamoService}
	matchService := services.NewMatchService(dynamoService, userProfileService, preferenceService, analyticsService)
	emailVerificationService := services.NewEmailVerificationService(services.NewUniversityAPIChecker())
	tokenService := services.NewTokenServiceFromEnv()
	identityService := services.NewIdentityServiceFromEnv()
	emailService := services.NewEmailServiceFromEnv()
	s3Service := services.NewS3Service()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	// Socket server for the chat message relay
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	r.Handle("/socket.io/", socketServer.Handler())

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService, identityService, emailService)
	routes.RegisterPreferenceRoutes(r, preferenceService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterTokenRoutes(r, tokenService, userProfileService)
	routes.RegisterVerifyEmailRoutes(r, emailVerificationService)
	routes.RegisterAnalyticsRoutes(r, analyticsService, userProfileService)
	routes.RegisterChatRoutes(r, chatService, matchService, socketServer)
	routes.RegisterS3Routes(r, s3Service)
	routes.RegisterWebhookRoutes(r, userProfileService, emailVerificationService, identityService, emailService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
