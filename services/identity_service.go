package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// IdentityService talks to the identity provider's management API. The only
// operation the backend needs is patching account metadata with the outcome
// of the academic-email check.
type IdentityService struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewIdentityServiceFromEnv() *IdentityService {
	baseURL := os.Getenv("CLERK_API_URL")
	if baseURL == "" {
		baseURL = "https://api.clerk.dev/v1"
	}
	return &IdentityService{
		APIKey:     os.Getenv("CLERK_SECRET_KEY"),
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// MarkAcademicEmailStatus patches the provider account's public metadata
// with the classifier verdict. Best-effort: failures are logged only.
func (is *IdentityService) MarkAcademicEmailStatus(ctx context.Context, userID string, isAcademic bool) {
	if is.APIKey == "" {
		log.Println("Skipping identity metadata patch: no API key available")
		return
	}

	payload := map[string]interface{}{
		"public_metadata": map[string]interface{}{
			"is_academic_email": isAcademic,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling metadata payload: %v", err)
		return
	}

	endpoint := fmt.Sprintf("%s/users/%s/metadata", is.BaseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		log.Printf("Error building metadata request: %v", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+is.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := is.HTTPClient.Do(req)
	if err != nil {
		log.Printf("Error updating identity metadata for %s: %v", userID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("Identity API returned status %d for metadata patch of %s", resp.StatusCode, userID)
	}
}
