package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// indianAcademicDomains lists known Indian academic email domains that may
// be missing from the external university directory.
var indianAcademicDomains = []string{
	// IITs
	"iitb.ac.in",        // IIT Bombay
	"iitd.ac.in",        // IIT Delhi
	"iitk.ac.in",        // IIT Kanpur
	"iitkgp.ac.in",      // IIT Kharagpur
	"iitm.ac.in",        // IIT Madras
	"iitg.ac.in",        // IIT Guwahati
	"iith.ac.in",        // IIT Hyderabad
	"iitbbs.ac.in",      // IIT Bhubaneswar
	"iitgn.ac.in",       // IIT Gandhinagar
	"iiti.ac.in",        // IIT Indore
	"iitj.ac.in",        // IIT Jodhpur
	"iitmandi.ac.in",    // IIT Mandi
	"iitp.ac.in",        // IIT Patna
	"iitpkd.ac.in",      // IIT Palakkad
	"iitr.ac.in",        // IIT Roorkee
	"iitdh.ac.in",       // IIT Dharwad
	"iitism.ac.in",      // IIT ISM Dhanbad
	"iitbhilai.ac.in",   // IIT Bhilai
	"iitgoa.ac.in",      // IIT Goa
	"iitjammu.ac.in",    // IIT Jammu
	"iittirupati.ac.in", // IIT Tirupati
	// NITs
	"nitt.edu",    // NIT Trichy
	"nitk.ac.in",  // NIT Surathkal
	"nitc.ac.in",  // NIT Calicut
	"nitw.ac.in",  // NIT Warangal
	"nitrkl.ac.in", // NIT Rourkela
	"mnit.ac.in",  // MNIT Jaipur
	"nitdgp.ac.in", // NIT Durgapur
	"svnit.ac.in", // SVNIT Surat
	// Other institutes
	"bits-pilani.ac.in", // BITS Pilani
	"iisc.ac.in",        // IISc Bangalore
	"dtu.ac.in",         // Delhi Technological University
	"nsut.ac.in",        // NSUT Delhi
	"vit.ac.in",         // VIT Vellore
}

// AcademicDomainChecker is the external heuristic used for domains not on
// the static list. Implemented by UniversityAPIChecker and by fakes in tests.
type AcademicDomainChecker interface {
	IsAcademicDomain(ctx context.Context, domain string) (bool, error)
}

// UniversityAPIChecker queries a public university directory and treats any
// hit for the domain as an academic verdict.
type UniversityAPIChecker struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewUniversityAPIChecker builds a checker against UNIVERSITY_API_URL, or
// the public Hipo universities directory when unset.
func NewUniversityAPIChecker() *UniversityAPIChecker {
	baseURL := os.Getenv("UNIVERSITY_API_URL")
	if baseURL == "" {
		baseURL = "http://universities.hipolabs.com"
	}
	return &UniversityAPIChecker{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *UniversityAPIChecker) IsAcademicDomain(ctx context.Context, domain string) (bool, error) {
	endpoint := c.BaseURL + "/search?domain=" + url.QueryEscape(domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build university lookup request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("university lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("university lookup returned status %d", resp.StatusCode)
	}

	var universities []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&universities); err != nil {
		return false, fmt.Errorf("failed to decode university lookup response: %w", err)
	}

	return len(universities) > 0, nil
}

// EmailVerificationService decides whether an email address belongs to an
// accredited academic institution.
type EmailVerificationService struct {
	Checker AcademicDomainChecker
}

func NewEmailVerificationService(checker AcademicDomainChecker) *EmailVerificationService {
	return &EmailVerificationService{Checker: checker}
}

// emailDomain returns the part after the final '@', or "" if there is none.
func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// IsIndianAcademicEmail checks the static allow-list, matching the domain
// exactly or as a subdomain of a listed institution.
//
// Note: the comparison is byte-wise. An upper-cased domain will miss the
// list and fall through to the directory lookup.
func (s *EmailVerificationService) IsIndianAcademicEmail(email string) bool {
	domain := emailDomain(email)
	if domain == "" {
		return false
	}

	for _, academicDomain := range indianAcademicDomains {
		if domain == academicDomain || strings.HasSuffix(domain, "."+academicDomain) {
			return true
		}
	}
	return false
}

// IsValidAcademicEmail runs the static list first and only consults the
// external directory on a miss. Directory failures degrade to the static
// verdict, so an unreachable directory means rejection for unknown domains.
func (s *EmailVerificationService) IsValidAcademicEmail(ctx context.Context, email string) bool {
	if s.IsIndianAcademicEmail(email) {
		return true
	}

	domain := emailDomain(email)
	if domain == "" {
		return false
	}

	isAcademic, err := s.Checker.IsAcademicDomain(ctx, domain)
	if err != nil {
		log.Printf("Error checking academic domain %q: %v", domain, err)
		return s.IsIndianAcademicEmail(email)
	}
	return isAcademic
}
