package models

// Verification statuses
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Match types
const (
	MatchTypeRandom   = "random"
	MatchTypeCollege  = "college"
	MatchTypeBranch   = "branch"
	MatchTypeInterest = "interest"
)

// Match statuses
const (
	MatchStatusActive = "active"
	MatchStatusEnded  = "ended"
)

// Analytics event types
const (
	EventMatchCreated = "match_created"
	EventMatchEnded   = "match_ended"
	EventPageView     = "page_view"
)
