package services

import "errors"

var (
	// profile / preference errors
	ErrProfileNotFound = errors.New("user profile not found")

	// match errors
	ErrNoCandidates   = errors.New("no candidates found")
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("user is not a participant of this match")

	// token errors
	ErrMissingCredentials = errors.New("room token credentials are not configured")

	// storage errors
	ErrConditionFailed = errors.New("conditional write failed")
	ErrItemNotFound    = errors.New("item not found")
)
