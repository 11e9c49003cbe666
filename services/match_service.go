package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"github.com/parvarora1603/BTechConnect/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// candidatePoolSize caps the number of candidates considered per request
const candidatePoolSize = 10

type MatchService struct {
	Dynamo      DynamoAPI
	Profiles    *UserProfileService
	Preferences *PreferenceService
	Analytics   *AnalyticsService

	// randIntn picks the candidate index; overridable in tests
	randIntn func(n int) int
}

func NewMatchService(dynamo DynamoAPI, profiles *UserProfileService, preferences *PreferenceService, analytics *AnalyticsService) *MatchService {
	return &MatchService{
		Dynamo:      dynamo,
		Profiles:    profiles,
		Preferences: preferences,
		Analytics:   analytics,
		randIntn:    rand.Intn,
	}
}

// PairKey normalizes an unordered user pair into a single storage key
func PairKey(userA, userB string) string {
	if userA < userB {
		return userA + "#" + userB
	}
	return userB + "#" + userA
}

// CreateOrResumeMatch finds a peer for the requesting user and either
// resumes the active match between the two users or creates a new one.
// At most one active match exists per user pair: the pair is reserved in
// the ActivePairs table with a conditional write, so two users selecting
// each other at the same time still end up in the same match.
func (ms *MatchService) CreateOrResumeMatch(ctx context.Context, userID, matchType string) (*models.ChatMatch, error) {
	profile, err := ms.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Preferences are optional; matching falls back to random when absent
	var prefs *models.UserPreferences
	if ms.Preferences != nil {
		prefs, err = ms.Preferences.GetOrCreatePreferences(ctx, userID)
		if err != nil {
			log.Printf("Failed to load preferences for %s, matching without them: %v", userID, err)
			prefs = nil
		}
	}

	candidates, err := ms.findCandidates(ctx, profile, prefs, matchType)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if len(candidates) > candidatePoolSize {
		candidates = candidates[:candidatePoolSize]
	}

	chosen := candidates[ms.randIntn(len(candidates))]
	pairKey := PairKey(userID, chosen.UserID)

	// Resume the active match between these two users if one exists
	if existing, err := ms.getActiveMatchByPair(ctx, pairKey); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrItemNotFound) {
		return nil, err
	}

	match := models.ChatMatch{
		MatchID:   uuid.NewString(),
		User1ID:   userID,
		User2ID:   chosen.UserID,
		MatchType: matchType,
		Status:    models.MatchStatusActive,
		PairKey:   pairKey,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// Reserve the pair before writing the match row. Losing the
	// reservation race means the other side already created the match.
	reservation := models.ActivePair{PairKey: pairKey, MatchID: match.MatchID}
	err = ms.Dynamo.PutItemIfAbsent(ctx, models.ActivePairsTable, reservation, "pairKey")
	if errors.Is(err, ErrConditionFailed) {
		existing, getErr := ms.getActiveMatchByPair(ctx, pairKey)
		if getErr != nil {
			return nil, fmt.Errorf("pair already reserved but match not readable: %w", getErr)
		}
		return existing, nil
	}
	if err != nil {
		return nil, err
	}

	if err := ms.Dynamo.PutItem(ctx, models.ChatMatchesTable, match); err != nil {
		// Release the reservation so the pair is not locked by a ghost match
		key := map[string]types.AttributeValue{
			"pairKey": &types.AttributeValueMemberS{Value: pairKey},
		}
		if delErr := ms.Dynamo.DeleteItem(ctx, models.ActivePairsTable, key); delErr != nil {
			log.Printf("Failed to release pair reservation %s: %v", pairKey, delErr)
		}
		return nil, err
	}

	if ms.Analytics != nil {
		ms.Analytics.TrackEvent(ctx, userID, models.EventMatchCreated, map[string]interface{}{
			"match_id":      match.MatchID,
			"match_type":    matchType,
			"other_user_id": chosen.UserID,
		})
	}

	return &match, nil
}

// findCandidates scans other users' profiles applying at most one filter
// derived from the match type. A filter whose precondition fails (empty
// college, empty branch, no preferred interests) degrades to random.
func (ms *MatchService) findCandidates(ctx context.Context, profile *models.UserProfile, prefs *models.UserPreferences, matchType string) ([]models.UserProfile, error) {
	filterExpression := "#userId <> :self"
	expressionAttributeValues := map[string]types.AttributeValue{
		":self": &types.AttributeValueMemberS{Value: profile.UserID},
	}
	expressionAttributeNames := map[string]string{
		"#userId": "userId",
	}

	switch {
	case matchType == models.MatchTypeCollege && profile.College != "":
		filterExpression += " AND #college = :college"
		expressionAttributeValues[":college"] = &types.AttributeValueMemberS{Value: profile.College}
		expressionAttributeNames["#college"] = "college"
	case matchType == models.MatchTypeBranch && profile.Branch != "":
		filterExpression += " AND #branch = :branch"
		expressionAttributeValues[":branch"] = &types.AttributeValueMemberS{Value: profile.Branch}
		expressionAttributeNames["#branch"] = "branch"
	case matchType == models.MatchTypeInterest && prefs != nil && len(prefs.PreferredInterests) > 0:
		expressionAttributeNames["#interests"] = "interests"
		for i, interest := range prefs.PreferredInterests {
			placeholder := ":interest" + strconv.Itoa(i)
			filterExpression += " AND contains(#interests, " + placeholder + ")"
			expressionAttributeValues[placeholder] = &types.AttributeValueMemberS{Value: interest}
		}
	}

	var candidates []models.UserProfile
	err := ms.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, filterExpression, expressionAttributeValues, expressionAttributeNames, &candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate profiles: %w", err)
	}

	return candidates, nil
}

// getActiveMatchByPair resolves the pair reservation to its match row
func (ms *MatchService) getActiveMatchByPair(ctx context.Context, pairKey string) (*models.ChatMatch, error) {
	key := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: pairKey},
	}

	item, err := ms.Dynamo.GetItem(ctx, models.ActivePairsTable, key)
	if err != nil {
		return nil, err
	}

	var pair models.ActivePair
	if err := attributevalue.UnmarshalMap(item, &pair); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pair reservation: %w", err)
	}

	return ms.GetMatch(ctx, pair.MatchID)
}

// GetMatch retrieves a match by ID
func (ms *MatchService) GetMatch(ctx context.Context, matchID string) (*models.ChatMatch, error) {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}

	item, err := ms.Dynamo.GetItem(ctx, models.ChatMatchesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	var match models.ChatMatch
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// EndMatch marks a match as ended and releases its pair reservation.
// Either participant may end the match; ending an ended match is a no-op.
func (ms *MatchService) EndMatch(ctx context.Context, matchID, userID string) (*models.ChatMatch, error) {
	match, err := ms.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.User1ID != userID && match.User2ID != userID {
		return nil, ErrNotParticipant
	}
	if match.Status == models.MatchStatusEnded {
		return match, nil
	}

	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	endedAt := time.Now().UTC().Format(time.RFC3339)
	updateExpression := "SET #status = :ended, #endedAt = :endedAt"
	expressionAttributeValues := map[string]types.AttributeValue{
		":ended":   &types.AttributeValueMemberS{Value: models.MatchStatusEnded},
		":endedAt": &types.AttributeValueMemberS{Value: endedAt},
	}
	expressionAttributeNames := map[string]string{
		"#status":  "status",
		"#endedAt": "endedAt",
	}

	updatedItem, err := ms.Dynamo.UpdateItem(ctx, models.ChatMatchesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	pairKeyAttr := map[string]types.AttributeValue{
		"pairKey": &types.AttributeValueMemberS{Value: match.PairKey},
	}
	if err := ms.Dynamo.DeleteItem(ctx, models.ActivePairsTable, pairKeyAttr); err != nil {
		log.Printf("Failed to release pair reservation for match %s: %v", matchID, err)
	}

	if ms.Analytics != nil {
		ms.Analytics.TrackEvent(ctx, userID, models.EventMatchEnded, map[string]interface{}{
			"match_id": matchID,
		})
	}

	var updated models.ChatMatch
	if err := attributevalue.UnmarshalMap(updatedItem, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ended match: %w", err)
	}

	return &updated, nil
}

// GetRecentMatches lists the user's matches, newest first
func (ms *MatchService) GetRecentMatches(ctx context.Context, userID string, limit int) ([]models.ChatMatch, error) {
	filterExpression := "#user1Id = :userId OR #user2Id = :userId"
	expressionAttributeValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	expressionAttributeNames := map[string]string{
		"#user1Id": "user1Id",
		"#user2Id": "user2Id",
	}

	var matches []models.ChatMatch
	err := ms.Dynamo.ScanWithFilter(ctx, models.ChatMatchesTable, filterExpression, expressionAttributeValues, expressionAttributeNames, &matches)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt > matches[j].CreatedAt
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
