package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/parvarora1603/BTechConnect/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type PreferenceService struct {
	Dynamo DynamoAPI
}

// GetOrCreatePreferences returns the user's preferences, creating a default
// all-false row the first time the user reaches the matching surface.
func (ps *PreferenceService) GetOrCreatePreferences(ctx context.Context, userID string) (*models.UserPreferences, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ps.Dynamo.GetItem(ctx, models.UserPreferencesTable, key)
	if err == nil {
		var prefs models.UserPreferences
		if err := attributevalue.UnmarshalMap(item, &prefs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
		}
		return &prefs, nil
	}
	if !errors.Is(err, ErrItemNotFound) {
		return nil, err
	}

	prefs := models.UserPreferences{
		UserID:           userID,
		MatchSameCollege: false,
		MatchSameBranch:  false,
		MatchSameYear:    false,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	if err := ps.Dynamo.PutItem(ctx, models.UserPreferencesTable, prefs); err != nil {
		return nil, err
	}

	return &prefs, nil
}

// UpdatePreferences overwrites the user's preference row
func (ps *PreferenceService) UpdatePreferences(ctx context.Context, prefs models.UserPreferences) (*models.UserPreferences, error) {
	if prefs.UserID == "" {
		return nil, errors.New("userId is required")
	}

	existing, err := ps.GetOrCreatePreferences(ctx, prefs.UserID)
	if err != nil {
		return nil, err
	}

	prefs.CreatedAt = existing.CreatedAt
	prefs.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ps.Dynamo.PutItem(ctx, models.UserPreferencesTable, prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}
