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

type UserProfileService struct {
	Dynamo DynamoAPI
}

// AddUserProfile adds a new user profile to DynamoDB
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if profile.VerificationStatus == "" {
		profile.VerificationStatus = models.VerificationPending
	}

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// UpdateUserProfile updates fields of an existing user profile. Values may
// be strings or string slices (interests).
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.UserProfile, error) {
	if len(updates) == 0 {
		return ups.GetUserProfile(ctx, userID)
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	updateExpression := "SET"
	expressionAttributeValues := make(map[string]types.AttributeValue)
	expressionAttributeNames := make(map[string]string)

	for k, v := range updates {
		placeholder := ":" + k
		attributeName := "#" + k
		updateExpression += " " + attributeName + " = " + placeholder + ","

		attrValue, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal update value for %q: %w", k, err)
		}
		expressionAttributeValues[placeholder] = attrValue
		expressionAttributeNames[attributeName] = k
	}

	// Always stamp updatedAt alongside the caller's fields
	updateExpression += " #updatedAt = :updatedAt"
	expressionAttributeValues[":updatedAt"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)}
	expressionAttributeNames["#updatedAt"] = "updatedAt"

	updatedItem, err := ups.Dynamo.UpdateItem(ctx, models.UserProfilesTable, updateExpression, key, expressionAttributeValues, expressionAttributeNames)
	if err != nil {
		return nil, err
	}

	var updatedProfile models.UserProfile
	if err := attributevalue.UnmarshalMap(updatedItem, &updatedProfile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %w", err)
	}

	return &updatedProfile, nil
}

// GetPendingVerifications lists profiles awaiting manual review
func (ups *UserProfileService) GetPendingVerifications(ctx context.Context) ([]models.UserProfile, error) {
	filterExpression := "#verificationStatus = :pending"
	expressionAttributeValues := map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: models.VerificationPending},
	}
	expressionAttributeNames := map[string]string{
		"#verificationStatus": "verificationStatus",
	}

	var profiles []models.UserProfile
	err := ups.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, filterExpression, expressionAttributeValues, expressionAttributeNames, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending verifications: %w", err)
	}

	return profiles, nil
}

// SetVerificationStatus resolves a profile's verification status (admin only path)
func (ups *UserProfileService) SetVerificationStatus(ctx context.Context, userID, status string) (*models.UserProfile, error) {
	if status != models.VerificationApproved && status != models.VerificationRejected && status != models.VerificationPending {
		return nil, fmt.Errorf("invalid verification status %q", status)
	}

	return ups.UpdateUserProfile(ctx, userID, map[string]interface{}{
		"verificationStatus": status,
	})
}

// DeleteUserProfile removes a user profile from DynamoDB
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, key)
}
