package services

import (
	"context"
	"testing"

	"github.com/parvarora1603/BTechConnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserProfile_NotFound(t *testing.T) {
	f := newFakeDynamo()
	ups := &UserProfileService{Dynamo: f}

	_, err := ups.GetUserProfile(context.Background(), "missing")
	require.ErrorIs(t, err, ErrProfileNotFound)
}

func TestAddUserProfile_Defaults(t *testing.T) {
	f := newFakeDynamo()
	ups := &UserProfileService{Dynamo: f}

	created, err := ups.AddUserProfile(context.Background(), models.UserProfile{
		UserID:   "u1",
		Email:    "u1@iitb.ac.in",
		FullName: "Asha",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, created.VerificationStatus)
	assert.NotEmpty(t, created.CreatedAt)

	stored, err := ups.GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, created.VerificationStatus, stored.VerificationStatus)
	assert.Equal(t, "Asha", stored.FullName)
}

func TestUpdateUserProfile(t *testing.T) {
	f := newFakeDynamo()
	ups := &UserProfileService{Dynamo: f}

	addProfile(t, f, models.UserProfile{UserID: "u1", FullName: "Asha", College: "X"})

	updated, err := ups.UpdateUserProfile(context.Background(), "u1", map[string]interface{}{
		"bio":       "CS undergrad",
		"interests": []string{"go", "chess"},
	})
	require.NoError(t, err)
	assert.Equal(t, "CS undergrad", updated.Bio)
	assert.Equal(t, []string{"go", "chess"}, updated.Interests)
	assert.NotEmpty(t, updated.UpdatedAt)
	// Untouched fields survive the partial update
	assert.Equal(t, "Asha", updated.FullName)
	assert.Equal(t, "X", updated.College)
}

func TestUpdateUserProfile_EmptyUpdatesReadsBack(t *testing.T) {
	f := newFakeDynamo()
	ups := &UserProfileService{Dynamo: f}

	addProfile(t, f, models.UserProfile{UserID: "u1", FullName: "Asha"})

	profile, err := ups.UpdateUserProfile(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.FullName)
	assert.Empty(t, profile.UpdatedAt)
}

func TestGetPendingVerifications(t *testing.T) {
	f := newFakeDynamo()
	ups := &UserProfileService{Dynamo: f}

	addProfile(t, f, models.UserProfile{UserID: "u1", VerificationStatus: models.VerificationPending})
	addProfile(t, f, models.UserProfile{UserID: "u2", VerificationStatus: models.VerificationApproved})
	addProfile(t, f, models.UserProfile{UserID: "u3", VerificationStatus: models.VerificationPending})

	pending, err := ups.GetPendingVerifications(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, p := range pending {
		assert.Equal(t, models.VerificationPending, p.VerificationStatus)
	}
}

func TestSetVerificationStatus(t *testing.T) {
	f := newFakeDynamo()
	ups := &UserProfileService{Dynamo: f}

	addProfile(t, f, models.UserProfile{UserID: "u1", VerificationStatus: models.VerificationPending})

	updated, err := ups.SetVerificationStatus(context.Background(), "u1", models.VerificationApproved)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationApproved, updated.VerificationStatus)

	_, err = ups.SetVerificationStatus(context.Background(), "u1", "banned")
	require.Error(t, err)
}

func TestDeleteUserProfile(t *testing.T) {
	f := newFakeDynamo()
	ups := &UserProfileService{Dynamo: f}

	addProfile(t, f, models.UserProfile{UserID: "u1"})
	require.NoError(t, ups.DeleteUserProfile(context.Background(), "u1"))

	_, err := ups.GetUserProfile(context.Background(), "u1")
	require.ErrorIs(t, err, ErrProfileNotFound)
}
