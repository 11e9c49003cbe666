package models

// UserPreferences holds a user's matching preferences. A row is created
// lazily with all toggles off the first time the user opens the chat lobby.
type UserPreferences struct {
	UserID             string   `dynamodbav:"userId" json:"userId"`
	MatchSameCollege   bool     `dynamodbav:"matchSameCollege" json:"matchSameCollege"`
	MatchSameBranch    bool     `dynamodbav:"matchSameBranch" json:"matchSameBranch"`
	MatchSameYear      bool     `dynamodbav:"matchSameYear" json:"matchSameYear"`
	PreferredInterests []string `dynamodbav:"preferredInterests,omitempty" json:"preferredInterests,omitempty"`
	CreatedAt          string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt          string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// UserPreferencesTable is the DynamoDB table name for user preferences
const UserPreferencesTable = "UserPreferences"
