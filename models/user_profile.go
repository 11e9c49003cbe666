package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID             string   `dynamodbav:"userId" json:"userId"`
	Email              string   `dynamodbav:"email" json:"email"`
	FullName           string   `dynamodbav:"fullName" json:"fullName"`
	College            string   `dynamodbav:"college" json:"college"`
	Branch             string   `dynamodbav:"branch" json:"branch"`
	Year               string   `dynamodbav:"year" json:"year"`
	Bio                string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	AvatarKey          string   `dynamodbav:"avatarKey,omitempty" json:"avatarKey,omitempty"`
	StudentIDKey       string   `dynamodbav:"studentIdKey,omitempty" json:"studentIdKey,omitempty"`
	VerificationStatus string   `dynamodbav:"verificationStatus" json:"verificationStatus"`
	Interests          []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	IsAdmin            bool     `dynamodbav:"isAdmin,omitempty" json:"isAdmin,omitempty"`
	CreatedAt          string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt          string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"
