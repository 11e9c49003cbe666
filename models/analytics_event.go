package models

// AnalyticsEvent is a single append-only lifecycle event
type AnalyticsEvent struct {
	EventID   string                 `dynamodbav:"eventId" json:"eventId"`
	UserID    string                 `dynamodbav:"userId" json:"userId"`
	EventType string                 `dynamodbav:"eventType" json:"eventType"`
	EventData map[string]interface{} `dynamodbav:"eventData,omitempty" json:"eventData,omitempty"`
	CreatedAt string                 `dynamodbav:"createdAt" json:"createdAt"`
}

// AnalyticsEventsTable is the DynamoDB table name for analytics events
const AnalyticsEventsTable = "AnalyticsEvents"
