package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/parvarora1603/BTechConnect/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type AnalyticsService struct {
	Dynamo DynamoAPI
}

// TrackEvent appends a lifecycle event to the analytics log. It is
// best-effort: failures are logged and never surfaced to the caller.
func (as *AnalyticsService) TrackEvent(ctx context.Context, userID, eventType string, eventData map[string]interface{}) {
	if eventData == nil {
		eventData = map[string]interface{}{}
	}

	event := models.AnalyticsEvent{
		EventID:   uuid.NewString(),
		UserID:    userID,
		EventType: eventType,
		EventData: eventData,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := as.Dynamo.PutItem(ctx, models.AnalyticsEventsTable, event); err != nil {
		log.Printf("Error tracking event %q for user %s: %v", eventType, userID, err)
	}
}

// timeframeCutoff maps a timeframe label to its window start. Unknown
// labels fall back to a week, matching the dashboard default.
func timeframeCutoff(timeframe string, now time.Time) time.Time {
	switch timeframe {
	case "day":
		return now.AddDate(0, 0, -1)
	case "month":
		return now.AddDate(0, 0, -30)
	default: // week
		return now.AddDate(0, 0, -7)
	}
}

// GetEvents lists events of one type within a timeframe, newest first
func (as *AnalyticsService) GetEvents(ctx context.Context, eventType, timeframe string) ([]models.AnalyticsEvent, error) {
	cutoff := timeframeCutoff(timeframe, time.Now().UTC()).Format(time.RFC3339)

	filterExpression := "#eventType = :eventType AND #createdAt > :cutoff"
	expressionAttributeValues := map[string]types.AttributeValue{
		":eventType": &types.AttributeValueMemberS{Value: eventType},
		":cutoff":    &types.AttributeValueMemberS{Value: cutoff},
	}
	expressionAttributeNames := map[string]string{
		"#eventType": "eventType",
		"#createdAt": "createdAt",
	}

	var events []models.AnalyticsEvent
	err := as.Dynamo.ScanWithFilter(ctx, models.AnalyticsEventsTable, filterExpression, expressionAttributeValues, expressionAttributeNames, &events)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analytics events: %w", err)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt > events[j].CreatedAt
	})

	return events, nil
}
