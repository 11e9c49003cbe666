package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/parvarora1603/BTechConnect/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ChatService stores and retrieves the text messages of a match
type ChatService struct {
	Dynamo DynamoAPI
}

// SendMessage stores a new message in the Messages table
func (s *ChatService) SendMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	if message.MatchID == "" || message.SenderID == "" || message.Content == "" {
		return nil, fmt.Errorf("matchId, senderId and content are required")
	}

	message.MessageID = uuid.NewString()
	message.IsUnread = true
	message.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	return &message, nil
}

// GetMessagesByMatchID fetches messages for a given matchId, newest first
func (s *ChatService) GetMessagesByMatchID(ctx context.Context, matchID string, limit int) ([]models.Message, error) {
	keyCondition := "#matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	expressionNames := map[string]string{
		"#matchId": "matchId",
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})

	return messages, nil
}

// MarkMessagesAsRead marks the messages received by a user as read
func (s *ChatService) MarkMessagesAsRead(ctx context.Context, matchID, userID string) error {
	keyCondition := "#matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	expressionNames := map[string]string{
		"#matchId": "matchId",
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, 100)
	if err != nil {
		return fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return fmt.Errorf("failed to parse messages: %w", err)
	}

	for _, msg := range messages {
		// Only messages sent by the other participant become read
		if msg.SenderID == userID || !msg.IsUnread {
			continue
		}

		key := map[string]types.AttributeValue{
			"matchId":   &types.AttributeValueMemberS{Value: matchID},
			"messageId": &types.AttributeValueMemberS{Value: msg.MessageID},
		}
		updateExpression := "SET #isUnread = :false"
		values := map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		}
		names := map[string]string{
			"#isUnread": "isUnread",
		}

		if _, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, values, names); err != nil {
			return fmt.Errorf("failed to mark message %s as read: %w", msg.MessageID, err)
		}
	}

	return nil
}
