package services

import (
	"context"
	"testing"

	"github.com/parvarora1603/BTechConnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	f := newFakeDynamo()
	cs := &ChatService{Dynamo: f}

	sent, err := cs.SendMessage(context.Background(), models.Message{
		MatchID:  "m1",
		SenderID: "a",
		Content:  "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sent.MessageID)
	assert.True(t, sent.IsUnread)
	assert.NotEmpty(t, sent.CreatedAt)
}

func TestSendMessage_RejectsIncomplete(t *testing.T) {
	cs := &ChatService{Dynamo: newFakeDynamo()}

	for _, msg := range []models.Message{
		{SenderID: "a", Content: "hi"},
		{MatchID: "m1", Content: "hi"},
		{MatchID: "m1", SenderID: "a"},
	} {
		_, err := cs.SendMessage(context.Background(), msg)
		assert.Error(t, err)
	}
}

func TestGetMessagesByMatchID_NewestFirst(t *testing.T) {
	f := newFakeDynamo()
	cs := &ChatService{Dynamo: f}

	for _, m := range []models.Message{
		{MatchID: "m1", MessageID: "msg1", SenderID: "a", Content: "first", CreatedAt: "2025-01-01T00:00:00Z"},
		{MatchID: "m1", MessageID: "msg2", SenderID: "b", Content: "second", CreatedAt: "2025-01-01T00:01:00Z"},
		{MatchID: "other", MessageID: "msg3", SenderID: "a", Content: "elsewhere", CreatedAt: "2025-01-01T00:02:00Z"},
	} {
		_, err := f.put(models.MessagesTable, m)
		require.NoError(t, err)
	}

	messages, err := cs.GetMessagesByMatchID(context.Background(), "m1", 50)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Content)
	assert.Equal(t, "first", messages[1].Content)
}

func TestMarkMessagesAsRead_SkipsOwnMessages(t *testing.T) {
	f := newFakeDynamo()
	cs := &ChatService{Dynamo: f}

	for _, m := range []models.Message{
		{MatchID: "m1", MessageID: "mine", SenderID: "a", Content: "sent by me", IsUnread: true, CreatedAt: "2025-01-01T00:00:00Z"},
		{MatchID: "m1", MessageID: "theirs", SenderID: "b", Content: "sent to me", IsUnread: true, CreatedAt: "2025-01-01T00:01:00Z"},
	} {
		_, err := f.put(models.MessagesTable, m)
		require.NoError(t, err)
	}

	require.NoError(t, cs.MarkMessagesAsRead(context.Background(), "m1", "a"))

	messages, err := cs.GetMessagesByMatchID(context.Background(), "m1", 50)
	require.NoError(t, err)
	for _, msg := range messages {
		switch msg.MessageID {
		case "mine":
			assert.True(t, msg.IsUnread)
		case "theirs":
			assert.False(t, msg.IsUnread)
		}
	}
}
