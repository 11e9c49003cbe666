package models

type Message struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
	IsUnread  bool   `dynamodbav:"isUnread" json:"isUnread"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
