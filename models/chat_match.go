package models

// ChatMatch links two users for a chat session. Rows are never deleted;
// ending a session flips Status to "ended" and stamps EndedAt.
type ChatMatch struct {
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	User1ID   string `dynamodbav:"user1Id" json:"user1Id"`
	User2ID   string `dynamodbav:"user2Id" json:"user2Id"`
	MatchType string `dynamodbav:"matchType" json:"matchType"` // random, college, branch, interest
	Status    string `dynamodbav:"status" json:"status"`       // active, ended
	PairKey   string `dynamodbav:"pairKey" json:"-"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	EndedAt   string `dynamodbav:"endedAt,omitempty" json:"endedAt,omitempty"`
}

// ActivePair reserves the normalized user pair of an active match so only
// one active match can exist per pair at a time.
type ActivePair struct {
	PairKey string `dynamodbav:"pairKey" json:"pairKey"`
	MatchID string `dynamodbav:"matchId" json:"matchId"`
}

// MatchRoomName derives the realtime room name for a match
func MatchRoomName(matchID string) string {
	return "match-" + matchID
}

// ChatMatchesTable is the DynamoDB table name for matches
const ChatMatchesTable = "ChatMatches"

// ActivePairsTable is the DynamoDB table name for active pair reservations
const ActivePairsTable = "ActivePairs"
