package services

import (
	"context"
	"strings"

	"github.com/parvarora1603/BTechConnect/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tableKeys maps each table to its key attributes, in key order
var tableKeys = map[string][]string{
	models.UserProfilesTable:    {"userId"},
	models.UserPreferencesTable: {"userId"},
	models.ChatMatchesTable:     {"matchId"},
	models.ActivePairsTable:     {"pairKey"},
	models.AnalyticsEventsTable: {"eventId"},
	models.MessagesTable:        {"matchId", "messageId"},
}

// fakeDynamo is an in-memory DynamoAPI. It stores marshalled attribute maps
// per table and evaluates the small expression grammar the services use
// (=, <>, >, contains, AND, OR).
type fakeDynamo struct {
	tables map[string]map[string]map[string]types.AttributeValue

	// putErr fails every PutItem when set
	putErr error
	// onPutIfAbsent runs before each conditional put; used to simulate a
	// competing writer winning the race
	onPutIfAbsent func()
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = map[string]map[string]types.AttributeValue{}
	}
	return f.tables[name]
}

func attrString(item map[string]types.AttributeValue, attr string) (string, bool) {
	if v, ok := item[attr].(*types.AttributeValueMemberS); ok {
		return v.Value, true
	}
	return "", false
}

func (f *fakeDynamo) compositeKey(tableName string, item map[string]types.AttributeValue) string {
	parts := make([]string, 0, 2)
	for _, attr := range tableKeys[tableName] {
		v, _ := attrString(item, attr)
		parts = append(parts, v)
	}
	return strings.Join(parts, "|")
}

func (f *fakeDynamo) put(tableName string, item interface{}) (map[string]types.AttributeValue, error) {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, err
	}
	f.table(tableName)[f.compositeKey(tableName, marshaled)] = marshaled
	return marshaled, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	item, ok := f.table(tableName)[f.compositeKey(tableName, key)]
	if !ok {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, tableName string, item interface{}) error {
	if f.putErr != nil {
		return f.putErr
	}
	_, err := f.put(tableName, item)
	return err
}

func (f *fakeDynamo) PutItemIfAbsent(_ context.Context, tableName string, item interface{}, _ string) error {
	if f.onPutIfAbsent != nil {
		f.onPutIfAbsent()
	}
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	key := f.compositeKey(tableName, marshaled)
	if _, exists := f.table(tableName)[key]; exists {
		return ErrConditionFailed
	}
	f.table(tableName)[key] = marshaled
	return nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, tableName string, updateExpression string, key map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) (map[string]types.AttributeValue, error) {
	compositeKey := f.compositeKey(tableName, key)
	item, ok := f.table(tableName)[compositeKey]
	if !ok {
		item = map[string]types.AttributeValue{}
		for attr, v := range key {
			item[attr] = v
		}
	}

	updated := map[string]types.AttributeValue{}
	for attr, v := range item {
		updated[attr] = v
	}

	assignments := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(updateExpression), "SET"))
	for _, assignment := range strings.Split(assignments, ",") {
		parts := strings.SplitN(assignment, "=", 2)
		if len(parts) != 2 {
			continue
		}
		attr := resolveName(strings.TrimSpace(parts[0]), names)
		placeholder := strings.TrimSpace(parts[1])
		updated[attr] = values[placeholder]
	}

	f.table(tableName)[compositeKey] = updated
	return updated, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, tableName string, key map[string]types.AttributeValue) error {
	delete(f.table(tableName), f.compositeKey(tableName, key))
	return nil
}

func (f *fakeDynamo) QueryItems(_ context.Context, tableName string, keyConditionExpression string, values map[string]types.AttributeValue, names map[string]string, limit int32) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for _, item := range f.table(tableName) {
		if evalExpression(keyConditionExpression, item, values, names) {
			items = append(items, item)
		}
		if limit > 0 && int32(len(items)) >= limit {
			break
		}
	}
	return items, nil
}

func (f *fakeDynamo) ScanWithFilter(_ context.Context, tableName string, filterExpression string, values map[string]types.AttributeValue, names map[string]string, result interface{}) error {
	var items []map[string]types.AttributeValue
	for _, item := range f.table(tableName) {
		if filterExpression == "" || evalExpression(filterExpression, item, values, names) {
			items = append(items, item)
		}
	}
	return attributevalue.UnmarshalListOfMaps(items, result)
}

func resolveName(token string, names map[string]string) string {
	if strings.HasPrefix(token, "#") {
		return names[token]
	}
	return token
}

// evalExpression evaluates AND-joined clauses, each optionally OR-joined
func evalExpression(expression string, item map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) bool {
	for _, clause := range strings.Split(expression, " AND ") {
		anyTrue := false
		for _, alternative := range strings.Split(clause, " OR ") {
			if evalClause(strings.TrimSpace(alternative), item, values, names) {
				anyTrue = true
				break
			}
		}
		if !anyTrue {
			return false
		}
	}
	return true
}

func evalClause(clause string, item map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) bool {
	switch {
	case strings.HasPrefix(clause, "contains("):
		inside := strings.TrimSuffix(strings.TrimPrefix(clause, "contains("), ")")
		parts := strings.SplitN(inside, ",", 2)
		if len(parts) != 2 {
			return false
		}
		attr := resolveName(strings.TrimSpace(parts[0]), names)
		want, _ := attrString(values, strings.TrimSpace(parts[1]))
		list, ok := item[attr].(*types.AttributeValueMemberL)
		if !ok {
			return false
		}
		for _, member := range list.Value {
			if s, ok := member.(*types.AttributeValueMemberS); ok && s.Value == want {
				return true
			}
		}
		return false

	case strings.Contains(clause, "<>"):
		parts := strings.SplitN(clause, "<>", 2)
		got, _ := attrString(item, resolveName(strings.TrimSpace(parts[0]), names))
		want, _ := attrString(values, strings.TrimSpace(parts[1]))
		return got != want

	case strings.Contains(clause, ">"):
		parts := strings.SplitN(clause, ">", 2)
		got, _ := attrString(item, resolveName(strings.TrimSpace(parts[0]), names))
		want, _ := attrString(values, strings.TrimSpace(parts[1]))
		return got > want

	case strings.Contains(clause, "="):
		parts := strings.SplitN(clause, "=", 2)
		got, ok := attrString(item, resolveName(strings.TrimSpace(parts[0]), names))
		want, _ := attrString(values, strings.TrimSpace(parts[1]))
		return ok && got == want
	}
	return false
}
