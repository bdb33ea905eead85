package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/jaekwang-park/todo-cloud/internal/model"
)

// Table key attributes: userId is the partition key, todoId the sort key.
const (
	attrUserID = "userId"
	attrTodoID = "todoId"
)

// DynamoAPI is the subset of the DynamoDB client used by DynamoStore.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// DynamoStore implements TodoStore on a single DynamoDB table.
type DynamoStore struct {
	api   DynamoAPI
	table string
	now   func() time.Time
	newID func() string
}

// NewDynamoStore creates a DynamoStore backed by the given API client.
func NewDynamoStore(api DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{
		api:   api,
		table: table,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
}

// NewDynamoClient builds a DynamoDB client from the default AWS config chain.
func NewDynamoClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func (s *DynamoStore) key(userID, todoID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrUserID: &types.AttributeValueMemberS{Value: userID},
		attrTodoID: &types.AttributeValueMemberS{Value: todoID},
	}
}

func (s *DynamoStore) List(ctx context.Context, userID string) ([]model.Todo, error) {
	out, err := s.api.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("userId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}

	todos := make([]model.Todo, 0, len(out.Items))
	for _, item := range out.Items {
		var todo model.Todo
		if err := attributevalue.UnmarshalMap(item, &todo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal todo: %w", err)
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func (s *DynamoStore) Get(ctx context.Context, userID, todoID string) (model.Todo, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(userID, todoID),
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}
	if len(out.Item) == 0 {
		return model.Todo{}, ErrNotFound
	}

	var todo model.Todo
	if err := attributevalue.UnmarshalMap(out.Item, &todo); err != nil {
		return model.Todo{}, fmt.Errorf("failed to unmarshal todo: %w", err)
	}
	return todo, nil
}

func (s *DynamoStore) Create(ctx context.Context, userID string, data model.CreateTodoData) (model.Todo, error) {
	now := s.now()
	todo := model.Todo{
		TodoID:      s.newID(),
		UserID:      userID,
		Title:       data.Title,
		Description: data.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to marshal todo: %w", err)
	}

	if _, err := s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return model.Todo{}, fmt.Errorf("failed to put todo: %w", err)
	}
	return todo, nil
}

// Update reads the item first so that a missing or foreign-owned todo is
// reported as ErrNotFound rather than silently upserted. Only fields
// present in the patch are written; updatedAt is always refreshed.
func (s *DynamoStore) Update(ctx context.Context, userID, todoID string, patch model.UpdateTodoData) (model.Todo, error) {
	if _, err := s.Get(ctx, userID, todoID); err != nil {
		return model.Todo{}, err
	}

	updatedAt, err := attributevalue.Marshal(s.now())
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	expr := "SET #updatedAt = :updatedAt"
	names := map[string]string{"#updatedAt": "updatedAt"}
	values := map[string]types.AttributeValue{":updatedAt": updatedAt}

	if patch.Title != nil {
		expr += ", #title = :title"
		names["#title"] = "title"
		values[":title"] = &types.AttributeValueMemberS{Value: *patch.Title}
	}
	if patch.Description != nil {
		expr += ", #description = :description"
		names["#description"] = "description"
		values[":description"] = &types.AttributeValueMemberS{Value: *patch.Description}
	}
	if patch.Completed != nil {
		expr += ", #completed = :completed"
		names["#completed"] = "completed"
		values[":completed"] = &types.AttributeValueMemberBOOL{Value: *patch.Completed}
	}

	out, err := s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table),
		Key:                       s.key(userID, todoID),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("failed to update todo: %w", err)
	}

	var todo model.Todo
	if err := attributevalue.UnmarshalMap(out.Attributes, &todo); err != nil {
		return model.Todo{}, fmt.Errorf("failed to unmarshal updated todo: %w", err)
	}
	return todo, nil
}

func (s *DynamoStore) Delete(ctx context.Context, userID, todoID string) error {
	if _, err := s.Get(ctx, userID, todoID); err != nil {
		return err
	}

	if _, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       s.key(userID, todoID),
	}); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// ensure compile-time interface compliance
var _ TodoStore = (*DynamoStore)(nil)
