package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/MO-OUISSI/commercewebsite-public/internal/domain"
)

// DynamoCartStore keeps carts in the same single-table layout as orders:
// PK CART#<key>, SK ITEMS, the line items marshaled as a list.
type DynamoCartStore struct {
	client    *dynamodb.Client
	tableName string
}

type cartRecord struct {
	Items     []domain.CartItem `dynamodbav:"items"`
	UpdatedAt time.Time         `dynamodbav:"updated_at"`
}

func NewDynamoCartStore(client *dynamodb.Client, tableName string) *DynamoCartStore {
	return &DynamoCartStore{
		client:    client,
		tableName: tableName,
	}
}

func (s *DynamoCartStore) key(cartKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("CART#%s", cartKey)},
		"SK": &types.AttributeValueMemberS{Value: "ITEMS"},
	}
}

func (s *DynamoCartStore) Load(cartKey string) ([]domain.CartItem, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tableName),
		Key:            s.key(cartKey),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("get cart %s: %w", cartKey, err)
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var rec cartRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, false, fmt.Errorf("unmarshal cart %s: %w", cartKey, err)
	}
	return rec.Items, true, nil
}

func (s *DynamoCartStore) Save(cartKey string, items []domain.CartItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	av, err := attributevalue.MarshalMap(cartRecord{
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal cart %s: %w", cartKey, err)
	}
	for k, v := range s.key(cartKey) {
		av[k] = v
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put cart %s: %w", cartKey, err)
	}
	return nil
}

func (s *DynamoCartStore) Delete(cartKey string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.key(cartKey),
	})
	if err != nil {
		return fmt.Errorf("delete cart %s: %w", cartKey, err)
	}
	return nil
}
