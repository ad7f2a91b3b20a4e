package storage

import (
	"context"
	"fmt"

	"rsstweetbot/internal/domain/entity"
	"rsstweetbot/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type dynamoStore struct {
	client dynamoAPI
	table  string
}

// NewDynamoDBStore persists publish records in a DynamoDB table whose
// partition key is the entry url.
func NewDynamoDBStore(ctx context.Context, table string) (repository.RecordStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &dynamoStore{client: dynamodb.NewFromConfig(cfg), table: table}, nil
}

func (s *dynamoStore) Exists(ctx context.Context, url string) (bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"url": &types.AttributeValueMemberS{Value: url},
		},
	})
	if err != nil {
		return false, fmt.Errorf("%w: failed to query by url: %v", repository.ErrStoreUnavailable, err)
	}
	return len(out.Item) > 0, nil
}

// Record writes the publish outcome. A concurrent invocation racing on the
// same url is last-write-wins.
func (s *dynamoStore) Record(ctx context.Context, record *entity.PublishRecord) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal publish record: %w", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("%w: failed to put record: %v", repository.ErrStoreUnavailable, err)
	}
	return nil
}
