package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	_interface "github.com/sh5080/quickvest-go/pkg/interfaces"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
)

const (
	keyAppName   = "AppName"
	attrTTL      = "expiresAt"
	tableTimeout = 2 * time.Minute
)

// DynamoDBAPI is the subset of *dynamodb.Client the repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	UpdateTimeToLive(ctx context.Context, params *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error)
}

// ServerStatusRepository stores one heartbeat item per app name.
type ServerStatusRepository struct {
	client    DynamoDBAPI
	tableName string
}

var _ _interface.ServerStatusRepository = (*ServerStatusRepository)(nil)

func NewServerStatusRepository(client DynamoDBAPI, tableName string) *ServerStatusRepository {
	return &ServerStatusRepository{
		client:    client,
		tableName: tableName,
	}
}

// EnsureTable creates the table (with TTL on expiresAt) when it does not exist yet.
func (r *ServerStatusRepository) EnsureTable(ctx context.Context) error {
	exists, err := r.tableExists(ctx)
	if err != nil {
		return fmt.Errorf("describe table %s: %w", r.tableName, err)
	}
	if exists {
		return nil
	}

	_, err = r.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(r.tableName),
		AttributeDefinitions: []types.AttributeDefinition{
			{
				AttributeName: aws.String(keyAppName),
				AttributeType: types.ScalarAttributeTypeS,
			},
		},
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String(keyAppName),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("create table %s: %w", r.tableName, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(r.client, func(o *dynamodb.TableExistsWaiterOptions) {
		o.MinDelay = time.Second
		o.MaxDelay = 10 * time.Second
	})
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	}, tableTimeout); err != nil {
		return fmt.Errorf("wait for table %s: %w", r.tableName, err)
	}

	_, err = r.client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(r.tableName),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String(attrTTL),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("enable ttl on %s: %w", r.tableName, err)
	}

	return nil
}

func (r *ServerStatusRepository) tableExists(ctx context.Context) (bool, error) {
	_, err := r.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UpdateServerStatus overwrites the heartbeat for status.AppName.
func (r *ServerStatusRepository) UpdateServerStatus(ctx context.Context, status *model.ServerStatus) error {
	item, err := attributevalue.MarshalMap(status)
	if err != nil {
		return fmt.Errorf("marshal server status: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put server status: %w", err)
	}

	return nil
}

// GetServerStatus returns nil, nil when no heartbeat exists or it has expired.
func (r *ServerStatusRepository) GetServerStatus(ctx context.Context, appName string) (*model.ServerStatus, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			keyAppName: &types.AttributeValueMemberS{Value: appName},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get server status: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var status model.ServerStatus
	if err := attributevalue.UnmarshalMap(result.Item, &status); err != nil {
		return nil, fmt.Errorf("unmarshal server status: %w", err)
	}

	// TTL deletion is lazy on DynamoDB's side
	if !status.ExpiresAt.IsZero() && time.Now().After(status.ExpiresAt) {
		return nil, nil
	}

	return &status, nil
}
