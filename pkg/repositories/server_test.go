package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	model "github.com/sh5080/quickvest-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	items        map[string]map[string]types.AttributeValue
	tableExists  bool
	createCalls  int
	ttlAttribute string
	putErr       error
	describeErr  error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	key := params.Item[keyAppName].(*types.AttributeValueMemberS).Value
	f.items[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key := params.Key[keyAppName].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	if !f.tableExists {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   params.TableName,
			TableStatus: types.TableStatusActive,
		},
	}, nil
}

func (f *fakeDynamo) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.createCalls++
	f.tableExists = true
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeDynamo) UpdateTimeToLive(ctx context.Context, params *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error) {
	f.ttlAttribute = aws.ToString(params.TimeToLiveSpecification.AttributeName)
	return &dynamodb.UpdateTimeToLiveOutput{}, nil
}

func TestEnsureTable_Creates(t *testing.T) {
	client := newFakeDynamo()
	repo := NewServerStatusRepository(client, "server-status")

	require.NoError(t, repo.EnsureTable(context.Background()))
	assert.Equal(t, 1, client.createCalls)
	assert.Equal(t, "expiresAt", client.ttlAttribute)
}

func TestEnsureTable_Exists(t *testing.T) {
	client := newFakeDynamo()
	client.tableExists = true
	repo := NewServerStatusRepository(client, "server-status")

	require.NoError(t, repo.EnsureTable(context.Background()))
	assert.Zero(t, client.createCalls)
}

func TestEnsureTable_DescribeError(t *testing.T) {
	client := newFakeDynamo()
	client.describeErr = errors.New("access denied")
	repo := NewServerStatusRepository(client, "server-status")

	err := repo.EnsureTable(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestServerStatus_RoundTrip(t *testing.T) {
	client := newFakeDynamo()
	repo := NewServerStatusRepository(client, "server-status")
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	status := &model.ServerStatus{
		AppName:     "quickvest-onboarding",
		Version:     "1.0.0",
		LastUpdated: now,
		ExpiresAt:   now.Add(time.Minute),
		Load:        0.25,
		IsHealthy:   true,
		Capacity:    0.75,
	}
	require.NoError(t, repo.UpdateServerStatus(ctx, status))

	ttl, ok := client.items["quickvest-onboarding"]["expiresAt"].(*types.AttributeValueMemberN)
	require.True(t, ok, "expiresAt should be stored as a number")
	assert.NotEmpty(t, ttl.Value)

	got, err := repo.GetServerStatus(ctx, "quickvest-onboarding")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, 0.25, got.Load)
	assert.True(t, got.ExpiresAt.Equal(status.ExpiresAt))
}

func TestGetServerStatus_MissingOrExpired(t *testing.T) {
	client := newFakeDynamo()
	repo := NewServerStatusRepository(client, "server-status")
	ctx := context.Background()

	got, err := repo.GetServerStatus(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.UpdateServerStatus(ctx, &model.ServerStatus{
		AppName:   "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))
	got, err = repo.GetServerStatus(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateServerStatus_PutError(t *testing.T) {
	client := newFakeDynamo()
	client.putErr = errors.New("throttled")
	repo := NewServerStatusRepository(client, "server-status")

	err := repo.UpdateServerStatus(context.Background(), &model.ServerStatus{AppName: "a"})
	assert.ErrorIs(t, err, client.putErr)
}
