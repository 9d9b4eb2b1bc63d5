package db

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sh5080/quickvest-go/pkg/configs"
)

// NewDynamoClient builds a DynamoDB client from the AWS section of config.
// Static keys win over the default credential chain when both are set.
func NewDynamoClient(ctx context.Context, config *configs.EnvConfig) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.AWS.Region),
	}

	if config.AWS.AccessKeyID != "" && config.AWS.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				config.AWS.AccessKeyID,
				config.AWS.SecretAccessKey,
				"",
			),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	// DynamoDB Local, LocalStack
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if config.AWS.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(config.AWS.DynamoDBEndpoint)
		}
	})

	return client, nil
}
