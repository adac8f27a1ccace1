package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"obsydia_retail/internal/config"
	"obsydia_retail/internal/infrastructure/awscfg"
	"obsydia_retail/internal/infrastructure/logging"
)

// ConnectDynamoDB creates a DynamoDB client from the AWS section of the config.
//
// DynamoDBEndpoint is optional; set it for DynamoDB Local
// (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg config.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := awscfg.Load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logging.L().Infof("[database][dynamodb] client ready region=%s endpoint=%q table=%s", cfg.Region, cfg.DynamoDBEndpoint, cfg.OrdersTable)
	return NewDynamoDBClient(awsCfg, cfg.DynamoDBEndpoint), nil
}

func NewDynamoDBClient(awsCfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
