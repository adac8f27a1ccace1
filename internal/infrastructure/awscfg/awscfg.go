package awscfg

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	appconfig "obsydia_retail/internal/config"
)

// Load builds the shared AWS config used by the DynamoDB and SQS clients.
//
// Static credentials are always set: local emulators (DynamoDB Local,
// ElasticMQ) do not validate them, but the SDK requires some.
func Load(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}
