package queue

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"obsydia_retail/internal/config"
	"obsydia_retail/internal/domain/entities"
	"obsydia_retail/internal/infrastructure/awscfg"
	"obsydia_retail/internal/infrastructure/logging"
	"obsydia_retail/internal/usecase/interfaces"
)

var ErrMissingQueueURL = errors.New("missing SQS_QUEUE_URL")

// SQSAPI is the subset of *sqs.Client the notifier uses.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier hands rendered notifications to a mail worker through SQS.
// The message body is the JSON-encoded entities.Notification.
type SQSNotifier struct {
	client   SQSAPI
	queueURL string
}

var _ interfaces.INotifier = (*SQSNotifier)(nil)

func NewSQSNotifier(client SQSAPI, queueURL string) *SQSNotifier {
	return &SQSNotifier{client: client, queueURL: queueURL}
}

// NewSQSClient builds an SQS client; endpoint is optional (e.g. ElasticMQ).
func NewSQSClient(ctx context.Context, awsCfg config.AWSConfig, endpoint string) (*sqs.Client, error) {
	cfg, err := awscfg.Load(ctx, awsCfg)
	if err != nil {
		return nil, err
	}
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func (n *SQSNotifier) Send(ctx context.Context, msg entities.Notification) error {
	if n.queueURL == "" {
		logging.L().Errorf("[notification][sqs] missing SQS_QUEUE_URL")
		return ErrMissingQueueURL
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	out, err := n.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"kind": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(msg.Kind)),
			},
		},
	})
	if err != nil {
		logging.L().Errorf("[notification][sqs] send failed kind=%s err=%v", msg.Kind, err)
		return err
	}
	logging.L().Infof("[notification][sqs] enqueued kind=%s message_id=%s recipients=%d", msg.Kind, aws.ToString(out.MessageId), len(msg.To))
	return nil
}
