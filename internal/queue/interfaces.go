package queue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/domain"
)

// RunPublisher defines the interface for publishing run requests to a queue
type RunPublisher interface {
	PublishRun(ctx context.Context, run domain.RunRequest) error
}

// QueueConsumer defines the interface for consuming messages from a queue
type QueueConsumer interface {
	ReceiveMessages(ctx context.Context, input *sqs.ReceiveMessageInput) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, input *sqs.DeleteMessageInput) (*sqs.DeleteMessageOutput, error)
	QueueURL() string
}
