package consumer

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/config"
	"github.com/Likitha-Gedipudi/social-media-roi-attribution/internal/queue"
)

// Consumer orchestrates a pipeline of stages to process run requests
type Consumer struct {
	receiver   *Receiver
	parser     *ParserStage
	executor   *Executor
	bufferSize int
}

// NewConsumer creates a new consumer with a pipeline architecture
func NewConsumer(cfg config.Worker, queueConsumer queue.QueueConsumer, pipeline PipelineRunner, idempotency RunClaimer, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:     cfg.ReceiveMaxMessages,
		WaitTimeSeconds: cfg.ReceiveWaitTimeSec,
		BufferSize:      cfg.QueueBufferSize,
	}, log)

	parser := NewParserStage(queueConsumer, NewJSONRunParser(), log)

	executor := NewExecutor(pipeline, idempotency, log)

	return &Consumer{
		receiver:   receiver,
		parser:     parser,
		executor:   executor,
		bufferSize: cfg.QueueBufferSize,
	}
}

// Start begins the consumer pipeline
func (c *Consumer) Start(ctx context.Context) error {
	messageChan := make(chan types.Message, c.bufferSize)
	envelopeChan := make(chan *Envelope, c.bufferSize)

	var wg sync.WaitGroup

	// Start all pipeline stages
	wg.Add(3)

	// Stage 1: Receive run requests from SQS
	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	// Stage 2: Parse messages into envelopes
	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messageChan, envelopeChan)
	}()

	// Stage 3: Execute attribution runs
	go func() {
		defer wg.Done()
		c.executor.Start(ctx, envelopeChan)
	}()

	wg.Wait()
	return nil
}
