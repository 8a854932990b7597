package consumer

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/config"
	"github.com/BarkinBalci/donation-session-service/internal/queue"
	"github.com/BarkinBalci/donation-session-service/internal/repository"
)

// jobVisibilityTimeout hides a received job from other consumers while it runs
const jobVisibilityTimeout = 15 * 60

// Consumer orchestrates the receive, parse and run stages for generation jobs
type Consumer struct {
	receiver *Receiver
	parser   *ParserStage
	runner   *JobRunner
}

// NewConsumer creates a consumer that writes generated rows to repo
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, repo repository.SessionRowWriter, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{
		MaxMessages:       1,
		WaitTimeSeconds:   20,
		VisibilityTimeout: jobVisibilityTimeout,
	}, log)

	parser := NewParserStage(queueConsumer, NewJSONJobParser(), log)
	runner := NewJobRunner(NewGenerationExecutor(repo, cfg.Consumer, log), log)

	return &Consumer{
		receiver: receiver,
		parser:   parser,
		runner:   runner,
	}
}

// Start runs the consumer until ctx is done
func (c *Consumer) Start(ctx context.Context) error {
	// Jobs are heavy, so the stages hand over one message at a time.
	messageChan := make(chan types.Message)
	envelopeChan := make(chan *Envelope)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messageChan, envelopeChan)
	}()

	go func() {
		defer wg.Done()
		c.runner.Start(ctx, envelopeChan)
	}()

	wg.Wait()
	return nil
}
