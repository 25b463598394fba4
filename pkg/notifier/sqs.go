package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/chris/travel-payments/pkg/logger"
	"github.com/chris/travel-payments/pkg/models"
)

// SQSAPI is the subset of the SQS client used by SQSNotifier.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier implements the Notifier interface using AWS SQS.
type SQSNotifier struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSNotifier creates a new SQSNotifier.
func NewSQSNotifier(client SQSAPI, queueURL string) *SQSNotifier {
	return &SQSNotifier{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Notifier = (*SQSNotifier)(nil)

// OnBudgetThresholdCrossed enqueues the crossing for the alert fan-out.
func (n *SQSNotifier) OnBudgetThresholdCrossed(ctx context.Context, crossing models.ThresholdCrossing) {
	log := logger.FromContext(ctx)
	if err := n.send(ctx, crossing); err != nil {
		log.Error().Err(err).
			Str("budget_id", crossing.BudgetID).
			Str("threshold", string(crossing.Kind)).
			Msg("failed to publish budget threshold crossing")
		return
	}
	log.Debug().Str("budget_id", crossing.BudgetID).Str("threshold", string(crossing.Kind)).Msg("budget threshold crossing published")
}

func (n *SQSNotifier) send(ctx context.Context, crossing models.ThresholdCrossing) error {
	body, err := json.Marshal(crossing)
	if err != nil {
		return fmt.Errorf("failed to marshal threshold crossing for SQS: %w", err)
	}

	_, err = n.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.QueueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"threshold": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(crossing.Kind)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	return nil
}
