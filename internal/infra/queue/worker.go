package queue

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// LeadNotifier is the outbound side of the worker; today that is the SMTP
// sender in infra/mail.
type LeadNotifier interface {
	NotifyLeadCreated(payload LeadCreatedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
	Logger   *zap.Logger
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier, logger *zap.Logger) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Start consumes lead.created events until the channel closes. Failed
// deliveries are nacked without requeue and dead-letter per topology.
func (w *Worker) Start(queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	w.Logger.Info("notification worker consuming", zap.String("queue", queueName))

	for d := range msgs {
		if err := w.handle(d.Body); err != nil {
			w.Logger.Error("lead notification failed", zap.Error(err))
			d.Nack(false, false)
			continue
		}
		d.Ack(false)
	}

	return nil
}

func (w *Worker) handle(body []byte) error {
	var payload LeadCreatedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("malformed lead.created payload: %w", err)
	}

	w.Logger.Info("notifying new lead",
		zap.String("lead_id", payload.LeadID),
		zap.String("email", payload.Email),
	)

	return w.Notifier.NotifyLeadCreated(payload)
}
