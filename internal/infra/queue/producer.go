package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/leadtrack/internal/entity"
)

type LeadCreatedPayload struct {
	LeadID    string    `json:"lead_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{Conn: conn, Ch: ch}
}

// PublishLeadCreated emits a durable lead.created event. The HTTP response
// never waits on delivery guarantees beyond the broker ack.
func (p *Producer) PublishLeadCreated(ctx context.Context, lead *entity.Lead) error {
	payload := LeadCreatedPayload{
		LeadID:    lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Status:    lead.Status,
		CreatedAt: lead.CreatedAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal lead.created payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish lead.created: %w", err)
	}

	return nil
}
