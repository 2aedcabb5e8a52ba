package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ArchivedPayload is published when a lead moves into the archive, so
// downstream systems see every contacted lead without polling the API.
type ArchivedPayload struct {
	CustomerID     string    `json:"customer_id"`
	Company        string    `json:"company"`
	Representative string    `json:"representative"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Subject        string    `json:"subject"`
	Channel        string    `json:"channel"`
	Language       string    `json:"language"`
	ArchivedAt     time.Time `json:"archived_at"`
}

type RabbitMQProducer struct {
	Ch *amqp.Channel
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishArchived(ctx context.Context, payload ArchivedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode archived payload: %w", err)
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
		return fmt.Errorf("failed to publish archived event: %w", err)
	}
	return nil
}
