package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadCapturedPayload is the event published after a lead is persisted.
// The consumer renders it into the owner notification.
type LeadCapturedPayload struct {
	LeadID       string `json:"lead_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	InterestedIn string `json:"interested_in"`
	Borough      string `json:"borough,omitempty"`
	Budget       *int   `json:"budget,omitempty"`
	Message      string `json:"message,omitempty"`
	Source       string `json:"source"`
}

// Summary renders the human-readable owner notification for this lead.
func (p LeadCapturedPayload) Summary() (title, content string) {
	title = "New lead: " + p.Name

	phone := p.Phone
	if phone == "" {
		phone = "not provided"
	}
	borough := p.Borough
	if borough == "" {
		borough = "not provided"
	}
	budget := "not specified"
	if p.Budget != nil {
		budget = fmt.Sprintf("£%d/month", *p.Budget)
	}
	message := p.Message
	if message == "" {
		message = "no additional message"
	}

	var b strings.Builder
	b.WriteString("A new lead submitted the contact form:\n\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Email: %s\n", p.Email)
	fmt.Fprintf(&b, "Phone: %s\n", phone)
	fmt.Fprintf(&b, "Interest: %s\n", p.InterestedIn)
	fmt.Fprintf(&b, "Preferred borough: %s\n", borough)
	fmt.Fprintf(&b, "Budget: %s\n\n", budget)
	fmt.Fprintf(&b, "Message:\n%s\n\n", message)
	b.WriteString("---\nView all leads in the dashboard: /admin/leads")

	return title, b.String()
}

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{Conn: conn, Ch: ch}
}

func (p *Producer) PublishLeadCaptured(ctx context.Context, payload LeadCapturedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal lead payload: %w", err)
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
		return fmt.Errorf("publish lead captured: %w", err)
	}

	return nil
}
