package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notifier mirrors the usecase-level contract. Declared here so the worker
// stays free of usecase imports.
type Notifier interface {
	Send(title, content string) error
}

// Worker consumes lead-captured events and performs the actual owner
// notification, off the request path.
type Worker struct {
	Channel  *amqp.Channel
	Notifier Notifier
}

func NewWorker(ch *amqp.Channel, notifier Notifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
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
		log.Fatalf("❌ [Worker] consume %s: %s", queueName, err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [Worker] invalid payload: %s", err)
				// Malformed message; reject without requeue so it lands
				// in the DLQ instead of blocking the queue.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [Worker] lead captured: %s (%s)", payload.Name, payload.LeadID)

			title, content := payload.Summary()
			if err := w.Notifier.Send(title, content); err != nil {
				// Notification failures are never fatal for the lead.
				log.Printf("⚠️ [Worker] notification failed for %s: %v", payload.LeadID, err)
			}
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}
