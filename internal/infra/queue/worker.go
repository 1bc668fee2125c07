package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderSender is what the worker needs from the mail side.
type ReminderSender interface {
	SendTouchReminder(to, prospectName, touchName, due string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  ReminderSender

	// NotifyTo is the owner inbox reminders land in. Empty disables sending.
	NotifyTo string
}

func NewWorker(ch *amqp.Channel, sender ReminderSender, notifyTo string) *Worker {
	return &Worker{Channel: ch, Sender: sender, NotifyTo: notifyTo}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack off, ack manually
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			w.handle(d)
		}
	}()

	log.Printf(" [*] reminder worker waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) handle(d amqp.Delivery) {
	var payload ReminderPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		log.Printf("[worker] malformed reminder message: %s", err)
		// Malformed message, reject without requeue so the queue keeps moving.
		d.Nack(false, false)
		return
	}

	if w.NotifyTo == "" {
		// Nobody to notify; done.
		d.Ack(false)
		return
	}

	if err := w.Sender.SendTouchReminder(w.NotifyTo, payload.ProspectName, payload.TouchName, payload.Due); err != nil {
		log.Printf("[worker] reminder for %s failed: %s", payload.ProspectName, err)
		d.Nack(false, false)
		return
	}

	log.Printf("[worker] reminder sent for %s (%s due %s)", payload.ProspectName, payload.TouchName, payload.Due)
	d.Ack(false)
}
