package service

import (
	"encoding/json"

	"rawtails/internal/util"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// EngagementWorker consumes engagement events from RabbitMQ, persisting
// notifications and pushing them over websocket via the engagement
// service.
type EngagementWorker struct {
	engagement EngagementService
	rabbitMQ   *util.RabbitMQClient
	log        *logrus.Logger
	stopChan   chan bool
}

func NewEngagementWorker(
	engagement EngagementService,
	rabbitMQ *util.RabbitMQClient,
	log *logrus.Logger,
) *EngagementWorker {
	return &EngagementWorker{
		engagement: engagement,
		rabbitMQ:   rabbitMQ,
		log:        log,
		stopChan:   make(chan bool),
	}
}

// Start declares the engagement topology and begins consuming. When
// RabbitMQ is unavailable the worker simply does not start; events are
// then handled inline on the request path.
func (w *EngagementWorker) Start() error {
	if w.rabbitMQ == nil {
		return nil
	}

	if err := w.rabbitMQ.DeclareDirect(engagementExchange, engagementQueue, engagementRoutingKey); err != nil {
		return err
	}

	msgs, err := w.rabbitMQ.Consume(engagementQueue, "engagement_worker")
	if err != nil {
		return err
	}

	go func() {
		w.log.Info("Engagement worker started, consuming events")
		for {
			select {
			case <-w.stopChan:
				w.log.Info("Engagement worker stopped")
				return
			case msg, ok := <-msgs:
				if !ok {
					w.log.Warn("Engagement queue closed")
					return
				}
				if err := w.process(msg); err != nil {
					w.log.WithError(err).Error("Failed to process engagement event")
					// Let RabbitMQ requeue it
					msg.Nack(false, true)
				} else {
					msg.Ack(false)
				}
			}
		}
	}()

	return nil
}

func (w *EngagementWorker) process(msg amqp.Delivery) error {
	var event EngagementEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}
	return w.engagement.HandleEvent(event)
}

// Stop stops the engagement worker
func (w *EngagementWorker) Stop() {
	close(w.stopChan)
}
