package service

import (
	"errors"
	"fmt"

	"rawtails/internal/model"
	"rawtails/internal/repository"
	"rawtails/internal/util"
	"rawtails/internal/websocket"

	"github.com/sirupsen/logrus"
)

const (
	engagementExchange   = "engagement_exchange"
	engagementQueue      = "engagement_queue"
	engagementRoutingKey = "engagement"
)

// EngagementEvent travels over RabbitMQ from the request path to the
// notification worker.
type EngagementEvent struct {
	Type       string `json:"type"` // like, comment, reply
	ActorID    string `json:"actorId"`
	OwnerID    string `json:"ownerId"`
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	CommentID  string `json:"commentId,omitempty"`
}

type EngagementService interface {
	// RecordLike and RecordComment never fail the calling request;
	// delivery problems are logged and dropped.
	RecordLike(actorID, ownerID, targetType, targetID string)
	RecordComment(actorID, ownerID, targetType, targetID, commentID string, isReply bool)

	// HandleEvent is the terminal step: persist plus websocket push.
	HandleEvent(event EngagementEvent) error

	ListNotifications(userID string, limit, offset int) ([]*model.Notification, int64, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error
}

type engagementService struct {
	notificationRepo repository.NotificationRepository
	rabbit           *util.RabbitMQClient
	hub              *websocket.Hub
	log              *logrus.Logger
}

func NewEngagementService(
	notificationRepo repository.NotificationRepository,
	rabbit *util.RabbitMQClient,
	hub *websocket.Hub,
	log *logrus.Logger,
) EngagementService {
	return &engagementService{
		notificationRepo: notificationRepo,
		rabbit:           rabbit,
		hub:              hub,
		log:              log,
	}
}

// RecordLike queues a like notification for the content owner
func (s *engagementService) RecordLike(actorID, ownerID, targetType, targetID string) {
	s.dispatch(EngagementEvent{
		Type:       model.NotificationTypeLike,
		ActorID:    actorID,
		OwnerID:    ownerID,
		TargetType: targetType,
		TargetID:   targetID,
	})
}

// RecordComment queues a comment or reply notification
func (s *engagementService) RecordComment(actorID, ownerID, targetType, targetID, commentID string, isReply bool) {
	eventType := model.NotificationTypeComment
	if isReply {
		eventType = model.NotificationTypeReply
	}
	s.dispatch(EngagementEvent{
		Type:       eventType,
		ActorID:    actorID,
		OwnerID:    ownerID,
		TargetType: targetType,
		TargetID:   targetID,
		CommentID:  commentID,
	})
}

// dispatch publishes the event to RabbitMQ, or handles it inline when
// the broker is unavailable. Users are never notified about their own
// actions.
func (s *engagementService) dispatch(event EngagementEvent) {
	if event.OwnerID == "" || event.ActorID == event.OwnerID {
		return
	}

	if s.rabbit != nil {
		err := s.rabbit.PublishJSON(engagementExchange, engagementRoutingKey, event)
		if err == nil {
			return
		}
		s.log.WithError(err).Warn("Failed to publish engagement event, handling inline")
	}

	if err := s.HandleEvent(event); err != nil {
		s.log.WithError(err).WithField("type", event.Type).Error("Failed to record engagement event")
	}
}

// HandleEvent persists a notification and pushes it to the owner's open
// websocket connections. Called by the worker, and inline when the
// broker is down.
func (s *engagementService) HandleEvent(event EngagementEvent) error {
	notification := &model.Notification{
		UserID:     event.OwnerID,
		ActorID:    event.ActorID,
		Type:       event.Type,
		TargetType: event.TargetType,
		TargetID:   event.TargetID,
		Message:    eventMessage(event),
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}

	if s.hub != nil {
		s.hub.SendToUser(event.OwnerID, "notification", map[string]interface{}{
			"id":         notification.ID,
			"type":       notification.Type,
			"actorId":    notification.ActorID,
			"targetType": notification.TargetType,
			"targetId":   notification.TargetID,
			"message":    notification.Message,
			"createdAt":  notification.CreatedAt,
		})
	}
	return nil
}

// ListNotifications returns the user's notifications newest first plus
// the unread count
func (s *engagementService) ListNotifications(userID string, limit, offset int) ([]*model.Notification, int64, error) {
	notifications, err := s.notificationRepo.FindByUserID(userID, limit, offset)
	if err != nil {
		return nil, 0, errors.New("failed to fetch notifications")
	}
	unread, err := s.notificationRepo.CountUnreadByUserID(userID)
	if err != nil {
		return nil, 0, errors.New("failed to count unread notifications")
	}
	return notifications, unread, nil
}

// MarkRead marks one of the user's own notifications as read
func (s *engagementService) MarkRead(userID, notificationID string) error {
	return s.notificationRepo.MarkAsRead(userID, notificationID)
}

// MarkAllRead marks all the user's notifications as read
func (s *engagementService) MarkAllRead(userID string) error {
	return s.notificationRepo.MarkAllAsRead(userID)
}

func eventMessage(event EngagementEvent) string {
	switch event.Type {
	case model.NotificationTypeLike:
		return fmt.Sprintf("%s liked your %s", event.ActorID, event.TargetType)
	case model.NotificationTypeComment:
		return fmt.Sprintf("%s commented on your %s", event.ActorID, event.TargetType)
	case model.NotificationTypeReply:
		return fmt.Sprintf("%s replied to your comment", event.ActorID)
	default:
		return ""
	}
}
