package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/org-directory/internal/events"
)

// NotificationService turns domain events into structured audit log lines.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRosterLoaded, n.handleRosterLoaded)
	n.dispatcher.Subscribe(events.EventRosterLoadFailed, n.handleRosterLoadFailed)
	n.dispatcher.Subscribe(events.EventPopupHidden, n.handlePopupHidden)
}

func (n *NotificationService) handleRosterLoaded(_ context.Context, event events.Event) error {
	n.logger.Info("RosterLoaded", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleRosterLoadFailed(_ context.Context, event events.Event) error {
	n.logger.Warn("RosterLoadFailed", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handlePopupHidden(_ context.Context, event events.Event) error {
	n.logger.Debug("PopupHidden", zap.String("event_id", event.ID), zap.Any("payload", event.Payload))
	return nil
}
