package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/emergency-care/internal/config"
	"github.com/spec-kit/emergency-care/internal/events"
	"github.com/spec-kit/emergency-care/internal/triage"
)

// NotificationService handles emitting notifications for domain events. All
// delivery is stubbed; like the emergency log itself, nothing leaves the
// process.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventSymptomChecked, n.handleSymptomChecked)
	n.dispatcher.Subscribe(events.EventEmergencyRequested, n.handleEmergencyRequested)
}

func (n *NotificationService) handleSymptomChecked(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.SymptomCheckedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("SymptomChecked",
		zap.String("user_id", event.UserID),
		zap.String("risk_level", string(payload.RiskLevel)),
		zap.Int("score", payload.Score))

	if payload.RiskLevel == triage.RiskHigh {
		n.sendWebhookNotificationStub(ctx, event)
	}
	return nil
}

func (n *NotificationService) handleEmergencyRequested(ctx context.Context, event events.Event) error {
	n.logger.Info("EmergencyRequested", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("user_id", event.UserID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("user_id", event.UserID),
		zap.String("event_type", string(event.Type)))
}
