package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bizpanel/panel-backend-go/internal/domain/notification"
	"github.com/bizpanel/panel-backend-go/internal/pkg/sse"
)

type queuedNotification struct {
	notification *notification.Notification
	recipients   []string
}

type service struct {
	notificationRepo notification.Repository
	hub              *sse.Hub
	queue            chan queuedNotification
	wg               sync.WaitGroup
	stopOnce         sync.Once
}

// NewService starts a background worker that persists queued
// notifications and pushes them over SSE. Queueing never blocks request
// handling.
func NewService(notificationRepo notification.Repository, hub *sse.Hub) notification.Service {
	s := &service{
		notificationRepo: notificationRepo,
		hub:              hub,
		queue:            make(chan queuedNotification, 100),
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *service) worker() {
	defer s.wg.Done()

	for item := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s.deliver(ctx, item)
		cancel()
	}
}

func (s *service) deliver(ctx context.Context, item queuedNotification) {
	if len(item.recipients) == 0 {
		if err := s.notificationRepo.Create(ctx, item.notification); err != nil {
			slog.Error("failed to store notification",
				"recipient_id", item.notification.RecipientID,
				"type", item.notification.Type,
				"error", err)
			return
		}
		s.push(item.notification)
		return
	}

	ns := make([]*notification.Notification, 0, len(item.recipients))
	for _, recipientID := range item.recipients {
		n := *item.notification
		n.RecipientID = recipientID
		ns = append(ns, &n)
	}
	if err := s.notificationRepo.CreateBatch(ctx, ns); err != nil {
		slog.Error("failed to store notification batch",
			"recipients", len(ns),
			"type", item.notification.Type,
			"error", err)
		return
	}
	for _, n := range ns {
		s.push(n)
	}
}

func (s *service) push(n *notification.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(n.RecipientID, sse.Event{
		UserID: n.RecipientID,
		Event:  "notification",
		Data:   toResponse(n),
	})
}

func (s *service) Queue(ctx context.Context, req notification.CreateRequest) error {
	return s.enqueue(queuedNotification{notification: fromRequest(req)})
}

func (s *service) QueueForMany(ctx context.Context, recipientIDs []string, req notification.CreateRequest) error {
	if len(recipientIDs) == 0 {
		return nil
	}
	return s.enqueue(queuedNotification{
		notification: fromRequest(req),
		recipients:   recipientIDs,
	})
}

func (s *service) enqueue(item queuedNotification) error {
	select {
	case s.queue <- item:
	default:
		// Queue full; drop rather than stall the request path.
		slog.Warn("notification queue full, dropping notification",
			"type", item.notification.Type)
	}
	return nil
}

func (s *service) List(ctx context.Context, recipientID string, unreadOnly bool) ([]notification.Response, error) {
	ns, err := s.notificationRepo.GetByRecipient(ctx, recipientID, unreadOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.Response, 0, len(ns))
	for _, n := range ns {
		responses = append(responses, toResponse(n))
	}
	return responses, nil
}

func (s *service) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.notificationRepo.GetUnreadCount(ctx, recipientID)
}

func (s *service) MarkRead(ctx context.Context, recipientID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.notificationRepo.MarkAsRead(ctx, ids, recipientID)
}

func (s *service) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.notificationRepo.MarkAllAsRead(ctx, recipientID)
}

func (s *service) ClearAll(ctx context.Context) error {
	return s.notificationRepo.DeleteAll(ctx)
}

// Stop drains the queue and waits for the worker to finish.
func (s *service) Stop() {
	s.stopOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

func fromRequest(req notification.CreateRequest) *notification.Notification {
	return &notification.Notification{
		RecipientID: req.RecipientID,
		SenderID:    req.SenderID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		Data:        req.Data,
	}
}

func toResponse(n *notification.Notification) notification.Response {
	return notification.Response{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
