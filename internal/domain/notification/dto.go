package notification

import "context"

type CreateRequest struct {
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}
}

type Response struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	IsRead    bool                   `json:"is_read"`
	CreatedAt string                 `json:"created_at"`
}

// Service queues notifications for storage and live delivery. Queue
// never blocks the caller; delivery is best effort.
type Service interface {
	Queue(ctx context.Context, req CreateRequest) error
	QueueForMany(ctx context.Context, recipientIDs []string, req CreateRequest) error
	List(ctx context.Context, recipientID string, unreadOnly bool) ([]Response, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, recipientID string, ids []string) error
	MarkAllRead(ctx context.Context, recipientID string) error
	ClearAll(ctx context.Context) error
	Stop()
}
