package ports

import (
	"context"

	"github.com/sounddesk/client-portal/internal/core/domain"
)

// MessageRepository persists direct messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	// FindConversation returns all messages between a and b in either
	// direction, ordered by creation time ascending.
	FindConversation(ctx context.Context, a, b string) ([]domain.Message, error)
	// MarkRead flips the read flag on messages from senderID to receiverID.
	MarkRead(ctx context.Context, receiverID, senderID string) error
	DeleteAll(ctx context.Context) error
}
