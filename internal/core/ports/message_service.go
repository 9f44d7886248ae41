package ports

import (
	"context"

	"github.com/sounddesk/client-portal/internal/core/domain"
)

// MyConversation is the client-facing conversation view; AdminID lets the
// client address replies without a separate lookup.
type MyConversation struct {
	Messages []domain.Message
	AdminID  string
}

type MessageService interface {
	Send(ctx context.Context, caller Caller, receiverID, content string) (*domain.Message, error)
	// Conversation is the explicit form: the admin (or the client itself)
	// fetches the admin↔client thread.
	Conversation(ctx context.Context, caller Caller, clientID string) ([]domain.Message, error)
	// MyConversation is the implicit client form. Admins get
	// domain.ErrForbidden and must use Conversation.
	MyConversation(ctx context.Context, caller Caller) (*MyConversation, error)
}
