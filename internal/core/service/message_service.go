package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sounddesk/client-portal/internal/api/metrics"
	"github.com/sounddesk/client-portal/internal/core/domain"
	"github.com/sounddesk/client-portal/internal/core/ports"
)

// MessageService implements direct messaging. Every conversation is the pair
// (admin, one client): a client may only address the admin and the admin may
// only address existing clients.
type MessageService struct {
	clients  ports.ClientRepository
	messages ports.MessageRepository
	unread   ports.UnreadCounter
	logger   zerolog.Logger
}

func NewMessageService(clients ports.ClientRepository, messages ports.MessageRepository, unread ports.UnreadCounter, logger zerolog.Logger) *MessageService {
	return &MessageService{clients: clients, messages: messages, unread: unread, logger: logger}
}

func (s *MessageService) Send(ctx context.Context, caller ports.Caller, receiverID, content string) (*domain.Message, error) {
	if receiverID == "" || strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidInput
	}

	receiver, err := s.clients.FindByID(ctx, receiverID)
	if err != nil {
		return nil, err
	}
	// pair invariant: one side of every message is the admin
	if caller.IsAdmin == receiver.IsAdmin {
		return nil, domain.ErrForbidden
	}

	msg := &domain.Message{
		SenderID:   caller.ID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := s.messages.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	if err := s.unread.Incr(ctx, receiverID, caller.ID); err != nil {
		s.logger.Warn().Err(err).Str("receiver", receiverID).Msg("unread counter increment failed")
	}

	metrics.MessagesSentTotal.Inc()
	return created, nil
}

// Conversation returns the admin↔client thread for clientID, both directions,
// oldest first. The caller must be the admin or that client. Messages
// addressed to the caller are marked read.
func (s *MessageService) Conversation(ctx context.Context, caller ports.Caller, clientID string) ([]domain.Message, error) {
	if !canAccess(caller, clientID) {
		return nil, domain.ErrForbidden
	}

	// the counterpart is the named client for the admin, the admin otherwise
	other := clientID
	if !caller.IsAdmin {
		admin, err := s.clients.FindAdmin(ctx)
		if err != nil {
			return nil, err
		}
		other = admin.ID
	}

	msgs, err := s.messages.FindConversation(ctx, caller.ID, other)
	if err != nil {
		return nil, err
	}

	s.markRead(ctx, caller.ID, other)
	return msgs, nil
}

// MyConversation is the client-facing form: the admin counterpart is implicit
// and its id is returned so the client can address replies.
func (s *MessageService) MyConversation(ctx context.Context, caller ports.Caller) (*ports.MyConversation, error) {
	if caller.IsAdmin {
		return nil, domain.ErrForbidden
	}

	admin, err := s.clients.FindAdmin(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messages.FindConversation(ctx, caller.ID, admin.ID)
	if err != nil {
		return nil, err
	}

	s.markRead(ctx, caller.ID, admin.ID)
	return &ports.MyConversation{Messages: msgs, AdminID: admin.ID}, nil
}

func (s *MessageService) markRead(ctx context.Context, receiverID, senderID string) {
	if err := s.messages.MarkRead(ctx, receiverID, senderID); err != nil {
		s.logger.Warn().Err(err).Msg("mark read failed")
	}
	if err := s.unread.Reset(ctx, receiverID, senderID); err != nil {
		s.logger.Warn().Err(err).Msg("unread counter reset failed")
	}
}
