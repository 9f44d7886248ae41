package ports

import "context"

// UnreadCounter tracks per-conversation unread message counts. Keyed by
// (receiver, sender); incremented on send, reset when the receiver reads the
// conversation. Implementations are best-effort — callers tolerate failures.
type UnreadCounter interface {
	Incr(ctx context.Context, receiverID, senderID string) error
	Count(ctx context.Context, receiverID, senderID string) (int64, error)
	Reset(ctx context.Context, receiverID, senderID string) error
}
