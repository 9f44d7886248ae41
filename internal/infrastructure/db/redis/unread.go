package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// UnreadCounter tracks unread message counts per conversation direction.
// Key format: unread:<receiver_id>:<sender_id>
//
// Counters are advisory: the message store is the source of truth and callers
// treat counter failures as zero.
type UnreadCounter struct {
	client *redis.Client
}

// NewUnreadCounter creates an UnreadCounter wrapping the given Redis client.
func NewUnreadCounter(client *redis.Client) *UnreadCounter {
	return &UnreadCounter{client: client}
}

// Incr bumps the receiver's unread count for messages from senderID.
func (u *UnreadCounter) Incr(ctx context.Context, receiverID, senderID string) error {
	return u.client.Incr(ctx, u.key(receiverID, senderID)).Err()
}

// Count returns the receiver's unread count for messages from senderID.
// A missing key reads as zero.
func (u *UnreadCounter) Count(ctx context.Context, receiverID, senderID string) (int64, error) {
	n, err := u.client.Get(ctx, u.key(receiverID, senderID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return n, nil
}

// Reset clears the counter after the receiver reads the conversation.
func (u *UnreadCounter) Reset(ctx context.Context, receiverID, senderID string) error {
	return u.client.Del(ctx, u.key(receiverID, senderID)).Err()
}

func (u *UnreadCounter) key(receiverID, senderID string) string {
	return fmt.Sprintf("unread:%s:%s", receiverID, senderID)
}
