package slotmailbox

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	sharedRedis "backoffice-service/internal/app/services/shared/redis"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisMailbox(t *testing.T) (*miniredis.Miniredis, contracts.SlotMailbox) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, NewRedisSlotMailbox(sharedRedis.NewRedisRepository(client), 30*time.Minute)
}

func TestSlotMailbox_TakeClearsOnRead(t *testing.T) {
	_, redisMailbox := newRedisMailbox(t)
	mailboxes := map[string]contracts.SlotMailbox{
		"redis":  redisMailbox,
		"memory": NewMemorySlotMailbox(),
	}

	for name, mailbox := range mailboxes {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			slot := &models.TimeSlot{StartTime: "9:00 AM", EndTime: "9:30 AM"}
			require.NoError(t, mailbox.Put(ctx, "session-1", slot))

			got, err := mailbox.Take(ctx, "session-1")
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, *slot, *got)

			again, err := mailbox.Take(ctx, "session-1")
			require.NoError(t, err)
			assert.Nil(t, again)
		})
	}
}

func TestSlotMailbox_IsScopedToSession(t *testing.T) {
	ctx := context.Background()
	mailbox := NewMemorySlotMailbox()
	require.NoError(t, mailbox.Put(ctx, "a", &models.TimeSlot{StartTime: "1:00 PM", EndTime: "2:00 PM"}))

	got, err := mailbox.Take(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSlotMailbox_ExpiresUnreadSlot(t *testing.T) {
	ctx := context.Background()
	mr, mailbox := newRedisMailbox(t)
	require.NoError(t, mailbox.Put(ctx, "s", &models.TimeSlot{StartTime: "9:00 AM", EndTime: "9:30 AM"}))

	mr.FastForward(31 * time.Minute)

	got, err := mailbox.Take(ctx, "s")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisSlotMailbox_SingleConsumer(t *testing.T) {
	ctx := context.Background()
	_, mailbox := newRedisMailbox(t)
	require.NoError(t, mailbox.Put(ctx, "s", &models.TimeSlot{StartTime: "9:00 AM", EndTime: "9:30 AM"}))

	var wg sync.WaitGroup
	var mu sync.Mutex
	received := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slot, err := mailbox.Take(ctx, "s")
			if err == nil && slot != nil {
				mu.Lock()
				received++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, received)
}
