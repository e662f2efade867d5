package slotmailbox

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"backoffice-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type redisSlotMailbox struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
}

// NewRedisSlotMailbox keeps one pending slot per session. An unread slot expires after ttl.
func NewRedisSlotMailbox(redisRepository contracts.RedisRepository, ttl time.Duration) contracts.SlotMailbox {
	return &redisSlotMailbox{
		RedisRepository: redisRepository,
		TTL:             ttl,
	}
}

func slotKey(sessionID string) string {
	return constvars.RedisKeySelectedSlotPrefix + sessionID
}

func (m *redisSlotMailbox) Put(ctx context.Context, sessionID string, slot *models.TimeSlot) error {
	return m.RedisRepository.Set(ctx, slotKey(sessionID), slot, m.TTL)
}

func (m *redisSlotMailbox) Take(ctx context.Context, sessionID string) (*models.TimeSlot, error) {
	raw, err := m.RedisRepository.GetDel(ctx, slotKey(sessionID))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	slot := new(models.TimeSlot)
	err = json.Unmarshal([]byte(raw), slot)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return slot, nil
}
