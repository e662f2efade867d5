package slotmailbox

import (
	"backoffice-service/internal/app/contracts"
	"backoffice-service/internal/app/models"
	"context"
	"sync"
)

type memorySlotMailbox struct {
	mu    sync.Mutex
	slots map[string]models.TimeSlot
}

func NewMemorySlotMailbox() contracts.SlotMailbox {
	return &memorySlotMailbox{slots: make(map[string]models.TimeSlot)}
}

func (m *memorySlotMailbox) Put(ctx context.Context, sessionID string, slot *models.TimeSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[sessionID] = *slot
	return nil
}

func (m *memorySlotMailbox) Take(ctx context.Context, sessionID string) (*models.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	slot, ok := m.slots[sessionID]
	if !ok {
		return nil, nil
	}
	delete(m.slots, sessionID)
	return &slot, nil
}
