package cart

import (
	"sync"

	"go.uber.org/zap"
)

// Manager hands out one ledger per session key, rehydrating from storage
// on first access. A load failure starts the session empty rather than
// failing it.
type Manager struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
	store   Storage
	logger  *zap.Logger
}

func NewManager(store Storage, logger *zap.Logger) *Manager {
	return &Manager{
		ledgers: make(map[string]*Ledger),
		store:   store,
		logger:  logger,
	}
}

// Ledger returns the ledger for key, creating or rehydrating it as needed.
func (m *Manager) Ledger(key string) *Ledger {
	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.ledgers[key]; ok {
		return l
	}

	l := NewLedger(key, m.store, m.logger)
	if m.store != nil {
		items, found, err := m.store.Load(key)
		if err != nil {
			m.logger.Warn("cart rehydrate failed, starting empty",
				zap.String("cart_key", key),
				zap.Error(err))
		} else if found {
			l = NewLedgerFrom(key, items, m.store, m.logger)
		}
	}
	m.ledgers[key] = l
	return l
}

// Drop forgets the in-memory ledger and deletes its persisted state.
func (m *Manager) Drop(key string) {
	m.mu.Lock()
	delete(m.ledgers, key)
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.Delete(key); err != nil {
			m.logger.Warn("cart delete failed",
				zap.String("cart_key", key),
				zap.Error(err))
		}
	}
}
