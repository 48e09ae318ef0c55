package memory

import (
	"sync"
	"time"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"
)

const defaultSessionTTL = 2 * time.Hour

// WizardSessionStore holds in-progress wizard sessions in process memory.
// Abandoned sessions age out after the TTL; answers are discarded with them.

type WizardSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entities.WizardSession
	ttl      time.Duration
}

var _ interfaces.IWizardSessionStore = (*WizardSessionStore)(nil)

func NewWizardSessionStore() *WizardSessionStore {
	return &WizardSessionStore{
		sessions: make(map[string]entities.WizardSession),
		ttl:      defaultSessionTTL,
	}
}

func (s *WizardSessionStore) Put(sess entities.WizardSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[sess.ID] = sess
}

func (s *WizardSessionStore) Get(id string) (entities.WizardSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok || time.Since(sess.UpdatedAt) > s.ttl {
		return entities.WizardSession{}, false
	}
	return sess, true
}

func (s *WizardSessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// sweepLocked drops aged-out sessions. Called with the write lock held.
func (s *WizardSessionStore) sweepLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
