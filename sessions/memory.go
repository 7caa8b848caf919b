package sessions

import (
	"context"
	"sync"
	"time"
)

// MemoryDirectory keeps sessions in process memory. Expired entries are
// dropped when looked up.
type MemoryDirectory struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{sessions: make(map[string]Session)}
}

func (d *MemoryDirectory) Put(ctx context.Context, token string, session Session) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions[token] = session
	return nil
}

func (d *MemoryDirectory) Lookup(ctx context.Context, token string) (Session, bool, error) {
	d.mu.RLock()
	session, ok := d.sessions[token]
	d.mu.RUnlock()
	if !ok {
		return Session{}, false, nil
	}
	if time.Now().After(session.Expires) {
		d.mu.Lock()
		delete(d.sessions, token)
		d.mu.Unlock()
		return Session{}, false, nil
	}
	return session, true, nil
}

func (d *MemoryDirectory) Revoke(ctx context.Context, token string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sessions, token)
	return nil
}
