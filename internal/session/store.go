// Package session holds the administrator session in a durable file: the
// token, role, userId and name slots set at login and cleared at logout.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"eventConsole/internal/models"
)

const filePermissions = 0600

// Store keeps the current session in memory and mirrors it to a JSON file.
// All four slots are written in one atomic step (temp file + rename), so a
// reader never observes a half-written session.
type Store struct {
	mu      sync.RWMutex
	path    string
	current models.Session
	modTime time.Time
	subs    []func()
}

// New opens the store at path, loading an existing session if one is there.
// A missing file reads as a zero session.
func New(path string) (*Store, error) {
	s := &Store{path: path}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load session file: %w", err)
	}

	return s, nil
}

// Current returns the session. It never fails; absent fields are empty.
func (s *Store) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	return s.Current().Token
}

// Set replaces the whole session and persists it atomically.
func (s *Store) Set(sess models.Session) error {
	s.mu.Lock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to encode session: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, filePermissions); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	s.current = sess
	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}
	s.mu.Unlock()

	s.notify()

	return nil
}

// Clear removes every slot and deletes the session file.
func (s *Store) Clear() error {
	s.mu.Lock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.mu.Unlock()
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	s.current = models.Session{}
	s.modTime = time.Time{}
	s.mu.Unlock()

	s.notify()

	return nil
}

// Subscribe registers fn to run after every session change, including
// external file changes picked up by ReloadIfChanged.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
}

// ReloadIfChanged re-reads the file when another process replaced it.
// This is best-effort cross-process sync: eventual, not same-tick.
func (s *Store) ReloadIfChanged() (bool, error) {
	s.mu.Lock()

	info, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		changed := s.current != (models.Session{})
		s.current = models.Session{}
		s.modTime = time.Time{}
		s.mu.Unlock()

		if changed {
			s.notify()
		}
		return changed, nil
	}
	if err != nil {
		s.mu.Unlock()
		return false, fmt.Errorf("failed to stat session file: %w", err)
	}

	if info.ModTime().Equal(s.modTime) {
		s.mu.Unlock()
		return false, nil
	}

	if err := s.loadLocked(); err != nil {
		s.mu.Unlock()
		return false, err
	}
	s.mu.Unlock()

	s.notify()

	return true, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked()
}

func (s *Store) loadLocked() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("failed to decode session file: %w", err)
	}

	s.current = sess
	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}

	return nil
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}
