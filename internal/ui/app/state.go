package app

import (
	"sync"
	"time"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

// NotificationType classifies toast notifications.
type NotificationType int

const (
	// NotificationInfo is an informational toast.
	NotificationInfo NotificationType = iota
	// NotificationSuccess is a success toast.
	NotificationSuccess
	// NotificationError is an error toast.
	NotificationError
)

// Notification is a transient toast shown over the main view.
type Notification struct {
	Type      NotificationType
	Message   string
	ExpiresAt time.Time
}

// State is the data shared across tabs: the current summary plus reload
// bookkeeping. Tabs read it; only the app model mutates it, always from
// the Bubble Tea update loop.
type State struct {
	mu            sync.RWMutex
	summary       *models.Summary
	inputPath     string
	watching      bool
	lastReload    time.Time
	reloadErr     error
	notifications []Notification
}

// NewState creates empty shared state for the given input path.
func NewState(inputPath string, watching bool) *State {
	return &State{inputPath: inputPath, watching: watching}
}

// Summary returns the current summary, which may be nil before the first
// load completes.
func (s *State) Summary() *models.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// SetSummary replaces the current summary and records the reload time.
func (s *State) SetSummary(sum *models.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary = sum
	s.lastReload = time.Now()
	s.reloadErr = nil
}

// SetReloadError records a failed reload without discarding the previous
// summary.
func (s *State) SetReloadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadErr = err
}

// ReloadError returns the error from the most recent failed reload, if any.
func (s *State) ReloadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reloadErr
}

// InputPath returns the path events are aggregated from.
func (s *State) InputPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputPath
}

// Watching reports whether live reload is enabled.
func (s *State) Watching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watching
}

// LastReload returns when the summary was last refreshed.
func (s *State) LastReload() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReload
}

// AddNotification queues a toast that expires after duration.
func (s *State) AddNotification(t NotificationType, message string, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, Notification{
		Type:      t,
		Message:   message,
		ExpiresAt: time.Now().Add(duration),
	})
}

// Notifications returns the currently visible toasts.
func (s *State) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// ClearExpiredNotifications drops toasts past their expiry.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}
