package app

import (
	"errors"
	"testing"
	"time"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

func TestStateSummary(t *testing.T) {
	s := NewState("usage-events.csv", true)

	if s.Summary() != nil {
		t.Error("new state should have no summary")
	}
	if s.InputPath() != "usage-events.csv" {
		t.Errorf("InputPath = %q", s.InputPath())
	}
	if !s.Watching() {
		t.Error("Watching = false, want true")
	}

	sum := &models.Summary{Year: 2025}
	s.SetSummary(sum)

	if s.Summary() != sum {
		t.Error("Summary() did not return the set summary")
	}
	if s.LastReload().IsZero() {
		t.Error("LastReload not recorded")
	}
	if s.ReloadError() != nil {
		t.Error("ReloadError should be cleared by a successful reload")
	}
}

func TestStateReloadErrorKeepsSummary(t *testing.T) {
	s := NewState("in.csv", false)
	sum := &models.Summary{Year: 2025}
	s.SetSummary(sum)

	boom := errors.New("boom")
	s.SetReloadError(boom)

	if !errors.Is(s.ReloadError(), boom) {
		t.Errorf("ReloadError = %v, want boom", s.ReloadError())
	}
	if s.Summary() != sum {
		t.Error("failed reload must not discard the previous summary")
	}
}

func TestStateNotifications(t *testing.T) {
	s := NewState("in.csv", false)

	s.AddNotification(NotificationSuccess, "fresh", time.Minute)
	s.AddNotification(NotificationError, "stale", -time.Minute)

	if got := len(s.Notifications()); got != 2 {
		t.Fatalf("len(Notifications) = %d, want 2", got)
	}

	s.ClearExpiredNotifications()

	left := s.Notifications()
	if len(left) != 1 || left[0].Message != "fresh" {
		t.Errorf("after expiry sweep: %+v, want only the fresh toast", left)
	}
}
