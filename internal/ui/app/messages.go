package app

import (
	"time"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

// TickMsg drives periodic housekeeping such as toast expiry.
type TickMsg struct {
	Time time.Time
}

// SummaryReloadedMsg carries the result of an aggregation run.
type SummaryReloadedMsg struct {
	Summary *models.Summary
	Err     error
	// FromWatch marks reloads triggered by a file change rather than a
	// keypress, so the model can raise a desktop notification.
	FromWatch bool
}

// WatchChangedMsg signals that the watched export file settled after a
// change and a reload should run.
type WatchChangedMsg struct{}

// WatchErrMsg carries a watcher failure.
type WatchErrMsg struct {
	Err error
}

// TabSwitchMsg requests activating a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help overlay.
type ToggleHelpMsg struct{}
