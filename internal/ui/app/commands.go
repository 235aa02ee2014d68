package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/avilla-dev/cursor-wrapped/internal/logger"
	"github.com/avilla-dev/cursor-wrapped/internal/models"
	"github.com/avilla-dev/cursor-wrapped/internal/watch"
)

const (
	// DefaultTickInterval is the interval between housekeeping ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is how long toasts stay visible.
	DefaultNotificationDuration = 5 * time.Second
)

// Loader aggregates the usage export into a fresh summary. The CLI wires a
// closure over the configured source and filter.
type Loader func() (*models.Summary, error)

// tickCmd sends a TickMsg after the default interval.
func tickCmd() tea.Cmd {
	return tea.Tick(DefaultTickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// reloadCmd runs the loader off the update loop and reports the result.
func reloadCmd(load Loader, fromWatch bool) tea.Cmd {
	return func() tea.Msg {
		s, err := load()
		return SummaryReloadedMsg{Summary: s, Err: err, FromWatch: fromWatch}
	}
}

// waitForChangeCmd blocks on the watcher until the export file changes.
func waitForChangeCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return WatchChangedMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return WatchErrMsg{Err: err}
		}
	}
}

// notifyDesktopCmd raises a desktop notification for a watch-triggered
// refresh. Failures are logged, never surfaced to the UI.
func notifyDesktopCmd(title, body string) tea.Cmd {
	return func() tea.Msg {
		if err := beeep.Notify(title, body, ""); err != nil {
			logger.Debug("desktop notification failed", "error", err)
		}
		return nil
	}
}
