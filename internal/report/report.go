// Package report defines the presenter contract shared by all summary
// renderers. Presenters consume a finished summary and never influence how
// it is computed.
package report

import (
	"errors"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

// Presenter renders a summary as some side effect (console text, a file, a
// terminal UI). Implementations must treat the summary as read-only.
type Presenter interface {
	Render(s *models.Summary) error
}

// RenderAll fans the summary out to every presenter. Presenters are
// independent; a failure in one does not stop the others, and all errors are
// joined for the caller.
func RenderAll(s *models.Summary, presenters ...Presenter) error {
	var errs []error
	for _, p := range presenters {
		if err := p.Render(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
