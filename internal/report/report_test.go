package report

import (
	"errors"
	"testing"

	"github.com/avilla-dev/cursor-wrapped/internal/models"
)

type fakePresenter struct {
	err    error
	called bool
}

func (f *fakePresenter) Render(*models.Summary) error {
	f.called = true
	return f.err
}

func TestRenderAll(t *testing.T) {
	a := &fakePresenter{}
	b := &fakePresenter{}

	if err := RenderAll(&models.Summary{}, a, b); err != nil {
		t.Fatalf("RenderAll() error = %v", err)
	}
	if !a.called || !b.called {
		t.Error("not all presenters were invoked")
	}
}

func TestRenderAllContinuesAfterFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := &fakePresenter{err: boom}
	after := &fakePresenter{}

	err := RenderAll(&models.Summary{}, failing, after)
	if !errors.Is(err, boom) {
		t.Fatalf("RenderAll() error = %v, want wrapped boom", err)
	}
	if !after.called {
		t.Error("presenter after the failing one was not invoked")
	}
}

func TestRenderAllJoinsErrors(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	err := RenderAll(&models.Summary{}, &fakePresenter{err: errA}, &fakePresenter{err: errB})
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("RenderAll() error = %v, want both failures joined", err)
	}
}
