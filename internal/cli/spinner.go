package cli

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// spinnerInterval is the frame advance rate.
const spinnerInterval = 80 * time.Millisecond

// spinnerFrames cycle on stderr while a solver runs.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows progress on stderr during a solve. It stops on Stop or
// when its parent context ends (a --timeout expiry or Ctrl-C); Cancelled
// tells the two apart so callers can report an aborted solve.
type Spinner struct {
	label  string
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	idle   chan struct{}
	halt   sync.Once
}

// newSpinner creates a spinner that only stops on Stop.
func newSpinner(label string) *Spinner {
	return newSpinnerWithContext(context.Background(), label)
}

// newSpinnerWithContext creates a spinner that also stops with ctx.
func newSpinnerWithContext(ctx context.Context, label string) *Spinner {
	inner, cancel := context.WithCancel(ctx)
	return &Spinner{
		label:  label,
		parent: ctx,
		ctx:    inner,
		cancel: cancel,
		idle:   make(chan struct{}),
	}
}

// Start begins drawing frames and returns immediately.
func (s *Spinner) Start() {
	go func() {
		defer close(s.idle)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				s.erase()
				return
			case <-ticker.C:
				glyph := spinnerFrames[frame%len(spinnerFrames)]
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(glyph), StyleDim.Render(s.label))
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call repeatedly.
func (s *Spinner) Stop() {
	s.halt.Do(func() {
		s.cancel()
		<-s.idle
	})
}

// erase blanks the spinner's line. Only the drawing goroutine calls it, so
// no locking is needed around the stderr writes.
func (s *Spinner) erase() {
	fmt.Fprintf(os.Stderr, "\r%*s\r", len(s.label)+4, "")
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the parent context ended the spinner, as
// opposed to a plain Stop.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
