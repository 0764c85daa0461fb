package output

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title   string
	timeout time.Duration
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithTimeout sets the spinner timeout.
func WithTimeout(timeout time.Duration) SpinnerOption {
	return func(c *spinnerConfig) {
		c.timeout = timeout
	}
}

// RunWithSpinner executes action while a spinner is shown on the terminal.
// The action receives a context that is cancelled on timeout or when ctx is
// done. Without a TTY the action runs directly.
func RunWithSpinner(ctx context.Context, action func(context.Context) error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	actionCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if cfg.timeout > 0 {
		actionCtx, cancel = context.WithTimeout(actionCtx, cfg.timeout)
		defer cancel()
	}

	if !IsTTY() {
		return action(actionCtx)
	}

	var actionErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		actionErr = action(actionCtx)
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Action(func() {
			select {
			case <-done:
			case <-actionCtx.Done():
			}
		}).
		Run()

	// The spinner may stop first on interrupt; the action never outlives
	// this call.
	cancel()
	<-done

	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return nil
}
